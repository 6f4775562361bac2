package mimetypes

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

// SniffLen is the number of leading bytes inspected when the extension is unknown.
const SniffLen = 512

const OctetStream MIME = "application/octet-stream"

// Guess infers the media type of a file from its name, then from its leading
// bytes. It never returns an empty value: anything unrecognised is
// application/octet-stream.
func Guess(name string, head []byte) MIME {
	if byExt := ByExtension(name); byExt != "" {
		return byExt
	}
	if len(head) == 0 {
		return OctetStream
	}
	detected := mimetype.Detect(head).String()
	if detected == "" {
		return OctetStream
	}
	return MIME(detected)
}

// ByExtension returns an empty MIME when the extension is not registered.
func ByExtension(name string) MIME {
	return MIME(mime.TypeByExtension(filepath.Ext(name)))
}
