package domain

import "range-server/domain/mimetypes"

// FileMetadata describes the file behind a partial response.
type FileMetadata struct {
	Name     string
	Size     int64
	MimeType mimetypes.MIME
}
