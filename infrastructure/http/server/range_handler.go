package server

import (
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"path"
	"range-server/contract"
	"range-server/domain"
	"range-server/domain/byterange"
	"range-server/domain/mimetypes"
	"range-server/errors"
	"range-server/observability"
	"strconv"
	"strings"
)

const (
	HeaderRange         = "Range"
	HeaderContentRange  = "Content-Range"
	HeaderContentLength = "Content-Length"
	HeaderContentType   = "Content-Type"
	HeaderAcceptRanges  = "Accept-Ranges"
)

// RangeHandler answers single byte-range GET requests on regular files and
// hands everything else to a generic file server built on the same FileSystem.
type RangeHandler struct {
	log        *slog.Logger
	fs         contract.FileSystem
	next       http.Handler
	monitoring *observability.MonitoringManager
}

func NewRangeHandler(log *slog.Logger, fs contract.FileSystem, monitoring *observability.MonitoringManager) *RangeHandler {
	return &RangeHandler{
		log:        log,
		fs:         fs,
		next:       http.FileServer(fs),
		monitoring: monitoring,
	}
}

func (h *RangeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rangeHeader := r.Header.Get(HeaderRange)
	if r.Method != http.MethodGet || rangeHeader == "" {
		h.passThrough(w, r)
		return
	}

	// Same cleaning as http.FileServer, the FileSystem then applies its own
	// containment rules.
	name := path.Clean("/" + r.URL.Path)
	f, err := h.fs.Open(name)
	if err != nil {
		h.passThrough(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.fail(w, "Unable to stat file", name, err)
		return
	}
	// A trailing slash only names directories, the file server redirects
	// "/file/" itself.
	if !info.Mode().IsRegular() || strings.HasSuffix(r.URL.Path, "/") {
		h.passThrough(w, r)
		return
	}

	window, err := byterange.Parse(rangeHeader, info.Size())
	switch {
	case stderrors.Is(err, errors.ErrMalformedRange):
		h.log.Debug("Ignoring malformed range", "path", name, "range", rangeHeader, "error", err)
		h.monitoring.Record(observability.Malformed)
		h.delegate(w, r)
		return
	case stderrors.Is(err, errors.ErrRangeNotSatisfiable):
		h.monitoring.Record(observability.Unsatisfiable)
		w.Header().Set(HeaderContentRange, byterange.Unsatisfied(info.Size()))
		http.Error(w, "Requested Range Not Satisfiable", http.StatusRequestedRangeNotSatisfiable)
		return
	case err != nil:
		h.fail(w, "Unable to parse range", name, err)
		return
	}

	mimeType, err := detectContentType(f, name)
	if err != nil {
		h.fail(w, "Unable to sniff file", name, err)
		return
	}
	metadata := domain.FileMetadata{
		Name:     name,
		Size:     info.Size(),
		MimeType: mimeType,
	}
	h.emit(w, f, window, metadata)
}

// emit writes a 206 carrying exactly window.Length() bytes of f.
// Nothing is committed to the client before the seek succeeded.
func (h *RangeHandler) emit(w http.ResponseWriter, f contract.File, window byterange.Spec, metadata domain.FileMetadata) {
	if _, err := f.Seek(window.First, io.SeekStart); err != nil {
		h.fail(w, "Unable to seek file", metadata.Name, err)
		return
	}

	length := window.Length()
	header := w.Header()
	header.Set(HeaderContentType, string(metadata.MimeType))
	header.Set(HeaderContentRange, window.ContentRange(metadata.Size))
	header.Set(HeaderContentLength, strconv.FormatInt(length, 10))
	header.Set(HeaderAcceptRanges, "bytes")
	w.WriteHeader(http.StatusPartialContent)
	h.monitoring.Record(observability.Partial)

	written, err := io.CopyN(w, f, length)
	if err != nil {
		// Headers are gone already, the client sees a short body
		h.log.Warn("Partial content truncated",
			"path", metadata.Name,
			"expected", length,
			"written", written,
			"error", err)
	}
}

// passThrough is a request the range logic has no opinion on.
func (h *RangeHandler) passThrough(w http.ResponseWriter, r *http.Request) {
	h.monitoring.Record(observability.Delegated)
	h.delegate(w, r)
}

// delegate hands the request to the generic file server. The Range header is
// dropped so the file server answers with the full file.
func (h *RangeHandler) delegate(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(HeaderRange) != "" {
		r = r.Clone(r.Context())
		r.Header.Del(HeaderRange)
	}
	h.next.ServeHTTP(w, r)
}

func (h *RangeHandler) fail(w http.ResponseWriter, msg, name string, err error) {
	h.log.Error(msg, "path", name, "error", err)
	h.monitoring.Record(observability.ServerError)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// detectContentType sniffs the leading bytes only when the extension says nothing.
// The read offset is left wherever the sniff ended, callers seek afterwards.
// A file shorter than the sniff window is not an error.
func detectContentType(f io.Reader, name string) (mimetypes.MIME, error) {
	if byExt := mimetypes.ByExtension(name); byExt != "" {
		return byExt, nil
	}
	head := make([]byte, mimetypes.SniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !stderrors.Is(err, io.EOF) && !stderrors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	return mimetypes.Guess(name, head[:n]), nil
}
