package byterange

import (
	stderrors "errors"
	"fmt"
	"math"
	"range-server/errors"
	"regexp"
	"strconv"
)

// Only a single "bytes=first-[last]" window is understood.
// Suffix ranges and multi-range sets fall outside the grammar.
var rangePattern = regexp.MustCompile(`^bytes=([0-9]+)-([0-9]*)$`)

// Spec is an end-inclusive byte window inside a file.
type Spec struct {
	First int64
	Last  int64
}

// Length is the number of bytes covered by the window.
func (s Spec) Length() int64 {
	return s.Last - s.First + 1
}

// ContentRange formats the Content-Range value for a file of the given size.
func (s Spec) ContentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", s.First, s.Last, size)
}

// Unsatisfied formats the Content-Range value sent along a 416.
func Unsatisfied(size int64) string {
	return fmt.Sprintf("bytes */%d", size)
}

// Parse reads a Range header value against a file of the given size.
//
// A value outside the grammar returns errors.ErrMalformedRange, the caller
// is expected to fall back to the full file. A first offset at or beyond
// the end of the file returns errors.ErrRangeNotSatisfiable.
// A last offset beyond the end of the file, even one overflowing int64,
// is clamped to size-1.
func Parse(header string, size int64) (Spec, error) {
	matches := rangePattern.FindStringSubmatch(header)
	if matches == nil {
		return Spec{}, errors.ErrMalformedRange
	}

	// A first offset overflowing int64 lies beyond any file.
	first, err := strconv.ParseInt(matches[1], 10, 64)
	switch {
	case stderrors.Is(err, strconv.ErrRange):
		return Spec{}, fmt.Errorf("%w: first byte %s, size %d",
			errors.ErrRangeNotSatisfiable, matches[1], size)
	case err != nil:
		return Spec{}, fmt.Errorf("%w: %s", errors.ErrMalformedRange, err)
	}

	last := size - 1
	if matches[2] != "" {
		last, err = strconv.ParseInt(matches[2], 10, 64)
		switch {
		case stderrors.Is(err, strconv.ErrRange):
			last = math.MaxInt64
		case err != nil:
			return Spec{}, fmt.Errorf("%w: %s", errors.ErrMalformedRange, err)
		}
		if last < first {
			return Spec{}, fmt.Errorf("%w: last byte %d before first byte %d",
				errors.ErrMalformedRange, last, first)
		}
	}

	if first >= size {
		return Spec{}, fmt.Errorf("%w: first byte %d, size %d",
			errors.ErrRangeNotSatisfiable, first, size)
	}

	if last >= size {
		last = size - 1
	}

	return Spec{First: first, Last: last}, nil
}
