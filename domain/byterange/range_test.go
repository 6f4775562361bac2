package byterange

import (
	stderrors "errors"
	"range-server/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	const size = int64(1000)

	tests := []struct {
		name    string
		header  string
		want    Spec
		wantErr error
	}{
		// Satisfiable windows
		{"Closed window", "bytes=100-199", Spec{100, 199}, nil},
		{"Open window resolves to end of file", "bytes=999-", Spec{999, 999}, nil},
		{"Open window from start", "bytes=0-", Spec{0, 999}, nil},
		{"Single byte", "bytes=0-0", Spec{0, 0}, nil},
		{"Last byte beyond size is clamped", "bytes=0-5000", Spec{0, 999}, nil},
		{"Last byte overflowing int64 is clamped", "bytes=0-99999999999999999999", Spec{0, 999}, nil},

		// Not satisfiable
		{"First equals size", "bytes=1000-1010", Spec{}, errors.ErrRangeNotSatisfiable},
		{"First beyond size", "bytes=4000-", Spec{}, errors.ErrRangeNotSatisfiable},
		{"First overflows int64", "bytes=99999999999999999999-", Spec{}, errors.ErrRangeNotSatisfiable},
		{"Both bounds overflow int64", "bytes=99999999999999999999-99999999999999999999", Spec{}, errors.ErrRangeNotSatisfiable},

		// Malformed
		{"Non numeric", "bytes=abc-def", Spec{}, errors.ErrMalformedRange},
		{"Suffix range", "bytes=-500", Spec{}, errors.ErrMalformedRange},
		{"Multiple ranges", "bytes=0-10,20-30", Spec{}, errors.ErrMalformedRange},
		{"Missing prefix", "0-10", Spec{}, errors.ErrMalformedRange},
		{"Other unit", "items=0-10", Spec{}, errors.ErrMalformedRange},
		{"Empty", "", Spec{}, errors.ErrMalformedRange},
		{"Inverted window", "bytes=50-10", Spec{}, errors.ErrMalformedRange},
		{"Trailing garbage", "bytes=0-10x", Spec{}, errors.ErrMalformedRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := Parse(tt.header, size)
			if tt.wantErr != nil {
				req.True(stderrors.Is(err, tt.wantErr), "got error %v", err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestParse_EmptyFileIsNeverSatisfiable(t *testing.T) {
	_, err := Parse("bytes=0-", 0)
	require.ErrorIs(t, err, errors.ErrRangeNotSatisfiable)
}

func TestSpec_Framing(t *testing.T) {
	req := require.New(t)
	window := Spec{First: 100, Last: 199}

	req.Equal(int64(100), window.Length())
	req.Equal("bytes 100-199/1000", window.ContentRange(1000))
	req.Equal("bytes */1000", Unsatisfied(1000))
}
