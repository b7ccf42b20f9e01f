package pixsvg

import (
	"io"
	"os"
	"testing"

	"github.com/pkg/errors"
)

func TestKind(t *testing.T) {
	tcs := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"unclassified", io.EOF, nil},
		{"sentinel", ErrMissing, ErrMissing},
		{"configf", Configf("width %d", 0), ErrConfig},
		{"wrapped parsef", errors.Wrap(Parsef("bad token"), "reading source"), ErrParse},
		{"mark", Mark(io.ErrUnexpectedEOF, ErrRasterize, "decoding"), ErrRasterize},
		{"outermost mark wins", Mark(Parsef("bad fill"), ErrRasterize, "drawing"), ErrRasterize},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := Kind(tc.err); got != tc.want {
				t.Errorf("Kind(%v) = %v; want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestMarkKeepsCause(t *testing.T) {
	err := Mark(os.ErrNotExist, ErrRasterize, "opening")
	if !errors.Is(err, ErrRasterize) {
		t.Errorf("errors.Is(%v, ErrRasterize) = false", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("errors.Is(%v, os.ErrNotExist) = false", err)
	}
	if errors.Cause(err) != os.ErrNotExist {
		t.Errorf("Cause(%v) = %v; want os.ErrNotExist", err, errors.Cause(err))
	}
	if Mark(nil, ErrParse, "nothing") != nil {
		t.Errorf("Mark(nil) should be nil")
	}
}
