// Package ttesting holds small assertion helpers shared by this module's
// tests. Each assertion runs as its own subtest so failures are named.
package ttesting

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"badc0de.net/pkg/go-pixsvg"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

// AssertDiff compares got and want with cmp and reports the diff.
func AssertDiff(t *testing.T, name string, got, want interface{}, opts ...cmp.Option) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if diff := cmp.Diff(want, got, opts...); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

// AssertKind checks that err is classified as kind (one of the pixsvg.Err*
// values). A nil kind asserts that err is nil.
func AssertKind(t *testing.T, name string, err error, kind error) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if kind == nil {
			if err != nil {
				t.Errorf("got error %v; want none", err)
			}
			return
		}
		if err == nil {
			t.Errorf("got no error; want %v", kind)
			return
		}
		if got := pixsvg.Kind(err); got != kind {
			t.Errorf("got kind %v (%v); want %v", got, err, kind)
		}
	})
}
