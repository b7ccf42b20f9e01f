package svgdoc

import (
	"image/color"
	"testing"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/ttesting"
)

func TestParseFill(t *testing.T) {
	tcs := []struct {
		in   string
		want color.Color
	}{
		{"rgba(68,85,102,1.00)", color.NRGBA{68, 85, 102, 255}},
		{"rgba(1, 2, 3, 0.50)", color.NRGBA{1, 2, 3, 128}},
		{"rgb(10,20,30)", color.NRGBA{10, 20, 30, 255}},
		{"#FFFFFF", color.NRGBA{255, 255, 255, 255}},
		{"#0a0", color.NRGBA{0, 0xAA, 0, 255}},
		{"Red", color.NRGBA{255, 0, 0, 255}},
		{"none", nil},
	}
	for _, tc := range tcs {
		got, err := ParseFill(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		ttesting.AssertDiff(t, tc.in, got, tc.want)
	}

	for _, bad := range []string{"rgba(1,2,3)", "rgb(300,0,0)", "#12345", "rgba(1,2,3,2)", "url(#grad)"} {
		_, err := ParseFill(bad)
		ttesting.AssertKind(t, bad, err, pixsvg.ErrParse)
	}
}

func TestWithOpacity(t *testing.T) {
	got := WithOpacity(color.NRGBA{10, 20, 30, 200}, 0.5)
	ttesting.AssertDiff(t, "halved", got, color.Color(color.NRGBA{10, 20, 30, 100}))
	if WithOpacity(nil, 0.5) != nil {
		t.Errorf("nil colour should stay nil")
	}
}
