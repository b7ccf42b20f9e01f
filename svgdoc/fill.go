package svgdoc

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"badc0de.net/pkg/go-pixsvg"
)

// ParseFill decodes a fill value: "none", #rgb, #rrggbb, rgb(r,g,b),
// rgba(r,g,b,a) with a in [0,1], or an SVG colour keyword. "none" yields a
// nil color.
func ParseFill(v string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	switch {
	case s == "none" || s == "transparent":
		return nil, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:], v)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], true, v)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], false, v)
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return nil, pixsvg.Parsef("unsupported fill %q", v)
}

func parseHex(h, orig string) (color.Color, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return nil, pixsvg.Parsef("fill %q: want #rgb or #rrggbb", orig)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, pixsvg.Parsef("fill %q: %v", orig, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func parseFunc(args string, withAlpha bool, orig string) (color.Color, error) {
	parts := strings.Split(args, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return nil, pixsvg.Parsef("fill %q: want %d components", orig, want)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return nil, pixsvg.Parsef("fill %q: bad component %q", orig, parts[i])
		}
		ch[i] = uint8(n)
	}
	a := uint8(0xFF)
	if withAlpha {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return nil, pixsvg.Parsef("fill %q: bad alpha %q", orig, parts[3])
		}
		a = uint8(math.Round(f * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

// WithOpacity scales c's alpha by opacity, clamped to [0,1].
func WithOpacity(c color.Color, opacity float64) color.Color {
	if c == nil || opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * opacity))
	return n
}
