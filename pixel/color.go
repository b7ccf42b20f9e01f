package pixel

import (
	"fmt"
	"image/color"
	"strings"

	"badc0de.net/pkg/go-pixsvg"
)

// PackedColor holds four 8-bit channels in a single 32-bit value. Which
// lane holds which channel depends on the Packing.
type PackedColor uint32

// Packing selects the channel layout of a PackedColor.
type Packing int

const (
	// ARGB is alpha<<24 | red<<16 | green<<8 | blue.
	ARGB Packing = iota + 1
	// ABGR is alpha<<24 | blue<<16 | green<<8 | red, the byte-swapped
	// variant seen in some exports.
	ABGR
)

// ParsePacking converts a configuration value ("argb" or "abgr", any case)
// into a Packing.
func ParsePacking(s string) (Packing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "argb":
		return ARGB, nil
	case "abgr":
		return ABGR, nil
	case "":
		return 0, pixsvg.Configf("channel packing not specified; want argb or abgr")
	default:
		return 0, pixsvg.Configf("unknown channel packing %q; want argb or abgr", s)
	}
}

func (p Packing) String() string {
	switch p {
	case ARGB:
		return "argb"
	case ABGR:
		return "abgr"
	default:
		return fmt.Sprintf("Packing(%d)", int(p))
	}
}

// Valid reports whether p is one of the known packings.
func (p Packing) Valid() bool {
	return p == ARGB || p == ABGR
}

func lane(c PackedColor, shift uint) uint8 {
	return uint8((uint32(c) >> shift) & 0xFF)
}

// Channels splits c into red, green, blue and alpha according to p.
func (p Packing) Channels(c PackedColor) (r, g, b, a uint8) {
	a = lane(c, 24)
	g = lane(c, 8)
	switch p {
	case ABGR:
		b = lane(c, 16)
		r = lane(c, 0)
	default:
		r = lane(c, 16)
		b = lane(c, 0)
	}
	return r, g, b, a
}

// NRGBA returns c as a non-premultiplied color.
func (p Packing) NRGBA(c PackedColor) color.NRGBA {
	r, g, b, a := p.Channels(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
