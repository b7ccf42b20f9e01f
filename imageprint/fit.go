package imageprint

import (
	"image"

	"github.com/nfnt/resize"
)

// TermSize is a terminal's size in character cells and, if known, pixels.
type TermSize struct {
	Cols, Rows     uint
	XPixel, YPixel uint
}

// Fit shrinks img so that p can print it within sz. Images that already fit
// are returned unchanged.
//
// Block modes spend two columns and one row per pixel. Graphics modes are
// fitted to half the window's pixel size when the terminal reports one.
func (p *Printer) Fit(img image.Image, sz TermSize) image.Image {
	var maxW, maxH uint
	switch {
	case (p.Mode == ModeRasTerm || p.Mode == ModeITerm) && sz.XPixel != 0 && sz.YPixel != 0:
		maxW, maxH = sz.XPixel/2, sz.YPixel/2
	default:
		maxW, maxH = sz.Cols/2, sz.Rows
	}
	if maxW == 0 || maxH == 0 {
		return img
	}
	b := img.Bounds()
	if uint(b.Dx()) <= maxW && uint(b.Dy()) <= maxH {
		return img
	}
	return resize.Thumbnail(maxW, maxH, img, resize.NearestNeighbor)
}
