// Package raster renders vector documents into bitmaps.
//
// Documents made only of rectangles, which is everything svgdoc.Render
// produces, are filled directly with rasterx so that every rgba() fill is
// honoured exactly. Anything else is handed to oksvg.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/srwiley/rasterx"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/svgdoc"
)

// Rasterizer turns documents into images at their declared canvas size,
// multiplied by Scale.
type Rasterizer struct {
	// Scale is an integer magnification; zero means one.
	Scale int
}

func (r *Rasterizer) scale() int {
	if r == nil || r.Scale < 1 {
		return 1
	}
	return r.Scale
}

// Render draws doc onto a transparent canvas.
func (r *Rasterizer) Render(doc *svgdoc.Document) (*image.NRGBA, error) {
	if doc.Foreign() {
		return r.renderForeign(doc.Bytes(), doc, "document")
	}
	return r.renderRects(doc)
}

func (r *Rasterizer) canvas(doc *svgdoc.Document) (*image.NRGBA, int, int, error) {
	s := r.scale()
	w, h := doc.Width*s, doc.Height*s
	if w <= 0 || h <= 0 {
		return nil, 0, 0, pixsvg.Mark(errors.Errorf("canvas %dx%d", w, h), pixsvg.ErrRasterize, "empty canvas")
	}
	return image.NewNRGBA(image.Rect(0, 0, w, h)), w, h, nil
}

func (r *Rasterizer) renderRects(doc *svgdoc.Document) (*image.NRGBA, error) {
	img, w, h, err := r.canvas(doc)
	if err != nil {
		return nil, err
	}
	s := float64(r.scale())
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	for i, shape := range doc.Shapes {
		x, y, sw, sh, err := shape.Bounds()
		if err != nil {
			return nil, pixsvg.Mark(err, pixsvg.ErrRasterize, "shape "+strconv.Itoa(i))
		}
		c, err := shapeColor(shape)
		if err != nil {
			return nil, pixsvg.Mark(err, pixsvg.ErrRasterize, "shape "+strconv.Itoa(i))
		}
		if c == nil || sw == 0 || sh == 0 {
			continue
		}
		filler.SetColor(c)
		rasterx.AddRect(x*s, y*s, (x+sw)*s, (y+sh)*s, 0, filler)
		filler.Draw()
		filler.Clear()
	}
	glog.V(2).Infof("filled %d rects on a %dx%d canvas", len(doc.Shapes), w, h)
	return img, nil
}

// Rasterize renders the document at svgPath and writes it as PNG to
// pngPath, creating parent directories. The PNG is encoded in memory first,
// so a failure never leaves a partial file behind.
func (r *Rasterizer) Rasterize(svgPath, pngPath string) error {
	raw, err := ioutil.ReadFile(svgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return pixsvg.Missingf("%q does not exist", svgPath)
		}
		return pixsvg.Mark(err, pixsvg.ErrRasterize, "reading "+svgPath)
	}
	doc, err := svgdoc.Parse(bytes.NewReader(raw))
	if err != nil {
		return pixsvg.Mark(err, pixsvg.ErrRasterize, "parsing "+svgPath)
	}

	var img *image.NRGBA
	if doc.Foreign() {
		img, err = r.renderForeign(raw, doc, svgPath)
	} else {
		img, err = r.renderRects(doc)
	}
	if err != nil {
		return errors.Wrapf(err, "rendering %q", svgPath)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return pixsvg.Mark(err, pixsvg.ErrRasterize, "encoding "+pngPath)
	}
	if err := svgdoc.WriteAtomic(pngPath, buf.Bytes()); err != nil {
		return pixsvg.Mark(err, pixsvg.ErrRasterize, "writing "+pngPath)
	}
	return nil
}
