package raster

import (
	"bytes"
	"image"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/rustyoz/svg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/svgdoc"
)

// renderForeign draws a general SVG document with oksvg, mapping its
// viewBox onto the declared canvas.
func (r *Rasterizer) renderForeign(raw []byte, doc *svgdoc.Document, name string) (*image.NRGBA, error) {
	img, w, h, err := r.canvas(doc)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(raw), oksvg.WarnErrorMode)
	if err != nil {
		return nil, pixsvg.Mark(err, pixsvg.ErrRasterize, "decoding "+name)
	}
	if vb, ok := rootViewBox(raw, name); ok {
		icon.ViewBox.X, icon.ViewBox.Y, icon.ViewBox.W, icon.ViewBox.H = vb[0], vb[1], vb[2], vb[3]
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		icon.ViewBox.X, icon.ViewBox.Y = 0, 0
		icon.ViewBox.W, icon.ViewBox.H = float64(doc.Width), float64(doc.Height)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	glog.V(2).Infof("drew foreign document %s onto a %dx%d canvas", name, w, h)
	return img, nil
}

// rootViewBox reads the root viewBox with the rustyoz parser.
func rootViewBox(raw []byte, name string) ([4]float64, bool) {
	var vb [4]float64
	parsed, err := svg.ParseSvg(string(raw), filepath.Base(name), 1.0)
	if err != nil || parsed.ViewBox == "" {
		return vb, false
	}
	fields := strings.FieldsFunc(parsed.ViewBox, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 4 {
		return vb, false
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return vb, false
		}
		vb[i] = v
	}
	return vb, vb[2] > 0 && vb[3] > 0
}
