package svgdoc

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/pixel"
)

// Render turns a frame of width*height pixels into a document with one
// pixelSize square per pixel whose alpha is nonzero, in row-major order.
// Fully transparent pixels produce nothing.
func Render(frame pixel.Frame, width, height, pixelSize int, packing pixel.Packing) (*Document, error) {
	if width <= 0 || height <= 0 || pixelSize <= 0 {
		return nil, pixsvg.Configf("frame geometry %dx%d at pixel size %d is not positive", width, height, pixelSize)
	}
	if !packing.Valid() {
		return nil, pixsvg.Configf("channel packing not specified")
	}
	if len(frame) != width*height {
		return nil, pixsvg.Configf("frame has %d pixels; %dx%d needs %d", len(frame), width, height, width*height)
	}

	w, h := width*pixelSize, height*pixelSize
	doc := &Document{
		Width:  w,
		Height: h,
		Attrs: []xml.Attr{
			{Name: xml.Name{Local: "viewBox"}, Value: fmt.Sprintf("0 0 %d %d", w, h)},
		},
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := packing.Channels(frame.At(x, y, width))
			if a == 0 {
				continue
			}
			doc.Shapes = append(doc.Shapes, NewRect(x*pixelSize, y*pixelSize, pixelSize, pixelSize, RGBA(r, g, b, a)))
		}
	}
	glog.V(2).Infof("rendered %dx%d frame into %d rects", width, height, len(doc.Shapes))
	return doc, nil
}

// RGBA formats a fill as rgba(r,g,b,A), A being alpha/255 with exactly two
// decimals.
func RGBA(r, g, b, a uint8) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(float64(a)/255, 'f', 2, 64))
}
