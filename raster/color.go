package raster

import (
	"image/color"
	"strconv"

	"badc0de.net/pkg/go-pixsvg/svgdoc"
)

// shapeColor resolves a shape's paint. A missing fill paints black, as SVG
// does; "none" yields nil.
func shapeColor(s svgdoc.Shape) (color.Color, error) {
	fill, ok := s.Fill()
	if !ok {
		fill = "black"
	}
	c, err := svgdoc.ParseFill(fill)
	if err != nil || c == nil {
		return nil, err
	}
	if v, ok := s.Attr("fill-opacity"); ok {
		op, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		c = svgdoc.WithOpacity(c, op)
	}
	return c, nil
}
