// Package svgdoc models the small vector documents this module produces:
// an <svg> root with a declared canvas size and an ordered list of direct
// child shapes, almost always one <rect> per opaque sprite pixel.
//
// Documents are parsed into typed records, transformed by pure functions
// (Render, Strip) and serialized again; nothing edits markup in place.
package svgdoc

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Namespace is the SVG namespace declared on every serialized root.
const Namespace = "http://www.w3.org/2000/svg"

const (
	xlinkNamespace = "http://www.w3.org/1999/xlink"
	xmlNamespace   = "http://www.w3.org/XML/1998/namespace"
)

// Document is a parsed or rendered vector image.
type Document struct {
	// Width and Height are the declared canvas size in user units.
	Width, Height int
	// Attrs holds root attributes other than width, height and the SVG and
	// xlink namespace declarations, in document order. Other xmlns:prefix
	// declarations are kept here so prefixed names can be written back.
	Attrs []xml.Attr
	// Shapes are the root's direct children, in document order.
	Shapes []Shape
}

// Shape is one direct child element of the root.
type Shape struct {
	// Name is the element's local name, e.g. "rect".
	Name string
	// Space is the element's namespace URL when it is not SVG, e.g. an
	// editor's <sodipodi:namedview>.
	Space string
	Attrs []xml.Attr
	// Inner is the raw markup between the start and end tags, if any.
	Inner string
}

func attr(attrs []xml.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == name && (a.Name.Space == "" || a.Name.Space == Namespace) {
			return a.Value, true
		}
	}
	return "", false
}

// Attr returns the value of the root attribute name.
func (d *Document) Attr(name string) (string, bool) {
	return attr(d.Attrs, name)
}

// ViewBox returns the root's viewBox, if it declares a valid one.
func (d *Document) ViewBox() (minX, minY, w, h float64, ok bool) {
	v, ok := d.Attr("viewBox")
	if !ok {
		return 0, 0, 0, 0, false
	}
	return parseViewBox(v)
}

func parseViewBox(v string) (minX, minY, w, h float64, ok bool) {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	if len(fields) != 4 {
		return 0, 0, 0, 0, false
	}
	var vals [4]float64
	for i, f := range fields {
		var err error
		if vals[i], err = strconv.ParseFloat(f, 64); err != nil {
			return 0, 0, 0, 0, false
		}
	}
	return vals[0], vals[1], vals[2], vals[3], true
}

// Foreign reports whether d contains anything besides plain rectangles on an
// untransformed canvas. Such documents were not made by Render and need a
// general SVG renderer.
func (d *Document) Foreign() bool {
	if minX, minY, w, h, ok := d.ViewBox(); ok {
		if minX != 0 || minY != 0 || w != float64(d.Width) || h != float64(d.Height) {
			return true
		}
	}
	for _, s := range d.Shapes {
		if !s.plainRect() {
			return true
		}
	}
	return false
}

// Attr returns the value of the shape's attribute name.
func (s Shape) Attr(name string) (string, bool) {
	return attr(s.Attrs, name)
}

// IsRect reports whether s is a <rect> element.
func (s Shape) IsRect() bool {
	return s.Space == "" && s.Name == "rect"
}

// Fill returns the shape's fill attribute.
func (s Shape) Fill() (string, bool) {
	return s.Attr("fill")
}

var plainRectAttrs = map[string]bool{
	"x": true, "y": true, "width": true, "height": true,
	"fill": true, "fill-opacity": true, "id": true,
}

func (s Shape) plainRect() bool {
	if !s.IsRect() || strings.TrimSpace(s.Inner) != "" {
		return false
	}
	for _, a := range s.Attrs {
		if a.Name.Space != "" || !plainRectAttrs[a.Name.Local] {
			return false
		}
	}
	return true
}

// Bounds returns the position and size of a rect shape. Missing x or y
// default to zero; missing or negative sizes are an error.
func (s Shape) Bounds() (x, y, w, h float64, err error) {
	get := func(name string, required bool) (float64, error) {
		v, ok := s.Attr(name)
		if !ok {
			if required {
				return 0, fmt.Errorf("<%s> has no %s", s.Name, name)
			}
			return 0, nil
		}
		f, err := parseLength(v)
		if err != nil {
			return 0, fmt.Errorf("<%s> %s=%q: %v", s.Name, name, v, err)
		}
		return f, nil
	}
	if x, err = get("x", false); err != nil {
		return
	}
	if y, err = get("y", false); err != nil {
		return
	}
	if w, err = get("width", true); err != nil {
		return
	}
	if h, err = get("height", true); err != nil {
		return
	}
	if w < 0 || h < 0 {
		err = fmt.Errorf("<%s> has negative size %gx%g", s.Name, w, h)
	}
	return
}

// parseLength parses a length in user units, allowing a "px" suffix.
func parseLength(v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	return strconv.ParseFloat(v, 64)
}

// NewRect returns a rect shape at (x, y) of size (w, h) with the given fill.
func NewRect(x, y, w, h int, fill string) Shape {
	return Shape{
		Name: "rect",
		Attrs: []xml.Attr{
			{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(x)},
			{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(y)},
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(w)},
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(h)},
			{Name: xml.Name{Local: "fill"}, Value: fill},
		},
	}
}
