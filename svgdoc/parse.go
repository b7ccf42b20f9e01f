package svgdoc

import (
	"encoding/xml"
	"io"
	"math"

	"badc0de.net/pkg/go-pixsvg"
)

// Parse reads a document from r. Direct children of the root become Shapes
// in order; comments, processing instructions and whitespace between them
// are dropped.
//
// The canvas size comes from the root's width and height, falling back to
// its viewBox. Fractional sizes are rounded up.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	var root xml.StartElement
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, pixsvg.Parsef("no root element")
		}
		if err != nil {
			return nil, pixsvg.Mark(err, pixsvg.ErrParse, "reading document")
		}
		if se, ok := tok.(xml.StartElement); ok {
			root = xml.CopyToken(se).(xml.StartElement)
			break
		}
	}
	if root.Name.Local != "svg" {
		return nil, pixsvg.Parsef("root element is <%s>; want <svg>", root.Name.Local)
	}

	doc := &Document{}
	if err := doc.setRoot(root.Attr); err != nil {
		return nil, err
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, pixsvg.Parsef("document ends before </svg>")
		}
		if err != nil {
			return nil, pixsvg.Mark(err, pixsvg.ErrParse, "reading document")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			se := xml.CopyToken(t).(xml.StartElement)
			var body struct {
				Inner string `xml:",innerxml"`
			}
			if err := dec.DecodeElement(&body, &se); err != nil {
				return nil, pixsvg.Mark(err, pixsvg.ErrParse, "reading <"+se.Name.Local+">")
			}
			space := se.Name.Space
			if space == Namespace {
				space = ""
			}
			doc.Shapes = append(doc.Shapes, Shape{
				Name:  se.Name.Local,
				Space: space,
				Attrs: se.Attr,
				Inner: body.Inner,
			})
		case xml.EndElement:
			return doc, nil
		}
	}
}

func (d *Document) setRoot(attrs []xml.Attr) error {
	var width, height string
	for _, a := range attrs {
		switch {
		case a.Name.Space == "" && a.Name.Local == "xmlns", a.Name.Space == "xmlns" && a.Name.Local == "xlink":
			// Always written by the serializer.
		case a.Name.Space == "" && a.Name.Local == "width":
			width = a.Value
		case a.Name.Space == "" && a.Name.Local == "height":
			height = a.Value
		default:
			d.Attrs = append(d.Attrs, a)
		}
	}

	_, _, vbW, vbH, hasViewBox := d.ViewBox()
	size := func(name, v string, fallback float64) (int, error) {
		if v == "" {
			if !hasViewBox {
				return 0, pixsvg.Parsef("root declares neither %s nor viewBox", name)
			}
			return int(math.Ceil(fallback)), nil
		}
		f, err := parseLength(v)
		if err != nil {
			return 0, pixsvg.Parsef("root %s=%q: %v", name, v, err)
		}
		return int(math.Ceil(f)), nil
	}
	var err error
	if d.Width, err = size("width", width, vbW); err != nil {
		return err
	}
	if d.Height, err = size("height", height, vbH); err != nil {
		return err
	}
	if d.Width <= 0 || d.Height <= 0 {
		return pixsvg.Parsef("canvas size %dx%d is not positive", d.Width, d.Height)
	}
	return nil
}
