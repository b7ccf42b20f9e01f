package svgdoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Bytes serializes d. Rectangles with integral geometry are written with
// svgo; any other shape is written back with its attributes and inner
// markup as parsed. Names outside the SVG namespace keep the prefix the
// root declared for them.
func (d *Document) Bytes() []byte {
	ns := rootPrefixes(d.Attrs)
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(d.Width, d.Height, ns.formatAttrs(d.Attrs)...)
	for _, s := range d.Shapes {
		writeShape(canvas, ns, s)
	}
	canvas.End()
	return buf.Bytes()
}

// Encode writes the serialized document to w.
func (d *Document) Encode(w io.Writer) error {
	_, err := w.Write(d.Bytes())
	return err
}

func writeShape(canvas *svg.SVG, ns prefixes, s Shape) {
	if s.IsRect() && strings.TrimSpace(s.Inner) == "" {
		if x, y, w, h, rest, ok := intRect(s); ok {
			canvas.Rect(x, y, w, h, ns.formatAttrs(rest)...)
			return
		}
	}
	ns = ns.with(s.Attrs)
	name := ns.qualify(xml.Name{Space: s.Space, Local: s.Name})
	fmt.Fprintf(canvas.Writer, "<%s", name)
	for _, a := range s.Attrs {
		fmt.Fprintf(canvas.Writer, " %s", ns.formatAttr(a))
	}
	if s.Inner == "" {
		io.WriteString(canvas.Writer, " />\n")
		return
	}
	fmt.Fprintf(canvas.Writer, ">%s</%s>\n", s.Inner, name)
}

// intRect splits a rect's geometry from its other attributes, if all four
// geometry attributes are present integers.
func intRect(s Shape) (x, y, w, h int, rest []xml.Attr, ok bool) {
	var seen int
	for _, a := range s.Attrs {
		var dst *int
		if a.Name.Space == "" {
			switch a.Name.Local {
			case "x":
				dst = &x
			case "y":
				dst = &y
			case "width":
				dst = &w
			case "height":
				dst = &h
			}
		}
		if dst == nil {
			rest = append(rest, a)
			continue
		}
		v, err := strconv.Atoi(a.Value)
		if err != nil {
			return 0, 0, 0, 0, nil, false
		}
		*dst = v
		seen++
	}
	return x, y, w, h, rest, seen == 4
}

// prefixes maps namespace URLs to the prefixes declared for them. An empty
// prefix means the URL is the default namespace of the element at hand.
type prefixes map[string]string

func rootPrefixes(attrs []xml.Attr) prefixes {
	ns := prefixes{xlinkNamespace: "xlink", xmlNamespace: "xml"}
	return ns.with(attrs)
}

// with returns ns extended by the declarations among attrs.
func (ns prefixes) with(attrs []xml.Attr) prefixes {
	var out prefixes
	for _, a := range attrs {
		var prefix string
		switch {
		case a.Name.Space == "xmlns":
			prefix = a.Name.Local
		case a.Name.Space == "" && a.Name.Local == "xmlns":
		default:
			continue
		}
		if out == nil {
			out = make(prefixes, len(ns)+1)
			for url, p := range ns {
				out[url] = p
			}
		}
		out[a.Value] = prefix
	}
	if out == nil {
		return ns
	}
	return out
}

// qualify returns the name as written in markup. A namespace the decoder
// could not resolve is left as the literal prefix it saw.
func (ns prefixes) qualify(n xml.Name) string {
	switch n.Space {
	case "", Namespace:
		return n.Local
	case "xmlns":
		return "xmlns:" + n.Local
	}
	if p, ok := ns[n.Space]; ok {
		if p == "" {
			return n.Local
		}
		return p + ":" + n.Local
	}
	return n.Space + ":" + n.Local
}

func (ns prefixes) formatAttrs(attrs []xml.Attr) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, ns.formatAttr(a))
	}
	return out
}

func (ns prefixes) formatAttr(a xml.Attr) string {
	var v strings.Builder
	xml.EscapeText(&v, []byte(a.Value))
	return fmt.Sprintf(`%s="%s"`, ns.qualify(a.Name), v.String())
}
