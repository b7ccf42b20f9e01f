package svgdoc

import (
	"strings"

	"github.com/golang/glog"
)

// Background is the fill of the opaque white background rectangles that
// Strip removes. It is matched case-insensitively.
const Background = "#ffffff"

// IsBackground reports whether s is a background rectangle.
func IsBackground(s Shape) bool {
	if !s.IsRect() {
		return false
	}
	fill, ok := s.Fill()
	return ok && strings.EqualFold(fill, Background)
}

// Strip returns a copy of doc without background rectangles, and how many
// were removed. The remaining shapes keep their relative order. doc itself
// is not modified.
func Strip(doc *Document) (*Document, int) {
	out := *doc
	out.Shapes = make([]Shape, 0, len(doc.Shapes))
	for _, s := range doc.Shapes {
		if IsBackground(s) {
			continue
		}
		out.Shapes = append(out.Shapes, s)
	}
	removed := len(doc.Shapes) - len(out.Shapes)
	if removed > 0 {
		glog.V(2).Infof("stripped %d background rects", removed)
	}
	return &out, removed
}
