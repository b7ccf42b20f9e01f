package vectorize

import (
	"path/filepath"
	"regexp"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/pixel"
	"badc0de.net/pkg/go-pixsvg/svgdoc"
)

// Converter renders the frames of one source file.
type Converter struct {
	// Width and Height are the frame size in source pixels.
	Width, Height int
	// PixelSize is the edge of one source pixel in output units.
	PixelSize int
	Packing   pixel.Packing
	// MinFrames is the fewest frames a source may yield; zero means one.
	MinFrames int
	// Pattern matches pixel tokens; nil means pixel.HexLiteral.
	Pattern *regexp.Regexp
}

func (c *Converter) validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.PixelSize <= 0 {
		return pixsvg.Configf("frame geometry %dx%d at pixel size %d is not positive", c.Width, c.Height, c.PixelSize)
	}
	if !c.Packing.Valid() {
		return pixsvg.Configf("channel packing not specified")
	}
	if c.MinFrames < 0 {
		return pixsvg.Configf("minimum frame count %d is negative", c.MinFrames)
	}
	return nil
}

// Render extracts and renders every frame of the source at inPath.
func (c *Converter) Render(inPath string) ([]*svgdoc.Document, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	pixels, err := pixel.ExtractFile(inPath, c.Pattern)
	if err != nil {
		return nil, err
	}

	frameSize := c.Width * c.Height
	min := c.MinFrames
	if min == 0 {
		min = 1
	}
	if len(pixels) < frameSize*min {
		return nil, pixsvg.Parsef("insufficient pixels in %q: found %d, need at least %d", inPath, len(pixels), frameSize*min)
	}
	frames, err := pixel.Frames(pixels, frameSize)
	if err != nil {
		return nil, err
	}
	if rest := len(pixels) % frameSize; rest != 0 {
		glog.Warningf("%s: discarding %d trailing pixels", inPath, rest)
	}

	docs := make([]*svgdoc.Document, 0, len(frames))
	for i, f := range frames {
		doc, err := svgdoc.Render(f, c.Width, c.Height, c.PixelSize, c.Packing)
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d of %q", i+1, inPath)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ProcessFile renders every frame of inPath and writes them into outDir,
// named per NamesFor. Nothing is written unless all frames render. The
// written paths are returned, including on a write failure part way.
func (c *Converter) ProcessFile(inPath, outDir, baseName string, names []string) ([]string, error) {
	docs, err := c.Render(inPath)
	if err != nil {
		return nil, err
	}
	var written []string
	for i, name := range NamesFor(len(docs), names, baseName) {
		path := filepath.Join(outDir, name)
		if err := svgdoc.WriteFile(path, docs[i]); err != nil {
			return written, err
		}
		glog.Infof("generated: %s", path)
		written = append(written, path)
	}
	return written, nil
}
