package vectorize

import (
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-pixsvg/config"
)

// SourceResult is the outcome of converting one source file.
type SourceResult struct {
	FileName string
	// Written lists the documents produced, in frame order.
	Written []string
	Err     error
}

// BaseName is the lower-cased stem of a source file name; it names the
// output directory and generated frame files of that source.
func BaseName(fileName string) string {
	return strings.ToLower(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
}

// Run converts every source file named by cfg into
// cfg.OutputDir/{BaseName}/. A failing source is logged and recorded, and
// the remaining sources are still converted.
func Run(cfg *config.Vectorize) []SourceResult {
	results := make([]SourceResult, 0, len(cfg.FileNames))
	for i, name := range cfg.FileNames {
		written, err := runOne(cfg, i)
		if err != nil {
			glog.Errorf("processing %q: %v", name, err)
		}
		results = append(results, SourceResult{FileName: name, Written: written, Err: err})
	}
	return results
}

func runOne(cfg *config.Vectorize, i int) ([]string, error) {
	name := cfg.FileNames[i]
	re, err := cfg.Regexp()
	if err != nil {
		return nil, err
	}
	packing, err := cfg.PackingFor(name)
	if err != nil {
		return nil, err
	}
	c := &Converter{
		Width:     cfg.Width,
		Height:    cfg.Height,
		PixelSize: cfg.PixelSize,
		Packing:   packing,
		MinFrames: cfg.Minimum(),
		Pattern:   re,
	}
	base := BaseName(name)
	return c.ProcessFile(
		filepath.Join(cfg.InputDir, name),
		filepath.Join(cfg.OutputDir, base),
		base,
		cfg.FrameNamesFor(i),
	)
}
