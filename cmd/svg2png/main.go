// Command svg2png strips the white background from a tree of SVG documents
// and rasterizes them into a parallel tree of PNG images, as described by a
// JSON configuration:
//
//	svg2png -config configs/svg_to_png.json -preview
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-pixsvg/batch"
	"badc0de.net/pkg/go-pixsvg/config"
	"badc0de.net/pkg/go-pixsvg/imageprint"
	"badc0de.net/pkg/go-pixsvg/paths"
	"badc0de.net/pkg/go-pixsvg/raster"
	"badc0de.net/pkg/go-pixsvg/svgdoc"
)

var (
	parallel    = flag.Int("parallel", 0, "files to process at once; 0 uses the configuration's value")
	scale       = flag.Int("scale", 1, "integer magnification of the PNG output")
	preview     = flag.Bool("preview", false, "print each converted image on the terminal")
	previewMode = flag.String("preview_mode", "24bit", "preview renderer: 24bit, 256, iterm, rasterm or nocolor")
	blanks      = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize    = flag.Bool("downsize", true, "shrink previews to fit the terminal")

	configPath string
)

func main() {
	paths.SetupFilePathFlag("svg2png.json", "config", &configPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	if configPath == "" {
		glog.Exitf("no -config given, and svg2png.json is in none of %v", paths.Dirs())
	}
	cfg, err := config.LoadRasterize(configPath)
	if err != nil {
		glog.Exitf("%v", err)
	}
	if *scale < 1 {
		glog.Exitf("-scale must be at least 1")
	}
	var printer *imageprint.Printer
	if *preview {
		mode, err := imageprint.ParseMode(*previewMode)
		if err != nil {
			glog.Exitf("%v", err)
		}
		printer = &imageprint.Printer{Mode: mode, Blanks: *blanks}
	}

	runner := &batch.Runner{
		Strip:     svgdoc.StripFile,
		Rasterize: (&raster.Rasterizer{Scale: *scale}).Rasterize,
		Parallel:  cfg.Parallel,
	}
	if *parallel > 0 {
		runner.Parallel = *parallel
	}

	ctx, stop := interruptible(context.Background())
	defer stop()
	report, err := runner.Run(ctx, cfg.Plan(), cfg.SVGBase, cfg.PNGBase)
	if report == nil && err != nil {
		glog.Exitf("%v", err)
	}

	if printer != nil {
		for _, res := range report {
			if res.Status == batch.Converted {
				show(printer, res.PNGPath)
			}
		}
	}

	fmt.Printf("%d converted, %d missing, %d failed\n",
		report.Count(batch.Converted), report.Count(batch.Missing), report.Count(batch.Failed))
	if err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
}

// interruptible returns a context canceled on SIGINT or SIGTERM, so a batch
// stops scheduling files and still reports what it did.
func interruptible(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
