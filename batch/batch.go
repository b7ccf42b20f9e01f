package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-pixsvg"
)

// Status is the outcome of one file of a batch.
type Status int

const (
	// Converted means the raster file was written.
	Converted Status = iota
	// Missing means the vector source did not exist.
	Missing
	// Failed means rasterization (or preparing the item) failed; see Err.
	Failed
	// Canceled means the batch was canceled before the file was started.
	Canceled
)

func (s Status) String() string {
	switch s {
	case Converted:
		return "converted"
	case Missing:
		return "missing"
	case Failed:
		return "failed"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result records what happened to one (item, file) pair.
type Result struct {
	Item    string
	SVGPath string
	PNGPath string
	Status  Status
	// Stripped is the number of background rects removed.
	Stripped int
	// StripErr is set when stripping failed. Rasterization is still
	// attempted on the unstripped document.
	StripErr error
	Err      error
}

// Report lists results in (item, file) order.
type Report []Result

// Count returns how many results have status s.
func (r Report) Count(s Status) int {
	n := 0
	for _, res := range r {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Runner holds the per-file operations a batch applies.
type Runner struct {
	// Strip removes the background of the document at path in place.
	Strip func(path string) (int, error)
	// Rasterize writes a raster rendering of svgPath to pngPath.
	Rasterize func(svgPath, pngPath string) error
	// Parallel bounds how many files are processed at once. Values below 1
	// mean one.
	Parallel int
}

type unit struct {
	item, svgPath, pngPath string
	err                    error
}

// Run visits every file of plan. Only an invalid plan is returned as an
// error, before anything on disk is looked at; per-file problems end up in
// the report. If ctx is canceled, files not yet started are reported as
// Canceled and ctx's error is returned alongside the report.
func (r *Runner) Run(ctx context.Context, plan Plan, svgBase, pngBase string) (Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if r.Strip == nil || r.Rasterize == nil {
		return nil, pixsvg.Configf("runner needs both a strip and a rasterize step")
	}

	var units []unit
	for _, item := range plan.Items {
		svgDir := filepath.Join(svgBase, item)
		pngDir := filepath.Join(pngBase, item)
		err := ensureDirs(svgDir, pngDir)
		if err != nil {
			glog.Errorf("item %s: %v", item, err)
		}
		for _, name := range plan.Files(item) {
			units = append(units, unit{
				item:    item,
				svgPath: filepath.Join(svgDir, name),
				pngPath: filepath.Join(pngDir, PNGName(name)),
				err:     err,
			})
		}
	}

	report := make(Report, len(units))
	for i, u := range units {
		report[i] = Result{Item: u.item, SVGPath: u.svgPath, PNGPath: u.pngPath, Status: Canceled}
	}

	parallel := r.Parallel
	if parallel < 1 {
		parallel = 1
	}
	var g errgroup.Group
	g.SetLimit(parallel)
	for i := range units {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			r.process(units[i], &report[i])
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		glog.Warningf("batch canceled: %d of %d files not started", report.Count(Canceled), len(report))
		return report, err
	}
	glog.Infof("batch done: %d converted, %d missing, %d failed",
		report.Count(Converted), report.Count(Missing), report.Count(Failed))
	return report, nil
}

func ensureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating directory %q", dir)
		}
	}
	return nil
}

func (r *Runner) process(u unit, res *Result) {
	if u.err != nil {
		res.Status, res.Err = Failed, u.err
		return
	}
	if _, err := os.Stat(u.svgPath); err != nil {
		if os.IsNotExist(err) {
			glog.Warningf("file not found: %s", u.svgPath)
			res.Status, res.Err = Missing, pixsvg.Missingf("%q does not exist", u.svgPath)
			return
		}
		glog.Errorf("%s: %v", u.svgPath, err)
		res.Status, res.Err = Failed, errors.Wrapf(err, "checking %q", u.svgPath)
		return
	}

	res.Stripped, res.StripErr = r.Strip(u.svgPath)
	if res.StripErr != nil {
		glog.Errorf("stripping background of %s: %v", u.svgPath, res.StripErr)
	}

	if err := r.Rasterize(u.svgPath, u.pngPath); err != nil {
		glog.Errorf("converting %s: %v", u.svgPath, err)
		res.Status, res.Err = Failed, err
		return
	}
	glog.Infof("converted: %s -> %s", u.svgPath, u.pngPath)
	res.Status = Converted
}
