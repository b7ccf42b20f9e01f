package main

import (
	"image/png"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-pixsvg/imageprint"
)

func show(p *imageprint.Printer, path string) {
	f, err := os.Open(path)
	if err != nil {
		glog.Errorf("preview: %v", err)
		return
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		glog.Errorf("preview of %s: %v", path, err)
		return
	}
	if *downsize {
		if sz, err := imageprint.GetTermSize(); err == nil {
			img = p.Fit(img, sz)
		}
	}
	os.Stdout.WriteString(path + "\n")
	if err := p.Print(img, filepath.Base(path)); err != nil {
		glog.Errorf("preview of %s: %v", path, err)
	}
}
