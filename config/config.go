// Package config reads the JSON records that drive the two pipelines. A
// record may live on disk or behind an http(s) URL.
//
// A vectorize record looks like:
//
//	{
//	  "input_dir": "assets/c",
//	  "output_dir": "assets/svg",
//	  "file_names": ["Peao.c", "Rei.c"],
//	  "shared_frame_names": ["idle.svg", "walk.svg"],
//	  "width": 16, "height": 16, "pixel_size": 10,
//	  "packing": "abgr"
//	}
//
// and a rasterize record like:
//
//	{
//	  "svg_base": "assets/svg",
//	  "png_base": "assets/png",
//	  "name_path": ["peao", "rei"],
//	  "tipos": ["Base", "Alt"]
//	}
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/paths"
)

func load(path string, v interface{ Validate() error }) error {
	b, err := paths.ReadFile(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return pixsvg.Missingf("configuration %q does not exist", path)
		}
		return errors.Wrapf(err, "reading configuration %q", path)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return pixsvg.Mark(err, pixsvg.ErrConfig, "decoding "+path)
	}
	if err := v.Validate(); err != nil {
		return errors.Wrapf(err, "configuration %q", path)
	}
	glog.V(1).Infof("loaded configuration %s", path)
	return nil
}
