package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/batch"
	"badc0de.net/pkg/go-pixsvg/pixel"
	"badc0de.net/pkg/go-pixsvg/ttesting"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := ioutil.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadVectorize(t *testing.T) {
	path := writeConfig(t, `{
		"input_dir": "in",
		"output_dir": "out",
		"file_names": ["Peao.c", "Rei.c"],
		"frame_names": [["idle.svg"], []],
		"width": 2, "height": 3, "pixel_size": 10,
		"packing": "abgr",
		"packings": {"Rei.c": "argb"}
	}`)
	v, err := LoadVectorize(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ttesting.AssertEqualInt(t, "pixel size", v.PixelSize, 10)
	ttesting.AssertDiff(t, "first frame names", v.FrameNamesFor(0), []string{"idle.svg"})
	ttesting.AssertEqualInt(t, "default minimum", v.Minimum(), 1)

	p, _ := v.PackingFor("Peao.c")
	ttesting.AssertEqualString(t, "default packing", p.String(), pixel.ABGR.String())
	p, _ = v.PackingFor("Rei.c")
	ttesting.AssertEqualString(t, "per-file packing", p.String(), pixel.ARGB.String())

	re, _ := v.Regexp()
	if re != pixel.HexLiteral {
		t.Errorf("unset pattern should mean the hex literal pattern")
	}
}

func TestVectorizeValidate(t *testing.T) {
	valid := func() *Vectorize {
		return &Vectorize{
			InputDir:  "in",
			OutputDir: "out",
			FileNames: []string{"a.c"},
			Width:     1,
			Height:    1,
			PixelSize: 1,
			Packing:   "argb",
		}
	}
	tcs := []struct {
		name   string
		modify func(v *Vectorize)
		want   error
	}{
		{"valid", func(v *Vectorize) {}, nil},
		{"shared names", func(v *Vectorize) { v.SharedFrameNames = []string{"x.svg"} }, nil},
		{"no input dir", func(v *Vectorize) { v.InputDir = "" }, pixsvg.ErrConfig},
		{"no files", func(v *Vectorize) { v.FileNames = nil }, pixsvg.ErrConfig},
		{"zero width", func(v *Vectorize) { v.Width = 0 }, pixsvg.ErrConfig},
		{"negative pixel size", func(v *Vectorize) { v.PixelSize = -10 }, pixsvg.ErrConfig},
		{"no packing", func(v *Vectorize) { v.Packing = "" }, pixsvg.ErrConfig},
		{"bad packing", func(v *Vectorize) { v.Packing = "rgba" }, pixsvg.ErrConfig},
		{"packing for unknown file", func(v *Vectorize) { v.Packings = map[string]string{"b.c": "argb"} }, pixsvg.ErrConfig},
		{"both name modes", func(v *Vectorize) {
			v.FrameNames = [][]string{{"x.svg"}}
			v.SharedFrameNames = []string{"x.svg"}
		}, pixsvg.ErrConfig},
		{"frame names per file", func(v *Vectorize) { v.FrameNames = [][]string{{"x.svg"}, {"y.svg"}} }, pixsvg.ErrConfig},
		{"bad pattern", func(v *Vectorize) { v.Pattern = "0x[" }, pixsvg.ErrConfig},
		{"negative min frames", func(v *Vectorize) { v.MinFrames = -1 }, pixsvg.ErrConfig},
	}
	for _, tc := range tcs {
		v := valid()
		tc.modify(v)
		ttesting.AssertKind(t, tc.name, v.Validate(), tc.want)
	}
}

func TestLoadRasterize(t *testing.T) {
	path := writeConfig(t, `{
		"svg_base": "svg",
		"png_base": "png",
		"name_path": ["peao", "rei"],
		"tipos": ["Base"],
		"item_tipos": {"rei": ["Coroa"]},
		"parallel": 2
	}`)
	r, err := LoadRasterize(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ttesting.AssertEqualInt(t, "parallel", r.Parallel, 2)
	ttesting.AssertDiff(t, "plan", r.Plan(), batch.Plan{
		Items:     []string{"peao", "rei"},
		Types:     []string{"Base"},
		ItemTypes: map[string][]string{"rei": {"Coroa"}},
	})
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadRasterize(filepath.Join(t.TempDir(), "nope.json"))
	ttesting.AssertKind(t, "missing file", err, pixsvg.ErrMissing)

	_, err = LoadRasterize(writeConfig(t, `{"svg_base": `))
	ttesting.AssertKind(t, "malformed json", err, pixsvg.ErrConfig)

	_, err = LoadRasterize(writeConfig(t, `{"svg_base": "s", "png_base": "p", "name_path": ["a"], "tipo": ["Base"]}`))
	ttesting.AssertKind(t, "unknown key", err, pixsvg.ErrConfig)

	_, err = LoadRasterize(writeConfig(t, `{"svg_base": "s", "png_base": "p", "name_path": ["a"]}`))
	ttesting.AssertKind(t, "neither tipos nor shared_svg_names", err, pixsvg.ErrConfig)

	_, err = LoadRasterize(writeConfig(t, `{"svg_base": "s", "png_base": "p", "name_path": ["a"], "tipos": ["Base"], "shared_svg_names": ["a.svg"]}`))
	ttesting.AssertKind(t, "both tipos and shared_svg_names", err, pixsvg.ErrConfig)

	_, err = LoadVectorize(writeConfig(t, `{"input_dir": "i", "output_dir": "o", "file_names": ["a.c"], "width": 1, "height": 1, "pixel_size": 1}`))
	ttesting.AssertKind(t, "no packing", err, pixsvg.ErrConfig)
}
