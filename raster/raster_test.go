package raster

import (
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/pixel"
	"badc0de.net/pkg/go-pixsvg/svgdoc"
	"badc0de.net/pkg/go-pixsvg/ttesting"
)

func assertPixel(t *testing.T, name string, img image.Image, x, y int, want color.NRGBA) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		if diff(got.R, want.R) > 1 || diff(got.G, want.G) > 1 || diff(got.B, want.B) > 1 || diff(got.A, want.A) > 1 {
			t.Errorf("pixel (%d,%d) = %v; want %v", x, y, got, want)
		}
	})
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestRenderRendered(t *testing.T) {
	doc, err := svgdoc.Render(pixel.Frame{0x00112233, 0xFF445566, 0x80FF0000, 0xFF00FF00}, 2, 2, 1, pixel.ARGB)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := (&Rasterizer{}).Render(doc)
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	ttesting.AssertEqualInt(t, "width", img.Bounds().Dx(), 2)
	ttesting.AssertEqualInt(t, "height", img.Bounds().Dy(), 2)
	assertPixel(t, "transparent pixel", img, 0, 0, color.NRGBA{})
	assertPixel(t, "opaque pixel", img, 1, 0, color.NRGBA{68, 85, 102, 255})
	assertPixel(t, "half transparent pixel", img, 0, 1, color.NRGBA{255, 0, 0, 128})
	assertPixel(t, "green pixel", img, 1, 1, color.NRGBA{0, 255, 0, 255})
}

func TestRenderScaled(t *testing.T) {
	doc, _ := svgdoc.Render(pixel.Frame{0xFF0000FF, 0x00000000}, 2, 1, 2, pixel.ARGB)
	img, err := (&Rasterizer{Scale: 3}).Render(doc)
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	ttesting.AssertEqualInt(t, "width", img.Bounds().Dx(), 12)
	ttesting.AssertEqualInt(t, "height", img.Bounds().Dy(), 6)
	assertPixel(t, "inside first square", img, 5, 5, color.NRGBA{0, 0, 255, 255})
	assertPixel(t, "second square empty", img, 6, 0, color.NRGBA{})
}

func TestRenderFills(t *testing.T) {
	doc := &svgdoc.Document{Width: 4, Height: 1}
	doc.Shapes = append(doc.Shapes,
		svgdoc.NewRect(0, 0, 1, 1, "#00f"),
		svgdoc.NewRect(1, 0, 1, 1, "none"),
		svgdoc.NewRect(2, 0, 1, 1, "white"),
	)
	black := svgdoc.NewRect(3, 0, 1, 1, "")
	black.Attrs = black.Attrs[:4]
	doc.Shapes = append(doc.Shapes, black)

	img, err := (&Rasterizer{}).Render(doc)
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	assertPixel(t, "short hex", img, 0, 0, color.NRGBA{0, 0, 255, 255})
	assertPixel(t, "none", img, 1, 0, color.NRGBA{})
	assertPixel(t, "keyword", img, 2, 0, color.NRGBA{255, 255, 255, 255})
	assertPixel(t, "missing fill is black", img, 3, 0, color.NRGBA{0, 0, 0, 255})

	bad := &svgdoc.Document{Width: 1, Height: 1, Shapes: []svgdoc.Shape{svgdoc.NewRect(0, 0, 1, 1, "url(#g)")}}
	_, err = (&Rasterizer{}).Render(bad)
	ttesting.AssertKind(t, "unsupported fill", err, pixsvg.ErrRasterize)
}

func TestRasterize(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "svg", "peao", "PeaoBase.svg")
	doc, _ := svgdoc.Render(pixel.Frame{0x00112233, 0xFF445566}, 2, 1, 10, pixel.ARGB)
	if err := svgdoc.WriteFile(svgPath, doc); err != nil {
		t.Fatal(err)
	}

	pngPath := filepath.Join(dir, "png", "peao", "PeaoBase.png")
	if err := (&Rasterizer{}).Rasterize(svgPath, pngPath); err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ttesting.AssertEqualInt(t, "width", img.Bounds().Dx(), 20)
	ttesting.AssertEqualInt(t, "height", img.Bounds().Dy(), 10)
	assertPixel(t, "left half transparent", img, 9, 9, color.NRGBA{})
	assertPixel(t, "right half opaque", img, 10, 0, color.NRGBA{68, 85, 102, 255})

	entries, _ := ioutil.ReadDir(filepath.Dir(pngPath))
	ttesting.AssertEqualInt(t, "no temporaries", len(entries), 1)
}

func TestRasterizeForeign(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "icon.svg")
	src := `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 5 5">
<g><rect x="0" y="0" width="5" height="5" fill="blue"/></g>
</svg>`
	if err := ioutil.WriteFile(svgPath, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := svgdoc.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Foreign() {
		t.Fatalf("grouped, scaled document not treated as foreign")
	}

	img, err := (&Rasterizer{}).Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	ttesting.AssertEqualInt(t, "canvas follows declared size", img.Bounds().Dx(), 10)
	assertPixel(t, "viewBox scaled to canvas", img, 8, 8, color.NRGBA{0, 0, 255, 255})
}

func TestRasterizeErrors(t *testing.T) {
	dir := t.TempDir()
	r := &Rasterizer{}

	err := r.Rasterize(filepath.Join(dir, "missing.svg"), filepath.Join(dir, "missing.png"))
	ttesting.AssertKind(t, "missing source", err, pixsvg.ErrMissing)

	bad := filepath.Join(dir, "bad.svg")
	ioutil.WriteFile(bad, []byte(strings.Repeat("<svg", 3)), 0644)
	err = r.Rasterize(bad, filepath.Join(dir, "bad.png"))
	ttesting.AssertKind(t, "malformed source", err, pixsvg.ErrRasterize)
	if _, serr := os.Stat(filepath.Join(dir, "bad.png")); !os.IsNotExist(serr) {
		t.Errorf("failed rasterization left an output file")
	}
}
