package web

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// animHandler plays the PNG frames of an item, in name order, as an
// animated GIF. ?delay= sets the frame delay in 100ths of a second.
func (h *Handler) animHandler(w http.ResponseWriter, r *http.Request) {
	item := mux.Vars(r)["item"]
	if !plainName(item) {
		http.Error(w, "bad item name", http.StatusBadRequest)
		return
	}
	delay := 50
	if d := r.URL.Query().Get("delay"); d != "" {
		var err error
		if delay, err = strconv.Atoi(d); err != nil || delay < 1 {
			http.Error(w, "bad delay", http.StatusBadRequest)
			return
		}
	}

	dir := filepath.Join(h.pngBase, item)
	names, err := listDir(dir, ".png")
	if err != nil || len(names) == 0 {
		http.NotFound(w, r)
		return
	}
	var frames []image.Image
	for _, name := range names {
		img, err := decodePNG(filepath.Join(dir, name))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		frames = append(frames, img)
	}

	g, err := Animate(frames, delay)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.WriteHeader(http.StatusOK)
	if err := gif.EncodeAll(w, g); err != nil {
		glog.Errorf("encoding animation of %s: %v", item, err)
	}
}

// Animate builds a looping GIF from frames, all placed at the origin of a
// canvas large enough for the biggest one. The frames share one palette of
// up to 255 colours plus transparency, so colours stay stable from frame to
// frame.
func Animate(frames []image.Image, delay int) (*gif.GIF, error) {
	if len(frames) == 0 {
		return nil, errors.New("no frames to animate")
	}
	var bounds image.Rectangle
	for _, f := range frames {
		bounds = bounds.Union(f.Bounds().Sub(f.Bounds().Min))
	}

	// Stack every frame into one image so the quantizer sees them all.
	sheet := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()*len(frames)))
	for i, f := range frames {
		at := image.Rect(0, i*bounds.Dy(), f.Bounds().Dx(), i*bounds.Dy()+f.Bounds().Dy())
		draw.Draw(sheet, at, f, f.Bounds().Min, draw.Src)
	}
	q := quantize.MedianCutQuantizer{}
	pal := append(color.Palette{color.Transparent}, q.Quantize(make(color.Palette, 0, 255), sheet)...)

	g := &gif.GIF{BackgroundIndex: 0}
	for _, f := range frames {
		// Index 0 is transparent, so the empty image defaults to it.
		p := image.NewPaletted(bounds, pal)
		draw.Draw(p, f.Bounds().Sub(f.Bounds().Min), f, f.Bounds().Min, draw.Over)
		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	return g, nil
}
