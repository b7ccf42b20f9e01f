// Package web serves a small gallery over the svg and png trees produced by
// the two pipelines.
package web

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"golang.org/x/net/trace"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/raster"
	"badc0de.net/pkg/go-pixsvg/svgdoc"
)

type Handler struct {
	svgBase string
	pngBase string
	r       *raster.Rasterizer
}

// NewHandler constructs a gallery over svgBase/{item} and pngBase/{item}.
// rasterizer renders documents on the fly; nil means the default one.
func NewHandler(svgBase, pngBase string, rasterizer *raster.Rasterizer) *Handler {
	if rasterizer == nil {
		rasterizer = &raster.Rasterizer{}
	}
	return &Handler{svgBase: svgBase, pngBase: pngBase, r: rasterizer}
}

// RegisterRoutes adds the gallery routes to r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.Use(traceMiddleware)
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/png/{item}/{name}", h.pngHandler)
	r.HandleFunc("/svg/{item}/{name}", h.svgHandler)
	r.HandleFunc("/render/{item}/{name}", h.renderHandler)
	r.HandleFunc("/anim/{item}.gif", h.animHandler)
	r.HandleFunc("/debug/requests", trace.Traces)
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr := trace.New("pixsvg.web", r.URL.Path)
		defer tr.Finish()
		tr.LazyPrintf("%s %s", r.Method, r.URL)
		next.ServeHTTP(w, r.WithContext(trace.NewContext(r.Context(), tr)))
	})
}

// plainName rejects anything that is not a single path element.
func plainName(s string) bool {
	return s != "" && !strings.HasPrefix(s, ".") && !strings.ContainsAny(s, `/\`)
}

// file resolves base/{item}/{name} for the request, or writes an error.
func file(w http.ResponseWriter, r *http.Request, base, ext string) (string, bool) {
	vars := mux.Vars(r)
	item, name := vars["item"], vars["name"]
	if !plainName(item) || !plainName(name) || !strings.EqualFold(filepath.Ext(name), ext) {
		http.Error(w, "bad file name", http.StatusBadRequest)
		return "", false
	}
	return filepath.Join(base, item, name), true
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, path, mime string) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	s, err := f.Stat()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag(s))
	http.ServeContent(w, r, s.Name(), s.ModTime(), f)
}

func etag(s os.FileInfo) string {
	return fmt.Sprintf(`W/"%x:%x"`, s.ModTime().UnixNano(), s.Size())
}

func (h *Handler) pngHandler(w http.ResponseWriter, r *http.Request) {
	if path, ok := file(w, r, h.pngBase, ".png"); ok {
		h.serveFile(w, r, path, "image/png")
	}
}

func (h *Handler) svgHandler(w http.ResponseWriter, r *http.Request) {
	if path, ok := file(w, r, h.svgBase, ".svg"); ok {
		h.serveFile(w, r, path, "image/svg+xml")
	}
}

// renderHandler rasterizes a document on request, without touching the
// png tree. ?scale=N magnifies it.
func (h *Handler) renderHandler(w http.ResponseWriter, r *http.Request) {
	path, ok := file(w, r, h.svgBase, ".svg")
	if !ok {
		return
	}
	rasterizer := h.r
	if s := r.URL.Query().Get("scale"); s != "" {
		scale, err := strconv.Atoi(s)
		if err != nil || scale < 1 || scale > 32 {
			http.Error(w, "scale must be between 1 and 32", http.StatusBadRequest)
			return
		}
		rasterizer = &raster.Rasterizer{Scale: scale}
	}

	start := time.Now()
	doc, err := svgdoc.ReadFile(path)
	if err != nil {
		code := http.StatusInternalServerError
		if pixsvg.Kind(err) == pixsvg.ErrMissing {
			code = http.StatusNotFound
		}
		http.Error(w, err.Error(), code)
		return
	}
	img, err := rasterizer.Render(doc)
	if err != nil {
		glog.Errorf("rendering %s: %v", path, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if tr, ok := trace.FromContext(r.Context()); ok {
		tr.LazyPrintf("rendered %dx%d in %v", img.Bounds().Dx(), img.Bounds().Dy(), time.Since(start))
	}
	writePNG(w, img)
}

func writePNG(w http.ResponseWriter, img image.Image) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
