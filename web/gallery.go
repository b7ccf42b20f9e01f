package web

import (
	"bytes"
	"html/template"
	"image"
	"image/png"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"
)

// ThumbnailSize bounds the edge of index thumbnails, in pixels.
const ThumbnailSize = 64

type thumb struct {
	Name     string
	Item     string
	DataURL  template.URL
	Dominant string
}

type itemEntry struct {
	Name   string
	Thumbs []thumb
	// SVGs without a raster counterpart yet.
	Pending []string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><title>pixsvg gallery</title></head>
<body>
{{range $e := .}}<h2>{{$e.Name}} <a href="/anim/{{$e.Name}}.gif">anim</a></h2>
<div>
{{range $e.Thumbs}}<figure style="display:inline-block;border-bottom:4px solid {{.Dominant}}">
<a href="/png/{{.Item}}/{{.Name}}"><img src="{{.DataURL}}" alt="{{.Name}}"></a>
<figcaption>{{.Name}}</figcaption></figure>
{{end}}</div>
{{if $e.Pending}}<ul>{{range $e.Pending}}<li><a href="/render/{{$e.Name}}/{{.}}">{{.}}</a></li>{{end}}</ul>{{end}}
{{end}}
</body></html>
`))

// listDir returns the sorted names of entries in dir with extension ext,
// or of subdirectories when ext is empty.
func listDir(dir, ext string) ([]string, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		switch {
		case ext == "" && e.IsDir():
			names = append(names, e.Name())
		case ext != "" && !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ext):
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// items lists item directories found under either tree.
func (h *Handler) items() ([]string, error) {
	seen := map[string]bool{}
	for _, base := range []string{h.svgBase, h.pngBase} {
		names, err := listDir(base, "")
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		for _, n := range names {
			seen[n] = true
		}
	}
	var out []string
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.items()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var entries []itemEntry
	for _, item := range items {
		entry := itemEntry{Name: item}
		pngs, _ := listDir(filepath.Join(h.pngBase, item), ".png")
		have := map[string]bool{}
		for _, name := range pngs {
			have[strings.TrimSuffix(name, filepath.Ext(name))] = true
			t, err := makeThumb(filepath.Join(h.pngBase, item, name))
			if err != nil {
				glog.Warningf("thumbnail for %s/%s: %v", item, name, err)
				continue
			}
			t.Name, t.Item = name, item
			entry.Thumbs = append(entry.Thumbs, t)
		}
		svgs, _ := listDir(filepath.Join(h.svgBase, item), ".svg")
		for _, name := range svgs {
			if !have[strings.TrimSuffix(name, filepath.Ext(name))] {
				entry.Pending = append(entry.Pending, name)
			}
		}
		entries = append(entries, entry)
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, entries); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", path)
	}
	return img, nil
}

// makeThumb returns a data URL of a downsized copy of the PNG at path, and
// its dominant colour.
func makeThumb(path string) (thumb, error) {
	img, err := decodePNG(path)
	if err != nil {
		return thumb{}, err
	}
	small := resize.Thumbnail(ThumbnailSize, ThumbnailSize, img, resize.NearestNeighbor)
	var buf bytes.Buffer
	if err := png.Encode(&buf, small); err != nil {
		return thumb{}, errors.Wrap(err, "encoding thumbnail")
	}
	byt, err := dataurl.New(buf.Bytes(), "image/png").MarshalText()
	if err != nil {
		return thumb{}, errors.Wrap(err, "encoding data url")
	}
	return thumb{
		DataURL:  template.URL(byt),
		Dominant: dominantcolor.Hex(dominantcolor.Find(img)),
	}, nil
}
