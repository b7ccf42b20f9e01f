package paths

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"badc0de.net/pkg/go-pixsvg/ttesting"
)

func TestFindEnvDir(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "pixsvg-test-config.json")
	if err := ioutil.WriteFile(want, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvDir, dir)

	ttesting.AssertEqualString(t, "found via env", Find("pixsvg-test-config.json"), want)
	ttesting.AssertEqualString(t, "not found", Find("pixsvg-no-such-config.json"), "")
}

func TestReadFileHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/svg2png.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"svg_base": "svg"}`))
	}))
	defer srv.Close()

	b, err := ReadFile(srv.URL + "/svg2png.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	ttesting.AssertEqualString(t, "body", string(b), `{"svg_base": "svg"}`)

	_, err = ReadFile(srv.URL + "/nope.json")
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("404 should map to os.ErrNotExist; got %v", err)
	}
}

func TestReadFileLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c2svg.json")
	ioutil.WriteFile(path, []byte("{}"), 0644)
	b, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	ttesting.AssertEqualString(t, "body", string(b), "{}")
	if IsURL(path) {
		t.Errorf("local path classified as URL")
	}
}
