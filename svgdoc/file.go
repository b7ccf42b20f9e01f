package svgdoc

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-pixsvg"
)

// ReadFile parses the document stored at path.
func ReadFile(path string) (*Document, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pixsvg.Missingf("%q does not exist", path)
		}
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	doc, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", path)
	}
	return doc, nil
}

// WriteFile serializes doc and stores it at path, replacing any existing
// file. Missing parent directories are created.
func WriteFile(path string, doc *Document) error {
	return WriteAtomic(path, doc.Bytes())
}

// WriteAtomic stores data at path via a temporary file in the same
// directory, so path ends up either fully written or untouched. Missing
// parent directories are created.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating directory %q", dir)
	}
	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(path)+".tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temporary file for %q", path)
	}
	name := tmp.Name()
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(name, 0644)
	}
	if err == nil {
		err = os.Rename(name, path)
	}
	if err != nil {
		os.Remove(name)
		return errors.Wrapf(err, "writing %q", path)
	}
	return nil
}

// StripFile removes background rectangles from the document at path and
// rewrites it in place. A document without any is left untouched on disk.
// It returns the number of rectangles removed.
func StripFile(path string) (int, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	stripped, removed := Strip(doc)
	if removed == 0 {
		return 0, nil
	}
	if err := WriteFile(path, stripped); err != nil {
		return 0, err
	}
	glog.Infof("background removed: %s (%d rects)", path, removed)
	return removed, nil
}
