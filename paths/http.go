package paths

import (
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Client fetches remote files for ReadFile.
var Client = &http.Client{Timeout: 30 * time.Second}

// IsURL reports whether name is an http or https URL.
func IsURL(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

// ReadFile reads a local file, or fetches name over HTTP if it is a URL. A
// 404 is reported as os.ErrNotExist, like a missing local file.
func ReadFile(name string) ([]byte, error) {
	if !IsURL(name) {
		return ioutil.ReadFile(name)
	}
	glog.V(1).Infof("paths.ReadFile: fetching %s", name)
	response, err := Client.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %q", name)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		e := os.ErrInvalid
		if response.StatusCode == http.StatusNotFound {
			e = os.ErrNotExist
		}
		return nil, errors.Wrapf(e, "fetching %q: http status %v, want 200", name, response.StatusCode)
	}
	b, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading response for %q", name)
	}
	return b, nil
}
