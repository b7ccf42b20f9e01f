// Package paths locates configuration files and reads them from disk or
// over HTTP.
package paths

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// EnvDir names an environment variable holding an extra directory to search.
const EnvDir = "PIXSVG_CONFIG_DIR"

// Dirs returns the directories Find searches, in order: the working
// directory, $PIXSVG_CONFIG_DIR, a configs/ directory under the working
// directory, the directory of the running binary, and the user's
// configuration directory.
func Dirs() []string {
	dirs := []string{"."}
	if d := os.Getenv(EnvDir); d != "" {
		dirs = append(dirs, d)
	}
	dirs = append(dirs, "configs")
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if d, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(d, "pixsvg"))
	}
	return dirs
}

// Find locates the passed file short name and returns a path to it, or an
// empty string if it is in none of Dirs.
//
// For example, for "svg2png.json" it may return "configs/svg2png.json".
func Find(fileName string) string {
	for _, dir := range Dirs() {
		path := filepath.Join(dir, fileName)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}
