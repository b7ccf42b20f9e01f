package config

import (
	"regexp"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/pixel"
)

// Vectorize configures conversion of source files into per-frame vector
// documents.
type Vectorize struct {
	InputDir  string   `json:"input_dir"`
	OutputDir string   `json:"output_dir"`
	FileNames []string `json:"file_names"`
	// FrameNames holds one list of output names per entry of FileNames.
	FrameNames [][]string `json:"frame_names,omitempty"`
	// SharedFrameNames is used for every source when FrameNames is unset.
	SharedFrameNames []string `json:"shared_frame_names,omitempty"`

	Width     int `json:"width"`
	Height    int `json:"height"`
	PixelSize int `json:"pixel_size"`

	// Packing is "argb" or "abgr". Packings overrides it per file name.
	Packing  string            `json:"packing,omitempty"`
	Packings map[string]string `json:"packings,omitempty"`

	// MinFrames is the fewest frames a source may yield; zero means one.
	MinFrames int `json:"min_frames,omitempty"`
	// Pattern overrides the hexadecimal literal pattern.
	Pattern string `json:"pattern,omitempty"`
}

// LoadVectorize reads and validates the record at path.
func LoadVectorize(path string) (*Vectorize, error) {
	v := &Vectorize{}
	if err := load(path, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate checks the record for missing or contradictory values.
func (v *Vectorize) Validate() error {
	switch {
	case v.InputDir == "":
		return pixsvg.Configf("input_dir not set")
	case v.OutputDir == "":
		return pixsvg.Configf("output_dir not set")
	case len(v.FileNames) == 0:
		return pixsvg.Configf("file_names is empty")
	case v.Width <= 0 || v.Height <= 0 || v.PixelSize <= 0:
		return pixsvg.Configf("width, height and pixel_size must be positive; got %d, %d, %d", v.Width, v.Height, v.PixelSize)
	case v.MinFrames < 0:
		return pixsvg.Configf("min_frames is negative")
	case v.FrameNames != nil && v.SharedFrameNames != nil:
		return pixsvg.Configf("frame_names and shared_frame_names are mutually exclusive")
	case v.FrameNames != nil && len(v.FrameNames) != len(v.FileNames):
		return pixsvg.Configf("frame_names has %d lists for %d file_names", len(v.FrameNames), len(v.FileNames))
	}
	for _, name := range v.FileNames {
		if _, err := v.PackingFor(name); err != nil {
			return err
		}
	}
	for name := range v.Packings {
		if !contains(v.FileNames, name) {
			return pixsvg.Configf("packing given for unknown file %q", name)
		}
	}
	if _, err := v.Regexp(); err != nil {
		return err
	}
	return nil
}

// PackingFor returns the channel packing of the named source file.
func (v *Vectorize) PackingFor(fileName string) (pixel.Packing, error) {
	s := v.Packing
	if p, ok := v.Packings[fileName]; ok {
		s = p
	}
	p, err := pixel.ParsePacking(s)
	if err != nil {
		return 0, pixsvg.Mark(err, pixsvg.ErrConfig, "file "+fileName)
	}
	return p, nil
}

// FrameNamesFor returns the explicit output names of the i-th source file.
// Frames beyond the list get generated names.
func (v *Vectorize) FrameNamesFor(i int) []string {
	if v.FrameNames != nil {
		return v.FrameNames[i]
	}
	return v.SharedFrameNames
}

// Regexp compiles Pattern, or returns pixel.HexLiteral when unset.
func (v *Vectorize) Regexp() (*regexp.Regexp, error) {
	if v.Pattern == "" {
		return pixel.HexLiteral, nil
	}
	re, err := regexp.Compile(v.Pattern)
	if err != nil {
		return nil, pixsvg.Mark(err, pixsvg.ErrConfig, "pattern")
	}
	return re, nil
}

// Minimum returns the effective minimum frame count.
func (v *Vectorize) Minimum() int {
	if v.MinFrames <= 0 {
		return 1
	}
	return v.MinFrames
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
