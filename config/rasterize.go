package config

import (
	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/batch"
)

// Rasterize configures a batch over svg_base/{item} into png_base/{item}.
type Rasterize struct {
	SVGBase  string   `json:"svg_base"`
	PNGBase  string   `json:"png_base"`
	NamePath []string `json:"name_path"`
	// Tipos are type suffixes: item "peao" with suffix "Base" visits
	// PeaoBase.svg.
	Tipos     []string            `json:"tipos,omitempty"`
	ItemTipos map[string][]string `json:"item_tipos,omitempty"`
	// SharedSVGNames are literal file names visited in every item.
	SharedSVGNames []string `json:"shared_svg_names,omitempty"`
	Parallel       int      `json:"parallel,omitempty"`
}

// LoadRasterize reads and validates the record at path.
func LoadRasterize(path string) (*Rasterize, error) {
	r := &Rasterize{}
	if err := load(path, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Plan returns the batch described by r.
func (r *Rasterize) Plan() batch.Plan {
	return batch.Plan{
		Items:       r.NamePath,
		Types:       r.Tipos,
		ItemTypes:   r.ItemTipos,
		SharedNames: r.SharedSVGNames,
	}
}

// Validate checks the record for missing or contradictory values.
func (r *Rasterize) Validate() error {
	switch {
	case r.SVGBase == "":
		return pixsvg.Configf("svg_base not set")
	case r.PNGBase == "":
		return pixsvg.Configf("png_base not set")
	case len(r.NamePath) == 0:
		return pixsvg.Configf("name_path is empty")
	case r.Parallel < 0:
		return pixsvg.Configf("parallel is negative")
	}
	plan := r.Plan()
	return plan.Validate()
}
