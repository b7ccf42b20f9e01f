package batch

import (
	"testing"

	"badc0de.net/pkg/go-pixsvg"
	"badc0de.net/pkg/go-pixsvg/ttesting"
)

func TestValidate(t *testing.T) {
	tcs := []struct {
		name string
		plan Plan
		want error
	}{
		{"types", Plan{Items: []string{"peao"}, Types: []string{"Base"}}, nil},
		{"shared", Plan{Items: []string{"peao"}, SharedNames: []string{"a.svg"}}, nil},
		{"per item types only", Plan{Items: []string{"peao"}, ItemTypes: map[string][]string{"peao": {"Base"}}}, nil},
		{"neither", Plan{Items: []string{"peao"}}, pixsvg.ErrConfig},
		{"both", Plan{Items: []string{"peao"}, Types: []string{"Base"}, SharedNames: []string{"a.svg"}}, pixsvg.ErrConfig},
		{"empty item", Plan{Items: []string{""}, Types: []string{"Base"}}, pixsvg.ErrConfig},
		{"path item", Plan{Items: []string{"../etc"}, Types: []string{"Base"}}, pixsvg.ErrConfig},
		{"item lacking suffixes", Plan{Items: []string{"peao", "rei"}, ItemTypes: map[string][]string{"peao": {"Base"}}}, pixsvg.ErrConfig},
		{"suffixes for unknown item", Plan{Items: []string{"peao"}, Types: []string{"Base"}, ItemTypes: map[string][]string{"dama": {"Base"}}}, pixsvg.ErrConfig},
	}
	for _, tc := range tcs {
		ttesting.AssertKind(t, tc.name, tc.plan.Validate(), tc.want)
	}
}

func TestFiles(t *testing.T) {
	plan := Plan{
		Items:     []string{"peao", "REI"},
		Types:     []string{"Base", "Alt"},
		ItemTypes: map[string][]string{"REI": {"Coroa"}},
	}
	ttesting.AssertDiff(t, "default suffixes", plan.Files("peao"), []string{"PeaoBase.svg", "PeaoAlt.svg"})
	ttesting.AssertDiff(t, "item override", plan.Files("REI"), []string{"ReiCoroa.svg"})

	shared := Plan{Items: []string{"peao"}, SharedNames: []string{"idle.svg", "walk.svg"}}
	ttesting.AssertDiff(t, "shared names verbatim", shared.Files("peao"), []string{"idle.svg", "walk.svg"})
}

func TestCapitalize(t *testing.T) {
	for in, want := range map[string]string{
		"peao":  "Peao",
		"PEAO":  "Peao",
		"":      "",
		"élan":  "Élan",
		"x":     "X",
		"torre": "Torre",
	} {
		ttesting.AssertEqualString(t, in, Capitalize(in), want)
	}
}

func TestPNGName(t *testing.T) {
	ttesting.AssertEqualString(t, "svg", PNGName("PeaoBase.svg"), "PeaoBase.png")
	ttesting.AssertEqualString(t, "no extension", PNGName("frame"), "frame.png")
	ttesting.AssertEqualString(t, "dots", PNGName("a.b.svg"), "a.b.png")
}
