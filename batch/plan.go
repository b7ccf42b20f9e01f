// Package batch drives background stripping and rasterization over a tree
// of vector documents laid out as svgBase/{item}/{file}.svg, mirroring the
// results into pngBase/{item}/{file}.png.
package batch

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"badc0de.net/pkg/go-pixsvg"
)

// Plan names the files a batch visits. Exactly one of the two naming modes
// must be used:
//
//   - type suffixes: each item contributes Capitalize(item)+suffix+".svg" for
//     every suffix in ItemTypes[item], or in Types when the item has no
//     entry of its own;
//   - shared names: each item contributes every name in SharedNames
//     verbatim.
type Plan struct {
	Items       []string
	Types       []string
	ItemTypes   map[string][]string
	SharedNames []string
}

func (p *Plan) typed() bool {
	return len(p.Types) > 0 || len(p.ItemTypes) > 0
}

// Validate checks p without touching the filesystem.
func (p *Plan) Validate() error {
	shared := len(p.SharedNames) > 0
	switch {
	case !p.typed() && !shared:
		return pixsvg.Configf("batch names neither type suffixes nor shared file names")
	case p.typed() && shared:
		return pixsvg.Configf("batch names both type suffixes and shared file names")
	}
	for i, item := range p.Items {
		if item == "" {
			return pixsvg.Configf("item %d has an empty name", i)
		}
		if strings.ContainsAny(item, `/\`) || item == "." || item == ".." {
			return pixsvg.Configf("item %q is not a plain directory name", item)
		}
		if p.typed() && len(p.suffixes(item)) == 0 {
			return pixsvg.Configf("item %q has no type suffixes", item)
		}
	}
	for item := range p.ItemTypes {
		if !contains(p.Items, item) {
			return pixsvg.Configf("type suffixes given for unknown item %q", item)
		}
	}
	return nil
}

func (p *Plan) suffixes(item string) []string {
	if types, ok := p.ItemTypes[item]; ok {
		return types
	}
	return p.Types
}

// Files returns the vector file names visited for item, in order.
func (p *Plan) Files(item string) []string {
	if !p.typed() {
		return append([]string(nil), p.SharedNames...)
	}
	prefix := Capitalize(item)
	var names []string
	for _, suffix := range p.suffixes(item) {
		names = append(names, prefix+suffix+".svg")
	}
	return names
}

// Capitalize upper-cases the first letter of s and lower-cases the rest:
// "peao" and "PEAO" both become "Peao".
func Capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:])
}

// PNGName maps a vector file name to its raster counterpart.
func PNGName(svgName string) string {
	return strings.TrimSuffix(svgName, filepath.Ext(svgName)) + ".png"
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
