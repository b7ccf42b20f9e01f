// Package pixel decodes sprite pixel data embedded as hexadecimal literals
// in generated source text (typically C arrays exported by image editors).
//
// A source yields a flat Stream of packed colours in raster order; Frames
// splits that stream into fixed-size images. Two channel packings are found
// in the wild, and the caller has to say which one a source uses.
package pixel
