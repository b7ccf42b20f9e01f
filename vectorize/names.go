// Package vectorize turns sprite source files into one vector document per
// frame.
package vectorize

import (
	"fmt"
)

// NamesFor returns an output file name for each of frameCount frames.
// Frame i is named explicit[i] when the list is long enough, and
// "{baseName}_frame{i+1}.svg" otherwise, so a short list mixes both.
func NamesFor(frameCount int, explicit []string, baseName string) []string {
	names := make([]string, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		if i < len(explicit) {
			names = append(names, explicit[i])
			continue
		}
		names = append(names, fmt.Sprintf("%s_frame%d.svg", baseName, i+1))
	}
	return names
}
