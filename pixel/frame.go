package pixel

import (
	"badc0de.net/pkg/go-pixsvg"
)

// Frame is one complete image: exactly width*height colours, row-major, so
// the pixel at (x, y) is at index y*width+x.
type Frame []PackedColor

// At returns the colour at (x, y) of a frame that is width pixels wide.
func (f Frame) At(x, y, width int) PackedColor {
	return f[y*width+x]
}

// Frames splits pixels into consecutive frames of frameSize colours. Trailing
// colours that do not fill a whole frame are dropped; a stream shorter than
// one frame yields no frames and no error.
//
// The returned frames share backing storage with pixels.
func Frames(pixels Stream, frameSize int) ([]Frame, error) {
	if frameSize <= 0 {
		return nil, pixsvg.Configf("frame size must be positive; got %d", frameSize)
	}
	n := len(pixels) / frameSize
	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		start := i * frameSize
		frames = append(frames, Frame(pixels[start:start+frameSize:start+frameSize]))
	}
	return frames, nil
}
