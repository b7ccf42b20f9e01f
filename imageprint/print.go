// Package imageprint prints images on terminal.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/pkg/errors"
)

// Mode selects how Printer draws.
type Mode int

const (
	// Mode24Bit paints blocks with 24-bit background escape sequences.
	Mode24Bit Mode = iota
	// Mode256 paints blocks through gookit/color, which falls back to the
	// closest xterm 256-colour where true colour is unavailable.
	Mode256
	// ModeITerm sends the image inline using iTerm2's escape sequences.
	ModeITerm
	// ModeRasTerm picks kitty, iTerm or sixel graphics, whichever the
	// terminal speaks.
	ModeRasTerm
	// ModeNoColor draws shades only. Only makes sense with Blanks unset.
	ModeNoColor
)

var modeNames = map[Mode]string{
	Mode24Bit:   "24bit",
	Mode256:     "256",
	ModeITerm:   "iterm",
	ModeRasTerm: "rasterm",
	ModeNoColor: "nocolor",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown preview mode %q", s)
}

// Printer draws images onto a terminal.
type Printer struct {
	// Out receives the output; nil means os.Stdout.
	Out  io.Writer
	Mode Mode
	// Blanks paints coloured blanks instead of some bad ascii art.
	Blanks bool
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Print draws img. name is passed on to terminals which display it.
func (p *Printer) Print(img image.Image, name string) error {
	switch p.Mode {
	case ModeITerm:
		return p.printITerm(img, name)
	case ModeRasTerm:
		return p.printRasTerm(img)
	}
	w := p.out()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		var line strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			line.WriteString(p.shade(img.At(x, y)))
		}
		if p.Mode != ModeNoColor {
			line.WriteString("\x1b[0m")
		}
		line.WriteString("\n")
		if _, err := io.WriteString(w, line.String()); err != nil {
			return errors.Wrap(err, "printing image")
		}
	}
	return nil
}

func (p *Printer) shade(col ic.Color) string {
	nc := ic.NRGBAModel.Convert(col).(ic.NRGBA)
	if nc.A == 0 {
		if p.Mode == ModeNoColor {
			return "  "
		}
		return "\x1b[0m  "
	}

	cell := "  "
	if !p.Blanks {
		a := (int(nc.R) + int(nc.G) + int(nc.B)) / 3
		switch {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	switch p.Mode {
	case ModeNoColor:
		return cell
	case Mode256:
		return color.RGB(nc.R, nc.G, nc.B, true).Sprint(cell)
	default:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", nc.R, nc.G, nc.B, cell)
	}
}

// printITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func (p *Printer) printITerm(img image.Image, name string) error {
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, img); err != nil {
		return errors.Wrap(err, "encoding image for iterm")
	}
	bEnc.Close()
	encName := base64.StdEncoding.EncodeToString([]byte(name))
	_, err := fmt.Fprintf(p.out(), "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n",
		encName, b.Len(), img.Bounds().Dx(), img.Bounds().Dy(), b.String())
	return err
}
