package pixel

import (
	"io/ioutil"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-pixsvg"
)

// HexLiteral matches C-style hexadecimal literals such as 0xFF00FF00.
var HexLiteral = regexp.MustCompile(`0x[0-9a-fA-F]+`)

// Stream is a sequence of packed colours in the order they appeared in the
// source text. For sprite exports that is row-major raster order.
type Stream []PackedColor

// Extract finds every non-overlapping match of re in text, left to right,
// and decodes it as a base-16 PackedColor. A leading 0x or 0X is ignored. A
// nil re means HexLiteral.
//
// Text without any match yields an empty stream and no error; deciding
// whether that is acceptable is up to the caller.
func Extract(text string, re *regexp.Regexp) (Stream, error) {
	if re == nil {
		re = HexLiteral
	}
	tokens := re.FindAllString(text, -1)
	pixels := make(Stream, 0, len(tokens))
	for i, tok := range tokens {
		digits := tok
		if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
			digits = digits[2:]
		}
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			// The pattern and the parser disagree; nothing sensible to recover.
			return nil, pixsvg.Parsef("token %d (%q): %v", i, tok, err)
		}
		pixels = append(pixels, PackedColor(v))
	}
	glog.V(2).Infof("extracted %d pixels", len(pixels))
	return pixels, nil
}

// ExtractFile reads the file at path and extracts its pixel stream.
func ExtractFile(path string, re *regexp.Regexp) (Stream, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pixsvg.Missingf("source %q does not exist", path)
		}
		return nil, errors.Wrapf(err, "reading source %q", path)
	}
	pixels, err := Extract(string(b), re)
	if err != nil {
		return nil, errors.Wrapf(err, "extracting pixels from %q", path)
	}
	return pixels, nil
}
