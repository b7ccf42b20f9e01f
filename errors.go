// Package pixsvg converts sprite pixel data embedded in generated source
// text into SVG documents, and rasterizes trees of such documents into PNG.
//
// The work is split into two pipelines which only meet on the filesystem:
// "vectorize" (packages pixel, svgdoc and vectorize) and "rasterize"
// (packages svgdoc, raster and batch). This package holds the error
// taxonomy shared by both.
package pixsvg

import (
	"github.com/pkg/errors"
)

// Error kinds. Errors returned by this module wrap one of these, and can be
// classified with errors.Is or Kind.
var (
	// ErrConfig marks malformed or contradictory parameters. It is always
	// returned before any I/O for the guarded operation.
	ErrConfig = errors.New("invalid configuration")
	// ErrParse marks a token or document that could not be decoded.
	ErrParse = errors.New("parse error")
	// ErrMissing marks an expected input that does not exist.
	ErrMissing = errors.New("missing resource")
	// ErrRasterize marks a failure to produce a bitmap from a document.
	ErrRasterize = errors.New("rasterization failed")
)

// Configf returns an ErrConfig annotated with the formatted message.
func Configf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfig, format, args...)
}

// Parsef returns an ErrParse annotated with the formatted message.
func Parsef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrParse, format, args...)
}

// Missingf returns an ErrMissing annotated with the formatted message.
func Missingf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMissing, format, args...)
}

// Mark annotates err with message and classifies it as kind. The new kind
// takes precedence over any kind err already had: a decode failure met while
// rasterizing is reported as a rasterization failure.
func Mark(err error, kind error, message string) error {
	if err == nil {
		return nil
	}
	return &kinded{kind: kind, err: errors.Wrap(err, message)}
}

// Kind returns the outermost error kind (one of the Err* values) in err's
// chain, or nil if it is not classified.
func Kind(err error) error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if k, ok := e.(*kinded); ok {
			return k.kind
		}
		switch e {
		case ErrConfig, ErrParse, ErrMissing, ErrRasterize:
			return e
		}
	}
	return nil
}

// kinded pairs an arbitrary cause with a kind, so both errors.Is(err, kind)
// and errors.Is(err, cause) hold.
type kinded struct {
	kind error
	err  error
}

func (k *kinded) Error() string { return k.kind.Error() + ": " + k.err.Error() }

func (k *kinded) Unwrap() error { return k.err }

func (k *kinded) Is(target error) bool { return target == k.kind }

func (k *kinded) Cause() error { return k.err }
