package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/ganzhi/pkg/errors"
)

// Format is a diagram output format.
type Format string

const (
	SVG Format = "svg"
	PDF Format = "pdf"
	PNG Format = "png"
)

// Converter turns SVG into PDF or PNG with rsvg-convert.
type Converter struct {
	// Binary is the converter executable, looked up on PATH when it has no
	// directory. Empty means "rsvg-convert".
	Binary string
}

// DefaultConverter is used by [ToPDF] and [ToPNG].
var DefaultConverter Converter

func (c Converter) binary() string {
	if c.Binary == "" {
		return "rsvg-convert"
	}
	return c.Binary
}

// Convert returns svg in format f. Scale multiplies the PNG resolution and
// must be positive; PDF ignores it. SVG input is returned unchanged.
func (c Converter) Convert(ctx context.Context, svg []byte, f Format, scale float64) ([]byte, error) {
	var args []string
	switch f {
	case SVG:
		return svg, nil
	case PDF:
		args = []string{"-f", "pdf"}
	case PNG:
		if scale <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", scale)
		}
		args = []string{"-f", "png", "-z", strconv.FormatFloat(scale, 'f', 2, 64)}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "cannot convert svg to %q", f)
	}

	bin, err := exec.LookPath(c.binary())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err,
			"%s output needs %s from librsvg (brew install librsvg, apt install librsvg2-bin)", f, c.binary())
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "convert to %s: %s", f, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// ToPDF converts svg to PDF with [DefaultConverter].
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return DefaultConverter.Convert(ctx, svg, PDF, 1)
}

// ToPNG converts svg to PNG with [DefaultConverter]; a scale of 2 doubles
// the resolution.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return DefaultConverter.Convert(ctx, svg, PNG, scale)
}
