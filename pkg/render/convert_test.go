package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/matzehuels/ganzhi/pkg/errors"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"/>`

// fakeConverter writes a script that echoes its arguments and then its
// input, standing in for rsvg-convert.
func fakeConverter(t *testing.T, body string) Converter {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script converter")
	}
	bin := filepath.Join(t.TempDir(), "rsvg-convert")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return Converter{Binary: bin}
}

func TestConvert(t *testing.T) {
	c := fakeConverter(t, `echo "$@"; cat`)
	tests := []struct {
		format Format
		scale  float64
		want   string
	}{
		{PDF, 0, "-f pdf\n" + sampleSVG},
		{PNG, 2, "-f png -z 2.00\n" + sampleSVG},
		{SVG, 0, sampleSVG},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := c.Convert(context.Background(), []byte(sampleSVG), tt.format, tt.scale)
			if err != nil {
				t.Fatalf("Convert() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Convert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	failing := fakeConverter(t, `echo "bad svg" >&2; exit 1`)
	tests := []struct {
		name   string
		c      Converter
		format Format
		scale  float64
		code   errors.Code
	}{
		{"missing binary", Converter{Binary: "ganzhi-no-such-converter"}, PDF, 1, errors.ErrCodeUnsupported},
		{"zero scale", Converter{}, PNG, 0, errors.ErrCodeInvalidInput},
		{"unknown format", Converter{}, Format("gif"), 1, errors.ErrCodeInvalidFormat},
		{"converter fails", failing, PDF, 1, errors.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.c.Convert(context.Background(), []byte(sampleSVG), tt.format, tt.scale)
			if !errors.Is(err, tt.code) {
				t.Errorf("Convert() error = %v, want %s", err, tt.code)
			}
		})
	}

	_, err := failing.Convert(context.Background(), []byte(sampleSVG), PDF, 1)
	if err == nil || !bytes.Contains([]byte(err.Error()), []byte("bad svg")) {
		t.Errorf("converter stderr not reported: %v", err)
	}
}
