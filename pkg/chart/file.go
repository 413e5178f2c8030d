package chart

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
)

// Format is a chart file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf picks the format from the file extension: .yaml and .yml are
// YAML, anything else TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

type chartFile struct {
	Name           string          `toml:"name,omitempty" yaml:"name,omitempty"`
	Gender         Gender          `toml:"gender" yaml:"gender"`
	BirthYear      int             `toml:"birth_year" yaml:"birth_year"`
	DayunStartYear int             `toml:"dayun_start_year" yaml:"dayun_start_year"`
	Pillars        []ganzhi.Pillar `toml:"pillars" yaml:"pillars"`
}

// yamlFile marks required keys with pointers, since YAML has no
// equivalent of toml.MetaData.IsDefined.
type yamlFile struct {
	Name           string          `yaml:"name"`
	Gender         *Gender         `yaml:"gender"`
	BirthYear      *int            `yaml:"birth_year"`
	DayunStartYear *int            `yaml:"dayun_start_year"`
	Pillars        []ganzhi.Pillar `yaml:"pillars"`
}

func (f chartFile) build() (*Chart, error) {
	if len(f.Pillars) != 4 {
		return nil, errors.New(errors.ErrCodeInvalidChart, "want 4 pillars, got %d", len(f.Pillars))
	}
	c, err := New([4]ganzhi.Pillar(f.Pillars), f.Gender, f.BirthYear, f.DayunStartYear)
	if err != nil {
		return nil, err
	}
	c.Name = f.Name
	return c, nil
}

func (c *Chart) file() chartFile {
	return chartFile{
		Name:           c.Name,
		Gender:         c.Gender,
		BirthYear:      c.BirthYear,
		DayunStartYear: c.DayunStartYear,
		Pillars:        c.Pillars(),
	}
}

// Decode reads a chart from TOML. Unknown keys are rejected.
func Decode(r io.Reader) (*Chart, error) {
	var f chartFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode chart")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidChart, "unknown keys: %s", strings.Join(keys, ", "))
	}
	for _, key := range []string{"gender", "birth_year", "dayun_start_year", "pillars"} {
		if !md.IsDefined(key) {
			return nil, errors.New(errors.ErrCodeInvalidChart, "missing key %q", key)
		}
	}
	return f.build()
}

// DecodeYAML reads a chart from YAML with the same keys as [Decode].
// Unknown keys fail with INVALID_FORMAT.
func DecodeYAML(r io.Reader) (*Chart, error) {
	var y yamlFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode chart")
	}
	switch {
	case y.Gender == nil:
		return nil, errors.New(errors.ErrCodeInvalidChart, "missing key %q", "gender")
	case y.BirthYear == nil:
		return nil, errors.New(errors.ErrCodeInvalidChart, "missing key %q", "birth_year")
	case y.DayunStartYear == nil:
		return nil, errors.New(errors.ErrCodeInvalidChart, "missing key %q", "dayun_start_year")
	case y.Pillars == nil:
		return nil, errors.New(errors.ErrCodeInvalidChart, "missing key %q", "pillars")
	}
	return chartFile{
		Name:           y.Name,
		Gender:         *y.Gender,
		BirthYear:      *y.BirthYear,
		DayunStartYear: *y.DayunStartYear,
		Pillars:        y.Pillars,
	}.build()
}

// DecodeFormat reads a chart in format f.
func DecodeFormat(r io.Reader, f Format) (*Chart, error) {
	if f == FormatYAML {
		return DecodeYAML(r)
	}
	return Decode(r)
}

// ReadFile loads a chart file, choosing the format with [FormatOf].
func ReadFile(path string) (*Chart, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	c, err := DecodeFormat(f, FormatOf(path))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return c, nil
}

// Encode writes c as TOML in the form accepted by Decode.
func (c *Chart) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c.file()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode chart")
	}
	return nil
}

// EncodeYAML writes c as YAML in the form accepted by DecodeYAML.
func (c *Chart) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.file()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode chart")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode chart")
	}
	return nil
}

// EncodeFormat writes c in format f.
func (c *Chart) EncodeFormat(w io.Writer, f Format) error {
	if f == FormatYAML {
		return c.EncodeYAML(w)
	}
	return c.Encode(w)
}
