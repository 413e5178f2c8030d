package transit

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ganzhi/pkg/errors"
)

// Kind identifies a transit sequence.
type Kind uint8

const (
	Xiaoyun Kind = iota // 小运
	Dayun               // 大运
	Liunian             // 流年
	numKinds
)

var kindNames = [numKinds]struct{ glyph, name string }{
	{"小运", "xiaoyun"},
	{"大运", "dayun"},
	{"流年", "liunian"},
}

// Kinds lists the transit kinds in canonical order.
func Kinds() []Kind { return []Kind{Xiaoyun, Dayun, Liunian} }

func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k].glyph
}

// Name returns the pinyin name of the kind.
func (k Kind) Name() string {
	if k >= numKinds {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k].name
}

// Option returns the single-kind option set.
func (k Kind) Option() Options { return 1 << k }

// Options selects a combination of transit sequences.
type Options uint8

const (
	OptXiaoyun Options = 1 << Xiaoyun
	OptDayun   Options = 1 << Dayun
	OptLiunian Options = 1 << Liunian
)

// Valid reports whether o is one of the supported combinations: any single
// kind, Xiaoyun with Liunian, or Dayun with Liunian. Xiaoyun and Dayun never
// overlap in time, so they are never combined.
func (o Options) Valid() bool {
	switch o {
	case OptXiaoyun, OptDayun, OptLiunian, OptXiaoyun | OptLiunian, OptDayun | OptLiunian:
		return true
	}
	return false
}

// Has reports whether k is selected.
func (o Options) Has(k Kind) bool { return o&k.Option() != 0 }

// Kinds returns the selected kinds in canonical order.
func (o Options) Kinds() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if o.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (o Options) String() string {
	names := make([]string, 0, 3)
	for _, k := range o.Kinds() {
		names = append(names, k.Name())
	}
	if len(names) == 0 {
		return fmt.Sprintf("Options(%d)", uint8(o))
	}
	return strings.Join(names, ",")
}

func (o Options) mustValid() {
	if !o.Valid() {
		panic(fmt.Sprintf("transit: invalid options %d", uint8(o)))
	}
}

// ParseOptions parses a list of kinds such as "dayun,liunian" or "小运+流年".
func ParseOptions(s string) (Options, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ',' || r == '+' || r == '|' || r == ' '
	})
	if len(fields) == 0 {
		return 0, errors.New(errors.ErrCodeInvalidOptions, "no transit selected")
	}
	var o Options
	for _, f := range fields {
		k, ok := lookupKind(f)
		if !ok {
			return 0, errors.New(errors.ErrCodeInvalidOptions, "unknown transit %q", f)
		}
		o |= k.Option()
	}
	if !o.Valid() {
		return 0, errors.New(errors.ErrCodeInvalidOptions, "transits %s cannot be combined", o)
	}
	return o, nil
}

func lookupKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if s == n.name || s == n.glyph {
			return Kind(i), true
		}
	}
	return 0, false
}

// MarshalText encodes o as a comma-separated list of kind names.
func (o Options) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidOptions, "invalid options %d", uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes the form accepted by ParseOptions.
func (o *Options) UnmarshalText(text []byte) error {
	v, err := ParseOptions(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
