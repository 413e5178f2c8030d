package ganzhi

import (
	"fmt"

	"github.com/matzehuels/ganzhi/pkg/errors"
)

// CycleLen is the length of the sexagenary cycle.
const CycleLen = 60

// EpochYear is a calendar year whose pillar is 甲子, the start of the cycle.
const EpochYear = 1984

// Pillar is a stem paired with a branch of the same polarity. The zero value
// is 甲子.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// NewPillar builds a pillar, rejecting out-of-range symbols and pairs whose
// polarities differ (such pairs never occur in the cycle).
func NewPillar(s Stem, b Branch) (Pillar, error) {
	if !s.Valid() {
		return Pillar{}, errors.New(errors.ErrCodeInvalidPillar, "invalid stem %d", uint8(s))
	}
	if !b.Valid() {
		return Pillar{}, errors.New(errors.ErrCodeInvalidPillar, "invalid branch %d", uint8(b))
	}
	if s.Polarity() != b.Polarity() {
		return Pillar{}, errors.New(errors.ErrCodeInvalidPillar,
			"%s%s is not a pillar: %s is %s, %s is %s", s, b, s, s.Polarity().Name(), b, b.Polarity().Name())
	}
	return Pillar{Stem: s, Branch: b}, nil
}

// MustPillar is like NewPillar but panics on error.
func MustPillar(s Stem, b Branch) Pillar {
	p, err := NewPillar(s, b)
	if err != nil {
		panic(err)
	}
	return p
}

// PillarAt returns the i-th pillar of the cycle. i wraps in both directions.
func PillarAt(i int) Pillar {
	i = mod(i, CycleLen)
	return Pillar{Stem: Stem(i % NumStems), Branch: Branch(i % NumBranches)}
}

// YearPillar returns the pillar of a calendar year in the sexagenary
// year count.
func YearPillar(year int) Pillar {
	return PillarAt(year - EpochYear)
}

// Cycle returns all 60 pillars starting from 甲子.
func Cycle() []Pillar {
	out := make([]Pillar, CycleLen)
	for i := range out {
		out[i] = PillarAt(i)
	}
	return out
}

// Valid reports whether p is one of the 60 pillars.
func (p Pillar) Valid() bool {
	return p.Stem.Valid() && p.Branch.Valid() && p.Stem.Polarity() == p.Branch.Polarity()
}

// Index returns the position of p in the cycle, 0 for 甲子 through 59 for 癸亥.
func (p Pillar) Index() int {
	if !p.Valid() {
		panic(fmt.Sprintf("ganzhi: invalid pillar %d/%d", uint8(p.Stem), uint8(p.Branch)))
	}
	// Solves i = stem (mod 10), i = branch (mod 12).
	return mod(6*int(p.Stem)-5*int(p.Branch), CycleLen)
}

// Add steps n positions through the cycle. n may be negative.
func (p Pillar) Add(n int) Pillar {
	return PillarAt(p.Index() + n)
}

// Next returns the successor of p in the cycle.
func (p Pillar) Next() Pillar { return p.Add(1) }

// Prev returns the predecessor of p in the cycle.
func (p Pillar) Prev() Pillar { return p.Add(-1) }

// String returns the two glyphs of the pillar, e.g. "甲子".
func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

// Name returns the pinyin form of the pillar, e.g. "jia-zi".
func (p Pillar) Name() string {
	return p.Stem.Name() + "-" + p.Branch.Name()
}

// MarshalText implements encoding.TextMarshaler using the glyph form.
func (p Pillar) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidPillar, "invalid pillar %d/%d", uint8(p.Stem), uint8(p.Branch))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any form
// understood by ParsePillar.
func (p *Pillar) UnmarshalText(text []byte) error {
	v, err := ParsePillar(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
