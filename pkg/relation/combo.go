package relation

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
)

// Combo is an unordered set of distinct stems or branches. The zero value is
// the empty set.
type Combo[E ganzhi.Symbol] struct {
	mask uint16
}

type (
	StemCombo   = Combo[ganzhi.Stem]
	BranchCombo = Combo[ganzhi.Branch]
)

// NewCombo returns the set of the given symbols. Duplicates collapse.
// An invalid symbol is a contract violation.
func NewCombo[E ganzhi.Symbol](members ...E) Combo[E] {
	return Combo[E]{mask: maskOf(members)}
}

func maskOf[E ganzhi.Symbol](es []E) uint16 {
	var m uint16
	for _, e := range es {
		if !e.Valid() {
			panic(fmt.Sprintf("relation: invalid symbol %d", uint8(e)))
		}
		m |= 1 << uint8(e)
	}
	return m
}

// Members returns the symbols in cycle order.
func (c Combo[E]) Members() []E {
	out := make([]E, 0, c.Len())
	for m := c.mask; m != 0; m &= m - 1 {
		out = append(out, E(bits.TrailingZeros16(m)))
	}
	return out
}

// Contains reports whether e is a member.
func (c Combo[E]) Contains(e E) bool {
	return e.Valid() && c.mask&(1<<uint8(e)) != 0
}

// ContainsAny reports whether any of es is a member.
func (c Combo[E]) ContainsAny(es ...E) bool {
	for _, e := range es {
		if c.Contains(e) {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (c Combo[E]) Len() int { return bits.OnesCount16(c.mask) }

// IsEmpty reports whether c has no members.
func (c Combo[E]) IsEmpty() bool { return c.mask == 0 }

// SubsetOf reports whether every member of c is a member of o.
func (c Combo[E]) SubsetOf(o Combo[E]) bool { return c.mask&o.mask == c.mask }

// Intersects reports whether c and o share a member.
func (c Combo[E]) Intersects(o Combo[E]) bool { return c.mask&o.mask != 0 }

// String joins the member glyphs, e.g. "寅巳申".
func (c Combo[E]) String() string {
	var sb strings.Builder
	for _, e := range c.Members() {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// compareCombos orders combos lexicographically by their members in cycle
// order, so 子丑 < 子丑寅 < 子寅.
func compareCombos[E ganzhi.Symbol](a, b Combo[E]) int {
	x, y := a.mask, b.mask
	for x != 0 && y != 0 {
		i, j := bits.TrailingZeros16(x), bits.TrailingZeros16(y)
		if i != j {
			return i - j
		}
		x &= x - 1
		y &= y - 1
	}
	switch {
	case x == y:
		return 0
	case x == 0:
		return -1
	default:
		return 1
	}
}
