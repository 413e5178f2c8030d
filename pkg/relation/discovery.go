package relation

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
)

// Discovery maps relation kinds to the combos found for them. Kinds without
// combos are never stored and combos are kept in canonical order, so two
// discoveries holding the same relations are Equal regardless of how they
// were built. The zero value is an empty discovery.
type Discovery[K Kind, E ganzhi.Symbol] struct {
	combos map[K][]Combo[E]
}

type (
	StemDiscovery   = Discovery[StemRelation, ganzhi.Stem]
	BranchDiscovery = Discovery[BranchRelation, ganzhi.Branch]
)

// newDiscovery takes ownership of m.
func newDiscovery[K Kind, E ganzhi.Symbol](m map[K][]Combo[E]) Discovery[K, E] {
	for k, cs := range m {
		if len(cs) == 0 {
			delete(m, k)
			continue
		}
		m[k] = canonical(cs)
	}
	return Discovery[K, E]{combos: m}
}

// Get returns a copy of the combos for kind, or nil.
func (d Discovery[K, E]) Get(kind K) []Combo[E] {
	return slices.Clone(d.combos[kind])
}

// Has reports whether c was found for kind.
func (d Discovery[K, E]) Has(kind K, c Combo[E]) bool {
	_, ok := slices.BinarySearchFunc(d.combos[kind], c, compareCombos[E])
	return ok
}

// Kinds returns the kinds holding at least one combo, in display order.
func (d Discovery[K, E]) Kinds() []K {
	out := make([]K, 0, len(d.combos))
	for k := range d.combos {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b K) int { return cmp.Compare(uint8(a), uint8(b)) })
	return out
}

// Len returns the total number of combos.
func (d Discovery[K, E]) Len() int {
	n := 0
	for _, cs := range d.combos {
		n += len(cs)
	}
	return n
}

// IsEmpty reports whether no relation was found.
func (d Discovery[K, E]) IsEmpty() bool { return len(d.combos) == 0 }

// All yields every (kind, combo) pair, kinds in display order.
func (d Discovery[K, E]) All() iter.Seq2[K, Combo[E]] {
	return func(yield func(K, Combo[E]) bool) {
		for _, k := range d.Kinds() {
			for _, c := range d.combos[k] {
				if !yield(k, c) {
					return
				}
			}
		}
	}
}

// Filter returns the combos for which keep reports true. Kinds left without
// combos are dropped.
func (d Discovery[K, E]) Filter(keep func(K, Combo[E]) bool) Discovery[K, E] {
	m := make(map[K][]Combo[E], len(d.combos))
	for k, cs := range d.combos {
		for _, c := range cs {
			if keep(k, c) {
				m[k] = append(m[k], c)
			}
		}
	}
	return Discovery[K, E]{combos: m}
}

// Merge returns the per-kind union of d and o.
func (d Discovery[K, E]) Merge(o Discovery[K, E]) Discovery[K, E] {
	m := make(map[K][]Combo[E], len(d.combos)+len(o.combos))
	for k, cs := range d.combos {
		m[k] = slices.Clone(cs)
	}
	for k, cs := range o.combos {
		m[k] = append(m[k], cs...)
	}
	return newDiscovery(m)
}

// Equal reports whether d and o hold the same combos for every kind.
func (d Discovery[K, E]) Equal(o Discovery[K, E]) bool {
	if len(d.combos) != len(o.combos) {
		return false
	}
	for k, cs := range d.combos {
		if !slices.Equal(cs, o.combos[k]) {
			return false
		}
	}
	return true
}

// String renders the discovery as "冲: 子午 卯酉; 刑: 辰".
func (d Discovery[K, E]) String() string {
	parts := make([]string, 0, len(d.combos))
	for _, k := range d.Kinds() {
		cs := d.combos[k]
		names := make([]string, len(cs))
		for i, c := range cs {
			names[i] = c.String()
		}
		parts = append(parts, k.String()+": "+strings.Join(names, " "))
	}
	return strings.Join(parts, "; ")
}

// DiscoverStems runs every stem relation over stems.
func DiscoverStems(stems []ganzhi.Stem) StemDiscovery {
	m := make(map[StemRelation][]StemCombo)
	for _, k := range StemRelations() {
		if cs := SearchStems(stems, k); len(cs) > 0 {
			m[k] = cs
		}
	}
	return StemDiscovery{combos: m}
}

// DiscoverBranches runs every branch relation over branches.
func DiscoverBranches(branches []ganzhi.Branch, opts ...Option) BranchDiscovery {
	m := make(map[BranchRelation][]BranchCombo)
	for _, k := range BranchRelations() {
		if cs := SearchBranches(branches, k, opts...); len(cs) > 0 {
			m[k] = cs
		}
	}
	return BranchDiscovery{combos: m}
}

// DiscoverStemsMutual returns the stem relations that need members of both a
// and b. It is symmetric in its arguments.
func DiscoverStemsMutual(a, b []ganzhi.Stem) StemDiscovery {
	return mutual(
		DiscoverStems(slices.Concat(a, b)),
		DiscoverStems(a),
		DiscoverStems(b),
	)
}

// DiscoverBranchesMutual returns the branch relations that need members of
// both a and b. Multiplicity counts across sides: 辰 in a and 辰 in b form a
// self-punishment that neither side holds alone.
func DiscoverBranchesMutual(a, b []ganzhi.Branch, opts ...Option) BranchDiscovery {
	return mutual(
		DiscoverBranches(slices.Concat(a, b), opts...),
		DiscoverBranches(a, opts...),
		DiscoverBranches(b, opts...),
	)
}

func mutual[K Kind, E ganzhi.Symbol](all, a, b Discovery[K, E]) Discovery[K, E] {
	return all.Filter(func(k K, c Combo[E]) bool {
		return !a.Has(k, c) && !b.Has(k, c)
	})
}
