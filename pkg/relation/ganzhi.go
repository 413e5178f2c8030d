package relation

import "github.com/matzehuels/ganzhi/pkg/ganzhi"

// Ganzhi bundles the stem and branch discoveries of a set of pillars.
type Ganzhi struct {
	Stems    StemDiscovery
	Branches BranchDiscovery
}

func split(pillars []ganzhi.Pillar) ([]ganzhi.Stem, []ganzhi.Branch) {
	stems := make([]ganzhi.Stem, len(pillars))
	branches := make([]ganzhi.Branch, len(pillars))
	for i, p := range pillars {
		stems[i], branches[i] = p.Stem, p.Branch
	}
	return stems, branches
}

// DiscoverGanzhi discovers the relations among the stems and among the
// branches of pillars.
func DiscoverGanzhi(pillars []ganzhi.Pillar, opts ...Option) Ganzhi {
	stems, branches := split(pillars)
	return Ganzhi{
		Stems:    DiscoverStems(stems),
		Branches: DiscoverBranches(branches, opts...),
	}
}

// DiscoverGanzhiMutual discovers the relations that need pillars from both
// a and b.
func DiscoverGanzhiMutual(a, b []ganzhi.Pillar, opts ...Option) Ganzhi {
	as, ab := split(a)
	bs, bb := split(b)
	return Ganzhi{
		Stems:    DiscoverStemsMutual(as, bs),
		Branches: DiscoverBranchesMutual(ab, bb, opts...),
	}
}

// Filter applies one predicate per side. A nil predicate keeps that side.
func (g Ganzhi) Filter(stems func(StemRelation, StemCombo) bool, branches func(BranchRelation, BranchCombo) bool) Ganzhi {
	out := g
	if stems != nil {
		out.Stems = g.Stems.Filter(stems)
	}
	if branches != nil {
		out.Branches = g.Branches.Filter(branches)
	}
	return out
}

func (g Ganzhi) Merge(o Ganzhi) Ganzhi {
	return Ganzhi{
		Stems:    g.Stems.Merge(o.Stems),
		Branches: g.Branches.Merge(o.Branches),
	}
}

func (g Ganzhi) Equal(o Ganzhi) bool {
	return g.Stems.Equal(o.Stems) && g.Branches.Equal(o.Branches)
}

func (g Ganzhi) IsEmpty() bool { return g.Stems.IsEmpty() && g.Branches.IsEmpty() }

func (g Ganzhi) Len() int { return g.Stems.Len() + g.Branches.Len() }
