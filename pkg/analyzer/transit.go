package analyzer

import (
	"slices"

	"github.com/matzehuels/ganzhi/pkg/chart"
	"github.com/matzehuels/ganzhi/pkg/discover"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/rules"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

// Transit analyzes the transit pillars of a year against the chart. Every
// method fails with UNSUPPORTED when the year is not covered by opts.
type Transit struct {
	chart *chart.Chart
	disc  *discover.Discoverer
	opts  []relation.Option
}

// Entries returns the transit terms active in year.
func (t *Transit) Entries(year int, opts transit.Options) ([]transit.Entry, error) {
	return t.disc.Entries(year, opts)
}

func (t *Transit) pillars(year int, opts transit.Options) ([]ganzhi.Stem, []ganzhi.Branch, error) {
	es, err := t.disc.Entries(year, opts)
	if err != nil {
		return nil, nil, err
	}
	stems := make([]ganzhi.Stem, len(es))
	branches := make([]ganzhi.Branch, len(es))
	for i, e := range es {
		stems[i], branches[i] = e.Pillar.Stem, e.Pillar.Branch
	}
	return stems, branches, nil
}

// Shensha returns the stars landing on the transit branches. Taohua and
// Yima are taken from the year and day branches, Hongyan from the day master,
// Hongluan and Tianxi from the year branch.
func (t *Transit) Shensha(year int, opts transit.Options) (Stars, error) {
	_, tb, err := t.pillars(year, opts)
	if err != nil {
		return nil, err
	}
	bs := t.chart.Branches()
	refs := []ganzhi.Branch{bs[0], bs[dayIndex]}
	s := newStars()
	s.add(rules.Taohua, hits(rules.TaohuaOf, refs, tb))
	s.add(rules.Yima, hits(rules.YimaOf, refs, tb))
	s.add(rules.Hongyan, hits(rules.HongyanOf, []ganzhi.Stem{t.chart.DayMaster()}, tb))
	s.add(rules.Hongluan, hits(rules.HongluanOf, bs[:1], tb))
	s.add(rules.Tianxi, hits(rules.TianxiOf, bs[:1], tb))
	return s, nil
}

// DayMasterRelations returns the relations between the day master and the
// other chart stems together with the transit stems.
func (t *Transit) DayMasterRelations(year int, opts transit.Options) (relation.StemDiscovery, error) {
	ts, _, err := t.pillars(year, opts)
	if err != nil {
		return relation.StemDiscovery{}, err
	}
	ss := t.chart.Stems()
	return relation.DiscoverStemsMutual([]ganzhi.Stem{ss[dayIndex]}, slices.Concat(others(ss, dayIndex), ts)), nil
}

// HouseRelations returns the relations between the day branch and the other
// chart branches together with the transit branches.
func (t *Transit) HouseRelations(year int, opts transit.Options) (relation.BranchDiscovery, error) {
	_, tb, err := t.pillars(year, opts)
	if err != nil {
		return relation.BranchDiscovery{}, err
	}
	bs := t.chart.Branches()
	return relation.DiscoverBranchesMutual([]ganzhi.Branch{bs[dayIndex]}, slices.Concat(others(bs, dayIndex), tb), t.opts...), nil
}

// StarRelations returns the effects of the year that involve the
// relationship star.
func (t *Transit) StarRelations(year int, opts transit.Options) (relation.Ganzhi, error) {
	r, err := t.disc.Year(year, opts)
	if err != nil {
		return relation.Ganzhi{}, err
	}
	return RelationshipStar(t.chart).touches(r.Effects()), nil
}

// Presence reports whether the star shows up among the transit stems and
// branches.
type Presence struct {
	Stem   bool
	Branch bool
}

// Star reports whether the relationship star appears in the transit
// pillars of year.
func (t *Transit) Star(year int, opts transit.Options) (Presence, error) {
	ts, tb, err := t.pillars(year, opts)
	if err != nil {
		return Presence{}, err
	}
	star := RelationshipStar(t.chart)
	p := Presence{Stem: slices.Contains(ts, star.Stem)}
	for _, b := range star.Branches {
		p.Branch = p.Branch || slices.Contains(tb, b)
	}
	return p, nil
}
