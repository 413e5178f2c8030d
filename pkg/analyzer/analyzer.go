// Package analyzer looks at a chart from the point of view of relationships.
//
// It reports the relationship stars (桃花 红艳 红鸾 天喜 驿马) that land on
// chart or transit branches, the relations held by the day master and by
// the spouse house (the day branch), and the relations touching the
// relationship star: the stem that a man's day master destroys, or that
// destroys a woman's day master, taken with opposite polarity.
package analyzer

import (
	"slices"
	"strings"

	"github.com/matzehuels/ganzhi/pkg/chart"
	"github.com/matzehuels/ganzhi/pkg/discover"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/rules"
)

// Stars maps each shensha to the branches it lands on. Every shensha is
// present; misses map to an empty slice.
type Stars map[rules.Shensha][]ganzhi.Branch

func newStars() Stars {
	s := make(Stars, len(rules.AllShensha()))
	for _, k := range rules.AllShensha() {
		s[k] = []ganzhi.Branch{}
	}
	return s
}

func (s Stars) add(k rules.Shensha, bs []ganzhi.Branch) {
	all := append(s[k], bs...)
	slices.Sort(all)
	s[k] = slices.Compact(all)
}

// Has reports whether star k lands on b.
func (s Stars) Has(k rules.Shensha, b ganzhi.Branch) bool {
	return slices.Contains(s[k], b)
}

// String renders the hits, e.g. "桃花: 午; 红鸾: 卯".
func (s Stars) String() string {
	var parts []string
	for _, k := range rules.AllShensha() {
		if len(s[k]) == 0 {
			continue
		}
		var sb strings.Builder
		for _, b := range s[k] {
			sb.WriteString(b.String())
		}
		parts = append(parts, k.String()+": "+sb.String())
	}
	return strings.Join(parts, "; ")
}

// hits returns the targets that equal of(ref) for some ref.
func hits[R any](of func(R) ganzhi.Branch, refs []R, targets []ganzhi.Branch) []ganzhi.Branch {
	var out []ganzhi.Branch
	for _, r := range refs {
		want := of(r)
		for _, t := range targets {
			if t == want {
				out = append(out, t)
			}
		}
	}
	return out
}

// Star is the relationship star of a chart: a stem and the branches whose
// principal stored stem it is.
type Star struct {
	Stem     ganzhi.Stem
	Branches []ganzhi.Branch
}

// RelationshipStar returns the star of c: the opposite-polarity stem the
// day master destroys for a man, or that destroys the day master for a
// woman.
func RelationshipStar(c *chart.Chart) Star {
	dm := c.DayMaster()
	var target ganzhi.Element
	for _, e := range ganzhi.Elements() {
		if c.Gender == chart.Male && dm.Element().Destroys(e) ||
			c.Gender == chart.Female && e.Destroys(dm.Element()) {
			target = e
		}
	}
	var star Star
	for _, s := range ganzhi.Stems() {
		if s.Element() == target && s.Polarity() != dm.Polarity() {
			star.Stem = s
		}
	}
	for _, b := range ganzhi.Branches() {
		if rules.PrincipalStem(b) == star.Stem {
			star.Branches = append(star.Branches, b)
		}
	}
	return star
}

func (s Star) touches(g relation.Ganzhi) relation.Ganzhi {
	return g.Filter(
		func(_ relation.StemRelation, c relation.StemCombo) bool { return c.Contains(s.Stem) },
		func(_ relation.BranchRelation, c relation.BranchCombo) bool { return c.ContainsAny(s.Branches...) },
	)
}

// Analyzer bundles the at-birth and transit analyses of one chart. Both
// share a discoverer and are not safe for concurrent use.
type Analyzer struct {
	AtBirth *AtBirth
	Transit *Transit
}

// New analyzes c. opts select the Anhe and Xing tables.
func New(c *chart.Chart, opts ...relation.Option) *Analyzer {
	d := discover.New(c, opts...)
	return &Analyzer{
		AtBirth: &AtBirth{chart: c, disc: d, opts: opts},
		Transit: &Transit{chart: c, disc: d, opts: opts},
	}
}

func others[T any](all []T, skip int) []T {
	return slices.Delete(slices.Clone(all), skip, skip+1)
}

const dayIndex = 2
