package analyzer

import (
	"github.com/matzehuels/ganzhi/pkg/chart"
	"github.com/matzehuels/ganzhi/pkg/discover"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/rules"
)

// AtBirth analyzes the four pillars alone.
type AtBirth struct {
	chart *chart.Chart
	disc  *discover.Discoverer
	opts  []relation.Option
}

// Shensha returns the stars found among the chart branches. Taohua is taken
// from the year and the day branch, Hongyan from the day master, and
// Hongluan, Tianxi and Yima from the year branch; a reference branch never
// counts itself.
func (a *AtBirth) Shensha() Stars {
	bs := a.chart.Branches()
	year, day := bs[0], bs[dayIndex]
	s := newStars()
	s.add(rules.Taohua, hits(rules.TaohuaOf, []ganzhi.Branch{year}, others(bs, 0)))
	s.add(rules.Taohua, hits(rules.TaohuaOf, []ganzhi.Branch{day}, others(bs, dayIndex)))
	s.add(rules.Hongyan, hits(rules.HongyanOf, []ganzhi.Stem{a.chart.DayMaster()}, bs))
	s.add(rules.Hongluan, hits(rules.HongluanOf, []ganzhi.Branch{year}, others(bs, 0)))
	s.add(rules.Tianxi, hits(rules.TianxiOf, []ganzhi.Branch{year}, others(bs, 0)))
	s.add(rules.Yima, hits(rules.YimaOf, []ganzhi.Branch{year}, others(bs, 0)))
	return s
}

// DayMasterRelations returns the stem relations between the day master and
// the other three stems.
func (a *AtBirth) DayMasterRelations() relation.StemDiscovery {
	ss := a.chart.Stems()
	return relation.DiscoverStemsMutual([]ganzhi.Stem{ss[dayIndex]}, others(ss, dayIndex))
}

// HouseRelations returns the branch relations between the day branch and
// the other three branches.
func (a *AtBirth) HouseRelations() relation.BranchDiscovery {
	bs := a.chart.Branches()
	return relation.DiscoverBranchesMutual([]ganzhi.Branch{bs[dayIndex]}, others(bs, dayIndex), a.opts...)
}

// Star returns the relationship star of the chart.
func (a *AtBirth) Star() Star { return RelationshipStar(a.chart) }

// StarRelations returns the at-birth relations that involve the star.
func (a *AtBirth) StarRelations() relation.Ganzhi {
	return a.Star().touches(a.disc.AtBirth())
}
