package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/ganzhi/pkg/chart"
	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/rules"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

const dayunLiunian = transit.OptDayun | transit.OptLiunian

func newChart(t *testing.T, g chart.Gender, pillars ...string) *chart.Chart {
	t.Helper()
	var ps [4]ganzhi.Pillar
	for i, s := range pillars {
		p, err := ganzhi.ParsePillar(s)
		require.NoError(t, err)
		ps[i] = p
	}
	year := 1984 + ps[0].Index()
	c, err := chart.New(ps, g, year, year+1)
	require.NoError(t, err)
	return c
}

func referenceChart(t *testing.T) *chart.Chart {
	return newChart(t, chart.Male, "甲子", "丁卯", "乙丑", "壬午")
}

func strs[E ganzhi.Symbol](cs []relation.Combo[E]) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func branches(bs ...ganzhi.Branch) []ganzhi.Branch { return bs }

func TestRelationshipStar(t *testing.T) {
	star := RelationshipStar(referenceChart(t))
	assert.Equal(t, ganzhi.GanWu, star.Stem)
	assert.Equal(t, branches(ganzhi.ZhiChen, ganzhi.ZhiXu), star.Branches)

	// A woman's star is the stem destroying her day master: 庚 for 乙.
	female := RelationshipStar(newChart(t, chart.Female, "甲子", "丁卯", "乙丑", "壬午"))
	assert.Equal(t, ganzhi.GanGeng, female.Stem)
	assert.Equal(t, branches(ganzhi.ZhiShen), female.Branches)

	// 丙 day master, male: fire destroys metal, opposite polarity is 辛.
	bing := RelationshipStar(newChart(t, chart.Male, "甲子", "丙寅", "丙午", "戊子"))
	assert.Equal(t, ganzhi.GanXin, bing.Stem)
	assert.Equal(t, branches(ganzhi.ZhiYou), bing.Branches)
}

func TestAtBirthShensha(t *testing.T) {
	s := New(referenceChart(t)).AtBirth.Shensha()

	assert.Len(t, s, len(rules.AllShensha()))
	assert.Equal(t, branches(ganzhi.ZhiWu), s[rules.Taohua])
	assert.Equal(t, branches(ganzhi.ZhiMao), s[rules.Hongluan])
	assert.Empty(t, s[rules.Hongyan])
	assert.Empty(t, s[rules.Tianxi])
	assert.Empty(t, s[rules.Yima])
	assert.True(t, s.Has(rules.Taohua, ganzhi.ZhiWu))
	assert.Equal(t, "桃花: 午; 红鸾: 卯", s.String())
}

func TestAtBirthRelations(t *testing.T) {
	a := New(referenceChart(t)).AtBirth

	dm := a.DayMasterRelations()
	assert.Equal(t, []string{"乙丁", "乙壬"}, strs(dm.Get(relation.StemSheng)))
	assert.Empty(t, dm.Get(relation.StemHe))

	house := a.HouseRelations()
	assert.Equal(t, []string{"子丑"}, strs(house.Get(relation.Liuhe)))
	assert.Equal(t, []string{"丑午"}, strs(house.Get(relation.Hai)))
	assert.Equal(t, []string{"丑午"}, strs(house.Get(relation.Sheng)))
	assert.Equal(t, []string{"子丑", "丑卯"}, strs(house.Get(relation.Ke)))
	assert.Empty(t, house.Get(relation.Chong), "子午 does not touch the day branch")

	assert.True(t, a.StarRelations().IsEmpty())
}

func TestTransit1990(t *testing.T) {
	tr := New(referenceChart(t)).Transit

	s, err := tr.Shensha(1990, dayunLiunian)
	require.NoError(t, err)
	assert.Equal(t, branches(ganzhi.ZhiWu), s[rules.Taohua])

	dm, err := tr.DayMasterRelations(1990, dayunLiunian)
	require.NoError(t, err)
	assert.Equal(t, []string{"乙庚"}, strs(dm.Get(relation.StemHe)))
	assert.Contains(t, strs(dm.Get(relation.StemKe)), "乙戊")

	house, err := tr.HouseRelations(1990, dayunLiunian)
	require.NoError(t, err)
	assert.Subset(t, strs(house.Get(relation.Hai)), []string{"丑午"})
	assert.Subset(t, strs(house.Get(relation.Po)), []string{"丑辰"})
	assert.Subset(t, strs(house.Get(relation.Sheng)), []string{"丑午"})

	star, err := tr.StarRelations(1990, dayunLiunian)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"丁戊", "戊庚"}, strs(star.Stems.Get(relation.StemSheng)))
	assert.ElementsMatch(t, []string{"甲戊", "乙戊", "戊壬"}, strs(star.Stems.Get(relation.StemKe)))
	assert.Subset(t, strs(star.Branches.Get(relation.Sheng)), []string{"辰午"})
	assert.Subset(t, strs(star.Branches.Get(relation.Ke)), []string{"子辰", "卯辰"})
	assert.Subset(t, strs(star.Branches.Get(relation.Po)), []string{"丑辰"})
	assert.Subset(t, strs(star.Branches.Get(relation.Hai)), []string{"卯辰"})
	assert.Subset(t, strs(star.Branches.Get(relation.Banhe)), []string{"子辰"})
	assert.Empty(t, star.Stems.Get(relation.StemChong), "甲庚 does not touch 戊")

	p, err := tr.Star(1990, dayunLiunian)
	require.NoError(t, err)
	assert.Equal(t, Presence{Stem: true, Branch: true}, p)
	p, err = tr.Star(1990, transit.OptDayun)
	require.NoError(t, err)
	assert.Equal(t, Presence{Stem: true, Branch: true}, p)
	p, err = tr.Star(1990, transit.OptLiunian)
	require.NoError(t, err)
	assert.Equal(t, Presence{}, p)
}

func TestTransit2018(t *testing.T) {
	tr := New(referenceChart(t), relation.WithXing(rules.XingLoose)).Transit

	s, err := tr.Shensha(2018, dayunLiunian)
	require.NoError(t, err)
	assert.Empty(t, s.String())

	dm, err := tr.DayMasterRelations(2018, dayunLiunian)
	require.NoError(t, err)
	assert.Subset(t, strs(dm.Get(relation.StemKe)), []string{"乙辛", "乙戊"})
	assert.Equal(t, []string{"乙辛"}, strs(dm.Get(relation.StemChong)))

	house, err := tr.HouseRelations(2018, dayunLiunian)
	require.NoError(t, err)
	assert.Subset(t, strs(house.Get(relation.Xing)), []string{"丑未戌", "丑未"})
	assert.Equal(t, []string{"丑未"}, strs(house.Get(relation.Chong)))

	p, err := tr.Star(2018, transit.OptLiunian)
	require.NoError(t, err)
	assert.True(t, p.Stem)
	assert.True(t, p.Branch)
	p, err = tr.Star(2018, transit.OptDayun)
	require.NoError(t, err)
	assert.Equal(t, Presence{}, p)
}

func TestTransit2031(t *testing.T) {
	tr := New(referenceChart(t)).Transit

	s, err := tr.Shensha(2031, dayunLiunian)
	require.NoError(t, err)
	assert.Equal(t, branches(ganzhi.ZhiShen), s[rules.Hongyan])
	assert.Equal(t, branches(ganzhi.ZhiHai), s[rules.Yima])

	star, err := tr.StarRelations(2031, dayunLiunian)
	require.NoError(t, err)
	assert.True(t, star.IsEmpty())

	house, err := tr.HouseRelations(2031, dayunLiunian)
	require.NoError(t, err)
	assert.Equal(t, []string{"子丑亥"}, strs(house.Get(relation.Sanhui)))
	assert.Subset(t, strs(house.Get(relation.Sheng)), []string{"丑申"})
}

func TestTransitUnsupported(t *testing.T) {
	tr := New(referenceChart(t)).Transit

	_, err := tr.Shensha(1984, transit.OptDayun)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
	_, err = tr.DayMasterRelations(1984, transit.OptDayun)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
	_, err = tr.HouseRelations(1983, transit.OptLiunian)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
	_, err = tr.StarRelations(1990, transit.OptXiaoyun)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
	_, err = tr.Star(1984, transit.OptDayun)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
}
