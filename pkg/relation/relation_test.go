package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/rules"
)

func bs(t *testing.T, s string) []ganzhi.Branch {
	t.Helper()
	out, err := ganzhi.ParseBranches(s)
	require.NoError(t, err)
	return out
}

func ss(t *testing.T, s string) []ganzhi.Stem {
	t.Helper()
	out, err := ganzhi.ParseStems(s)
	require.NoError(t, err)
	return out
}

func render[E ganzhi.Symbol](cs []Combo[E]) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func TestCombo(t *testing.T) {
	c := NewCombo(ganzhi.ZhiShen, ganzhi.ZhiYin, ganzhi.ZhiSi, ganzhi.ZhiYin)
	assert.Equal(t, "寅巳申", c.String())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []ganzhi.Branch{ganzhi.ZhiYin, ganzhi.ZhiSi, ganzhi.ZhiShen}, c.Members())
	assert.True(t, c.Contains(ganzhi.ZhiSi))
	assert.False(t, c.Contains(ganzhi.ZhiZi))
	assert.False(t, c.Contains(ganzhi.Branch(40)))
	assert.True(t, c.ContainsAny(ganzhi.ZhiZi, ganzhi.ZhiShen))
	assert.True(t, NewCombo(ganzhi.ZhiYin, ganzhi.ZhiShen).SubsetOf(c))
	assert.True(t, BranchCombo{}.IsEmpty())
	assert.Equal(t, c, NewCombo(ganzhi.ZhiSi, ganzhi.ZhiShen, ganzhi.ZhiYin))

	assert.Panics(t, func() { NewCombo(ganzhi.Stem(10)) })
}

func TestCompareCombos(t *testing.T) {
	a := NewCombo(ganzhi.ZhiZi, ganzhi.ZhiChou)
	b := NewCombo(ganzhi.ZhiZi, ganzhi.ZhiChou, ganzhi.ZhiYin)
	c := NewCombo(ganzhi.ZhiZi, ganzhi.ZhiYin)
	assert.Negative(t, compareCombos(a, b))
	assert.Negative(t, compareCombos(b, c))
	assert.Positive(t, compareCombos(c, a))
	assert.Zero(t, compareCombos(a, a))
}

func TestKinds(t *testing.T) {
	assert.Len(t, StemRelations(), 4)
	assert.Len(t, BranchRelations(), 13)
	assert.Equal(t, 3, Sanhui.Arity())
	assert.Equal(t, 3, Sanhe.Arity())
	assert.Equal(t, 0, Xing.Arity())
	assert.Equal(t, 2, StemHe.Arity())
	assert.True(t, Sheng.Directional())
	assert.True(t, Xing.Directional())
	assert.False(t, Chong.Directional())
	assert.True(t, StemKe.Directional())
	assert.Equal(t, "通禄合", Tongluhe.String())
	assert.Equal(t, "tongluhe", Tongluhe.Name())

	k, err := ParseBranchRelation(" Tongluhe ")
	require.NoError(t, err)
	assert.Equal(t, Tongluhe, k)
	k, err = ParseBranchRelation("三合")
	require.NoError(t, err)
	assert.Equal(t, Sanhe, k)
	s, err := ParseStemRelation("ke")
	require.NoError(t, err)
	assert.Equal(t, StemKe, s)

	_, err = ParseBranchRelation("liuhai")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRelation))
	_, err = ParseStemRelation("sanhe")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRelation))
}

func TestSearchBranches(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  BranchRelation
		opts  []Option
		want  []string
	}{
		{"chong", "子午丑", Chong, nil, []string{"子午"}},
		{"sanhui", "亥子丑午", Sanhui, nil, []string{"子丑亥"}},
		{"sanhe needs all three", "申子", Sanhe, nil, nil},
		{"banhe", "申子辰", Banhe, nil, []string{"子辰", "子申"}},
		{"liuhe", "子丑寅亥", Liuhe, nil, []string{"子丑", "寅亥"}},
		{"anhe widest by default", "寅丑", Anhe, nil, []string{"丑寅"}},
		{"anhe normal", "寅丑", Anhe, []Option{WithAnhe(rules.AnheNormal)}, nil},
		{"anhe mangpai", "午亥卯申", Anhe, []Option{WithAnhe(rules.AnheMangpai)}, []string{"卯申", "午亥"}},
		{"sheng either direction", "午寅", Sheng, nil, []string{"寅午"}},
		{"ke", "申卯子", Ke, nil, []string{"卯申"}},
		{"duplicates add nothing", "子子午午", Chong, nil, []string{"子午"}},
		{"xing self", "亥辰亥", Xing, nil, []string{"亥"}},
		{"xing self needs two", "亥辰", Xing, nil, nil},
		{"xing strict pair", "寅巳", Xing, nil, nil},
		{"xing loose pair", "寅巳", Xing, []Option{WithXing(rules.XingLoose)}, []string{"寅巳"}},
		{"xing loose reversed pair", "巳寅", Xing, []Option{WithXing(rules.XingLoose)}, []string{"寅巳"}},
		{"xing strict triad", "申巳寅", Xing, nil, []string{"寅巳申"}},
		{
			"xing loose triad", "寅巳申", Xing, []Option{WithXing(rules.XingLoose)},
			[]string{"寅巳", "寅巳申", "寅申", "巳申"},
		},
		{"xing zimao", "卯子", Xing, nil, []string{"子卯"}},
		{"empty input", "", Chong, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []ganzhi.Branch
			if tt.input != "" {
				in = bs(t, tt.input)
			}
			got := SearchBranches(in, tt.kind, tt.opts...)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, render(got))
		})
	}
}

func TestSearchLeavesInputUntouched(t *testing.T) {
	in := bs(t, "午子亥亥")
	before := append([]ganzhi.Branch(nil), in...)
	SearchBranches(in, Xing)
	SearchBranches(in, Chong)
	assert.Equal(t, before, in)
}

func TestSearchIsOrderIndependent(t *testing.T) {
	a := DiscoverBranches(bs(t, "寅巳申辰辰子"), WithXing(rules.XingLoose))
	b := DiscoverBranches(bs(t, "辰子申巳辰寅"), WithXing(rules.XingLoose))
	assert.True(t, a.Equal(b))
}

func TestDiscoverStems(t *testing.T) {
	d := DiscoverStems(ss(t, "甲己庚"))
	assert.Equal(t, []StemRelation{StemHe, StemChong, StemSheng, StemKe}, d.Kinds())
	assert.Equal(t, []string{"甲己"}, render(d.Get(StemHe)))
	assert.Equal(t, []string{"甲庚"}, render(d.Get(StemChong)))
	assert.Equal(t, []string{"己庚"}, render(d.Get(StemSheng)))
	assert.Equal(t, []string{"甲己", "甲庚"}, render(d.Get(StemKe)))
	assert.Equal(t, 5, d.Len())
}

func TestDiscoverStemsMutual(t *testing.T) {
	d := DiscoverStemsMutual(ss(t, "甲"), ss(t, "己庚"))
	assert.Equal(t, []StemRelation{StemHe, StemChong, StemKe}, d.Kinds())
	assert.Empty(t, d.Get(StemSheng), "己庚 lies within one side")
	assert.True(t, d.Equal(DiscoverStemsMutual(ss(t, "己庚"), ss(t, "甲"))))
}

func TestDiscoverBranchesMutual(t *testing.T) {
	t.Run("self punishment across sides", func(t *testing.T) {
		d := DiscoverBranchesMutual(bs(t, "辰子"), bs(t, "辰"))
		assert.Equal(t, []BranchRelation{Xing}, d.Kinds())
		assert.Equal(t, []string{"辰"}, render(d.Get(Xing)))
	})

	t.Run("self punishment within one side", func(t *testing.T) {
		d := DiscoverBranchesMutual(bs(t, "辰辰"), bs(t, "辰"))
		assert.Empty(t, d.Get(Xing))
	})

	t.Run("triad completed by the other side", func(t *testing.T) {
		d := DiscoverBranchesMutual(bs(t, "寅巳"), bs(t, "申"))
		assert.Equal(t, []string{"寅巳申"}, render(d.Get(Xing)))
	})

	t.Run("combos span both sides", func(t *testing.T) {
		a, b := bs(t, "子丑寅卯"), bs(t, "午未申酉亥")
		ma, mb := NewCombo(a...), NewCombo(b...)
		d := DiscoverBranchesMutual(a, b, WithXing(rules.XingLoose))
		require.False(t, d.IsEmpty())
		for k, c := range d.All() {
			assert.True(t, c.Intersects(ma), "%s %s", k, c)
			assert.True(t, c.Intersects(mb), "%s %s", k, c)
			assert.False(t, c.SubsetOf(ma), "%s %s", k, c)
			assert.False(t, c.SubsetOf(mb), "%s %s", k, c)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a, b := bs(t, "寅午戌亥"), bs(t, "卯未巳亥")
		assert.True(t, DiscoverBranchesMutual(a, b).Equal(DiscoverBranchesMutual(b, a)))
	})
}

func TestDiscoveryAlgebra(t *testing.T) {
	d := DiscoverBranches(bs(t, "子午卯酉辰辰"))
	require.False(t, d.IsEmpty())

	assert.True(t, d.Merge(d).Equal(d), "merge is idempotent")
	assert.True(t, d.Merge(BranchDiscovery{}).Equal(d))
	assert.True(t, BranchDiscovery{}.Merge(d).Equal(d))

	isChong := func(k BranchRelation, _ BranchCombo) bool { return k == Chong }
	notChong := func(k BranchRelation, c BranchCombo) bool { return !isChong(k, c) }
	chong := d.Filter(isChong)
	assert.Equal(t, []BranchRelation{Chong}, chong.Kinds())
	assert.Equal(t, []string{"子午", "卯酉"}, render(chong.Get(Chong)))
	assert.True(t, chong.Merge(d.Filter(notChong)).Equal(d), "filter and its complement rebuild d")

	none := d.Filter(func(BranchRelation, BranchCombo) bool { return false })
	assert.True(t, none.IsEmpty())
	assert.True(t, none.Equal(BranchDiscovery{}))
	assert.Equal(t, 0, none.Len())

	got := d.Get(Chong)
	got[0] = BranchCombo{}
	assert.Equal(t, []string{"子午", "卯酉"}, render(d.Get(Chong)), "Get returns a copy")

	assert.True(t, d.Has(Xing, NewCombo(ganzhi.ZhiChen)))
	assert.False(t, d.Has(Xing, NewCombo(ganzhi.ZhiWu)))
	assert.False(t, d.Equal(chong))
}

func TestDiscoveryAll(t *testing.T) {
	d := DiscoverBranches(bs(t, "子午"))
	var got []string
	for k, c := range d.All() {
		got = append(got, k.Name()+":"+c.String())
	}
	assert.Equal(t, []string{"chong:子午", "ke:子午"}, got)
	assert.Equal(t, "冲: 子午; 克: 子午", d.String())

	n := 0
	for range d.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestGanzhi(t *testing.T) {
	chart := []ganzhi.Pillar{
		ganzhi.MustPillar(ganzhi.GanJia, ganzhi.ZhiZi),
		ganzhi.MustPillar(ganzhi.GanDing, ganzhi.ZhiMao),
	}
	year := []ganzhi.Pillar{ganzhi.MustPillar(ganzhi.GanGeng, ganzhi.ZhiWu)}

	g := DiscoverGanzhiMutual(chart, year)
	assert.Equal(t, []string{"甲庚"}, render(g.Stems.Get(StemChong)))
	assert.Equal(t, []string{"子午"}, render(g.Branches.Get(Chong)))
	assert.Equal(t, []string{"卯午"}, render(g.Branches.Get(Po)))

	all := DiscoverGanzhi(append(chart, year...))
	assert.True(t, all.Merge(g).Equal(all))
	assert.Equal(t, g.Len(), g.Filter(nil, nil).Len())

	onlyStems := g.Filter(nil, func(BranchRelation, BranchCombo) bool { return false })
	assert.True(t, onlyStems.Branches.IsEmpty())
	assert.True(t, onlyStems.Stems.Equal(g.Stems))
	assert.False(t, onlyStems.IsEmpty())
}

func TestContractViolations(t *testing.T) {
	assert.Panics(t, func() { SearchBranches(nil, BranchRelation(99)) })
	assert.Panics(t, func() { SearchStems(nil, StemRelation(9)) })
	assert.Panics(t, func() { SearchBranches(nil, Anhe, WithAnhe(rules.AnheDefinition(9))) })
	assert.Panics(t, func() { SearchBranches(nil, Xing, WithXing(rules.XingDefinition(9))) })
	assert.Panics(t, func() { SearchBranches([]ganzhi.Branch{12}, Xing) })
	assert.Panics(t, func() { SearchBranches([]ganzhi.Branch{12}, Chong) })
	assert.Panics(t, func() { _ = BranchRelation(20).Name() })
}
