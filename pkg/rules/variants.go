package rules

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
)

// AnheDefinition selects one of the competing Anhe (暗合) tables.
type AnheDefinition uint8

const (
	// AnheNormal pairs the Lu branches of combining stems: 卯申 巳酉 亥午 子巳 寅午.
	AnheNormal AnheDefinition = iota
	// AnheNormalExtended adds 寅丑 to AnheNormal. It is the widest table.
	AnheNormalExtended
	// AnheMangpai keeps 卯申 寅丑 午亥.
	AnheMangpai
)

var anheNames = [...]string{"normal", "normal-extended", "mangpai"}

func (d AnheDefinition) String() string {
	if int(d) < len(anheNames) {
		return anheNames[d]
	}
	return fmt.Sprintf("AnheDefinition(%d)", uint8(d))
}

// ParseAnheDefinition parses "normal", "normal-extended" or "mangpai".
func ParseAnheDefinition(s string) (AnheDefinition, error) {
	if i := slices.Index(anheNames[:], strings.ToLower(strings.TrimSpace(s))); i >= 0 {
		return AnheDefinition(i), nil
	}
	return 0, errors.New(errors.ErrCodeInvalidDefinition, "unknown anhe definition %q", s)
}

func (d AnheDefinition) MarshalText() ([]byte, error) {
	if int(d) >= len(anheNames) {
		return nil, errors.New(errors.ErrCodeInvalidDefinition, "invalid anhe definition %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *AnheDefinition) UnmarshalText(text []byte) error {
	v, err := ParseAnheDefinition(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

var anhe = map[AnheDefinition][]BranchPair{
	AnheNormal: buildTongluhe(),
	AnheNormalExtended: append(buildTongluhe(),
		sortedBranches(ganzhi.ZhiYin, ganzhi.ZhiChou)),
	AnheMangpai: {
		sortedBranches(ganzhi.ZhiMao, ganzhi.ZhiShen),
		sortedBranches(ganzhi.ZhiYin, ganzhi.ZhiChou),
		sortedBranches(ganzhi.ZhiWu, ganzhi.ZhiHai),
	},
}

// Anhe yields the pairs of the selected Anhe table. An unknown definition is
// a contract violation.
func Anhe(def AnheDefinition) iter.Seq[BranchPair] {
	t, ok := anhe[def]
	if !ok {
		panic(fmt.Sprintf("rules: invalid anhe definition %d", uint8(def)))
	}
	return seqOf(t)
}

// XingDefinition selects the strict or loose Xing (刑) table.
type XingDefinition uint8

const (
	// XingStrict requires a full 三刑 triad. Order of the input is ignored.
	XingStrict XingDefinition = iota
	// XingLoose also accepts directed 2-of-3 pairs of a triad. Order matters.
	XingLoose
)

var xingNames = [...]string{"strict", "loose"}

func (d XingDefinition) String() string {
	if int(d) < len(xingNames) {
		return xingNames[d]
	}
	return fmt.Sprintf("XingDefinition(%d)", uint8(d))
}

// ParseXingDefinition parses "strict" or "loose".
func ParseXingDefinition(s string) (XingDefinition, error) {
	if i := slices.Index(xingNames[:], strings.ToLower(strings.TrimSpace(s))); i >= 0 {
		return XingDefinition(i), nil
	}
	return 0, errors.New(errors.ErrCodeInvalidDefinition, "unknown xing definition %q", s)
}

func (d XingDefinition) MarshalText() ([]byte, error) {
	if int(d) >= len(xingNames) {
		return nil, errors.New(errors.ErrCodeInvalidDefinition, "invalid xing definition %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *XingDefinition) UnmarshalText(text []byte) error {
	v, err := ParseXingDefinition(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// XingSubtype classifies a punishment.
type XingSubtype uint8

const (
	// Zixing is self-punishment: the same branch appearing twice.
	Zixing XingSubtype = iota
	// ZiMaoXing is the mutual punishment of 子 and 卯.
	ZiMaoXing
	// Sanxing is one of the triads 寅巳申 and 丑未戌, or part of one.
	Sanxing
)

func (t XingSubtype) String() string {
	switch t {
	case Zixing:
		return "自刑"
	case ZiMaoXing:
		return "子卯刑"
	case Sanxing:
		return "三刑"
	}
	return fmt.Sprintf("XingSubtype(%d)", uint8(t))
}

// XingRule is one entry of a Xing table: an exact tuple of 2 or 3 branches.
type XingRule struct {
	members [3]ganzhi.Branch
	n       uint8
	Subtype XingSubtype
}

// Branches returns the tuple in table order.
func (r XingRule) Branches() []ganzhi.Branch {
	return slices.Clone(r.members[:r.n])
}

// Len returns the tuple length.
func (r XingRule) Len() int { return int(r.n) }

func newXingRule(t XingSubtype, bs ...ganzhi.Branch) XingRule {
	r := XingRule{n: uint8(len(bs)), Subtype: t}
	copy(r.members[:], bs)
	return r
}

var (
	xingSelf = []ganzhi.Branch{ganzhi.ZhiChen, ganzhi.ZhiWu, ganzhi.ZhiYou, ganzhi.ZhiHai}

	// Each triad lists its directed punishments in cycle order:
	// 寅刑巳, 巳刑申, 申刑寅 and 丑刑戌, 戌刑未, 未刑丑.
	xingTriads = [][3]ganzhi.Branch{
		{ganzhi.ZhiYin, ganzhi.ZhiSi, ganzhi.ZhiShen},
		{ganzhi.ZhiChou, ganzhi.ZhiXu, ganzhi.ZhiWei},
	}

	xing = map[XingDefinition][]XingRule{
		XingStrict: buildXing(false),
		XingLoose:  buildXing(true),
	}
	xingIndex = map[XingDefinition]map[[3]ganzhi.Branch]XingRule{
		XingStrict: indexXing(buildXing(false)),
		XingLoose:  indexXing(buildXing(true)),
	}
)

func buildXing(loose bool) []XingRule {
	var out []XingRule
	for _, b := range xingSelf {
		out = append(out, newXingRule(Zixing, b, b))
	}
	out = append(out,
		newXingRule(ZiMaoXing, ganzhi.ZhiZi, ganzhi.ZhiMao),
		newXingRule(ZiMaoXing, ganzhi.ZhiMao, ganzhi.ZhiZi),
	)
	for _, t := range xingTriads {
		for _, p := range permutations(t) {
			out = append(out, newXingRule(Sanxing, p[0], p[1], p[2]))
		}
		if loose {
			for i := range 3 {
				out = append(out, newXingRule(Sanxing, t[i], t[(i+1)%3]))
			}
		}
	}
	return out
}

// Keys pad short tuples with an out-of-range branch so that (a, b) and
// (a, b, 子) stay distinct.
const xingPad = ganzhi.Branch(0xff)

func xingKey(bs []ganzhi.Branch) [3]ganzhi.Branch {
	k := [3]ganzhi.Branch{xingPad, xingPad, xingPad}
	copy(k[:], bs)
	return k
}

func indexXing(rs []XingRule) map[[3]ganzhi.Branch]XingRule {
	m := make(map[[3]ganzhi.Branch]XingRule, len(rs))
	for _, r := range rs {
		m[xingKey(r.members[:r.n])] = r
	}
	return m
}

func permutations(t [3]ganzhi.Branch) [][3]ganzhi.Branch {
	a, b, c := t[0], t[1], t[2]
	return [][3]ganzhi.Branch{{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}}
}

// Xing yields the rules of the selected Xing table.
func Xing(def XingDefinition) iter.Seq[XingRule] {
	t, ok := xing[def]
	if !ok {
		panic(fmt.Sprintf("rules: invalid xing definition %d", uint8(def)))
	}
	return seqOf(t)
}

// XingLookup returns the rule matching bs exactly, as an ordered tuple. The
// strict table lists every ordering of its entries, so strict lookups are
// order-insensitive in effect.
func XingLookup(def XingDefinition, bs []ganzhi.Branch) (XingRule, bool) {
	idx, ok := xingIndex[def]
	if !ok {
		panic(fmt.Sprintf("rules: invalid xing definition %d", uint8(def)))
	}
	if len(bs) > 3 {
		return XingRule{}, false
	}
	r, ok := idx[xingKey(bs)]
	return r, ok
}
