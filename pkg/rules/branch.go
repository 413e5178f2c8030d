package rules

import (
	"iter"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
)

// BranchPair is a pair of branches. Symmetric tables store it in ascending
// order; directional tables store (from, to).
type BranchPair [2]ganzhi.Branch

// BranchTriple is three branches in ascending order.
type BranchTriple [3]ganzhi.Branch

var (
	sanhui = buildSanhui()
	sanhe  = buildSanhe()
	banhe  = buildBanhe()
	liuhe  = buildLiuhe()

	branchChong = buildBranchChong()
	po          = buildPo()
	hai         = buildHai()

	tongluhe = buildTongluhe()
	tonghe   = []BranchPair{
		sortedBranches(ganzhi.ZhiYin, ganzhi.ZhiChou),
		sortedBranches(ganzhi.ZhiWu, ganzhi.ZhiHai),
	}

	branchSheng = branchRing(ganzhi.Element.Generates)
	branchKe    = branchRing(ganzhi.Element.Destroys)
)

type tripleRule struct {
	members BranchTriple
	element ganzhi.Element
}

type pairRule struct {
	members BranchPair
	element ganzhi.Element
}

// 寅卯辰 木, 巳午未 火, 申酉戌 金, 亥子丑 水: named after the first member.
func buildSanhui() []tripleRule {
	out := make([]tripleRule, 0, 4)
	for k := range 4 {
		first := ganzhi.ZhiYin.Add(3 * k)
		out = append(out, tripleRule{
			members: sortedTriple(first, first.Add(1), first.Add(2)),
			element: first.Element(),
		})
	}
	return out
}

// sanhePivots are the cardinal branches at the centre of each Sanhe frame.
var sanhePivots = [4]ganzhi.Branch{ganzhi.ZhiZi, ganzhi.ZhiMao, ganzhi.ZhiWu, ganzhi.ZhiYou}

// 申子辰 水, 亥卯未 木, 寅午戌 火, 巳酉丑 金: named after the pivot.
func buildSanhe() []tripleRule {
	out := make([]tripleRule, 0, len(sanhePivots))
	for _, p := range sanhePivots {
		out = append(out, tripleRule{
			members: sortedTriple(p.Add(-4), p, p.Add(4)),
			element: p.Element(),
		})
	}
	return out
}

// Half frames keep the pivot plus one of its two partners.
func buildBanhe() []pairRule {
	out := make([]pairRule, 0, 2*len(sanhePivots))
	for _, p := range sanhePivots {
		out = append(out,
			pairRule{members: sortedBranches(p.Add(-4), p), element: p.Element()},
			pairRule{members: sortedBranches(p, p.Add(4)), element: p.Element()},
		)
	}
	return out
}

// Pairs whose indices sum to 1 mod 12.
func buildLiuhe() []pairRule {
	elements := map[ganzhi.Branch]ganzhi.Element{
		ganzhi.ZhiZi:   ganzhi.Earth, // 子丑
		ganzhi.ZhiYin:  ganzhi.Wood,  // 寅亥
		ganzhi.ZhiMao:  ganzhi.Fire,  // 卯戌
		ganzhi.ZhiChen: ganzhi.Metal, // 辰酉
		ganzhi.ZhiSi:   ganzhi.Water, // 巳申
		ganzhi.ZhiWu:   ganzhi.Earth, // 午未
	}
	var out []pairRule
	for _, a := range ganzhi.Branches() {
		b := liuhePartner(a)
		if a < b {
			out = append(out, pairRule{members: BranchPair{a, b}, element: elements[a]})
		}
	}
	return out
}

func liuhePartner(b ganzhi.Branch) ganzhi.Branch {
	return ganzhi.ZhiZi.Add(1 - b.Index())
}

func buildBranchChong() []BranchPair {
	out := make([]BranchPair, 0, ganzhi.NumBranches/2)
	for i := range ganzhi.NumBranches / 2 {
		b := ganzhi.Branch(i)
		out = append(out, BranchPair{b, b.Opposite()})
	}
	return out
}

// 子酉, 寅亥, 辰丑, 午卯, 申巳, 戌未
func buildPo() []BranchPair {
	var out []BranchPair
	for _, b := range ganzhi.Branches() {
		if b.Index()%2 == 0 {
			out = append(out, sortedBranches(b, b.Add(-3)))
		}
	}
	return out
}

// Each branch harms the opposite of its Liuhe partner.
func buildHai() []BranchPair {
	seen := make(map[BranchPair]bool)
	var out []BranchPair
	for _, r := range buildLiuhe() {
		a, b := r.members[0], r.members[1]
		for _, p := range []BranchPair{sortedBranches(a, b.Opposite()), sortedBranches(a.Opposite(), b)} {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// The Lu branches of every combining stem pair combine as well.
func buildTongluhe() []BranchPair {
	out := make([]BranchPair, 0, len(heElements))
	for _, p := range buildStemHe() {
		out = append(out, sortedBranches(Lu(p[0]), Lu(p[1])))
	}
	return out
}

func branchRing(rel func(a, b ganzhi.Element) bool) []BranchPair {
	var out []BranchPair
	for _, a := range ganzhi.Branches() {
		for _, b := range ganzhi.Branches() {
			if rel(a.Element(), b.Element()) {
				out = append(out, BranchPair{a, b})
			}
		}
	}
	return out
}

// Sanhui yields the four seasonal triples and their element.
func Sanhui() iter.Seq2[BranchTriple, ganzhi.Element] { return triples(sanhui) }

// Sanhe yields the four frame triples and their element.
func Sanhe() iter.Seq2[BranchTriple, ganzhi.Element] { return triples(sanhe) }

// Banhe yields the eight half frames and their element.
func Banhe() iter.Seq2[BranchPair, ganzhi.Element] { return pairs(banhe) }

// Liuhe yields the six combining pairs and their element.
func Liuhe() iter.Seq2[BranchPair, ganzhi.Element] { return pairs(liuhe) }

// BranchChong yields the six opposing pairs.
func BranchChong() iter.Seq[BranchPair] { return seqOf(branchChong) }

// Po yields the six destruction (破) pairs.
func Po() iter.Seq[BranchPair] { return seqOf(po) }

// Hai yields the six harm (害) pairs.
func Hai() iter.Seq[BranchPair] { return seqOf(hai) }

// Tonghe yields the pairs whose stored stems all combine.
func Tonghe() iter.Seq[BranchPair] { return seqOf(tonghe) }

// Tongluhe yields the pairs of Lu branches of combining stems.
func Tongluhe() iter.Seq[BranchPair] { return seqOf(tongluhe) }

// BranchSheng yields ordered (generator, generated) branch pairs.
func BranchSheng() iter.Seq[BranchPair] { return seqOf(branchSheng) }

// BranchKe yields ordered (destroyer, destroyed) branch pairs.
func BranchKe() iter.Seq[BranchPair] { return seqOf(branchKe) }

func triples(rs []tripleRule) iter.Seq2[BranchTriple, ganzhi.Element] {
	return func(yield func(BranchTriple, ganzhi.Element) bool) {
		for _, r := range rs {
			if !yield(r.members, r.element) {
				return
			}
		}
	}
}

func pairs(rs []pairRule) iter.Seq2[BranchPair, ganzhi.Element] {
	return func(yield func(BranchPair, ganzhi.Element) bool) {
		for _, r := range rs {
			if !yield(r.members, r.element) {
				return
			}
		}
	}
}

func sortedBranches(a, b ganzhi.Branch) BranchPair {
	if b < a {
		a, b = b, a
	}
	return BranchPair{a, b}
}

func sortedTriple(a, b, c ganzhi.Branch) BranchTriple {
	if b < a {
		a, b = b, a
	}
	if c < b {
		b, c = c, b
	}
	if b < a {
		a, b = b, a
	}
	return BranchTriple{a, b, c}
}
