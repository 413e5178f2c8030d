package rules

import (
	"iter"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
)

// StemPair is a pair of stems. Symmetric tables store it in ascending order;
// directional tables store (from, to).
type StemPair [2]ganzhi.Stem

// 甲己 土, 乙庚 金, 丙辛 水, 丁壬 木, 戊癸 火
var heElements = [5]ganzhi.Element{ganzhi.Earth, ganzhi.Metal, ganzhi.Water, ganzhi.Wood, ganzhi.Fire}

var (
	stemHeSeq = buildStemHe()
	stemHe    = indexPairs(stemHeSeq, func(i int, _ StemPair) ganzhi.Element { return heElements[i] })

	stemChong = buildStemChong()
	stemSheng = stemRing(ganzhi.Element.Generates)
	stemKe    = stemRing(ganzhi.Element.Destroys)
)

func buildStemHe() []StemPair {
	out := make([]StemPair, 0, len(heElements))
	for i := range heElements {
		out = append(out, StemPair{ganzhi.Stem(i), ganzhi.Stem(i + 5)})
	}
	return out
}

// 甲庚, 乙辛, 丙壬, 丁癸. Earth stems have no opposite.
func buildStemChong() []StemPair {
	out := make([]StemPair, 0, 4)
	for i := range 4 {
		out = append(out, StemPair{ganzhi.Stem(i), ganzhi.Stem(i + 6)})
	}
	return out
}

func stemRing(rel func(a, b ganzhi.Element) bool) []StemPair {
	var out []StemPair
	for _, a := range ganzhi.Stems() {
		for _, b := range ganzhi.Stems() {
			if rel(a.Element(), b.Element()) {
				out = append(out, StemPair{a, b})
			}
		}
	}
	return out
}

func indexPairs[K comparable, V any](keys []K, val func(int, K) V) map[K]V {
	m := make(map[K]V, len(keys))
	for i, k := range keys {
		m[k] = val(i, k)
	}
	return m
}

// StemHe yields the five stem combinations and the element each transforms
// into.
func StemHe() iter.Seq2[StemPair, ganzhi.Element] {
	return func(yield func(StemPair, ganzhi.Element) bool) {
		for _, p := range stemHeSeq {
			if !yield(p, stemHe[p]) {
				return
			}
		}
	}
}

// StemChong yields the four opposing stem pairs.
func StemChong() iter.Seq[StemPair] { return seqOf(stemChong) }

// StemSheng yields ordered (generator, generated) stem pairs.
func StemSheng() iter.Seq[StemPair] { return seqOf(stemSheng) }

// StemKe yields ordered (destroyer, destroyed) stem pairs.
func StemKe() iter.Seq[StemPair] { return seqOf(stemKe) }

// StemHeElement returns the element a stem combination transforms into.
// The lookup is order-insensitive.
func StemHeElement(a, b ganzhi.Stem) (ganzhi.Element, bool) {
	e, ok := stemHe[sortedStems(a, b)]
	return e, ok
}

func sortedStems(a, b ganzhi.Stem) StemPair {
	if b < a {
		a, b = b, a
	}
	return StemPair{a, b}
}

// lu is the branch where each stem is at its prosperous position.
var lu = [ganzhi.NumStems]ganzhi.Branch{
	ganzhi.ZhiYin,  // 甲
	ganzhi.ZhiMao,  // 乙
	ganzhi.ZhiSi,   // 丙
	ganzhi.ZhiWu,   // 丁
	ganzhi.ZhiSi,   // 戊
	ganzhi.ZhiWu,   // 己
	ganzhi.ZhiShen, // 庚
	ganzhi.ZhiYou,  // 辛
	ganzhi.ZhiHai,  // 壬
	ganzhi.ZhiZi,   // 癸
}

// Lu returns the Lu (禄) branch of a stem.
func Lu(s ganzhi.Stem) ganzhi.Branch {
	return lu[s.Index()]
}

// principal is the main qi stem stored in each branch.
var principal = [ganzhi.NumBranches]ganzhi.Stem{
	ganzhi.GanGui,  // 子
	ganzhi.GanJi,   // 丑
	ganzhi.GanJia,  // 寅
	ganzhi.GanYi,   // 卯
	ganzhi.GanWu,   // 辰
	ganzhi.GanBing, // 巳
	ganzhi.GanDing, // 午
	ganzhi.GanJi,   // 未
	ganzhi.GanGeng, // 申
	ganzhi.GanXin,  // 酉
	ganzhi.GanWu,   // 戌
	ganzhi.GanRen,  // 亥
}

// PrincipalStem returns the main qi stem of a branch.
func PrincipalStem(b ganzhi.Branch) ganzhi.Stem {
	return principal[b.Index()]
}

func seqOf[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
