package ganzhi

import "fmt"

// Branch is an earthly branch (dizhi), indexed 0 through 11.
type Branch uint8

const (
	ZhiZi   Branch = iota // 子
	ZhiChou               // 丑
	ZhiYin                // 寅
	ZhiMao                // 卯
	ZhiChen               // 辰
	ZhiSi                 // 巳
	ZhiWu                 // 午
	ZhiWei                // 未
	ZhiShen               // 申
	ZhiYou                // 酉
	ZhiXu                 // 戌
	ZhiHai                // 亥
)

// NumBranches is the size of the branch cycle.
const NumBranches = 12

var (
	branchGlyphs = [NumBranches]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	branchNames  = [NumBranches]string{"zi", "chou", "yin", "mao", "chen", "si", "wu", "wei", "shen", "you", "xu", "hai"}

	branchElements = [NumBranches]Element{
		Water, Earth, Wood, Wood, Earth, Fire,
		Fire, Earth, Metal, Metal, Earth, Water,
	}
	branchPolarity = [NumBranches]Polarity{
		Yang, Yin, Yang, Yin, Yang, Yin,
		Yang, Yin, Yang, Yin, Yang, Yin,
	}
)

// Valid reports whether b is one of the twelve branches.
func (b Branch) Valid() bool { return b < NumBranches }

// Index returns the position of b in the branch cycle.
func (b Branch) Index() int {
	b.mustValid()
	return int(b)
}

// String returns the Chinese glyph of the branch.
func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", uint8(b))
	}
	return branchGlyphs[b]
}

// Name returns the pinyin name of the branch.
func (b Branch) Name() string {
	if !b.Valid() {
		return fmt.Sprintf("branch(%d)", uint8(b))
	}
	return branchNames[b]
}

// Element returns the element the branch belongs to.
func (b Branch) Element() Element {
	b.mustValid()
	return branchElements[b]
}

// Polarity returns the polarity of the branch.
func (b Branch) Polarity() Polarity {
	b.mustValid()
	return branchPolarity[b]
}

// Add steps n positions through the branch cycle. n may be negative.
func (b Branch) Add(n int) Branch {
	b.mustValid()
	return Branch(mod(int(b)+n, NumBranches))
}

// Opposite returns the branch six positions away.
func (b Branch) Opposite() Branch {
	return b.Add(NumBranches / 2)
}

func (b Branch) mustValid() {
	if !b.Valid() {
		panic(fmt.Sprintf("ganzhi: invalid branch %d", uint8(b)))
	}
}

// Branches returns all twelve branches in cycle order.
func Branches() []Branch {
	out := make([]Branch, NumBranches)
	for i := range out {
		out[i] = Branch(i)
	}
	return out
}

// Symbol is satisfied by the two cyclic alphabets. Generic combos and
// discoveries are parameterised over it.
type Symbol interface {
	Stem | Branch
	fmt.Stringer
	Index() int
	Valid() bool
}
