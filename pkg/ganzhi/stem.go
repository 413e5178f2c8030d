package ganzhi

import "fmt"

// Stem is a heavenly stem (tiangan), indexed 0 through 9.
type Stem uint8

const (
	GanJia  Stem = iota // 甲
	GanYi               // 乙
	GanBing             // 丙
	GanDing             // 丁
	GanWu               // 戊
	GanJi               // 己
	GanGeng             // 庚
	GanXin              // 辛
	GanRen              // 壬
	GanGui              // 癸
)

// NumStems is the size of the stem cycle.
const NumStems = 10

var (
	stemGlyphs = [NumStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	stemNames  = [NumStems]string{"jia", "yi", "bing", "ding", "wu", "ji", "geng", "xin", "ren", "gui"}

	stemElements = [NumStems]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}
	stemPolarity = [NumStems]Polarity{Yang, Yin, Yang, Yin, Yang, Yin, Yang, Yin, Yang, Yin}
)

// Valid reports whether s is one of the ten stems.
func (s Stem) Valid() bool { return s < NumStems }

// Index returns the position of s in the stem cycle.
func (s Stem) Index() int {
	s.mustValid()
	return int(s)
}

// String returns the Chinese glyph of the stem.
func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", uint8(s))
	}
	return stemGlyphs[s]
}

// Name returns the pinyin name of the stem.
func (s Stem) Name() string {
	if !s.Valid() {
		return fmt.Sprintf("stem(%d)", uint8(s))
	}
	return stemNames[s]
}

// Element returns the element the stem belongs to.
func (s Stem) Element() Element {
	s.mustValid()
	return stemElements[s]
}

// Polarity returns the polarity of the stem.
func (s Stem) Polarity() Polarity {
	s.mustValid()
	return stemPolarity[s]
}

// Add steps n positions through the stem cycle. n may be negative.
func (s Stem) Add(n int) Stem {
	s.mustValid()
	return Stem(mod(int(s)+n, NumStems))
}

func (s Stem) mustValid() {
	if !s.Valid() {
		panic(fmt.Sprintf("ganzhi: invalid stem %d", uint8(s)))
	}
}

// Stems returns all ten stems in cycle order.
func Stems() []Stem {
	out := make([]Stem, NumStems)
	for i := range out {
		out[i] = Stem(i)
	}
	return out
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
