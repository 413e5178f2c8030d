// Package ganzhi defines the symbols of the sexagenary (stem-branch) system.
//
// # Overview
//
// The ten heavenly stems ([Stem]) and twelve earthly branches ([Branch]) are
// small cyclic alphabets. Every symbol carries a fixed [Element] and
// [Polarity] that are looked up from static tables, never computed.
//
// A [Pillar] pairs one stem with one branch of the same polarity. Only 60 such
// pairs exist; stepping both indices together walks the sexagenary cycle:
//
//	p := ganzhi.YearPillar(1984)   // 甲子
//	p.Add(1)                       // 乙丑
//	p.Add(-1)                      // 癸亥
//
// # Elements
//
// The five elements form two rings. Generation runs wood, fire, earth, metal,
// water and back to wood; destruction skips one position (wood destroys earth,
// earth destroys water, water destroys fire, fire destroys metal, metal
// destroys wood). See [Element.Generates] and [Element.Destroys].
//
// # Parsing
//
// [ParseStem], [ParseBranch] and [ParsePillar] accept either the Chinese glyph
// (甲, 子, 甲子) or the pinyin name (jia, zi, jia-zi). [ParseStems] and
// [ParseBranches] read a list, either as a run of glyphs ("寅巳申") or as
// separated names ("yin si shen").
//
// # Contract Violations
//
// Methods that need a valid symbol to produce a meaningful answer (Element,
// Polarity, Index) panic when called on an out-of-range value. Values built
// through the constructors and parsers in this package are always valid.
package ganzhi
