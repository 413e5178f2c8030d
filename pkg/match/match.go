// Package match tests fixed tuples of stems or branches against the relation
// tables.
//
// Each matcher takes exactly the arity of its relation and reports the payload
// (an element or a Xing subtype) or a boolean. Symmetric matchers ignore
// argument order. [StemSheng], [StemKe], [Sheng], [Ke] and loose [Xing] are
// directional: the first argument acts on the second, so callers that do not
// know the direction try both orders.
//
// Passing a value outside the stem or branch alphabet is a contract violation
// and panics.
package match

import (
	"fmt"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/rules"
)

type branchSet uint16

func setOf(bs ...ganzhi.Branch) branchSet {
	var s branchSet
	for _, b := range bs {
		s |= 1 << b
	}
	return s
}

var (
	stemChong = pairSet(rules.StemChong())
	stemSheng = orderedSet(rules.StemSheng())
	stemKe    = orderedSet(rules.StemKe())

	sanhui = elementByTriple(rules.Sanhui())
	sanhe  = elementByTriple(rules.Sanhe())
	liuhe  = elementByPair(rules.Liuhe())
	banhe  = elementByPair(rules.Banhe())

	tonghe   = branchPairSet(rules.Tonghe())
	tongluhe = branchPairSet(rules.Tongluhe())
	chong    = branchPairSet(rules.BranchChong())
	po       = branchPairSet(rules.Po())
	hai      = branchPairSet(rules.Hai())
	sheng    = orderedBranchSet(rules.BranchSheng())
	ke       = orderedBranchSet(rules.BranchKe())

	anhe = map[rules.AnheDefinition]map[branchSet]bool{
		rules.AnheNormal:         branchPairSet(rules.Anhe(rules.AnheNormal)),
		rules.AnheNormalExtended: branchPairSet(rules.Anhe(rules.AnheNormalExtended)),
		rules.AnheMangpai:        branchPairSet(rules.Anhe(rules.AnheMangpai)),
	}
)

func pairSet(seq func(func(rules.StemPair) bool)) map[[2]ganzhi.Stem]bool {
	m := make(map[[2]ganzhi.Stem]bool)
	for p := range seq {
		m[p] = true
		m[[2]ganzhi.Stem{p[1], p[0]}] = true
	}
	return m
}

func orderedSet(seq func(func(rules.StemPair) bool)) map[[2]ganzhi.Stem]bool {
	m := make(map[[2]ganzhi.Stem]bool)
	for p := range seq {
		m[p] = true
	}
	return m
}

func elementByTriple(seq func(func(rules.BranchTriple, ganzhi.Element) bool)) map[branchSet]ganzhi.Element {
	m := make(map[branchSet]ganzhi.Element)
	for t, e := range seq {
		m[setOf(t[:]...)] = e
	}
	return m
}

func elementByPair(seq func(func(rules.BranchPair, ganzhi.Element) bool)) map[branchSet]ganzhi.Element {
	m := make(map[branchSet]ganzhi.Element)
	for p, e := range seq {
		m[setOf(p[:]...)] = e
	}
	return m
}

func branchPairSet(seq func(func(rules.BranchPair) bool)) map[branchSet]bool {
	m := make(map[branchSet]bool)
	for p := range seq {
		m[setOf(p[:]...)] = true
	}
	return m
}

func orderedBranchSet(seq func(func(rules.BranchPair) bool)) map[rules.BranchPair]bool {
	m := make(map[rules.BranchPair]bool)
	for p := range seq {
		m[p] = true
	}
	return m
}

func mustStems(ss ...ganzhi.Stem) {
	for _, s := range ss {
		if !s.Valid() {
			panic(fmt.Sprintf("match: invalid stem %d", uint8(s)))
		}
	}
}

func mustBranches(bs ...ganzhi.Branch) {
	for _, b := range bs {
		if !b.Valid() {
			panic(fmt.Sprintf("match: invalid branch %d", uint8(b)))
		}
	}
}

// distinct reports whether the branches are pairwise different. Triples and
// pairs built from a repeated branch never match a set table.
func distinct(bs ...ganzhi.Branch) bool {
	return len(bs) == popcount(setOf(bs...))
}

func popcount(s branchSet) int {
	n := 0
	for ; s != 0; s &= s - 1 {
		n++
	}
	return n
}
