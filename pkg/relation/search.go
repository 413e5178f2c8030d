package relation

import (
	"fmt"
	"iter"
	"slices"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/rules"
)

// Option configures branch searches.
type Option func(*options)

type options struct {
	anhe rules.AnheDefinition
	xing rules.XingDefinition
}

func defaultOptions() options {
	return options{anhe: rules.AnheNormalExtended, xing: rules.XingStrict}
}

// WithAnhe selects the Anhe table. The default is rules.AnheNormalExtended.
func WithAnhe(def rules.AnheDefinition) Option {
	return func(o *options) { o.anhe = def }
}

// WithXing selects the Xing table. The default is rules.XingStrict.
func WithXing(def rules.XingDefinition) Option {
	return func(o *options) { o.xing = def }
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, ok := anheTables[o.anhe]; !ok {
		panic(fmt.Sprintf("relation: invalid anhe definition %d", uint8(o.anhe)))
	}
	if o.xing != rules.XingStrict && o.xing != rules.XingLoose {
		panic(fmt.Sprintf("relation: invalid xing definition %d", uint8(o.xing)))
	}
	return o
}

// Every fixed-membership table is flattened to canonical combos once.
var (
	stemTables = [numStemRelations][]StemCombo{
		StemHe:    pairCombos(keys(rules.StemHe())),
		StemChong: pairCombos(rules.StemChong()),
		StemSheng: pairCombos(rules.StemSheng()),
		StemKe:    pairCombos(rules.StemKe()),
	}

	branchTables = map[BranchRelation][]BranchCombo{
		Sanhui:   tripleCombos(keys(rules.Sanhui())),
		Liuhe:    pairCombos(keys(rules.Liuhe())),
		Tonghe:   pairCombos(rules.Tonghe()),
		Tongluhe: pairCombos(rules.Tongluhe()),
		Sanhe:    tripleCombos(keys(rules.Sanhe())),
		Banhe:    pairCombos(keys(rules.Banhe())),
		Chong:    pairCombos(rules.BranchChong()),
		Po:       pairCombos(rules.Po()),
		Hai:      pairCombos(rules.Hai()),
		Sheng:    pairCombos(rules.BranchSheng()),
		Ke:       pairCombos(rules.BranchKe()),
	}

	anheTables = map[rules.AnheDefinition][]BranchCombo{
		rules.AnheNormal:         pairCombos(rules.Anhe(rules.AnheNormal)),
		rules.AnheNormalExtended: pairCombos(rules.Anhe(rules.AnheNormalExtended)),
		rules.AnheMangpai:        pairCombos(rules.Anhe(rules.AnheMangpai)),
	}
)

func keys[K, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

// pairCombos and tripleCombos turn fixed-size tuples into a sorted,
// deduplicated combo list.
func pairCombos[T ~[2]E, E ganzhi.Symbol](seq iter.Seq[T]) []Combo[E] {
	var out []Combo[E]
	for t := range seq {
		out = append(out, NewCombo(t[0], t[1]))
	}
	return canonical(out)
}

func tripleCombos[T ~[3]E, E ganzhi.Symbol](seq iter.Seq[T]) []Combo[E] {
	var out []Combo[E]
	for t := range seq {
		out = append(out, NewCombo(t[0], t[1], t[2]))
	}
	return canonical(out)
}

func canonical[E ganzhi.Symbol](cs []Combo[E]) []Combo[E] {
	slices.SortFunc(cs, compareCombos[E])
	return slices.Compact(cs)
}

func within[E ganzhi.Symbol](table []Combo[E], in uint16) []Combo[E] {
	var out []Combo[E]
	for _, c := range table {
		if c.mask&in == c.mask {
			out = append(out, c)
		}
	}
	return out
}

// SearchStems returns every combo of kind formed by members of stems, in
// canonical order. Duplicate stems add nothing.
func SearchStems(stems []ganzhi.Stem, kind StemRelation) []StemCombo {
	if !kind.Valid() {
		panic(fmt.Sprintf("relation: invalid stem relation %d", uint8(kind)))
	}
	return within(stemTables[kind], maskOf(stems))
}

// SearchBranches returns every combo of kind formed by members of branches,
// in canonical order. Only Xing depends on multiplicity: a self-punishment
// needs its branch twice and is reported as a one-branch combo.
//
//	SearchBranches([]ganzhi.Branch{子, 午, 丑}, Chong)            // [子午]
//	SearchBranches([]ganzhi.Branch{亥, 辰, 亥}, Xing)             // [亥]
//	SearchBranches([]ganzhi.Branch{寅, 巳}, Xing, WithXing(rules.XingLoose)) // [寅巳]
func SearchBranches(branches []ganzhi.Branch, kind BranchRelation, opts ...Option) []BranchCombo {
	o := resolve(opts)
	switch kind {
	case Anhe:
		return within(anheTables[o.anhe], maskOf(branches))
	case Xing:
		return searchXing(branches, o.xing)
	}
	table, ok := branchTables[kind]
	if !ok {
		panic(fmt.Sprintf("relation: invalid branch relation %d", uint8(kind)))
	}
	return within(table, maskOf(branches))
}

func searchXing(branches []ganzhi.Branch, def rules.XingDefinition) []BranchCombo {
	var have [ganzhi.NumBranches]int
	for _, b := range branches {
		if !b.Valid() {
			panic(fmt.Sprintf("relation: invalid symbol %d", uint8(b)))
		}
		have[b]++
	}

	var out []BranchCombo
	for r := range rules.Xing(def) {
		var need [ganzhi.NumBranches]int
		ok := true
		for _, b := range r.Branches() {
			need[b]++
			if need[b] > have[b] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, NewCombo(r.Branches()...))
		}
	}
	return canonical(out)
}
