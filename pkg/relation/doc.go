// Package relation finds every stem or branch relation inside a collection
// of symbols and provides a small algebra over the results.
//
// # Kinds and combos
//
// A relation kind is either a [StemRelation] (合 冲 生 克) or a
// [BranchRelation] (三会 六合 暗合 通合 通禄合 三合 半合 刑 冲 破 害 生 克).
// A [Combo] is the unordered set of symbols that takes part in one
// occurrence of a relation. Combos are small bitmasks: they compare with ==
// and can be used as map keys.
//
// Self-punishment (自刑) is the one relation that needs a repeated branch.
// Its combo holds a single branch and means "this branch appears at least
// twice".
//
// # Search and discovery
//
// [SearchStems] and [SearchBranches] return the combos of one kind.
// [DiscoverStems] and [DiscoverBranches] run every kind and collect the
// non-empty results into a [Discovery]:
//
//	d := relation.DiscoverBranches(chart.Branches())
//	for kind, combo := range d.All() {
//	    fmt.Println(kind, combo)
//	}
//
// Branch searches take [Option] values selecting the Anhe and Xing tables.
// Without options the widest Anhe table and the strict Xing table are used.
//
// # Mutual discovery
//
// [DiscoverStemsMutual] and [DiscoverBranchesMutual] report only the
// relations that need both collections: combos found over A and B together
// that neither A nor B produces alone. This is how a chart is related to a
// transit year without repeating what the chart already holds.
//
// # Algebra
//
// A [Discovery] is immutable. [Discovery.Filter] keeps matching combos,
// [Discovery.Merge] unions two discoveries and [Discovery.Equal] compares
// them per kind, treating a missing kind as empty.
package relation
