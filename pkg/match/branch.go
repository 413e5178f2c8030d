package match

import (
	"fmt"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/rules"
)

// Sanhui reports whether three branches form a seasonal meeting and its
// element.
func Sanhui(a, b, c ganzhi.Branch) (ganzhi.Element, bool) {
	mustBranches(a, b, c)
	if !distinct(a, b, c) {
		return 0, false
	}
	e, ok := sanhui[setOf(a, b, c)]
	return e, ok
}

// Sanhe reports whether three branches form a frame and its element.
func Sanhe(a, b, c ganzhi.Branch) (ganzhi.Element, bool) {
	mustBranches(a, b, c)
	if !distinct(a, b, c) {
		return 0, false
	}
	e, ok := sanhe[setOf(a, b, c)]
	return e, ok
}

// Liuhe reports whether a and b combine and the element they transform into.
func Liuhe(a, b ganzhi.Branch) (ganzhi.Element, bool) {
	mustBranches(a, b)
	if a == b {
		return 0, false
	}
	e, ok := liuhe[setOf(a, b)]
	return e, ok
}

// Banhe reports whether a and b form a half frame and its element.
func Banhe(a, b ganzhi.Branch) (ganzhi.Element, bool) {
	mustBranches(a, b)
	if a == b {
		return 0, false
	}
	e, ok := banhe[setOf(a, b)]
	return e, ok
}

// Anhe reports whether a and b form a hidden combination under def.
func Anhe(def rules.AnheDefinition, a, b ganzhi.Branch) bool {
	t, ok := anhe[def]
	if !ok {
		panic(fmt.Sprintf("match: invalid anhe definition %d", uint8(def)))
	}
	return pair(t, a, b)
}

// Tonghe reports whether a and b combine through all their stored stems.
func Tonghe(a, b ganzhi.Branch) bool { return pair(tonghe, a, b) }

// Tongluhe reports whether a and b are the Lu branches of combining stems.
func Tongluhe(a, b ganzhi.Branch) bool { return pair(tongluhe, a, b) }

// Chong reports whether a and b clash.
func Chong(a, b ganzhi.Branch) bool { return pair(chong, a, b) }

// Po reports whether a and b break each other.
func Po(a, b ganzhi.Branch) bool { return pair(po, a, b) }

// Hai reports whether a and b harm each other.
func Hai(a, b ganzhi.Branch) bool { return pair(hai, a, b) }

// Sheng reports whether a generates b.
func Sheng(a, b ganzhi.Branch) bool {
	mustBranches(a, b)
	return sheng[rules.BranchPair{a, b}]
}

// Ke reports whether a destroys b.
func Ke(a, b ganzhi.Branch) bool {
	mustBranches(a, b)
	return ke[rules.BranchPair{a, b}]
}

// Xing reports whether the branches are exactly one punishment of the table
// selected by def. Under XingLoose the argument order matters. Zero or one
// branch never matches; more than three is a contract violation.
//
//	Xing(rules.XingLoose, 寅, 巳)   // Sanxing, true
//	Xing(rules.XingLoose, 巳, 寅)   // false
//	Xing(rules.XingStrict, 寅, 巳)  // false
//	Xing(rules.XingStrict, 亥, 亥)  // Zixing, true
func Xing(def rules.XingDefinition, bs ...ganzhi.Branch) (rules.XingSubtype, bool) {
	if len(bs) > 3 {
		panic(fmt.Sprintf("match: xing takes at most 3 branches, got %d", len(bs)))
	}
	mustBranches(bs...)
	r, ok := rules.XingLookup(def, bs)
	if !ok {
		return 0, false
	}
	return r.Subtype, true
}

func pair(t map[branchSet]bool, a, b ganzhi.Branch) bool {
	mustBranches(a, b)
	return a != b && t[setOf(a, b)]
}
