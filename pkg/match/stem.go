package match

import (
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/rules"
)

// StemHe reports whether a and b combine and the element they transform into.
func StemHe(a, b ganzhi.Stem) (ganzhi.Element, bool) {
	mustStems(a, b)
	return rules.StemHeElement(a, b)
}

// StemChong reports whether a and b oppose each other.
func StemChong(a, b ganzhi.Stem) bool {
	mustStems(a, b)
	return stemChong[[2]ganzhi.Stem{a, b}]
}

// StemSheng reports whether a generates b.
func StemSheng(a, b ganzhi.Stem) bool {
	mustStems(a, b)
	return stemSheng[[2]ganzhi.Stem{a, b}]
}

// StemKe reports whether a destroys b.
func StemKe(a, b ganzhi.Stem) bool {
	mustStems(a, b)
	return stemKe[[2]ganzhi.Stem{a, b}]
}
