package ganzhi

import "fmt"

// Element is one of the five phases (wuxing).
type Element uint8

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// NumElements is the number of distinct elements.
const NumElements = 5

var (
	elementGlyphs = [NumElements]string{"木", "火", "土", "金", "水"}
	elementNames  = [NumElements]string{"wood", "fire", "earth", "metal", "water"}
)

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool { return e < NumElements }

// String returns the Chinese glyph of the element.
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", uint8(e))
	}
	return elementGlyphs[e]
}

// Name returns the English name of the element.
func (e Element) Name() string {
	if !e.Valid() {
		return fmt.Sprintf("element(%d)", uint8(e))
	}
	return elementNames[e]
}

// Generates reports whether e generates o on the generation ring.
func (e Element) Generates(o Element) bool {
	e.mustValid()
	o.mustValid()
	return (e+1)%NumElements == o
}

// Destroys reports whether e destroys o on the destruction ring.
func (e Element) Destroys(o Element) bool {
	e.mustValid()
	o.mustValid()
	return (e+2)%NumElements == o
}

func (e Element) mustValid() {
	if !e.Valid() {
		panic(fmt.Sprintf("ganzhi: invalid element %d", uint8(e)))
	}
}

// Elements returns all five elements in generation order.
func Elements() []Element {
	return []Element{Wood, Fire, Earth, Metal, Water}
}

// Polarity is yin or yang.
type Polarity uint8

const (
	Yang Polarity = iota
	Yin
)

// String returns the Chinese glyph of the polarity.
func (p Polarity) String() string {
	switch p {
	case Yang:
		return "阳"
	case Yin:
		return "阴"
	}
	return fmt.Sprintf("Polarity(%d)", uint8(p))
}

// Name returns "yang" or "yin".
func (p Polarity) Name() string {
	switch p {
	case Yang:
		return "yang"
	case Yin:
		return "yin"
	}
	return fmt.Sprintf("polarity(%d)", uint8(p))
}

// Opposite returns the other polarity.
func (p Polarity) Opposite() Polarity {
	if p == Yang {
		return Yin
	}
	return Yang
}
