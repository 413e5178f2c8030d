package relation

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ganzhi/pkg/errors"
)

// StemRelation is a relation between heavenly stems.
type StemRelation uint8

const (
	StemHe    StemRelation = iota // 合
	StemChong                     // 冲
	StemSheng                     // 生
	StemKe                        // 克
	numStemRelations
)

// BranchRelation is a relation between earthly branches.
type BranchRelation uint8

const (
	Sanhui   BranchRelation = iota // 三会
	Liuhe                          // 六合
	Anhe                           // 暗合
	Tonghe                         // 通合
	Tongluhe                       // 通禄合
	Sanhe                          // 三合
	Banhe                          // 半合
	Xing                           // 刑
	Chong                          // 冲
	Po                             // 破
	Hai                            // 害
	Sheng                          // 生
	Ke                             // 克
	numBranchRelations
)

type kindInfo struct {
	glyph, name string
	arity       int
	directional bool
}

var (
	stemKinds = [numStemRelations]kindInfo{
		{"合", "he", 2, false},
		{"冲", "chong", 2, false},
		{"生", "sheng", 2, true},
		{"克", "ke", 2, true},
	}
	branchKinds = [numBranchRelations]kindInfo{
		{"三会", "sanhui", 3, false},
		{"六合", "liuhe", 2, false},
		{"暗合", "anhe", 2, false},
		{"通合", "tonghe", 2, false},
		{"通禄合", "tongluhe", 2, false},
		{"三合", "sanhe", 3, false},
		{"半合", "banhe", 2, false},
		{"刑", "xing", 0, true},
		{"冲", "chong", 2, false},
		{"破", "po", 2, false},
		{"害", "hai", 2, false},
		{"生", "sheng", 2, true},
		{"克", "ke", 2, true},
	}
)

// Kind is the constraint satisfied by both relation kinds.
type Kind interface {
	StemRelation | BranchRelation
	fmt.Stringer
	Name() string
	Arity() int
	Directional() bool
	Valid() bool
}

// StemRelations lists the stem relation kinds in display order.
func StemRelations() []StemRelation {
	out := make([]StemRelation, numStemRelations)
	for i := range out {
		out[i] = StemRelation(i)
	}
	return out
}

// BranchRelations lists the branch relation kinds in display order.
func BranchRelations() []BranchRelation {
	out := make([]BranchRelation, numBranchRelations)
	for i := range out {
		out[i] = BranchRelation(i)
	}
	return out
}

func (k StemRelation) Valid() bool { return k < numStemRelations }

func (k StemRelation) String() string {
	if !k.Valid() {
		return fmt.Sprintf("StemRelation(%d)", uint8(k))
	}
	return stemKinds[k].glyph
}

// Name returns the pinyin name, e.g. "he".
func (k StemRelation) Name() string { return k.info().name }

// Arity is always 2 for stems.
func (k StemRelation) Arity() int { return k.info().arity }

// Directional reports whether the relation has an acting and a receiving side.
func (k StemRelation) Directional() bool { return k.info().directional }

func (k StemRelation) info() kindInfo {
	if !k.Valid() {
		panic(fmt.Sprintf("relation: invalid stem relation %d", uint8(k)))
	}
	return stemKinds[k]
}

func (k BranchRelation) Valid() bool { return k < numBranchRelations }

func (k BranchRelation) String() string {
	if !k.Valid() {
		return fmt.Sprintf("BranchRelation(%d)", uint8(k))
	}
	return branchKinds[k].glyph
}

// Name returns the pinyin name, e.g. "sanhui".
func (k BranchRelation) Name() string { return k.info().name }

// Arity returns the number of distinct branches in a combo of this kind.
// Xing reports 0: its combos hold one, two or three branches.
func (k BranchRelation) Arity() int { return k.info().arity }

// Directional reports whether the underlying rule is ordered.
func (k BranchRelation) Directional() bool { return k.info().directional }

func (k BranchRelation) info() kindInfo {
	if !k.Valid() {
		panic(fmt.Sprintf("relation: invalid branch relation %d", uint8(k)))
	}
	return branchKinds[k]
}

// ParseStemRelation parses a stem relation by pinyin name or glyph.
func ParseStemRelation(s string) (StemRelation, error) {
	if i, ok := lookupKind(stemKinds[:], s); ok {
		return StemRelation(i), nil
	}
	if err := errors.ValidateRelationName(strings.TrimSpace(s)); err != nil {
		return 0, err
	}
	return 0, errors.New(errors.ErrCodeInvalidRelation, "unknown stem relation %q", s)
}

// ParseBranchRelation parses a branch relation by pinyin name or glyph.
func ParseBranchRelation(s string) (BranchRelation, error) {
	if i, ok := lookupKind(branchKinds[:], s); ok {
		return BranchRelation(i), nil
	}
	if err := errors.ValidateRelationName(strings.TrimSpace(s)); err != nil {
		return 0, err
	}
	return 0, errors.New(errors.ErrCodeInvalidRelation, "unknown branch relation %q", s)
}

func lookupKind(infos []kindInfo, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range infos {
		if s == info.name || s == info.glyph {
			return i, true
		}
	}
	return 0, false
}
