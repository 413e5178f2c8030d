package ganzhi

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/matzehuels/ganzhi/pkg/errors"
)

var (
	stemByToken   = make(map[string]Stem, 2*NumStems)
	branchByToken = make(map[string]Branch, 2*NumBranches)
)

func init() {
	for _, s := range Stems() {
		stemByToken[stemGlyphs[s]] = s
		stemByToken[stemNames[s]] = s
	}
	for _, b := range Branches() {
		branchByToken[branchGlyphs[b]] = b
		branchByToken[branchNames[b]] = b
	}
}

// normalize folds full-width letters and punctuation (ｊｉａ，ｙｉ) to their
// ASCII forms. Glyphs are unchanged.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(width.Fold.String(s)))
}

// ParseStem parses a single stem from its glyph or pinyin name.
func ParseStem(s string) (Stem, error) {
	if v, ok := stemByToken[normalize(s)]; ok {
		return v, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidSymbol, "unknown stem %q", s)
}

// ParseBranch parses a single branch from its glyph or pinyin name.
func ParseBranch(s string) (Branch, error) {
	if v, ok := branchByToken[normalize(s)]; ok {
		return v, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidSymbol, "unknown branch %q", s)
}

// ParsePillar parses "甲子", "jia-zi" or "jia zi".
func ParsePillar(s string) (Pillar, error) {
	s = normalize(s)
	var stem, branch string
	switch {
	case utf8.RuneCountInString(s) == 2:
		r, n := utf8.DecodeRuneInString(s)
		stem, branch = string(r), s[n:]
	default:
		parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || unicode.IsSpace(r) })
		if len(parts) != 2 {
			return Pillar{}, errors.New(errors.ErrCodeInvalidPillar, "cannot parse pillar %q", s)
		}
		stem, branch = parts[0], parts[1]
	}

	st, err := ParseStem(stem)
	if err != nil {
		return Pillar{}, errors.Wrap(errors.ErrCodeInvalidPillar, err, "parse pillar %q", s)
	}
	br, err := ParseBranch(branch)
	if err != nil {
		return Pillar{}, errors.Wrap(errors.ErrCodeInvalidPillar, err, "parse pillar %q", s)
	}
	return NewPillar(st, br)
}

// ParseStems parses a list of stems. Tokens are separated by whitespace or
// commas; a token that is not a pinyin name is read as a run of glyphs, so
// "甲乙" and "jia, yi" yield the same result. Order and repetition are kept.
func ParseStems(s string) ([]Stem, error) {
	return parseList(s, ParseStem)
}

// ParseBranches parses a list of branches in the same forms as ParseStems.
func ParseBranches(s string) ([]Branch, error) {
	return parseList(s, ParseBranch)
}

func parseList[E any](s string, one func(string) (E, error)) ([]E, error) {
	if err := errors.ValidateSymbolInput(s); err != nil {
		return nil, err
	}
	fields := strings.FieldsFunc(width.Fold.String(s), func(r rune) bool { return r == ',' || unicode.IsSpace(r) })

	var out []E
	for _, tok := range fields {
		if v, err := one(tok); err == nil {
			out = append(out, v)
			continue
		}
		for _, r := range tok {
			v, err := one(string(r))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}
