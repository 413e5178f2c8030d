package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Calendar years accepted on the command line and in chart files.
const (
	MinYear = 1
	MaxYear = 9999
)

const (
	maxSymbolRunes = 256
	maxPathBytes   = 500
)

// ValidateSymbolInput rejects stem, branch or pillar text that cannot be a
// symbol list: blank input, more than 256 characters, or control
// characters. Glyphs count as one character each.
func ValidateSymbolInput(s string) error {
	switch {
	case strings.TrimSpace(s) == "":
		return New(ErrCodeInvalidSymbol, "no symbols given")
	case utf8.RuneCountInString(s) > maxSymbolRunes:
		return New(ErrCodeInvalidSymbol, "symbol list longer than %d characters", maxSymbolRunes)
	case strings.ContainsFunc(s, unicode.IsControl):
		return New(ErrCodeInvalidSymbol, "symbol list contains control characters")
	}
	return nil
}

// ValidateYear rejects years outside MinYear..MaxYear.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return New(ErrCodeInvalidInput, "year %d out of range (%d..%d)", year, MinYear, MaxYear)
	}
	return nil
}

// ValidatePath rejects chart and diagram paths that are empty, longer than
// 500 bytes, or that contain control characters or backslashes.
func ValidatePath(path string) error {
	switch {
	case path == "":
		return New(ErrCodeInvalidPath, "empty path")
	case len(path) > maxPathBytes:
		return New(ErrCodeInvalidPath, "path longer than %d bytes", maxPathBytes)
	case strings.ContainsFunc(path, unicode.IsControl):
		return New(ErrCodeInvalidPath, "path %q contains control characters", path)
	case strings.ContainsRune(path, '\\'):
		return New(ErrCodeInvalidPath, "path %q contains a backslash", path)
	}
	return nil
}

var relationName = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// ValidateRelationName checks that name looks like a relation pinyin such as
// "sanhe" or "liu-he". Whether the name exists is up to the caller.
func ValidateRelationName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRelation, "empty relation name")
	}
	if !relationName.MatchString(strings.ToLower(name)) {
		return New(ErrCodeInvalidRelation, "malformed relation name %q", name)
	}
	return nil
}
