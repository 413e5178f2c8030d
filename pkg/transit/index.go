package transit

import (
	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/observability"
)

// Index resolves calendar years to the terms of one generator.
//
// The first term fixes the anchor year. Term i covers the years
// [anchor+span*i, anchor+span*(i+1)), so the term for any year is found by
// integer division. Terms are pulled from the generator only when a year past
// the cached range is requested, and are never evicted.
type Index struct {
	gen     Generator
	kind    Kind
	span    int
	anchor  int
	empty   bool
	done    bool
	entries []Entry
}

// NewIndex takes ownership of gen, which must not have been advanced by
// anyone else.
func NewIndex(gen Generator) *Index {
	x := &Index{gen: gen, kind: gen.Kind(), span: gen.Span()}
	first, ok := gen.Peek()
	if !ok {
		x.empty, x.done = true, true
		return x
	}
	x.anchor = first.Year
	return x
}

// Kind returns the kind of the wrapped generator.
func (x *Index) Kind() Kind { return x.kind }

// First returns the first covered year. It reports false for an empty
// sequence.
func (x *Index) First() (int, bool) { return x.anchor, !x.empty }

// Cached returns the number of terms pulled from the generator so far.
func (x *Index) Cached() int { return len(x.entries) }

// At returns the term covering year. Years before the first term, or after
// the last term of a finite sequence, yield an UNSUPPORTED error.
func (x *Index) At(year int) (Entry, error) {
	if x.empty {
		observability.Transit().OnUnsupported(x.kind.Name(), year)
		return Entry{}, errors.New(errors.ErrCodeUnsupported, "%s: sequence is empty", x.kind.Name())
	}
	if year < x.anchor {
		return Entry{}, x.unsupported(year)
	}
	i := (year - x.anchor) / x.span
	if i >= len(x.entries) && !x.extend(i, year) {
		return Entry{}, x.unsupported(year)
	}
	return x.entries[i], nil
}

// Covers reports whether At(year) succeeds.
func (x *Index) Covers(year int) bool {
	_, err := x.At(year)
	return err == nil
}

// extend pulls terms until entries[i] exists.
func (x *Index) extend(i, year int) bool {
	if x.done {
		return false
	}
	for len(x.entries) <= i {
		e, ok := x.gen.Next()
		if !ok {
			x.done = true
			break
		}
		x.entries = append(x.entries, e)
	}
	observability.Transit().OnExtend(x.kind.Name(), year, len(x.entries))
	return i < len(x.entries)
}

func (x *Index) unsupported(year int) error {
	observability.Transit().OnUnsupported(x.kind.Name(), year)
	last := 0
	if x.done {
		last = x.anchor + x.span*len(x.entries) - 1
	}
	return errors.Unsupported(x.kind.Name(), year, x.anchor, last)
}
