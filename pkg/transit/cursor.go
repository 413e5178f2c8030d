package transit

import (
	"fmt"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
)

// Entry is one term of a transit sequence.
type Entry struct {
	Kind   Kind
	Year   int // first calendar year covered
	Age    int // nominal age in Year, counting the birth year as 1
	Pillar ganzhi.Pillar
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %d %s", e.Kind.Name(), e.Year, e.Pillar)
}

// Generator produces the terms of a transit sequence in order.
type Generator interface {
	Kind() Kind
	// Span is the number of calendar years each term covers.
	Span() int
	// Peek returns the next term without consuming it.
	Peek() (Entry, bool)
	// Next consumes and returns the next term. It reports false once a
	// finite sequence is exhausted.
	Next() (Entry, bool)
}

// Cursor walks a sequence whose k-th term is a pure function of k.
type Cursor struct {
	kind  Kind
	span  int
	count int // -1 for unbounded sequences
	pos   int
	term  func(k int) Entry
}

var _ Generator = (*Cursor)(nil)

func (c *Cursor) Kind() Kind { return c.kind }
func (c *Cursor) Span() int  { return c.span }

func (c *Cursor) Peek() (Entry, bool) {
	if c.count >= 0 && c.pos >= c.count {
		return Entry{}, false
	}
	return c.term(c.pos), true
}

func (c *Cursor) Next() (Entry, bool) {
	e, ok := c.Peek()
	if ok {
		c.pos++
	}
	return e, ok
}

// Finite reports whether the sequence ends, and its length if so.
func (c *Cursor) Finite() (int, bool) {
	return c.count, c.count >= 0
}

func step(forward bool) int {
	if forward {
		return 1
	}
	return -1
}

func mustPillar(p ganzhi.Pillar, what string) {
	if !p.Valid() {
		panic(fmt.Sprintf("transit: invalid %s pillar %s", what, p))
	}
}

// NewDayun returns the decade cycles following the month pillar. Term k is
// month.Add(±(k+1)) starting in startYear+10k; forward selects the sign.
func NewDayun(month ganzhi.Pillar, forward bool, startYear, birthYear int) *Cursor {
	mustPillar(month, "month")
	dir := step(forward)
	return &Cursor{
		kind:  Dayun,
		span:  10,
		count: -1,
		term: func(k int) Entry {
			year := startYear + 10*k
			return Entry{Kind: Dayun, Year: year, Age: year - birthYear + 1, Pillar: month.Add(dir * (k + 1))}
		},
	}
}

// NewLiunian returns the year pillars from birthYear on.
func NewLiunian(birthYear int) *Cursor {
	return &Cursor{
		kind:  Liunian,
		span:  1,
		count: -1,
		term: func(k int) Entry {
			year := birthYear + k
			return Entry{Kind: Liunian, Year: year, Age: k + 1, Pillar: ganzhi.YearPillar(year)}
		},
	}
}

// NewXiaoyun returns count yearly pillars following the hour pillar. The
// term for age a is hour.Add(±a) in year birthYear+a-1. A negative count is
// a contract violation.
func NewXiaoyun(hour ganzhi.Pillar, forward bool, birthYear, count int) *Cursor {
	mustPillar(hour, "hour")
	if count < 0 {
		panic(fmt.Sprintf("transit: negative xiaoyun count %d", count))
	}
	dir := step(forward)
	return &Cursor{
		kind:  Xiaoyun,
		span:  1,
		count: count,
		term: func(k int) Entry {
			age := k + 1
			return Entry{Kind: Xiaoyun, Year: birthYear + k, Age: age, Pillar: hour.Add(dir * age)}
		},
	}
}

// Collect consumes up to n terms from g.
func Collect(g Generator, n int) []Entry {
	out := make([]Entry, 0, max(n, 0))
	for range n {
		e, ok := g.Next()
		if !ok {
			break
		}
		out = append(out, e)
	}
	return out
}
