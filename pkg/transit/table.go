package transit

import (
	"fmt"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
)

// Table answers year queries across the three transit sequences of a chart.
type Table struct {
	indexes [numKinds]*Index
}

// NewTable indexes the three generators. Each generator must produce the
// kind of its parameter.
func NewTable(xiaoyun, dayun, liunian Generator) *Table {
	t := &Table{}
	for k, g := range map[Kind]Generator{Xiaoyun: xiaoyun, Dayun: dayun, Liunian: liunian} {
		if g.Kind() != k {
			panic(fmt.Sprintf("transit: %s generator passed as %s", g.Kind().Name(), k.Name()))
		}
		t.indexes[k] = NewIndex(g)
	}
	return t
}

// Index returns the index of kind k.
func (t *Table) Index(k Kind) *Index {
	if k >= numKinds {
		panic(fmt.Sprintf("transit: invalid kind %d", uint8(k)))
	}
	return t.indexes[k]
}

// Support reports whether every sequence selected by opts covers year.
// Invalid opts are a contract violation.
func (t *Table) Support(year int, opts Options) bool {
	opts.mustValid()
	for _, k := range opts.Kinds() {
		if !t.indexes[k].Covers(year) {
			return false
		}
	}
	return true
}

// Entries returns the terms covering year for the selected sequences, in the
// order Xiaoyun, Dayun, Liunian. It fails with UNSUPPORTED when Support
// would report false.
func (t *Table) Entries(year int, opts Options) ([]Entry, error) {
	opts.mustValid()
	out := make([]Entry, 0, 2)
	for _, k := range opts.Kinds() {
		e, err := t.indexes[k].At(year)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Pillars is Entries reduced to the pillars.
func (t *Table) Pillars(year int, opts Options) ([]ganzhi.Pillar, error) {
	es, err := t.Entries(year, opts)
	if err != nil {
		return nil, err
	}
	out := make([]ganzhi.Pillar, len(es))
	for i, e := range es {
		out[i] = e.Pillar
	}
	return out, nil
}
