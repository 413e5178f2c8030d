// Package discover relates a chart to its transits year by year.
//
// A [Discoverer] answers three questions for a year and a selection of
// transit sequences:
//
//   - AtBirth: which relations the four pillars hold among themselves
//     (independent of the year, computed once);
//   - TransitsOnly: which relations the transit pillars of the year hold
//     among themselves;
//   - Mutual: which relations need both the chart and the transit pillars.
//
// The effects of a year are TransitsOnly merged with Mutual.
package discover

import (
	"time"

	"github.com/matzehuels/ganzhi/pkg/chart"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/observability"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

// Discoverer owns one transit table for a chart. It is not safe for
// concurrent use.
type Discoverer struct {
	chart   *chart.Chart
	table   *transit.Table
	opts    []relation.Option
	atBirth *relation.Ganzhi
}

// New returns a discoverer for c. opts select the Anhe and Xing tables used
// by every branch discovery.
func New(c *chart.Chart, opts ...relation.Option) *Discoverer {
	return &Discoverer{chart: c, table: c.Transits(), opts: opts}
}

// Chart returns the chart being analyzed.
func (d *Discoverer) Chart() *chart.Chart { return d.chart }

// Table returns the transit table owned by d.
func (d *Discoverer) Table() *transit.Table { return d.table }

// AtBirth returns the relations among the four pillars.
func (d *Discoverer) AtBirth() relation.Ganzhi {
	if d.atBirth == nil {
		start := time.Now()
		g := relation.DiscoverGanzhi(d.chart.Pillars(), d.opts...)
		observability.Discovery().OnDiscover("at-birth", 0, g.Len(), time.Since(start))
		d.atBirth = &g
	}
	return *d.atBirth
}

// Support reports whether every sequence selected by opts covers year.
func (d *Discoverer) Support(year int, opts transit.Options) bool {
	return d.table.Support(year, opts)
}

// Entries returns the transit terms active in year.
func (d *Discoverer) Entries(year int, opts transit.Options) ([]transit.Entry, error) {
	return d.table.Entries(year, opts)
}

// TransitsOnly returns the relations among the transit pillars of year.
func (d *Discoverer) TransitsOnly(year int, opts transit.Options) (relation.Ganzhi, error) {
	ps, err := d.table.Pillars(year, opts)
	if err != nil {
		return relation.Ganzhi{}, err
	}
	return d.transitsOnly(year, ps), nil
}

// Mutual returns the relations between the chart and the transit pillars of
// year that neither side holds alone.
func (d *Discoverer) Mutual(year int, opts transit.Options) (relation.Ganzhi, error) {
	ps, err := d.table.Pillars(year, opts)
	if err != nil {
		return relation.Ganzhi{}, err
	}
	return d.mutual(year, ps), nil
}

func (d *Discoverer) transitsOnly(year int, ps []ganzhi.Pillar) relation.Ganzhi {
	start := time.Now()
	g := relation.DiscoverGanzhi(ps, d.opts...)
	observability.Discovery().OnDiscover("transits", year, g.Len(), time.Since(start))
	return g
}

func (d *Discoverer) mutual(year int, ps []ganzhi.Pillar) relation.Ganzhi {
	start := time.Now()
	g := relation.DiscoverGanzhiMutual(d.chart.Pillars(), ps, d.opts...)
	observability.Discovery().OnDiscover("mutual", year, g.Len(), time.Since(start))
	return g
}

// Result gathers every view of one year.
type Result struct {
	Year     int
	Entries  []transit.Entry
	AtBirth  relation.Ganzhi
	Transits relation.Ganzhi
	Mutual   relation.Ganzhi
}

// Effects returns the relations the year brings: transit-only merged with
// mutual.
func (r Result) Effects() relation.Ganzhi {
	return r.Transits.Merge(r.Mutual)
}

// Year computes every view of year. Unsupported years fail with code
// UNSUPPORTED.
func (d *Discoverer) Year(year int, opts transit.Options) (Result, error) {
	es, err := d.table.Entries(year, opts)
	if err != nil {
		return Result{}, err
	}
	ps := make([]ganzhi.Pillar, len(es))
	for i, e := range es {
		ps[i] = e.Pillar
	}
	return Result{
		Year:     year,
		Entries:  es,
		AtBirth:  d.AtBirth(),
		Transits: d.transitsOnly(year, ps),
		Mutual:   d.mutual(year, ps),
	}, nil
}
