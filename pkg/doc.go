// Package pkg provides the libraries behind the ganzhi command.
//
// # Overview
//
// Ganzhi finds the traditional relations (合, 冲, 刑, 害, 破, 生, 克, ...)
// among the Heavenly Stems and Earthly Branches of a Four Pillars chart, and
// between the chart and the luck pillars (Xiaoyun, Dayun, Liunian) active in
// a given year. The pkg directory is organized in layers:
//
//  1. [ganzhi] - Symbols: stems, branches, pillars, elements, polarity
//  2. [rules] - Static relation tables and their variants (Anhe, Xing)
//  3. [match] - Predicates testing a tuple against the tables
//  4. [relation] - Discovery over lists of symbols
//  5. [transit] - Luck pillar sequences and per-year lookup
//  6. [chart] - Four pillars plus birth data, TOML chart files
//  7. [discover] - Year-by-year discovery for a chart
//  8. [analyzer] - Relationship stars and spouse-house relations
//  9. [render] - Diagram output (DOT, SVG, PDF, PNG)
//
// Supporting packages:
//
//   - [errors] - Coded errors shared by every layer
//   - [observability] - Hooks for logging transit and discovery events
//   - [buildinfo] - Version information set at link time
//
// # Architecture
//
//	chart file / pillars
//	         ↓
//	    [chart] package (pillars, gender, birth year, Dayun start)
//	         ↓
//	    [transit] package (Xiaoyun, Dayun, Liunian cursors)
//	         ↓
//	    [discover] package (at birth, transits, mutual)
//	         ↓
//	    [relation] package ([match] over [rules])
//	         ↓
//	    text, DOT, SVG, PDF or PNG
//
// # Quick Start
//
//	c, _ := chart.ReadFile("examples/charts/reference.toml")
//	d := discover.New(c, relation.WithXing(rules.XingLoose))
//
//	r, err := d.Year(2018, transit.OptDayun|transit.OptLiunian)
//	if err != nil {
//	    return err
//	}
//	for k, combo := range r.Mutual.Branches.All() {
//	    fmt.Println(k, combo)
//	}
//
//	dot := relgraph.ToDOT(r.Effects(), relgraph.Options{Title: c.String()})
//
// [ganzhi]: github.com/matzehuels/ganzhi/pkg/ganzhi
// [rules]: github.com/matzehuels/ganzhi/pkg/rules
// [match]: github.com/matzehuels/ganzhi/pkg/match
// [relation]: github.com/matzehuels/ganzhi/pkg/relation
// [transit]: github.com/matzehuels/ganzhi/pkg/transit
// [chart]: github.com/matzehuels/ganzhi/pkg/chart
// [discover]: github.com/matzehuels/ganzhi/pkg/discover
// [analyzer]: github.com/matzehuels/ganzhi/pkg/analyzer
// [render]: github.com/matzehuels/ganzhi/pkg/render
// [errors]: github.com/matzehuels/ganzhi/pkg/errors
// [observability]: github.com/matzehuels/ganzhi/pkg/observability
// [buildinfo]: github.com/matzehuels/ganzhi/pkg/buildinfo
package pkg
