// Package relgraph renders discovered relations as node-link diagrams.
//
// # Overview
//
// Every stem and branch taking part in a relation becomes a node, filled
// with the color of its element. Pair relations become labelled edges.
// Directional relations (生, 克, and the one-way punishments of 刑) point
// from the acting symbol to the receiving one. Triads (三会, 三合, 三刑) and
// self punishments (辰辰, 午午, ...) get a small hub node joined to each
// member.
//
// # Usage
//
//	g := relation.DiscoverGanzhi(chart.Pillars())
//	dot := relgraph.ToDOT(g, relgraph.Options{Title: chart.String()})
//	svg, err := relgraph.RenderSVG(ctx, dot)
//
// [Render] also produces PDF and PNG by converting the SVG with
// rsvg-convert, see [render.Converter].
//
// # Dependencies
//
// SVG rendering runs Graphviz in-process through
// [github.com/goccy/go-graphviz].
//
// [render.Converter]: github.com/matzehuels/ganzhi/pkg/render.Converter
package relgraph
