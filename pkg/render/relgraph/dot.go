package relgraph

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/match"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/rules"
)

// Options configures diagram generation.
type Options struct {
	// Title is drawn above the diagram when set.
	Title string

	// Stems and Branches are drawn even when they take part in no relation,
	// so a diagram of a chart shows all of its pillars.
	Stems    []ganzhi.Stem
	Branches []ganzhi.Branch

	// Names labels relation edges with pinyin instead of glyphs.
	Names bool
}

var elementColors = [ganzhi.NumElements]string{
	ganzhi.Wood:  "#b7e4c7",
	ganzhi.Fire:  "#ffb4a2",
	ganzhi.Earth: "#e9c46a",
	ganzhi.Metal: "#dee2e6",
	ganzhi.Water: "#a2d2ff",
}

type symbol interface {
	ganzhi.Symbol
	Element() ganzhi.Element
}

// ToDOT converts g to Graphviz DOT. Stems are laid out on the top rank and
// branches below them. The result can be rendered with [RenderSVG].
func ToDOT(g relation.Ganzhi, opts Options) string {
	w := &dotWriter{opts: opts}
	w.WriteString("digraph G {\n")
	w.WriteString("  rankdir=TB;\n")
	w.WriteString("  bgcolor=\"transparent\";\n")
	w.WriteString("  node [shape=circle, style=filled, fontsize=24, fixedsize=true, width=0.7];\n")
	w.WriteString("  edge [fontsize=14];\n")
	if opts.Title != "" {
		fmt.Fprintf(w, "  labelloc=t;\n  label=%q;\n", opts.Title)
	}
	w.WriteString("\n")

	writeRank(w, stemID, nodes(opts.Stems, g.Stems))
	writeRank(w, branchID, nodes(opts.Branches, g.Branches))

	w.WriteString("\n")
	writeEdges(w, g.Stems, stemID, orientStems)
	writeEdges(w, g.Branches, branchID, orientBranches)

	w.WriteString("}\n")
	return w.String()
}

type dotWriter struct {
	bytes.Buffer
	opts Options
	hubs int
}

func stemID(s ganzhi.Stem) string     { return fmt.Sprintf("s%d", s.Index()) }
func branchID(b ganzhi.Branch) string { return fmt.Sprintf("b%d", b.Index()) }

// nodes returns extra together with every combo member, in cycle order.
func nodes[K relation.Kind, E symbol](extra []E, d relation.Discovery[K, E]) []E {
	out := slices.Clone(extra)
	for _, c := range d.All() {
		out = append(out, c.Members()...)
	}
	slices.SortFunc(out, func(a, b E) int { return a.Index() - b.Index() })
	return slices.Compact(out)
}

func writeRank[E symbol](w *dotWriter, id func(E) string, es []E) {
	if len(es) == 0 {
		return
	}
	w.WriteString("  { rank=same;\n")
	for _, e := range es {
		fmt.Fprintf(w, "    %s [label=%q, fillcolor=%q];\n", id(e), e.String(), elementColors[e.Element()])
	}
	w.WriteString("  }\n")
}

func writeEdges[K relation.Kind, E symbol](w *dotWriter, d relation.Discovery[K, E], id func(E) string, orient func(K, E, E) bool) {
	for k, c := range d.All() {
		label := k.String()
		if w.opts.Names {
			label = k.Name()
		}
		ms := c.Members()
		if len(ms) != 2 {
			w.hubs++
			hub := fmt.Sprintf("h%d", w.hubs)
			fmt.Fprintf(w, "  %s [shape=point, width=0.12, xlabel=%q];\n", hub, label)
			for _, m := range ms {
				fmt.Fprintf(w, "  %s -> %s [dir=none];\n", id(m), hub)
			}
			continue
		}
		a, b := ms[0], ms[1]
		if !k.Directional() {
			fmt.Fprintf(w, "  %s -> %s [label=%q, dir=none];\n", id(a), id(b), label)
			continue
		}
		fwd, back := orient(k, a, b), orient(k, b, a)
		switch {
		case fwd && back:
			fmt.Fprintf(w, "  %s -> %s [label=%q, dir=both];\n", id(a), id(b), label)
		case back:
			fmt.Fprintf(w, "  %s -> %s [label=%q];\n", id(b), id(a), label)
		default:
			fmt.Fprintf(w, "  %s -> %s [label=%q];\n", id(a), id(b), label)
		}
	}
}

func orientStems(k relation.StemRelation, a, b ganzhi.Stem) bool {
	switch k {
	case relation.StemSheng:
		return match.StemSheng(a, b)
	case relation.StemKe:
		return match.StemKe(a, b)
	}
	return false
}

func orientBranches(k relation.BranchRelation, a, b ganzhi.Branch) bool {
	switch k {
	case relation.Sheng:
		return match.Sheng(a, b)
	case relation.Ke:
		return match.Ke(a, b)
	case relation.Xing:
		_, ok := match.Xing(rules.XingLoose, a, b)
		return ok
	}
	return false
}
