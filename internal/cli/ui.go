package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/ganzhi/pkg/analyzer"
	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/rules"
)

// Terminal colors (ANSI 256).
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorFail   = lipgloss.Color("167")
	colorLink   = lipgloss.Color("75")
	colorText   = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

// elementColors tint stems and branches by their element: green wood, red
// fire, ochre earth, silver metal and blue water.
var elementColors = [ganzhi.NumElements]lipgloss.Color{
	ganzhi.Wood:  lipgloss.Color("71"),
	ganzhi.Fire:  lipgloss.Color("167"),
	ganzhi.Earth: lipgloss.Color("179"),
	ganzhi.Metal: lipgloss.Color("250"),
	ganzhi.Water: lipgloss.Color("75"),
}

// Styles shared with the browse view.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleDim     = lipgloss.NewStyle().Foreground(colorMuted)
	StyleValue   = lipgloss.NewStyle().Foreground(colorText)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorOK)
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorOK)
	styleIconError   = lipgloss.NewStyle().Foreground(colorFail)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorWarn)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorLabel)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)

	// Relation lines: glyph column, pinyin column, then combos.
	styleKind    = lipgloss.NewStyle().Foreground(colorAccent).Width(6)
	styleKindPin = lipgloss.NewStyle().Foreground(colorLabel).Width(10)
	styleKey     = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconNone    = "—"
)

// status prints msg after a colored icon.
func status(w io.Writer, icon lipgloss.Style, glyph, msg string) {
	fmt.Fprintln(w, icon.Render(glyph)+" "+msg)
}

func printSuccess(w io.Writer, format string, args ...any) {
	status(w, styleIconSuccess, iconSuccess, fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	status(w, styleIconError, iconError, fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	status(w, styleIconWarning, iconWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	status(w, styleIconInfo, iconInfo, fmt.Sprintf(format, args...))
}

// ReportError prints the messages along err's chain on one line, then the
// outermost code.
func ReportError(w io.Writer, err error) {
	printError(w, "%s", strings.Join(errors.Messages(err), ": "))
	if code := errors.GetCode(err); code != "" {
		printDetail(w, "%s", code)
	}
}

// printDetail prints a muted, indented line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written file.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// colored renders a stem or branch in the color of its element.
func colored[E interface {
	ganzhi.Symbol
	Element() ganzhi.Element
}](e E) string {
	return lipgloss.NewStyle().Foreground(elementColors[e.Element()]).Render(e.String())
}

func coloredPillar(p ganzhi.Pillar) string {
	return colored(p.Stem) + colored(p.Branch)
}

// discoveryLines formats one line per kind: glyph, pinyin and combos.
func discoveryLines[K relation.Kind, E ganzhi.Symbol](d relation.Discovery[K, E]) []string {
	var lines []string
	for _, k := range d.Kinds() {
		combos := d.Get(k)
		parts := make([]string, len(combos))
		for i, c := range combos {
			parts[i] = StyleValue.Render(c.String())
		}
		lines = append(lines, styleKind.Render(k.String())+styleKindPin.Render(k.Name())+strings.Join(parts, " "))
	}
	return lines
}

// printGanzhi prints a titled section with stem and branch relations.
func printGanzhi(w io.Writer, title string, g relation.Ganzhi) {
	printTitle(w, title)
	if g.IsEmpty() {
		printDetail(w, "no relations")
		return
	}
	for _, l := range discoveryLines(g.Stems) {
		fmt.Fprintln(w, "  "+StyleDim.Render("天干")+" "+l)
	}
	for _, l := range discoveryLines(g.Branches) {
		fmt.Fprintln(w, "  "+StyleDim.Render("地支")+" "+l)
	}
}

// printStars prints one line per shensha that was hit.
func printStars(w io.Writer, title string, s analyzer.Stars) {
	printTitle(w, title)
	if s.String() == "" {
		printDetail(w, "no stars")
		return
	}
	for _, k := range rules.AllShensha() {
		bs := s[k]
		if len(bs) == 0 {
			continue
		}
		var b strings.Builder
		for _, x := range bs {
			b.WriteString(colored(x))
		}
		fmt.Fprintln(w, "  "+styleKind.Render(k.String())+styleKindPin.Render(k.Name())+b.String())
	}
}
