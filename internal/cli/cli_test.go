package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/pkg/chart"
	"github.com/matzehuels/ganzhi/pkg/discover"
	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/observability"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

var referenceFlags = []string{
	"--pillars", "甲子 丁卯 乙丑 壬午",
	"--gender", "male",
	"--birth-year", "1984",
	"--dayun-start", "1985",
}

// execute runs the command tree with an isolated config directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func mustContain(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	mustContain(t, out, "ganzhi version", "commit:")
}

func TestRelationsCommand(t *testing.T) {
	out, err := execute(t, "relations", "子", "午", "卯")
	if err != nil {
		t.Fatalf("relations: %v", err)
	}
	mustContain(t, out, "冲", "chong", "子午", "刑", "子卯", "破", "卯午")

	out, err = execute(t, "relations", "乙", "--against", "甲丁壬", "--kind", "sheng")
	if err != nil {
		t.Fatalf("relations --against: %v", err)
	}
	mustContain(t, out, "乙 × 甲丁壬", "乙丁", "乙壬")
	for _, line := range strings.Split(out, "\n")[1:] {
		if strings.Contains(line, "甲丁") {
			t.Errorf("甲丁 needs no symbol from the first list: %q", line)
		}
	}

	out, err = execute(t, "relations", "甲子", "丁卯", "乙丑", "壬午", "--kind", "冲")
	if err != nil {
		t.Fatalf("relations pillars: %v", err)
	}
	mustContain(t, out, "子午")
	if strings.Contains(out, "丁壬") {
		t.Errorf("--kind 冲 should drop 合:\n%s", out)
	}
}

func TestRelationsOptions(t *testing.T) {
	out, err := execute(t, "relations", "丑戌", "--xing", "strict", "--kind", "xing")
	if err != nil {
		t.Fatalf("relations strict: %v", err)
	}
	mustContain(t, out, "no relations")

	out, err = execute(t, "relations", "丑戌", "--xing", "loose", "--kind", "xing")
	if err != nil {
		t.Fatalf("relations loose: %v", err)
	}
	mustContain(t, out, "刑", "xing")

	_, err = execute(t, "relations", "子", "--anhe", "wide")
	if !errors.Is(err, errors.ErrCodeInvalidDefinition) {
		t.Errorf("bad --anhe error = %v", err)
	}
}

func TestRelationsErrors(t *testing.T) {
	tests := []struct {
		args []string
		code errors.Code
	}{
		{[]string{"relations", "hello"}, errors.ErrCodeInvalidSymbol},
		{[]string{"relations", "子午", "--kind", "nope"}, errors.ErrCodeInvalidRelation},
		{[]string{"relations", "子午", "--format", "gif"}, errors.ErrCodeInvalidFormat},
		{[]string{"relations", "子午", "--format", "png"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRelationsDOT(t *testing.T) {
	out, err := execute(t, "relations", "子午", "--format", "dot")
	if err != nil {
		t.Fatalf("relations dot: %v", err)
	}
	mustContain(t, out, "digraph G", `label="子午"`, "b0 -> b6")

	path := filepath.Join(t.TempDir(), "graphs", "zw.dot")
	out, err = execute(t, "relations", "子午", "-f", "dot", "-o", path)
	if err != nil {
		t.Fatalf("relations dot file: %v", err)
	}
	mustContain(t, out, path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	mustContain(t, string(data), "digraph G")
}

func TestTransitsCommand(t *testing.T) {
	args := append([]string{"transits", "--years", "8"}, referenceFlags...)
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("transits: %v", err)
	}
	mustContain(t, out, "forward", "小运", "大运", "流年", "1984", "1991", "癸未", "戊辰", "甲子")
	if strings.Contains(out, "1992") {
		t.Errorf("--years 8 should stop at 1991:\n%s", out)
	}

	args = append([]string{"transits", "--from", "1980", "-n", "2"}, referenceFlags...)
	out, err = execute(t, args...)
	if err != nil {
		t.Fatalf("transits --from: %v", err)
	}
	mustContain(t, out, "no transits before", iconNone)
}

func TestDiscoverCommand(t *testing.T) {
	args := append([]string{"discover"}, referenceFlags...)
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	mustContain(t, out, "At birth", "丁壬", "子午")

	args = append([]string{"discover", "--year", "1990", "--options", "dayun,liunian", "--all"}, referenceFlags...)
	out, err = execute(t, args...)
	if err != nil {
		t.Fatalf("discover --year: %v", err)
	}
	mustContain(t, out, "戊辰", "庚午", "At birth", "Transits", "Mutual", "戊庚", "乙庚")

	args = append([]string{"discover", "--year", "1984", "--options", "dayun"}, referenceFlags...)
	_, err = execute(t, args...)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("unsupported year error = %v", err)
	}
}

func TestDiscoverChartFile(t *testing.T) {
	out, err := execute(t, "discover", "--chart", "../../examples/charts/reference.toml", "-y", "2031", "-f", "dot")
	if err != nil {
		t.Fatalf("discover --chart: %v", err)
	}
	mustContain(t, out, "digraph G", "reference", "2031")

	out, err = execute(t, "transits", "--chart", "../../examples/charts/backward.yaml", "-n", "3")
	if err != nil {
		t.Fatalf("transits yaml chart: %v", err)
	}
	mustContain(t, out, "backward", "乙丑")

	_, err = execute(t, "discover", "--chart", "missing.toml")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing chart error = %v", err)
	}

	_, err = execute(t, "discover")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("no chart error = %v", err)
	}
}

func TestScanCommand(t *testing.T) {
	args := append([]string{"scan", "--from", "1984", "-n", "7", "--options", "dayun,liunian"}, referenceFlags...)
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	mustContain(t, out, "1985", "1990", "乙庚", "6 of 7 years shown")

	args = append([]string{"scan", "--from", "1985", "-n", "12", "--options", "liunian", "--kind", "chong", "--workers", "2"}, referenceFlags...)
	out, err = execute(t, args...)
	if err != nil {
		t.Fatalf("scan --kind: %v", err)
	}
	// 1990 庚午 clashes 甲 with 庚; 1993 癸酉 clashes 丁 and the chart's 卯.
	mustContain(t, out, "1990", "甲庚", "1993", "丁癸", "卯酉")
	if strings.Contains(out, "1989") {
		t.Errorf("1989 己巳 brings no clash:\n%s", out)
	}

	_, err = execute(t, append([]string{"scan", "--kind", "nope"}, referenceFlags...)...)
	if !errors.Is(err, errors.ErrCodeInvalidRelation) {
		t.Errorf("bad --kind error = %v", err)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	args := append([]string{"analyze"}, referenceFlags...)
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	mustContain(t, out, "Shensha", "桃花", "红鸾", "Spouse house", "子丑", "Star", "戊")

	args = append([]string{"analyze", "--year", "2031"}, referenceFlags...)
	out, err = execute(t, args...)
	if err != nil {
		t.Fatalf("analyze --year: %v", err)
	}
	mustContain(t, out, "壬申", "辛亥", "红艳", "子丑亥", "Star stem")
}

func TestNewCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.toml")
	args := append([]string{"new", "--name", "me", "-o", path}, referenceFlags...)
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	mustContain(t, out, "Wrote toml chart", path)

	c, err := chart.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if c.Name != "me" || c.String() != "甲子 丁卯 乙丑 壬午 (male, 1984)" {
		t.Errorf("read back %q %s", c.Name, c)
	}

	_, err = execute(t, args...)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("overwrite without --force error = %v", err)
	}
	if _, err := execute(t, append(args, "--force")...); err != nil {
		t.Errorf("new --force: %v", err)
	}

	out, err = execute(t, append([]string{"new", "--yaml"}, referenceFlags...)...)
	if err != nil {
		t.Fatalf("new --yaml: %v", err)
	}
	mustContain(t, out, "gender: male", "- 甲子")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	mustContain(t, out, `anhe = "normal-extended"`, `xing = "strict"`, `options = "dayun,liunian"`)

	out, err = execute(t, "--config", "../../examples/config.toml", "config")
	if err != nil {
		t.Fatalf("config --config: %v", err)
	}
	mustContain(t, out, `xing = "loose"`, "years = 20")

	_, err = execute(t, "--config", "nope.toml", "config")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing config error = %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	mustContain(t, out, "bash completion")
}

func TestBrowseModel(t *testing.T) {
	c, err := chart.New(referencePillars(t), chart.Male, 1984, 1985)
	if err != nil {
		t.Fatal(err)
	}
	m := NewBrowseModel(discover.New(c), "reference", 1990, transit.OptDayun|transit.OptLiunian)
	mustContain(t, m.View(), "1990", "戊辰", "庚午", "Mutual")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(BrowseModel)
	if m.Year != 1991 {
		t.Errorf("down: year = %d, want 1991", m.Year)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(BrowseModel)
	if m.Options() != transit.OptLiunian {
		t.Errorf("tab: options = %s, want liunian", m.Options())
	}

	for range 8 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = next.(BrowseModel)
	}
	if m.Year != 1983 {
		t.Fatalf("up: year = %d, want 1983", m.Year)
	}
	mustContain(t, m.View(), "1983", "liunian")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	inner := errors.New(errors.ErrCodeInvalidChart, "unknown keys: colour")
	ReportError(&buf, errors.Wrap(errors.ErrCodeInvalidChart, inner, "me.toml"))
	mustContain(t, buf.String(), "me.toml: unknown keys: colour", "INVALID_CHART")
}

func referencePillars(t *testing.T) [4]ganzhi.Pillar {
	t.Helper()
	var ps [4]ganzhi.Pillar
	for i, s := range strings.Fields("甲子 丁卯 乙丑 壬午") {
		p, err := ganzhi.ParsePillar(s)
		if err != nil {
			t.Fatal(err)
		}
		ps[i] = p
	}
	return ps
}

func TestKindCompletion(t *testing.T) {
	out, err := execute(t, cobra.ShellCompRequestCmd, "relations", "--kind", "")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	mustContain(t, out, "he\t合", "sanhe\t三合", "chong\t冲")
	if n := strings.Count(out, "chong\t"); n != 1 {
		t.Errorf("chong offered %d times: %q", n, out)
	}
}
