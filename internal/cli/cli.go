// Package cli implements the ganzhi command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/internal/config"
	"github.com/matzehuels/ganzhi/pkg/chart"
	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/render"
	"github.com/matzehuels/ganzhi/pkg/render/relgraph"
	"github.com/matzehuels/ganzhi/pkg/rules"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "ganzhi"

	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPDF  = "pdf"
	formatPNG  = "png"
)

var graphFormats = []string{formatText, formatDOT, formatSVG, formatPDF, formatPNG}

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the configuration file selected by --config.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("config loaded", "anhe", cfg.Anhe, "xing", cfg.Xing, "options", cfg.Options, "years", cfg.Years)
	return nil
}

// =============================================================================
// Chart Flags
// =============================================================================

// chartFlags selects a chart either from a TOML or YAML file or from flags.
type chartFlags struct {
	path       string
	pillars    string
	gender     string
	birthYear  int
	dayunStart int
	name       string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "chart", "c", "", "chart file (TOML or YAML)")
	cmd.Flags().StringVar(&f.pillars, "pillars", "", `four pillars, e.g. "甲子 丁卯 乙丑 壬午"`)
	cmd.Flags().StringVar(&f.gender, "gender", "", "male or female")
	cmd.Flags().IntVar(&f.birthYear, "birth-year", 0, "birth year")
	cmd.Flags().IntVar(&f.dayunStart, "dayun-start", 0, "first Dayun year")
	cmd.Flags().StringVar(&f.name, "name", "", "chart name")
	cmd.MarkFlagsMutuallyExclusive("chart", "pillars")
	_ = cmd.MarkFlagFilename("chart", "toml", "yaml", "yml")
}

func (f *chartFlags) load() (*chart.Chart, error) {
	if f.path != "" {
		return chart.ReadFile(f.path)
	}
	if f.pillars == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "either --chart or --pillars is required")
	}
	fields := strings.Fields(f.pillars)
	if len(fields) != 4 {
		return nil, errors.New(errors.ErrCodeInvalidChart, "want 4 pillars, got %d", len(fields))
	}
	var ps [4]ganzhi.Pillar
	for i, s := range fields {
		p, err := ganzhi.ParsePillar(s)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	g, err := chart.ParseGender(f.gender)
	if err != nil {
		return nil, err
	}
	c, err := chart.New(ps, g, f.birthYear, f.dayunStart)
	if err != nil {
		return nil, err
	}
	c.Name = f.name
	return c, nil
}

// =============================================================================
// Relation Flags
// =============================================================================

// relationFlags override the configured Anhe and Xing tables.
type relationFlags struct {
	anhe string
	xing string
}

func (f *relationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.anhe, "anhe", "", "anhe table: normal, normal-extended or mangpai")
	cmd.Flags().StringVar(&f.xing, "xing", "", "xing table: strict or loose")
}

func (c *CLI) relationOptions(f relationFlags) ([]relation.Option, error) {
	cfg := c.config
	if f.anhe != "" {
		d, err := rules.ParseAnheDefinition(f.anhe)
		if err != nil {
			return nil, err
		}
		cfg.Anhe = d
	}
	if f.xing != "" {
		d, err := rules.ParseXingDefinition(f.xing)
		if err != nil {
			return nil, err
		}
		cfg.Xing = d
	}
	return cfg.RelationOptions(), nil
}

// transitOptions parses s, falling back to the configured options.
func (c *CLI) transitOptions(s string) (transit.Options, error) {
	if s == "" {
		return c.config.Options, nil
	}
	return transit.ParseOptions(s)
}

// =============================================================================
// Graph Output
// =============================================================================

// graphFlags select text output or a rendered diagram.
type graphFlags struct {
	format string
	output string
	scale  float64
}

func (f *graphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", formatText, "output format: "+strings.Join(graphFormats, ", "))
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout, required for pdf/png)")
	cmd.Flags().Float64Var(&f.scale, "scale", 2, "png scale factor")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return graphFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

func (f *graphFlags) validate() error {
	if !slices.Contains(graphFormats, f.format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f.format)
	}
	if (f.format == formatPDF || f.format == formatPNG) && f.output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "%s output needs --output", f.format)
	}
	return nil
}

func (f *graphFlags) text() bool { return f.format == formatText }

// writeGraph renders g in the selected format to the output file or w.
func (c *CLI) writeGraph(ctx context.Context, w io.Writer, g relation.Ganzhi, opts relgraph.Options, f graphFlags) error {
	dot := relgraph.ToDOT(g, opts)

	var (
		data []byte
		err  error
	)
	switch f.format {
	case formatDOT:
		data = []byte(dot)
	default:
		sw := startStopwatch(ctx)
		spin := newSpinner(ctx, os.Stderr, "Rendering "+f.format)
		if isTerminal(os.Stderr) {
			spin.Start()
		}
		data, err = relgraph.Render(ctx, dot, render.Format(f.format), f.scale)
		spin.Stop()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			return err
		}
		sw.done("rendered", "format", f.format, "bytes", len(data))
	}

	if f.output == "" {
		_, err = w.Write(data)
		return err
	}
	if err := errors.ValidatePath(f.output); err != nil {
		return err
	}
	if dir := filepath.Dir(f.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(f.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", f.output)
	}
	printSuccess(w, "Wrote %s", f.format)
	printFile(w, f.output)
	return nil
}

// chartGraphOptions draws every pillar of c.
func chartGraphOptions(c *chart.Chart, title string) relgraph.Options {
	return relgraph.Options{
		Title:    title,
		Stems:    c.Stems(),
		Branches: c.Branches(),
	}
}

func chartTitle(c *chart.Chart) string {
	if c.Name != "" {
		return fmt.Sprintf("%s · %s", c.Name, c)
	}
	return c.String()
}
