package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/pkg/discover"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

func entriesLine(es []transit.Entry) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = StyleDim.Render(e.Kind.String()) + " " + coloredPillar(e.Pillar)
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

func (c *CLI) discoverCommand() *cobra.Command {
	var (
		cf      chartFlags
		rf      relationFlags
		gf      graphFlags
		year    int
		options string
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find the relations a year brings to a chart",
		Long: `Find the relations in a chart and the relations a year brings to it.

Without --year only the relations among the four pillars are shown. With
--year, the relations among the transit pillars of that year and the
relations between them and the chart are shown; --all adds the at-birth
relations. Diagrams show the relations the year brings.`,
		Example: `  ganzhi discover -c examples/charts/reference.toml
  ganzhi discover -c examples/charts/reference.toml --year 1990 --options dayun,liunian
  ganzhi discover -c examples/charts/reference.toml --year 2031 -f svg -o 2031.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gf.validate(); err != nil {
				return err
			}
			ch, err := cf.load()
			if err != nil {
				return err
			}
			ropts, err := c.relationOptions(rf)
			if err != nil {
				return err
			}
			topts, err := c.transitOptions(options)
			if err != nil {
				return err
			}
			d := discover.New(ch, ropts...)
			w := cmd.OutOrStdout()
			ctx := cmd.Context()

			if !cmd.Flags().Changed("year") {
				if !gf.text() {
					return c.writeGraph(ctx, w, d.AtBirth(), chartGraphOptions(ch, chartTitle(ch)), gf)
				}
				printTitle(w, chartTitle(ch))
				printGanzhi(w, "At birth", d.AtBirth())
				return nil
			}

			r, err := d.Year(year, topts)
			if err != nil {
				return err
			}

			if !gf.text() {
				opts := chartGraphOptions(ch, fmt.Sprintf("%s · %d", chartTitle(ch), year))
				for _, e := range r.Entries {
					opts.Stems = append(opts.Stems, e.Pillar.Stem)
					opts.Branches = append(opts.Branches, e.Pillar.Branch)
				}
				return c.writeGraph(ctx, w, r.Effects(), opts, gf)
			}

			printTitle(w, chartTitle(ch))
			printKeyValue(w, fmt.Sprint(year), entriesLine(r.Entries))
			if all {
				printGanzhi(w, "At birth", r.AtBirth)
			}
			printGanzhi(w, "Transits", r.Transits)
			printGanzhi(w, "Mutual", r.Mutual)
			return nil
		},
	}

	cf.register(cmd)
	rf.register(cmd)
	gf.register(cmd)
	cmd.Flags().IntVarP(&year, "year", "y", 0, "calendar year")
	cmd.Flags().StringVar(&options, "options", "", "transits to use, e.g. dayun,liunian (default from config)")
	cmd.Flags().BoolVar(&all, "all", false, "also show at-birth relations")
	return cmd
}
