package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/pkg/analyzer"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

func starLine(s analyzer.Star) string {
	var b strings.Builder
	for _, x := range s.Branches {
		b.WriteString(colored(x))
	}
	return colored(s.Stem) + StyleDim.Render(" · ") + b.String()
}

func yesNo(ok bool) string {
	if ok {
		return StyleSuccess.Render("yes")
	}
	return StyleDim.Render("no")
}

func printAtBirth(w io.Writer, a *analyzer.AtBirth) {
	printStars(w, "Shensha", a.Shensha())
	printGanzhi(w, "Day master", relation.Ganzhi{Stems: a.DayMasterRelations()})
	printGanzhi(w, "Spouse house", relation.Ganzhi{Branches: a.HouseRelations()})
	printKeyValue(w, "Star", starLine(a.Star()))
	printGanzhi(w, "Star relations", a.StarRelations())
}

func printTransit(w io.Writer, t *analyzer.Transit, year int, opts transit.Options) error {
	stars, err := t.Shensha(year, opts)
	if err != nil {
		return err
	}
	dm, err := t.DayMasterRelations(year, opts)
	if err != nil {
		return err
	}
	house, err := t.HouseRelations(year, opts)
	if err != nil {
		return err
	}
	star, err := t.StarRelations(year, opts)
	if err != nil {
		return err
	}
	present, err := t.Star(year, opts)
	if err != nil {
		return err
	}

	printStars(w, "Shensha", stars)
	printGanzhi(w, "Day master", relation.Ganzhi{Stems: dm})
	printGanzhi(w, "Spouse house", relation.Ganzhi{Branches: house})
	printKeyValue(w, "Star stem", yesNo(present.Stem))
	printKeyValue(w, "Star branch", yesNo(present.Branch))
	printGanzhi(w, "Star relations", star)
	return nil
}

func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		cf      chartFlags
		rf      relationFlags
		year    int
		options string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a chart for relationship stars and spouse-house relations",
		Long: `Analyze a chart from the point of view of relationships.

Shows the shensha (桃花 红艳 红鸾 天喜 驿马) found in the chart, the relations
of the day master and of the spouse house (day branch), and the relations
touching the relationship star. With --year, the same is shown for the
transit pillars of that year.`,
		Example: `  ganzhi analyze -c examples/charts/reference.toml
  ganzhi analyze -c examples/charts/reference.toml --year 2018 --xing loose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := cf.load()
			if err != nil {
				return err
			}
			ropts, err := c.relationOptions(rf)
			if err != nil {
				return err
			}
			a := analyzer.New(ch, ropts...)
			w := cmd.OutOrStdout()

			printTitle(w, chartTitle(ch))
			if !cmd.Flags().Changed("year") {
				printAtBirth(w, a.AtBirth)
				return nil
			}

			topts, err := c.transitOptions(options)
			if err != nil {
				return err
			}
			es, err := a.Transit.Entries(year, topts)
			if err != nil {
				return err
			}
			printKeyValue(w, fmt.Sprint(year), entriesLine(es))
			return printTransit(w, a.Transit, year, topts)
		},
	}

	cf.register(cmd)
	rf.register(cmd)
	cmd.Flags().IntVarP(&year, "year", "y", 0, "calendar year")
	cmd.Flags().StringVar(&options, "options", "", "transits to use, e.g. dayun,liunian (default from config)")
	return cmd
}
