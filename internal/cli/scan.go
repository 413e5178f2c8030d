package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/pkg/discover"
	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/relation"
)

func (c *CLI) scanCommand() *cobra.Command {
	var (
		cf      chartFlags
		rf      relationFlags
		from    int
		years   int
		options string
		kind    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the relations each year brings over a span of years",
		Long: `List the relations each year brings to a chart over a span of years.

Years not covered by the selected transits are skipped. With --kind, only
years bringing a relation of that kind are listed.`,
		Example: `  ganzhi scan -c examples/charts/reference.toml --from 2020 --years 30
  ganzhi scan -c examples/charts/reference.toml --kind chong --options liunian -n 60`,
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
			topts, err := c.transitOptions(options)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("years") {
				years = c.config.Years
			}
			if years < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--years must be at least 1, got %d", years)
			}
			if !cmd.Flags().Changed("from") {
				from = ch.BirthYear
			}
			if err := errors.ValidateYear(from); err != nil {
				return err
			}
			if kind != "" {
				if _, err := filterKind(relation.Ganzhi{}, kind, true, true); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			sw := startStopwatch(ctx)
			rs, err := discover.New(ch, ropts...).Scan(ctx, from, years, discover.ScanOptions{
				Transits: topts,
				Workers:  workers,
			})
			if err != nil {
				return err
			}
			sw.done("scanned", "from", from, "years", len(rs), "workers", workers)

			w := cmd.OutOrStdout()
			printTitle(w, chartTitle(ch))
			shown := 0
			for _, r := range rs {
				g := r.Effects()
				if kind != "" {
					g, _ = filterKind(g, kind, true, true)
				}
				if kind != "" && g.IsEmpty() {
					continue
				}
				shown++
				printKeyValue(w, fmt.Sprint(r.Year), entriesLine(r.Entries))
				for _, l := range discoveryLines(g.Stems) {
					fmt.Fprintln(w, "  "+StyleDim.Render("天干")+" "+l)
				}
				for _, l := range discoveryLines(g.Branches) {
					fmt.Fprintln(w, "  "+StyleDim.Render("地支")+" "+l)
				}
			}
			printDetail(w, "%d of %d years shown", shown, years)
			return nil
		},
	}

	cf.register(cmd)
	rf.register(cmd)
	cmd.Flags().IntVar(&from, "from", 0, "first year (default birth year)")
	cmd.Flags().IntVarP(&years, "years", "n", 0, "number of years (default from config)")
	cmd.Flags().StringVar(&options, "options", "", "transits to use, e.g. dayun,liunian (default from config)")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only list years bringing this relation kind")
	completeKinds(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel searches (default number of CPUs)")
	return cmd
}
