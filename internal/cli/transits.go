package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/pkg/chart"
	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

// transitRow is one calendar year of the transits table.
type transitRow struct {
	year    int
	age     int
	cells   [3]string // xiaoyun, dayun, liunian
	newLuck bool      // a Dayun term starts this year
}

// transitRows resolves years [from, from+n) against every sequence of t.
func transitRows(c *chart.Chart, t *transit.Table, from, n int) []transitRow {
	rows := make([]transitRow, 0, n)
	for year := from; year < from+n; year++ {
		r := transitRow{year: year, age: year - c.BirthYear + 1}
		for i, k := range transit.Kinds() {
			e, err := t.Index(k).At(year)
			if err != nil {
				r.cells[i] = iconNone
				continue
			}
			r.cells[i] = coloredPillar(e.Pillar)
			if k == transit.Dayun && e.Year == year {
				r.newLuck = true
			}
		}
		rows = append(rows, r)
	}
	return rows
}

func renderTransitTable(w io.Writer, rows []transitRow) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{strconv.Itoa(r.year), strconv.Itoa(r.age), r.cells[0], r.cells[1], r.cells[2]}
	}

	headers := []string{"Year", "Age"}
	for _, k := range transit.Kinds() {
		headers = append(headers, k.String())
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col < 2 {
				base = base.Foreground(colorGray)
				if rows[row].newLuck {
					base = base.Foreground(colorCyan).Bold(true)
				}
			}
			return base
		})

	fmt.Fprintln(w, t.Render())
}

func (c *CLI) transitsCommand() *cobra.Command {
	var (
		cf    chartFlags
		from  int
		years int
	)

	cmd := &cobra.Command{
		Use:   "transits",
		Short: "List the luck pillars of a chart year by year",
		Long: `List the Xiaoyun, Dayun and Liunian pillars active in each year.

Rows where a new Dayun begins are highlighted. Sequences that do not cover a
year show a dash.`,
		Example: `  ganzhi transits --chart examples/charts/reference.toml
  ganzhi transits -c examples/charts/reference.toml --from 2020 --years 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := cf.load()
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

			w := cmd.OutOrStdout()
			printTitle(w, chartTitle(ch))
			dir := "backward"
			if ch.Forward() {
				dir = "forward"
			}
			printDetail(w, "%s · Dayun from %d · %d Xiaoyun", dir, ch.DayunStartYear, ch.XiaoyunCount())
			if from < ch.BirthYear {
				printWarning(w, "no transits before the birth year %d", ch.BirthYear)
			}
			renderTransitTable(w, transitRows(ch, ch.Transits(), from, years))
			return nil
		},
	}

	cf.register(cmd)
	cmd.Flags().IntVar(&from, "from", 0, "first year (default birth year)")
	cmd.Flags().IntVarP(&years, "years", "n", 0, "number of years (default from config)")
	return cmd
}
