package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/pkg/discover"
	gzerrors "github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

var (
	browseHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	browseYearStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browsePanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// browseOptions is the order in which tab cycles through transit selections.
var browseOptions = []transit.Options{
	transit.OptDayun | transit.OptLiunian,
	transit.OptLiunian,
	transit.OptDayun,
	transit.OptXiaoyun | transit.OptLiunian,
	transit.OptXiaoyun,
}

// BrowseModel is the bubbletea model stepping through the years of a chart.
type BrowseModel struct {
	disc   *discover.Discoverer
	title  string
	Year   int
	opt    int
	result discover.Result
	err    error
}

// NewBrowseModel starts at year with the given transit selection.
func NewBrowseModel(d *discover.Discoverer, title string, year int, opts transit.Options) BrowseModel {
	m := BrowseModel{disc: d, title: title, Year: year}
	if i := slices.Index(browseOptions, opts); i >= 0 {
		m.opt = i
	}
	m.refresh()
	return m
}

// Options returns the current transit selection.
func (m BrowseModel) Options() transit.Options { return browseOptions[m.opt] }

func (m *BrowseModel) refresh() {
	m.result, m.err = m.disc.Year(m.Year, m.Options())
}

func (m *BrowseModel) step(n int) {
	if gzerrors.ValidateYear(m.Year+n) != nil {
		return
	}
	m.Year += n
	m.refresh()
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.step(-1)
		case "down", "j":
			m.step(1)
		case "pgup", "K":
			m.step(-10)
		case "pgdown", "J":
			m.step(10)
		case "tab":
			m.opt = (m.opt + 1) % len(browseOptions)
			m.refresh()
		case "shift+tab":
			m.opt = (m.opt + len(browseOptions) - 1) % len(browseOptions)
			m.refresh()
		case "t":
			m.Year = time.Now().Year()
			m.refresh()
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render("↑/↓ year  pgup/pgdn decade  tab transits  t this year  q quit"))
	b.WriteString("\n\n")
	b.WriteString(browseYearStyle.Render(fmt.Sprint(m.Year)))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.Options().String()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(iconWarning + " " + gzerrors.UserMessage(m.err)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(entriesLine(m.result.Entries))
	b.WriteString("\n")

	var panel strings.Builder
	printGanzhi(&panel, "Transits", m.result.Transits)
	printGanzhi(&panel, "Mutual", m.result.Mutual)
	b.WriteString(browsePanelStyle.Render(strings.TrimRight(panel.String(), "\n")))
	b.WriteString("\n")
	return b.String()
}

func (c *CLI) browseCommand() *cobra.Command {
	var (
		cf      chartFlags
		rf      relationFlags
		year    int
		options string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Step through the years of a chart interactively",
		Example: `  ganzhi browse -c examples/charts/reference.toml
  ganzhi browse -c examples/charts/reference.toml --year 2031 --options liunian`,
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
			if !cmd.Flags().Changed("year") {
				year = time.Now().Year()
			}
			if err := gzerrors.ValidateYear(year); err != nil {
				return err
			}

			m := NewBrowseModel(discover.New(ch, ropts...), chartTitle(ch), year, topts)
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
					return cmd.Context().Err()
				}
				return err
			}
			return nil
		},
	}

	cf.register(cmd)
	rf.register(cmd)
	cmd.Flags().IntVarP(&year, "year", "y", 0, "first year shown (default this year)")
	cmd.Flags().StringVar(&options, "options", "", "initial transits, e.g. dayun,liunian (default from config)")
	return cmd
}
