package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, --verbose raises the log level, the logger is
// attached to the command context, library hooks are routed to it and the
// configuration file is loaded. Errors are returned, not printed; see
// [ReportError].
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Ganzhi relates the pillars of a birth chart and its transits",
		Long: `Ganzhi finds the combinations, clashes, punishments and other relations
among heavenly stems and earthly branches, in a birth chart, in its luck
cycles (小运 大运 流年), and between the two.`,
		Version:       buildinfo.Resolved(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			registerHooks(c.Logger)
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ganzhi/config.toml)")
	_ = root.MarkPersistentFlagFilename("config", "toml")

	root.AddCommand(c.relationsCommand())
	root.AddCommand(c.transitsCommand())
	root.AddCommand(c.discoverCommand())
	root.AddCommand(c.scanCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.newCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
