package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/internal/config"
)

func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration in effect after reading the config file.

The output is valid TOML and can be saved as the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.ErrOrStderr()
			path := c.configPath
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return err
				}
				path = p
			}
			printInfo(w, "config file %s", path)
			return c.config.Encode(cmd.OutOrStdout())
		},
	}
}
