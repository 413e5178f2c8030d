package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/pkg/chart"
	"github.com/matzehuels/ganzhi/pkg/errors"
)

func (c *CLI) newCommand() *cobra.Command {
	var (
		cf     chartFlags
		output string
		force  bool
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write a chart file from flags",
		Long: `Write a chart file from flags.

The file is TOML unless --output ends in .yaml or .yml, or --yaml is set.`,
		Example: `  ganzhi new --pillars "甲子 丁卯 乙丑 壬午" --gender male --birth-year 1984 --dayun-start 1985 -o me.toml
  ganzhi new --pillars "乙丑 戊寅 甲申 丙寅" --gender male --birth-year 1985 --dayun-start 1992 --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cf.path != "" {
				return errors.New(errors.ErrCodeInvalidInput, "new builds a chart from --pillars, not --chart")
			}
			ch, err := cf.load()
			if err != nil {
				return err
			}

			format := chart.FormatOf(output)
			if asYAML {
				format = chart.FormatYAML
			}
			var buf bytes.Buffer
			if err := ch.EncodeFormat(&buf, format); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output == "" {
				_, err := w.Write(buf.Bytes())
				return err
			}
			if err := errors.ValidatePath(output); err != nil {
				return err
			}
			if _, err := os.Stat(output); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidPath, "%s exists, use --force to overwrite", output)
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
			}
			printSuccess(w, "Wrote %s chart %s", format, ch)
			printFile(w, output)
			printNextStep(w, "Next", "ganzhi discover -c "+output)
			return nil
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "write YAML instead of TOML")
	return cmd
}
