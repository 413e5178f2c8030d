package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/render/relgraph"
)

// symbols is a parsed command line list: stems, branches, or pillars
// (which fill both).
type symbols struct {
	stems    []ganzhi.Stem
	branches []ganzhi.Branch
}

// parseSymbols reads args as stems, as branches, or as whitespace separated
// pillars, in that order.
func parseSymbols(args []string) (symbols, error) {
	joined := strings.Join(args, " ")
	if stems, err := ganzhi.ParseStems(joined); err == nil {
		return symbols{stems: stems}, nil
	}
	if branches, err := ganzhi.ParseBranches(joined); err == nil {
		return symbols{branches: branches}, nil
	}
	var s symbols
	for _, f := range strings.Fields(joined) {
		p, err := ganzhi.ParsePillar(f)
		if err != nil {
			return symbols{}, errors.Wrap(errors.ErrCodeInvalidSymbol, err, "%q is not a list of stems, branches or pillars", joined)
		}
		s.stems = append(s.stems, p.Stem)
		s.branches = append(s.branches, p.Branch)
	}
	if len(s.stems) == 0 {
		return symbols{}, errors.New(errors.ErrCodeInvalidSymbol, "no symbols given")
	}
	return s, nil
}

func (s symbols) discover(opts []relation.Option) relation.Ganzhi {
	return relation.Ganzhi{
		Stems:    relation.DiscoverStems(s.stems),
		Branches: relation.DiscoverBranches(s.branches, opts...),
	}
}

func (s symbols) mutual(o symbols, opts []relation.Option) relation.Ganzhi {
	return relation.Ganzhi{
		Stems:    relation.DiscoverStemsMutual(s.stems, o.stems),
		Branches: relation.DiscoverBranchesMutual(s.branches, o.branches, opts...),
	}
}

// onlyKind keeps the relations of one kind, see [filterKind].
func (s symbols) onlyKind(g relation.Ganzhi, name string) (relation.Ganzhi, error) {
	return filterKind(g, name, len(s.stems) > 0, len(s.branches) > 0)
}

// filterKind keeps the relations of one kind. The name is looked up among
// the stem kinds when stems is set and among the branch kinds when branches
// is set; 冲 names both.
func filterKind(g relation.Ganzhi, name string, stems, branches bool) (relation.Ganzhi, error) {
	var (
		out     relation.Ganzhi
		matched bool
		lastErr error
	)
	if stems {
		k, err := relation.ParseStemRelation(name)
		if err == nil {
			matched = true
			out.Stems = g.Stems.Filter(func(got relation.StemRelation, _ relation.StemCombo) bool { return got == k })
		}
		lastErr = err
	}
	if branches {
		k, err := relation.ParseBranchRelation(name)
		if err == nil {
			matched = true
			out.Branches = g.Branches.Filter(func(got relation.BranchRelation, _ relation.BranchCombo) bool { return got == k })
		}
		lastErr = err
	}
	if !matched {
		return relation.Ganzhi{}, lastErr
	}
	return out, nil
}

// completeKinds offers every relation name, stems first, with its glyph as
// the description.
func completeKinds(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, k := range relation.StemRelations() {
			names = append(names, k.Name()+"\t"+k.String())
		}
		for _, k := range relation.BranchRelations() {
			if !slices.ContainsFunc(names, func(n string) bool { return strings.HasPrefix(n, k.Name()+"\t") }) {
				names = append(names, k.Name()+"\t"+k.String())
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func (c *CLI) relationsCommand() *cobra.Command {
	var (
		kind    string
		against string
		rf      relationFlags
		gf      graphFlags
	)

	cmd := &cobra.Command{
		Use:   "relations <symbols...>",
		Short: "Find the relations among stems, branches or pillars",
		Long: `Find every relation among a list of stems, branches or pillars.

With --against, only the relations that need symbols from both lists are
shown. With --kind, only relations of one kind are shown.`,
		Example: `  ganzhi relations 子 午 卯 酉
  ganzhi relations 寅巳申 --xing loose
  ganzhi relations 甲子 丁卯 乙丑 壬午 --format svg -o chart.svg
  ganzhi relations 乙 --against 甲丁壬 --kind sheng`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gf.validate(); err != nil {
				return err
			}
			opts, err := c.relationOptions(rf)
			if err != nil {
				return err
			}
			syms, err := parseSymbols(args)
			if err != nil {
				return err
			}

			title := strings.Join(args, " ")
			g := syms.discover(opts)
			if against != "" {
				other, err := parseSymbols([]string{against})
				if err != nil {
					return err
				}
				g = syms.mutual(other, opts)
				title += " × " + against
				syms.stems = append(syms.stems, other.stems...)
				syms.branches = append(syms.branches, other.branches...)
			}
			if kind != "" {
				if g, err = syms.onlyKind(g, kind); err != nil {
					return err
				}
			}

			if !gf.text() {
				return c.writeGraph(cmd.Context(), cmd.OutOrStdout(), g, relgraph.Options{
					Title:    title,
					Stems:    syms.stems,
					Branches: syms.branches,
				}, gf)
			}
			printGanzhi(cmd.OutOrStdout(), title, g)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only show one relation kind (name or glyph)")
	completeKinds(cmd)
	cmd.Flags().StringVar(&against, "against", "", "second list; show relations needing both lists")
	rf.register(cmd)
	gf.register(cmd)
	return cmd
}
