package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewListCmd creates a new list command
func NewListCmd(opts *opts.RootOpts) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the rule sets and rules in pipeline order",
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := operation.ResolvePipeline(opts.Config.RuleSets, only)
			if err != nil {
				return errors.Errorf("resolving pipeline: %w", err)
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(ruleTable(sets)).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	addOnlyFlag(cmd, &only)

	return cmd
}

// ruleTable flattens rule sets into table rows with a header
func ruleTable(sets []config.RuleSet) pterm.TableData {
	data := pterm.TableData{{"Set", "Rule", "Kind", "Conditions", "Requires"}}

	for _, set := range sets {
		for i, rule := range set.Rules {
			kind := "literal"
			if rule.Regex != "" {
				kind = "regex"
			}
			if rule.Template {
				kind += "+template"
			}

			var conds []string
			if i == 0 {
				for _, s := range set.SkipIfContains {
					conds = append(conds, "set skip if "+s)
				}
				for _, s := range set.OnlyIfContains {
					conds = append(conds, "set only if "+s)
				}
			}
			for _, s := range rule.IfContains {
				conds = append(conds, "if "+s)
			}
			for _, s := range rule.UnlessContains {
				conds = append(conds, "unless "+s)
			}
			for _, s := range rule.UnlessContainsFold {
				conds = append(conds, "unless (fold) "+s)
			}

			setName, requires := "", ""
			if i == 0 {
				setName = set.Name
				requires = strings.Join(set.Requires, ",")
			}

			data = append(data, []string{setName, rule.Name, kind, strings.Join(conds, "; "), requires})
		}
	}

	return data
}
