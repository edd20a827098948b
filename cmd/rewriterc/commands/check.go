package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"github.com/walteh/rewriterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		only         []string
		failOnChange bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show what run would change without writing",
		Long: `Check is run with --dry-run forced on. Every file that would be
updated is listed with a line diff of the change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			cfg := *opts.Config
			cfg.DryRun = true

			summary, err := execute(ctx, &cfg, opts.Logger, only)
			if err != nil {
				return err
			}

			for _, res := range summary.Results {
				if res.Outcome == status.OutcomeUpdated {
					opts.Logger.LogDiff(res)
				}
			}

			if summary.Updated > 0 {
				if failOnChange {
					return errors.Errorf("%d file(s) would be rewritten", summary.Updated)
				}
				opts.Logger.Infof("%d file(s) would be rewritten", summary.Updated)
			}

			return nil
		},
	}

	addOnlyFlag(cmd, &only)
	cmd.Flags().BoolVar(&failOnChange, "fail-on-change", false, "exit non-zero when any file would be rewritten")

	return cmd
}
