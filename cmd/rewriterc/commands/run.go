package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/log"
	"github.com/walteh/rewriterc/pkg/operation"
	"github.com/walteh/rewriterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply the rule sets to every target file",
		Long: `Run rewrites every matching file under the targets root.
It will:
1. Resolve the rule sets to run (--only pulls in what they require)
2. List the target files in lexical order
3. Apply each rule set in order to every file
4. Write changed files atomically and print a tally

Files that fail to read or write are reported and the run continues.
A missing targets root aborts the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "run").Logger().WithContext(ctx)

			_, err := execute(ctx, opts.Config, opts.Logger, only)
			return err
		},
	}

	addOnlyFlag(cmd, &only)

	return cmd
}

func addOnlyFlag(cmd *cobra.Command, only *[]string) {
	cmd.Flags().StringSliceVar(only, "only", nil, "run only these rule sets (and the sets they require)")
}

// execute runs the pipeline with console reporting
func execute(ctx context.Context, cfg *config.Config, logger *log.Logger, only []string) (*status.Summary, error) {
	runner, err := operation.NewRunner(operation.Options{
		Config:   cfg,
		Only:     only,
		Reporter: logger,
	})
	if err != nil {
		return nil, errors.Errorf("creating runner: %w", err)
	}

	logger.StartRun(ctx, log.RunOperation{
		Root:     cfg.TargetsRoot,
		Glob:     cfg.FileGlob,
		RuleSets: runner.Pipeline(),
		DryRun:   cfg.DryRun,
	})

	summary, err := runner.Run(ctx)
	if err != nil {
		return nil, errors.Errorf("running pipeline: %w", err)
	}

	logger.LogSummary(ctx, summary)

	switch {
	case summary.Failed > 0:
		logger.Warningf("%d file(s) could not be processed", summary.Failed)
	case summary.Updated == 0:
		logger.Success("all files up to date")
	}

	return summary, nil
}
