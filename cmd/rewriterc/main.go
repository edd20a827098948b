// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/commands"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
)

func main() {
	ctx := context.Background()

	if err := newRootCmd(&opts.RootOpts{}).ExecuteContext(ctx); err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(rootOpts *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rewriterc",
		Short: "Idempotent text rewrites over a directory of blog posts",
		Long: `rewriterc applies ordered rule sets to every matching file under a
directory. Each file is read once, transformed in memory and written back
atomically only when its content changed. Running it twice is safe: rules
guard themselves against content they already produced.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context())
			cmd.SetContext(ctx)

			if err := newRootOpts(ctx, rootOpts); err != nil {
				return err
			}
			zerolog.Ctx(ctx).Debug().Str("config", rootOpts.Config.String()).Msg("loaded config")
			return nil
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		commands.NewListCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}
