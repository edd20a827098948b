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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/log"
	"github.com/walteh/rewriterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	rootDir    string
	dryRun     bool
	quiet      bool
)

// newRootOpts fills rootOpts with the config and console logger
func newRootOpts(ctx context.Context, rootOpts *opts.RootOpts) error {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if rootDir != "" {
		cfg.TargetsRoot = filepath.Clean(rootDir)
	}
	if dryRun {
		cfg.DryRun = true
	}

	rootOpts.Config = cfg
	rootOpts.Logger = log.New(os.Stdout, *zerolog.Ctx(ctx))
	if quiet {
		rootOpts.Logger.WithFormatter(&status.DefaultResultFormatter{Verbose: false})
	}

	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (.hcl, .yaml, .json); built-in rules when empty")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&rootDir, "root", "", "override the targets root directory")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "hide the per-rule notes under updated files")
}

// setupLogging configures zerolog based on flags and attaches it to ctx
func setupLogging(ctx context.Context) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}
