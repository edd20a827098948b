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
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/status"
	"github.com/walteh/rewriterc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner executes the transform pipeline over every target
type Runner struct {
	cfg      *config.Config
	fm       status.FileManager
	replacer text.TextReplacer
	reporter Reporter
	pipeline []text.RuleSet
	names    []string
	dryRun   bool
}

var _ Operator = (*Runner)(nil)

// 🏗️ NewRunner resolves and compiles the pipeline
func NewRunner(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}

	resolved, err := ResolvePipeline(opts.Config.RuleSets, opts.Only)
	if err != nil {
		return nil, errors.Errorf("resolving pipeline: %w", err)
	}

	pipeline, err := text.CompileAll(resolved)
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}

	names := make([]string, 0, len(resolved))
	for _, set := range resolved {
		names = append(names, set.Name)
	}

	fm := opts.FileManager
	if fm == nil {
		fm = status.New(opts.Config.TargetsRoot)
	}

	replacer := opts.Replacer
	if replacer == nil {
		replacer = text.NewReplacer()
	}

	return &Runner{
		cfg:      opts.Config,
		fm:       fm,
		replacer: replacer,
		reporter: opts.Reporter,
		pipeline: pipeline,
		names:    names,
		dryRun:   opts.Config.DryRun,
	}, nil
}

// Pipeline returns the names of the rule sets that run, in order
func (r *Runner) Pipeline() []string {
	return r.names
}

// 🏃 Run processes every target under the targets root, one at a time in enumeration order
func (r *Runner) Run(ctx context.Context) (*status.Summary, error) {
	files, err := Enumerate(ctx, r.cfg.TargetsRoot, r.cfg.FileGlob, r.cfg.Recursive)
	if err != nil {
		return nil, err
	}

	summary := &status.Summary{}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("operation cancelled: %w", err)
		}
		res := r.Process(ctx, file)
		r.report(ctx, res)
		summary.Add(res)
	}

	zerolog.Ctx(ctx).Debug().
		Int("updated", summary.Updated).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Int64("bytes", summary.Bytes).
		Msg("run complete")

	return summary, nil
}

func (r *Runner) report(ctx context.Context, res status.Result) {
	if r.reporter != nil {
		r.reporter.LogResult(ctx, res)
	}
}

// 📄 Process reads a target once, runs the pipeline and writes at most once
func (r *Runner) Process(ctx context.Context, path string) status.Result {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()

	content, err := r.fm.ReadFile(ctx, path)
	if err != nil {
		logger.Debug().Err(err).Msg("reading target")
		return status.Failed(path, err)
	}

	fc := text.NewFileContext(path, r.cfg.Vars)

	res, err := r.replacer.ReplaceText(ctx, content, fc, r.pipeline)
	if err != nil {
		logger.Debug().Err(err).Msg("transforming target")
		return status.Failed(path, errors.Errorf("transforming: %w", err))
	}

	if !res.WasModified {
		return status.Skipped(path, status.ReasonNoMatch)
	}

	if !res.Changed() {
		out := status.Skipped(path, status.ReasonUnchanged)
		out.Applied = res.Applied
		return out
	}

	out := status.Updated(path, len(res.ModifiedContent))
	out.Replacements = res.ReplacementCount
	out.Applied = res.Applied
	out.Partial = res.Partial

	if len(res.Partial) > 0 {
		logger.Warn().Strs("rule_sets", res.Partial).Msg("rule set partially applied")
	}

	if r.dryRun {
		out.DryRun = true
		out.Diff = Diff(path, string(res.OriginalContent), string(res.ModifiedContent))
		return out
	}

	if err := r.fm.WriteFileAtomic(ctx, path, res.ModifiedContent); err != nil {
		logger.Debug().Err(err).Msg("writing target")
		return status.Failed(path, err)
	}

	logger.Debug().Int("bytes", out.Bytes).Int("replacements", out.Replacements).Msg("target updated")

	return out
}
