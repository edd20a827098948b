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

	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/status"
	"github.com/walteh/rewriterc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrDirectoryNotFound is returned when the targets root is missing; it aborts the run
	ErrDirectoryNotFound = errors.Base("target directory not found")
	// ErrPipelineOrder is returned when a rule set requires one that is unknown or declared later
	ErrPipelineOrder = errors.Base("invalid rule set order")
	// ErrUnknownRuleSet is returned when a selected rule set does not exist
	ErrUnknownRuleSet = errors.Base("unknown rule set")
)

// 🎯 Operator defines the main interface for a transform run
type Operator interface {
	// Run enumerates targets and processes each one; only a missing root is fatal
	Run(ctx context.Context) (*status.Summary, error)
	// Process transforms one target, relative to the targets root
	Process(ctx context.Context, path string) status.Result
}

// 📣 Reporter receives results in enumeration order
type Reporter interface {
	LogResult(ctx context.Context, r status.Result)
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Config is the validated rewriterc configuration
	Config *config.Config
	// Only limits the pipeline to these rule sets and what they require
	Only []string
	// FileManager reads and writes targets; defaults to a status.Manager on the targets root
	FileManager status.FileManager
	// Replacer runs the compiled pipeline; defaults to text.NewReplacer
	Replacer text.TextReplacer
	// Reporter is told about every result, optional
	Reporter Reporter
}

// 🏭 New creates an operator with the given options
func New(opts Options) (Operator, error) {
	return NewRunner(opts)
}
