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
package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rewriterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_updated_result",
			op: func(t *testing.T, logger *Logger) {
				logger.LogResult(context.Background(), status.Result{
					Path:         "my-post.html",
					Outcome:      status.OutcomeUpdated,
					Replacements: 2,
					Applied:      []string{"containers/main-class", "titles/suffix"},
				})
			},
			wantLogs: []string{
				"✓ Updated: my-post.html",
				"+ containers/main-class",
				"+ titles/suffix",
			},
		},
		{
			name: "log_skipped_and_failed",
			op: func(t *testing.T, logger *Logger) {
				logger.LogResult(context.Background(), status.Skipped("a.html", status.ReasonNoMatch))
				logger.LogResult(context.Background(), status.Failed("b.html", errors.New("permission denied")))
			},
			wantLogs: []string{
				"- Skipped: a.html (no match)",
				"✗ Failed: b.html: permission denied",
			},
		},
		{
			name: "log_run",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Root:     "posts",
					Glob:     "*.html",
					RuleSets: []string{"containers", "comments"},
				})
				logger.LogSummary(context.Background(), &status.Summary{Updated: 1, Skipped: 2})
			},
			wantLogs: []string{
				"[rewriting posts]",
				"◆ *.html • containers, comments",
				"",
				"Updated: 1  Skipped: 2  Failed: 0",
			},
		},
		{
			name: "log_dry_run_header",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{Root: "posts", Glob: "*.html", RuleSets: []string{"titles"}, DryRun: true})
			},
			wantLogs: []string{
				"[checking posts]",
				"◆ *.html • titles",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %d", 2)
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerMirrorsToZerolog(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	zbuf := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(zbuf))

	logger.LogResult(context.Background(), status.Result{
		Path:    "my-post.html",
		Outcome: status.OutcomeUpdated,
		Partial: []string{"comments"},
	})

	out := zbuf.String()
	assert.Contains(t, out, `"file":"my-post.html"`)
	assert.Contains(t, out, `"outcome":"updated"`)
	assert.Contains(t, out, `"partial":["comments"]`)
}

func TestLoggerDiff(t *testing.T) {
	color.NoColor = true
	pterm.DisableColor()
	defer func() {
		color.NoColor = false
		pterm.EnableColor()
	}()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

	logger.LogDiff(status.Result{Path: "a.html"})
	assert.Empty(t, buf.String(), "nothing to show without a diff")

	logger.LogDiff(status.Result{Path: "b.html", Diff: "- old\n+ new"})
	out := buf.String()
	assert.Contains(t, out, "b.html")
	assert.Contains(t, out, "- old\n+ new\n")
	assert.Less(t, strings.Index(out, "b.html"), strings.Index(out, "- old"), "header comes before the diff")
}
