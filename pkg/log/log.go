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
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/rewriterc/pkg/status"
)

// 📦 RunOperation describes a run for the console header
type RunOperation struct {
	Root     string   // targets root
	Glob     string   // file selection glob
	RuleSets []string // resolved pipeline, in order
	DryRun   bool     // nothing will be written
}

// 🎯 Logger prints the console contract and mirrors every line into zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.ResultFormatter
	mu        sync.Mutex
	currentOp *RunOperation
	results   int
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultResultFormatter(),
	}
}

// WithFormatter replaces the result formatter
func (l *Logger) WithFormatter(f status.ResultFormatter) *Logger {
	l.formatter = f
	return l
}

// 📝 StartRun prints the run header
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.results = 0

	verb := "rewriting"
	if op.DryRun {
		verb = "checking"
	}

	fmt.Fprintf(l.console, "[%s %s]\n", verb, color.New(color.FgCyan).Sprint(op.Root))
	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Glob),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(strings.Join(op.RuleSets, ", ")))

	l.zlog.Info().
		Str("root", op.Root).
		Str("glob", op.Glob).
		Strs("rule_sets", op.RuleSets).
		Bool("dry_run", op.DryRun).
		Msg("starting run")
}

// 📝 LogResult prints one target line plus sub-notes
func (l *Logger) LogResult(ctx context.Context, r status.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.results++

	for _, line := range l.formatter.FormatResult(r) {
		fmt.Fprintln(l.console, line)
	}

	var ev *zerolog.Event
	if r.Outcome == status.OutcomeFailed {
		ev = l.zlog.Error().Err(r.Err)
	} else {
		ev = l.zlog.Info()
	}
	ev.Str("file", r.Path).
		Str("outcome", r.Outcome.String()).
		Str("reason", r.Reason).
		Int("bytes", r.Bytes).
		Int("replacements", r.Replacements).
		Strs("applied", r.Applied).
		Strs("partial", r.Partial).
		Bool("dry_run", r.DryRun).
		Msg("file processed")
}

// 📝 LogDiff prints the dry-run diff of a result under a section header, if any
func (l *Logger) LogDiff(r status.Result) {
	if r.Diff == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, pterm.DefaultSection.Sprintln(r.Path))
	fmt.Fprintln(l.console, r.Diff)
}

// 📝 LogSummary prints the final tally and ends the run
func (l *Logger) LogSummary(ctx context.Context, s *status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console)
	fmt.Fprintln(l.console, l.formatter.FormatSummary(s))

	ev := l.zlog.Info()
	if s != nil {
		ev = ev.Int("updated", s.Updated).
			Int("skipped", s.Skipped).
			Int("failed", s.Failed).
			Int64("bytes", s.Bytes).
			Str("written", status.FormatBytes(s.Bytes))
	}
	if l.currentOp != nil {
		ev = ev.Str("root", l.currentOp.Root)
	}
	ev.Int("logged", l.results).Msg("run complete")

	l.currentOp = nil
	l.results = 0
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
