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

package status

import (
	"fmt"
)

// ResultFormatter defines how results and summaries should be formatted
type ResultFormatter interface {
	// FormatResult formats the line for one target plus its sub-notes
	FormatResult(r Result) []string

	// FormatSummary formats the final tally
	FormatSummary(s *Summary) string
}

// DefaultResultFormatter renders the console contract with fatih/color prefixes
type DefaultResultFormatter struct {
	// Verbose adds a "+ set/rule" line per applied rule
	Verbose bool
}

// NewDefaultResultFormatter creates a new DefaultResultFormatter
func NewDefaultResultFormatter() *DefaultResultFormatter {
	return &DefaultResultFormatter{Verbose: true}
}

// FormatResult formats a result and its sub-notes
func (f *DefaultResultFormatter) FormatResult(r Result) []string {
	lines := []string{FormatResultLine(r)}

	if r.Outcome != OutcomeUpdated {
		return lines
	}

	if f.Verbose {
		for _, name := range r.Applied {
			lines = append(lines, FormatSubNote(SubNoteApplied, name))
		}
	}
	for _, set := range r.Partial {
		lines = append(lines, FormatSubNote(SubNotePartial, set))
	}

	return lines
}

// FormatSummary formats the final tally
func (f *DefaultResultFormatter) FormatSummary(s *Summary) string {
	if s == nil {
		return (&Summary{}).String()
	}
	return s.String()
}

// FormatBytes formats a byte count in binary units
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
