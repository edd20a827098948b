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

// 📊 Outcome is the per-target result of a run
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeUpdated         // rules applied and the file was (or would be) rewritten
	OutcomeSkipped         // nothing to do, file untouched
	OutcomeFailed          // read, encoding, render or write error
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Skip reasons
const (
	ReasonNoMatch   = "no match"
	ReasonUnchanged = "unchanged"
)

// 📄 Result describes what happened to one target
type Result struct {
	Path         string   // path relative to the targets root
	Outcome      Outcome  // updated, skipped or failed
	Reason       string   // why the target was skipped
	Err          error    // why the target failed
	Bytes        int      // size of the transformed content
	Replacements int      // number of matches replaced
	Applied      []string // applied rules as set/rule
	Partial      []string // rule sets that only partly applied
	DryRun       bool     // content was not written
	Diff         string   // pretty diff, dry run only
}

// Updated builds an OutcomeUpdated result
func Updated(path string, bytes int) Result {
	return Result{Path: path, Outcome: OutcomeUpdated, Bytes: bytes}
}

// Skipped builds an OutcomeSkipped result
func Skipped(path, reason string) Result {
	return Result{Path: path, Outcome: OutcomeSkipped, Reason: reason}
}

// Failed builds an OutcomeFailed result
func Failed(path string, err error) Result {
	return Result{Path: path, Outcome: OutcomeFailed, Err: err}
}

// 🧮 Summary aggregates the results of a run
type Summary struct {
	Updated int
	Skipped int
	Failed  int
	Bytes   int64 // bytes written (or that would be written) for updated targets

	Results []Result
}

// Add tallies a result
func (s *Summary) Add(r Result) {
	switch r.Outcome {
	case OutcomeUpdated:
		s.Updated++
		s.Bytes += int64(r.Bytes)
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
	s.Results = append(s.Results, r)
}

// Total returns the number of processed targets
func (s *Summary) Total() int {
	return s.Updated + s.Skipped + s.Failed
}

// String returns the tally line
func (s *Summary) String() string {
	return fmt.Sprintf("Updated: %d  Skipped: %d  Failed: %d", s.Updated, s.Skipped, s.Failed)
}
