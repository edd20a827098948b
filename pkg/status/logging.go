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
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	subNoteIndent = 2 // spaces to indent sub-notes
)

// SubNote kinds printed under an updated target
type SubNote string

const (
	SubNoteApplied SubNote = "+"
	SubNotePartial SubNote = "~"
)

// 🎯 FormatResultLine formats the main line for a target
func FormatResultLine(r Result) string {
	switch r.Outcome {
	case OutcomeUpdated:
		line := fmt.Sprintf("%s Updated: %s", color.GreenString("✓"), r.Path)
		if r.DryRun {
			line += color.HiBlackString(" (dry run)")
		}
		return line
	case OutcomeSkipped:
		return fmt.Sprintf("%s Skipped: %s (%s)", color.HiBlackString("-"), r.Path, r.Reason)
	case OutcomeFailed:
		return fmt.Sprintf("%s Failed: %s: %v", color.RedString("✗"), r.Path, r.Err)
	default:
		return fmt.Sprintf("? %s", r.Path)
	}
}

// FormatSubNote formats an indented note under a target line
func FormatSubNote(kind SubNote, text string) string {
	var marker string
	switch kind {
	case SubNoteApplied:
		marker = color.CyanString(string(kind))
	case SubNotePartial:
		marker = color.YellowString(string(kind))
		text = "partial " + text
	default:
		marker = string(kind)
	}
	return fmt.Sprintf("%s%s %s", strings.Repeat(" ", subNoteIndent), marker, text)
}
