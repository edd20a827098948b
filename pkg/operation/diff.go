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
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🔍 Diff renders a line based diff of before and after, showing only changed lines
func Diff(path, before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s\n%s\n", color.RedString("--- a/%s", path), color.GreenString("+++ b/%s", path))

	for _, d := range diffs {
		var prefix string
		var paint func(format string, a ...interface{}) string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", color.RedString
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", color.GreenString
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(paint("%s%s", prefix, strings.TrimSuffix(line, "\n")))
			buf.WriteString("\n")
		}
	}

	return strings.TrimSuffix(buf.String(), "\n")
}
