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

package text

import (
	"strings"
)

// 🚦 Condition is a precondition evaluated against the current content
type Condition interface {
	Holds(content string) bool
	String() string
}

type containsCondition struct {
	needle string
	negate bool
	fold   bool
}

// Contains holds when s is present
func Contains(s string) Condition {
	return containsCondition{needle: s}
}

// NotContains holds when s is absent. Used for "already processed" markers.
func NotContains(s string) Condition {
	return containsCondition{needle: s, negate: true}
}

// NotContainsFold holds when s is absent, ignoring case
func NotContainsFold(s string) Condition {
	return containsCondition{needle: s, negate: true, fold: true}
}

func (c containsCondition) Holds(content string) bool {
	var found bool
	if c.fold {
		found = strings.Contains(strings.ToLower(content), strings.ToLower(c.needle))
	} else {
		found = strings.Contains(content, c.needle)
	}
	return found != c.negate
}

func (c containsCondition) String() string {
	var b strings.Builder
	if c.negate {
		b.WriteString("not ")
	}
	b.WriteString("contains")
	if c.fold {
		b.WriteString(" (fold)")
	}
	b.WriteString(" ")
	b.WriteString(c.needle)
	return b.String()
}

func allHold(conds []Condition, content string) (Condition, bool) {
	for _, c := range conds {
		if !c.Holds(content) {
			return c, false
		}
	}
	return nil, true
}
