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
	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule is one matcher + replacement + preconditions unit
type Rule struct {
	Name        string
	Matcher     Matcher
	Replacement Replacement
	Conditions  []Condition
}

// 📦 RuleSet is a named, ordered group of rules
type RuleSet struct {
	Name     string
	Requires []string    // rule sets that must run earlier in the pipeline
	Guards   []Condition // all must hold or the whole set is skipped
	Rules    []Rule
}

// ruleOutcome records why a rule did or did not apply
type ruleOutcome int

const (
	outcomeApplied    ruleOutcome = iota
	outcomeNotMatched             // conditions held, matcher found nothing
	outcomeGuarded                // a condition did not hold
)

// 🎯 Apply applies rule to content. applied is true iff the conditions hold
// and the matcher found at least one match; every match is replaced.
func Apply(rule Rule, content string, fc FileContext) (string, bool, error) {
	out, _, outcome, err := rule.apply(content, fc)
	if err != nil {
		return content, false, err
	}
	return out, outcome == outcomeApplied, nil
}

func (r Rule) apply(content string, fc FileContext) (string, int, ruleOutcome, error) {
	if _, ok := allHold(r.Conditions, content); !ok {
		return content, 0, outcomeGuarded, nil
	}

	count := r.Matcher.Count(content)
	if count == 0 {
		return content, 0, outcomeNotMatched, nil
	}

	replacement, err := r.Replacement.Render(fc)
	if err != nil {
		return content, 0, outcomeNotMatched, errors.Errorf("rule %s: %w", r.Name, err)
	}

	// rendered templates are inserted verbatim
	if _, static := r.Replacement.(StaticReplacement); !static {
		return r.Matcher.ReplaceAllLiteral(content, replacement), count, outcomeApplied, nil
	}

	return r.Matcher.ReplaceAll(content, replacement), count, outcomeApplied, nil
}
