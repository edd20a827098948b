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
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ReplacementResult contains the results of running rule sets over one buffer
type ReplacementResult struct {
	// WasModified indicates if any rule applied
	WasModified bool

	// ReplacementCount is the number of matches replaced
	ReplacementCount int

	// Applied lists the applied rules as "set/rule", in order
	Applied []string

	// Guarded lists the rule sets skipped because a set guard did not hold
	Guarded []string

	// Partial lists the rule sets where some rules applied while another
	// rule, whose conditions held, found no match
	Partial []string

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// Changed reports whether the final content differs from the original
func (r *ReplacementResult) Changed() bool {
	return string(r.OriginalContent) != string(r.ModifiedContent)
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the rule sets in order to content.
	// Later rules see the output of earlier rules.
	ReplaceText(ctx context.Context, content []byte, fc FileContext, sets []RuleSet) (*ReplacementResult, error)
}

// Replacer implements TextReplacer
type Replacer struct{}

// NewReplacer creates a new Replacer
func NewReplacer() *Replacer {
	return &Replacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *Replacer) ReplaceText(ctx context.Context, content []byte, fc FileContext, sets []RuleSet) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	result := &ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
	}

	current := string(content)
	for _, set := range sets {
		if failed, ok := allHold(set.Guards, current); !ok {
			logger.Debug().Str("file", fc.Filename).Str("rule_set", set.Name).Str("guard", failed.String()).Msg("rule set guarded")
			result.Guarded = append(result.Guarded, set.Name)
			continue
		}

		var applied, missed int
		for _, rule := range set.Rules {
			next, count, outcome, err := rule.apply(current, fc)
			if err != nil {
				return nil, errors.Errorf("rule set %s: %w", set.Name, err)
			}

			switch outcome {
			case outcomeApplied:
				applied++
				result.ReplacementCount += count
				result.Applied = append(result.Applied, set.Name+"/"+rule.Name)
				logger.Debug().Str("file", fc.Filename).Str("rule", set.Name+"/"+rule.Name).Int("count", count).Msg("rule applied")
			case outcomeNotMatched:
				missed++
			}

			current = next
		}

		if applied > 0 && missed > 0 {
			result.Partial = append(result.Partial, set.Name)
		}
	}

	result.WasModified = len(result.Applied) > 0
	result.ModifiedContent = []byte(current)
	return result, nil
}
