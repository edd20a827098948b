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
	"slices"

	"github.com/walteh/rewriterc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🔗 ResolvePipeline returns the rule sets to run, in declaration order.
// With an empty selection every set runs. Otherwise the selected sets and
// everything they require, transitively, are kept.
func ResolvePipeline(sets []config.RuleSet, only []string) ([]config.RuleSet, error) {
	index := make(map[string]int, len(sets))
	for i, set := range sets {
		index[set.Name] = i
	}

	for i, set := range sets {
		for _, req := range set.Requires {
			j, ok := index[req]
			if !ok {
				return nil, errors.Errorf("rule set %s requires %s: %w", set.Name, req, ErrPipelineOrder)
			}
			if j >= i {
				return nil, errors.Errorf("rule set %s requires %s, which is declared later: %w", set.Name, req, ErrPipelineOrder)
			}
		}
	}

	if len(only) == 0 {
		return slices.Clone(sets), nil
	}

	keep := make([]bool, len(sets))
	var visit func(name string) error
	visit = func(name string) error {
		i, ok := index[name]
		if !ok {
			return errors.Errorf("%s: %w", name, ErrUnknownRuleSet)
		}
		if keep[i] {
			return nil
		}
		keep[i] = true
		for _, req := range sets[i].Requires {
			if err := visit(req); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range only {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	resolved := make([]config.RuleSet, 0, len(only))
	for i, set := range sets {
		if keep[i] {
			resolved = append(resolved, set)
		}
	}
	return resolved, nil
}
