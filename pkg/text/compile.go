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
	"github.com/walteh/rewriterc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🏗️ Compile turns a configured rule set into an executable one
func Compile(set config.RuleSet) (RuleSet, error) {
	out := RuleSet{
		Name:     set.Name,
		Requires: set.Requires,
	}

	for _, s := range set.SkipIfContains {
		out.Guards = append(out.Guards, NotContains(s))
	}
	for _, s := range set.OnlyIfContains {
		out.Guards = append(out.Guards, Contains(s))
	}

	for i, r := range set.Rules {
		rule, err := compileRule(set.Name, r)
		if err != nil {
			return RuleSet{}, errors.Errorf("rule_set %s: rule %d: %w", set.Name, i, err)
		}
		out.Rules = append(out.Rules, rule)
	}

	return out, nil
}

// CompileAll compiles every rule set, keeping their order
func CompileAll(sets []config.RuleSet) ([]RuleSet, error) {
	out := make([]RuleSet, 0, len(sets))
	for _, set := range sets {
		compiled, err := Compile(set)
		if err != nil {
			return nil, err
		}
		out = append(out, compiled)
	}
	return out, nil
}

func compileRule(setName string, r config.Rule) (Rule, error) {
	rule := Rule{Name: r.Name}

	switch {
	case r.Match != "" && r.Regex != "":
		return Rule{}, errors.Errorf("match and regex are mutually exclusive")
	case r.Match != "":
		rule.Matcher = Literal(r.Match)
	case r.Regex != "":
		m, err := Regex(r.Regex)
		if err != nil {
			return Rule{}, err
		}
		rule.Matcher = m
	default:
		return Rule{}, errors.Errorf("one of match or regex is required")
	}

	if r.Template {
		tmpl, err := Template(setName+"/"+r.Name, r.Replace)
		if err != nil {
			return Rule{}, err
		}
		rule.Replacement = tmpl
	} else {
		rule.Replacement = Static(r.Replace)
	}

	for _, s := range r.IfContains {
		rule.Conditions = append(rule.Conditions, Contains(s))
	}
	for _, s := range r.UnlessContains {
		rule.Conditions = append(rule.Conditions, NotContains(s))
	}
	for _, s := range r.UnlessContainsFold {
		rule.Conditions = append(rule.Conditions, NotContainsFold(s))
	}

	return rule, nil
}
