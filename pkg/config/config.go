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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const defaultFileExtension = ".html"

// 🔄 Rule describes a single match + replacement step
type Rule struct {
	Name               string   `json:"name" yaml:"name" hcl:"name,label"`
	Match              string   `json:"match,omitempty" yaml:"match,omitempty" hcl:"match,optional"`                                          // literal substring
	Regex              string   `json:"regex,omitempty" yaml:"regex,omitempty" hcl:"regex,optional"`                                          // regular expression
	Replace            string   `json:"replace" yaml:"replace" hcl:"replace"`                                                                 // replacement text or template
	Template           bool     `json:"template,omitempty" yaml:"template,omitempty" hcl:"template,optional"`                                 // render Replace with the file context
	IfContains         []string `json:"if_contains,omitempty" yaml:"if_contains,omitempty" hcl:"if_contains,optional"`                       // all must be present
	UnlessContains     []string `json:"unless_contains,omitempty" yaml:"unless_contains,omitempty" hcl:"unless_contains,optional"`           // none may be present
	UnlessContainsFold []string `json:"unless_contains_fold,omitempty" yaml:"unless_contains_fold,omitempty" hcl:"unless_contains_fold,optional"` // none may be present, case-insensitive
}

// 📦 RuleSet is a named, ordered group of rules
type RuleSet struct {
	Name           string   `json:"name" yaml:"name" hcl:"name,label"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty" hcl:"description,optional"`
	Requires       []string `json:"requires,omitempty" yaml:"requires,omitempty" hcl:"requires,optional"`
	SkipIfContains []string `json:"skip_if_contains,omitempty" yaml:"skip_if_contains,omitempty" hcl:"skip_if_contains,optional"`
	OnlyIfContains []string `json:"only_if_contains,omitempty" yaml:"only_if_contains,omitempty" hcl:"only_if_contains,optional"`
	Rules          []Rule   `json:"rules" yaml:"rules" hcl:"rule,block"`
}

// 📚 Config represents the complete configuration
type Config struct {
	TargetsRoot   string            `json:"targets_root" yaml:"targets_root" hcl:"targets_root"`
	FileExtension string            `json:"file_extension,omitempty" yaml:"file_extension,omitempty" hcl:"file_extension,optional"`
	FileGlob      string            `json:"file_glob,omitempty" yaml:"file_glob,omitempty" hcl:"file_glob,optional"`
	Recursive     bool              `json:"recursive,omitempty" yaml:"recursive,omitempty" hcl:"recursive,optional"`
	DryRun        bool              `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Vars          map[string]string `json:"vars,omitempty" yaml:"vars,omitempty" hcl:"vars,optional"`
	RuleSets      []RuleSet         `json:"rule_sets" yaml:"rule_sets" hcl:"rule_set,block"`

	location string
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.TargetsRoot == "" {
		return errors.Errorf("targets_root is required")
	}
	cfg.TargetsRoot = filepath.Clean(cfg.TargetsRoot)

	if cfg.FileExtension == "" && cfg.FileGlob == "" {
		cfg.FileExtension = defaultFileExtension
	}
	if cfg.FileExtension != "" && !strings.HasPrefix(cfg.FileExtension, ".") {
		cfg.FileExtension = "." + cfg.FileExtension
	}
	if cfg.FileGlob == "" {
		cfg.FileGlob = "*" + cfg.FileExtension
	}

	if len(cfg.RuleSets) == 0 {
		return errors.Errorf("at least one rule_set is required")
	}

	seen := make(map[string]bool, len(cfg.RuleSets))
	for i, set := range cfg.RuleSets {
		if set.Name == "" {
			return errors.Errorf("rule_set %d: name is required", i)
		}
		if seen[set.Name] {
			return errors.Errorf("rule_set %q: duplicate name", set.Name)
		}
		seen[set.Name] = true

		if len(set.Rules) == 0 {
			return errors.Errorf("rule_set %q: at least one rule is required", set.Name)
		}
		for j, rule := range set.Rules {
			if err := rule.validate(); err != nil {
				return errors.Errorf("rule_set %q: rule %d: %w", set.Name, j, err)
			}
		}
	}

	return nil
}

func (r Rule) validate() error {
	switch {
	case r.Match == "" && r.Regex == "":
		return errors.Errorf("one of match or regex is required")
	case r.Match != "" && r.Regex != "":
		return errors.Errorf("match and regex are mutually exclusive")
	}
	return nil
}

// 🎯 RuleSet returns the named rule set
func (cfg *Config) RuleSet(name string) (RuleSet, bool) {
	for _, set := range cfg.RuleSets {
		if set.Name == name {
			return set, true
		}
	}
	return RuleSet{}, false
}

// 📍 Location returns the file the config was loaded from, empty for built-in configs
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	names := make([]string, 0, len(cfg.RuleSets))
	for _, set := range cfg.RuleSets {
		names = append(names, set.Name)
	}
	return fmt.Sprintf("%s/%s [%s]", cfg.TargetsRoot, cfg.FileGlob, strings.Join(names, ","))
}
