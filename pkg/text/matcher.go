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
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔍 Matcher finds the text a rule rewrites.
// A rule is applicable exactly when its matcher counts at least one match.
type Matcher interface {
	// Count returns the number of non-overlapping matches in content
	Count(content string) int
	// ReplaceAll replaces every match with replacement, expanding $1 style references where supported
	ReplaceAll(content, replacement string) string
	// ReplaceAllLiteral replaces every match with replacement taken verbatim
	ReplaceAllLiteral(content, replacement string) string
	// String describes the matcher for logs
	String() string
}

// LiteralMatcher matches a fixed substring
type LiteralMatcher struct {
	text string
}

// Literal returns a matcher for a fixed substring
func Literal(s string) *LiteralMatcher {
	return &LiteralMatcher{text: s}
}

func (m *LiteralMatcher) Count(content string) int {
	if m.text == "" {
		return 0
	}
	return strings.Count(content, m.text)
}

func (m *LiteralMatcher) ReplaceAll(content, replacement string) string {
	if m.text == "" {
		return content
	}
	return strings.ReplaceAll(content, m.text, replacement)
}

func (m *LiteralMatcher) ReplaceAllLiteral(content, replacement string) string {
	return m.ReplaceAll(content, replacement)
}

func (m *LiteralMatcher) String() string {
	return "literal:" + m.text
}

// RegexMatcher matches a regular expression. Static replacements may
// reference capture groups as $1 or ${name}; rendered templates are inserted
// verbatim.
type RegexMatcher struct {
	re *regexp.Regexp
}

// Regex compiles pattern into a matcher
func Regex(pattern string) (*RegexMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling regex %q: %w", pattern, err)
	}
	return &RegexMatcher{re: re}, nil
}

// MustRegex is like Regex but panics on an invalid pattern
func MustRegex(pattern string) *RegexMatcher {
	m, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *RegexMatcher) Count(content string) int {
	return len(m.re.FindAllStringIndex(content, -1))
}

func (m *RegexMatcher) ReplaceAll(content, replacement string) string {
	return m.re.ReplaceAllString(content, replacement)
}

func (m *RegexMatcher) ReplaceAllLiteral(content, replacement string) string {
	return m.re.ReplaceAllLiteralString(content, replacement)
}

func (m *RegexMatcher) String() string {
	return "regex:" + m.re.String()
}
