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
	"net/url"
	"strings"
	"text/template"

	"gitlab.com/tozd/go/errors"
)

// ✏️ Replacement produces the text substituted for each match
type Replacement interface {
	Render(fc FileContext) (string, error)
}

// StaticReplacement is a fixed string
type StaticReplacement string

// Static returns a fixed replacement
func Static(s string) StaticReplacement {
	return StaticReplacement(s)
}

func (s StaticReplacement) Render(FileContext) (string, error) {
	return string(s), nil
}

// TemplateReplacement renders a text/template against the FileContext
type TemplateReplacement struct {
	tmpl *template.Template
}

var templateFuncs = template.FuncMap{
	"escapeSpaces": func(s string) string { return strings.ReplaceAll(s, " ", "%20") },
	"queryEscape":  url.QueryEscape,
	"pathEscape":   url.PathEscape,
	"lower":        strings.ToLower,
	"upper":        strings.ToUpper,
}

// Template parses text as a template; unknown fields and vars are errors at render time
func Template(name, text string) (*TemplateReplacement, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, errors.Errorf("parsing template %s: %w", name, err)
	}
	return &TemplateReplacement{tmpl: tmpl}, nil
}

func (t *TemplateReplacement) Render(fc FileContext) (string, error) {
	var b strings.Builder
	if err := t.tmpl.Execute(&b, fc); err != nil {
		return "", errors.Errorf("rendering template %s: %w", t.tmpl.Name(), err)
	}
	return b.String(), nil
}
