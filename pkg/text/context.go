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
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BaseURLVar is the template var joined with the file name to build URL
const BaseURLVar = "base_url"

// 📄 FileContext carries the per-file values available to templates
type FileContext struct {
	Path     string            // path as enumerated
	Filename string            // base name, e.g. my-post.html
	ID       string            // slash path below the root without extension, e.g. my-post or guides/intro
	Title    string            // display title from the base name, e.g. My Post
	URL      string            // canonical URL, base_url + "/" + slash path below the root
	Vars     map[string]string // config vars
}

// 🏗️ NewFileContext derives the template values from a path relative to the
// targets root. Nested files keep their directories in ID and URL so that
// a/x.html and b/x.html stay distinct; absolute paths only use the base name.
func NewFileContext(path string, vars map[string]string) FileContext {
	filename := filepath.Base(path)

	rel := filepath.ToSlash(filepath.Clean(path))
	if filepath.IsAbs(path) {
		rel = filename
	}
	rel = strings.TrimPrefix(rel, "./")

	url := rel
	if base := strings.TrimRight(vars[BaseURLVar], "/"); base != "" {
		url = base + "/" + rel
	}

	if vars == nil {
		vars = map[string]string{}
	}

	return FileContext{
		Path:     path,
		Filename: filename,
		ID:       strings.TrimSuffix(rel, filepath.Ext(rel)),
		Title:    TitleFromSlug(strings.TrimSuffix(filename, filepath.Ext(filename))),
		URL:      url,
		Vars:     vars,
	}
}

// TitleFromSlug turns "my-post" into "My Post"
func TitleFromSlug(slug string) string {
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	return cases.Title(language.English).String(strings.Join(words, " "))
}
