package text

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFileContext(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		vars      map[string]string
		wantID    string
		wantTitle string
		wantURL   string
	}{
		{
			name:      "blog_post",
			path:      "my-post.html",
			vars:      map[string]string{BaseURLVar: "https://priyanathmaji.github.io/logits/posts"},
			wantID:    "my-post",
			wantTitle: "My Post",
			wantURL:   "https://priyanathmaji.github.io/logits/posts/my-post.html",
		},
		{
			name:      "trailing_slash_base",
			path:      "/srv/site/posts/attention-is-all-you-need.html",
			vars:      map[string]string{BaseURLVar: "https://example.com/posts/"},
			wantID:    "attention-is-all-you-need",
			wantTitle: "Attention Is All You Need",
			wantURL:   "https://example.com/posts/attention-is-all-you-need.html",
		},
		{
			name:      "nested_keeps_directories",
			path:      "guides/intro.html",
			vars:      map[string]string{BaseURLVar: "https://example.com/posts"},
			wantID:    "guides/intro",
			wantTitle: "Intro",
			wantURL:   "https://example.com/posts/guides/intro.html",
		},
		{
			name:      "dollar_in_name",
			path:      "save-$5-on-gpus.html",
			vars:      map[string]string{BaseURLVar: "https://example.com/posts"},
			wantID:    "save-$5-on-gpus",
			wantTitle: "Save $5 On Gpus",
			wantURL:   "https://example.com/posts/save-$5-on-gpus.html",
		},
		{
			name:      "no_base_url",
			path:      "intro-to-LLMs.md",
			wantID:    "intro-to-LLMs",
			wantTitle: "Intro To Llms",
			wantURL:   "intro-to-LLMs.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := NewFileContext(tt.path, tt.vars)
			assert.Equal(t, tt.path, fc.Path)
			assert.Equal(t, tt.wantID, fc.ID)
			assert.Equal(t, tt.wantTitle, fc.Title)
			assert.Equal(t, tt.wantURL, fc.URL)
			assert.NotNil(t, fc.Vars)
		})
	}
}

func TestNewFileContextNestedPathsAreDistinct(t *testing.T) {
	vars := map[string]string{BaseURLVar: "https://example.com/posts"}

	a := NewFileContext(filepath.Join("a", "x.html"), vars)
	b := NewFileContext(filepath.Join("b", "x.html"), vars)

	assert.Equal(t, a.Filename, b.Filename)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.URL, b.URL)
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "My Post", TitleFromSlug("my-post"))
	assert.Equal(t, "Bleu Score Explained", TitleFromSlug("bleu--score-explained"))
	assert.Equal(t, "", TitleFromSlug(""))
}
