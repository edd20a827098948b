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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const blogPost = `<!DOCTYPE html>
<html>
<head>
  <title>My Post - Priyanath Maji</title>
</head>
<body>
  <nav>
            <a href="../index.html" class="nav-brand">Priyanath Maji</a>
  </nav>
  <main class="container">
    <article>
      <footer>
        <div class="share-section">
          <div class="share-buttons">
            <a href="#" class="share-btn">Twitter</a>
            <a href="#" class="share-btn">LinkedIn</a>
            <a href="#" class="share-btn">Facebook</a>
          </div>
        </div>
      </footer>
    </article>
  </main>
</body>
</html>
`

// 🔧 MockFileManager is a mock implementation of status.FileManager
type MockFileManager struct {
	mock.Mock
}

func (m *MockFileManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileManager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

// 📣 recordingReporter collects reported results
type recordingReporter struct {
	results []status.Result
}

func (r *recordingReporter) LogResult(ctx context.Context, res status.Result) {
	r.results = append(r.results, res)
}

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func writeTargets(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func defaultConfig(t *testing.T, root string) *config.Config {
	cfg := config.Default()
	cfg.TargetsRoot = root
	require.NoError(t, cfg.Validate())
	return cfg
}

func readTarget(t *testing.T, root, name string) string {
	b, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	return string(b)
}

func TestRunner_DefaultPipelineIsIdempotent(t *testing.T) {
	ctx := testContext(t)
	root := writeTargets(t, map[string]string{"my-post.html": blogPost})

	runner, err := NewRunner(Options{Config: defaultConfig(t, root)})
	require.NoError(t, err)
	assert.Equal(t, []string{"containers", "navbar", "titles", "comments"}, runner.Pipeline())

	first, err := runner.Run(ctx)
	require.NoError(t, err)
	require.Len(t, first.Results, 1)
	assert.Equal(t, status.OutcomeUpdated, first.Results[0].Outcome)
	assert.Len(t, first.Results[0].Applied, 9)
	assert.Equal(t, 1, first.Updated)

	updated := readTarget(t, root, "my-post.html")
	assert.Equal(t, int64(len(updated)), first.Bytes)
	assert.Contains(t, updated, `<main class="blog-container">`)
	assert.Contains(t, updated, `<div id="disqus_thread"></div>`)

	second, err := runner.Run(ctx)
	require.NoError(t, err)
	require.Len(t, second.Results, 1)
	assert.Equal(t, status.OutcomeSkipped, second.Results[0].Outcome)
	assert.Equal(t, status.ReasonNoMatch, second.Results[0].Reason)
	assert.Equal(t, updated, readTarget(t, root, "my-post.html"))
}

func TestRunner_Process(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        string
		wantOutcome status.Outcome
		wantReason  string
		wantApplied []string
	}{
		{
			name:        "container_class_only",
			content:     `<body><main class="container"><p>x</p></main></body>`,
			want:        `<body><main class="blog-container"><p>x</p></main></body>`,
			wantOutcome: status.OutcomeUpdated,
			wantApplied: []string{"containers/main-class"},
		},
		{
			name:        "navbar_attribute_order",
			content:     `<a class="nav-brand" href="../index.html">Priyanath Maji</a>`,
			want:        `<a class="nav-brand" href="../index.html">Priyanath Maji</a>`,
			wantOutcome: status.OutcomeSkipped,
			wantReason:  status.ReasonNoMatch,
		},
		{
			name:        "title_suffix",
			content:     "<title>Intro - Priyanath Maji</title>",
			want:        "<title>Intro - logits</title>",
			wantOutcome: status.OutcomeUpdated,
			wantApplied: []string{"titles/suffix"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			root := writeTargets(t, map[string]string{"post.html": tt.content})

			cfg := defaultConfig(t, root)
			cfg.RuleSets = cfg.RuleSets[:3] // containers, navbar, titles
			runner, err := NewRunner(Options{Config: cfg})
			require.NoError(t, err)

			res := runner.Process(ctx, "post.html")
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantReason, res.Reason)
			if tt.wantApplied != nil {
				assert.Equal(t, tt.wantApplied, res.Applied)
			}
			assert.NoError(t, res.Err)
			assert.Equal(t, tt.want, readTarget(t, root, "post.html"))
		})
	}
}

func TestRunner_CommentsMarkerSkipsWholeSet(t *testing.T) {
	ctx := testContext(t)
	content := "<head></head><body><div id=\"disqus_thread\"></div></body>"
	root := writeTargets(t, map[string]string{"post.html": content})

	runner, err := NewRunner(Options{Config: defaultConfig(t, root), Only: []string{"comments"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"containers", "comments"}, runner.Pipeline())

	res := runner.Process(ctx, "post.html")
	assert.Equal(t, status.OutcomeSkipped, res.Outcome)
	assert.Equal(t, content, readTarget(t, root, "post.html"))
}

func TestRunner_NoOpDoesNotWrite(t *testing.T) {
	ctx := testContext(t)
	root := writeTargets(t, map[string]string{"plain.html": "<p>nothing to see</p>"})

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	path := filepath.Join(root, "plain.html")
	require.NoError(t, os.Chtimes(path, past, past))

	runner, err := NewRunner(Options{Config: defaultConfig(t, root)})
	require.NoError(t, err)

	summary, err := runner.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "file should not be rewritten")
}

func TestRunner_UnchangedContentIsSkipped(t *testing.T) {
	ctx := testContext(t)
	root := writeTargets(t, map[string]string{"a.html": "<b>keep</b>"})

	cfg := &config.Config{
		TargetsRoot: root,
		RuleSets: []config.RuleSet{{Name: "identity", Rules: []config.Rule{
			{Name: "same", Match: "<b>", Replace: "<b>"},
		}}},
	}
	require.NoError(t, cfg.Validate())

	fm := &MockFileManager{}
	fm.On("ReadFile", mock.Anything, "a.html").Return([]byte("<b>keep</b>"), nil)

	runner, err := NewRunner(Options{Config: cfg, FileManager: fm})
	require.NoError(t, err)

	res := runner.Process(ctx, "a.html")
	assert.Equal(t, status.OutcomeSkipped, res.Outcome)
	assert.Equal(t, status.ReasonUnchanged, res.Reason)
	assert.Equal(t, []string{"identity/same"}, res.Applied)
	fm.AssertNotCalled(t, "WriteFileAtomic", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunner_WriteFailureIsRecovered(t *testing.T) {
	ctx := testContext(t)
	root := writeTargets(t, map[string]string{
		"a.html": "<title>A - Priyanath Maji</title>",
		"b.html": "<title>B - Priyanath Maji</title>",
	})

	writeErr := &status.FileError{Op: "write", Path: "a.html", Err: errors.New("disk full")}

	fm := &MockFileManager{}
	fm.On("ReadFile", mock.Anything, "a.html").Return([]byte("<title>A - Priyanath Maji</title>"), nil)
	fm.On("ReadFile", mock.Anything, "b.html").Return([]byte("<title>B - Priyanath Maji</title>"), nil)
	fm.On("WriteFileAtomic", mock.Anything, "a.html", []byte("<title>A - logits</title>")).Return(writeErr)
	fm.On("WriteFileAtomic", mock.Anything, "b.html", []byte("<title>B - logits</title>")).Return(nil)

	reporter := &recordingReporter{}
	runner, err := NewRunner(Options{Config: defaultConfig(t, root), FileManager: fm, Reporter: reporter})
	require.NoError(t, err)

	summary, err := runner.Run(ctx)
	require.NoError(t, err, "per-file failures must not abort the run")

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Updated)
	require.Len(t, summary.Results, 2)
	assert.Equal(t, "a.html", summary.Results[0].Path)
	assert.ErrorIs(t, summary.Results[0].Err, status.ErrFileIO)
	assert.Equal(t, "b.html", summary.Results[1].Path)
	assert.Equal(t, summary.Results, reporter.results)

	fm.AssertExpectations(t)

	// the real files were never touched through the mock
	assert.Equal(t, "<title>A - Priyanath Maji</title>", readTarget(t, root, "a.html"))
}

func TestRunner_EncodingFailure(t *testing.T) {
	ctx := testContext(t)
	root := writeTargets(t, map[string]string{
		"bad.html":  string([]byte{0xff, 0xfe, '<'}),
		"good.html": `<main class="container"></main>`,
	})

	runner, err := NewRunner(Options{Config: defaultConfig(t, root)})
	require.NoError(t, err)

	summary, err := runner.Run(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Results, 2)

	assert.Equal(t, status.OutcomeFailed, summary.Results[0].Outcome)
	assert.ErrorIs(t, summary.Results[0].Err, status.ErrEncoding)
	assert.Equal(t, status.OutcomeUpdated, summary.Results[1].Outcome)
}

func TestRunner_DryRun(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := testContext(t)
	root := writeTargets(t, map[string]string{"my-post.html": blogPost})

	cfg := defaultConfig(t, root)
	cfg.DryRun = true

	runner, err := NewRunner(Options{Config: cfg})
	require.NoError(t, err)

	summary, err := runner.Run(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)

	res := summary.Results[0]
	assert.Equal(t, status.OutcomeUpdated, res.Outcome)
	assert.True(t, res.DryRun)
	assert.Contains(t, res.Diff, `-  <main class="container">`)
	assert.Contains(t, res.Diff, `+  <main class="blog-container">`)
	assert.Equal(t, blogPost, readTarget(t, root, "my-post.html"), "dry run must not write")
}

func TestRunner_MissingDirectory(t *testing.T) {
	cfg := defaultConfig(t, filepath.Join(t.TempDir(), "posts"))

	runner, err := NewRunner(Options{Config: cfg})
	require.NoError(t, err)

	summary, err := runner.Run(testContext(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
	assert.Nil(t, summary)
}

func TestRunner_EnumerationOrder(t *testing.T) {
	ctx := testContext(t)

	files := map[string]string{}
	var names []string
	for _, c := range "jihgfedcba" {
		name := string(c) + ".html"
		names = append([]string{name}, names...)
		files[name] = "<title>" + strings.ToUpper(string(c)) + " - Priyanath Maji</title>"
	}
	files["notes.txt"] = "<title>x - Priyanath Maji</title>"
	root := writeTargets(t, files)

	reporter := &recordingReporter{}
	runner, err := NewRunner(Options{Config: defaultConfig(t, root), Reporter: reporter})
	require.NoError(t, err)

	summary, err := runner.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Updated)

	var got []string
	for _, res := range summary.Results {
		got = append(got, res.Path)
	}
	assert.Equal(t, names, got, "results should follow lexical order")
	assert.Equal(t, summary.Results, reporter.results)

	assert.Equal(t, "<title>C - logits</title>", readTarget(t, root, "c.html"))
	assert.Equal(t, "<title>x - Priyanath Maji</title>", readTarget(t, root, "notes.txt"))
}

func TestRunner_Cancelled(t *testing.T) {
	root := writeTargets(t, map[string]string{"a.html": "<title>A - Priyanath Maji</title>"})

	runner, err := NewRunner(Options{Config: defaultConfig(t, root)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	_, err = runner.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "<title>A - Priyanath Maji</title>", readTarget(t, root, "a.html"))
}

func TestNewRunner_Errors(t *testing.T) {
	_, err := NewRunner(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")

	cfg := defaultConfig(t, t.TempDir())
	_, err = NewRunner(Options{Config: cfg, Only: []string{"missing"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRuleSet)

	cfg.RuleSets[0].Rules[0] = config.Rule{Name: "bad", Regex: "(", Replace: "x"}
	_, err = NewRunner(Options{Config: cfg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling rules")
}
