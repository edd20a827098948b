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
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📂 Enumerate lists the regular files under root whose names match glob,
// as slash separated paths relative to root in lexical order. Only the top
// level is scanned unless recursive is set. Symlinks count when they resolve
// to a regular file.
func Enumerate(ctx context.Context, root, glob string, recursive bool) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Errorf("%s: %w", root, ErrDirectoryNotFound)
		}
		return nil, errors.Errorf("checking target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory: %w", root, ErrDirectoryNotFound)
	}

	if !doublestar.ValidatePattern(glob) {
		return nil, errors.Errorf("invalid file glob %q", glob)
	}

	var files []string
	if recursive {
		matches, err := doublestar.Glob(os.DirFS(root), "**/"+glob, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("globbing %s: %w", root, err)
		}
		for _, match := range matches {
			if isRegularTarget(ctx, root, match) {
				files = append(files, match)
			}
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, errors.Errorf("reading target directory: %w", err)
		}
		for _, entry := range entries {
			switch {
			case entry.Type().IsRegular():
			case entry.Type()&fs.ModeSymlink != 0:
				if !isRegularTarget(ctx, root, entry.Name()) {
					continue
				}
			default:
				continue
			}
			matched, err := doublestar.Match(glob, entry.Name())
			if err != nil {
				logger.Debug().Str("pattern", glob).Str("file", entry.Name()).Err(err).Msg("error matching pattern")
				continue
			}
			if matched {
				files = append(files, entry.Name())
			}
		}
	}

	sort.Strings(files)

	logger.Debug().Str("root", root).Str("glob", glob).Bool("recursive", recursive).Int("count", len(files)).Msg("enumerated targets")

	return files, nil
}

// isRegularTarget follows symlinks; broken links and links to directories are skipped
func isRegularTarget(ctx context.Context, root, name string) bool {
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(name)))
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("file", name).Err(err).Msg("skipping unreadable target")
		return false
	}
	return info.Mode().IsRegular()
}
