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

package status

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrFileIO matches every per-file read or write failure
	ErrFileIO = errors.Base("file i/o failed")
	// ErrEncoding is returned for content that is not valid UTF-8; it also matches ErrFileIO
	ErrEncoding = errors.Base("content is not valid UTF-8")
)

// FileError is a per-file failure
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is makes every FileError match ErrFileIO
func (e *FileError) Is(target error) bool {
	return target == ErrFileIO
}

// 💾 FileManager handles all file system operations on targets
type FileManager interface {
	// ReadFile reads a whole UTF-8 text file
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFileAtomic replaces the file with content, or leaves it untouched on error
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 🔧 Manager implements FileManager on the local file system
type Manager struct {
	baseDir string

	rename func(oldpath, newpath string) error
}

// 🏭 New creates a manager rooted at baseDir; relative paths are resolved against it
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
		rename:  os.Rename,
	}
}

func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(content) {
		return nil, &FileError{Op: "decode", Path: path, Err: ErrEncoding}
	}
	return content, nil
}

func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	// write through symlinks so the link itself survives
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return &FileError{Op: "write", Path: path, Err: errors.Errorf("creating temp file: %w", err)}
	}
	tempPath := tmp.Name()

	cleanup := func(cause error) error {
		tmp.Close()
		if rmErr := os.Remove(tempPath); rmErr != nil && !os.IsNotExist(rmErr) {
			zerolog.Ctx(ctx).Warn().Err(rmErr).Str("temp", tempPath).Msg("removing temp file")
		}
		return &FileError{Op: "write", Path: path, Err: cause}
	}

	if _, err := tmp.Write(content); err != nil {
		return cleanup(errors.Errorf("writing temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(errors.Errorf("syncing temp file: %w", err))
	}
	if err := tmp.Chmod(mode); err != nil {
		return cleanup(errors.Errorf("setting temp file mode: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return cleanup(errors.Errorf("closing temp file: %w", err))
	}

	// rename is the commit point; before it the original is untouched
	if err := m.rename(tempPath, absPath); err != nil {
		return cleanup(errors.Errorf("renaming temp file: %w", err))
	}

	return nil
}
