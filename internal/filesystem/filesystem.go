// Package filesystem resolves paths against the directory of the input file,
// expands include patterns into file lists and writes the output file.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/taigrr/lintlist/internal/pathfilter"
	"github.com/taigrr/lintlist/internal/types"
)

var (
	// ErrNotFound is returned when the directory an expansion starts from
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoMatch is returned when an expansion matched no files.
	ErrNoMatch = errors.New("no matching files")
)

// Service provides file system operations relative to a base directory.
type Service struct {
	basePath string
}

// New creates a Service rooted at basePath.
func New(basePath string) *Service {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		absPath = filepath.Clean(basePath)
	}
	return &Service{basePath: absPath}
}

// ResolvePath returns the absolute, cleaned form of path. Relative paths are
// taken relative to the base directory and may point outside it.
func (s *Service) ResolvePath(path string) string {
	path = pathfilter.Normalize(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.basePath, path)
}

// IsDirectory reports whether path resolves to an existing directory.
func (s *Service) IsDirectory(path string) bool {
	info, err := os.Stat(s.ResolvePath(path))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Expand recursively lists the files matched by arg. An empty arg is an
// error rather than the whole base directory. If arg names an existing
// directory every file below it matches; otherwise the final path element is a
// name pattern applied in its directory and all subdirectories.
//
// Within each directory matching files come first, in lexical order, followed
// by the contents of its subdirectories.
func (s *Service) Expand(arg string) (types.Expansion, error) {
	if strings.TrimSpace(arg) == "" {
		return types.Expansion{}, fmt.Errorf("empty pattern: %w", ErrNotFound)
	}

	var pattern pathfilter.Pattern
	if s.IsDirectory(arg) {
		pattern = pathfilter.All(s.ResolvePath(arg))
	} else {
		p, err := pathfilter.Split(arg)
		if err != nil {
			return types.Expansion{}, err
		}
		p.Dir = s.ResolvePath(p.Dir)
		pattern = p
	}

	var files []string
	if err := walk(pattern.Dir, pattern, &files); err != nil {
		return types.Expansion{}, err
	}
	if len(files) == 0 {
		return types.Expansion{}, fmt.Errorf("%s: %w", arg, ErrNoMatch)
	}

	return types.Expansion{
		Pattern: arg,
		Base:    pattern.Dir,
		Name:    pattern.Name,
		Files:   files,
	}, nil
}

func walk(dir string, pattern pathfilter.Pattern, files *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("directory not found: %s: %w", dir, ErrNotFound)
		}
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("permission denied: %s - %w", dir, err)
		}
		return fmt.Errorf("failed to list directory: %s - %w", dir, err)
	}

	var subdirs []string
	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(fullPath)
			if err != nil {
				// dangling link
				continue
			}
			if info.IsDir() {
				// Linked directories are not descended into.
				continue
			}
		}

		if isDir {
			subdirs = append(subdirs, fullPath)
			continue
		}
		if pattern.Match(entry.Name()) {
			*files = append(*files, fullPath)
		}
	}

	for _, sub := range subdirs {
		if err := walk(sub, pattern, files); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile atomically replaces the file at path with the contents of r,
// creating missing parent directories. Relative paths resolve against the
// base directory. A new file gets mode 0644; an existing file keeps its mode.
func (s *Service) WriteFile(path string, r io.Reader) error {
	fullPath := s.ResolvePath(path)
	dir := filepath.Dir(fullPath)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pathError("create directory", dir, err)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(fullPath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*")
	if err != nil {
		return pathError("create temp file", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := writeTemp(tmp, r, mode); err != nil {
		return pathError("write file", path, err)
	}

	if err := atomic.ReplaceFile(tmpName, fullPath); err != nil {
		return fmt.Errorf("failed to replace file: %s - %w", path, err)
	}

	return nil
}

func writeTemp(f *os.File, r io.Reader, mode fs.FileMode) error {
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func pathError(op, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("permission denied: %s - %w", path, err)
	}
	return fmt.Errorf("failed to %s: %s - %w", op, path, err)
}

// BasePath returns the base directory.
func (s *Service) BasePath() string {
	return s.basePath
}
