// Package adapter contains the infrastructure adapters of the grading engine:
// filesystem, external tools and report storage.
package adapter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

var (
	// ErrPathNotFound is returned by FindUnique when nothing matches.
	ErrPathNotFound = errors.New("path not found")
	// ErrPathAmbiguous is returned by FindUnique when more than one path matches.
	ErrPathAmbiguous = errors.New("path is ambiguous")
)

// ResolveError describes a failed FindUnique lookup.
type ResolveError struct {
	Name    string
	Root    m.Path
	Matches int
	Err     error
}

func (e *ResolveError) Error() string {
	return e.Err.Error() + ": " + e.Name + " in " + string(e.Root)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// SourceFSAdapter abstracts the filesystem operations the grading workflow
// relies on, so the domain can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// FindUnique returns the only absolute path under root that ends with name.
	// It fails with ErrPathNotFound or ErrPathAmbiguous wrapped in a *ResolveError.
	FindUnique(name string, root m.Path) (m.Path, error)

	// ListFiles returns every regular file under root whose base name matches
	// pattern from its first character.
	ListFiles(root m.Path, pattern *regexp.Regexp) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// CopyFS writes the whole tree of fsys under dst, overwriting existing files.
	CopyFS(fsys fs.FS, dst m.Path) error

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Abs returns an absolute form of path.
	Abs(path m.Path) (m.Path, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FindUnique walks root and collects files and directories whose absolute
// path ends with name on a path-element boundary.
func (a *LocalSourceFSAdapter) FindUnique(name string, root m.Path) (m.Path, error) {
	absRoot, err := filepath.Abs(string(root))
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", root)
	}

	suffix := filepath.Clean(name)

	var matches []string

	err = filepath.WalkDir(absRoot, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == absRoot {
			return nil
		}

		if matchesSuffix(path, suffix) {
			matches = append(matches, path)
		}

		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ResolveError{Name: name, Root: m.Path(absRoot), Err: ErrPathNotFound}
		}

		return "", errors.Wrapf(err, "failed to walk %s", absRoot)
	}

	switch len(matches) {
	case 1:
		return m.Path(matches[0]), nil
	case 0:
		return "", &ResolveError{Name: name, Root: m.Path(absRoot), Err: ErrPathNotFound}
	default:
		return "", &ResolveError{Name: name, Root: m.Path(absRoot), Matches: len(matches), Err: ErrPathAmbiguous}
	}
}

func matchesSuffix(path, suffix string) bool {
	if !strings.HasSuffix(path, suffix) {
		return false
	}

	if len(path) == len(suffix) || strings.HasPrefix(suffix, string(filepath.Separator)) {
		return true
	}

	return path[len(path)-len(suffix)-1] == filepath.Separator
}

// ListFiles walks root recursively and keeps regular files whose base name matches.
func (a *LocalSourceFSAdapter) ListFiles(root m.Path, pattern *regexp.Regexp) ([]m.Path, error) {
	var files []m.Path

	err := filepath.WalkDir(string(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if loc := pattern.FindStringIndex(d.Name()); loc != nil && loc[0] == 0 {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list files in %s", root)
	}

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// CopyFS copies every file of fsys below dst. Directories are created as
// needed and existing files are replaced.
func (a *LocalSourceFSAdapter) CopyFS(fsys fs.FS, dst m.Path) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		targetPath := filepath.Join(string(dst), filepath.FromSlash(path))

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0o755)
		}

		return a.copyFile(fsys, path, targetPath)
	})
}

// copyFile copies a single file, keeping shell scripts executable.
func (a *LocalSourceFSAdapter) copyFile(fsys fs.FS, src, dst string) error {
	sourceFile, err := fsys.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", src)
	}

	defer func() { _ = sourceFile.Close() }()

	mode := os.FileMode(0o644)
	if strings.HasSuffix(dst, ".sh") || filepath.Base(dst) == "run_autograder" {
		mode = 0o755
	}

	// #nosec G304 - dst is built from an embedded tree, not user input
	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return errors.Wrapf(err, "failed to copy %s", src)
	}

	return os.Chmod(dst, mode)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Abs returns the absolute form of path.
func (a *LocalSourceFSAdapter) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
