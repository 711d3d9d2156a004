package adapter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

// ArchiveAdapter packages a directory tree.
type ArchiveAdapter interface {
	// ZipDir writes every file under src into the zip archive dst, with
	// paths relative to src. Directories named in skip are left out.
	ZipDir(src, dst m.Path, skip []string) error
}

// LocalArchiveAdapter writes deflate-compressed zip files.
type LocalArchiveAdapter struct{}

// NewLocalArchiveAdapter constructs a LocalArchiveAdapter.
func NewLocalArchiveAdapter() *LocalArchiveAdapter {
	return &LocalArchiveAdapter{}
}

// ZipDir implements ArchiveAdapter.
func (a *LocalArchiveAdapter) ZipDir(src, dst m.Path, skip []string) (err error) {
	// #nosec G304 - dst is chosen by the operator
	out, err := os.Create(string(dst))
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}

	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "failed to close %s", dst)
		}
	}()

	writer := zip.NewWriter(out)

	walkErr := filepath.WalkDir(string(src), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != string(src) && slices.Contains(skip, d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		return addFile(writer, path, filepath.ToSlash(rel))
	})
	if walkErr != nil {
		_ = writer.Close()
		return errors.Wrapf(walkErr, "failed to archive %s", src)
	}

	return errors.Wrap(writer.Close(), "failed to finish archive")
}

func addFile(writer *zip.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}

	header.Name = name
	header.Method = zip.Deflate

	entry, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}

	// #nosec G304 - path comes from walking the archived tree
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer func() { _ = file.Close() }()

	_, err = io.Copy(entry, file)

	return err
}
