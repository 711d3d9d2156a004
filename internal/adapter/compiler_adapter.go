package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

// CompileError reports a compiler that ran and rejected the sources.
type CompileError struct {
	ExitCode    int
	Diagnostics string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation failed (%d)", e.ExitCode)
}

// CompilerAdapter compiles a Java source tree.
type CompilerAdapter interface {
	// Compile compiles every .java file found recursively in the entry
	// point's directory. An empty classpath omits the -cp flag.
	Compile(ctx context.Context, entryPoint m.Path, classpath string) error
}

// LocalCompilerAdapter invokes javac with os/exec.
type LocalCompilerAdapter struct {
	compiler string
}

// NewLocalCompilerAdapter constructs a compiler adapter for the given executable.
func NewLocalCompilerAdapter(compiler string) *LocalCompilerAdapter {
	return &LocalCompilerAdapter{compiler: compiler}
}

// Compile runs `<compiler> [-cp classpath] files...` in the entry point's directory.
func (a *LocalCompilerAdapter) Compile(ctx context.Context, entryPoint m.Path, classpath string) error {
	dir := filepath.Dir(string(entryPoint))

	files, err := javaSources(dir)
	if err != nil {
		return err
	}

	var args []string
	if classpath != "" {
		args = append(args, "-cp", classpath)
	}

	args = append(args, files...)

	res, err := runCommand(ctx, commandSpec{name: a.compiler, args: args, dir: dir})
	if err != nil {
		return err
	}

	if res.exitCode != 0 {
		diagnostics := res.stderr
		if strings.TrimSpace(diagnostics) == "" {
			diagnostics = res.stdout
		}

		return &CompileError{ExitCode: res.exitCode, Diagnostics: diagnostics}
	}

	return nil
}

func javaSources(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && filepath.Ext(path) == ".java" {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to collect sources in %s", dir)
	}

	return files, nil
}
