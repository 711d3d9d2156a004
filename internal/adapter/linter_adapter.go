package adapter

import (
	"context"
	_ "embed"
	"os"

	"github.com/pkg/errors"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

//go:embed assets/default_checks.xml
var defaultChecks []byte

// LintOutput is the raw result of one linter invocation.
type LintOutput struct {
	Command  []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// LinterAdapter runs the style tool against a single file.
type LinterAdapter interface {
	// Lint checks target with the style tool jar and configFile. An empty
	// configFile selects the bundled default checks.
	Lint(ctx context.Context, jar, configFile, target m.Path) (LintOutput, error)
}

// CheckstyleAdapter runs `java -jar <checkstyle.jar> -c <config> <file>`.
type CheckstyleAdapter struct {
	java string
}

// NewCheckstyleAdapter constructs a CheckstyleAdapter running the given java executable.
func NewCheckstyleAdapter(java string) *CheckstyleAdapter {
	return &CheckstyleAdapter{java: java}
}

// Lint runs Checkstyle once. The exit code of Checkstyle is the number of
// violations, so it is reported but never treated as failure here.
func (a *CheckstyleAdapter) Lint(ctx context.Context, jar, configFile, target m.Path) (LintOutput, error) {
	config := string(configFile)

	if config == "" {
		path, cleanup, err := writeDefaultChecks()
		if err != nil {
			return LintOutput{}, err
		}

		defer cleanup()

		config = path
	}

	args := []string{"-jar", string(jar), "-c", config, string(target)}

	res, err := runCommand(ctx, commandSpec{name: a.java, args: args})
	if err != nil {
		return LintOutput{}, err
	}

	return LintOutput{
		Command:  append([]string{a.java}, args...),
		Stdout:   res.stdout,
		Stderr:   res.stderr,
		ExitCode: res.exitCode,
	}, nil
}

func writeDefaultChecks() (string, func(), error) {
	file, err := os.CreateTemp("", "jgrade-checks-*.xml")
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to create checks file")
	}

	cleanup := func() { _ = os.Remove(file.Name()) }

	if _, err := file.Write(defaultChecks); err != nil {
		_ = file.Close()
		cleanup()

		return "", nil, errors.Wrap(err, "failed to write checks file")
	}

	if err := file.Close(); err != nil {
		cleanup()
		return "", nil, errors.Wrap(err, "failed to close checks file")
	}

	return file.Name(), cleanup, nil
}
