package domain

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"jgrade.dev/pkg/jgrade/internal/adapter"
	m "jgrade.dev/pkg/jgrade/internal/model"
)

const (
	// StyleTestName is the name of the style entry in the report.
	StyleTestName = "Style"

	auditDoneMarker = "Audit done."
	// violationPenalty is the share of the style score lost per violation.
	violationPenalty = 10
)

var violationsPattern = regexp.MustCompile(`Checkstyle ends with (\d+) errors\.`)

// StyleArgs describes one style check.
type StyleArgs struct {
	// Config is the style section of the suite. Nil disables the check.
	Config *m.StyleCheckConfig
	Jar    m.Path
	Root   m.Path
	// Parallel bounds concurrent linter runs. Values below 1 mean 1.
	Parallel int
}

// StyleChecker runs the linter over the submission and scores the result.
type StyleChecker interface {
	Check(ctx context.Context, args StyleArgs) (*m.TestResult, error)
}

type styleChecker struct {
	fsAdapter adapter.SourceFSAdapter
	linter    adapter.LinterAdapter
}

// NewStyleChecker constructs a StyleChecker.
func NewStyleChecker(fsAdapter adapter.SourceFSAdapter, linter adapter.LinterAdapter) StyleChecker {
	return &styleChecker{fsAdapter: fsAdapter, linter: linter}
}

func (s *styleChecker) Check(ctx context.Context, args StyleArgs) (*m.TestResult, error) {
	if args.Config == nil {
		return nil, nil
	}

	expr := args.Config.FileRegex
	if expr == "" {
		expr = m.DefaultStyleFileRegex
	}

	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, wrapConfigError(err, "%q is not a valid check_style.file_regex", expr)
	}

	files, err := s.fsAdapter.ListFiles(args.Root, pattern)
	if err != nil {
		return nil, fmt.Errorf("list style targets: %w", err)
	}

	counts := make([]int, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, args.Parallel))

	for i, file := range files {
		group.Go(func() error {
			out, err := s.linter.Lint(groupCtx, args.Jar, m.Path(args.Config.ConfigFile), file)
			if err != nil {
				return wrapConfigError(err, "Checkstyle could not be run on %s", file)
			}

			count, err := countViolations(out)
			if err != nil {
				return err
			}

			slog.Debug("Style checked", "file", file, "violations", count)

			counts[i] = count

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	result := styleResult(args.Config.MaxScore, total)

	return &result, nil
}

// countViolations requires the completion marker and reads the error count.
// A finished audit without a count line had no violations.
func countViolations(out adapter.LintOutput) (int, error) {
	if !strings.Contains(out.Stdout, auditDoneMarker) && !strings.Contains(out.Stderr, auditDoneMarker) {
		return 0, configErrorf("Checkstyle failed (%d):\n%s\n\nOutput:\n\n%s\n\nError:\n\n%s",
			out.ExitCode, strings.Join(out.Command, " "), out.Stdout, out.Stderr)
	}

	match := violationsPattern.FindStringSubmatch(out.Stdout + "\n" + out.Stderr)
	if match == nil {
		return 0, nil
	}

	count, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, configErrorf("Checkstyle reported an unreadable violation count %q", match[1])
	}

	return count, nil
}

// StylePercentage maps a violation count to a score share: each violation
// costs a tenth, down to zero.
func StylePercentage(violations int) float64 {
	if violations >= violationPenalty {
		return 0
	}

	return float64(violationPenalty-violations) / violationPenalty
}

func styleResult(maxScore float64, violations int) m.TestResult {
	status := m.StatusFailed
	if violations == 0 {
		status = m.StatusPassed
	}

	return m.TestResult{
		Score:      maxScore * StylePercentage(violations),
		MaxScore:   maxScore,
		Status:     status,
		Name:       StyleTestName,
		Output:     fmt.Sprintf("Style violations found: %d.", violations),
		Visibility: m.VisibilityVisible,
	}
}
