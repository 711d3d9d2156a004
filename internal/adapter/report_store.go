package adapter

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gowebpki/jcs"
	"github.com/kaptinlin/jsonschema"
	"github.com/pkg/errors"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

// ResultsFileName is the file Gradescope reads from the results directory.
const ResultsFileName = "results.json"

//go:embed schema/results.schema.json
var resultsSchema []byte

// ReportStore persists grading reports.
type ReportStore interface {
	// SaveReport validates report and writes it to dir/results.json,
	// creating dir when needed. It returns the written path.
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	// LoadReport reads a previously written report.
	LoadReport(path m.Path) (m.Report, error)
}

// LocalReportStore writes canonical (RFC 8785) JSON files.
type LocalReportStore struct {
	once      sync.Once
	schema    *jsonschema.Schema
	schemaErr error
}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

func (s *LocalReportStore) compiledSchema() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true

		s.schema, s.schemaErr = compiler.Compile(resultsSchema)
		if s.schemaErr != nil {
			s.schemaErr = errors.Wrap(s.schemaErr, "compile results schema")
		}
	})

	return s.schema, s.schemaErr
}

// Validate checks encoded report JSON against the results schema.
func (s *LocalReportStore) Validate(data []byte) error {
	schema, err := s.compiledSchema()
	if err != nil {
		return err
	}

	result := schema.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}

	return fmt.Errorf("results schema validation failed: %v", result.Errors)
}

// SaveReport implements ReportStore.
func (s *LocalReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if report.Tests == nil {
		report.Tests = []m.TestResult{}
	}

	data, err := json.Marshal(report)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode report")
	}

	if err := s.Validate(data); err != nil {
		return "", err
	}

	canonical, err := jcs.Transform(data)
	if err != nil {
		return "", errors.Wrap(err, "failed to canonicalize report")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", dir)
	}

	path := filepath.Join(string(dir), ResultsFileName)
	if err := os.WriteFile(path, canonical, 0o600); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	return m.Path(path), nil
}

// LoadReport implements ReportStore.
func (s *LocalReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, errors.Wrapf(err, "failed to read %s", path)
	}

	if err := s.Validate(data); err != nil {
		return m.Report{}, err
	}

	var report m.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return m.Report{}, errors.Wrapf(err, "failed to decode %s", path)
	}

	return report, nil
}
