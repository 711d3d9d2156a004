package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"

	"jgrade.dev/pkg/jgrade/internal/adapter"
	m "jgrade.dev/pkg/jgrade/internal/model"
)

// DefaultSuiteFile is the suite file looked up under the source directory.
const DefaultSuiteFile = "tests.yaml"

const tupleShape = "must be (args, [optional scorer], options)"

var (
	optionKeys     = []string{"name", "max_score", "visibility", "timeout", "number", "tags"}
	testEntryKeys  = append([]string{"args", "scorer"}, optionKeys...)
	scorerKeys     = []string{"kind", "substring", "ignore_case", "hit_score", "hit_feedback", "miss_score", "miss_feedback", "command", "timeout"}
	checkStyleKeys = []string{"config_file", "file_regex", "max_score", "eval_function"}
)

// SuiteLoader reads and validates suite files.
type SuiteLoader interface {
	// Load reads the suite file at path. Command scorers run in its directory.
	Load(path m.Path) (m.Suite, error)
	// Parse validates suite YAML. Every problem is a ConfigurationError.
	Parse(data []byte, dir m.Path) (m.Suite, error)
}

type suiteLoader struct {
	fsAdapter    adapter.SourceFSAdapter
	scorerRunner adapter.ScorerRunnerAdapter
}

// NewSuiteLoader constructs a SuiteLoader.
func NewSuiteLoader(fsAdapter adapter.SourceFSAdapter, scorerRunner adapter.ScorerRunnerAdapter) SuiteLoader {
	return &suiteLoader{fsAdapter: fsAdapter, scorerRunner: scorerRunner}
}

type suiteDocument struct {
	EntryPoint yaml.Node `yaml:"entry_point"`
	Classpath  yaml.Node `yaml:"classpath"`
	Tests      yaml.Node `yaml:"tests"`
	CheckStyle yaml.Node `yaml:"check_style"`
}

type optionsEntry struct {
	Name       string   `yaml:"name"`
	MaxScore   *float64 `yaml:"max_score"`
	Visibility string   `yaml:"visibility"`
	Timeout    *float64 `yaml:"timeout"`
	Number     string   `yaml:"number"`
	Tags       []string `yaml:"tags"`
}

type scorerEntry struct {
	Kind         string    `yaml:"kind"`
	Substring    string    `yaml:"substring"`
	IgnoreCase   bool      `yaml:"ignore_case"`
	HitScore     *float64  `yaml:"hit_score"`
	HitFeedback  string    `yaml:"hit_feedback"`
	MissScore    *float64  `yaml:"miss_score"`
	MissFeedback string    `yaml:"miss_feedback"`
	Command      yaml.Node `yaml:"command"`
	Timeout      *float64  `yaml:"timeout"`
}

func (l *suiteLoader) Load(path m.Path) (m.Suite, error) {
	data, err := l.fsAdapter.ReadFile(path)
	if err != nil {
		return m.Suite{}, wrapConfigError(err, "Could not read the suite file %s", path)
	}

	return l.Parse(data, m.Path(filepath.Dir(string(path))))
}

func (l *suiteLoader) Parse(data []byte, dir m.Path) (m.Suite, error) {
	var doc suiteDocument

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return m.Suite{}, configErrorf("The suite file is empty.")
		}

		return m.Suite{}, wrapConfigError(err, "The suite file is not valid")
	}

	entryPoint, err := parseEntryPoint(&doc.EntryPoint)
	if err != nil {
		return m.Suite{}, err
	}

	classpath, err := optionalString(&doc.Classpath, "classpath")
	if err != nil {
		return m.Suite{}, err
	}

	tests, err := l.parseTests(&doc.Tests, dir)
	if err != nil {
		return m.Suite{}, err
	}

	style, err := parseCheckStyle(&doc.CheckStyle)
	if err != nil {
		return m.Suite{}, err
	}

	return m.Suite{
		EntryPoint: entryPoint,
		Classpath:  classpath,
		Tests:      tests,
		Style:      style,
	}, nil
}

func parseEntryPoint(node *yaml.Node) (string, error) {
	if isAbsent(node) {
		return "", configErrorf("entry_point not found in the suite file.")
	}

	if !isString(node) {
		return "", configErrorf("entry_point must be a string.")
	}

	name := strings.TrimSpace(node.Value)

	switch {
	case name == "":
		return "", configErrorf("entry_point must not be empty.")
	case strings.Contains(name, "/"):
		return "", configErrorf("entry_point must be a file name, not a path.")
	}

	return name, nil
}

func (l *suiteLoader) parseTests(node *yaml.Node, dir m.Path) ([]m.TestCase, error) {
	if isAbsent(node) {
		return nil, configErrorf("tests not found in the suite file.")
	}

	node = resolveAlias(node)
	if node.Kind != yaml.SequenceNode {
		return nil, configErrorf("tests must be a list of test configurations.")
	}

	tests := make([]m.TestCase, 0, len(node.Content))

	for i, entry := range node.Content {
		test, err := l.parseTest(resolveAlias(entry), dir)
		if err != nil {
			return nil, &ConfigurationError{Message: fmt.Sprintf("Invalid test configuration at tests[%d]", i), Err: err}
		}

		tests = append(tests, test)
	}

	return tests, nil
}

func (l *suiteLoader) parseTest(node *yaml.Node, dir m.Path) (m.TestCase, error) {
	var argsNode, scorerNode, optionsNode *yaml.Node

	switch node.Kind {
	case yaml.MappingNode:
		if err := checkKeys(node, testEntryKeys); err != nil {
			return nil, err
		}

		argsNode, scorerNode, optionsNode = lookup(node, "args"), lookup(node, "scorer"), node
	case yaml.SequenceNode:
		switch len(node.Content) {
		case 2:
			argsNode, optionsNode = node.Content[0], node.Content[1]
		case 3:
			argsNode, scorerNode, optionsNode = node.Content[0], node.Content[1], node.Content[2]
		default:
			return nil, configErrorf(tupleShape)
		}

		optionsNode = resolveAlias(optionsNode)
		if optionsNode.Kind != yaml.MappingNode {
			return nil, configErrorf(tupleShape)
		}

		if err := checkKeys(optionsNode, optionKeys); err != nil {
			return nil, err
		}
	default:
		return nil, configErrorf("must be a mapping or a list")
	}

	if isAbsent(argsNode) || !isString(argsNode) {
		return nil, configErrorf("args must be a string")
	}

	args := resolveAlias(argsNode).Value

	opts, err := parseOptions(optionsNode)
	if err != nil {
		return nil, err
	}

	if isAbsent(scorerNode) {
		return m.SimpleCase{Arguments: args, Opts: opts}, nil
	}

	scorer, err := l.parseScorer(resolveAlias(scorerNode), dir)
	if err != nil {
		return nil, err
	}

	return m.ScoredCase{Arguments: args, Scorer: scorer, Opts: opts}, nil
}

func parseOptions(node *yaml.Node) (m.TestOptions, error) {
	var entry optionsEntry
	if err := node.Decode(&entry); err != nil {
		return m.TestOptions{}, wrapConfigError(err, "invalid test options")
	}

	opts := m.DefaultTestOptions()
	opts.Name = entry.Name
	opts.Number = entry.Number
	opts.Tags = entry.Tags

	if entry.MaxScore != nil {
		if !isNonNegative(*entry.MaxScore) {
			return m.TestOptions{}, configErrorf("max_score must be a non-negative number")
		}

		opts.MaxScore = *entry.MaxScore
	}

	if entry.Visibility != "" {
		visibility := m.Visibility(entry.Visibility)
		if !visibility.Valid() {
			return m.TestOptions{}, configErrorf("visibility must be one of visible, hidden, after_due_date or after_published, got %q", entry.Visibility)
		}

		opts.Visibility = visibility
	}

	if entry.Timeout != nil {
		timeout, err := parseSeconds(*entry.Timeout, "timeout")
		if err != nil {
			return m.TestOptions{}, err
		}

		opts.Timeout = timeout
	}

	return opts, nil
}

func (l *suiteLoader) parseScorer(node *yaml.Node, dir m.Path) (m.Scorer, error) {
	if node.Kind == yaml.ScalarNode {
		switch node.Value {
		case ScorerExact:
			return ExactScorer{}, nil
		case ScorerNormalized:
			return NormalizedScorer{}, nil
		case ScorerContains, ScorerCommand:
			return nil, configErrorf("scorer %q needs a mapping with its settings", node.Value)
		default:
			return nil, configErrorf("unknown scorer kind %q", node.Value)
		}
	}

	if node.Kind != yaml.MappingNode {
		return nil, configErrorf("scorer must be a scorer kind or a mapping")
	}

	if err := checkKeys(node, scorerKeys); err != nil {
		return nil, err
	}

	var entry scorerEntry
	if err := node.Decode(&entry); err != nil {
		return nil, wrapConfigError(err, "invalid scorer settings")
	}

	switch entry.Kind {
	case ScorerExact:
		return ExactScorer{}, nil
	case ScorerNormalized:
		return NormalizedScorer{}, nil
	case ScorerContains:
		return buildContainsScorer(entry)
	case ScorerCommand:
		return l.buildCommandScorer(entry, dir)
	case "":
		return nil, configErrorf("scorer.kind is required")
	default:
		return nil, configErrorf("unknown scorer kind %q", entry.Kind)
	}
}

func buildContainsScorer(entry scorerEntry) (m.Scorer, error) {
	if entry.Substring == "" {
		return nil, configErrorf("contains scorer needs a substring")
	}

	scorer := &ContainsScorer{
		Substring:  entry.Substring,
		IgnoreCase: entry.IgnoreCase,
		Hit:        m.ScoreResult{Percentage: 1, Feedback: entry.HitFeedback},
		Miss:       m.ScoreResult{Percentage: 0, Feedback: entry.MissFeedback},
	}

	if entry.HitScore != nil {
		scorer.Hit.Percentage = *entry.HitScore
	}

	if entry.MissScore != nil {
		scorer.Miss.Percentage = *entry.MissScore
	}

	if err := validateScoreResult(scorer.Name(), scorer.Hit); err != nil {
		return nil, err
	}

	if err := validateScoreResult(scorer.Name(), scorer.Miss); err != nil {
		return nil, err
	}

	return scorer, nil
}

func (l *suiteLoader) buildCommandScorer(entry scorerEntry, dir m.Path) (m.Scorer, error) {
	var command []string

	node := resolveAlias(&entry.Command)

	switch {
	case isAbsent(node):
	case node.Kind == yaml.ScalarNode:
		tokens, err := shlex.Split(node.Value)
		if err != nil {
			return nil, wrapConfigError(err, "command scorer has an invalid command %q", node.Value)
		}

		command = tokens
	case node.Kind == yaml.SequenceNode:
		if err := node.Decode(&command); err != nil {
			return nil, wrapConfigError(err, "command scorer has an invalid command")
		}
	default:
		return nil, configErrorf("command scorer command must be a string or a list")
	}

	if len(command) == 0 || command[0] == "" {
		return nil, configErrorf("command scorer needs a command")
	}

	var timeout time.Duration

	if entry.Timeout != nil {
		parsed, err := parseSeconds(*entry.Timeout, "scorer.timeout")
		if err != nil {
			return nil, err
		}

		timeout = parsed
	}

	return NewCommandScorer(l.scorerRunner, command, dir, timeout), nil
}

func parseCheckStyle(node *yaml.Node) (*m.StyleCheckConfig, error) {
	if isAbsent(node) {
		return nil, nil
	}

	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil, configErrorf("check_style must be a mapping.")
	}

	if err := checkKeys(node, checkStyleKeys); err != nil {
		return nil, &ConfigurationError{Message: "Invalid check_style configuration", Err: err}
	}

	if !isAbsent(lookup(node, "eval_function")) {
		return nil, configErrorf("check_style.eval_function is not supported.")
	}

	configFile, err := optionalString(lookup(node, "config_file"), "check_style.config_file")
	if err != nil {
		return nil, err
	}

	fileRegex, err := optionalString(lookup(node, "file_regex"), "check_style.file_regex")
	if err != nil {
		return nil, err
	}

	if fileRegex == "" {
		fileRegex = m.DefaultStyleFileRegex
	}

	if _, err := regexp.Compile(fileRegex); err != nil {
		return nil, wrapConfigError(err, "check_style.file_regex %q is not a valid regular expression", fileRegex)
	}

	maxNode := lookup(node, "max_score")
	if isAbsent(maxNode) {
		return nil, configErrorf("check_style.max_score is required.")
	}

	var maxScore float64
	if err := maxNode.Decode(&maxScore); err != nil || !isNonNegative(maxScore) {
		return nil, configErrorf("check_style.max_score must be a non-negative number.")
	}

	return &m.StyleCheckConfig{
		ConfigFile: configFile,
		FileRegex:  fileRegex,
		MaxScore:   maxScore,
	}, nil
}

func optionalString(node *yaml.Node, key string) (string, error) {
	if isAbsent(node) {
		return "", nil
	}

	if !isString(node) {
		return "", configErrorf("%s must be a string.", key)
	}

	return resolveAlias(node).Value, nil
}

// maxSeconds is the longest timeout a time.Duration can hold.
const maxSeconds = float64(math.MaxInt64) / float64(time.Second)

func parseSeconds(seconds float64, key string) (time.Duration, error) {
	if !(seconds > 0) || math.IsInf(seconds, 0) {
		return 0, configErrorf("%s must be a positive number of seconds", key)
	}

	if seconds*float64(time.Second) >= float64(math.MaxInt64) {
		return 0, configErrorf("%s must be less than %.0f seconds", key, maxSeconds)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

func isNonNegative(value float64) bool {
	return value >= 0 && !math.IsInf(value, 0)
}

func checkKeys(node *yaml.Node, allowed []string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i].Value; !slices.Contains(allowed, key) {
			return configErrorf("unknown key %q", key)
		}
	}

	return nil
}

func lookup(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveAlias(node.Content[i+1])
		}
	}

	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	return node
}

func isAbsent(node *yaml.Node) bool {
	node = resolveAlias(node)
	return node == nil || node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func isScalar(node *yaml.Node) bool {
	node = resolveAlias(node)
	return node != nil && node.Kind == yaml.ScalarNode
}

func isString(node *yaml.Node) bool {
	return isScalar(node) && resolveAlias(node).ShortTag() == "!!str"
}
