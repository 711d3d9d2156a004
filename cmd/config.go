package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "jgrade.dev/pkg/jgrade/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "jgrade"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	dotEnvFile = ".env"

	sourceDirFlagName     = "source-dir"
	submissionDirFlagName = "submission-dir"
	resultsDirFlagName    = "results-dir"
	logFileFlagName       = "log-file"
	verboseFlagName       = "verbose"

	sourceDirKey      = "dirs.source"
	submissionDirKey  = "dirs.submission"
	resultsDirKey     = "dirs.results"
	javacKey          = "tools.javac"
	javaKey           = "tools.java"
	styleJarKey       = "style.jar"
	styleParallelKey  = "style.parallel"
	defaultTimeoutKey = "run.default_timeout"
	compileFailureKey = "run.compile_failure"
	extraDataKey      = "report.extra_data"

	defaultSourceDir      = "/autograder/source"
	defaultSubmissionDir  = "/autograder/submission"
	defaultResultsDir     = "/autograder/results"
	defaultJavac          = "javac"
	defaultJava           = "java"
	defaultStyleJar       = "checkstyle-10.21.2-all.jar"
	defaultStyleParallel  = 1
	defaultTimeoutSeconds = 0
	defaultCompileFailure = string(m.CompileFailureFatal)
	defaultExtraData      = false

	envPrefix = "JGRADE"
	// debugEnv switches on debug logging when set to 1, independent of the prefix.
	debugEnv = "DEBUG"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".jgrade.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	loadDotEnv(dotEnvFile)

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(sourceDirKey, defaultSourceDir)
	viper.SetDefault(submissionDirKey, defaultSubmissionDir)
	viper.SetDefault(resultsDirKey, defaultResultsDir)
	viper.SetDefault(javacKey, defaultJavac)
	viper.SetDefault(javaKey, defaultJava)
	viper.SetDefault(styleJarKey, defaultStyleJar)
	viper.SetDefault(styleParallelKey, defaultStyleParallel)
	viper.SetDefault(defaultTimeoutKey, defaultTimeoutSeconds)
	viper.SetDefault(compileFailureKey, defaultCompileFailure)
	viper.SetDefault(extraDataKey, defaultExtraData)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "ignoring %s: %v\n", configFileName, err)
	}
}

// loadDotEnv exports the variables of path unless they are already set. A
// missing file is not an error.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}

	if err := godotenv.Load(path); err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s: %v\n", path, err)
	}
}

// debugEnabled reports whether DEBUG is set to a true value.
func debugEnabled() bool {
	enabled, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(debugEnv)))
	return err == nil && enabled
}

// runContextFromConfig builds the settings of one grading run from viper.
func runContextFromConfig(suiteName string) (m.RunContext, error) {
	policy := m.CompileFailurePolicy(strings.ToLower(strings.TrimSpace(viper.GetString(compileFailureKey))))
	if !policy.Valid() {
		return m.RunContext{}, fmt.Errorf("%s must be %q or %q, got %q",
			compileFailureKey, m.CompileFailureFatal, m.CompileFailureReport, viper.GetString(compileFailureKey))
	}

	timeout, err := secondsToDuration(viper.GetFloat64(defaultTimeoutKey))
	if err != nil {
		return m.RunContext{}, fmt.Errorf("%s %w", defaultTimeoutKey, err)
	}

	parallel := viper.GetInt(styleParallelKey)
	if parallel < 1 {
		return m.RunContext{}, fmt.Errorf("%s must be at least 1, got %d", styleParallelKey, parallel)
	}

	return m.RunContext{
		SourceDir:      m.Path(viper.GetString(sourceDirKey)),
		SubmissionDir:  m.Path(viper.GetString(submissionDirKey)),
		ResultsDir:     m.Path(viper.GetString(resultsDirKey)),
		SuiteName:      suiteName,
		CheckstyleJar:  viper.GetString(styleJarKey),
		DefaultTimeout: timeout,
		CompileFailure: policy,
		StyleParallel:  parallel,
		ExtraData:      viper.GetBool(extraDataKey),
	}, nil
}

// maxTimeoutSeconds is the longest timeout a time.Duration can hold.
const maxTimeoutSeconds = float64(math.MaxInt64) / float64(time.Second)

func secondsToDuration(seconds float64) (time.Duration, error) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("must be a non-negative number of seconds, got %v", seconds)
	}

	if seconds*float64(time.Second) >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("must be less than %.0f seconds, got %v", maxTimeoutSeconds, seconds)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) || debugEnabled() {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
