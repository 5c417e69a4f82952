package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"fastgen.dev/pkg/fastgen/internal/adapter"
	"fastgen.dev/pkg/fastgen/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "fastgen"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	directivesFlagName       = "directives"
	baseDirFlagName          = "base-dir"
	markerFlagName           = "marker"
	generatorFlagName        = "generator"
	generatorArgFlagName     = "generator-arg"
	sourceExtFlagName        = "source-ext"
	outExtFlagName           = "out-ext"
	skipFlagName             = "skip"
	strictDuplicatesFlagName = "strict-duplicates"
	verboseFlagName          = "verbose"
	logFileFlagName          = "log-file"
	dryRunFlagName           = "dry-run"
	diffFlagName             = "diff"
	verifyABIFlagName        = "verify-abi"
	formatFlagName           = "format"

	directivesKey       = "paths.directives"
	baseDirKey          = "paths.base_dir"
	markerKey           = "scan.marker"
	sourceExtKey        = "scan.source_ext"
	skipKey             = "scan.skip"
	strictDuplicatesKey = "scan.strict_duplicates"
	generatorKey        = "generate.binary"
	generatorArgsKey    = "generate.args"
	outExtKey           = "generate.out_ext"

	defaultDirectivesFile = "go_generate.go"

	envPrefix = "FASTGEN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".fastgen.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr is reported by every command when fastgen.yaml exists but cannot
// be parsed.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	configErr = loadConfig()
}

// loadConfig reads fastgen.yaml from the working directory. A missing file is
// not an error.
func loadConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", configFileName, err)
}

func setConfigDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	// Empty locations are discovered from the working directory at run time.
	viper.SetDefault(directivesKey, "")
	viper.SetDefault(baseDirKey, "")
	viper.SetDefault(markerKey, domain.DefaultMarker)
	viper.SetDefault(sourceExtKey, domain.DefaultSourceExt)
	viper.SetDefault(skipKey, domain.DefaultSkip)
	viper.SetDefault(strictDuplicatesKey, false)
	viper.SetDefault(generatorKey, adapter.DefaultGenerator)
	viper.SetDefault(generatorArgsKey, []string{})
	viper.SetDefault(outExtKey, domain.DefaultOutExt)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
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
	if verbose {
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
