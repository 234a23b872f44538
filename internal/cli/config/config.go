package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stackvity/ftdetect/pkg/filetype"
	"github.com/stackvity/ftdetect/pkg/scanner"
	"github.com/stackvity/ftdetect/pkg/scanner/cache"
)

const (
	EnvPrefix         = "FTDETECT"
	DefaultConfigName = "ftdetect"
	// keyDelimiter separates nested configuration keys. languageMappings
	// keys are file extensions, which contain viper's default delimiter.
	keyDelimiter = "::"
)

// logWriter receives every log line of the CLI.
var logWriter io.Writer = os.Stderr

// flagKeys maps command-line flag names to their configuration keys. Flags
// that are not defined on the FlagSet in use are ignored.
var flagKeys = map[string]string{
	"input":             "input",
	"verbose":           "verbose",
	"ignore":            "ignore",
	"onError":           "onError",
	"concurrency":       "concurrency",
	"cache-file":        "cacheFile",
	"cache-format":      "cacheFormat",
	"binary-mode":       "binaryMode",
	"max-bytes":         "maxContentBytes",
	"default-encoding":  "defaultEncoding",
	"engine":            "engine",
	"ruleset":           "rulesetFile",
	"skip-vendored":     "skipVendored",
	"respect-gitignore": "respectGitignore",
	"include-hidden":    "includeHidden",
	"output-format":     "outputFormat",
	"breakdown":         "breakdown",
	"condensed":         "condensed",
	"filter":            "filter",
	"no-color":          "noColor",
	"git-diff-only":     "git::diffOnly",
	"git-since":         "git::sinceRef",
	"watch-debounce":    "watch::debounce",
}

// DefineScanFlags registers the flags of the scan command on flags.
func DefineScanFlags(flags *pflag.FlagSet) {
	flags.StringP("input", "i", ".", "Directory or file to scan")
	flags.StringArray("ignore", nil, "Glob pattern to ignore (repeatable, gitignore syntax)")
	flags.String("onError", string(scanner.DefaultOnErrorMode), "Per-file error handling: continue|stop")
	flags.Int("concurrency", scanner.DefaultConcurrency, "Number of workers (0 = number of CPUs)")
	flags.Bool("no-cache", false, "Ignore cached results (results are still written)")
	flags.Bool("clear-cache", false, "Delete the cache file before scanning")
	flags.String("cache-file", "", "Cache file path (default: per-input file in the user cache directory)")
	flags.String("cache-format", cache.DefaultFormat, "Cache file format: gob|json")
	flags.String("binary-mode", string(scanner.DefaultBinaryMode), "Binary file handling: skip|error")
	flags.Int("max-bytes", scanner.DefaultMaxContentBytes, "Bytes of content read from each file")
	flags.String("default-encoding", "", "Fallback encoding for content that is not valid UTF-8")
	flags.String("engine", string(scanner.DefaultEngine), "Detection engine: ftdetect|enry")
	flags.String("ruleset", "", "YAML heuristics ruleset consulted before the built-in rules")
	flags.Bool("skip-vendored", scanner.DefaultSkipVendored, "Skip vendored paths (vendor/, node_modules/, ...)")
	flags.Bool("respect-gitignore", scanner.DefaultRespectGitignore, "Honor .gitignore files")
	flags.Bool("include-hidden", scanner.DefaultIncludeHidden, "Scan dot files and directories")
	flags.String("output-format", string(scanner.DefaultOutputFormat), "Report format: text|json|yaml")
	flags.Bool("breakdown", false, "List the files of each type")
	flags.Bool("condensed", false, "Show only the type headers of the breakdown")
	flags.StringArray("filter", nil, "Regex on type names restricting the breakdown (repeatable)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("git-diff-only", scanner.DefaultGitDiffOnly, "Only scan files changed in the working tree")
	flags.String("git-since", scanner.DefaultGitSinceRef, "Only scan files changed since the given commit, tag or branch")
	flags.Bool("watch", false, "Re-scan when files change")
	flags.Bool("no-tui", false, "Disable the interactive progress display")
	flags.String("watch-debounce", scanner.DefaultWatchDebounceString, "Delay before re-scanning after a change")
}

// Load reads the configuration from all sources (defaults, file, profile,
// env, flags) into Options and sets up the logger. It validates nothing
// beyond what unmarshalling requires; see LoadAndValidate.
func Load(cfgFile, profileName, appVersion string, verbose bool, flags *pflag.FlagSet) (scanner.Options, *slog.Logger, error) {
	var opts scanner.Options
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	tempLogger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: slog.LevelInfo}))

	setDefaults(v)

	// --- Load Config File ---
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
			v.AddConfigPath(filepath.Join(home, "."+DefaultConfigName))
		} else {
			tempLogger.Debug("Failed to get user home directory, searching the working directory only", slog.String("error", err.Error()))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) && cfgFile == "" {
			tempLogger.Debug("No configuration file found, using defaults/env/flags.")
		} else {
			configFileUsed := cfgFile
			if configFileUsed == "" {
				configFileUsed = fmt.Sprintf("searched locations for %s.yaml", DefaultConfigName)
			}
			tempLogger.Error("Error reading configuration file", slog.String("path", configFileUsed), slog.String("error", err.Error()))
			return opts, tempLogger, fmt.Errorf("error reading config file '%s': %w", configFileUsed, err)
		}
	} else {
		opts.ConfigFilePath = v.ConfigFileUsed()
	}

	// --- Apply Profile ---
	opts.ProfileName = profileName
	if profileName != "" {
		profileKey := "profiles" + keyDelimiter + profileName
		if !v.IsSet(profileKey) {
			configPath := v.ConfigFileUsed()
			if configPath == "" {
				configPath = "(no config file found)"
			}
			err := fmt.Errorf("profile '%s' not found in config file '%s'", profileName, configPath)
			tempLogger.Error(err.Error())
			return opts, tempLogger, err
		}
		profileSettings := v.GetStringMap(profileKey)
		if len(profileSettings) == 0 {
			err := fmt.Errorf("failed to load profile '%s' settings from config file '%s'", profileName, v.ConfigFileUsed())
			tempLogger.Error(err.Error())
			return opts, tempLogger, err
		}
		if err := v.MergeConfigMap(profileSettings); err != nil {
			tempLogger.Error("Error merging profile", slog.String("profile", profileName), slog.String("error", err.Error()))
			return opts, tempLogger, fmt.Errorf("error merging profile '%s': %w", profileName, err)
		}
	}

	// --- Bind Environment Variables ---
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_", "-", "_"))
	v.AutomaticEnv()

	// --- Bind Flags (Highest Priority) ---
	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				tempLogger.Error("Error binding flag", slog.String("flag", name), slog.String("error", err.Error()))
				return opts, tempLogger, fmt.Errorf("error binding flag '--%s': %w", name, err)
			}
		}
	}

	opts.AppVersion = appVersion
	if err := v.Unmarshal(&opts); err != nil {
		tempLogger.Error("Error unmarshalling configuration", slog.String("error", err.Error()))
		return opts, tempLogger, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Flag-only switches.
	if flags != nil {
		if flags.Changed("verbose") {
			opts.Verbose, _ = flags.GetBool("verbose")
		}
		if flags.Lookup("no-cache") != nil {
			opts.IgnoreCacheRead, _ = flags.GetBool("no-cache")
		}
		if flags.Lookup("clear-cache") != nil {
			opts.ClearCache, _ = flags.GetBool("clear-cache")
		}
		if flags.Lookup("watch") != nil {
			opts.WatchMode, _ = flags.GetBool("watch")
		}
	}
	if verbose {
		opts.Verbose = true
	}

	// --- Setup Final Logger ---
	// Warnings and errors only unless verbose.
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logHandler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(logHandler)
	opts.Logger = logHandler

	if opts.ConfigFilePath != "" {
		logger.Debug("Using configuration file", slog.String("path", opts.ConfigFilePath))
	}
	if opts.ProfileName != "" {
		logger.Debug("Applied configuration profile", slog.String("profile", opts.ProfileName))
	}
	return opts, logger, nil
}

// LoadAndValidate loads configuration from all sources, validates the merged
// configuration and derives the values the scanner needs (debounce duration,
// Git diff mode, absolute input path). Errors from validation wrap
// scanner.ErrConfigValidation.
func LoadAndValidate(cfgFile, profileName, appVersion string, verbose bool, flags *pflag.FlagSet) (scanner.Options, *slog.Logger, error) {
	opts, logger, err := Load(cfgFile, profileName, appVersion, verbose, flags)
	if err != nil {
		return opts, logger, err
	}

	debounce, err := time.ParseDuration(opts.WatchConfig.Debounce)
	if err != nil {
		if flags != nil && flags.Changed("watch-debounce") {
			err = fmt.Errorf("%w: invalid watch debounce duration '%s': %w", scanner.ErrConfigValidation, opts.WatchConfig.Debounce, err)
			logger.Error(err.Error(), slog.String("key", "watch.debounce"))
			return opts, logger, err
		}
		logger.Warn("Could not parse watch.debounce string, using default",
			slog.String("value", opts.WatchConfig.Debounce),
			slog.Duration("default", scanner.DefaultWatchDebounceDuration),
			slog.String("error", err.Error()))
		debounce = scanner.DefaultWatchDebounceDuration
	}
	if debounce < 0 {
		err = fmt.Errorf("%w: invalid negative watch debounce duration '%s' for key 'watch.debounce'", scanner.ErrConfigValidation, opts.WatchConfig.Debounce)
		logger.Error(err.Error())
		return opts, logger, err
	}
	opts.WatchDebounce = debounce

	if err := validateAndDeriveOptions(&opts, logger); err != nil {
		return opts, logger, err
	}

	logger.Debug("Configuration loading and validation complete",
		slog.String("configFile", opts.ConfigFilePath),
		slog.String("profile", opts.ProfileName),
		slog.String("input", opts.InputPath),
		slog.String("engine", string(opts.Engine)),
		slog.String("gitDiffMode", string(opts.GitDiffMode)),
		slog.Duration("watchDebounce", opts.WatchDebounce),
	)
	return opts, logger, nil
}

// setDefaults establishes the default values for configuration options in Viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", scanner.DefaultVerbose)
	v.SetDefault("onError", string(scanner.DefaultOnErrorMode))

	v.SetDefault("concurrency", scanner.DefaultConcurrency)
	v.SetDefault("cache", scanner.DefaultCacheEnabled)
	v.SetDefault("cacheFile", "")
	v.SetDefault("cacheFormat", cache.DefaultFormat)

	v.SetDefault("ignore", []string{})
	v.SetDefault("binaryMode", string(scanner.DefaultBinaryMode))
	v.SetDefault("maxContentBytes", scanner.DefaultMaxContentBytes)
	v.SetDefault("defaultEncoding", "")
	v.SetDefault("languageMappings", map[string]string{})
	v.SetDefault("skipVendored", scanner.DefaultSkipVendored)
	v.SetDefault("respectGitignore", scanner.DefaultRespectGitignore)
	v.SetDefault("includeHidden", scanner.DefaultIncludeHidden)

	v.SetDefault("engine", string(scanner.DefaultEngine))
	v.SetDefault("rulesetFile", "")

	v.SetDefault("outputFormat", string(scanner.DefaultOutputFormat))
	v.SetDefault("breakdown", false)
	v.SetDefault("condensed", false)
	v.SetDefault("filter", []string{})
	v.SetDefault("noColor", false)

	v.SetDefault("watch::debounce", scanner.DefaultWatchDebounceString)
	v.SetDefault("git::diffOnly", scanner.DefaultGitDiffOnly)
	v.SetDefault("git::sinceRef", scanner.DefaultGitSinceRef)
}

// isValidEnumValue checks if a given string value is present in a slice of allowed enum values.
// Case-sensitive comparison.
func isValidEnumValue[T ~string](value T, allowedValues []T) bool {
	return slices.Contains(allowedValues, value)
}

// validateAndDeriveOptions performs semantic validation on the populated
// Options and calculates derived fields. It wraps errors with
// scanner.ErrConfigValidation.
func validateAndDeriveOptions(opts *scanner.Options, logger *slog.Logger) error {
	fail := func(key string, err error) error {
		logger.Error(err.Error(), slog.String("key", key))
		return err
	}

	// === Path Validations ===
	if opts.InputPath == "" {
		return fail("input", fmt.Errorf("%w: input path is required (-i, --input)", scanner.ErrConfigValidation))
	}
	absInput, err := filepath.Abs(opts.InputPath)
	if err != nil {
		return fail("input", fmt.Errorf("%w: cannot resolve absolute input path '%s': %w", scanner.ErrConfigValidation, opts.InputPath, err))
	}
	opts.InputPath = absInput
	info, err := os.Stat(opts.InputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fail("input", fmt.Errorf("%w: input path '%s' does not exist", scanner.ErrConfigValidation, opts.InputPath))
		}
		return fail("input", fmt.Errorf("%w: cannot access input path '%s': %w", scanner.ErrConfigValidation, opts.InputPath, err))
	}
	if opts.WatchMode && !info.IsDir() {
		return fail("input", fmt.Errorf("%w: watch mode requires a directory, '%s' is a file", scanner.ErrConfigValidation, opts.InputPath))
	}
	if opts.RulesetFile != "" {
		if opts.RulesetFile, err = filepath.Abs(opts.RulesetFile); err != nil {
			return fail("rulesetFile", fmt.Errorf("%w: cannot resolve ruleset path: %w", scanner.ErrConfigValidation, err))
		}
	}

	// === Enum String Validations ===
	allowedOnError := []scanner.OnErrorMode{scanner.OnErrorContinue, scanner.OnErrorStop}
	if !isValidEnumValue(opts.OnErrorMode, allowedOnError) {
		return fail("onError", fmt.Errorf("%w: invalid value '%s' for key 'onError' (flag --onError). Allowed: %v", scanner.ErrConfigValidation, opts.OnErrorMode, allowedOnError))
	}
	allowedBinaryMode := []scanner.BinaryMode{scanner.BinarySkip, scanner.BinaryError}
	if !isValidEnumValue(opts.BinaryMode, allowedBinaryMode) {
		return fail("binaryMode", fmt.Errorf("%w: invalid value '%s' for key 'binaryMode' (flag --binary-mode). Allowed: %v", scanner.ErrConfigValidation, opts.BinaryMode, allowedBinaryMode))
	}
	allowedOutputFormat := []scanner.OutputFormat{scanner.OutputFormatText, scanner.OutputFormatJSON, scanner.OutputFormatYAML}
	if !isValidEnumValue(opts.OutputFormat, allowedOutputFormat) {
		return fail("outputFormat", fmt.Errorf("%w: invalid value '%s' for key 'outputFormat' (flag --output-format). Allowed: %v", scanner.ErrConfigValidation, opts.OutputFormat, allowedOutputFormat))
	}
	allowedEngines := []scanner.EngineName{scanner.EngineFtdetect, scanner.EngineEnry}
	if !isValidEnumValue(opts.Engine, allowedEngines) {
		return fail("engine", fmt.Errorf("%w: invalid value '%s' for key 'engine' (flag --engine). Allowed: %v", scanner.ErrConfigValidation, opts.Engine, allowedEngines))
	}
	allowedCacheFormats := []string{cache.FormatGob, cache.FormatJSON}
	if !isValidEnumValue(opts.CacheFormat, allowedCacheFormats) {
		return fail("cacheFormat", fmt.Errorf("%w: invalid value '%s' for key 'cacheFormat' (flag --cache-format). Allowed: %v", scanner.ErrConfigValidation, opts.CacheFormat, allowedCacheFormats))
	}

	// === Numeric Range Validations ===
	if opts.Concurrency < 0 {
		return fail("concurrency", fmt.Errorf("%w: invalid value '%d' for key 'concurrency' (flag --concurrency). Must be >= 0", scanner.ErrConfigValidation, opts.Concurrency))
	}
	if opts.MaxContentBytes <= 0 {
		return fail("maxContentBytes", fmt.Errorf("%w: invalid value '%d' for key 'maxContentBytes' (flag --max-bytes). Must be > 0", scanner.ErrConfigValidation, opts.MaxContentBytes))
	}

	// === Type Names and Patterns ===
	for ext, name := range opts.LanguageMappings {
		if _, err := filetype.Parse(name); err != nil {
			return fail("languageMappings", fmt.Errorf("%w: languageMappings[%q]: %w", scanner.ErrConfigValidation, ext, err))
		}
	}
	for _, f := range opts.Filter {
		if _, err := regexp.Compile(f); err != nil {
			return fail("filter", fmt.Errorf("%w: invalid filter %q: %w", scanner.ErrConfigValidation, f, err))
		}
	}

	// === Git Diff Mode ===
	opts.GitDiffMode = scanner.GitDiffModeNone
	switch {
	case opts.GitConfig.DiffOnly && opts.GitConfig.SinceRef != "":
		return fail("git", fmt.Errorf("%w: cannot use git diff-only and git since modes simultaneously", scanner.ErrConfigValidation))
	case opts.GitConfig.DiffOnly:
		opts.GitDiffMode = scanner.GitDiffModeDiffOnly
	case opts.GitConfig.SinceRef != "":
		opts.GitDiffMode = scanner.GitDiffModeSince
	}

	logger.Debug("Final derived settings validated",
		slog.Int("concurrency", opts.Concurrency),
		slog.Bool("cacheEnabled", opts.CacheEnabled),
		slog.String("gitDiffMode", string(opts.GitDiffMode)),
		slog.String("sinceRef", opts.GitConfig.SinceRef),
	)
	return nil
}
