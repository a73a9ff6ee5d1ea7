// Package commands implements the CLI commands for skillmeta.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillmeta/cmd"
	"github.com/thoreinstein/skillmeta/internal/config"
	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/internal/logging"
	"github.com/thoreinstein/skillmeta/internal/paths"
	"github.com/thoreinstein/skillmeta/internal/skill"
)

// platformFlag holds the value of the --platform flag.
var platformFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// strictFlag holds the value of the --strict flag.
var strictFlag bool

// configPath holds the value of the --config flag.
var configPath string

// cfg is the loaded configuration, set by initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&platformFlag, "platform", "p", "",
		"scan the skill directory of a platform: "+strings.Join(paths.Platforms(), ", "))
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false,
		"fail on malformed frontmatter instead of treating it as empty")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./config.yaml, then $XDG_CONFIG_HOME/skillmeta/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("skillmeta version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configPath)
}

var rootCmd = &cobra.Command{
	Use:   "skillmeta",
	Short: "Discover skills and read their SKILL.md metadata",
	Long: `skillmeta finds SKILL.md files in a directory tree and reads the flat
frontmatter block at the top of each one.

Frontmatter is parsed line by line as "key: value" pairs. Indented lines
continue the previous value, and list fields such as tags may be written
inline ([a, b]) or as "- item" lines.

By default malformed frontmatter is treated as empty. Use --strict to
report it instead.`,
	Example: `  # List skills under the current directory
  skillmeta list

  # List the skills installed for Claude Code
  skillmeta list --platform claude

  # Check skills before publishing them
  skillmeta validate skills/pdf skills/docx

  # Write a catalog of every skill
  skillmeta index ./skills -o catalog.json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	format, ok := logging.ParseFormat(logFormat)
	if !ok {
		return errors.NewUserError(errors.Newf("invalid log format %q", logFormat),
			"Use --log-format text or --log-format json")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("SKILLMETA_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{logging.NewHandlerFor(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports config load and validation errors, and rejects an
// unknown --platform.
func checkConfig(cmd *cobra.Command) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if used := config.Used(); used != "" {
		logging.FromContext(cmd.Context()).Debug("loaded config", "path", used)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return errors.NewConfigError(errors.Wrap(errors.ErrInvalidConfig, strings.Join(msgs, "; ")))
	}

	if platformFlag != "" && !paths.ValidPlatform(platformFlag) {
		err := errors.Newf("invalid platform: %s (valid: %s)",
			platformFlag, strings.Join(paths.Platforms(), ", "))
		return errors.NewUserError(err, "Run 'skillmeta --help' to see valid platforms")
	}

	return nil
}

// resolveRoot picks the directory to scan: an explicit argument, then
// --platform, then the configured platform, then the configured root.
func resolveRoot(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	platform := platformFlag
	if platform == "" {
		platform = cfg.Platform
	}
	if platform != "" {
		root, err := paths.SkillRoot(platform)
		if err != nil {
			return "", errors.NewSystemError(err, "")
		}
		return root, nil
	}

	if cfg.Root != "" {
		return cfg.Root, nil
	}
	return ".", nil
}

// strictMode reports whether frontmatter should be parsed strictly.
func strictMode() bool {
	return strictFlag || cfg.Strict
}

// newLoader returns a skill loader configured from flags and config.
func newLoader(strict bool) *skill.Loader {
	return skill.NewLoader(
		skill.WithStrict(strict),
		skill.WithListFields(cfg.ListFields...),
	)
}

// scanSkills loads every skill under root, logging and skipping failures.
func scanSkills(cmd *cobra.Command, root string) ([]*skill.Skill, error) {
	scanner := skill.NewScanner(newLoader(strictMode()), logging.FromContext(cmd.Context()))
	skills, err := scanner.Scan(root)
	if err != nil {
		return nil, errors.NewUserError(errors.Wrapf(err, "scanning %s", root),
			"Check that the directory exists and is readable")
	}
	return skills, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
