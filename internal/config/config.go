package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SKILLMETA"

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`
	// Root is the directory scanned when a command is given none.
	Root string `mapstructure:"root" yaml:"root"`
	// Platform selects a platform skill root instead of Root.
	Platform string `mapstructure:"platform" yaml:"platform"`
	// Strict enables strict frontmatter parsing.
	Strict bool `mapstructure:"strict" yaml:"strict"`
	// RequiredFields are the frontmatter keys validate requires.
	RequiredFields []string `mapstructure:"required_fields" yaml:"required_fields"`
	// ListFields are the frontmatter keys split as lists.
	ListFields []string `mapstructure:"list_fields" yaml:"list_fields"`
	// MatchDir warns when a skill name differs from its directory name.
	MatchDir bool `mapstructure:"match_dir" yaml:"match_dir"`
}

// Init configures Viper's search paths, environment binding and defaults.
// Call this once at application startup before Load.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("root", ".")
	viper.SetDefault("platform", "")
	viper.SetDefault("strict", false)
	viper.SetDefault("required_fields", []string{"name", "description"})
	viper.SetDefault("list_fields", []string{"tags"})
	viper.SetDefault("match_dir", true)
}

// Load reads the configuration file.
// With an explicit path, a missing file is an error; otherwise the default
// locations are searched and defaults are used when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load: defaults are fine
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// Used returns the config file Viper loaded, or "" when defaults were used.
func Used() string {
	return viper.ConfigFileUsed()
}
