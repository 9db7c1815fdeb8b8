package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/commitlens/commitlens/internal/errors"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// Config holds all configuration settings
type Config struct {
	Git      GitConfig      `yaml:"git" mapstructure:"git"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Storage  StorageConfig  `yaml:"storage" mapstructure:"storage"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

type GitConfig struct {
	Binary   string `yaml:"binary" mapstructure:"binary"`       // git executable, "git" by default
	CloneDir string `yaml:"clone_dir" mapstructure:"clone_dir"` // base dir for temporary clones
	Ref      string `yaml:"ref" mapstructure:"ref"`             // default ref to walk
	Workers  int    `yaml:"workers" mapstructure:"workers"`     // parallel metadata fetches
}

type AnalysisConfig struct {
	// FenceMultiplier scales the IQR when deriving outlier bounds.
	// 1.5 is the classic Tukey fence.
	FenceMultiplier float64 `yaml:"fence_multiplier" mapstructure:"fence_multiplier"`
}

type StorageConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // sqlite database for saved runs
}

type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "table", "json", "quiet" or "" for auto
}

// Default returns default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Git: GitConfig{
			Binary:  "git",
			Ref:     "HEAD",
			Workers: 8,
		},
		Analysis: AnalysisConfig{
			FenceMultiplier: 1.5,
		},
		Storage: StorageConfig{
			Path: filepath.Join(homeDir, ".commitlens", "runs.db"),
		},
	}
}

// Load reads configuration from file and environment.
// Environment variables use the COMMITLENS_ prefix, e.g.
// COMMITLENS_STORAGE_PATH overrides storage.path.
func Load(path string) (*Config, error) {
	// Load .env if present; missing files are fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("git.binary", cfg.Git.Binary)
	v.SetDefault("git.clone_dir", cfg.Git.CloneDir)
	v.SetDefault("git.ref", cfg.Git.Ref)
	v.SetDefault("git.workers", cfg.Git.Workers)
	v.SetDefault("analysis.fence_multiplier", cfg.Analysis.FenceMultiplier)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("output.format", cfg.Output.Format)

	v.SetEnvPrefix("COMMITLENS")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "read config file")
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".commitlens")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".commitlens"))
		}
		// Missing default config falls back to defaults
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, errors.ErrorTypeConfig, "read config file")
			}
		}
	}

	out := &Config{}
	if err := v.Unmarshal(out); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "unmarshal config")
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks invariants the rest of the program relies on
func (c *Config) Validate() error {
	if c.Git.Binary == "" {
		return errors.ConfigError("git.binary must not be empty")
	}
	if c.Git.Workers <= 0 {
		return errors.ConfigError("git.workers must be positive")
	}
	if c.Analysis.FenceMultiplier <= 0 {
		return errors.ConfigError("analysis.fence_multiplier must be positive")
	}
	switch c.Output.Format {
	case "", "table", "json", "quiet":
	default:
		return errors.ConfigError("output.format must be table, json or quiet")
	}
	return nil
}
