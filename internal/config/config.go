// Package config resolves gradplan settings from defaults, an optional
// config.yaml, GRADPLAN_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "GRADPLAN"
	appDir    = ".gradplan"
)

type Config struct {
	DBPath         string        `mapstructure:"db"`
	CatalogPath    string        `mapstructure:"catalog"`
	CompletedPath  string        `mapstructure:"completed"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFormat      string        `mapstructure:"log_format"`
	FollowUpDelay  time.Duration `mapstructure:"followup_delay"`
	SpanCourse     string        `mapstructure:"span_course"`
	EventRetention int           `mapstructure:"event_retention"`
	WatchCatalog   bool          `mapstructure:"watch_catalog"`
}

// DefaultConfig returns defaults rooted at home.
func DefaultConfig(home string) *Config {
	base := filepath.Join(home, appDir)
	return &Config{
		DBPath:         filepath.Join(base, "gradplan.db"),
		CatalogPath:    filepath.Join(base, "catalog.yaml"),
		CompletedPath:  filepath.Join(base, "completed.yaml"),
		LogLevel:       "warn",
		LogFormat:      "text",
		FollowUpDelay:  100 * time.Millisecond,
		SpanCourse:     "BEXC100N",
		EventRetention: 500,
		WatchCatalog:   true,
	}
}

// Load reads configuration into a fresh viper instance. Flags that were set
// explicitly on the command line win over every other source. A
// non-empty configFile replaces the default search path.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	return LoadWithViper(viper.New(), flags, configFile)
}

func LoadWithViper(v *viper.Viper, flags *pflag.FlagSet, configFile string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	config := DefaultConfig(home)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, appDir))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db", config.DBPath)
	v.SetDefault("catalog", config.CatalogPath)
	v.SetDefault("completed", config.CompletedPath)
	v.SetDefault("log_level", config.LogLevel)
	v.SetDefault("log_format", config.LogFormat)
	v.SetDefault("followup_delay", config.FollowUpDelay)
	v.SetDefault("span_course", config.SpanCourse)
	v.SetDefault("event_retention", config.EventRetention)
	v.SetDefault("watch_catalog", config.WatchCatalog)

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	config.DBPath = expandHome(config.DBPath, home)
	config.CatalogPath = expandHome(config.CatalogPath, home)
	config.CompletedPath = expandHome(config.CompletedPath, home)
	config.LogLevel = strings.ToLower(config.LogLevel)
	config.LogFormat = strings.ToLower(config.LogFormat)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// flagKeys maps config keys to the persistent flag names the CLI registers.
var flagKeys = map[string]string{
	"db":        "db",
	"catalog":   "catalog",
	"completed": "completed",
	"log_level": "log-level",
}

// RegisterFlags adds the persistent flags Load knows how to bind.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("db", "", "path to the gradplan database")
	flags.String("catalog", "", "path to the course catalog (JSON or YAML)")
	flags.String("completed", "", "path to the completed-semesters file (JSON or YAML)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func validateConfig(config *Config) error {
	if config.DBPath == "" {
		return fmt.Errorf("the database path cannot be empty")
	}
	if config.FollowUpDelay <= 0 {
		return fmt.Errorf("the follow-up delay must be positive")
	}
	if strings.TrimSpace(config.SpanCourse) == "" {
		return fmt.Errorf("the span course code cannot be empty")
	}
	if config.EventRetention <= 0 {
		return fmt.Errorf("the event retention must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	validLogFormats := map[string]bool{
		"json": true, "text": true,
	}
	if !validLogFormats[config.LogFormat] {
		return fmt.Errorf("invalid log format: %s", config.LogFormat)
	}
	return nil
}
