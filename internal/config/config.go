// Package config loads runtime configuration for csvdb from defaults, an
// optional YAML file, and CSVDB_* environment variables, in that order of
// precedence (later wins). Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Defaults applied when neither file, environment, nor flags override them.
const (
	// DefaultTableName is the destination table name.
	DefaultTableName = "csv_data"
	// DefaultDisplayWidth is the report cell width in display characters.
	DefaultDisplayWidth = 15
	// DefaultLogLevel is the diagnostic log level.
	DefaultLogLevel = "info"
	// DefaultLogFormat is the diagnostic log format.
	DefaultLogFormat = "text"
)

// Config holds the runtime settings of one run. DatabasePath is empty by
// default; the run then derives it from the input file name.
type Config struct {
	TableName    string `mapstructure:"table_name"`
	DisplayWidth int    `mapstructure:"display_width"`
	DatabasePath string `mapstructure:"database_path"`
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
}

// Load reads configuration. An explicit path must exist and parse; an empty
// path looks for csvdb.yaml in the working directory and skips it silently
// when absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("table_name", DefaultTableName)
	v.SetDefault("display_width", DefaultDisplayWidth)
	v.SetDefault("database_path", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)

	v.SetEnvPrefix("CSVDB")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("csvdb")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
