// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration,
// e.g. REALISASI_LOG_LEVEL.
const EnvPrefix = "REALISASI"

// MaxWorkers bounds batch.workers.
const MaxWorkers = 64

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Pipeline struct {
		HeaderKeyword  string `mapstructure:"header_keyword" yaml:"header_keyword"`
		FootnoteMarker string `mapstructure:"footnote_marker" yaml:"footnote_marker"`
		PreviewRows    int    `mapstructure:"preview_rows" yaml:"preview_rows"`
	} `mapstructure:"pipeline" yaml:"pipeline"`

	Export struct {
		Format         string `mapstructure:"format" yaml:"format"`
		SheetName      string `mapstructure:"sheet_name" yaml:"sheet_name"`
		IncludeSummary bool   `mapstructure:"include_summary" yaml:"include_summary"`
		CSVDelimiter   string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	} `mapstructure:"export" yaml:"export"`

	Labels models.Labels `mapstructure:"labels" yaml:"labels"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`

	Accounts struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"accounts" yaml:"accounts"`

	Batch struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"batch" yaml:"batch"`
}

// Delimiter returns the CSV output delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Export.CSVDelimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig loads the configuration. With an empty configFile, config.yaml
// is searched in $HOME/.realisasi, .realisasi and the working directory and
// is optional; an explicit configFile must exist. Environment variables
// override file values, which override defaults.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.realisasi")
		v.AddConfigPath(".realisasi")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration built from defaults only.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults always decode into Config.
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Pipeline defaults
	v.SetDefault("pipeline.header_keyword", "Uraian")
	v.SetDefault("pipeline.footnote_marker", "Keterangan :")
	v.SetDefault("pipeline.preview_rows", 100)

	// Export defaults
	v.SetDefault("export.format", "xlsx")
	v.SetDefault("export.sheet_name", "Realisasi")
	v.SetDefault("export.include_summary", true)
	v.SetDefault("export.csv_delimiter", ",")

	// Column labels
	v.SetDefault("labels.previous", models.DefaultPreviousLabel)
	v.SetDefault("labels.current", models.DefaultCurrentLabel)
	v.SetDefault("labels.cumulative", models.DefaultCumulativeLabel)

	v.SetDefault("report.format", "json")
	v.SetDefault("accounts.file", "accounts.yaml")
	v.SetDefault("batch.workers", 4)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Pipeline.HeaderKeyword) == "" {
		return fmt.Errorf("pipeline.header_keyword must not be empty")
	}

	if config.Pipeline.PreviewRows < 1 {
		return fmt.Errorf("pipeline.preview_rows must be positive, got: %d", config.Pipeline.PreviewRows)
	}

	switch strings.ToLower(config.Export.Format) {
	case "xlsx", "csv":
	default:
		return fmt.Errorf("invalid export format: %s (must be 'xlsx' or 'csv')", config.Export.Format)
	}

	// Validate CSV delimiter
	if utf8.RuneCountInString(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Export.CSVDelimiter)
	}

	switch strings.ToLower(config.Report.Format) {
	case "json", "xml":
	default:
		return fmt.Errorf("invalid report format: %s (must be 'json' or 'xml')", config.Report.Format)
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > MaxWorkers {
		return fmt.Errorf("batch.workers must be between 1 and %d, got: %d", MaxWorkers, config.Batch.Workers)
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
