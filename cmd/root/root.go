// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/realisasi/internal/config"
	"fjacquet/realisasi/internal/container"
	"fjacquet/realisasi/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the dependencies built for the running command
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "realisasi",
		Short: "A CLI tool to normalize budget realisation workbooks.",
		Long: `realisasi is a CLI tool that normalizes Indonesian budget realisation
workbooks (XLSX or CSV exports). It rebuilds the full account code of every
line, keeps the rows carrying a complete code, totals their amounts and writes
the result as XLSX or CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to realisasi!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: initializeApp,
		SilenceUsage:      true,
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// ConfigFile is an explicit configuration file path
	ConfigFile string

	// LogLevel and LogFormat override the configured logging when set
	LogLevel  string
	LogFormat string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (or directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (or directory for batch)")
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default searches $HOME/.realisasi/config.yaml)")
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&LogFormat, "log-format", "", "Log format (text, json)")
}

// initializeApp loads the configuration, applies flag overrides and builds
// the dependency container used by the subcommands.
func initializeApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if LogLevel != "" {
		cfg.Log.Level = LogLevel
	}
	if LogFormat != "" {
		cfg.Log.Format = LogFormat
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppContainer = c
	Log = c.GetLogger()
	Log.Debug("Configuration loaded",
		logging.F("log_level", cfg.Log.Level),
		logging.F(logging.FieldFormat, cfg.Export.Format))
	return nil
}

// GetContainer returns the application container, or nil before
// initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogger returns the shared command logger.
func GetLogger() logging.Logger {
	return Log
}
