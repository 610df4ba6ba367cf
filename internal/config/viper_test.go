package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	t.Chdir(t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "Uraian", config.Pipeline.HeaderKeyword)
	assert.Equal(t, "Keterangan :", config.Pipeline.FootnoteMarker)
	assert.Equal(t, 100, config.Pipeline.PreviewRows)
	assert.Equal(t, "xlsx", config.Export.Format)
	assert.Equal(t, "Realisasi", config.Export.SheetName)
	assert.True(t, config.Export.IncludeSummary)
	assert.Equal(t, ",", config.Export.CSVDelimiter)
	assert.Equal(t, models.DefaultLabels(), config.Labels)
	assert.Equal(t, "json", config.Report.Format)
	assert.Equal(t, "accounts.yaml", config.Accounts.File)
	assert.Equal(t, 4, config.Batch.Workers)
	assert.Equal(t, ',', config.Delimiter())
}

func TestDefaultConfig_MatchesInitializeConfig(t *testing.T) {
	clearTestEnvVars(t)
	t.Chdir(t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, config, DefaultConfig())
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	t.Chdir(t.TempDir())

	testEnvVars := map[string]string{
		"REALISASI_LOG_LEVEL":               "debug",
		"REALISASI_LOG_FORMAT":              "json",
		"REALISASI_PIPELINE_HEADER_KEYWORD": "Uraian Kegiatan",
		"REALISASI_PIPELINE_PREVIEW_ROWS":   "20",
		"REALISASI_EXPORT_FORMAT":           "csv",
		"REALISASI_EXPORT_CSV_DELIMITER":    ";",
		"REALISASI_LABELS_CURRENT":          "Realisasi Juli",
		"REALISASI_BATCH_WORKERS":           "8",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "Uraian Kegiatan", config.Pipeline.HeaderKeyword)
	assert.Equal(t, 20, config.Pipeline.PreviewRows)
	assert.Equal(t, "csv", config.Export.Format)
	assert.Equal(t, ';', config.Delimiter())
	assert.Equal(t, "Realisasi Juli", config.Labels.Current)
	assert.Equal(t, models.DefaultPreviousLabel, config.Labels.Previous)
	assert.Equal(t, 8, config.Batch.Workers)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
pipeline:
  footnote_marker: "Catatan:"
export:
  format: "csv"
  csv_delimiter: "|"
  include_summary: false
labels:
  previous: "s.d. Juni"
report:
  format: "xml"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0o600))
	t.Chdir(tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "Catatan:", config.Pipeline.FootnoteMarker)
	assert.Equal(t, "Uraian", config.Pipeline.HeaderKeyword)
	assert.Equal(t, "csv", config.Export.Format)
	assert.Equal(t, '|', config.Delimiter())
	assert.False(t, config.Export.IncludeSummary)
	assert.Equal(t, "s.d. Juni", config.Labels.Previous)
	assert.Equal(t, models.DefaultCurrentLabel, config.Labels.Current)
	assert.Equal(t, "xml", config.Report.Format)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
export:
  csv_delimiter: "|"
batch:
  workers: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0o600))

	t.Setenv("REALISASI_LOG_LEVEL", "error")
	t.Setenv("REALISASI_BATCH_WORKERS", "6")
	t.Chdir(tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "|", config.Export.CSVDelimiter)
	assert.Equal(t, 6, config.Batch.Workers)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	clearTestEnvVars(t)

	path := filepath.Join(t.TempDir(), "realisasi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline:\n  preview_rows: 5\n"), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, config.Pipeline.PreviewRows)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValueFromFile(t *testing.T) {
	clearTestEnvVars(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch:\n  workers: 0\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "invalid" },
			expectError:  "invalid log format",
		},
		{
			name:         "empty header keyword",
			modifyConfig: func(c *Config) { c.Pipeline.HeaderKeyword = "  " },
			expectError:  "pipeline.header_keyword must not be empty",
		},
		{
			name:         "non-positive preview rows",
			modifyConfig: func(c *Config) { c.Pipeline.PreviewRows = 0 },
			expectError:  "pipeline.preview_rows must be positive",
		},
		{
			name:         "invalid export format",
			modifyConfig: func(c *Config) { c.Export.Format = "pdf" },
			expectError:  "invalid export format",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.Export.CSVDelimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "invalid report format",
			modifyConfig: func(c *Config) { c.Report.Format = "yaml" },
			expectError:  "invalid report format",
		},
		{
			name:         "too many workers",
			modifyConfig: func(c *Config) { c.Batch.Workers = MaxWorkers + 1 },
			expectError:  "batch.workers must be between 1 and 64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateConfig_MultiByteDelimiter(t *testing.T) {
	config := DefaultConfig()
	config.Export.CSVDelimiter = "¦"

	require.NoError(t, validateConfig(config))
	assert.Equal(t, '¦', config.Delimiter())
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := DefaultConfig()
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)

	adapter, ok := logger.(*logging.LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, adapter.Level())
}

func TestLoadEnv(t *testing.T) {
	clearTestEnvVars(t)
	dir := t.TempDir()
	t.Chdir(dir)

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REALISASI_EXPORT_FORMAT=csv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("REALISASI_EXPORT_FORMAT") })

	loaded, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "csv", os.Getenv("REALISASI_EXPORT_FORMAT"))
}

// clearTestEnvVars unsets every variable the tests may set, restoring them
// when the test ends.
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"REALISASI_LOG_LEVEL",
		"REALISASI_LOG_FORMAT",
		"REALISASI_PIPELINE_HEADER_KEYWORD",
		"REALISASI_PIPELINE_FOOTNOTE_MARKER",
		"REALISASI_PIPELINE_PREVIEW_ROWS",
		"REALISASI_EXPORT_FORMAT",
		"REALISASI_EXPORT_SHEET_NAME",
		"REALISASI_EXPORT_INCLUDE_SUMMARY",
		"REALISASI_EXPORT_CSV_DELIMITER",
		"REALISASI_LABELS_PREVIOUS",
		"REALISASI_LABELS_CURRENT",
		"REALISASI_LABELS_CUMULATIVE",
		"REALISASI_REPORT_FORMAT",
		"REALISASI_ACCOUNTS_FILE",
		"REALISASI_BATCH_WORKERS",
	}

	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
