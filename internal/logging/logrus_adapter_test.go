package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter(t *testing.T, level, format string) (*LogrusAdapter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	adapter, ok := NewLogrusAdapterWithOutput(level, format, &buf).(*LogrusAdapter)
	require.True(t, ok)
	return adapter, &buf
}

func TestNewLogrusAdapterWithOutput_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"Warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"verbose", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			adapter, _ := newBufferedAdapter(t, tt.level, "text")
			assert.Equal(t, tt.expected, adapter.Level())
		})
	}
}

func TestNewLogrusAdapterWithOutput_InvalidLevelWarns(t *testing.T) {
	_, buf := newBufferedAdapter(t, "verbose", "text")
	assert.Contains(t, buf.String(), "Invalid log level 'verbose'")
}

func TestNewLogrusAdapterWithOutput_Formats(t *testing.T) {
	jsonAdapter, jsonBuf := newBufferedAdapter(t, "info", "JSON")
	jsonAdapter.Info("sheet read", F(FieldSheet, "Sheet1"), F(FieldRows, 12))
	assert.Contains(t, jsonBuf.String(), `"msg":"sheet read"`)
	assert.Contains(t, jsonBuf.String(), `"sheet":"Sheet1"`)
	assert.Contains(t, jsonBuf.String(), `"rows":12`)

	textAdapter, textBuf := newBufferedAdapter(t, "info", "anything")
	textAdapter.Info("sheet read", F(FieldSheet, "Sheet1"))
	assert.Contains(t, textBuf.String(), `msg="sheet read"`)
	assert.Contains(t, textBuf.String(), "sheet=Sheet1")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(textBuf.String()), "{"))
}

func TestLogrusAdapter_LevelFiltersOutput(t *testing.T) {
	adapter, buf := newBufferedAdapter(t, "warn", "json")

	adapter.Debug("hidden debug")
	adapter.Info("hidden info")
	adapter.Warn("header missing", F(FieldKeyword, "Uraian"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"keyword":"Uraian"`)
}

func TestLogrusAdapter_DerivedLoggersKeepContext(t *testing.T) {
	adapter, buf := newBufferedAdapter(t, "info", "json")

	adapter.WithField(FieldRunID, "run-7").
		WithFields(F(FieldInputFile, "laporan.xlsx")).
		WithError(errors.New("disk full")).
		Error("Export failed")

	out := buf.String()
	assert.Contains(t, out, `"run_id":"run-7"`)
	assert.Contains(t, out, `"input_file":"laporan.xlsx"`)
	assert.Contains(t, out, `"error":"disk full"`)
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	adapter, ok := NewLogrusAdapterFromLogger(nil).(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.Level())
}

func TestOrDefault(t *testing.T) {
	mock := NewMockLogger()
	assert.Same(t, mock, OrDefault(mock))

	fallback, ok := OrDefault(nil).(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, fallback.Level())
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
}
