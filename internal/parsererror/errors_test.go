package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "file content is empty", ErrEmptyInput.Error())
	assert.Equal(t, "initial cleaning failed or data is empty", ErrEmptyAfterCleaning.Error())

	wrapped := fmt.Errorf("normalizing laporan.xlsx: %w", ErrEmptyAfterCleaning)
	assert.True(t, errors.Is(wrapped, ErrEmptyAfterCleaning))
	assert.False(t, errors.Is(wrapped, ErrEmptyInput))
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name: "missing input",
			err: &ValidationError{
				FilePath: "",
				Reason:   "input file is required",
			},
			expected: "validation failed for : input file is required",
		},
		{
			name: "unsupported extension",
			err: &ValidationError{
				FilePath: "/data/laporan.pdf",
				Reason:   "unsupported input extension .pdf",
			},
			expected: "validation failed for /data/laporan.pdf: unsupported input extension .pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name: "without cause",
			err: &InvalidFormatError{
				FilePath:       "laporan.xlsx",
				ExpectedFormat: "XLSX workbook",
				Msg:            "workbook has no sheets",
			},
			expected: "invalid format in file 'laporan.xlsx': workbook has no sheets. Expected: XLSX workbook",
		},
		{
			name: "with cause",
			err: &InvalidFormatError{
				FilePath:       "laporan.xlsx",
				ExpectedFormat: "XLSX workbook",
				Msg:            "cannot open workbook",
				Err:            errors.New("zip: not a valid zip file"),
			},
			expected: "invalid format in file 'laporan.xlsx': cannot open workbook. Expected: XLSX workbook: zip: not a valid zip file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestInvalidFormatError_Unwrap(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	err := &InvalidFormatError{FilePath: "x.xlsx", Err: cause}

	assert.True(t, errors.Is(err, cause))

	var target *InvalidFormatError
	assert.True(t, errors.As(fmt.Errorf("reading: %w", err), &target))
	assert.Equal(t, "x.xlsx", target.FilePath)
}

func TestExportError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ExportError{FilePath: "/out/hasil.xlsx", Format: "xlsx", Err: cause}

	assert.Equal(t, "xlsx export to /out/hasil.xlsx failed: permission denied", err.Error())
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}
