package parsererror

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input sheet holds no rows at all.
	ErrEmptyInput = errors.New("file content is empty")

	// ErrEmptyAfterCleaning is returned when no rows survive footnote removal
	// and column pruning.
	ErrEmptyAfterCleaning = errors.New("initial cleaning failed or data is empty")
)

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific reader.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s: %v",
			e.FilePath, e.Msg, e.ExpectedFormat, e.Err)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// ExportError represents a failure while writing normalized output.
type ExportError struct {
	FilePath string
	Format   string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s export to %s failed: %v", e.Format, e.FilePath, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
