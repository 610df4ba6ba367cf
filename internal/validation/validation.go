// Package validation checks user-supplied paths and formats before a run.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/realisasi/internal/parsererror"
	"fjacquet/realisasi/internal/sheetreader"
)

// IsValidOutputFormat checks if the given export format is supported.
func IsValidOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "xlsx", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'xlsx', 'csv'", format)
	}
}

// IsValidReportFormat checks if the given report format is supported.
func IsValidReportFormat(format string) error {
	switch strings.ToLower(format) {
	case "json", "xml":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s. Supported formats are 'json', 'xml'", format)
	}
}

// ValidateInputFile checks that path is an existing regular file with a
// supported extension.
func ValidateInputFile(path string) error {
	if path == "" {
		return &parsererror.ValidationError{FilePath: path, Reason: "input file is required"}
	}
	if !sheetreader.IsSupported(path) {
		return &parsererror.ValidationError{
			FilePath: path,
			Reason:   fmt.Sprintf("unsupported input extension %s", filepath.Ext(path)),
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return &parsererror.ValidationError{FilePath: path, Reason: "input file does not exist"}
	}
	if !info.Mode().IsRegular() {
		return &parsererror.ValidationError{FilePath: path, Reason: "input is not a regular file"}
	}
	return nil
}

// ValidateOutputFile checks that output names a file whose extension matches
// format and that it would not overwrite input.
func ValidateOutputFile(input, output, format string) error {
	if output == "" {
		return &parsererror.ValidationError{FilePath: output, Reason: "output file is required"}
	}
	if err := IsValidOutputFormat(format); err != nil {
		return &parsererror.ValidationError{FilePath: output, Reason: err.Error()}
	}
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); !strings.EqualFold(ext, format) {
		return &parsererror.ValidationError{
			FilePath: output,
			Reason:   fmt.Sprintf("extension %q does not match format %s", filepath.Ext(output), format),
		}
	}
	if filepath.Clean(input) == filepath.Clean(output) {
		return &parsererror.ValidationError{FilePath: output, Reason: "output would overwrite input"}
	}
	return nil
}
