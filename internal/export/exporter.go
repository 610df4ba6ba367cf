// Package export writes a normalized result to disk as XLSX or CSV.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"
)

// Output formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Exporter writes a result to a file.
type Exporter interface {
	Export(result *models.Result, path string) error
	// Format returns the output format, which is also the file extension.
	Format() string
}

// Options configures the exporters built by New.
type Options struct {
	Labels         models.Labels
	SheetName      string
	IncludeSummary bool
	Delimiter      rune
}

// New returns the exporter for format ("xlsx" or "csv").
func New(format string, opts Options, logger logging.Logger) (Exporter, error) {
	switch strings.ToLower(format) {
	case FormatXLSX:
		return NewXLSXExporter(opts.Labels, opts.SheetName, opts.IncludeSummary, logger), nil
	case FormatCSV:
		return NewCSVExporter(opts.Labels, opts.Delimiter, logger), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// OutputPath derives the output file for input in dir, replacing the input
// extension with the exporter format.
func OutputPath(input, dir, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"."+strings.ToLower(format))
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o750)
}
