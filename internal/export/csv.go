package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"
	"fjacquet/realisasi/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// CSVExporter writes the retained rows as CSV with a labelled header row.
type CSVExporter struct {
	labels    models.Labels
	delimiter rune
	logger    logging.Logger
}

// NewCSVExporter creates a CSVExporter. A zero delimiter means ','.
func NewCSVExporter(labels models.Labels, delimiter rune, logger logging.Logger) *CSVExporter {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVExporter{
		labels:    labels.WithDefaults(),
		delimiter: delimiter,
		logger:    logging.OrDefault(logger),
	}
}

// Format implements Exporter.
func (e *CSVExporter) Format() string { return FormatCSV }

// Export implements Exporter.
func (e *CSVExporter) Export(result *models.Result, path string) error {
	if result == nil {
		return &parsererror.ExportError{FilePath: path, Format: FormatCSV, Err: fmt.Errorf("cannot write nil result")}
	}
	if err := ensureParentDir(path); err != nil {
		return &parsererror.ExportError{FilePath: path, Format: FormatCSV, Err: err}
	}

	file, err := os.Create(path) // #nosec G304 -- output path chosen by the user
	if err != nil {
		return &parsererror.ExportError{FilePath: path, Format: FormatCSV, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			e.logger.WithError(closeErr).Warn("Failed to close file",
				logging.F(logging.FieldFile, path))
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = e.delimiter
	writer := gocsv.NewSafeCSVWriter(csvWriter)

	if err := writer.Write(e.labels.Header()); err != nil {
		return &parsererror.ExportError{FilePath: path, Format: FormatCSV, Err: err}
	}

	records := result.Records()
	if len(records) > 0 {
		if err := gocsv.MarshalCSVWithoutHeaders(records, writer); err != nil {
			return &parsererror.ExportError{FilePath: path, Format: FormatCSV, Err: err}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return &parsererror.ExportError{FilePath: path, Format: FormatCSV, Err: err}
	}

	e.logger.Info("Wrote CSV file",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(records)))
	return nil
}
