// Package sheetreader loads the first worksheet of a realisasi report into a
// models.Sheet, keeping the distinction between numeric and text cells.
package sheetreader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"
	"fjacquet/realisasi/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// SupportedExtensions lists the input extensions ReadFile accepts.
var SupportedExtensions = []string{".xlsx", ".xlsm", ".csv"}

// plainNumber matches CSV fields that are read as numbers. Fields with a
// leading zero ("052") stay text so account-code segments survive.
var plainNumber = regexp.MustCompile(`^[+-]?([1-9][0-9]*|0)?(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Reader reads report workbooks.
type Reader struct {
	logger logging.Logger
}

// NewReader creates a Reader. A nil logger falls back to the default.
func NewReader(logger logging.Logger) *Reader {
	return &Reader{logger: logging.OrDefault(logger)}
}

// IsSupported reports whether path has an extension ReadFile can handle.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ReadFile reads the first sheet of the workbook at path.
func (r *Reader) ReadFile(path string) (models.Sheet, error) {
	if !IsSupported(path) {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: strings.Join(SupportedExtensions, ", "),
			Msg:            fmt.Sprintf("unsupported extension %q", filepath.Ext(path)),
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			r.logger.WithError(closeErr).Warn("Failed to close input file",
				logging.F(logging.FieldFile, path))
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return r.ReadCSV(file, path)
	}
	return r.ReadXLSX(file, path)
}

// ReadXLSX reads the first sheet of an XLSX workbook. Cells stored as strings
// become text, numeric cells become numbers and blank cells are empty. name
// is used in errors and logs only.
func (r *Reader) ReadXLSX(in io.Reader, name string) (models.Sheet, error) {
	f, err := excelize.OpenReader(in)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       name,
			ExpectedFormat: "XLSX workbook",
			Msg:            "cannot open workbook",
			Err:            err,
		}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			r.logger.WithError(closeErr).Warn("Failed to close workbook",
				logging.F(logging.FieldFile, name))
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       name,
			ExpectedFormat: "XLSX workbook",
			Msg:            "workbook has no sheets",
		}
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       name,
			ExpectedFormat: "XLSX workbook",
			Msg:            fmt.Sprintf("cannot read sheet %q", sheetName),
			Err:            err,
		}
	}

	sheet := make(models.Sheet, len(rows))
	for i, values := range rows {
		row := make(models.Row, len(values))
		for j, raw := range values {
			if raw == "" {
				row[j] = models.EmptyCell()
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, fmt.Errorf("error addressing cell (%d,%d): %w", i+1, j+1, err)
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, fmt.Errorf("error reading type of cell %s: %w", cellName, err)
			}
			row[j] = classifyXLSX(raw, cellType)
		}
		sheet[i] = row
	}

	r.logger.Debug("Read workbook",
		logging.F(logging.FieldFile, name),
		logging.F(logging.FieldSheet, sheetName),
		logging.F(logging.FieldRows, len(sheet)))
	return sheet, nil
}

func classifyXLSX(raw string, cellType excelize.CellType) models.Cell {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeBool, excelize.CellTypeError:
		return models.TextCell(raw)
	}
	if f, ok := parseFinite(raw); ok {
		return models.NumberCell(f)
	}
	return models.TextCell(raw)
}

// ReadCSV reads a header-less CSV export of the report. Rows may have
// different lengths. Plain numeric fields become numbers, empty fields are
// empty, and everything else, including "1.000.000", stays text.
func (r *Reader) ReadCSV(in io.Reader, name string) (models.Sheet, error) {
	csvReader := gocsv.LazyCSVReader(in)
	if std, ok := csvReader.(*csv.Reader); ok {
		std.FieldsPerRecord = -1
		// Whitespace-only fields are values, not blanks.
		std.TrimLeadingSpace = false
	}

	records, err := csvReader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &parsererror.InvalidFormatError{
				FilePath:       name,
				ExpectedFormat: "CSV",
				Msg:            fmt.Sprintf("malformed record at line %d", parseErr.Line),
				Err:            err,
			}
		}
		return nil, fmt.Errorf("error reading CSV %s: %w", name, err)
	}

	sheet := make(models.Sheet, len(records))
	for i, fields := range records {
		row := make(models.Row, len(fields))
		for j, field := range fields {
			row[j] = classifyCSV(field)
		}
		sheet[i] = row
	}

	r.logger.Debug("Read CSV",
		logging.F(logging.FieldFile, name),
		logging.F(logging.FieldRows, len(sheet)))
	return sheet, nil
}

func classifyCSV(field string) models.Cell {
	if field == "" {
		return models.EmptyCell()
	}
	if plainNumber.MatchString(field) && strings.ContainsAny(field, "0123456789") {
		if f, ok := parseFinite(field); ok {
			return models.NumberCell(f)
		}
	}
	return models.TextCell(field)
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
