package export

import (
	"fmt"

	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"
	"fjacquet/realisasi/internal/parsererror"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the data sheet name used when none is configured.
const DefaultSheetName = "Realisasi"

// SummarySheetName is the name of the optional totals sheet.
const SummarySheetName = "Ringkasan"

// XLSXExporter writes the retained rows to a workbook: one data sheet with a
// bold header row and, optionally, a summary sheet with the labelled totals.
type XLSXExporter struct {
	labels         models.Labels
	sheetName      string
	includeSummary bool
	logger         logging.Logger
}

// NewXLSXExporter creates an XLSXExporter.
func NewXLSXExporter(labels models.Labels, sheetName string, includeSummary bool, logger logging.Logger) *XLSXExporter {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &XLSXExporter{
		labels:         labels.WithDefaults(),
		sheetName:      sheetName,
		includeSummary: includeSummary,
		logger:         logging.OrDefault(logger),
	}
}

// Format implements Exporter.
func (e *XLSXExporter) Format() string { return FormatXLSX }

// Export implements Exporter.
func (e *XLSXExporter) Export(result *models.Result, path string) error {
	if result == nil {
		return e.fail(path, fmt.Errorf("cannot write nil result"))
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close workbook",
				logging.F(logging.FieldFile, path))
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), e.sheetName); err != nil {
		return e.fail(path, err)
	}
	if err := e.writeData(f, result); err != nil {
		return e.fail(path, err)
	}
	if e.includeSummary {
		if err := e.writeSummary(f, result); err != nil {
			return e.fail(path, err)
		}
	}
	f.SetActiveSheet(0)

	if err := ensureParentDir(path); err != nil {
		return e.fail(path, err)
	}
	if err := f.SaveAs(path); err != nil {
		return e.fail(path, err)
	}

	e.logger.Info("Wrote workbook",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldSheet, e.sheetName),
		logging.F(logging.FieldCount, len(result.Rows)))
	return nil
}

func (e *XLSXExporter) writeData(f *excelize.File, result *models.Result) error {
	header := e.labels.Header()
	if err := setRow(f, e.sheetName, 1, stringValues(header)); err != nil {
		return err
	}

	for i, row := range result.Rows {
		values := make([]interface{}, len(header))
		for j := range values {
			values[j] = cellValue(row.At(j))
		}
		if err := setRow(f, e.sheetName, i+2, values); err != nil {
			return err
		}
	}

	if err := boldRow(f, e.sheetName, len(header)); err != nil {
		return err
	}
	if err := f.SetColWidth(e.sheetName, "A", "A", 36); err != nil {
		return err
	}
	if err := f.SetColWidth(e.sheetName, "B", "B", 48); err != nil {
		return err
	}
	return f.SetColWidth(e.sheetName, "C", "G", 22)
}

func (e *XLSXExporter) writeSummary(f *excelize.File, result *models.Result) error {
	if _, err := f.NewSheet(SummarySheetName); err != nil {
		return err
	}
	if err := setRow(f, SummarySheetName, 1, []interface{}{"Keterangan", "Jumlah"}); err != nil {
		return err
	}

	for i, label := range e.labels.AmountHeaders() {
		if err := setRow(f, SummarySheetName, i+2, []interface{}{label, result.Totals[i].InexactFloat64()}); err != nil {
			return err
		}
	}
	if err := setRow(f, SummarySheetName, models.TotalColumns+2, []interface{}{"Jumlah Baris", len(result.Rows)}); err != nil {
		return err
	}

	if err := boldRow(f, SummarySheetName, 2); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheetName, "A", "A", 32)
}

func (e *XLSXExporter) fail(path string, err error) error {
	return &parsererror.ExportError{FilePath: path, Format: FormatXLSX, Err: err}
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func boldRow(f *excelize.File, sheet string, width int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

// cellValue maps a cell to the value excelize stores: numbers stay numeric,
// empty cells stay blank.
func cellValue(c models.Cell) interface{} {
	switch c.Kind {
	case models.CellNumber:
		return c.Num
	case models.CellText:
		return c.Text
	default:
		return nil
	}
}

func stringValues(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
