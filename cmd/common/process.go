// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/realisasi/internal/container"
	"fjacquet/realisasi/internal/converter"
	"fjacquet/realisasi/internal/export"
	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"
	"fjacquet/realisasi/internal/report"
	"fjacquet/realisasi/internal/validation"
)

// FileConverter converts one input file to one output file.
type FileConverter interface {
	ConvertFile(input, output string) (*models.Result, error)
}

// DefaultOutputPath names the output next to input, e.g.
// laporan.xlsx -> laporan_normalized.xlsx.
func DefaultOutputPath(input, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), base+"_normalized."+strings.ToLower(format))
}

// ConverterFor returns the container's converter, or a converter sharing its
// reader and normalizer but exporting to format when format differs from the
// configured one.
func ConverterFor(c *container.Container, format string) (*converter.Converter, error) {
	if format == "" || strings.EqualFold(format, c.GetExporter().Format()) {
		return c.GetConverter(), nil
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		return nil, err
	}

	cfg := c.GetConfig()
	exporter, err := export.New(format, export.Options{
		Labels:         cfg.Labels,
		SheetName:      cfg.Export.SheetName,
		IncludeSummary: cfg.Export.IncludeSummary,
		Delimiter:      cfg.Delimiter(),
	}, c.GetLogger())
	if err != nil {
		return nil, err
	}
	return converter.NewConverter(c.GetReader(), c.GetNormalizer(), exporter, c.GetLogger()), nil
}

// ProcessFile validates the paths and converts inputFile to outputFile in
// format. An empty outputFile is derived from inputFile.
func ProcessFile(c FileConverter, inputFile, outputFile, format string, log logging.Logger) (*models.Result, error) {
	if outputFile == "" {
		outputFile = DefaultOutputPath(inputFile, format)
	}

	log.Info("Validating input...", logging.F(logging.FieldInputFile, inputFile))
	if err := validation.ValidateInputFile(inputFile); err != nil {
		return nil, err
	}
	if err := validation.ValidateOutputFile(inputFile, outputFile, format); err != nil {
		return nil, err
	}

	result, err := c.ConvertFile(inputFile, outputFile)
	if err != nil {
		return nil, fmt.Errorf("error converting %s: %w", inputFile, err)
	}
	log.Info("Conversion completed successfully!",
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldRows, len(result.Rows)))
	return result, nil
}

// WriteSummary writes the run summary of result to path. The report format is
// taken from the extension of path, falling back to fallbackFormat.
func WriteSummary(gen *report.Generator, result *models.Result, inputFile, path, fallbackFormat string, labels models.Labels) error {
	summary := report.NewSummary(result, inputFile, labels)
	format := report.FormatFromPath(path, fallbackFormat)
	if err := validation.IsValidReportFormat(format); err != nil {
		return err
	}
	return gen.WriteReport(summary, format, path)
}
