// Package converter runs the read, normalize and export steps for one file.
package converter

import (
	"fmt"
	"time"

	"fjacquet/realisasi/internal/export"
	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"
	"fjacquet/realisasi/internal/normalizer"
)

// SheetReader loads the first worksheet of an input file.
type SheetReader interface {
	ReadFile(path string) (models.Sheet, error)
}

// Converter turns a realisasi report into a normalized output file.
type Converter struct {
	reader     SheetReader
	normalizer *normalizer.Normalizer
	exporter   export.Exporter
	logger     logging.Logger
}

// NewConverter creates a Converter.
func NewConverter(reader SheetReader, n *normalizer.Normalizer, exporter export.Exporter, logger logging.Logger) *Converter {
	return &Converter{
		reader:     reader,
		normalizer: n,
		exporter:   exporter,
		logger:     logging.OrDefault(logger),
	}
}

// Exporter returns the exporter used by ConvertFile.
func (c *Converter) Exporter() export.Exporter {
	return c.exporter
}

// Analyze reads and normalizes input without writing anything.
func (c *Converter) Analyze(input string) (*models.Result, error) {
	sheet, err := c.reader.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", input, err)
	}

	result, err := c.normalizer.Normalize(sheet)
	if err != nil {
		return nil, fmt.Errorf("error normalizing %s: %w", input, err)
	}
	return result, nil
}

// ConvertFile reads input, normalizes it and exports the result to output.
func (c *Converter) ConvertFile(input, output string) (*models.Result, error) {
	start := time.Now()
	log := c.logger.WithFields(
		logging.F(logging.FieldInputFile, input),
		logging.F(logging.FieldOutputFile, output))

	result, err := c.Analyze(input)
	if err != nil {
		log.WithError(err).Error("Conversion failed")
		return nil, err
	}

	if err := c.exporter.Export(result, output); err != nil {
		log.WithError(err).Error("Export failed")
		return nil, fmt.Errorf("error exporting %s: %w", input, err)
	}

	for _, w := range result.Warnings {
		log.Warn("Conversion completed with warning", logging.F(logging.FieldWarning, w))
	}
	log.Info("Converted file",
		logging.F(logging.FieldRunID, result.RunID),
		logging.F(logging.FieldRows, len(result.Rows)),
		logging.F(logging.FieldFormat, c.exporter.Format()),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return result, nil
}
