// Package container provides dependency injection for the realisasi application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/realisasi/internal/batch"
	"fjacquet/realisasi/internal/config"
	"fjacquet/realisasi/internal/converter"
	"fjacquet/realisasi/internal/export"
	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/normalizer"
	"fjacquet/realisasi/internal/report"
	"fjacquet/realisasi/internal/sheetreader"
	"fjacquet/realisasi/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	reader     *sheetreader.Reader
	normalizer *normalizer.Normalizer
	exporter   export.Exporter
	converter  *converter.Converter
	reports    *report.Generator
	accounts   *store.AccountStore
	batch      *batch.Processor
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger = logging.OrDefault(logger)

	reader := sheetreader.NewReader(logger)

	norm := normalizer.NewNormalizer(normalizer.Options{
		HeaderKeyword:  cfg.Pipeline.HeaderKeyword,
		FootnoteMarker: cfg.Pipeline.FootnoteMarker,
		PreviewRows:    cfg.Pipeline.PreviewRows,
	}, logger)

	exporter, err := export.New(cfg.Export.Format, export.Options{
		Labels:         cfg.Labels,
		SheetName:      cfg.Export.SheetName,
		IncludeSummary: cfg.Export.IncludeSummary,
		Delimiter:      cfg.Delimiter(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	conv := converter.NewConverter(reader, norm, exporter, logger)

	logger.Debug("Container initialized",
		logging.F(logging.FieldFormat, exporter.Format()),
		logging.F(logging.FieldWorkers, cfg.Batch.Workers))

	return &Container{
		logger:     logger,
		config:     cfg,
		reader:     reader,
		normalizer: norm,
		exporter:   exporter,
		converter:  conv,
		reports:    report.NewGenerator(logger),
		accounts:   store.NewAccountStore(cfg.Accounts.File, logger),
		batch:      batch.NewProcessor(conv, exporter.Format(), cfg.Batch.Workers, logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetReader returns the sheet reader.
func (c *Container) GetReader() *sheetreader.Reader {
	return c.reader
}

// GetNormalizer returns the normalization pipeline.
func (c *Container) GetNormalizer() *normalizer.Normalizer {
	return c.normalizer
}

// GetExporter returns the exporter for the configured output format.
func (c *Container) GetExporter() export.Exporter {
	return c.exporter
}

// GetConverter returns the single-file converter.
func (c *Container) GetConverter() *converter.Converter {
	return c.converter
}

// GetReportGenerator returns the summary report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reports
}

// GetAccountStore returns the account-name store.
func (c *Container) GetAccountStore() *store.AccountStore {
	return c.accounts
}

// GetBatchProcessor returns the directory processor.
func (c *Container) GetBatchProcessor() *batch.Processor {
	return c.batch
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
