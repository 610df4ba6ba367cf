// Package normalizer turns the rows of a budget-realisation report sheet into
// the flat record set used by the exporters: it trims the report frame,
// rebuilds hierarchical account codes, drops template-only columns, keeps the
// rows that carry a full account code and totals their amounts.
package normalizer

import (
	"fmt"
	"time"

	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"
	"fjacquet/realisasi/internal/parsererror"

	"github.com/google/uuid"
)

// Defaults for the report template currently issued by the treasury.
const (
	DefaultHeaderKeyword  = "Uraian"
	DefaultFootnoteMarker = "Keterangan :"
	DefaultPreviewRows    = 100
)

// Options configures a Normalizer.
type Options struct {
	// HeaderKeyword identifies the column header row.
	HeaderKeyword string
	// FootnoteMarker identifies footnote rows to drop.
	FootnoteMarker string
	// PreviewRows caps Result.Preview.
	PreviewRows int
}

// DefaultOptions returns the options matching the standard template.
func DefaultOptions() Options {
	return Options{
		HeaderKeyword:  DefaultHeaderKeyword,
		FootnoteMarker: DefaultFootnoteMarker,
		PreviewRows:    DefaultPreviewRows,
	}
}

// Normalizer runs the normalization pipeline. It holds no per-run state, so
// one Normalizer may serve concurrent calls.
type Normalizer struct {
	opts   Options
	logger logging.Logger
	runID  func() string
}

// NewNormalizer creates a Normalizer. A nil logger falls back to the default.
func NewNormalizer(opts Options, logger logging.Logger) *Normalizer {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = DefaultPreviewRows
	}
	return &Normalizer{
		opts:   opts,
		logger: logging.OrDefault(logger),
		runID:  uuid.NewString,
	}
}

// Options returns the options the Normalizer was built with.
func (n *Normalizer) Options() Options {
	return n.opts
}

// Normalize runs every stage over a copy of sheet and returns the retained
// rows, their totals, the account-name map and a preview.
//
// It fails with parsererror.ErrEmptyInput when sheet has no rows and with
// parsererror.ErrEmptyAfterCleaning when nothing survives cleaning. A missing
// header row is not an error: it is logged, recorded in Result.Warnings, and
// the rows are processed untrimmed.
func (n *Normalizer) Normalize(sheet models.Sheet) (*models.Result, error) {
	start := time.Now()
	result := &models.Result{
		RunID:      n.runID(),
		SourceRows: len(sheet),
	}
	log := n.logger.WithField(logging.FieldRunID, result.RunID)

	if len(sheet) == 0 {
		return nil, parsererror.ErrEmptyInput
	}

	data := RemoveFootnotes(sheet.Clone(), n.opts.FootnoteMarker)
	log.Debug("Removed footnote rows",
		logging.F(logging.FieldStage, "footnotes"),
		logging.F(logging.FieldCount, len(sheet)-len(data)))

	data, result.HeaderFound = TrimToHeader(data, n.opts.HeaderKeyword)
	if !result.HeaderFound {
		warning := fmt.Sprintf("header keyword %q not found, processing all rows", n.opts.HeaderKeyword)
		result.Warnings = append(result.Warnings, warning)
		log.Warn("Header row not found, keeping data untrimmed",
			logging.F(logging.FieldKeyword, n.opts.HeaderKeyword))
	}

	data, removed := PruneEmptyColumns(data)
	log.Debug("Pruned empty columns",
		logging.F(logging.FieldStage, "prune"),
		logging.F(logging.FieldColumns, removed))

	if len(data) == 0 || data.MaxWidth() == 0 {
		return nil, parsererror.ErrEmptyAfterCleaning
	}

	data = ShiftLeadingCells(data)
	data, _ = BuildCodes(data)
	data = NormalizeCodeDescription(data)
	result.AccountNames = DeriveAccountNames(data)

	sliced := SliceTemplateColumns(data)
	result.Rows = FilterRows(sliced)
	result.Totals = SumColumns(result.Rows)

	previewLen := len(result.Rows)
	if previewLen > n.opts.PreviewRows {
		previewLen = n.opts.PreviewRows
	}
	result.Preview = result.Rows[:previewLen:previewLen]

	log.Info("Normalized sheet",
		logging.F(logging.FieldRows, len(result.Rows)),
		logging.F("source_rows", result.SourceRows),
		logging.F("accounts", len(result.AccountNames)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))

	return result, nil
}
