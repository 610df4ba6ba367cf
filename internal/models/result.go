package models

import (
	"github.com/shopspring/decimal"
)

// TotalColumns is the number of aggregated amount columns in the output schema.
const TotalColumns = 5

// Totals holds one accumulator per aggregated column, in output order:
// Pagu Revisi, Lock Pagu, previous period, current period, cumulative.
type Totals [TotalColumns]decimal.Decimal

// Float64s returns the totals as float64 values.
func (t Totals) Float64s() []float64 {
	out := make([]float64, len(t))
	for i, d := range t {
		out[i] = d.InexactFloat64()
	}
	return out
}

// Result is the outcome of one pipeline run over one sheet.
type Result struct {
	// RunID identifies the pipeline invocation in logs and reports.
	RunID string

	// Rows are the retained rows, each [code, description, col2..col6].
	Rows []Row

	// Totals are the column sums over Rows.
	Totals Totals

	// AccountNames maps a last code segment to its first-seen description.
	AccountNames map[string]string

	// Preview is the head of Rows, for display only.
	Preview []Row

	// Warnings collects non-fatal conditions such as a missing header row.
	Warnings []string

	// SourceRows is the row count of the raw input sheet.
	SourceRows int

	// HeaderFound reports whether the header keyword was located.
	HeaderFound bool
}

// Records converts the retained rows into output records.
func (r *Result) Records() []Record {
	records := make([]Record, 0, len(r.Rows))
	for _, row := range r.Rows {
		records = append(records, RecordFromRow(row))
	}
	return records
}
