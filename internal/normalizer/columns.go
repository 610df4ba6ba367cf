package normalizer

import (
	"fjacquet/realisasi/internal/models"
)

// Column ranges of the realisasi report template that carry no data the
// output needs. They are fixed by the template layout, not detected, and are
// applied to the pruned sheet: first the trailing pair, then the detail block.
const (
	TrailingColumnsFrom = 18
	TrailingColumnsTo   = 19
	DetailColumnsFrom   = 2
	DetailColumnsTo     = 12
)

// SliceTemplateColumns drops the template's trailing columns (18–19) and then
// its detail block (2–12) from every row.
func SliceTemplateColumns(sheet models.Sheet) models.Sheet {
	out := make(models.Sheet, len(sheet))
	for i, row := range sheet {
		row = RemoveColumnRange(row, TrailingColumnsFrom, TrailingColumnsTo)
		out[i] = RemoveColumnRange(row, DetailColumnsFrom, DetailColumnsTo)
	}
	return out
}

// RemoveColumnRange returns a copy of row without the columns from..to
// (inclusive). Indices past the end of the row are ignored.
func RemoveColumnRange(row models.Row, from, to int) models.Row {
	if from >= len(row) || from > to {
		return row.Clone()
	}
	end := to + 1
	if end > len(row) {
		end = len(row)
	}

	out := make(models.Row, 0, len(row)-(end-from))
	out = append(out, row[:from]...)
	out = append(out, row[end:]...)
	return out
}
