package normalizer

import (
	"strings"

	"fjacquet/realisasi/internal/models"
)

// RemoveFootnotes drops every row that has a cell whose text contains marker.
// An empty marker leaves the sheet untouched.
func RemoveFootnotes(sheet models.Sheet, marker string) models.Sheet {
	if marker == "" {
		return sheet
	}

	out := make(models.Sheet, 0, len(sheet))
	for _, row := range sheet {
		if rowContains(row, marker) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// TrimToHeader discards every row above the first row containing keyword.
// The header row itself is kept as the new first row. When no row matches,
// the sheet is returned unchanged and found is false.
func TrimToHeader(sheet models.Sheet, keyword string) (trimmed models.Sheet, found bool) {
	for i, row := range sheet {
		if rowContains(row, keyword) {
			return sheet[i:], true
		}
	}
	return sheet, false
}

func rowContains(row models.Row, needle string) bool {
	for _, cell := range row {
		if strings.Contains(cell.String(), needle) {
			return true
		}
	}
	return false
}

// PruneEmptyColumns removes every column that is empty in all rows. A row too
// short to reach a column counts as empty there. It returns the pruned sheet
// and the removed column indices, in ascending order.
func PruneEmptyColumns(sheet models.Sheet) (models.Sheet, []int) {
	width := sheet.MaxWidth()
	keep := make([]bool, width)
	var removed []int

	for col := 0; col < width; col++ {
		for _, row := range sheet {
			if !row.At(col).IsEmpty() {
				keep[col] = true
				break
			}
		}
		if !keep[col] {
			removed = append(removed, col)
		}
	}

	if len(removed) == 0 {
		return sheet, nil
	}

	out := make(models.Sheet, len(sheet))
	for i, row := range sheet {
		pruned := make(models.Row, 0, len(row))
		for col, cell := range row {
			if keep[col] {
				pruned = append(pruned, cell)
			}
		}
		out[i] = pruned
	}
	return out, removed
}

// ShiftLeadingCells rebuilds the (code, description) head of rows whose
// values drifted right. Per row:
//   - an empty column 0 takes the first non-empty cell to its right;
//   - an empty column 1 takes the first non-empty, non-numeric cell from column 2 on;
//   - a column 1 still empty takes column 0's value, leaving column 0 empty.
//
// Moved cells leave an empty cell behind. Rows are modified in place.
func ShiftLeadingCells(sheet models.Sheet) models.Sheet {
	for i, row := range sheet {
		sheet[i] = shiftRow(row)
	}
	return sheet
}

func shiftRow(row models.Row) models.Row {
	row = widen(row, 2)

	if row[0].IsEmpty() {
		for j := 1; j < len(row); j++ {
			if !row[j].IsEmpty() {
				row[0], row[j] = row[j], models.EmptyCell()
				break
			}
		}
	}

	if row[1].IsEmpty() {
		for j := 2; j < len(row); j++ {
			if !row[j].IsEmpty() && !row[j].IsFiniteNumber() {
				row[1], row[j] = row[j], models.EmptyCell()
				break
			}
		}
	}

	if row[1].IsEmpty() {
		row[1], row[0] = row[0], models.EmptyCell()
	}
	return row
}

// widen pads row with empty cells up to n columns.
func widen(row models.Row, n int) models.Row {
	for len(row) < n {
		row = append(row, models.EmptyCell())
	}
	return row
}
