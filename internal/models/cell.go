// Package models defines the core data structures shared across the application:
// spreadsheet cells, rows and sheets, and the normalized output of the pipeline.
package models

import (
	"math"
	"strconv"
	"strings"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	// CellEmpty is an absent value.
	CellEmpty CellKind = iota
	// CellNumber is a numeric spreadsheet value.
	CellNumber
	// CellText is a string spreadsheet value.
	CellText
)

// Cell is a single spreadsheet value: empty, a number or a string.
type Cell struct {
	Kind CellKind
	Num  float64
	Text string
}

// EmptyCell returns an absent value.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// NumberCell returns a numeric value.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Num: f}
}

// TextCell returns a string value. The empty string is still a Text cell but
// IsEmpty reports true for it.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// IsEmpty reports whether the cell is absent or holds the empty string.
// Numeric zero, "0" and whitespace-only strings are not empty.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellText:
		return c.Text == ""
	default:
		return false
	}
}

// String returns the cell's textual form. Numbers use the shortest
// representation that round-trips, so 1.0 becomes "1".
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// IsFiniteNumber reports whether the cell can be read as a finite number.
// Text is accepted when its trimmed content parses as a float; blank text
// counts as zero.
func (c Cell) IsFiniteNumber() bool {
	switch c.Kind {
	case CellNumber:
		return !math.IsInf(c.Num, 0) && !math.IsNaN(c.Num)
	case CellText:
		s := strings.TrimSpace(c.Text)
		if s == "" {
			return true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	default:
		return false
	}
}

// Equal reports whether two cells hold the same variant and value.
func (c Cell) Equal(other Cell) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case CellNumber:
		return c.Num == other.Num
	case CellText:
		return c.Text == other.Text
	default:
		return true
	}
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (c Cell) MarshalCSV() (string, error) {
	return c.String(), nil
}

// Row is an ordered, possibly ragged, sequence of cells.
type Row []Cell

// At returns the cell at index i, or an empty cell when i is out of range.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return EmptyCell()
	}
	return r[i]
}

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Sheet is an ordered sequence of rows.
type Sheet []Row

// Clone returns a deep copy of the sheet.
func (s Sheet) Clone() Sheet {
	out := make(Sheet, len(s))
	for i, row := range s {
		out[i] = row.Clone()
	}
	return out
}

// MaxWidth returns the length of the longest row.
func (s Sheet) MaxWidth() int {
	width := 0
	for _, row := range s {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// RowFromValues builds a row from loosely typed values. It accepts nil,
// strings, ints and floats and is mostly useful for fixtures.
func RowFromValues(values ...interface{}) Row {
	row := make(Row, len(values))
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			row[i] = EmptyCell()
		case string:
			row[i] = TextCell(val)
		case int:
			row[i] = NumberCell(float64(val))
		case int64:
			row[i] = NumberCell(float64(val))
		case float64:
			row[i] = NumberCell(val)
		case Cell:
			row[i] = val
		default:
			row[i] = EmptyCell()
		}
	}
	return row
}
