package normalizer

import (
	"math"
	"strings"

	"fjacquet/realisasi/internal/currencyutils"
	"fjacquet/realisasi/internal/models"

	"github.com/shopspring/decimal"
)

// MinCodeSegments is the segment count of a full account code, from ministry
// down to the six-digit account. Longer codes are accepted.
const MinCodeSegments = 8

// AmountColumns are the sliced-row columns summed into the totals.
var AmountColumns = [models.TotalColumns]int{2, 3, 4, 5, 6}

// IsCompleteCode reports whether cell holds a full account code: text with
// at least eight non-blank dot-separated segments, the last being exactly six
// digits. Non-text cells never qualify.
func IsCompleteCode(cell models.Cell) bool {
	if cell.Kind != models.CellText {
		return false
	}

	segments := make([]string, 0, MinCodeSegments)
	for _, s := range strings.Split(strings.TrimSpace(cell.Text), ".") {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < MinCodeSegments {
		return false
	}
	return sixDigits.MatchString(segments[len(segments)-1])
}

// FilterRows keeps the rows whose column 0 is a complete code, in order.
func FilterRows(rows []models.Row) []models.Row {
	kept := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		if IsCompleteCode(row.At(0)) {
			kept = append(kept, row)
		}
	}
	return kept
}

// SumColumns adds up AmountColumns across rows.
func SumColumns(rows []models.Row) models.Totals {
	var totals models.Totals
	for i := range totals {
		totals[i] = decimal.Zero
	}

	for _, row := range rows {
		for i, col := range AmountColumns {
			totals[i] = totals[i].Add(CellAmount(row.At(col)))
		}
	}
	return totals
}

// CellAmount returns the value a cell contributes to a total. Finite numbers
// count as they are, text goes through the Indonesian-locale parser, and
// anything else, or text that does not parse, counts as zero.
func CellAmount(cell models.Cell) decimal.Decimal {
	switch cell.Kind {
	case models.CellNumber:
		if math.IsInf(cell.Num, 0) || math.IsNaN(cell.Num) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(cell.Num)
	case models.CellText:
		amount, ok := currencyutils.ParseLocaleAmount(cell.Text)
		if !ok {
			return decimal.Zero
		}
		return amount
	default:
		return decimal.Zero
	}
}
