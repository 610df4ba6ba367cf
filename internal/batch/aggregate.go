package batch

import (
	"fjacquet/realisasi/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate consolidates the successful files of a batch run.
type Aggregate struct {
	Files     int
	Succeeded int
	Failed    int
	Rows      int
	Totals    models.Totals
	// AccountNames merges the per-file maps; the first file, in input order,
	// to name an account wins.
	AccountNames map[string]string
}

// AggregateResults sums the totals and row counts of the successful results
// and merges their account names.
func AggregateResults(results []FileResult) Aggregate {
	agg := Aggregate{
		Files:        len(results),
		AccountNames: make(map[string]string),
	}
	for i := range agg.Totals {
		agg.Totals[i] = decimal.Zero
	}

	for _, r := range results {
		if !r.OK() {
			agg.Failed++
			continue
		}
		agg.Succeeded++
		agg.Rows += r.Rows
		for i := range agg.Totals {
			agg.Totals[i] = agg.Totals[i].Add(r.Totals[i])
		}
		for code, name := range r.AccountNames {
			if _, ok := agg.AccountNames[code]; !ok {
				agg.AccountNames[code] = name
			}
		}
	}
	return agg
}
