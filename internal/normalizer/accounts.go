package normalizer

import (
	"strings"

	"fjacquet/realisasi/internal/models"
)

// DeriveAccountNames maps the last segment of each row's code to the row's
// trimmed description. The first row for a given segment wins. Rows with an
// empty code or description are skipped.
func DeriveAccountNames(sheet models.Sheet) map[string]string {
	names := make(map[string]string)
	for _, row := range sheet {
		code := row.At(0)
		desc := strings.TrimSpace(row.At(1).String())
		if code.IsEmpty() || desc == "" {
			continue
		}

		key := LastSegment(code.String())
		if _, seen := names[key]; !seen {
			names[key] = desc
		}
	}
	return names
}

// LastSegment returns the part of code after its final ".".
func LastSegment(code string) string {
	return code[strings.LastIndex(code, ".")+1:]
}
