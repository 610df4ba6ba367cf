package normalizer

import (
	"regexp"
	"strings"

	"fjacquet/realisasi/internal/models"
)

// embeddedAccount matches a description that starts with a six-digit account
// code followed by a dot, e.g. "521211. Belanja Bahan".
var embeddedAccount = regexp.MustCompile(`(?s)^([0-9]{6})\.(.*)$`)

// NormalizeCodeDescription moves an account code embedded at the start of the
// description into the row's code. The code gains the account as its last
// segment unless it already ends with it, and the description keeps only the
// trimmed remainder. Rows whose description does not start with an account
// code are left as they are.
func NormalizeCodeDescription(sheet models.Sheet) models.Sheet {
	for i, row := range sheet {
		desc := strings.TrimSpace(row.At(1).String())
		m := embeddedAccount.FindStringSubmatch(desc)
		if m == nil {
			continue
		}
		account, rest := m[1], strings.TrimSpace(m[2])

		code := row.At(0).String()
		var segments []string
		if code == "" {
			segments = []string{account}
		} else {
			segments = strings.Split(code, ".")
			if segments[len(segments)-1] != account {
				segments = append(segments, account)
			}
		}

		row = widen(row, 2)
		row[0] = models.TextCell(strings.Join(segments, "."))
		row[1] = models.TextCell(rest)
		sheet[i] = row
	}
	return sheet
}
