// Package report renders a run summary of a normalized sheet as JSON or XML.
package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fjacquet/realisasi/internal/currencyutils"
	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"

	"github.com/shopspring/decimal"
)

// Report formats.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Summary describes one pipeline run: its totals, the account names it
// derived and any warnings.
type Summary struct {
	XMLName     xml.Name      `json:"-" xml:"summary"`
	RunID       string        `json:"run_id" xml:"runId,attr"`
	Source      string        `json:"source" xml:"source"`
	GeneratedAt time.Time     `json:"generated_at" xml:"generatedAt"`
	SourceRows  int           `json:"source_rows" xml:"sourceRows"`
	Rows        int           `json:"rows" xml:"rows"`
	HeaderFound bool          `json:"header_found" xml:"headerFound"`
	Totals      []TotalLine   `json:"totals" xml:"totals>total"`
	Accounts    []AccountName `json:"accounts" xml:"accounts>account"`
	Warnings    []string      `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// TotalLine is one labelled column total.
type TotalLine struct {
	Label     string          `json:"label" xml:"label,attr"`
	Amount    decimal.Decimal `json:"amount" xml:"amount"`
	Formatted string          `json:"formatted" xml:"formatted"`
}

// AccountName pairs an account code segment with its description.
type AccountName struct {
	Code string `json:"code" xml:"code,attr"`
	Name string `json:"name" xml:",chardata"`
}

// NewSummary builds the summary of result read from source. Accounts are
// sorted by code.
func NewSummary(result *models.Result, source string, labels models.Labels) *Summary {
	s := &Summary{
		RunID:       result.RunID,
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		SourceRows:  result.SourceRows,
		Rows:        len(result.Rows),
		HeaderFound: result.HeaderFound,
		Warnings:    result.Warnings,
	}

	for i, label := range labels.WithDefaults().AmountHeaders() {
		s.Totals = append(s.Totals, TotalLine{
			Label:     label,
			Amount:    result.Totals[i],
			Formatted: currencyutils.FormatRupiah(result.Totals[i]),
		})
	}

	s.Accounts = make([]AccountName, 0, len(result.AccountNames))
	for code, name := range result.AccountNames {
		s.Accounts = append(s.Accounts, AccountName{Code: code, Name: name})
	}
	sort.Slice(s.Accounts, func(i, j int) bool { return s.Accounts[i].Code < s.Accounts[j].Code })

	return s
}

// Generator renders summaries.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator. A nil logger falls back to the default.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{logger: logging.OrDefault(logger)}
}

// FormatFromPath picks the report format from the extension of path, or
// returns fallback when the extension is not a known format.
func FormatFromPath(path, fallback string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case FormatJSON:
		return FormatJSON
	case FormatXML:
		return FormatXML
	default:
		return fallback
	}
}

// GenerateReport renders summary in format (json or xml).
func (g *Generator) GenerateReport(summary *Summary, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.generateJSONReport(summary)
	case FormatXML:
		return g.generateXMLReport(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteReport renders summary and writes it to path.
func (g *Generator) WriteReport(summary *Summary, format, path string) error {
	data, err := g.GenerateReport(summary, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	g.logger.Info("Wrote report",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldRunID, summary.RunID))
	return nil
}

func (g *Generator) generateJSONReport(summary *Summary) ([]byte, error) {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateXMLReport(summary *Summary) ([]byte, error) {
	out, err := xml.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal XML report")
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(out)), nil
}
