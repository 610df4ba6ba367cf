// Package preview prints the normalized rows of a workbook without writing
// any output file.
package preview

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/realisasi/cmd/root"
	"fjacquet/realisasi/internal/currencyutils"
	"fjacquet/realisasi/internal/models"
	"fjacquet/realisasi/internal/normalizer"
	"fjacquet/realisasi/internal/validation"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// Rows caps the printed rows; 0 uses pipeline.preview_rows
var Rows int

// Cmd represents the preview command
var Cmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the normalized rows and totals of a workbook",
	Long: `Normalize a budget realisation workbook in memory and print the first rows
as a table, followed by the column totals. Nothing is written to disk.

Example:
  realisasi preview -i laporan.xlsx -n 20`,
	Run: previewFunc,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func init() {
	Cmd.Flags().IntVarP(&Rows, "rows", "n", 0, "Number of rows to show (default pipeline.preview_rows)")
}

func previewFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
		return
	}

	input := root.SharedFlags.Input
	if err := validation.ValidateInputFile(input); err != nil {
		logger.Fatalf("Invalid input: %v", err)
		return
	}

	result, err := appContainer.GetConverter().Analyze(input)
	if err != nil {
		logger.Fatalf("Error analyzing file: %v", err)
		return
	}

	Render(cmd.OutOrStdout(), result, appContainer.GetConfig().Labels, Rows)
}

// Render writes up to limit preview rows as a table, then the totals. A limit
// of 0 or less shows the whole preview.
func Render(w io.Writer, result *models.Result, labels models.Labels, limit int) {
	rows := result.Preview
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(labels.Header()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 2:
				return amountStyle
			default:
				return cellStyle
			}
		})
	for _, row := range rows {
		t.Row(formatRow(row)...)
	}

	_, _ = fmt.Fprintln(w, t.Render())
	_, _ = fmt.Fprintf(w, "%d of %d rows shown\n", len(rows), len(result.Rows))
	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintf(w, "! %s\n", warning)
	}

	_, _ = fmt.Fprintln(w, titleStyle.Render("Jumlah"))
	for i, label := range labels.WithDefaults().AmountHeaders() {
		_, _ = fmt.Fprintf(w, "  %-30s %s\n", label, currencyutils.FormatRupiah(result.Totals[i]))
	}
}

func formatRow(row models.Row) []string {
	record := models.RecordFromRow(row)
	cells := []string{record.Code, strings.TrimSpace(record.Description)}
	for _, amount := range record.Amounts() {
		cells = append(cells, formatAmount(amount))
	}
	return cells
}

// formatAmount renders numbers in rupiah grouping and passes text through.
func formatAmount(c models.Cell) string {
	if c.Kind == models.CellNumber {
		return strings.TrimPrefix(currencyutils.FormatRupiah(normalizer.CellAmount(c)), "Rp ")
	}
	return c.String()
}
