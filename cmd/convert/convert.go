// Package convert handles single-file conversion of realisasi workbooks
package convert

import (
	"fjacquet/realisasi/cmd/common"
	"fjacquet/realisasi/cmd/root"
	"fjacquet/realisasi/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Format overrides export.format for this run
	Format string
	// ReportPath, when set, receives a JSON or XML run summary
	ReportPath string
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a realisasi workbook to normalized XLSX or CSV",
	Long: `Convert a budget realisation workbook (XLSX or CSV export) to a normalized
XLSX or CSV file holding one row per complete account code and its amounts.

Example:
  realisasi convert -i laporan.xlsx -o hasil.xlsx
  realisasi convert -i laporan.xlsx -o hasil.csv --format csv --report ringkasan.json`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Format, "format", "f", "", "Output format (xlsx, csv); defaults to export.format")
	Cmd.Flags().StringVarP(&ReportPath, "report", "r", "", "Write a run summary (.json or .xml)")
}

func convertFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
		return
	}

	conv, err := common.ConverterFor(appContainer, Format)
	if err != nil {
		logger.Fatalf("Error selecting output format: %v", err)
		return
	}

	input := root.SharedFlags.Input
	result, err := common.ProcessFile(conv, input, root.SharedFlags.Output, conv.Exporter().Format(), logger)
	if err != nil {
		logger.Fatalf("Error converting file: %v", err)
		return
	}

	if ReportPath != "" {
		cfg := appContainer.GetConfig()
		if err := common.WriteSummary(appContainer.GetReportGenerator(), result, input, ReportPath, cfg.Report.Format, cfg.Labels); err != nil {
			logger.Fatalf("Error writing report: %v", err)
			return
		}
	}

	for _, w := range result.Warnings {
		logger.Warn("Normalization warning", logging.F(logging.FieldWarning, w))
	}
}
