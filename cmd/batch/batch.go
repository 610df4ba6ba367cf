// Package batch handles batch processing of files
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"fjacquet/realisasi/cmd/common"
	"fjacquet/realisasi/cmd/root"
	internalbatch "fjacquet/realisasi/internal/batch"
	"fjacquet/realisasi/internal/currencyutils"
	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"

	"github.com/spf13/cobra"
)

// Format overrides export.format for this run
var Format string

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process realisasi workbooks from a directory",
	Long: `Batch process files from an input directory and output them to another directory.

Every .xlsx, .xlsm and .csv file in the input directory is normalized
independently; a file that fails does not stop the others. A summary of the
consolidated totals is printed when all files are done.

Example:
  realisasi batch -i laporan/ -o hasil/`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Format, "format", "f", "", "Output format (xlsx, csv); defaults to export.format")
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
		return
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
		return
	}

	processor := appContainer.GetBatchProcessor()
	if Format != "" {
		conv, err := common.ConverterFor(appContainer, Format)
		if err != nil {
			logger.Fatalf("Error selecting output format: %v", err)
			return
		}
		processor = internalbatch.NewProcessor(conv, conv.Exporter().Format(), appContainer.GetConfig().Batch.Workers, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := processor.ProcessDirectory(ctx, inputDir, outputDir)
	if err != nil {
		logger.Fatalf("Error during batch conversion: %v", err)
		return
	}

	agg := internalbatch.AggregateResults(results)
	PrintSummary(cmd.OutOrStdout(), results, agg, appContainer.GetConfig().Labels)

	logger.Info(fmt.Sprintf("Batch processing completed. %d of %d files converted.", agg.Succeeded, agg.Files),
		logging.F(logging.FieldRows, agg.Rows))
}

// PrintSummary writes one line per file followed by the consolidated totals.
func PrintSummary(w io.Writer, results []internalbatch.FileResult, agg internalbatch.Aggregate, labels models.Labels) {
	for _, r := range results {
		if r.OK() {
			_, _ = fmt.Fprintf(w, "OK     %s -> %s (%d rows)\n", filepath.Base(r.Input), filepath.Base(r.Output), r.Rows)
			continue
		}
		_, _ = fmt.Fprintf(w, "GAGAL  %s: %v\n", filepath.Base(r.Input), r.Err)
	}

	_, _ = fmt.Fprintf(w, "\n%d files, %d converted, %d failed, %d rows\n", agg.Files, agg.Succeeded, agg.Failed, agg.Rows)
	for i, label := range labels.WithDefaults().AmountHeaders() {
		_, _ = fmt.Fprintf(w, "%-30s %s\n", label, currencyutils.FormatRupiah(agg.Totals[i]))
	}
}
