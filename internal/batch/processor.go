// Package batch converts every report in a directory, one independent
// pipeline run per file, on a bounded pool of workers.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/realisasi/internal/export"
	"fjacquet/realisasi/internal/fileutils"
	"fjacquet/realisasi/internal/logging"
	"fjacquet/realisasi/internal/models"
	"fjacquet/realisasi/internal/parsererror"
	"fjacquet/realisasi/internal/sheetreader"

	"golang.org/x/sync/errgroup"
)

// FileConverter converts a single file. Implementations must be safe for
// concurrent use.
type FileConverter interface {
	ConvertFile(input, output string) (*models.Result, error)
}

// FileResult is the outcome for one input file. Err is set when the file
// failed; the other result fields are then zero.
type FileResult struct {
	Input        string
	Output       string
	RunID        string
	Rows         int
	Totals       models.Totals
	AccountNames map[string]string
	Warnings     []string
	Err          error
}

// OK reports whether the file converted successfully.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// Processor runs a FileConverter over a directory.
type Processor struct {
	converter FileConverter
	format    string
	workers   int
	logger    logging.Logger
}

// NewProcessor creates a Processor writing files in format with at most
// workers conversions in flight. workers below 1 means 1.
func NewProcessor(converter FileConverter, format string, workers int, logger logging.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		converter: converter,
		format:    strings.ToLower(format),
		workers:   workers,
		logger:    logging.OrDefault(logger),
	}
}

// ProcessDirectory converts every supported file directly inside inDir into
// outDir. A failing file is recorded in its FileResult and does not stop the
// others. Results are sorted by input path. The returned error is set only
// when the directory cannot be processed at all or ctx is cancelled; files
// not started before cancellation carry ctx's error.
func (p *Processor) ProcessDirectory(ctx context.Context, inDir, outDir string) ([]FileResult, error) {
	if filepath.Clean(inDir) == filepath.Clean(outDir) {
		return nil, &parsererror.ValidationError{
			FilePath: outDir,
			Reason:   "output directory must differ from input directory",
		}
	}

	files, err := fileutils.ListFilesWithExtensions(inDir, sheetreader.SupportedExtensions...)
	if err != nil {
		return nil, err
	}
	if err := fileutils.EnsureDirectoryExists(outDir); err != nil {
		return nil, err
	}

	start := time.Now()
	p.logger.Info("Starting batch conversion",
		logging.F(logging.FieldInputFile, inDir),
		logging.F(logging.FieldOutputFile, outDir),
		logging.F(logging.FieldCount, len(files)),
		logging.F(logging.FieldWorkers, p.workers))

	outputs := outputPaths(files, outDir, p.format)
	results := make([]FileResult, len(files))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, input := range files {
		results[i] = FileResult{Input: input, Output: outputs[i]}
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i] = p.convert(input, outputs[i])
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	p.logger.Info("Batch conversion finished",
		logging.F(logging.FieldCount, len(results)),
		logging.F("failed", failed),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("batch conversion cancelled: %w", err)
	}
	return results, nil
}

func (p *Processor) convert(input, output string) FileResult {
	fr := FileResult{Input: input, Output: output}

	result, err := p.converter.ConvertFile(input, output)
	if err != nil {
		p.logger.WithError(err).Warn("Skipping file that failed to convert",
			logging.F(logging.FieldInputFile, input))
		fr.Err = err
		return fr
	}

	fr.RunID = result.RunID
	fr.Rows = len(result.Rows)
	fr.Totals = result.Totals
	fr.AccountNames = result.AccountNames
	fr.Warnings = result.Warnings
	return fr
}

// outputPaths maps each input to its output file in dir. Inputs sharing a
// base name ("a.xlsx", "a.csv") get the source extension appended, and a
// numeric suffix when that name is still taken, so no two inputs share an
// output.
func outputPaths(files []string, dir, format string) []string {
	natural := make([]string, len(files))
	counts := make(map[string]int, len(files))
	for i, f := range files {
		natural[i] = export.OutputPath(f, dir, format)
		counts[natural[i]]++
	}

	used := make(map[string]bool, len(files))
	for _, path := range natural {
		if counts[path] == 1 {
			used[path] = true
		}
	}

	out := make([]string, len(files))
	for i, f := range files {
		path := natural[i]
		if counts[path] > 1 {
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(f), "."))
			stem := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f)) + "_" + ext
			path = filepath.Join(dir, stem+"."+format)
			for n := 2; used[path]; n++ {
				path = filepath.Join(dir, fmt.Sprintf("%s_%d.%s", stem, n, format))
			}
			used[path] = true
		}
		out[i] = path
	}
	return out
}
