// =============================================================================
// CFDI Report - Processor Module
// =============================================================================
//
// This module contains the report pipeline. It walks the invoice directory
// one file at a time and writes the report as it goes.
//
// REPORT PIPELINE:
//   1. Print the "Procesamiento" banner
//   2. Discover invoice files in the directory
//   3. For each file, in listing order:
//      a. Print the "Procesando <file>" progress line
//      b. Parse the document
//      c. Extract the configured fields
//      d. Print the record
//      e. Parse the amounts and add them to the running totals
//   4. Print the "Resultados" banner and the totals
//   5. If failures were skipped, print the "Errores" banner and the failures
//
// Files are processed sequentially in directory listing order.
//
// =============================================================================

package processor

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/cfdi-report/internal/config"
	"github.com/ginjaninja78/cfdi-report/internal/extractor"
	"github.com/ginjaninja78/cfdi-report/internal/fieldset"
	"github.com/ginjaninja78/cfdi-report/internal/report"
	"github.com/ginjaninja78/cfdi-report/internal/types"
	"github.com/ginjaninja78/cfdi-report/internal/validation"
	"github.com/ginjaninja78/cfdi-report/pkg/utils"
)

// Banner titles.
const (
	TitleProcessing = "Procesamiento"
	TitleResults    = "Resultados"
	TitleErrors     = "Errores"
)

// ErrInvoicesFailed is returned by Run when ContinueOnError skipped at least
// one invoice.
var ErrInvoicesFailed = errors.New("some invoices could not be processed")

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// Result represents the outcome of processing a single invoice.
type Result struct {
	// FilePath is the path as shown in the progress line.
	FilePath string

	// Record holds the extracted fields. Empty if extraction failed.
	Record types.Record

	// Amounts holds subtotal, impuestos and total, in that order.
	Amounts []decimal.Decimal

	// Success indicates whether the invoice was fully processed.
	Success bool

	// Error contains the failure, wrapped with the file path.
	Error error

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// Summary describes a completed run.
type Summary struct {
	// Totals is the sum of every successfully processed invoice.
	Totals Totals

	// Processed is the number of invoices added to the totals.
	Processed int

	// Failures lists skipped invoices when ContinueOnError is set.
	Failures []Result
}

// =============================================================================
// PROCESSOR STRUCTURE
// =============================================================================

// Processor produces the invoice report.
type Processor struct {
	cfg       *config.Config
	extractor *extractor.Extractor
	renderer  *report.Renderer
	logger    zerolog.Logger
}

// New creates a Processor writing the report to out.
func New(cfg *config.Config, out io.Writer, logger zerolog.Logger) *Processor {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Processor{
		cfg:       cfg,
		extractor: extractor.New(cfg.Namespace),
		renderer: report.NewRendererWithOptions(out, report.Options{
			Width:  cfg.ReportWidth,
			Bullet: cfg.ItemBullet,
		}),
		logger: logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run writes the full report for the invoices in dir.
//
// RETURNS:
//   - The run summary. It is non-nil whenever the header was written.
//   - The first invoice error when ContinueOnError is off, ErrInvoicesFailed
//     when it is on and invoices were skipped, or any report write error.
func (p *Processor) Run(dir string) (*Summary, error) {
	summary := &Summary{Totals: NewTotals()}

	if err := p.renderer.Banner(TitleProcessing); err != nil {
		return nil, err
	}

	files, err := utils.NewFileManager(dir).DiscoverInvoices()
	if err != nil {
		return summary, err
	}
	p.logger.Debug().Str("dir", dir).Int("invoices", len(files)).Msg("discovered invoices")

	for _, file := range files {
		result, err := p.ProcessFile(file)
		if err != nil {
			return summary, err
		}

		if !result.Success {
			p.logger.Warn().Str("file", file).Err(result.Error).Msg("invoice failed")
			if !p.cfg.ContinueOnError {
				return summary, result.Error
			}
			summary.Failures = append(summary.Failures, result)
			continue
		}

		summary.Totals.Add(result.Amounts[0], result.Amounts[1], result.Amounts[2])
		summary.Processed++
		p.logger.Debug().Str("file", file).Dur("elapsed", result.ProcessingTime).Msg("invoice processed")
	}

	if err := p.renderer.Banner(TitleResults); err != nil {
		return summary, err
	}
	if err := p.renderer.Values(summary.Totals.Strings()...); err != nil {
		return summary, err
	}

	if len(summary.Failures) > 0 {
		if err := p.renderFailures(summary.Failures); err != nil {
			return summary, err
		}
		return summary, fmt.Errorf("%w: %d of %d", ErrInvoicesFailed, len(summary.Failures), len(files))
	}

	return summary, nil
}

// ProcessFile prints the progress line and the record for one invoice.
//
// Invoice problems (unreadable file, malformed XML, missing element or
// attribute, non-numeric amount) are reported in Result.Error. The returned
// error is reserved for report write failures, which always end the run.
func (p *Processor) ProcessFile(path string) (Result, error) {
	startTime := time.Now()
	result := Result{FilePath: path}

	if err := p.renderer.Item("Procesando "+path, p.cfg.ProgressBullet, p.renderer.Width()); err != nil {
		return result, err
	}
	if err := p.renderer.Blank(); err != nil {
		return result, err
	}

	// =========================================================================
	// STEP 1: PARSE AND EXTRACT
	// =========================================================================

	root, err := extractor.ParseFile(path)
	if err != nil {
		result.Error = fmt.Errorf("process %s: %w", path, err)
		return result, nil
	}

	record, err := p.extractor.Extract(root, p.cfg.Fields)
	if err != nil {
		result.Error = fmt.Errorf("process %s: %w", path, err)
		return result, nil
	}
	result.Record = record

	if err := p.renderer.Record(record); err != nil {
		return result, err
	}

	// =========================================================================
	// STEP 2: PARSE AMOUNTS
	// =========================================================================

	amounts, err := validation.Amounts(record, fieldset.TotalFields())
	if err != nil {
		result.Error = fmt.Errorf("process %s: %w", path, err)
		return result, nil
	}

	result.Amounts = amounts
	result.Success = true
	result.ProcessingTime = time.Since(startTime)

	return result, nil
}

// renderFailures lists skipped invoices after the totals.
func (p *Processor) renderFailures(failures []Result) error {
	if err := p.renderer.Banner(TitleErrors); err != nil {
		return err
	}
	for _, f := range failures {
		if err := p.renderer.Item(f.Error.Error(), p.cfg.ErrorBullet, p.renderer.Width()); err != nil {
			return err
		}
	}
	return p.renderer.Blank()
}
