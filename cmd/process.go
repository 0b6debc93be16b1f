// =============================================================================
// CFDI Report - Report Run
// =============================================================================
//
// This file wires configuration, logging and the processor together for the
// root command.
//
// PROCESSING PIPELINE:
//   1. Load configuration (file, template, flags)
//   2. Build the stderr logger
//   3. Run the processor against the directory, writing the report to stdout
//
// =============================================================================

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/cfdi-report/internal/logging"
	"github.com/ginjaninja78/cfdi-report/internal/processor"
	"github.com/ginjaninja78/cfdi-report/pkg/utils"
)

// runReport is the main function that produces the report for dir.
func runReport(cmd *cobra.Command, dir string) error {
	startTime := time.Now()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	if dir == "" {
		dir = utils.DefaultInvoiceDir
	}
	logger.Debug().
		Str("dir", dir).
		Str("namespace", cfg.Namespace).
		Int("fields", len(cfg.Fields)).
		Bool("continue_on_error", cfg.ContinueOnError).
		Msg("starting report")

	proc := processor.New(cfg, cmd.OutOrStdout(), logger)
	summary, err := proc.Run(dir)

	event := logger.Info()
	if summary != nil {
		event = event.Int("processed", summary.Processed).Int("failed", len(summary.Failures))
	}
	event.Dur("elapsed", time.Since(startTime)).Msg("report finished")

	return err
}
