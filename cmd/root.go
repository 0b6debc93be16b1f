// =============================================================================
// CFDI Report - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Run without a
// subcommand, the root command produces the invoice report for a directory.
//
// COBRA CLI STRUCTURE:
//   rootCmd (cfdi-report [dir])
//   ├── validateCmd (cfdi-report validate)
//   └── versionCmd (cfdi-report version)
//
// OUTPUT:
//   stdout carries the report and nothing else. Diagnostics and the final
//   error message go to stderr.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/cfdi-report/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
var cfgFile string

// templateFile holds the path to an optional XLSX field template.
var templateFile string

// verbose enables debug logging on stderr.
var verbose bool

// continueOnError skips failed invoices instead of aborting.
var continueOnError bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cfdi-report [dir]",
	Short: "Summarise a directory of CFDI invoices as a plain-text report",
	Long: `cfdi-report reads every XML invoice in a directory, prints the date,
issuer, receiver, subtotal, taxes and total of each one, and finishes with the
sum of subtotals, taxes and totals across all invoices. Sums are exact;
whole amounts print with one decimal ("100.0").

The directory defaults to the current directory. Any file whose name ends in
"xml" is treated as an invoice.

Example Usage:
  cfdi-report                          # Report on the current directory
  cfdi-report ./facturas/2018-03       # Report on a specific directory
  cfdi-report --continue-on-error ./x  # Skip broken invoices, list them at the end
  cfdi-report validate --template campos.xlsx`,

	Args: cobra.MaximumNArgs(1),

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		return runReport(cmd, dir)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file (built-in defaults when empty)",
	)

	rootCmd.PersistentFlags().StringVar(
		&templateFile,
		"template",
		"",
		"Path to an XLSX template defining the fields to extract",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)

	rootCmd.Flags().BoolVar(
		&continueOnError,
		"continue-on-error",
		false,
		"Skip invoices that cannot be processed and list them after the totals",
	)
}

// loadConfig loads the configuration file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if templateFile != "" {
		cfg.TemplateFile = templateFile
		if err := cfg.LoadTemplate(); err != nil {
			return nil, err
		}
	}

	if f := cmd.Flags().Lookup("continue-on-error"); f != nil && f.Changed {
		cfg.ContinueOnError = continueOnError
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
