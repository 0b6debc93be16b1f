// =============================================================================
// CFDI Report - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which loads the configuration
// (and field template, if any) and prints the resulting field set without
// reading any invoice.
//
// COMMAND USAGE:
//   cfdi-report validate [--config file.yaml] [--template fields.xlsx]
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/cfdi-report/internal/report"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and print the fields that will be extracted",
	Args:  cobra.NoArgs,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		r := report.NewRendererWithOptions(cmd.OutOrStdout(), report.Options{
			Width:  cfg.ReportWidth,
			Bullet: cfg.ItemBullet,
		})

		if err := r.Banner("Campos"); err != nil {
			return err
		}
		if err := r.Item("Namespace "+cfg.Namespace, cfg.ProgressBullet, r.Width()); err != nil {
			return err
		}
		if err := r.Blank(); err != nil {
			return err
		}

		values := make([]string, len(cfg.Fields))
		for i, d := range cfg.Fields {
			values[i] = d.String()
		}
		return r.Values(values...)
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}
