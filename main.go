// =============================================================================
// CFDI Report - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CFDI invoice report CLI. It delegates
// command execution to the cmd package.
//
// USAGE:
//   cfdi-report [dir]     - Print the report for every invoice in dir
//   cfdi-report validate  - Print the configured fields without processing
//   cfdi-report version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : extraction, rendering, configuration, processing
//   - pkg/           : shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/cfdi-report/cmd"
)

func main() {
	cmd.Execute()
}
