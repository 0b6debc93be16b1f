// =============================================================================
// CFDI Report - File Manager Utility
// =============================================================================
//
// This module provides the file utilities used by the report:
//   - Invoice discovery in a single directory (no recursion)
//   - Display path construction for progress lines
//
// DISCOVERY RULES:
//   - Entries are taken in the order os.ReadDir returns them (sorted by name)
//   - An entry is an invoice when its name ends with the suffix "xml"
//     (case-sensitive, no dot required, so "facturaxml" also matches)
//   - Directories are skipped even when their name matches
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"strings"
)

// InvoiceSuffix is the name suffix that marks a file as an invoice.
const InvoiceSuffix = "xml"

// DefaultInvoiceDir is the directory scanned when none is given.
const DefaultInvoiceDir = "./"

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file discovery for the report.
type FileManager struct {
	// InputDir is the directory holding the invoices, exactly as given by
	// the user. It is used verbatim as the prefix of every discovered path.
	InputDir string

	// Suffix is the case-sensitive file name suffix to match.
	Suffix string
}

// NewFileManager creates a FileManager for inputDir. An empty inputDir
// selects DefaultInvoiceDir.
func NewFileManager(inputDir string) *FileManager {
	if inputDir == "" {
		inputDir = DefaultInvoiceDir
	}
	return &FileManager{
		InputDir: inputDir,
		Suffix:   InvoiceSuffix,
	}
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInvoices lists the invoice files in the input directory.
//
// RETURNS:
//   - The display paths of matching files, in directory listing order.
//   - An error if the directory cannot be read.
func (fm *FileManager) DiscoverInvoices() ([]string, error) {
	entries, err := os.ReadDir(fm.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), fm.Suffix) {
			continue
		}
		files = append(files, JoinPath(fm.InputDir, entry.Name()))
	}

	return files, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// JoinPath appends name to dir without cleaning dir, so "./" stays "./" and
// the progress line shows the directory the way it was typed.
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
