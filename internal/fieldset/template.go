// =============================================================================
// CFDI Report - XLSX Descriptor Templates
// =============================================================================
//
// Field descriptors can be maintained in a spreadsheet instead of YAML. The
// first sheet of the workbook is read; each data row defines one descriptor.
//
// TEMPLATE STRUCTURE (Expected Columns):
//
//   | Column A | Column B                           |
//   |----------|------------------------------------|
//   | Name     | Path                               |
//   | fecha    | Fecha                              |
//   | emisor   | Emisor/Nombre                      |
//   | impuestos| Impuestos/TotalImpuestosTrasladados|
//
// Row order is descriptor order, which is also the order in which values are
// printed in the report.
//
// =============================================================================

package fieldset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TemplateColumns describes where the descriptor data lives in the sheet.
// Column and row indices are 0-based (A=0, B=1; Row 1 = 0).
type TemplateColumns struct {
	// NameColumn holds the output field name.
	// Default: 0 (Column A)
	NameColumn int

	// PathColumn holds the "/"-separated path.
	// Default: 1 (Column B)
	PathColumn int

	// DataStartRow is the first row holding a descriptor.
	// Default: 1 (Row 2, below the header)
	DataStartRow int
}

// DefaultTemplateColumns returns the default column configuration.
func DefaultTemplateColumns() TemplateColumns {
	return TemplateColumns{
		NameColumn:   0,
		PathColumn:   1,
		DataStartRow: 1,
	}
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// LoadTemplate reads descriptors from an XLSX template using the default
// column layout.
func LoadTemplate(templatePath string) ([]Descriptor, error) {
	return LoadTemplateWithColumns(templatePath, DefaultTemplateColumns())
}

// LoadTemplateWithColumns reads descriptors from an XLSX template.
//
// RETURNS:
//   - The descriptors in row order, validated.
//   - An error if the workbook cannot be read, a row is incomplete, or the
//     resulting set fails Validate.
func LoadTemplateWithColumns(templatePath string, columns TemplateColumns) ([]Descriptor, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open template file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("template file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	var descriptors []Descriptor
	for i := columns.DataStartRow; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}

		descriptor, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("error parsing row %d: %w", i+1, err)
		}
		descriptors = append(descriptors, descriptor)
	}

	if err := Validate(descriptors); err != nil {
		return nil, fmt.Errorf("invalid template %s: %w", templatePath, err)
	}

	return descriptors, nil
}

// parseRow extracts a descriptor from a single row.
func parseRow(row []string, columns TemplateColumns) (Descriptor, error) {
	getCell := func(index int) string {
		if index < len(row) {
			return strings.TrimSpace(row[index])
		}
		return ""
	}

	name := getCell(columns.NameColumn)
	path := getCell(columns.PathColumn)

	if name == "" {
		return Descriptor{}, fmt.Errorf("missing field name")
	}
	if path == "" {
		return Descriptor{}, fmt.Errorf("field %q: missing path", name)
	}

	return New(name, path), nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
