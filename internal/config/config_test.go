package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/cfdi-report/internal/extractor"
	"github.com/ginjaninja78/cfdi-report/internal/fieldset"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, extractor.NamespaceCFDI3, cfg.Namespace)
	assert.Equal(t, 80, cfg.ReportWidth)
	assert.Equal(t, "*", cfg.ItemBullet)
	assert.Equal(t, "=>", cfg.ProgressBullet)
	assert.Equal(t, "!", cfg.ErrorBullet)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.ContinueOnError)
	assert.Equal(t, fieldset.Default(), cfg.Fields)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	// Given
	path := writeConfig(t, t.TempDir(), `
namespace: http://www.sat.gob.mx/cfd/4
report_width: 60
continue_on_error: true
log_level: debug
fields:
  - name: fecha
    path: Fecha
  - name: subtotal
    path: [SubTotal]
  - name: impuestos
    path: Impuestos/TotalImpuestosTrasladados
  - name: total
    path: Total
`)

	// When
	cfg, err := Load(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "http://www.sat.gob.mx/cfd/4", cfg.Namespace)
	assert.Equal(t, 60, cfg.ReportWidth)
	assert.True(t, cfg.ContinueOnError)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "*", cfg.ItemBullet)
	require.Len(t, cfg.Fields, 4)
	assert.Equal(t, []string{"Impuestos", "TotalImpuestosTrasladados"}, cfg.Fields[2].Path)
}

func TestLoad_PartialFileKeepsDefaultFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "report_width: 100\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 100, cfg.ReportWidth)
	assert.Equal(t, fieldset.Default(), cfg.Fields)
}

func TestLoad_TemplateFileRelativeToConfig(t *testing.T) {
	// Given
	dir := t.TempDir()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Name", "Path"},
		{"folio", "Folio"},
		{"subtotal", "SubTotal"},
		{"impuestos", "Impuestos/TotalImpuestosTrasladados"},
		{"total", "Total"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, "campos.xlsx")))
	require.NoError(t, f.Close())

	path := writeConfig(t, dir, "template_file: campos.xlsx\n")

	// When
	cfg, err := Load(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "campos.xlsx"), cfg.TemplateFile)
	require.Len(t, cfg.Fields, 4)
	assert.Equal(t, "folio", cfg.Fields[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "report_width: [\n"},
		{name: "narrow width", content: "report_width: 2\n"},
		{name: "missing totals field", content: "fields:\n  - name: fecha\n    path: Fecha\n"},
		{name: "duplicate field", content: "fields:\n  - {name: total, path: Total}\n  - {name: total, path: SubTotal}\n"},
		{name: "missing template", content: "template_file: nope.xlsx\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := Load(path)

			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}
