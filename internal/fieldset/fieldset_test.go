package fieldset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func TestDefault_OrderAndPaths(t *testing.T) {
	descriptors := Default()

	require.Len(t, descriptors, 6)
	assert.Equal(t, "fecha", descriptors[0].Name)
	assert.Equal(t, []string{"Impuestos", "TotalImpuestosTrasladados"}, descriptors[4].Path)
	assert.Equal(t, "TotalImpuestosTrasladados", descriptors[4].Attribute())
	assert.Equal(t, []string{"Impuestos"}, descriptors[4].Elements())
	assert.Empty(t, descriptors[0].Elements())
	assert.NoError(t, Validate(descriptors))
	assert.NoError(t, RequireTotals(descriptors))
}

func TestDefault_ReturnsCopy(t *testing.T) {
	first := Default()
	first[0].Name = "changed"

	assert.Equal(t, "fecha", Default()[0].Name)
}

func TestNew_SplitsPath(t *testing.T) {
	d := New(" receptor ", "Receptor / Nombre")

	assert.Equal(t, "receptor", d.Name)
	assert.Equal(t, []string{"Receptor", "Nombre"}, d.Path)
	assert.Equal(t, "receptor: Receptor/Nombre", d.String())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []Descriptor
	}{
		{name: "empty set", descriptors: nil},
		{name: "empty name", descriptors: []Descriptor{{Name: "", Path: []string{"Fecha"}}}},
		{name: "empty path", descriptors: []Descriptor{{Name: "fecha"}}},
		{name: "blank segment", descriptors: []Descriptor{New("emisor", "Emisor//Nombre")}},
		{name: "duplicate", descriptors: []Descriptor{New("a", "X"), New("a", "Y")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.descriptors))
		})
	}
}

func TestRequireTotals_MissingField(t *testing.T) {
	err := RequireTotals([]Descriptor{New("subtotal", "SubTotal"), New("total", "Total")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "impuestos")
}

func TestDescriptor_UnmarshalYAML(t *testing.T) {
	content := `
- name: emisor
  path: [Emisor, Nombre]
- name: receptor
  path: Receptor/Nombre
- name: fecha
  path: Fecha
`
	var descriptors []Descriptor
	require.NoError(t, yaml.Unmarshal([]byte(content), &descriptors))

	require.Len(t, descriptors, 3)
	assert.Equal(t, []string{"Emisor", "Nombre"}, descriptors[0].Path)
	assert.Equal(t, []string{"Receptor", "Nombre"}, descriptors[1].Path)
	assert.Equal(t, []string{"Fecha"}, descriptors[2].Path)
}

func TestDescriptor_UnmarshalYAML_RejectsMapPath(t *testing.T) {
	content := `
- name: emisor
  path:
    a: b
`
	var descriptors []Descriptor

	assert.Error(t, yaml.Unmarshal([]byte(content), &descriptors))
}

func writeTemplate(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "campos.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadTemplate_ReadsRowsInOrder(t *testing.T) {
	// Given
	path := writeTemplate(t, [][]interface{}{
		{"Name", "Path"},
		{"fecha", "Fecha"},
		{"emisor", "Emisor/Nombre"},
		{"", ""},
		{"impuestos", "Impuestos/TotalImpuestosTrasladados"},
	})

	// When
	descriptors, err := LoadTemplate(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []Descriptor{
		{Name: "fecha", Path: []string{"Fecha"}},
		{Name: "emisor", Path: []string{"Emisor", "Nombre"}},
		{Name: "impuestos", Path: []string{"Impuestos", "TotalImpuestosTrasladados"}},
	}, descriptors)
}

func TestLoadTemplate_MissingPath(t *testing.T) {
	path := writeTemplate(t, [][]interface{}{
		{"Name", "Path"},
		{"fecha"},
	})

	_, err := LoadTemplate(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadTemplate_NoDescriptors(t *testing.T) {
	path := writeTemplate(t, [][]interface{}{
		{"Name", "Path"},
	})

	_, err := LoadTemplate(path)

	assert.Error(t, err)
}

func TestLoadTemplate_MissingFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.xlsx"))

	assert.Error(t, err)
}
