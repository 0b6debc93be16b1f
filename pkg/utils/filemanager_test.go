package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinPath(t *testing.T) {
	sep := string(os.PathSeparator)

	assert.Equal(t, "./a.xml", JoinPath("./", "a.xml"))
	assert.Equal(t, "facturas"+sep+"a.xml", JoinPath("facturas", "a.xml"))
	assert.Equal(t, "facturas/a.xml", JoinPath("facturas/", "a.xml"))
	assert.Equal(t, "a.xml", JoinPath("", "a.xml"))
}

func TestNewFileManager_DefaultDir(t *testing.T) {
	fm := NewFileManager("")

	assert.Equal(t, DefaultInvoiceDir, fm.InputDir)
	assert.Equal(t, InvoiceSuffix, fm.Suffix)
}

func TestDiscoverInvoices_FiltersAndSorts(t *testing.T) {
	// Given
	dir := t.TempDir()
	for _, name := range []string{"c.xml", "a.xml", "b.XML", "dxml", "e.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("<x/>"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "f.xml"), 0o755))

	// When
	files, err := NewFileManager(dir).DiscoverInvoices()

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{
		JoinPath(dir, "a.xml"),
		JoinPath(dir, "c.xml"),
		JoinPath(dir, "dxml"),
	}, files)
}

func TestDiscoverInvoices_EmptyDir(t *testing.T) {
	files, err := NewFileManager(t.TempDir()).DiscoverInvoices()

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverInvoices_MissingDir(t *testing.T) {
	_, err := NewFileManager(filepath.Join(t.TempDir(), "nope")).DiscoverInvoices()

	assert.Error(t, err)
}
