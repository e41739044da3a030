package excel

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDataReader_CSV(t *testing.T) {
	path := writeTempCSV(t, "control,treatment,label\n10,20,x\n11,21,y\n9,,z\n")

	ds, err := NewDataReader(path).ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"control", "treatment", "label"}, ds.Headers)
	assert.Equal(t, 3, ds.RowsN)

	control, ok := ds.Column("control")
	require.True(t, ok)
	assert.Equal(t, []float64{10, 11, 9}, control)

	// Blank cell becomes NaN, not a dropped row.
	treatment, ok := ds.Column("treatment")
	require.True(t, ok)
	require.Len(t, treatment, 3)
	assert.Equal(t, 20.0, treatment[0])
	assert.True(t, math.IsNaN(treatment[2]))

	// Non-numeric column is all NaN and excluded from NumericColumns.
	assert.Equal(t, []string{"control", "treatment"}, ds.NumericColumns())
}

func TestDataReader_DecimalComma(t *testing.T) {
	path := writeTempCSV(t, "score\n\"1,5\"\n\"2,5\"\n")

	ds, err := NewDataReader(path).ReadData()
	require.NoError(t, err)

	score, _ := ds.Column("score")
	assert.Equal(t, []float64{1.5, 2.5}, score)
}

func TestDataReader_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "a,b\n")

	_, err := NewDataReader(path).ReadData()
	assert.Error(t, err)
}

func TestDataReader_MissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.csv")).ReadData()
	assert.Error(t, err)
}
