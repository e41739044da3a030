package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapiroWilk_ExactLine(t *testing.T) {
	// For n=3 equally spaced points W is exactly 1 and the n=3 p-value
	// transform is exact.
	w, p, err := ShapiroWilk([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w, 1e-12)
	assert.InDelta(t, 1.0, p, 1e-12)
}

func TestShapiroWilk_SmallAsymmetricTriple(t *testing.T) {
	w, p, err := ShapiroWilk([]float64{1, 2, 10})
	require.NoError(t, err)
	assert.InDelta(t, 0.8322, w, 0.005)
	assert.Greater(t, p, 0.1)
	assert.Less(t, p, 0.3)
}

func TestShapiroWilk_RoughlyNormalSample(t *testing.T) {
	data := []float64{10, 11, 9, 10, 12, 11, 10, 9}

	w, p, err := ShapiroWilk(data)
	require.NoError(t, err)
	assert.Greater(t, w, 0.85)
	assert.GreaterOrEqual(t, p, 0.05, "symmetric bell-shaped sample should not reject normality")
}

func TestShapiroWilk_HeavyOutlier(t *testing.T) {
	data := []float64{1, 1, 1, 2, 50, 1, 1}

	_, p, err := ShapiroWilk(data)
	require.NoError(t, err)
	assert.Less(t, p, 0.05, "extreme outlier should reject normality")
}

func TestShapiroWilk_LargeSkewedSample(t *testing.T) {
	// Strongly right-skewed data on the n>=12 branch.
	data := []float64{
		0.1, 0.2, 0.2, 0.3, 0.3, 0.4, 0.5, 0.5, 0.6, 0.8,
		1.0, 1.3, 1.7, 2.2, 3.1, 4.5, 6.8, 9.9, 15.2, 24.0,
	}

	_, p, err := ShapiroWilk(data)
	require.NoError(t, err)
	assert.Less(t, p, 0.05)
}

func TestShapiroWilk_TooFewObservations(t *testing.T) {
	_, _, err := ShapiroWilk([]float64{1, 2})
	assert.Error(t, err)
}

func TestShapiroWilk_ConstantSample(t *testing.T) {
	_, _, err := ShapiroWilk([]float64{5, 5, 5, 5, 5})
	assert.Error(t, err)
}
