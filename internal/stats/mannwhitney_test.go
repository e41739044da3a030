package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMannWhitneyU_PValues(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{
			name: "single observation each",
			a:    []float64{0},
			b:    []float64{1},
			want: 1.0,
		},
		{
			name: "well separated groups",
			a:    []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			b:    []float64{20, 21, 22, 23, 24, 25, 26, 27, 28, 29},
			want: 0.00018267179110955002,
		},
		{
			name: "overlapping groups with ties",
			a:    []float64{0, 1, 2, 3, 4},
			b:    []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			want: 0.13986357686781267,
		},
		{
			name: "two constant groups",
			a:    []float64{0, 0, 0, 0, 0},
			b:    []float64{1, 1, 1, 1, 1},
			want: 0.0039767517097886512,
		},
		{
			name: "identical constant groups",
			a:    []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			b:    []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, p, err := MannWhitneyU(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, p, 1e-7)
		})
	}
}

func TestMannWhitneyU_Statistic(t *testing.T) {
	// All of a below all of b puts U at its minimum.
	u, _, err := MannWhitneyU([]float64{1, 2, 3}, []float64{10, 11, 12})
	require.NoError(t, err)
	assert.Equal(t, 0.0, u)

	// Reversing the groups puts U at its maximum n1*n2.
	u, _, err = MannWhitneyU([]float64{10, 11, 12}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 9.0, u)
}

func TestMannWhitneyU_Symmetry(t *testing.T) {
	a := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	b := []float64{2, 7, 1, 8, 2, 8}

	_, pAB, err := MannWhitneyU(a, b)
	require.NoError(t, err)
	_, pBA, err := MannWhitneyU(b, a)
	require.NoError(t, err)
	assert.InDelta(t, pAB, pBA, 1e-12)
}

func TestMannWhitneyU_EmptySample(t *testing.T) {
	_, _, err := MannWhitneyU(nil, []float64{1, 2})
	assert.Error(t, err)

	_, _, err = MannWhitneyU([]float64{1, 2}, nil)
	assert.Error(t, err)
}
