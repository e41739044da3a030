package stats

import (
	"fmt"
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// TwoSampleTTest performs Student's independent two-sample t-test with pooled
// variance (equal variances assumed) and returns the t statistic and the
// two-tailed p-value.
//
// Errors when either sample has fewer than 2 observations or when the pooled
// variance is zero, since the statistic is undefined in those cases.
func TwoSampleTTest(a, b []float64) (t, p float64, err error) {
	n1 := float64(len(a))
	n2 := float64(len(b))
	if n1 < 2 || n2 < 2 {
		return 0, 0, fmt.Errorf("t-test requires at least 2 observations per group, got %d and %d", len(a), len(b))
	}

	mean1, _ := mstats.Mean(a)
	mean2, _ := mstats.Mean(b)
	var1, _ := mstats.SampleVariance(a)
	var2, _ := mstats.SampleVariance(b)

	df := n1 + n2 - 2
	pooled := ((n1-1)*var1 + (n2-1)*var2) / df
	if pooled == 0 {
		return 0, 0, fmt.Errorf("t-test undefined for zero pooled variance")
	}

	t = (mean1 - mean2) / math.Sqrt(pooled*(1/n1+1/n2))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p = 2 * (1 - tDist.CDF(math.Abs(t)))
	return t, p, nil
}
