package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// MannWhitneyU performs the Mann-Whitney U rank-sum test and returns the U
// statistic for the first sample and the two-tailed p-value from the normal
// approximation with midranks, tie correction and a 0.5 continuity correction.
//
// When every pooled value is identical the rank distribution carries no
// information and the p-value degrades to 1.0. Errors on empty input.
func MannWhitneyU(a, b []float64) (u, p float64, err error) {
	n1 := len(a)
	n2 := len(b)
	if n1 == 0 || n2 == 0 {
		return 0, 0, fmt.Errorf("mann-whitney requires non-empty samples, got %d and %d", n1, n2)
	}

	type obs struct {
		value float64
		group int
	}
	pooled := make([]obs, 0, n1+n2)
	for _, v := range a {
		pooled = append(pooled, obs{v, 0})
	}
	for _, v := range b {
		pooled = append(pooled, obs{v, 1})
	}
	sort.Slice(pooled, func(i, j int) bool { return pooled[i].value < pooled[j].value })

	// Midranks, accumulating the tie correction term sum(t^3 - t).
	n := n1 + n2
	rankSumA := 0.0
	tieTerm := 0.0
	for i := 0; i < n; {
		j := i
		for j < n && pooled[j].value == pooled[i].value {
			j++
		}
		t := float64(j - i)
		rank := float64(i+j+1) / 2 // average of ranks i+1..j
		for k := i; k < j; k++ {
			if pooled[k].group == 0 {
				rankSumA += rank
			}
		}
		tieTerm += t*t*t - t
		i = j
	}

	fn1 := float64(n1)
	fn2 := float64(n2)
	fn := float64(n)
	u = rankSumA - fn1*(fn1+1)/2

	mu := fn1 * fn2 / 2
	variance := fn1 * fn2 / 12 * ((fn + 1) - tieTerm/(fn*(fn-1)))
	if variance <= 0 {
		// Every pooled value identical: no rank information.
		return u, 1, nil
	}

	z := (math.Abs(u-mu) - 0.5) / math.Sqrt(variance)
	if z < 0 {
		z = 0
	}
	p = 2 * (1 - distuv.UnitNormal.CDF(z))
	if p > 1 {
		p = 1
	}
	return u, p, nil
}
