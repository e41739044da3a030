package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Shapiro-Wilk constants from Royston's AS R94 algorithm (1995).
var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.5440, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -2.0322e-3}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 3.8915e-3}
	swC6 = []float64{-0.4803, -0.082676, 3.0302e-3}
	swG  = []float64{-2.273, 0.459}
)

const (
	// asin(sqrt(3/4)) and 6/pi, used for the exact n=3 p-value.
	swSTQR = 1.0471975511965976
	swPI6  = 1.9098593171027440
)

// ShapiroWilk computes the Shapiro-Wilk W statistic and an approximate p-value
// for the null hypothesis that data was drawn from a normal distribution,
// following Royston's AS R94 approximation.
//
// Requires at least 3 observations and a nonzero sample range. The p-value
// approximation is calibrated for sample sizes up to about 5000.
func ShapiroWilk(data []float64) (w, p float64, err error) {
	n := len(data)
	if n < 3 {
		return 0, 0, fmt.Errorf("shapiro-wilk requires at least 3 observations, got %d", n)
	}

	x := make([]float64, n)
	copy(x, data)
	sort.Float64s(x)

	if x[n-1] == x[0] {
		return 0, 0, fmt.Errorf("shapiro-wilk undefined for zero-range sample")
	}

	// Expected normal order statistics via Blom scores.
	fn := float64(n)
	m := make([]float64, n)
	ssumM2 := 0.0
	for i := 0; i < n; i++ {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (fn + 0.25))
		ssumM2 += m[i] * m[i]
	}

	// Weights: normalize m, then replace the tail coefficients with
	// Royston's polynomial-adjusted values.
	a := make([]float64, n)
	rsn := 1.0 / math.Sqrt(fn)
	switch {
	case n == 3:
		a[2] = math.Sqrt(0.5)
		a[0] = -a[2]
	case n <= 5:
		an := m[n-1]/math.Sqrt(ssumM2) + swPoly(swC1, rsn)
		phi := (ssumM2 - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
		a[n-1] = an
		a[0] = -an
		for i := 1; i < n-1; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	default:
		an := m[n-1]/math.Sqrt(ssumM2) + swPoly(swC1, rsn)
		an1 := m[n-2]/math.Sqrt(ssumM2) + swPoly(swC2, rsn)
		phi := (ssumM2 - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) /
			(1 - 2*an*an - 2*an1*an1)
		a[n-1] = an
		a[n-2] = an1
		a[0] = -an
		a[1] = -an1
		for i := 2; i < n-2; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= fn

	num := 0.0
	ss := 0.0
	for i, v := range x {
		num += a[i] * v
		d := v - mean
		ss += d * d
	}
	if ss == 0 {
		return 0, 0, fmt.Errorf("shapiro-wilk undefined for zero-variance sample")
	}

	w = num * num / ss
	if w > 1 {
		w = 1
	}

	// P-value transform depends on the sample size regime.
	switch {
	case n == 3:
		p = swPI6 * (math.Asin(math.Sqrt(w)) - swSTQR)
		p = math.Max(0, math.Min(1, p))
	case n <= 11:
		gamma := swPoly(swG, fn)
		y := -math.Log(gamma - math.Log(1-w))
		mu := swPoly(swC3, fn)
		sigma := math.Exp(swPoly(swC4, fn))
		p = 1 - distuv.UnitNormal.CDF((y-mu)/sigma)
	default:
		ln := math.Log(fn)
		y := math.Log(1 - w)
		mu := swPoly(swC5, ln)
		sigma := math.Exp(swPoly(swC6, ln))
		p = 1 - distuv.UnitNormal.CDF((y-mu)/sigma)
	}

	if math.IsNaN(p) {
		return 0, 0, fmt.Errorf("shapiro-wilk p-value did not converge")
	}
	return w, p, nil
}

// swPoly evaluates c[0] + c[1]*x + c[2]*x^2 + ...
func swPoly(c []float64, x float64) float64 {
	res := 0.0
	pow := 1.0
	for _, coeff := range c {
		res += coeff * pow
		pow *= x
	}
	return res
}
