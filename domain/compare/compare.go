// Package compare decides and executes the statistically appropriate
// two-sample comparison: Shapiro-Wilk normality diagnostics select between
// Student's t-test (both samples plausibly normal) and the Mann-Whitney U
// rank test, and the verdict is packaged with a human-readable message.
package compare

import (
	"fmt"
	"math"

	mstats "github.com/montanaflynn/stats"

	"neurometrics/internal/stats"
)

// Compare sanitizes the two samples, diagnoses their distributional shape,
// runs the appropriate two-sample hypothesis test and returns the verdict.
//
// The function is pure: no I/O, no shared state, safe for concurrent use.
// The only error it returns is *ComputationError, raised when the selected
// test cannot produce a statistic (for example an empty sample after NaN
// removal). Normality diagnostic failures are absorbed, not surfaced.
func Compare(groupA, groupB []float64) (Result, error) {
	a := sanitize(groupA)
	b := sanitize(groupB)

	kind := selectTest(diagnoseNormality(a), diagnoseNormality(b))

	var p float64
	var err error
	switch kind {
	case TestStudentT:
		_, p, err = stats.TwoSampleTTest(a, b)
	default:
		_, p, err = stats.MannWhitneyU(a, b)
	}
	if err != nil {
		return Result{}, &ComputationError{Step: string(kind), Cause: err}
	}

	meanA, _ := mstats.Mean(a)
	meanB, _ := mstats.Mean(b)
	return summarize(p, kind, meanA, meanB), nil
}

// sanitize copies the input with NaN entries removed. The two samples are
// sanitized independently; dropped positions need not align.
func sanitize(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// diagnoseNormality classifies one sanitized sample. Samples too small for
// the diagnostic, or any numerical failure of it, yield Inapplicable: the
// non-parametric path stays valid under minimal assumptions, so the failure
// is absorbed rather than surfaced.
func diagnoseNormality(sample []float64) Normality {
	if len(sample) < 3 {
		return NormalityInapplicable
	}
	_, p, err := stats.ShapiroWilk(sample)
	if err != nil {
		return NormalityInapplicable
	}
	if p >= Alpha {
		return NormalityNormal
	}
	return NormalityNotNormal
}

// selectTest picks the parametric test only when both samples independently
// passed the normality diagnostic. Inapplicable counts as not normal.
func selectTest(a, b Normality) TestKind {
	if a == NormalityNormal && b == NormalityNormal {
		return TestStudentT
	}
	return TestMannWhitney
}

// summarize assembles the verdict record. Direction is reported only for
// significant results and only when one mean is strictly higher; an exact
// mean tie yields no directional claim.
func summarize(p float64, kind TestKind, meanA, meanB float64) Result {
	significant := p < Alpha

	var msg string
	if significant {
		msg = fmt.Sprintf("Significant difference found (p = %.4f). Used %s.", p, kind)
		switch {
		case meanA > meanB:
			msg += " Group A mean is higher."
		case meanB > meanA:
			msg += " Group B mean is higher."
		}
	} else {
		msg = fmt.Sprintf("No significant difference found (p = %.4f). Used %s.", p, kind)
	}

	return Result{PValue: p, Significant: significant, Message: msg}
}
