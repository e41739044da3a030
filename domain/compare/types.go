package compare

import "fmt"

// Alpha is the fixed significance threshold shared by the normality
// diagnostic and the hypothesis test.
const Alpha = 0.05

// Normality is the tagged outcome of the per-sample normality diagnostic.
type Normality int

const (
	// NormalityNotNormal means the diagnostic rejected normality (p < Alpha).
	NormalityNotNormal Normality = iota
	// NormalityNormal means the diagnostic did not reject normality (p >= Alpha).
	NormalityNormal
	// NormalityInapplicable means the diagnostic could not run (fewer than 3
	// observations, zero variance, or any other numerical failure). It is
	// always treated as NotNormal when selecting the test.
	NormalityInapplicable
)

func (n Normality) String() string {
	switch n {
	case NormalityNormal:
		return "normal"
	case NormalityInapplicable:
		return "inapplicable"
	default:
		return "not-normal"
	}
}

// TestKind identifies which hypothesis test the comparator ran.
type TestKind string

const (
	TestStudentT    TestKind = "T-test"
	TestMannWhitney TestKind = "Mann-Whitney U test"
)

// Result is the comparator's verdict record. It is immutable and scoped to
// the call that produced it.
type Result struct {
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
	Message     string  `json:"message"`
}

// ComputationError reports that the selected hypothesis test could not
// produce a statistic. It is fatal for the call: retrying with the same
// inputs cannot succeed.
type ComputationError struct {
	Step  string
	Cause error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("comparison failed at %s: %v", e.Step, e.Cause)
}

func (e *ComputationError) Unwrap() error {
	return e.Cause
}
