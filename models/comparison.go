package models

import (
	"time"

	"github.com/google/uuid"

	"neurometrics/domain/compare"
)

// ComparisonRecord is a persisted comparison verdict with the labels the
// caller used for the two groups. The comparator itself stays pure; records
// are written by the HTTP surfaces when history is enabled.
type ComparisonRecord struct {
	ID          uuid.UUID `db:"id" json:"id"`
	GroupALabel string    `db:"group_a_label" json:"group_a_label"`
	GroupBLabel string    `db:"group_b_label" json:"group_b_label"`
	SampleSizeA int       `db:"sample_size_a" json:"sample_size_a"`
	SampleSizeB int       `db:"sample_size_b" json:"sample_size_b"`
	PValue      float64   `db:"p_value" json:"p_value"`
	Significant bool      `db:"significant" json:"significant"`
	Message     string    `db:"message" json:"message"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// NewComparisonRecord builds a record from a verdict and its context.
func NewComparisonRecord(labelA, labelB string, sizeA, sizeB int, result compare.Result) *ComparisonRecord {
	return &ComparisonRecord{
		ID:          uuid.New(),
		GroupALabel: labelA,
		GroupBLabel: labelB,
		SampleSizeA: sizeA,
		SampleSizeB: sizeB,
		PValue:      result.PValue,
		Significant: result.Significant,
		Message:     result.Message,
		CreatedAt:   time.Now().UTC(),
	}
}
