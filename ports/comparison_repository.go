package ports

import (
	"context"

	"neurometrics/models"
)

// ComparisonRepository stores and retrieves comparison history.
type ComparisonRepository interface {
	SaveComparison(ctx context.Context, record *models.ComparisonRecord) error
	ListComparisons(ctx context.Context, limit int) ([]models.ComparisonRecord, error)
}
