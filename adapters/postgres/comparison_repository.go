package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"neurometrics/models"
	"neurometrics/ports"
)

// ComparisonRepositoryImpl implements ComparisonRepository for PostgreSQL
type ComparisonRepositoryImpl struct {
	db *sqlx.DB
}

// NewComparisonRepository creates a new PostgreSQL comparison repository
func NewComparisonRepository(db *sqlx.DB) *ComparisonRepositoryImpl {
	return &ComparisonRepositoryImpl{db: db}
}

var _ ports.ComparisonRepository = (*ComparisonRepositoryImpl)(nil)

// EnsureSchema creates the comparisons table if it does not exist
func (r *ComparisonRepositoryImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS comparisons (
			id UUID PRIMARY KEY,
			group_a_label TEXT NOT NULL,
			group_b_label TEXT NOT NULL,
			sample_size_a INT NOT NULL,
			sample_size_b INT NOT NULL,
			p_value DOUBLE PRECISION NOT NULL,
			significant BOOLEAN NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

// SaveComparison persists a single comparison verdict
func (r *ComparisonRepositoryImpl) SaveComparison(ctx context.Context, record *models.ComparisonRecord) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO comparisons (
			id, group_a_label, group_b_label, sample_size_a, sample_size_b,
			p_value, significant, message, created_at
		) VALUES (
			:id, :group_a_label, :group_b_label, :sample_size_a, :sample_size_b,
			:p_value, :significant, :message, :created_at
		)`, record)
	return err
}

// ListComparisons returns the most recent comparisons, newest first
func (r *ComparisonRepositoryImpl) ListComparisons(ctx context.Context, limit int) ([]models.ComparisonRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var records []models.ComparisonRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, group_a_label, group_b_label, sample_size_a, sample_size_b,
		       p_value, significant, message, created_at
		FROM comparisons
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return records, nil
}
