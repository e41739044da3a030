// Package sweep runs the group comparator over every column pair of a
// dataset, bounded-concurrently. Each pair carries its own verdict or
// failure; one degenerate pair never aborts the rest of the sweep.
package sweep

import (
	"context"

	"golang.org/x/sync/errgroup"

	"neurometrics/adapters/excel"
	"neurometrics/domain/compare"
)

// PairResult holds the comparison outcome for one column pair.
type PairResult struct {
	ColumnA string          `json:"column_a"`
	ColumnB string          `json:"column_b"`
	Result  *compare.Result `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Run compares all unordered pairs of numeric columns in the dataset.
// Results are ordered by pair position regardless of completion order.
func Run(ctx context.Context, ds *excel.Dataset, concurrency int) []PairResult {
	if concurrency < 1 {
		concurrency = 1
	}

	cols := ds.NumericColumns()
	var pairs [][2]string
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			pairs = append(pairs, [2]string{cols[i], cols[j]})
		}
	}

	results := make([]PairResult, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for idx, pair := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[idx] = PairResult{ColumnA: pair[0], ColumnB: pair[1], Error: err.Error()}
				return nil
			}

			a, _ := ds.Column(pair[0])
			b, _ := ds.Column(pair[1])

			res, err := compare.Compare(a, b)
			if err != nil {
				results[idx] = PairResult{ColumnA: pair[0], ColumnB: pair[1], Error: err.Error()}
				return nil
			}
			results[idx] = PairResult{ColumnA: pair[0], ColumnB: pair[1], Result: &res}
			return nil
		})
	}
	g.Wait()

	return results
}
