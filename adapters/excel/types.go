package excel

import "math"

// Dataset is a column-oriented numeric view of an uploaded data file.
// Missing or non-numeric cells are represented as NaN.
type Dataset struct {
	Headers []string
	Columns map[string][]float64
	RowsN   int
}

// Column returns the named column's values.
func (d *Dataset) Column(name string) ([]float64, bool) {
	col, ok := d.Columns[name]
	return col, ok
}

// NumericColumns lists columns with at least one parseable numeric value,
// preserving header order.
func (d *Dataset) NumericColumns() []string {
	out := make([]string, 0, len(d.Headers))
	for _, h := range d.Headers {
		for _, v := range d.Columns[h] {
			if !math.IsNaN(v) {
				out = append(out, h)
				break
			}
		}
	}
	return out
}
