package deck

import "fmt"

// Series is one named numeric sequence of a chart dataset.
type Series struct {
	Name   string
	Values []float64
}

// ChartDataset carries the category labels and the named series a
// chart slide plots. Series order is preserved through rendering.
type ChartDataset struct {
	Categories []string
	Series     []Series
}

// Validate reports ErrMalformedDataset when the dataset carries no
// series at all, or when any series' value count differs from the
// category count.
func (d ChartDataset) Validate() error {
	if len(d.Series) == 0 {
		return fmt.Errorf("dataset has no series: %w", ErrMalformedDataset)
	}
	for _, s := range d.Series {
		if len(s.Values) != len(d.Categories) {
			return fmt.Errorf("series %q has %d values for %d categories: %w",
				s.Name, len(s.Values), len(d.Categories), ErrMalformedDataset)
		}
	}
	return nil
}

// clone returns a deep copy so appended slides never alias caller slices.
func (d ChartDataset) clone() ChartDataset {
	out := ChartDataset{
		Categories: append([]string(nil), d.Categories...),
		Series:     make([]Series, len(d.Series)),
	}
	for i, s := range d.Series {
		out.Series[i] = Series{
			Name:   s.Name,
			Values: append([]float64(nil), s.Values...),
		}
	}
	return out
}
