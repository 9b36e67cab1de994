// Package polarity splits a signed curve into the two non-negative curves a
// polar plot draws in different colours: the positive lobes as they are and
// the negative lobes flipped to positive radius.
package polarity

import "gonum.org/v1/gonum/floats"

// Positive returns a copy of x with every negative value replaced by zero.
// Zero counts as non-negative and is kept.
func Positive(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if v >= 0 {
			out[i] = v
		}
	}
	return out
}

// Negative returns the magnitudes of the negative values of x, with zero
// everywhere x is non-negative.
func Negative(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if v < 0 {
			out[i] = -v
		}
	}
	return out
}

// IsZero reports whether every element of x is exactly zero. An empty slice
// is zero.
func IsZero(x []float64) bool {
	return floats.Count(func(v float64) bool { return v != 0 }, x) == 0
}

// Split is a curve separated by sign.
type Split struct {
	Positive []float64 `json:"positive"`
	Negative []float64 `json:"negative"`
}

// Separate splits x into its positive and flipped negative parts.
func Separate(x []float64) Split {
	return Split{Positive: Positive(x), Negative: Negative(x)}
}

// Plottable reports which halves have anything to draw. An all-zero half
// would only produce a degenerate segment at the origin.
func (s Split) Plottable() (pos, neg bool) {
	return !IsZero(s.Positive), !IsZero(s.Negative)
}
