// Package directivity composes listener and source encodings into the
// point-source response of an Ambisonics encode/decode round trip.
//
// For every order the listener components are weighted by the source
// components and summed; the cumulative sums up to order n are divided by the
// channel count (n+1)². Nothing here holds state between calls, a moving
// source is simply a new source Direction per call.
package directivity

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/ambisonics/internal/harmonics"
)

// Encode returns the full encoding of a single source direction.
func Encode(source harmonics.Direction) harmonics.Coefficients {
	return harmonics.Encode(source)
}

// Profile holds the normalized cumulative directivity curves, one value per
// listener direction.
type Profile struct {
	Zero   []float64 `json:"zero"`
	First  []float64 `json:"first"`
	Second []float64 `json:"second"`
	Third  []float64 `json:"third"`
}

// Order returns the curve for cumulative order o, or nil for an unsupported
// order.
func (p Profile) Order(o harmonics.Order) []float64 {
	switch o {
	case harmonics.Zero:
		return p.Zero
	case harmonics.First:
		return p.First
	case harmonics.Second:
		return p.Second
	case harmonics.Third:
		return p.Third
	default:
		return nil
	}
}

// Len returns the number of listener directions in the profile.
func (p Profile) Len() int {
	return len(p.Zero)
}

// Peak returns the listener index and value of the maximum of the curve for
// cumulative order o. ok is false when the curve is empty.
func (p Profile) Peak(o harmonics.Order) (idx int, value float64, ok bool) {
	curve := p.Order(o)
	if len(curve) == 0 {
		return -1, math.NaN(), false
	}
	idx = floats.MaxIdx(curve)
	return idx, curve[idx], true
}

// OrderSums returns, for every order, the sum over that order's components of
// listener component times source component. The sums are not cumulative and
// not normalized.
func OrderSums(listener harmonics.Grid, source harmonics.Direction) ([harmonics.NumOrders][]float64, error) {
	var sums [harmonics.NumOrders][]float64
	lc, err := harmonics.EncodeGrid(listener)
	if err != nil {
		return sums, err
	}
	sc := Encode(source)
	n := lc.Len()
	for _, o := range harmonics.Orders {
		sum := make([]float64, n)
		src := sc.Order(o)
		for k, comp := range lc.Order(o) {
			floats.AddScaled(sum, src[k], comp)
		}
		sums[o] = sum
	}
	return sums, nil
}

// Directivity returns the cumulative directivity of a source at source as
// seen from each listener direction. Curve n is the running sum of OrderSums
// 0..n divided by (n+1)².
func Directivity(listener harmonics.Grid, source harmonics.Direction) (Profile, error) {
	sums, err := OrderSums(listener, source)
	if err != nil {
		return Profile{}, err
	}
	n := len(sums[harmonics.Zero])
	running := make([]float64, n)
	var curves [harmonics.NumOrders][]float64
	for _, o := range harmonics.Orders {
		floats.Add(running, sums[o])
		channels := float64(o.Channels())
		curve := make([]float64, n)
		for i, v := range running {
			curve[i] = v / channels
		}
		curves[o] = curve
	}
	return Profile{
		Zero:   curves[harmonics.Zero],
		First:  curves[harmonics.First],
		Second: curves[harmonics.Second],
		Third:  curves[harmonics.Third],
	}, nil
}
