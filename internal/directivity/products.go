package directivity

import (
	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/ambisonics/internal/harmonics"
)

// PointSourceProduct returns each of the sixteen listener components scaled
// by the matching source component, without summing or normalizing. The
// result has the layout of harmonics.GridCoefficients, so individual curves
// such as V or K can be read by name.
func PointSourceProduct(listener harmonics.Grid, source harmonics.Direction) (harmonics.GridCoefficients, error) {
	lc, err := harmonics.EncodeGrid(listener)
	if err != nil {
		return harmonics.GridCoefficients{}, err
	}
	sc := Encode(source)
	for _, o := range harmonics.Orders {
		src := sc.Order(o)
		// The component slices are freshly allocated by EncodeGrid, so they
		// are scaled in place.
		for k, comp := range lc.Order(o) {
			floats.Scale(src[k], comp)
		}
	}
	return lc, nil
}

// ProductSums adds up the component products of each order. The result
// matches OrderSums for the same listener and source.
func ProductSums(prod harmonics.GridCoefficients) [harmonics.NumOrders][]float64 {
	var sums [harmonics.NumOrders][]float64
	n := prod.Len()
	for _, o := range harmonics.Orders {
		sum := make([]float64, n)
		for _, comp := range prod.Order(o) {
			floats.Add(sum, comp)
		}
		sums[o] = sum
	}
	return sums
}
