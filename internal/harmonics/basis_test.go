package harmonics

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

var approx = cmpopts.EquateApprox(0, tol)

// sampleDirections covers the horizontal plane, both poles and a few
// azimuths outside [0, 2π).
var sampleDirections = []Direction{
	{0, 0},
	{0, math.Pi / 2},
	{0, math.Pi},
	{math.Pi / 2, 0},
	{-math.Pi / 2, 1.3},
	{0.3, 0.7},
	{-0.9, 4.1},
	{1.1, -2.5},
	{0.25, 7 * math.Pi},
}

func TestEvalOrder0_AlwaysOne(t *testing.T) {
	t.Parallel()
	for _, d := range sampleDirections {
		assert.Equal(t, 1.0, EvalOrder0(d).W, "direction %+v", d)
	}
}

func TestEvalOrder1_SumOfSquaresIsThree(t *testing.T) {
	t.Parallel()
	for _, d := range sampleDirections {
		c := EvalOrder1(d)
		assert.InDelta(t, 3.0, c.X*c.X+c.Y*c.Y+c.Z*c.Z, tol, "direction %+v", d)
	}
}

func TestEvalOrder1_AntipodalAzimuth(t *testing.T) {
	t.Parallel()
	for _, d := range sampleDirections {
		a := EvalOrder1(d)
		b := EvalOrder1(Direction{Elevation: d.Elevation, Azimuth: d.Azimuth + math.Pi})
		assert.InDelta(t, -a.X, b.X, tol)
		assert.InDelta(t, -a.Y, b.Y, tol)
		assert.Equal(t, a.Z, b.Z)
	}
}

func TestEvalOrder1_AxisDirections(t *testing.T) {
	t.Parallel()
	s3 := math.Sqrt(3)
	tests := []struct {
		name string
		dir  Direction
		want Order1
	}{
		{"front", Direction{0, 0}, Order1{X: s3}},
		{"left", Direction{0, math.Pi / 2}, Order1{Y: s3}},
		{"up", Direction{math.Pi / 2, 0}, Order1{Z: s3}},
		{"back", Direction{0, math.Pi}, Order1{X: -s3}},
		{"down", Direction{-math.Pi / 2, 0}, Order1{Z: -s3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvalOrder1(tt.dir)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
				t.Errorf("EvalOrder1(%+v) mismatch (-want +got):\n%s", tt.dir, diff)
			}
		})
	}
}

func TestHorizontalPlaneValues(t *testing.T) {
	t.Parallel()
	for _, phi := range []float64{0, 0.4, math.Pi, 5.5} {
		d := Direction{Elevation: 0, Azimuth: phi}
		assert.Equal(t, 0.0, EvalOrder1(d).Z)
		assert.Equal(t, -math.Sqrt(5)/2, EvalOrder2(d).R)
		assert.Equal(t, 0.0, EvalOrder3(d).K)
	}
}

// Expanded constants must reproduce the products of the unexpanded factors.
func TestScaleFactorsMatchFactoredForm(t *testing.T) {
	t.Parallel()
	for _, d := range sampleDirections {
		th, ph := d.Elevation, d.Azimuth
		sq := math.Sqrt

		want2 := Order2{
			V: sq(5) * sq(3) / 2 * math.Sin(2*ph) * math.Pow(math.Cos(th), 2),
			T: sq(5) * sq(3) / 2 * math.Sin(ph) * math.Sin(2*th),
			R: sq(5) * (3*math.Pow(math.Sin(th), 2) - 1) / 2,
			S: sq(5) * sq(3) / 2 * math.Cos(ph) * math.Sin(2*th),
			U: sq(5) * sq(3) / 2 * math.Cos(2*ph) * math.Pow(math.Cos(th), 2),
		}
		if diff := cmp.Diff(want2, EvalOrder2(d), approx); diff != "" {
			t.Errorf("EvalOrder2(%+v) mismatch (-want +got):\n%s", d, diff)
		}

		want3 := Order3{
			Q: sq(7) * sq(5.0/8) * math.Sin(3*ph) * math.Pow(math.Cos(th), 3),
			O: sq(7) * sq(15) / 2 * math.Sin(2*ph) * math.Sin(th) * math.Pow(math.Cos(th), 2),
			M: sq(7) * sq(3.0/8) * math.Sin(ph) * math.Cos(th) * (5*math.Pow(math.Sin(th), 2) - 1),
			K: sq(7) * math.Sin(th) * (5*math.Pow(math.Sin(th), 2) - 3) / 2,
			L: sq(7) * sq(3.0/8) * math.Cos(ph) * math.Cos(th) * (5*math.Pow(math.Sin(th), 2) - 1),
			N: sq(7) * sq(15) / 2 * math.Cos(2*ph) * math.Sin(th) * math.Pow(math.Cos(th), 2),
			P: sq(7) * sq(5.0/8) * math.Cos(3*ph) * math.Pow(math.Cos(th), 3),
		}
		if diff := cmp.Diff(want3, EvalOrder3(d), approx); diff != "" {
			t.Errorf("EvalOrder3(%+v) mismatch (-want +got):\n%s", d, diff)
		}
	}
}

func TestPolesAreFinite(t *testing.T) {
	t.Parallel()
	for _, th := range []float64{math.Pi / 2, -math.Pi / 2} {
		for _, v := range EvaluateAllOrders(th, 2.2) {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	}
	// At the zenith only the zonal components survive.
	c := Encode(Direction{Elevation: math.Pi / 2})
	assert.InDelta(t, math.Sqrt(5), c.Order2.R, tol)
	assert.InDelta(t, math.Sqrt(7), c.Order3.K, tol)
	assert.InDelta(t, 0, c.Order3.P, tol)
}

func TestAzimuthPeriodicity(t *testing.T) {
	t.Parallel()
	a := EvaluateAllOrders(0.4, 1.0)
	b := EvaluateAllOrders(0.4, 1.0+2*math.Pi)
	if diff := cmp.Diff(a, b, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("azimuth 2π shift changed coefficients (-a +b):\n%s", diff)
	}
}

func TestFlatLayout(t *testing.T) {
	t.Parallel()
	d := Direction{Elevation: 0.35, Azimuth: 2.1}
	c := Encode(d)
	flat := c.Flat()

	want := [NumComponents]float64{
		c.Order0.W,
		c.Order1.X, c.Order1.Y, c.Order1.Z,
		c.Order2.V, c.Order2.T, c.Order2.R, c.Order2.S, c.Order2.U,
		c.Order3.Q, c.Order3.O, c.Order3.M, c.Order3.K, c.Order3.L, c.Order3.N, c.Order3.P,
	}
	assert.Equal(t, want, flat)
	assert.Equal(t, want, EvaluateAllOrders(d.Elevation, d.Azimuth))
}

func TestOrderMetadata(t *testing.T) {
	t.Parallel()
	tests := []struct {
		order      Order
		components int
		channels   int
		names      []string
	}{
		{Zero, 1, 1, []string{"W"}},
		{First, 3, 4, []string{"X", "Y", "Z"}},
		{Second, 5, 9, []string{"V", "T", "R", "S", "U"}},
		{Third, 7, 16, []string{"Q", "O", "M", "K", "L", "N", "P"}},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			assert.True(t, tt.order.Valid())
			assert.Equal(t, tt.components, tt.order.Components())
			assert.Equal(t, tt.channels, tt.order.Channels())
			assert.Equal(t, tt.names, tt.order.Names())
			assert.Len(t, tt.order.Evaluate(Direction{0.2, 0.9}), tt.components)
		})
	}

	bad := Order(4)
	assert.False(t, bad.Valid())
	assert.Nil(t, bad.Names())
	assert.Nil(t, bad.Evaluate(Direction{}))
	assert.Equal(t, "Order(4)", bad.String())
}

func TestOrderEvaluateMatchesEncode(t *testing.T) {
	t.Parallel()
	d := Direction{Elevation: -0.6, Azimuth: 3.3}
	c := Encode(d)
	for _, o := range Orders {
		require.Equal(t, c.Order(o), o.Evaluate(d), "order %s", o)
	}
	assert.Nil(t, c.Order(Order(-1)))
}
