// Package harmonics evaluates real spherical harmonics up to third order
// with N3D normalization, the encoding gains of an Ambisonics source.
//
// Conventions: elevation θ in [-π/2, π/2], azimuth φ in [0, 2π), radians.
// Components are named with the classic Furse-Malham letters but carry N3D
// scale factors.
package harmonics

import "math"

// N3D scale factors.
var (
	sqrt3       = math.Sqrt(3)
	halfSqrt5   = math.Sqrt(5) / 2
	halfSqrt15  = math.Sqrt(15) / 2
	halfSqrt7   = math.Sqrt(7) / 2
	halfSqrt105 = math.Sqrt(105) / 2
	sqrt35over8 = math.Sqrt(35.0 / 8.0)
	sqrt21over8 = math.Sqrt(21.0 / 8.0)
)

// Order0 is the omnidirectional component.
type Order0 struct {
	W float64 `json:"W"`
}

// Order1 holds the three first-order components.
type Order1 struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
	Z float64 `json:"Z"`
}

// Order2 holds the five second-order components.
type Order2 struct {
	V float64 `json:"V"`
	T float64 `json:"T"`
	R float64 `json:"R"`
	S float64 `json:"S"`
	U float64 `json:"U"`
}

// Order3 holds the seven third-order components.
type Order3 struct {
	Q float64 `json:"Q"`
	O float64 `json:"O"`
	M float64 `json:"M"`
	K float64 `json:"K"`
	L float64 `json:"L"`
	N float64 `json:"N"`
	P float64 `json:"P"`
}

func (c Order0) Components() []float64 { return []float64{c.W} }
func (c Order1) Components() []float64 { return []float64{c.X, c.Y, c.Z} }
func (c Order2) Components() []float64 { return []float64{c.V, c.T, c.R, c.S, c.U} }
func (c Order3) Components() []float64 {
	return []float64{c.Q, c.O, c.M, c.K, c.L, c.N, c.P}
}

// EvalOrder0 returns W, which is 1 for every direction.
func EvalOrder0(Direction) Order0 {
	return Order0{W: 1}
}

// EvalOrder1 returns the first-order components at d.
func EvalOrder1(d Direction) Order1 {
	sinT, cosT := math.Sincos(d.Elevation)
	sinP, cosP := math.Sincos(d.Azimuth)
	return Order1{
		X: sqrt3 * cosT * cosP,
		Y: sqrt3 * cosT * sinP,
		Z: sqrt3 * sinT,
	}
}

// EvalOrder2 returns the second-order components at d.
func EvalOrder2(d Direction) Order2 {
	sinT, cosT := math.Sincos(d.Elevation)
	sinP, cosP := math.Sincos(d.Azimuth)
	sin2P, cos2P := math.Sincos(2 * d.Azimuth)
	sin2T := math.Sin(2 * d.Elevation)
	cos2 := cosT * cosT
	return Order2{
		V: halfSqrt15 * sin2P * cos2,
		T: halfSqrt15 * sinP * sin2T,
		R: halfSqrt5 * (3*sinT*sinT - 1),
		S: halfSqrt15 * cosP * sin2T,
		U: halfSqrt15 * cos2P * cos2,
	}
}

// EvalOrder3 returns the third-order components at d.
func EvalOrder3(d Direction) Order3 {
	sinT, cosT := math.Sincos(d.Elevation)
	sinP, cosP := math.Sincos(d.Azimuth)
	sin2P, cos2P := math.Sincos(2 * d.Azimuth)
	sin3P, cos3P := math.Sincos(3 * d.Azimuth)
	sin2 := sinT * sinT
	cos2 := cosT * cosT
	cos3 := cos2 * cosT
	// shared by M and L
	tesseral := cosT * (5*sin2 - 1)
	return Order3{
		Q: sqrt35over8 * sin3P * cos3,
		O: halfSqrt105 * sin2P * sinT * cos2,
		M: sqrt21over8 * sinP * tesseral,
		K: halfSqrt7 * sinT * (5*sin2 - 3),
		L: sqrt21over8 * cosP * tesseral,
		N: halfSqrt105 * cos2P * sinT * cos2,
		P: sqrt35over8 * cos3P * cos3,
	}
}

// Coefficients is the full third-order encoding of one direction.
type Coefficients struct {
	Order0 Order0 `json:"order0"`
	Order1 Order1 `json:"order1"`
	Order2 Order2 `json:"order2"`
	Order3 Order3 `json:"order3"`
}

// Encode evaluates all four orders at d.
func Encode(d Direction) Coefficients {
	return Coefficients{
		Order0: EvalOrder0(d),
		Order1: EvalOrder1(d),
		Order2: EvalOrder2(d),
		Order3: EvalOrder3(d),
	}
}

// Order returns the components of order o, or nil if o is unsupported.
func (c Coefficients) Order(o Order) []float64 {
	switch o {
	case Zero:
		return c.Order0.Components()
	case First:
		return c.Order1.Components()
	case Second:
		return c.Order2.Components()
	case Third:
		return c.Order3.Components()
	default:
		return nil
	}
}

// Flat returns the sixteen components in the order
// W, X, Y, Z, V, T, R, S, U, Q, O, M, K, L, N, P.
func (c Coefficients) Flat() [NumComponents]float64 {
	var out [NumComponents]float64
	for _, o := range Orders {
		copy(out[o.Offset():], c.Order(o))
	}
	return out
}

// EvaluateAllOrders returns the sixteen coefficients at (elevation, azimuth)
// in the Flat layout. Measurement tools compare recorded channel values
// against this.
func EvaluateAllOrders(elevation, azimuth float64) [NumComponents]float64 {
	return Encode(Direction{Elevation: elevation, Azimuth: azimuth}).Flat()
}
