package harmonics

import "fmt"

// Order selects a spherical-harmonic degree.
type Order int

const (
	Zero Order = iota
	First
	Second
	Third
)

// NumOrders is the number of supported orders (0 through 3).
const NumOrders = 4

// NumComponents is the total channel count of a third-order encoding.
const NumComponents = 16

// Orders lists every supported order in ascending degree.
var Orders = [NumOrders]Order{Zero, First, Second, Third}

// ComponentNames is the fixed component layout used by Coefficients.Flat and
// EvaluateAllOrders.
var ComponentNames = [NumComponents]string{
	"W",
	"X", "Y", "Z",
	"V", "T", "R", "S", "U",
	"Q", "O", "M", "K", "L", "N", "P",
}

// Valid reports whether o is one of Zero..Third.
func (o Order) Valid() bool {
	return o >= Zero && o <= Third
}

// Components returns the number of components that order o adds: 2n+1.
func (o Order) Components() int {
	return 2*int(o) + 1
}

// Channels returns the cumulative channel count up to and including o: (n+1)².
func (o Order) Channels() int {
	n := int(o) + 1
	return n * n
}

// Offset returns the index of the first component of o in the flat layout.
func (o Order) Offset() int {
	return int(o) * int(o)
}

// Names returns the component letters of o in layout order.
func (o Order) Names() []string {
	if !o.Valid() {
		return nil
	}
	return ComponentNames[o.Offset() : o.Offset()+o.Components()]
}

func (o Order) String() string {
	switch o {
	case Zero:
		return "zero"
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Evaluate returns the components of order o at d, in layout order.
// It returns nil for an unsupported order.
func (o Order) Evaluate(d Direction) []float64 {
	switch o {
	case Zero:
		return EvalOrder0(d).Components()
	case First:
		return EvalOrder1(d).Components()
	case Second:
		return EvalOrder2(d).Components()
	case Third:
		return EvalOrder3(d).Components()
	default:
		return nil
	}
}
