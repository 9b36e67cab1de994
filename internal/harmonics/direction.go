package harmonics

import (
	"errors"
	"fmt"
	"math"
)

// ErrShapeMismatch is returned when elevation and azimuth arrays cannot be
// paired elementwise.
var ErrShapeMismatch = errors.New("harmonics: elevation and azimuth lengths do not match")

// ErrNegativeSteps is returned by the grid constructors for a negative size.
var ErrNegativeSteps = errors.New("harmonics: step count must not be negative")

// Direction is a single direction in radians. Elevation runs from -π/2 (below)
// to π/2 (above); azimuth is measured counter-clockwise from the front.
// Angles are used as given, no wraparound is applied.
type Direction struct {
	Elevation float64 `json:"elevation"`
	Azimuth   float64 `json:"azimuth"`
}

// Grid is a set of directions stored as parallel arrays.
//
// Both arrays normally have the same length. A single-element array is
// broadcast against the other one, so a horizontal plane can be described as
// Grid{Elevation: []float64{0}, Azimuth: phis}.
type Grid struct {
	Elevation []float64 `json:"elevation"`
	Azimuth   []float64 `json:"azimuth"`
}

// Len returns the number of directions in the grid after broadcasting.
func (g Grid) Len() (int, error) {
	ne, na := len(g.Elevation), len(g.Azimuth)
	switch {
	case ne == na:
		return ne, nil
	case ne == 1:
		return na, nil
	case na == 1:
		return ne, nil
	default:
		return 0, fmt.Errorf("%w: %d elevations, %d azimuths", ErrShapeMismatch, ne, na)
	}
}

// At returns the i-th direction. The caller must have checked Len first.
func (g Grid) At(i int) Direction {
	d := Direction{}
	if len(g.Elevation) == 1 {
		d.Elevation = g.Elevation[0]
	} else {
		d.Elevation = g.Elevation[i]
	}
	if len(g.Azimuth) == 1 {
		d.Azimuth = g.Azimuth[0]
	} else {
		d.Azimuth = g.Azimuth[i]
	}
	return d
}

// Points returns a grid holding exactly the given directions.
func Points(dirs ...Direction) Grid {
	g := Grid{
		Elevation: make([]float64, len(dirs)),
		Azimuth:   make([]float64, len(dirs)),
	}
	for i, d := range dirs {
		g.Elevation[i] = d.Elevation
		g.Azimuth[i] = d.Azimuth
	}
	return g
}

// Circle returns steps directions at a fixed elevation with azimuths
// start + i*2π/steps, i.e. one full turn without the closing endpoint.
func Circle(elevation, start float64, steps int) (Grid, error) {
	if steps < 0 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrNegativeSteps, steps)
	}
	g := Grid{
		Elevation: make([]float64, steps),
		Azimuth:   make([]float64, steps),
	}
	if steps == 0 {
		return g, nil
	}
	inc := 2 * math.Pi / float64(steps)
	for i := 0; i < steps; i++ {
		g.Elevation[i] = elevation
		g.Azimuth[i] = start + float64(i)*inc
	}
	return g, nil
}

// HorizontalPlane is Circle starting at azimuth 0, the listener layout used
// for polar views of a plane at the given elevation.
func HorizontalPlane(elevation float64, steps int) (Grid, error) {
	return Circle(elevation, 0, steps)
}
