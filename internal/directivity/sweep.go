package directivity

import (
	"errors"
	"fmt"
	"math"

	"github.com/banshee-data/ambisonics/internal/harmonics"
)

// DefaultFrames is the number of frames in one revolution of a moving source
// when sweeping directivity or the products of a single order.
const DefaultFrames = 200

// DefaultProductFrames is the number of frames in one revolution when
// sweeping all sixteen component products.
const DefaultProductFrames = 250

// ErrInvalidFrames is returned by Sweep for a non-positive frame count.
var ErrInvalidFrames = errors.New("directivity: frame count must be positive")

// FrameFunc receives the profile for one step of a sweep. Returning an error
// stops the sweep.
type FrameFunc func(frame int, source harmonics.Direction, p Profile) error

// ProductFrameFunc receives the component products of one step of a product
// sweep together with their per-order sums.
type ProductFrameFunc func(frame int, source harmonics.Direction, prod harmonics.GridCoefficients, sums [harmonics.NumOrders][]float64) error

// Orbit is a source circling the listener once at a fixed elevation.
type Orbit struct {
	Elevation float64
	Phase     float64 // azimuth of frame 0
	Frames    int
}

// At returns the source direction for a frame of the orbit.
func (o Orbit) At(frame int) harmonics.Direction {
	return harmonics.Direction{
		Elevation: o.Elevation,
		Azimuth:   o.Phase + 2*math.Pi*float64(frame)/float64(o.Frames),
	}
}

// SourceAt returns the source direction for a frame of a sweep that circles
// once around the listener at the given elevation in frames steps, starting
// at azimuth 0.
func SourceAt(elevation float64, frame, frames int) harmonics.Direction {
	return Orbit{Elevation: elevation, Frames: frames}.At(frame)
}

// walk calls step for every frame of the orbit in order. The frame index is
// the only state and it lives in this loop.
func (o Orbit) walk(step func(frame int, src harmonics.Direction) error) error {
	if o.Frames <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidFrames, o.Frames)
	}
	for i := 0; i < o.Frames; i++ {
		if err := step(i, o.At(i)); err != nil {
			return err
		}
	}
	return nil
}

// Sweep moves a source along orbit, calling each with the directivity seen
// from the listener grid at every frame.
func Sweep(listener harmonics.Grid, orbit Orbit, each FrameFunc) error {
	return orbit.walk(func(i int, src harmonics.Direction) error {
		p, err := Directivity(listener, src)
		if err != nil {
			return err
		}
		if err := each(i, src, p); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		return nil
	})
}

// SweepProducts moves a source along orbit, calling each with the sixteen
// listener by source products and their per-order sums at every frame.
func SweepProducts(listener harmonics.Grid, orbit Orbit, each ProductFrameFunc) error {
	return orbit.walk(func(i int, src harmonics.Direction) error {
		prod, err := PointSourceProduct(listener, src)
		if err != nil {
			return err
		}
		if err := each(i, src, prod, ProductSums(prod)); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		return nil
	})
}
