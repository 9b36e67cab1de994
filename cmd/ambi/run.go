package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/banshee-data/ambisonics/internal/config"
	"github.com/banshee-data/ambisonics/internal/directivity"
	"github.com/banshee-data/ambisonics/internal/harmonics"
	"github.com/banshee-data/ambisonics/internal/monitoring"
	"github.com/banshee-data/ambisonics/internal/polarity"
	"github.com/banshee-data/ambisonics/internal/units"
)

// Curve is one signed curve split for dual-polarity drawing.
type Curve struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
	polarity.Split
	DrawPositive bool `json:"draw_positive"`
	DrawNegative bool `json:"draw_negative"`
}

// PlaneReport is the output of the harmonics and pointsource modes.
type PlaneReport struct {
	Mode      string               `json:"mode"`
	Units     string               `json:"units"`
	Elevation float64              `json:"elevation"`
	Source    *harmonics.Direction `json:"source,omitempty"`
	Azimuth   []float64            `json:"azimuth"`
	Curves    []Curve              `json:"curves"`
}

// Peak locates the maximum of one cumulative directivity curve.
type Peak struct {
	Order   int     `json:"order"`
	Index   int     `json:"index"`
	Azimuth float64 `json:"azimuth"`
	Value   float64 `json:"value"`
}

// DirectivityReport is the output of the directivity mode.
type DirectivityReport struct {
	Mode      string              `json:"mode"`
	Units     string              `json:"units"`
	Elevation float64             `json:"elevation"`
	Source    harmonics.Direction `json:"source"`
	Azimuth   []float64           `json:"azimuth"`
	Profile   directivity.Profile `json:"profile"`
	Peaks     []Peak              `json:"peaks"`
}

// Frame is one line of sweep output. Sums is only set by pointsource-sweep.
type Frame struct {
	Frame  int                 `json:"frame"`
	Source harmonics.Direction `json:"source"`
	Curves []Curve             `json:"curves"`
	Sums   []Curve             `json:"sums,omitempty"`
}

// EncodeReport is the output of the encode mode.
type EncodeReport struct {
	Mode         string                           `json:"mode"`
	Units        string                           `json:"units"`
	Source       harmonics.Direction              `json:"source"`
	Names        [harmonics.NumComponents]string  `json:"names"`
	Values       [harmonics.NumComponents]float64 `json:"values"`
	Coefficients harmonics.Coefficients           `json:"coefficients"`
}

func run(cfg *config.RunConfig, w io.Writer) error {
	switch mode := cfg.GetMode(); mode {
	case config.ModeHarmonics:
		return runHarmonics(cfg, w)
	case config.ModePointSource:
		return runPointSource(cfg, w)
	case config.ModeDirectivity:
		return runDirectivity(cfg, w)
	case config.ModeSweep:
		return runSweep(cfg, w)
	case config.ModePointSourceSweep:
		return runPointSourceSweep(cfg, w)
	case config.ModeEncode:
		return runEncode(cfg, w)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func source(cfg *config.RunConfig) harmonics.Direction {
	return harmonics.Direction{
		Elevation: cfg.GetSourceElevationRadians(),
		Azimuth:   cfg.GetSourceAzimuthRadians(),
	}
}

// toUnits converts a direction in radians back to the configured units.
func toUnits(d harmonics.Direction, unit string) harmonics.Direction {
	return harmonics.Direction{
		Elevation: units.FromRadians(d.Elevation, unit),
		Azimuth:   units.FromRadians(d.Azimuth, unit),
	}
}

func azimuthsInUnits(g harmonics.Grid, unit string) []float64 {
	out := make([]float64, len(g.Azimuth))
	for i, a := range g.Azimuth {
		out[i] = units.FromRadians(a, unit)
	}
	return out
}

// splitCurves separates every component of c by sign, in layout order.
func splitCurves(c harmonics.GridCoefficients) []Curve {
	curves := make([]Curve, 0, harmonics.NumComponents)
	for _, o := range harmonics.Orders {
		names := o.Names()
		for k, comp := range c.Order(o) {
			curves = append(curves, newCurve(names[k], o, comp))
		}
	}
	return curves
}

func newCurve(name string, o harmonics.Order, values []float64) Curve {
	s := polarity.Separate(values)
	pos, neg := s.Plottable()
	return Curve{Name: name, Order: int(o), Split: s, DrawPositive: pos, DrawNegative: neg}
}

func profileCurves(p directivity.Profile) []Curve {
	curves := make([]Curve, 0, harmonics.NumOrders)
	for _, o := range harmonics.Orders {
		curves = append(curves, newCurve(o.String(), o, p.Order(o)))
	}
	return curves
}

func sumCurves(sums [harmonics.NumOrders][]float64) []Curve {
	curves := make([]Curve, 0, harmonics.NumOrders)
	for _, o := range harmonics.Orders {
		curves = append(curves, newCurve(o.String(), o, sums[o]))
	}
	return curves
}

// orbit starts the moving source at the configured source azimuth.
func orbit(cfg *config.RunConfig) directivity.Orbit {
	return directivity.Orbit{
		Elevation: cfg.GetSourceElevationRadians(),
		Phase:     cfg.GetSourceAzimuthRadians(),
		Frames:    cfg.GetFrames(),
	}
}

func runHarmonics(cfg *config.RunConfig, w io.Writer) error {
	plane, err := harmonics.HorizontalPlane(cfg.GetElevationRadians(), cfg.GetSteps())
	if err != nil {
		return err
	}
	gc, err := harmonics.EncodeGrid(plane)
	if err != nil {
		return err
	}
	unit := cfg.GetUnits()
	return writeJSON(w, PlaneReport{
		Mode:      config.ModeHarmonics,
		Units:     unit,
		Elevation: units.FromRadians(cfg.GetElevationRadians(), unit),
		Azimuth:   azimuthsInUnits(plane, unit),
		Curves:    splitCurves(gc),
	})
}

func runPointSource(cfg *config.RunConfig, w io.Writer) error {
	plane, err := harmonics.HorizontalPlane(cfg.GetElevationRadians(), cfg.GetSteps())
	if err != nil {
		return err
	}
	src := source(cfg)
	prod, err := directivity.PointSourceProduct(plane, src)
	if err != nil {
		return err
	}
	unit := cfg.GetUnits()
	srcOut := toUnits(src, unit)
	return writeJSON(w, PlaneReport{
		Mode:      config.ModePointSource,
		Units:     unit,
		Elevation: units.FromRadians(cfg.GetElevationRadians(), unit),
		Source:    &srcOut,
		Azimuth:   azimuthsInUnits(plane, unit),
		Curves:    splitCurves(prod),
	})
}

// runDirectivity evaluates the listener circle from -π so the source at
// azimuth 0 sits in the middle of a linear plot.
func runDirectivity(cfg *config.RunConfig, w io.Writer) error {
	listener, err := harmonics.Circle(cfg.GetElevationRadians(), -math.Pi, cfg.GetSteps())
	if err != nil {
		return err
	}
	src := source(cfg)
	p, err := directivity.Directivity(listener, src)
	if err != nil {
		return err
	}
	unit := cfg.GetUnits()
	report := DirectivityReport{
		Mode:      config.ModeDirectivity,
		Units:     unit,
		Elevation: units.FromRadians(cfg.GetElevationRadians(), unit),
		Source:    toUnits(src, unit),
		Azimuth:   azimuthsInUnits(listener, unit),
		Profile:   p,
	}
	for _, o := range harmonics.Orders {
		idx, v, ok := p.Peak(o)
		if !ok {
			continue
		}
		report.Peaks = append(report.Peaks, Peak{
			Order:   int(o),
			Index:   idx,
			Azimuth: report.Azimuth[idx],
			Value:   v,
		})
	}
	return writeJSON(w, report)
}

// runSweep writes one JSON object per line, one line per frame of a source
// circling the listener plane.
func runSweep(cfg *config.RunConfig, w io.Writer) error {
	plane, err := harmonics.HorizontalPlane(cfg.GetElevationRadians(), cfg.GetSteps())
	if err != nil {
		return err
	}
	unit := cfg.GetUnits()
	o := orbit(cfg)
	err = directivity.Sweep(plane, o,
		func(frame int, src harmonics.Direction, p directivity.Profile) error {
			monitoring.Debugf("sweep frame %d/%d source azimuth %.4f rad", frame+1, o.Frames, src.Azimuth)
			return writeJSON(w, Frame{
				Frame:  frame,
				Source: toUnits(src, unit),
				Curves: profileCurves(p),
			})
		})
	if err != nil {
		return err
	}
	monitoring.Debugf("sweep complete: %d frames of %d directions", o.Frames, cfg.GetSteps())
	return nil
}

// runPointSourceSweep is runSweep for the sixteen component products, each
// frame also carrying the per-order sums of those products.
func runPointSourceSweep(cfg *config.RunConfig, w io.Writer) error {
	plane, err := harmonics.HorizontalPlane(cfg.GetElevationRadians(), cfg.GetSteps())
	if err != nil {
		return err
	}
	unit := cfg.GetUnits()
	o := orbit(cfg)
	err = directivity.SweepProducts(plane, o,
		func(frame int, src harmonics.Direction, prod harmonics.GridCoefficients, sums [harmonics.NumOrders][]float64) error {
			monitoring.Debugf("pointsource sweep frame %d/%d source azimuth %.4f rad", frame+1, o.Frames, src.Azimuth)
			return writeJSON(w, Frame{
				Frame:  frame,
				Source: toUnits(src, unit),
				Curves: splitCurves(prod),
				Sums:   sumCurves(sums),
			})
		})
	if err != nil {
		return err
	}
	monitoring.Debugf("pointsource sweep complete: %d frames of %d directions", o.Frames, cfg.GetSteps())
	return nil
}

func runEncode(cfg *config.RunConfig, w io.Writer) error {
	src := source(cfg)
	unit := cfg.GetUnits()
	return writeJSON(w, EncodeReport{
		Mode:         config.ModeEncode,
		Units:        unit,
		Source:       toUnits(src, unit),
		Names:        harmonics.ComponentNames,
		Values:       harmonics.EvaluateAllOrders(src.Elevation, src.Azimuth),
		Coefficients: directivity.Encode(src),
	})
}
