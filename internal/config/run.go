package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/ambisonics/internal/units"
)

// DefaultConfigPath is the path to the canonical run defaults file.
const DefaultConfigPath = "config/ambi.defaults.json"

// Modes accepted by the ambi command.
const (
	ModeHarmonics   = "harmonics"
	ModePointSource = "pointsource"
	ModeDirectivity = "directivity"
	ModeSweep       = "sweep"
	ModeEncode      = "encode"

	ModePointSourceSweep = "pointsource-sweep"
)

// ValidModes lists every mode in the order they are documented.
var ValidModes = []string{ModeHarmonics, ModePointSource, ModeDirectivity, ModeSweep, ModePointSourceSweep, ModeEncode}

// RunConfig describes one evaluation run. Angles are stored in Units and
// converted to radians by the Get*Radians accessors. Nil fields fall back to
// defaults, so partial files are fine.
type RunConfig struct {
	Mode  *string `json:"mode,omitempty"`
	Units *string `json:"units,omitempty"` // "rad" or "deg"

	// Listener plane
	Elevation *float64 `json:"elevation,omitempty"`
	Steps     *int     `json:"steps,omitempty"`

	// Source
	SourceElevation *float64 `json:"source_elevation,omitempty"`
	SourceAzimuth   *float64 `json:"source_azimuth,omitempty"`

	// Sweep. Nil selects the default for the mode.
	Frames *int `json:"frames,omitempty"`

	Verbose *bool `json:"verbose,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyRunConfig returns a RunConfig with all fields set to nil.
func EmptyRunConfig() *RunConfig {
	return &RunConfig{}
}

// DefaultRunConfig returns a RunConfig with every field set to its default,
// except Frames, whose default depends on the mode.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		Mode:            ptrString(ModeDirectivity),
		Units:           ptrString(units.Radians),
		Elevation:       ptrFloat64(0),
		Steps:           ptrInt(1000),
		SourceElevation: ptrFloat64(0),
		SourceAzimuth:   ptrFloat64(0),
		Verbose:         ptrBool(false),
	}
}

// LoadRunConfig loads a RunConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadRunConfig(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRunConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath,
// searching the current directory and its parents up to the repository root.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *RunConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/ and cmd/ambi/
	}
	for _, path := range candidates {
		if cfg, err := LoadRunConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *RunConfig) Validate() error {
	if c.Mode != nil && !isMode(*c.Mode) {
		return fmt.Errorf("unknown mode %q", *c.Mode)
	}
	if c.Units != nil && !units.IsValid(*c.Units) {
		return fmt.Errorf("units must be one of %s, got %q", units.GetValidUnitsString(), *c.Units)
	}
	if c.Steps != nil && *c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", *c.Steps)
	}
	if c.Frames != nil && *c.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", *c.Frames)
	}
	return nil
}

func isMode(m string) bool {
	for _, v := range ValidModes {
		if m == v {
			return true
		}
	}
	return false
}

// GetMode returns the mode or the default.
func (c *RunConfig) GetMode() string {
	if c.Mode == nil {
		return ModeDirectivity
	}
	return *c.Mode
}

// GetUnits returns the angle units or the default.
func (c *RunConfig) GetUnits() string {
	if c.Units == nil {
		return units.Radians
	}
	return *c.Units
}

// GetSteps returns the number of listener directions or the default.
func (c *RunConfig) GetSteps() int {
	if c.Steps == nil {
		return 1000
	}
	return *c.Steps
}

// GetFrames returns the sweep frame count or the default for the mode:
// 250 for pointsource-sweep, 200 otherwise.
func (c *RunConfig) GetFrames() int {
	if c.Frames == nil {
		if c.GetMode() == ModePointSourceSweep {
			return 250
		}
		return 200
	}
	return *c.Frames
}

// GetVerbose returns the verbose flag or the default.
func (c *RunConfig) GetVerbose() bool {
	if c.Verbose == nil {
		return false
	}
	return *c.Verbose
}

// GetElevationRadians returns the listener plane elevation in radians.
func (c *RunConfig) GetElevationRadians() float64 {
	return c.radians(c.Elevation)
}

// GetSourceElevationRadians returns the source elevation in radians.
func (c *RunConfig) GetSourceElevationRadians() float64 {
	return c.radians(c.SourceElevation)
}

// GetSourceAzimuthRadians returns the source azimuth in radians.
func (c *RunConfig) GetSourceAzimuthRadians() float64 {
	return c.radians(c.SourceAzimuth)
}

func (c *RunConfig) radians(v *float64) float64 {
	if v == nil {
		return 0
	}
	return units.ToRadians(*v, c.GetUnits())
}

// Merge copies every non-nil field of o into c.
func (c *RunConfig) Merge(o *RunConfig) {
	if o == nil {
		return
	}
	if o.Mode != nil {
		c.Mode = o.Mode
	}
	if o.Units != nil {
		c.Units = o.Units
	}
	if o.Elevation != nil {
		c.Elevation = o.Elevation
	}
	if o.Steps != nil {
		c.Steps = o.Steps
	}
	if o.SourceElevation != nil {
		c.SourceElevation = o.SourceElevation
	}
	if o.SourceAzimuth != nil {
		c.SourceAzimuth = o.SourceAzimuth
	}
	if o.Frames != nil {
		c.Frames = o.Frames
	}
	if o.Verbose != nil {
		c.Verbose = o.Verbose
	}
}
