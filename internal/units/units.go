// Package units provides shared constants and conversion for angle units
package units

import "math"

// Unit constants
const (
	Radians = "rad"
	Degrees = "deg"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Radians, Degrees}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "rad, deg"
}

// ToRadians converts an angle given in unit to radians.
// All computation happens in radians.
func ToRadians(angle float64, unit string) float64 {
	switch unit {
	case Degrees:
		return angle * math.Pi / 180
	case Radians:
		return angle // no conversion needed
	default:
		return angle // default to radians if unknown unit
	}
}

// FromRadians converts an angle in radians to the target unit
func FromRadians(angle float64, targetUnit string) float64 {
	switch targetUnit {
	case Degrees:
		return angle * 180 / math.Pi
	case Radians:
		return angle
	default:
		return angle
	}
}
