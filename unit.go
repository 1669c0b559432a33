// unit.go
package scopeprefs

import (
	"math"
	"strconv"
)

// UnitType enumerates the units of measurement a preference can carry.
type UnitType int

// Supported unit types. UnitCounts is the dimensionless default every
// preference starts with.
const (
	UnitCounts UnitType = iota
	UnitVolts
	UnitAmps
	UnitSeconds
	UnitHertz
	UnitSamples
	UnitDecibels
	UnitPercent
)

// Unit is a unit-of-measurement tag with value formatting. It is a plain
// comparable value; two units are equal when their types are equal.
type Unit struct {
	unitType UnitType
}

// NewUnit returns a unit tag of the given type.
func NewUnit(unitType UnitType) Unit {
	return Unit{unitType: unitType}
}

// Type returns the unit type.
func (u Unit) Type() UnitType {
	return u.unitType
}

// String returns the display suffix for the unit, empty for counts.
func (u Unit) String() string {
	switch u.unitType {
	case UnitVolts:
		return "V"
	case UnitAmps:
		return "A"
	case UnitSeconds:
		return "s"
	case UnitHertz:
		return "Hz"
	case UnitSamples:
		return "S"
	case UnitDecibels:
		return "dB"
	case UnitPercent:
		return "%"
	default:
		return ""
	}
}

var siPrefixes = []struct {
	scale  float64
	prefix string
}{
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "µ"},
	{1e-9, "n"},
	{1e-12, "p"},
	{1e-15, "f"},
}

// Format renders a value in this unit for display. Dimensioned units are
// scaled to an SI prefix; counts render as a bare number, percentages are
// scaled from fractions, and decibels are never prefixed.
func (u Unit) Format(value float64) string {
	switch u.unitType {
	case UnitCounts:
		return formatNumber(value)
	case UnitPercent:
		return formatNumber(value*100) + " %"
	case UnitDecibels:
		return formatNumber(value) + " dB"
	}

	if value == 0 {
		return "0 " + u.String()
	}

	magnitude := math.Abs(value)
	for _, si := range siPrefixes {
		if magnitude >= si.scale {
			return formatNumber(value/si.scale) + " " + si.prefix + u.String()
		}
	}
	last := siPrefixes[len(siPrefixes)-1]
	return formatNumber(value/last.scale) + " " + last.prefix + u.String()
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', 4, 64)
}
