package greenops

import (
	"math"
	"strings"
)

// massFactor returns the kilogram conversion factor for a mass unit.
// Matching is case-insensitive and ignores a trailing "co2"/"co2e" marker,
// so "kg", "kgCO2e" and "kg CO2" are all kilograms.
func massFactor(unit string) (float64, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	for _, marker := range []string{"co2e", "co2"} {
		if strings.HasSuffix(u, marker) {
			u = strings.TrimSpace(strings.TrimSuffix(u, marker))
			break
		}
	}

	switch u {
	case "g", "gram", "grams":
		return GramsToKg, true
	case "kg", "kilogram", "kilograms":
		return KgToKg, true
	case "t", "tonne", "tonnes", "ton", "tons", "mt":
		return TonsToKg, true
	case "lb", "lbs":
		return PoundsToKg, true
	default:
		return 0, false
	}
}

// intensityFactor returns the factor that converts an intensity in the given
// unit to kilograms CO2e per tonne of product.
func intensityFactor(unit string) (float64, bool) {
	numerator, denominator, ok := strings.Cut(unit, "/")
	if !ok {
		return 0, false
	}

	emitted, ok := massFactor(numerator)
	if !ok {
		return 0, false
	}
	product, ok := massFactor(denominator)
	if !ok {
		return 0, false
	}

	return emitted * TonsToKg / product, true
}

// NormalizeIntensity converts a carbon intensity to kilograms CO2e per tonne.
//
// The unit must have the form "<mass>[ CO2[e]]/<mass>", for example
// "kg CO2/tonne", "t CO2e/t" or "g CO2/kg". It returns ErrNegativeValue for a
// negative value, ErrInvalidUnit for an unparseable unit and
// ErrCalculationOverflow for Inf/NaN input or results.
func NormalizeIntensity(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}

	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := intensityFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	result := value * factor
	if math.IsInf(result, 0) {
		return 0, ErrCalculationOverflow
	}

	return result, nil
}

// IsRecognizedIntensityUnit reports whether unit can be normalized.
func IsRecognizedIntensityUnit(unit string) bool {
	_, ok := intensityFactor(unit)
	return ok
}
