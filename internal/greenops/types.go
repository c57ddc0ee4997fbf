// Package greenops formats supply-chain quantities and turns carbon intensity
// figures into relatable equivalencies.
//
// Carbon intensity arrives from the dataset as a free-text measurement such as
// "3.5 kg CO2/tonne". NormalizeIntensity converts it to kilograms of CO2e per
// tonne of product and Describe expresses that per-tonne footprint as miles
// driven and smartphones charged using EPA-published factors.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// IntensityInput is a carbon intensity figure as reported by a facility.
type IntensityInput struct {
	// Value is the emission amount per unit of product.
	Value float64 `json:"value"`

	// Unit is "<mass>[ CO2[e]]/<mass>", for example "kg CO2/tonne" or "t CO2e/t".
	Unit string `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains the per-tonne equivalencies for display.
type EquivalencyOutput struct {
	// KgPerTonne is the normalized intensity in kilograms CO2e per tonne of product.
	KgPerTonne float64 `json:"kg_per_tonne"`

	Results []EquivalencyResult `json:"results"`

	// DisplayText example: "Each tonne is equivalent to driving ~18 miles or charging ~426 smartphones"
	DisplayText string `json:"display_text"`

	// CompactText example: "(≈ 18 mi, 426 phones per t)"
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}
