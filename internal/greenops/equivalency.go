package greenops

import (
	"fmt"
	"math"
)

// Describe converts a carbon intensity to kg CO2e per tonne and expresses one
// tonne's footprint as miles driven and smartphones charged.
//
// Intensities below MinEquivalencyThresholdKg per tonne return an empty output
// carrying the normalized value and no error. Normalization failures return an
// empty output and the normalization error.
//
// Example:
//
//	out, err := Describe(IntensityInput{Value: 3.5, Unit: "t CO2/tonne"})
//	// out.DisplayText: "Each tonne is equivalent to driving ~18,229 miles or charging ~425,791 smartphones"
func Describe(input IntensityInput) (EquivalencyOutput, error) {
	kg, err := NormalizeIntensity(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{KgPerTonne: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor

	if math.IsInf(miles, 0) || math.IsNaN(miles) ||
		math.IsInf(phones, 0) || math.IsNaN(phones) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	milesFormatted := formatEquivalencyValue(miles)
	phonesFormatted := formatEquivalencyValue(phones)

	return EquivalencyOutput{
		KgPerTonne: kg,
		Results: []EquivalencyResult{
			{
				Type:           EquivalencyMilesDriven,
				Value:          miles,
				FormattedValue: milesFormatted,
				Label:          "miles driven",
			},
			{
				Type:           EquivalencySmartphonesCharged,
				Value:          phones,
				FormattedValue: phonesFormatted,
				Label:          "smartphones charged",
			},
		},
		DisplayText: fmt.Sprintf("Each tonne is equivalent to driving ~%s miles or charging ~%s smartphones",
			milesFormatted, phonesFormatted),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones per t)", milesFormatted, phonesFormatted),
	}, nil
}

// formatEquivalencyValue uses million/billion scaling for large values and a
// rounded comma-separated integer otherwise.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
