package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name        string
		input       IntensityInput
		wantKg      float64
		wantMiles   float64
		wantPhones  float64
		wantIsEmpty bool
		wantErr     error
	}{
		{
			name:       "tonnes per tonne",
			input:      IntensityInput{Value: 3.5, Unit: "t CO2/tonne"},
			wantKg:     3500,
			wantMiles:  18229.17, // 3500 / 0.192
			wantPhones: 425790.75,
		},
		{
			name:       "kilograms per tonne",
			input:      IntensityInput{Value: 150, Unit: "kg CO2/tonne"},
			wantKg:     150,
			wantMiles:  781.25,
			wantPhones: 18248.18,
		},
		{
			name:        "below threshold is empty",
			input:       IntensityInput{Value: 0.5, Unit: "kg CO2/tonne"},
			wantKg:      0.5,
			wantIsEmpty: true,
		},
		{
			name:        "invalid unit",
			input:       IntensityInput{Value: 3.5, Unit: "kWh"},
			wantIsEmpty: true,
			wantErr:     ErrInvalidUnit,
		},
		{
			name:        "negative value",
			input:       IntensityInput{Value: -3.5, Unit: "t CO2/t"},
			wantIsEmpty: true,
			wantErr:     ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Describe(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, out.IsEmpty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIsEmpty, out.IsEmpty)
			assert.InDelta(t, tt.wantKg, out.KgPerTonne, 0.001)
			if tt.wantIsEmpty {
				assert.Empty(t, out.Results)
				return
			}

			require.Len(t, out.Results, 2)
			assert.Equal(t, EquivalencyMilesDriven, out.Results[0].Type)
			assert.InDelta(t, tt.wantMiles, out.Results[0].Value, 0.01)
			assert.Equal(t, EquivalencySmartphonesCharged, out.Results[1].Type)
			assert.InDelta(t, tt.wantPhones, out.Results[1].Value, 0.01)
			assert.Contains(t, out.DisplayText, "Each tonne is equivalent to driving")
			assert.Contains(t, out.CompactText, "per t")
		})
	}
}

func TestDescribe_DisplayText(t *testing.T) {
	out, err := Describe(IntensityInput{Value: 3.5, Unit: "t CO2/tonne"})
	require.NoError(t, err)
	assert.Equal(t,
		"Each tonne is equivalent to driving ~18,229 miles or charging ~425,791 smartphones",
		out.DisplayText)
	assert.Equal(t, "(≈ 18,229 mi, 425,791 phones per t)", out.CompactText)
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "MilesDriven", EquivalencyMilesDriven.String())
	assert.Equal(t, "SmartphonesCharged", EquivalencySmartphonesCharged.String())
	assert.Equal(t, "EquivalencyType(9)", EquivalencyType(9).String())
}
