package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/lithiumscope/internal/supplychain"
)

func TestAllFacilities_Order(t *testing.T) {
	got := AllFacilities(mixedRepo())

	ids := make([]string, 0, len(got))
	for _, f := range got {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{
		"m-op", "m-uc", "m-pl", "m-su",
		"p-op", "p-uc", "p-op-nil",
		"b-op", "b-cl", "b-uc",
	}, ids)
	assert.Equal(t, TypeMining, got[0].Type)
	assert.Equal(t, TypeProcessing, got[4].Type)
	assert.Equal(t, TypeBattery, got[7].Type)
}

func TestAllFacilities_Fields(t *testing.T) {
	got := AllFacilities(mixedRepo())

	assert.Equal(t, "Site m-op", got[0].Name)
	assert.Equal(t, "Australia", got[0].Country)
	assert.Equal(t, "AU", got[0].CountryCode)
	assert.Equal(t, "100,000 tonnes", got[0].Capacity)
	assert.Equal(t, "37.5 GWh", got[7].Capacity)
	assert.Equal(t, "30,000 tonnes", got[4].Capacity)
}

func TestAllFacilities_UtilizationFallback(t *testing.T) {
	got := AllFacilities(mixedRepo())
	byID := make(map[string]Facility, len(got))
	for _, f := range got {
		byID[f.ID] = f
	}

	require.True(t, byID["m-op"].Utilization.IsNumber())
	assert.InDelta(t, 80.0, *byID["m-op"].Utilization.Value, 1e-9)

	assert.Equal(t, LabelUnderConstruction, byID["m-uc"].Utilization.Label)
	assert.Equal(t, LabelUnderConstruction, byID["m-pl"].Utilization.Label, "mining fallback ignores status")
	assert.Equal(t, LabelNotAvailable, byID["p-uc"].Utilization.Label)
	assert.Equal(t, LabelNotAvailable, byID["p-op-nil"].Utilization.Label)
	assert.Equal(t, LabelUnderConstruction, byID["b-uc"].Utilization.Label)

	require.True(t, byID["m-su"].Utilization.IsNumber(), "a reported 0 is a rate")
	assert.InDelta(t, 0.0, *byID["m-su"].Utilization.Value, 1e-9)
}

func TestMapStatus(t *testing.T) {
	tests := []struct {
		in   supplychain.Status
		want FacilityStatus
	}{
		{supplychain.StatusOperational, StatusActive},
		{supplychain.StatusUnderConstruction, StatusConstruction},
		{supplychain.StatusPlanned, StatusCaution},
		{supplychain.StatusSuspended, StatusCaution},
		{supplychain.StatusClosed, StatusCaution},
		{supplychain.Status("mothballed"), StatusCaution},
		{supplychain.Status(""), StatusCaution},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatus(tt.in))
		})
	}
}

func TestAllFacilities_StatusSameForEveryKind(t *testing.T) {
	for _, f := range AllFacilities(mixedRepo()) {
		switch f.ID {
		case "m-op", "p-op", "p-op-nil", "b-op":
			assert.Equal(t, StatusActive, f.Status, f.ID)
		case "m-uc", "p-uc", "b-uc":
			assert.Equal(t, StatusConstruction, f.Status, f.ID)
		default:
			assert.Equal(t, StatusCaution, f.Status, f.ID)
		}
	}
}

func TestFacility_JSON(t *testing.T) {
	got := AllFacilities(mixedRepo())

	data, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "m-op", "name": "Site m-op", "type": "Mining",
		"country": "Australia", "countryCode": "AU",
		"capacity": "100,000 tonnes", "utilization": 80, "status": "active"
	}`, string(data))

	data, err = json.Marshal(got[6])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"utilization":"N/A"`)

	var back Facility
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, got[6], back)
}

func TestEnumParsing(t *testing.T) {
	ft, err := ParseFacilityType("Battery")
	require.NoError(t, err)
	assert.Equal(t, TypeBattery, ft)
	_, err = ParseFacilityType("battery")
	require.ErrorIs(t, err, ErrUnknownEnum)

	st, err := ParseFacilityStatus("construction")
	require.NoError(t, err)
	assert.Equal(t, StatusConstruction, st)
	_, err = ParseFacilityStatus("paused")
	require.ErrorIs(t, err, ErrUnknownEnum)

	assert.Equal(t, "unknown(7)", FacilityType(7).String())
	assert.Equal(t, "unknown(7)", FacilityStatus(7).String())
}

func TestUtilization_String(t *testing.T) {
	assert.Equal(t, "92", Rate(92).String())
	assert.Equal(t, "87.5", Rate(87.5).String())
	assert.Equal(t, "N/A", Utilization{Label: LabelNotAvailable}.String())
}

func TestAllFacilities_Idempotent(t *testing.T) {
	repo := mixedRepo()
	assert.Equal(t, AllFacilities(repo), AllFacilities(repo))
}
