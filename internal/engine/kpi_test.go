package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/lithiumscope/internal/supplychain"
)

func TestCalculateKPIs_Example(t *testing.T) {
	k := CalculateKPIs(exampleRepo())

	assert.InDelta(t, 280000.0, k.TotalMiningCapacity, 1e-9)
	assert.Equal(t, 2, k.ActiveFacilities)
	assert.InDelta(t, 24000.0, k.ProcessingOutput, 1e-9)
	assert.InDelta(t, 0.0, k.BatteryCapacity, 1e-9)
	assert.InDelta(t, 93.0, k.AvgUtilization, 1e-9)
}

func TestCalculateKPIs_Mixed(t *testing.T) {
	k := CalculateKPIs(mixedRepo())

	// Under-construction mines count toward capacity; planned and suspended do not.
	assert.InDelta(t, 150000.0, k.TotalMiningCapacity, 1e-9)
	assert.Equal(t, 4, k.ActiveFacilities)
	// Under-construction processing does not count toward output.
	assert.InDelta(t, 40000.0, k.ProcessingOutput, 1e-9)
	assert.InDelta(t, 37.5, k.BatteryCapacity, 1e-9)
	// Operational p-op-nil reports no rate and is left out of the mean.
	assert.InDelta(t, 70.0, k.AvgUtilization, 1e-9)
}

func TestCalculateKPIs_NoReportingEntities(t *testing.T) {
	tests := []struct {
		name string
		repo *supplychain.Repository
	}{
		{"empty", supplychain.NewRepository(nil, nil, nil)},
		{
			"operational without rates",
			supplychain.NewRepository(
				[]supplychain.MiningOperation{mine("m", supplychain.StatusOperational, 1, nil)},
				nil,
				[]supplychain.BatteryManufacturing{gigafactory("b", supplychain.StatusOperational, 1, nil)},
			),
		},
		{
			"rates only on inactive entities",
			supplychain.NewRepository(
				[]supplychain.MiningOperation{mine("m", supplychain.StatusSuspended, 1, ptr(50))},
				nil, nil,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := CalculateKPIs(tt.repo)
			assert.InDelta(t, 0.0, k.AvgUtilization, 1e-9)
		})
	}
}

func TestCalculateKPIs_ZeroRateCounts(t *testing.T) {
	repo := supplychain.NewRepository(
		[]supplychain.MiningOperation{
			mine("a", supplychain.StatusOperational, 1, ptr(0)),
			mine("b", supplychain.StatusOperational, 1, ptr(80)),
		},
		nil, nil,
	)

	assert.InDelta(t, 40.0, CalculateKPIs(repo).AvgUtilization, 1e-9)
}

func TestCalculateKPIs_Idempotent(t *testing.T) {
	repo := mixedRepo()
	assert.Equal(t, CalculateKPIs(repo), CalculateKPIs(repo))
}
