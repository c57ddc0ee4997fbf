package engine

import (
	"github.com/rshade/lithiumscope/internal/supplychain"
)

func ptr(v float64) *float64 { return &v }

func site(id string, kind supplychain.EntityType, status supplychain.Status, util *float64) supplychain.Site {
	return supplychain.Site{
		ID:              id,
		Name:            "Site " + id,
		EntityType:      kind,
		Country:         "AU",
		CountryName:     "Australia",
		Status:          status,
		UtilizationRate: util,
		ConfidenceLevel: supplychain.ConfidenceHigh,
	}
}

func mine(id string, status supplychain.Status, capacity float64, util *float64) supplychain.MiningOperation {
	return supplychain.MiningOperation{
		Site:              site(id, supplychain.EntityMining, status, util),
		NameplateCapacity: supplychain.Measurement{Value: capacity, Unit: "tonnes"},
	}
}

func plant(id string, status supplychain.Status, output float64, util *float64) supplychain.ProcessingFacility {
	return supplychain.ProcessingFacility{
		Site:          site(id, supplychain.EntityProcessing, status, util),
		OutputProduct: supplychain.Product{Type: "LiOH", Capacity: output, Unit: "tonnes"},
	}
}

func gigafactory(id string, status supplychain.Status, gwh float64, util *float64) supplychain.BatteryManufacturing {
	return supplychain.BatteryManufacturing{
		Site:           site(id, supplychain.EntityBattery, status, util),
		AnnualCapacity: supplychain.Measurement{Value: gwh, Unit: "GWh"},
	}
}

// exampleRepo is one operational mine (280000 t, 92%) and one operational
// refinery (24000 t, 94%).
func exampleRepo() *supplychain.Repository {
	return supplychain.NewRepository(
		[]supplychain.MiningOperation{mine("m1", supplychain.StatusOperational, 280000, ptr(92))},
		[]supplychain.ProcessingFacility{plant("p1", supplychain.StatusOperational, 24000, ptr(94))},
		nil,
	)
}

// mixedRepo covers every status across every kind.
func mixedRepo() *supplychain.Repository {
	return supplychain.NewRepository(
		[]supplychain.MiningOperation{
			mine("m-op", supplychain.StatusOperational, 100000, ptr(80)),
			mine("m-uc", supplychain.StatusUnderConstruction, 50000, nil),
			mine("m-pl", supplychain.StatusPlanned, 70000, nil),
			mine("m-su", supplychain.StatusSuspended, 20000, ptr(0)),
		},
		[]supplychain.ProcessingFacility{
			plant("p-op", supplychain.StatusOperational, 30000, ptr(60)),
			plant("p-uc", supplychain.StatusUnderConstruction, 40000, nil),
			plant("p-op-nil", supplychain.StatusOperational, 10000, nil),
		},
		[]supplychain.BatteryManufacturing{
			gigafactory("b-op", supplychain.StatusOperational, 37.5, ptr(70)),
			gigafactory("b-cl", supplychain.StatusClosed, 10, ptr(10)),
			gigafactory("b-uc", supplychain.StatusUnderConstruction, 30, nil),
		},
	)
}
