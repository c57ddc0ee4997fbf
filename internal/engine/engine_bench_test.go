package engine

import (
	"fmt"
	"testing"

	"github.com/rshade/lithiumscope/internal/supplychain"
)

// largeRepo has n entities of each kind, alternating operational and planned.
func largeRepo(n int) *supplychain.Repository {
	mines := make([]supplychain.MiningOperation, n)
	plants := make([]supplychain.ProcessingFacility, n)
	batteries := make([]supplychain.BatteryManufacturing, n)
	for i := 0; i < n; i++ {
		status := supplychain.StatusOperational
		if i%2 == 1 {
			status = supplychain.StatusPlanned
		}
		util := ptr(float64(i % 100))
		mines[i] = mine(fmt.Sprintf("m%d", i), status, float64(i), util)
		plants[i] = plant(fmt.Sprintf("p%d", i), status, float64(i), util)
		batteries[i] = gigafactory(fmt.Sprintf("b%d", i), status, float64(i), util)
	}
	return supplychain.NewRepository(mines, plants, batteries)
}

func BenchmarkCalculateKPIs(b *testing.B) {
	b.ReportAllocs()
	repo := largeRepo(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CalculateKPIs(repo)
	}
}

func BenchmarkAllFacilities(b *testing.B) {
	b.ReportAllocs()
	repo := largeRepo(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AllFacilities(repo)
	}
}

func BenchmarkSortFacilities_Utilization(b *testing.B) {
	b.ReportAllocs()
	rows := AllFacilities(largeRepo(10000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SortFacilities(rows, SortFieldUtilization, "desc")
	}
}
