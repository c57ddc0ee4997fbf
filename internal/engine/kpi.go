package engine

import "github.com/rshade/lithiumscope/internal/supplychain"

// KPIs are the headline dashboard figures.
type KPIs struct {
	// TotalMiningCapacity sums nameplate capacity over mining operations that
	// are operational or under construction. Units are mixed across sites.
	TotalMiningCapacity float64 `json:"totalMiningCapacity"`
	// ActiveFacilities counts operational entities of every kind.
	ActiveFacilities int `json:"activeFacilities"`
	// ProcessingOutput sums output capacity over operational processing only.
	ProcessingOutput float64 `json:"processingOutput"`
	// BatteryCapacity sums annual capacity over operational battery sites.
	BatteryCapacity float64 `json:"batteryCapacity"`
	// AvgUtilization is the mean rate over operational entities that report
	// one, or 0 when none do. A reported rate of 0 is a measurement and counts
	// toward the mean; only a missing rate is skipped.
	AvgUtilization float64 `json:"avgUtilization"`
}

// CalculateKPIs derives the headline figures from src.
func CalculateKPIs(src Source) KPIs {
	var (
		k     KPIs
		rates mean
	)

	for _, m := range src.MiningOperations() {
		if m.Status == supplychain.StatusOperational || m.Status == supplychain.StatusUnderConstruction {
			k.TotalMiningCapacity += m.NameplateCapacity.Value
		}
		if m.Status.IsOperational() {
			k.ActiveFacilities++
			rates.addPresent(m.UtilizationRate)
		}
	}

	for _, p := range src.ProcessingFacilities() {
		if !p.Status.IsOperational() {
			continue
		}
		k.ActiveFacilities++
		k.ProcessingOutput += p.OutputProduct.Capacity
		rates.addPresent(p.UtilizationRate)
	}

	for _, b := range src.BatteryManufacturing() {
		if !b.Status.IsOperational() {
			continue
		}
		k.ActiveFacilities++
		k.BatteryCapacity += b.AnnualCapacity.Value
		rates.addPresent(b.UtilizationRate)
	}

	k.AvgUtilization = rates.value()
	return k
}

// mean accumulates an arithmetic mean that is 0 when empty.
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

// addPresent adds *v when v is non-nil. Zero counts.
func (m *mean) addPresent(v *float64) {
	if v != nil {
		m.add(*v)
	}
}

// addNonZero adds *v when v is non-nil and not zero.
func (m *mean) addNonZero(v *float64) {
	if v != nil && *v != 0 {
		m.add(*v)
	}
}

func (m *mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}
