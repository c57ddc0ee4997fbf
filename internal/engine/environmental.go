package engine

// EnvironmentalMetrics are the sustainability averages shown on the dashboard.
type EnvironmentalMetrics struct {
	// AvgCarbonIntensity averages carbon intensity over operational mining
	// operations that report it. The unit is whatever the records carry.
	AvgCarbonIntensity float64 `json:"avgCarbonIntensity"`
	// AvgWaterConsumption averages water use over operational mining
	// operations that report it.
	AvgWaterConsumption float64 `json:"avgWaterConsumption"`
	// AvgRenewableEnergy averages the renewable share over operational
	// entities of every kind. A reported 0% is treated as not reported.
	AvgRenewableEnergy float64 `json:"avgRenewableEnergy"`
}

// CalculateEnvironmentalMetrics derives the sustainability averages from src.
// Each average is 0 when no record qualifies.
func CalculateEnvironmentalMetrics(src Source) EnvironmentalMetrics {
	var carbon, water, renewable mean

	for _, m := range src.MiningOperations() {
		if !m.Status.IsOperational() {
			continue
		}
		if m.CarbonIntensity != nil {
			carbon.add(m.CarbonIntensity.Value)
		}
		if m.WaterConsumption != nil {
			water.add(m.WaterConsumption.Value)
		}
		renewable.addNonZero(m.RenewableEnergyPercent)
	}

	for _, p := range src.ProcessingFacilities() {
		if p.Status.IsOperational() {
			renewable.addNonZero(p.RenewableEnergyPercent)
		}
	}

	for _, b := range src.BatteryManufacturing() {
		if b.Status.IsOperational() {
			renewable.addNonZero(b.RenewableEnergyPercent)
		}
	}

	return EnvironmentalMetrics{
		AvgCarbonIntensity:  carbon.value(),
		AvgWaterConsumption: water.value(),
		AvgRenewableEnergy:  renewable.value(),
	}
}

// CarbonIntensityUnit returns the unit of the first operational mining
// operation reporting carbon intensity, or "" when none does. Renderers use it
// to label AvgCarbonIntensity.
func CarbonIntensityUnit(src Source) string {
	for _, m := range src.MiningOperations() {
		if m.Status.IsOperational() && m.CarbonIntensity != nil {
			return m.CarbonIntensity.Unit
		}
	}
	return ""
}

// WaterConsumptionUnit is CarbonIntensityUnit for water consumption.
func WaterConsumptionUnit(src Source) string {
	for _, m := range src.MiningOperations() {
		if m.Status.IsOperational() && m.WaterConsumption != nil {
			return m.WaterConsumption.Unit
		}
	}
	return ""
}
