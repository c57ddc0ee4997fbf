package supplychain

import "slices"

// clonePtr returns a pointer to a copy of *p, or nil.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of s.
func (s Site) Clone() Site {
	s.UtilizationRate = clonePtr(s.UtilizationRate)
	return s
}

// Clone returns a deep copy of m. No pointer or slice is shared with m.
func (m MiningOperation) Clone() MiningOperation {
	m.Site = m.Site.Clone()
	m.OreGrade = clonePtr(m.OreGrade)
	m.ActualProduction = clonePtr(m.ActualProduction)
	m.WaterConsumption = clonePtr(m.WaterConsumption)
	m.CarbonIntensity = clonePtr(m.CarbonIntensity)
	m.RenewableEnergyPercent = clonePtr(m.RenewableEnergyPercent)
	return m
}

// Clone returns a deep copy of p.
func (p ProcessingFacility) Clone() ProcessingFacility {
	p.Site = p.Site.Clone()
	p.EnergyConsumption = clonePtr(p.EnergyConsumption)
	p.WaterConsumption = clonePtr(p.WaterConsumption)
	p.RenewableEnergyPercent = clonePtr(p.RenewableEnergyPercent)
	return p
}

// Clone returns a deep copy of b.
func (b BatteryManufacturing) Clone() BatteryManufacturing {
	b.Site = b.Site.Clone()
	b.BatteryChemistry = slices.Clone(b.BatteryChemistry)
	b.EnergyConsumption = clonePtr(b.EnergyConsumption)
	b.RenewableEnergyPercent = clonePtr(b.RenewableEnergyPercent)
	return b
}

// cloneAll deep-copies every record of a collection.
func cloneAll[T interface{ Clone() T }](records []T) []T {
	if records == nil {
		return nil
	}
	out := make([]T, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
