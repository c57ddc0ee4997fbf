package supplychain

// Repository is the immutable in-memory store of entity records. Collections
// keep source order. A Repository is safe for concurrent readers.
type Repository struct {
	mining     []MiningOperation
	processing []ProcessingFacility
	battery    []BatteryManufacturing
}

// NewRepository builds a Repository from the three decoded collections. The
// records are deep-copied so later changes by the caller are not observed.
func NewRepository(
	mining []MiningOperation,
	processing []ProcessingFacility,
	battery []BatteryManufacturing,
) *Repository {
	return &Repository{
		mining:     cloneAll(mining),
		processing: cloneAll(processing),
		battery:    cloneAll(battery),
	}
}

// MiningOperations returns a deep copy of every mining operation in source order.
func (r *Repository) MiningOperations() []MiningOperation {
	return cloneAll(r.mining)
}

// ProcessingFacilities returns every processing facility in source order.
func (r *Repository) ProcessingFacilities() []ProcessingFacility {
	return cloneAll(r.processing)
}

// BatteryManufacturing returns every battery manufacturing site in source order.
func (r *Repository) BatteryManufacturing() []BatteryManufacturing {
	return cloneAll(r.battery)
}

// Len returns the total number of entities across all kinds.
func (r *Repository) Len() int {
	return len(r.mining) + len(r.processing) + len(r.battery)
}
