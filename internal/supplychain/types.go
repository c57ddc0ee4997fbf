// Package supplychain defines the lithium supply-chain entity records and the
// read-only repository that holds them for the lifetime of the process.
//
// Three entity kinds exist: mining operations, processing facilities and
// battery manufacturing sites. They share a common header (identity, location,
// lifecycle status) and carry a kind-specific capacity structure. Optional
// measurements are pointers; nil means the source did not report the value.
package supplychain

// EntityType is the discriminant tag carried by every record.
type EntityType string

const (
	// EntityMining tags a mining operation.
	EntityMining EntityType = "mining_operation"
	// EntityProcessing tags a refining / conversion facility.
	EntityProcessing EntityType = "processing_facility"
	// EntityBattery tags a battery manufacturing site.
	EntityBattery EntityType = "battery_manufacturing"
)

// Status is the lifecycle state of a facility. It is authoritative for every
// active/inactive decision made by the aggregators.
type Status string

const (
	// StatusOperational means the facility is producing.
	StatusOperational Status = "operational"
	// StatusUnderConstruction means capacity is committed but not yet producing.
	StatusUnderConstruction Status = "under_construction"
	// StatusPlanned means the project is announced only.
	StatusPlanned Status = "planned"
	// StatusSuspended means production is halted.
	StatusSuspended Status = "suspended"
	// StatusClosed means the facility is permanently shut.
	StatusClosed Status = "closed"
)

// IsOperational reports whether s is exactly StatusOperational.
func (s Status) IsOperational() bool {
	return s == StatusOperational
}

// ConfidenceLevel annotates data quality. It is preserved but not aggregated.
type ConfidenceLevel string

// Confidence levels.
const (
	ConfidenceHigh   ConfidenceLevel = "HIGH"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceLow    ConfidenceLevel = "LOW"
)

// Measurement is a value with a free-text unit. Units are never parsed here.
type Measurement struct {
	Value float64 `json:"value" validate:"gte=0"`
	Unit  string  `json:"unit"`
}

// Production is a reported output figure for a given year.
type Production struct {
	Value float64 `json:"value" validate:"gte=0"`
	Year  int     `json:"year"`
}

// Site holds the fields common to every entity kind.
type Site struct {
	ID              string          `json:"id"                      validate:"required"`
	Name            string          `json:"name"                    validate:"required"`
	EntityType      EntityType      `json:"entityType"              validate:"required"`
	Operator        string          `json:"operator"`
	Country         string          `json:"country"                 validate:"required"`
	CountryName     string          `json:"countryName"             validate:"required"`
	StateProvince   string          `json:"stateProvince,omitempty"`
	Latitude        float64         `json:"latitude"                validate:"gte=-90,lte=90"`
	Longitude       float64         `json:"longitude"               validate:"gte=-180,lte=180"`
	Status          Status          `json:"status"                  validate:"oneof=operational under_construction planned suspended closed"`
	UtilizationRate *float64        `json:"utilizationRate,omitempty"`
	ConfidenceLevel ConfidenceLevel `json:"confidenceLevel"         validate:"omitempty,oneof=HIGH MEDIUM LOW"`
}

// MiningOperation is an ore or brine extraction site.
type MiningOperation struct {
	Site

	OperationType          string       `json:"operationType"`
	OreType                string       `json:"oreType"`
	OreGrade               *Measurement `json:"oreGrade,omitempty"`
	NameplateCapacity      Measurement  `json:"nameplateCapacity"`
	ActualProduction       *Production  `json:"actualProduction,omitempty"`
	WaterConsumption       *Measurement `json:"waterConsumption,omitempty"`
	CarbonIntensity        *Measurement `json:"carbonIntensity,omitempty"`
	RenewableEnergyPercent *float64     `json:"renewableEnergyPercent,omitempty"`
	FirstProduction        string       `json:"firstProduction,omitempty"`
}

// MaterialFlow describes a processing facility's input feedstock.
type MaterialFlow struct {
	Type     string  `json:"type"`
	Capacity float64 `json:"capacity" validate:"gte=0"`
	Unit     string  `json:"unit"`
}

// Product describes a processing facility's refined output.
type Product struct {
	Type     string  `json:"type"`
	Capacity float64 `json:"capacity" validate:"gte=0"`
	Unit     string  `json:"unit"`
	Grade    string  `json:"grade"`
}

// ProcessingFacility is a refinery or chemical conversion plant.
type ProcessingFacility struct {
	Site

	FacilityType           string       `json:"facilityType"`
	ProcessingTechnology   string       `json:"processingTechnology"`
	InputMaterial          MaterialFlow `json:"inputMaterial"`
	OutputProduct          Product      `json:"outputProduct"`
	EnergyConsumption      *Measurement `json:"energyConsumption,omitempty"`
	WaterConsumption       *Measurement `json:"waterConsumption,omitempty"`
	RenewableEnergyPercent *float64     `json:"renewableEnergyPercent,omitempty"`
	CommissioningDate      string       `json:"commissioningDate,omitempty"`
}

// LithiumInput is the lithium chemical a battery plant consumes.
type LithiumInput struct {
	Value    float64 `json:"value" validate:"gte=0"`
	Unit     string  `json:"unit"`
	Material string  `json:"material"`
}

// BatteryManufacturing is a cell or pack production site.
type BatteryManufacturing struct {
	Site

	FacilityType           string       `json:"facilityType"`
	BatteryChemistry       []string     `json:"batteryChemistry"`
	AnnualCapacity         Measurement  `json:"annualCapacity"`
	LithiumInput           LithiumInput `json:"lithiumInput"`
	EnergyConsumption      *Measurement `json:"energyConsumption,omitempty"`
	RenewableEnergyPercent *float64     `json:"renewableEnergyPercent,omitempty"`
	CommissioningDate      string       `json:"commissioningDate,omitempty"`
}
