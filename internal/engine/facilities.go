// Package engine computes the derived views of the lithium supply chain: the
// unified facility list, headline KPIs, environmental averages and the flow
// graph projection.
//
// Every function here is a pure computation over a Source. Results are
// recomputed from scratch on each call and nothing is cached, so concurrent
// callers need no coordination.
package engine

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rshade/lithiumscope/internal/greenops"
	"github.com/rshade/lithiumscope/internal/supplychain"
)

// Utilization fallback labels used when an entity reports no rate.
const (
	LabelUnderConstruction = "Under Construction"
	LabelNotAvailable      = "N/A"
)

// ErrUnknownEnum is returned when a FacilityType or FacilityStatus label
// cannot be parsed.
var ErrUnknownEnum = errors.New("unknown enum value")

// Source is the read side of the entity repository.
type Source interface {
	MiningOperations() []supplychain.MiningOperation
	ProcessingFacilities() []supplychain.ProcessingFacility
	BatteryManufacturing() []supplychain.BatteryManufacturing
}

// FacilityType identifies which entity kind a Facility came from.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type FacilityType int

const (
	// TypeMining is a mining operation.
	TypeMining FacilityType = iota
	// TypeProcessing is a processing facility.
	TypeProcessing
	// TypeBattery is a battery manufacturing site.
	TypeBattery
)

// String returns the display label for a FacilityType.
func (t FacilityType) String() string {
	switch t {
	case TypeMining:
		return "Mining"
	case TypeProcessing:
		return "Processing"
	case TypeBattery:
		return "Battery"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// MarshalJSON implements json.Marshaler to output FacilityType as string.
func (t FacilityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse FacilityType from string.
func (t *FacilityType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing facility type: %w", err)
	}
	parsed, err := ParseFacilityType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseFacilityType parses a display label ("Mining", "Processing", "Battery").
func ParseFacilityType(s string) (FacilityType, error) {
	switch s {
	case "Mining":
		return TypeMining, nil
	case "Processing":
		return TypeProcessing, nil
	case "Battery":
		return TypeBattery, nil
	default:
		return 0, fmt.Errorf("%w: facility type %q", ErrUnknownEnum, s)
	}
}

// FacilityStatus is the three-way display status derived from the entity
// lifecycle status.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type FacilityStatus int

const (
	// StatusActive is an operational facility.
	StatusActive FacilityStatus = iota
	// StatusCaution covers planned, suspended and closed facilities.
	StatusCaution
	// StatusConstruction is a facility under construction.
	StatusConstruction
)

// String returns the label for a FacilityStatus.
func (s FacilityStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCaution:
		return "caution"
	case StatusConstruction:
		return "construction"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// MarshalJSON implements json.Marshaler to output FacilityStatus as string.
func (s FacilityStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse FacilityStatus from string.
func (s *FacilityStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing facility status: %w", err)
	}
	parsed, err := ParseFacilityStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseFacilityStatus parses "active", "caution" or "construction".
func ParseFacilityStatus(str string) (FacilityStatus, error) {
	switch str {
	case "active":
		return StatusActive, nil
	case "caution":
		return StatusCaution, nil
	case "construction":
		return StatusConstruction, nil
	default:
		return 0, fmt.Errorf("%w: facility status %q", ErrUnknownEnum, str)
	}
}

// MapStatus maps an entity lifecycle status to its display status. It is
// total: every value not operational or under construction maps to caution.
func MapStatus(s supplychain.Status) FacilityStatus {
	switch s {
	case supplychain.StatusOperational:
		return StatusActive
	case supplychain.StatusUnderConstruction:
		return StatusConstruction
	default:
		return StatusCaution
	}
}

// Utilization is either a reported rate or a fallback label.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver.
type Utilization struct {
	Value *float64
	Label string
}

// Rate builds a numeric Utilization.
func Rate(v float64) Utilization {
	return Utilization{Value: &v}
}

// IsNumber reports whether a rate was reported.
func (u Utilization) IsNumber() bool {
	return u.Value != nil
}

// String renders the rate as a bare number, or the label.
func (u Utilization) String() string {
	if u.Value == nil {
		return u.Label
	}
	return greenops.FormatQuantity(*u.Value)
}

// MarshalJSON emits a JSON number for a rate, or a string for a label.
func (u Utilization) MarshalJSON() ([]byte, error) {
	if u.Value != nil {
		return json.Marshal(*u.Value)
	}
	return json.Marshal(u.Label)
}

// UnmarshalJSON accepts either a number or a string.
func (u *Utilization) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*u = Rate(v)
		return nil
	}
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("parsing utilization: %w", err)
	}
	*u = Utilization{Label: label}
	return nil
}

// Facility is the kind-agnostic row shown in the operations table.
type Facility struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        FacilityType   `json:"type"`
	Country     string         `json:"country"`
	CountryCode string         `json:"countryCode"`
	Capacity    string         `json:"capacity"`
	Utilization Utilization    `json:"utilization"`
	Status      FacilityStatus `json:"status"`

	// CapacityValue is the number behind Capacity, kept for sorting.
	CapacityValue float64 `json:"-"`
}

// AllFacilities returns every entity as a Facility: mining first, then
// processing, then battery, each in source order.
func AllFacilities(src Source) []Facility {
	mining := src.MiningOperations()
	processing := src.ProcessingFacilities()
	battery := src.BatteryManufacturing()

	out := make([]Facility, 0, len(mining)+len(processing)+len(battery))

	for _, m := range mining {
		out = append(out, newFacility(m.Site, TypeMining,
			m.NameplateCapacity.Value, m.NameplateCapacity.Unit,
			utilizationOf(m.UtilizationRate, LabelUnderConstruction)))
	}
	for _, p := range processing {
		out = append(out, newFacility(p.Site, TypeProcessing,
			p.OutputProduct.Capacity, p.OutputProduct.Unit,
			utilizationOf(p.UtilizationRate, LabelNotAvailable)))
	}
	for _, b := range battery {
		out = append(out, newFacility(b.Site, TypeBattery,
			b.AnnualCapacity.Value, b.AnnualCapacity.Unit,
			utilizationOf(b.UtilizationRate, LabelUnderConstruction)))
	}

	return out
}

func newFacility(s supplychain.Site, t FacilityType, capacity float64, unit string, u Utilization) Facility {
	return Facility{
		ID:            s.ID,
		Name:          s.Name,
		Type:          t,
		Country:       s.CountryName,
		CountryCode:   s.Country,
		Capacity:      capacityString(capacity, unit),
		CapacityValue: capacity,
		Utilization:   u,
		Status:        MapStatus(s.Status),
	}
}

func capacityString(v float64, unit string) string {
	return greenops.FormatQuantity(v) + " " + unit
}

func utilizationOf(rate *float64, fallback string) Utilization {
	if rate == nil {
		return Utilization{Label: fallback}
	}
	return Rate(*rate)
}
