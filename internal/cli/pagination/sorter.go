package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/lithiumscope/internal/engine"
)

// Sorter defines the interface for sorting facility rows.
type Sorter interface {
	// Sort sorts a slice of facilities by the specified field and order.
	Sort(facilities []engine.Facility, field, order string) []engine.Facility
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns a list of valid field names for sorting.
	GetValidFields() []string
}

// FacilitySorter implements Sorter for engine.Facility.
type FacilitySorter struct {
	validFields map[string]bool
}

// NewFacilitySorter creates a new FacilitySorter with valid sort fields.
func NewFacilitySorter() *FacilitySorter {
	fields := engine.SortFields()
	valid := make(map[string]bool, len(fields))
	for _, f := range fields {
		valid[f] = true
	}
	return &FacilitySorter{validFields: valid}
}

// IsValidField checks if the field is valid for sorting.
func (s *FacilitySorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *FacilitySorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields) // Return in consistent order
	return fields
}

// Sort sorts facilities by the specified field and order.
// Returns a new sorted slice; does not modify the original.
// If field is invalid, returns the original slice unchanged.
func (s *FacilitySorter) Sort(facilities []engine.Facility, field, order string) []engine.Facility {
	if !s.IsValidField(field) {
		return facilities
	}
	return engine.SortFacilities(facilities, field, order)
}

// ValidateField returns ErrInvalidSortField, listing the accepted fields,
// when field is set but unknown.
func (s *FacilitySorter) ValidateField(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
}
