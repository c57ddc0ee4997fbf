package engine

import (
	"slices"
	"sort"
	"strings"
)

// FilterAll disables a type or status filter, like an empty string.
const FilterAll = "all"

// Sort fields accepted by SortFacilities. SortFieldFacility is an alias of
// SortFieldName kept for the table header label.
const (
	SortFieldFacility    = "facility"
	SortFieldName        = "name"
	SortFieldType        = "type"
	SortFieldCountry     = "country"
	SortFieldCapacity    = "capacity"
	SortFieldUtilization = "utilization"
	SortFieldStatus      = "status"
)

// SortFields lists every accepted sort field in display order.
func SortFields() []string {
	return []string{
		SortFieldFacility, SortFieldName, SortFieldType, SortFieldCountry,
		SortFieldCapacity, SortFieldUtilization, SortFieldStatus,
	}
}

// IsSortField reports whether field is accepted by SortFacilities.
func IsSortField(field string) bool {
	return slices.Contains(SortFields(), field)
}

// FacilityQuery narrows a facility list the way the operations table does.
type FacilityQuery struct {
	// Search matches a case-insensitive substring of the name or country.
	Search string
	// Type is a FacilityType label ("Mining", ...); "" or "all" keeps every type.
	Type string
	// Status is a FacilityStatus label ("active", ...); "" or "all" keeps every status.
	Status string
}

// IsEmpty reports whether the query keeps every facility.
func (q FacilityQuery) IsEmpty() bool {
	return q.Search == "" && isWildcard(q.Type) && isWildcard(q.Status)
}

// Matches reports whether f satisfies every clause of q.
func (q FacilityQuery) Matches(f Facility) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(f.Name), needle) &&
			!strings.Contains(strings.ToLower(f.Country), needle) {
			return false
		}
	}
	if !isWildcard(q.Type) && !strings.EqualFold(q.Type, f.Type.String()) {
		return false
	}
	if !isWildcard(q.Status) && !strings.EqualFold(q.Status, f.Status.String()) {
		return false
	}
	return true
}

// FilterFacilities returns the facilities matching q, preserving order. The
// result is never nil.
func FilterFacilities(facilities []Facility, q FacilityQuery) []Facility {
	out := make([]Facility, 0, len(facilities))
	for _, f := range facilities {
		if q.Matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// SortFacilities returns a stably sorted copy of facilities. order is "asc"
// or "desc"; anything else sorts ascending. An unknown field returns an
// unsorted copy.
//
// Capacity compares the raw capacity number, ignoring units. Utilization
// compares numerically when both rows report a rate. Every other comparison
// is on the lower-cased display string, so "N/A" and "Under Construction"
// sort among the numbers as text.
func SortFacilities(facilities []Facility, field, order string) []Facility {
	sorted := slices.Clone(facilities)
	if !IsSortField(field) {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == "desc" {
			i, j = j, i
		}
		return lessFacility(sorted[i], sorted[j], field)
	})

	return sorted
}

func lessFacility(a, b Facility, field string) bool {
	if field == SortFieldCapacity {
		return a.CapacityValue < b.CapacityValue
	}
	if field == SortFieldUtilization && a.Utilization.IsNumber() && b.Utilization.IsNumber() {
		return *a.Utilization.Value < *b.Utilization.Value
	}
	return strings.ToLower(sortKey(a, field)) < strings.ToLower(sortKey(b, field))
}

func sortKey(f Facility, field string) string {
	switch field {
	case SortFieldFacility, SortFieldName:
		return f.Name
	case SortFieldType:
		return f.Type.String()
	case SortFieldCountry:
		return f.Country
	case SortFieldCapacity:
		return f.Capacity
	case SortFieldUtilization:
		return f.Utilization.String()
	case SortFieldStatus:
		return f.Status.String()
	default:
		return ""
	}
}

func isWildcard(v string) bool {
	return v == "" || strings.EqualFold(v, FilterAll)
}
