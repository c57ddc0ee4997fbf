package pagination

import "fmt"

// PaginationMeta contains metadata about paginated results.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPaginationMeta creates pagination metadata from parameters and total
// count. CurrentPage is the page ApplyToSlice returns, not the one requested.
func NewPaginationMeta(params PaginationParams, totalCount int) PaginationMeta {
	currentPage := params.EffectivePage(totalCount)
	totalPages := params.CalculateTotalPages(totalCount)

	return PaginationMeta{
		CurrentPage: currentPage,
		PageSize:    params.pageSize(totalCount),
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// String summarises the page position, e.g. "page 2 of 3, 25 total".
func (m PaginationMeta) String() string {
	return fmt.Sprintf("page %d of %d, %d total", m.CurrentPage, m.TotalPages, m.TotalItems)
}
