// Package pagination provides utilities for CLI pagination, sorting, and result formatting.
//
// This package contains shared pagination logic used by the facility listing
// commands, including:
//   - PaginationParams: CLI flag parsing and validation
//   - PaginationMeta: Response metadata for paginated results
//   - Sorter: Sorting interface with field validation over engine.Facility
//
// Page-based (--page/--page-size) and offset-based (--limit/--offset) modes are
// mutually exclusive, mirroring the paging of the operations table.
package pagination
