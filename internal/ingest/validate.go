package ingest

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/lithiumscope/internal/supplychain"
)

// Load-time defects. Callers match them with errors.Is.
var (
	ErrUnsupportedSchema = errors.New("unsupported dataset schema version")
	ErrInvalidRecord     = errors.New("invalid dataset record")
	ErrDuplicateID       = errors.New("duplicate record id")
)

// recordValidate checks struct tags on decoded records. Safe for concurrent use.
//
//nolint:gochecknoglobals // Shared validator caches struct metadata.
var recordValidate = validator.New(validator.WithRequiredStructEnabled())

func miningSite(r *supplychain.MiningOperation) *supplychain.Site        { return &r.Site }
func processingSite(r *supplychain.ProcessingFacility) *supplychain.Site { return &r.Site }
func batterySite(r *supplychain.BatteryManufacturing) *supplychain.Site  { return &r.Site }

// validateRecords checks tags, the entityType discriminant and id uniqueness
// for one collection. Ids only need to be unique within a kind.
func validateRecords[T any](
	file string,
	want supplychain.EntityType,
	records []T,
	site func(*T) *supplychain.Site,
) error {
	seen := make(map[string]int, len(records))

	for i := range records {
		s := site(&records[i])

		if err := recordValidate.Struct(&records[i]); err != nil {
			return fmt.Errorf("%w: %s[%d] (id %q): %w", ErrInvalidRecord, file, i, s.ID, err)
		}
		if s.EntityType != want {
			return fmt.Errorf("%w: %s[%d] (id %q): entityType %q, want %q",
				ErrInvalidRecord, file, i, s.ID, s.EntityType, want)
		}
		if prev, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: %s: %q at index %d and %d", ErrDuplicateID, file, s.ID, prev, i)
		}
		seen[s.ID] = i
	}

	return nil
}
