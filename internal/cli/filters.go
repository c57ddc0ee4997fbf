package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/lithiumscope/internal/engine"
	"github.com/rshade/lithiumscope/internal/logging"
)

// ErrInvalidFilter is returned for a --type or --status value that names no
// facility type or status.
var ErrInvalidFilter = errors.New("invalid filter")

// ValidateFacilityQuery checks that the type and status clauses of q name a
// known label (case-insensitive) or the "all" wildcard.
func ValidateFacilityQuery(q engine.FacilityQuery) error {
	types := []string{
		engine.TypeMining.String(), engine.TypeProcessing.String(), engine.TypeBattery.String(),
	}
	if !isKnownLabel(q.Type, types) {
		return fmt.Errorf("%w: type %q (valid: %s, %s)",
			ErrInvalidFilter, q.Type, strings.Join(types, ", "), engine.FilterAll)
	}

	statuses := []string{
		engine.StatusActive.String(), engine.StatusCaution.String(), engine.StatusConstruction.String(),
	}
	if !isKnownLabel(q.Status, statuses) {
		return fmt.Errorf("%w: status %q (valid: %s, %s)",
			ErrInvalidFilter, q.Status, strings.Join(statuses, ", "), engine.FilterAll)
	}

	return nil
}

func isKnownLabel(v string, labels []string) bool {
	if v == "" || strings.EqualFold(v, engine.FilterAll) {
		return true
	}
	for _, l := range labels {
		if strings.EqualFold(v, l) {
			return true
		}
	}
	return false
}

// ApplyFacilityFilters validates q and applies it to facilities.
// It logs validation failures and filter application results for debugging.
//
// An empty query returns the original facilities unchanged. A warning is
// logged if the filtered result is empty.
func ApplyFacilityFilters(
	ctx context.Context,
	facilities []engine.Facility,
	q engine.FacilityQuery,
) ([]engine.Facility, error) {
	log := logging.FromContext(ctx)

	if err := ValidateFacilityQuery(q); err != nil {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Err(err).
			Msg("invalid facility filter")
		return nil, err
	}

	if q.IsEmpty() {
		return facilities, nil
	}

	result := engine.FilterFacilities(facilities, q)
	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "apply_filters").
		Str("search", q.Search).
		Str("type", q.Type).
		Str("status", q.Status).
		Int("before", len(facilities)).
		Int("after", len(result)).
		Msg("applied facility filter")

	if len(result) == 0 && len(facilities) > 0 {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Int("original_count", len(facilities)).
			Msg("no facilities match filter criteria")
	}

	return result, nil
}
