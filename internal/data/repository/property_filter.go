package repository

import (
	"fmt"
	"strings"

	"real-estate-backend/internal/data/entity"

	"github.com/google/uuid"
)

// PropertyFilter is the flat set of optional filter fields a listing
// query may carry. Zero values mean "not supplied". Set-valued fields
// use OR semantics within the set; all supplied fields combine with AND.
type PropertyFilter struct {
	ListingTypes   []string
	Types          []string
	MinPrice       *float64
	MaxPrice       *float64
	Location       string
	Bedrooms       *int
	Bathrooms      *float64
	AreaMin        *float64
	AreaMax        *float64
	Amenities      []string
	Statuses       []entity.ModerationStatus
	AgentProfileID *uuid.UUID
}

// buildPropertyPredicate translates a filter into a WHERE clause plus
// positional args. Unless Statuses is supplied (privileged callers
// only), the predicate pins visibility to APPROVED.
func buildPropertyPredicate(f PropertyFilter) (string, []any) {
	var sb strings.Builder
	args := []any{}
	argCount := 1

	and := func(cond string, vals ...any) {
		if len(args) == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(cond)
		args = append(args, vals...)
		argCount += len(vals)
	}

	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		and(fmt.Sprintf("moderation_status = ANY($%d)", argCount), statuses)
	} else {
		and(fmt.Sprintf("moderation_status = $%d", argCount), string(entity.ModerationApproved))
	}

	if len(f.ListingTypes) > 0 {
		and(fmt.Sprintf("listing_type = ANY($%d)", argCount), f.ListingTypes)
	}

	if len(f.Types) > 0 {
		and(fmt.Sprintf("type = ANY($%d)", argCount), f.Types)
	}

	if f.MinPrice != nil {
		and(fmt.Sprintf("price >= $%d", argCount), *f.MinPrice)
	}
	if f.MaxPrice != nil {
		and(fmt.Sprintf("price <= $%d", argCount), *f.MaxPrice)
	}

	if location := strings.TrimSpace(f.Location); location != "" {
		and(fmt.Sprintf("location ILIKE $%d", argCount), "%"+location+"%")
	}

	if f.Bedrooms != nil {
		and(fmt.Sprintf("bedrooms >= $%d", argCount), *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		and(fmt.Sprintf("bathrooms >= $%d", argCount), *f.Bathrooms)
	}

	if f.AreaMin != nil {
		and(fmt.Sprintf("area >= $%d", argCount), *f.AreaMin)
	}
	if f.AreaMax != nil {
		and(fmt.Sprintf("area <= $%d", argCount), *f.AreaMax)
	}

	// Match-any: the property qualifies if it has at least one of the
	// requested amenities.
	if len(f.Amenities) > 0 {
		and(fmt.Sprintf("amenities && $%d", argCount), f.Amenities)
	}

	if f.AgentProfileID != nil {
		and(fmt.Sprintf("agent_profile_id = $%d", argCount), *f.AgentProfileID)
	}

	return sb.String(), args
}
