package repository

import (
	"strings"
	"testing"

	"real-estate-backend/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildPropertyPredicate_Empty(t *testing.T) {
	where, args := buildPropertyPredicate(PropertyFilter{})

	// No filter still pins visibility to APPROVED
	assert.Equal(t, " WHERE moderation_status = $1", where)
	assert.Equal(t, []any{"APPROVED"}, args)
}

func TestBuildPropertyPredicate_ExplicitStatuses(t *testing.T) {
	where, args := buildPropertyPredicate(PropertyFilter{
		Statuses: []entity.ModerationStatus{entity.ModerationPending, entity.ModerationRejected},
	})

	assert.Equal(t, " WHERE moderation_status = ANY($1)", where)
	assert.Equal(t, []any{[]string{"PENDING", "REJECTED"}}, args)
}

func TestBuildPropertyPredicate_SetsUseAny(t *testing.T) {
	where, args := buildPropertyPredicate(PropertyFilter{
		ListingTypes: []string{"SALE", "RENT"},
		Types:        []string{"house", "apartment"},
	})

	assert.Contains(t, where, "listing_type = ANY($2)")
	assert.Contains(t, where, "type = ANY($3)")
	assert.Len(t, args, 3)
	assert.Equal(t, []string{"SALE", "RENT"}, args[1])
	assert.Equal(t, []string{"house", "apartment"}, args[2])
}

func TestBuildPropertyPredicate_PriceBoundsInclusive(t *testing.T) {
	where, args := buildPropertyPredicate(PropertyFilter{
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(250000),
	})

	assert.Contains(t, where, "price >= $2")
	assert.Contains(t, where, "price <= $3")
	assert.Equal(t, 100000.0, args[1])
	assert.Equal(t, 250000.0, args[2])
}

func TestBuildPropertyPredicate_LocationSubstring(t *testing.T) {
	where, args := buildPropertyPredicate(PropertyFilter{Location: "  Santo Domingo  "})

	assert.Contains(t, where, "location ILIKE $2")
	assert.Equal(t, "%Santo Domingo%", args[1])
}

func TestBuildPropertyPredicate_BlankLocationIgnored(t *testing.T) {
	where, args := buildPropertyPredicate(PropertyFilter{Location: "   "})

	assert.NotContains(t, where, "location")
	assert.Len(t, args, 1)
}

func TestBuildPropertyPredicate_RoomCountsAreMinimums(t *testing.T) {
	where, _ := buildPropertyPredicate(PropertyFilter{
		Bedrooms:  intPtr(3),
		Bathrooms: floatPtr(2.5),
	})

	assert.Contains(t, where, "bedrooms >= $2")
	assert.Contains(t, where, "bathrooms >= $3")
}

func TestBuildPropertyPredicate_AmenitiesOverlap(t *testing.T) {
	where, args := buildPropertyPredicate(PropertyFilter{
		Amenities: []string{"pool", "garage"},
	})

	assert.Contains(t, where, "amenities && $2")
	assert.Equal(t, []string{"pool", "garage"}, args[1])
}

func TestBuildPropertyPredicate_AllFieldsCombineWithAnd(t *testing.T) {
	agentID := uuid.New()
	where, args := buildPropertyPredicate(PropertyFilter{
		ListingTypes:   []string{"SALE"},
		Types:          []string{"house"},
		MinPrice:       floatPtr(1),
		MaxPrice:       floatPtr(2),
		Location:       "Punta Cana",
		Bedrooms:       intPtr(2),
		Bathrooms:      floatPtr(1),
		AreaMin:        floatPtr(50),
		AreaMax:        floatPtr(500),
		Amenities:      []string{"pool"},
		AgentProfileID: &agentID,
	})

	// 1 implicit status + 11 supplied fields
	assert.Len(t, args, 12)
	assert.Equal(t, 11, strings.Count(where, " AND "))
	assert.Contains(t, where, "agent_profile_id = $12")
}
