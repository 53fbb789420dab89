package entity

import (
	"github.com/google/uuid"
)

type ListingType string

const (
	ListingSale ListingType = "SALE"
	ListingRent ListingType = "RENT"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyRD  Currency = "RD"
)

// Property is a listing. Type is a soft reference to PropertyType.Key;
// lookup-table edits never invalidate existing listings.
type Property struct {
	Base
	Title            string           `db:"title"`
	Price            float64          `db:"price"`
	Currency         Currency         `db:"currency"`
	Location         string           `db:"location"`
	Bedrooms         int              `db:"bedrooms"`
	Bathrooms        float64          `db:"bathrooms"`
	Area             float64          `db:"area"`
	Type             string           `db:"type"`
	ListingType      ListingType      `db:"listing_type"`
	ModerationStatus ModerationStatus `db:"moderation_status"`
	Description      string           `db:"description"`
	Images           []string         `db:"images"`
	Amenities        []string         `db:"amenities"`
	AgentProfileID   uuid.UUID        `db:"agent_profile_id"`
}
