package request

import (
	"net/url"
	"strconv"
	"strings"
)

type PropertyRequest struct {
	Title         string   `json:"title" validate:"required,min=2"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Currency      string   `json:"currency" validate:"required,oneof=USD RD"`
	Location      string   `json:"location" validate:"required,min=2"`
	Bedrooms      int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms     float64  `json:"bathrooms" validate:"gte=0"`
	Area          float64  `json:"area" validate:"gte=0"`
	Type          string   `json:"type" validate:"required,min=2"`
	ListingType   string   `json:"listingType" validate:"required,oneof=SALE RENT"`
	Description   string   `json:"description" validate:"required,min=10"`
	Images        []string `json:"images,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	ContactName   *string  `json:"contactName,omitempty"`
	ContactEmail  *string  `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone  *string  `json:"contactPhone,omitempty"`
	ContactAvatar *string  `json:"contactAvatar,omitempty"`
}

// PropertyUpdateRequest is a partial PropertyRequest; nil fields are
// left untouched. ModerationStatus is honored on the admin path only.
type PropertyUpdateRequest struct {
	Title            *string  `json:"title,omitempty" validate:"omitempty,min=2"`
	Price            *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Currency         *string  `json:"currency,omitempty" validate:"omitempty,oneof=USD RD"`
	Location         *string  `json:"location,omitempty" validate:"omitempty,min=2"`
	Bedrooms         *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms        *float64 `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Area             *float64 `json:"area,omitempty" validate:"omitempty,gte=0"`
	Type             *string  `json:"type,omitempty" validate:"omitempty,min=2"`
	ListingType      *string  `json:"listingType,omitempty" validate:"omitempty,oneof=SALE RENT"`
	ModerationStatus *string  `json:"moderationStatus,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Description      *string  `json:"description,omitempty" validate:"omitempty,min=10"`
	Images           []string `json:"images,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
}

// PropertyListQuery is the flat set of optional listing filters parsed
// from query parameters.
type PropertyListQuery struct {
	ListingTypes []string
	Types        []string
	MinPrice     *float64
	MaxPrice     *float64
	Location     string
	Bedrooms     *int
	Bathrooms    *float64
	AreaMin      *float64
	AreaMax      *float64
	Amenities    []string
	Statuses     []string
	Page         int
	PageSize     int
}

// ParsePropertyListQuery reads listing filters from query parameters.
// Malformed numbers are treated as not supplied; unknown enum values
// pass through and simply match nothing.
func ParsePropertyListQuery(values url.Values) PropertyListQuery {
	q := PropertyListQuery{
		ListingTypes: splitParam(values.Get("listingType"), true),
		Types:        splitParam(values.Get("type"), false),
		MinPrice:     parseFloat(values.Get("minPrice")),
		MaxPrice:     parseFloat(values.Get("maxPrice")),
		Location:     strings.TrimSpace(values.Get("location")),
		Bedrooms:     parseInt(values.Get("bedrooms")),
		Bathrooms:    parseFloat(values.Get("bathrooms")),
		AreaMin:      parseFloat(values.Get("areaMin")),
		AreaMax:      parseFloat(values.Get("areaMax")),
		Amenities:    splitParam(values.Get("amenities"), false),
		Statuses:     splitParam(values.Get("moderationStatus"), true),
	}

	if page := parseInt(values.Get("page")); page != nil {
		q.Page = *page
	}
	if pageSize := parseInt(values.Get("pageSize")); pageSize != nil {
		q.PageSize = *pageSize
	}

	return q
}

func splitParam(raw string, upper bool) []string {
	if raw == "" {
		return nil
	}
	if upper {
		raw = strings.ToUpper(raw)
	}
	var parts []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseInt(raw string) *int {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}
