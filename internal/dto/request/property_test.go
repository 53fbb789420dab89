package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePropertyListQuery_Full(t *testing.T) {
	values := url.Values{}
	values.Set("listingType", "sale,rent")
	values.Set("type", "house, apartment")
	values.Set("minPrice", "100000")
	values.Set("maxPrice", "250000.50")
	values.Set("location", " Santo Domingo ")
	values.Set("bedrooms", "3")
	values.Set("bathrooms", "2.5")
	values.Set("areaMin", "80")
	values.Set("areaMax", "300")
	values.Set("amenities", "pool,garage")
	values.Set("page", "2")
	values.Set("pageSize", "25")

	q := ParsePropertyListQuery(values)

	// Enum-ish params are uppercased, free-text ones are not
	assert.Equal(t, []string{"SALE", "RENT"}, q.ListingTypes)
	assert.Equal(t, []string{"house", "apartment"}, q.Types)
	assert.Equal(t, 100000.0, *q.MinPrice)
	assert.Equal(t, 250000.50, *q.MaxPrice)
	assert.Equal(t, "Santo Domingo", q.Location)
	assert.Equal(t, 3, *q.Bedrooms)
	assert.Equal(t, 2.5, *q.Bathrooms)
	assert.Equal(t, 80.0, *q.AreaMin)
	assert.Equal(t, 300.0, *q.AreaMax)
	assert.Equal(t, []string{"pool", "garage"}, q.Amenities)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.PageSize)
}

func TestParsePropertyListQuery_Empty(t *testing.T) {
	q := ParsePropertyListQuery(url.Values{})

	assert.Nil(t, q.ListingTypes)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.Bedrooms)
	assert.Empty(t, q.Location)
	assert.Zero(t, q.Page)
	assert.Zero(t, q.PageSize)
}

func TestParsePropertyListQuery_MalformedNumbersIgnored(t *testing.T) {
	values := url.Values{}
	values.Set("minPrice", "cheap")
	values.Set("bedrooms", "three")
	values.Set("page", "first")

	q := ParsePropertyListQuery(values)

	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.Bedrooms)
	assert.Zero(t, q.Page)
}

func TestParsePropertyListQuery_StatusesUppercased(t *testing.T) {
	values := url.Values{}
	values.Set("moderationStatus", "pending, rejected")

	q := ParsePropertyListQuery(values)

	assert.Equal(t, []string{"PENDING", "REJECTED"}, q.Statuses)
}

func TestSplitParam_DropsEmptySegments(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitParam("a,,b,", false))
	assert.Nil(t, splitParam("", false))
	assert.Nil(t, splitParam(",,", true))
}
