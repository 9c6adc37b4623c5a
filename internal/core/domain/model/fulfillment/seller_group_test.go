package fulfillment_test

import (
	"testing"

	"banda/internal/core/domain/model/fulfillment"
	"banda/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidGroup(t *testing.T) *fulfillment.SellerFulfillmentGroup {
	t.Helper()
	group, err := fulfillment.NewSellerFulfillmentGroup(
		"seller-17", "Wambui Fresh Produce", "Nakuru", nil, 12.5, 1840,
		[]fulfillment.Item{
			{ProductID: "prod-1", Name: "Sukuma Wiki", Category: "vegetables", Quantity: 4},
		},
	)
	require.NoError(t, err)
	require.NotNil(t, group)
	return group
}

func createValidGeoPoint(t *testing.T, lat, lng float64) *kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return &point
}

func TestNewSellerFulfillmentGroup(t *testing.T) {
	t.Run("should create group with valid parameters", func(t *testing.T) {
		coordinates := createValidGeoPoint(t, -0.3031, 36.0800)
		items := []fulfillment.Item{
			{ProductID: "prod-1", Name: "Sukuma Wiki", Category: "vegetables", Quantity: 4},
			{ProductID: "prod-2", Name: "Maize Flour", Category: "grains", Quantity: 2},
		}

		group, err := fulfillment.NewSellerFulfillmentGroup(
			"seller-17", "Wambui Fresh Produce", "Nakuru", coordinates, 12.5, 1840, items)

		require.NoError(t, err)
		require.NotNil(t, group)
		require.NoError(t, group.Validate())
		assert.Equal(t, "seller-17", group.SellerID())
		assert.Equal(t, "Wambui Fresh Produce", group.SellerName())
		assert.Equal(t, "Nakuru", group.SellerLocation())
		assert.Equal(t, coordinates, group.Coordinates())
		assert.InDelta(t, 12.5, group.TotalWeight(), 0.001)
		assert.InDelta(t, 1840.0, group.Subtotal(), 0.001)
		assert.Equal(t, items, group.Items())
	})

	t.Run("should allow nil coordinates", func(t *testing.T) {
		group, err := fulfillment.NewSellerFulfillmentGroup(
			"seller-17", "Wambui Fresh Produce", "Nakuru", nil, 12.5, 1840, nil)

		require.NoError(t, err)
		assert.Nil(t, group.Coordinates())
	})

	t.Run("should return error for empty seller ID", func(t *testing.T) {
		group, err := fulfillment.NewSellerFulfillmentGroup(
			"  ", "Wambui Fresh Produce", "Nakuru", nil, 12.5, 1840, nil)

		require.Error(t, err)
		assert.Nil(t, group)
		assert.ErrorIs(t, err, fulfillment.ErrSellerIDIsRequired)
	})

	t.Run("should return error for empty location", func(t *testing.T) {
		group, err := fulfillment.NewSellerFulfillmentGroup(
			"seller-17", "Wambui Fresh Produce", "", nil, 12.5, 1840, nil)

		require.Error(t, err)
		assert.Nil(t, group)
		assert.ErrorIs(t, err, fulfillment.ErrSellerLocationIsRequired)
	})

	t.Run("should return error for negative weight", func(t *testing.T) {
		group, err := fulfillment.NewSellerFulfillmentGroup(
			"seller-17", "Wambui Fresh Produce", "Nakuru", nil, -1, 1840, nil)

		require.Error(t, err)
		assert.Nil(t, group)
		assert.Contains(t, err.Error(), "totalWeight")
	})

	t.Run("should return error for negative subtotal", func(t *testing.T) {
		group, err := fulfillment.NewSellerFulfillmentGroup(
			"seller-17", "Wambui Fresh Produce", "Nakuru", nil, 12.5, -1, nil)

		require.Error(t, err)
		assert.Nil(t, group)
		assert.Contains(t, err.Error(), "subtotal")
	})

	t.Run("should reject unconstructed coordinates", func(t *testing.T) {
		group, err := fulfillment.NewSellerFulfillmentGroup(
			"seller-17", "Wambui Fresh Produce", "Nakuru", &kernel.GeoPoint{}, 12.5, 1840, nil)

		require.Error(t, err)
		assert.Nil(t, group)
	})
}

func TestSellerFulfillmentGroup_NormalizedLocation(t *testing.T) {
	testCases := []struct {
		location string
		expected string
	}{
		{"Nakuru", "nakuru"},
		{"  Nakuru  ", "nakuru"},
		{"NAKURU", "nakuru"},
		{"Eldoret Town", "eldoret town"},
	}

	for _, tc := range testCases {
		t.Run(tc.location, func(t *testing.T) {
			group, err := fulfillment.NewSellerFulfillmentGroup(
				"seller-17", "Wambui Fresh Produce", tc.location, nil, 12.5, 1840, nil)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, group.NormalizedLocation())
		})
	}
}

func TestSellerFulfillmentGroup_Validate(t *testing.T) {
	t.Run("should reject nil group", func(t *testing.T) {
		var group *fulfillment.SellerFulfillmentGroup

		err := group.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, fulfillment.ErrSellerGroupIsNotConstructed)
	})

	t.Run("should reject zero value group", func(t *testing.T) {
		group := &fulfillment.SellerFulfillmentGroup{}

		err := group.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, fulfillment.ErrSellerGroupIsNotConstructed)
	})

	t.Run("should accept constructed group", func(t *testing.T) {
		group := createValidGroup(t)

		require.NoError(t, group.Validate())
	})
}
