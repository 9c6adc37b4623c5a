package kernel_test

import (
	"testing"

	"banda/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create a valid geo point", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(-0.3031, 36.0800)

		require.NoError(t, err)
		assert.NoError(t, p.Validate())
		assert.InDelta(t, -0.3031, p.Lat(), 1e-9)
		assert.InDelta(t, 36.0800, p.Lng(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(kernel.MinLatitude, kernel.MinLongitude)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(kernel.MaxLatitude, kernel.MaxLongitude)
		require.NoError(t, err)
	})

	t.Run("should reject out of range latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 36.0800)
		require.Error(t, err)
	})

	t.Run("should reject out of range longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(-0.3031, 181)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint
		require.Error(t, p.Validate())
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("returns zero for identical points", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(-1.2921, 36.8219)
		require.NoError(t, err)

		assert.InDelta(t, 0, p.DistanceKm(p), 1e-9)
	})

	t.Run("is symmetric", func(t *testing.T) {
		nairobi, err := kernel.NewGeoPoint(-1.2921, 36.8219)
		require.NoError(t, err)
		nakuru, err := kernel.NewGeoPoint(-0.3031, 36.0800)
		require.NoError(t, err)

		assert.InDelta(t, nairobi.DistanceKm(nakuru), nakuru.DistanceKm(nairobi), 1e-9)
	})

	t.Run("matches known great-circle distances", func(t *testing.T) {
		nairobi, err := kernel.NewGeoPoint(-1.2921, 36.8219)
		require.NoError(t, err)
		nakuru, err := kernel.NewGeoPoint(-0.3031, 36.0800)
		require.NoError(t, err)

		assert.InDelta(t, 137.47, nairobi.DistanceKm(nakuru), 0.1)

		equatorA, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		equatorB, err := kernel.NewGeoPoint(0, 1)
		require.NoError(t, err)

		// One degree of longitude at the equator.
		assert.InDelta(t, 111.19, equatorA.DistanceKm(equatorB), 0.1)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal points", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(-0.3031, 36.0800)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(-0.3031, 36.0800)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different points", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(-0.3031, 36.0800)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(-1.2921, 36.8219)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(-0.3031, 36.0800)
		require.NoError(t, err)

		var b kernel.GeoPoint
		_, err = a.IsEqual(b)
		require.Error(t, err)
	})
}
