package provider_test

import (
	"fmt"
	"testing"

	"banda/internal/core/domain/model/provider"
	"banda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleType_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(provider.VehicleTypeUnknown))
		assert.Equal(t, 1, int(provider.VehicleTypeBoda))
		assert.Equal(t, 2, int(provider.VehicleTypeVan))
		assert.Equal(t, 3, int(provider.VehicleTypeTruck))
		assert.Equal(t, 4, int(provider.VehicleTypeTractor))
		assert.Equal(t, 5, int(provider.VehicleTypePickup))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		types := []provider.VehicleType{
			provider.VehicleTypeUnknown,
			provider.VehicleTypeBoda,
			provider.VehicleTypeVan,
			provider.VehicleTypeTruck,
			provider.VehicleTypeTractor,
			provider.VehicleTypePickup,
		}

		for i, type1 := range types {
			for j, type2 := range types {
				if i != j {
					assert.NotEqual(t, type1, type2,
						"vehicle types at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestVehicleTypeFromString(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected provider.VehicleType
		}{
			{"boda", provider.VehicleTypeBoda},
			{"van", provider.VehicleTypeVan},
			{"truck", provider.VehicleTypeTruck},
			{"tractor", provider.VehicleTypeTractor},
			{"pickup", provider.VehicleTypePickup},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %s", tc.name), func(t *testing.T) {
				result, err := provider.VehicleTypeFromString(tc.name)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			})
		}
	})

	t.Run("should reject invalid wire names", func(t *testing.T) {
		invalidNames := []string{"", "bicycle", "BODA", "lorry"}

		for _, name := range invalidNames {
			t.Run(fmt.Sprintf("should reject %q", name), func(t *testing.T) {
				result, err := provider.VehicleTypeFromString(name)

				require.Error(t, err)
				assert.Equal(t, provider.VehicleTypeUnknown, result)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "vehicleType")
				assert.Contains(t, err.Error(), fmt.Sprintf("%q is not a valid vehicle type", name))
			})
		}
	})
}

func TestVehicleType_Validate(t *testing.T) {
	t.Run("should validate valid vehicle types", func(t *testing.T) {
		validTypes := []provider.VehicleType{
			provider.VehicleTypeBoda,
			provider.VehicleTypeVan,
			provider.VehicleTypeTruck,
			provider.VehicleTypeTractor,
			provider.VehicleTypePickup,
		}

		for _, vt := range validTypes {
			t.Run(fmt.Sprintf("should validate %s", vt.String()), func(t *testing.T) {
				err := vt.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject invalid vehicle type values", func(t *testing.T) {
		invalidTypes := []provider.VehicleType{
			provider.VehicleTypeUnknown,
			provider.VehicleType(-1),
			provider.VehicleType(6),
			provider.VehicleType(100),
		}

		for _, vt := range invalidTypes {
			t.Run(fmt.Sprintf("should reject vehicle type value %d", int(vt)), func(t *testing.T) {
				err := vt.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "vehicleType")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid vehicle type", int(vt)))
			})
		}
	})
}

func TestVehicleType_String(t *testing.T) {
	t.Run("should return wire names for valid vehicle types", func(t *testing.T) {
		testCases := []struct {
			vehicleType provider.VehicleType
			expected    string
		}{
			{provider.VehicleTypeBoda, "boda"},
			{provider.VehicleTypeVan, "van"},
			{provider.VehicleTypeTruck, "truck"},
			{provider.VehicleTypeTractor, "tractor"},
			{provider.VehicleTypePickup, "pickup"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.vehicleType)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.vehicleType.String())
			})
		}
	})

	t.Run("should return unknown for invalid vehicle types", func(t *testing.T) {
		invalidTypes := []provider.VehicleType{
			provider.VehicleTypeUnknown,
			provider.VehicleType(-1),
			provider.VehicleType(6),
		}

		for _, vt := range invalidTypes {
			assert.Equal(t, "unknown", vt.String())
		}
	})
}

func TestVehicleType_AverageSpeedKmh(t *testing.T) {
	testCases := []struct {
		vehicleType provider.VehicleType
		expected    float64
	}{
		{provider.VehicleTypeBoda, 35},
		{provider.VehicleTypeVan, 40},
		{provider.VehicleTypeTruck, 35},
		{provider.VehicleTypePickup, 40},
		{provider.VehicleTypeTractor, 30},
		{provider.VehicleTypeUnknown, 30},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should plan %s at %.0f kmh", tc.vehicleType.String(), tc.expected), func(t *testing.T) {
			assert.InDelta(t, tc.expected, tc.vehicleType.AverageSpeedKmh(), 0.001)
		})
	}
}

func TestVehicleType_IsExpressCapable(t *testing.T) {
	t.Run("should mark boda and van as express capable", func(t *testing.T) {
		assert.True(t, provider.VehicleTypeBoda.IsExpressCapable())
		assert.True(t, provider.VehicleTypeVan.IsExpressCapable())
	})

	t.Run("should mark heavy vehicles as not express capable", func(t *testing.T) {
		assert.False(t, provider.VehicleTypeTruck.IsExpressCapable())
		assert.False(t, provider.VehicleTypeTractor.IsExpressCapable())
		assert.False(t, provider.VehicleTypePickup.IsExpressCapable())
		assert.False(t, provider.VehicleTypeUnknown.IsExpressCapable())
	})
}
