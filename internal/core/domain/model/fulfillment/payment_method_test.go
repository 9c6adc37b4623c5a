package fulfillment_test

import (
	"fmt"
	"testing"

	"banda/internal/core/domain/model/fulfillment"
	"banda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(fulfillment.PaymentMethodUnknown))
		assert.Equal(t, 1, int(fulfillment.PaymentMethodAgriPay))
		assert.Equal(t, 2, int(fulfillment.PaymentMethodMpesa))
		assert.Equal(t, 3, int(fulfillment.PaymentMethodCard))
		assert.Equal(t, 4, int(fulfillment.PaymentMethodCOD))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		methods := []fulfillment.PaymentMethod{
			fulfillment.PaymentMethodUnknown,
			fulfillment.PaymentMethodAgriPay,
			fulfillment.PaymentMethodMpesa,
			fulfillment.PaymentMethodCard,
			fulfillment.PaymentMethodCOD,
		}

		for i, method1 := range methods {
			for j, method2 := range methods {
				if i != j {
					assert.NotEqual(t, method1, method2,
						"methods at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected fulfillment.PaymentMethod
		}{
			{"agripay", fulfillment.PaymentMethodAgriPay},
			{"mpesa", fulfillment.PaymentMethodMpesa},
			{"card", fulfillment.PaymentMethodCard},
			{"cod", fulfillment.PaymentMethodCOD},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %s", tc.name), func(t *testing.T) {
				result, err := fulfillment.PaymentMethodFromString(tc.name)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			})
		}
	})

	t.Run("should reject invalid wire names", func(t *testing.T) {
		invalidNames := []string{"", "cash", "MPESA", "m-pesa"}

		for _, name := range invalidNames {
			t.Run(fmt.Sprintf("should reject %q", name), func(t *testing.T) {
				result, err := fulfillment.PaymentMethodFromString(name)

				require.Error(t, err)
				assert.Equal(t, fulfillment.PaymentMethodUnknown, result)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "paymentMethod")
				assert.Contains(t, err.Error(), fmt.Sprintf("%q is not a valid payment method", name))
			})
		}
	})
}

func TestPaymentMethod_Validate(t *testing.T) {
	t.Run("should validate valid payment methods", func(t *testing.T) {
		validMethods := []fulfillment.PaymentMethod{
			fulfillment.PaymentMethodAgriPay,
			fulfillment.PaymentMethodMpesa,
			fulfillment.PaymentMethodCard,
			fulfillment.PaymentMethodCOD,
		}

		for _, method := range validMethods {
			t.Run(fmt.Sprintf("should validate %s", method.String()), func(t *testing.T) {
				err := method.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject invalid payment method values", func(t *testing.T) {
		invalidMethods := []fulfillment.PaymentMethod{
			fulfillment.PaymentMethodUnknown,
			fulfillment.PaymentMethod(-1),
			fulfillment.PaymentMethod(5),
		}

		for _, method := range invalidMethods {
			t.Run(fmt.Sprintf("should reject payment method value %d", int(method)), func(t *testing.T) {
				err := method.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid payment method", int(method)))
			})
		}
	})
}

func TestPaymentMethod_String(t *testing.T) {
	testCases := []struct {
		method   fulfillment.PaymentMethod
		expected string
	}{
		{fulfillment.PaymentMethodAgriPay, "agripay"},
		{fulfillment.PaymentMethodMpesa, "mpesa"},
		{fulfillment.PaymentMethodCard, "card"},
		{fulfillment.PaymentMethodCOD, "cod"},
		{fulfillment.PaymentMethodUnknown, "unknown"},
		{fulfillment.PaymentMethod(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.method)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.method.String())
		})
	}
}

func TestPaymentMethod_IsCOD(t *testing.T) {
	assert.True(t, fulfillment.PaymentMethodCOD.IsCOD())
	assert.False(t, fulfillment.PaymentMethodAgriPay.IsCOD())
	assert.False(t, fulfillment.PaymentMethodMpesa.IsCOD())
	assert.False(t, fulfillment.PaymentMethodCard.IsCOD())
	assert.False(t, fulfillment.PaymentMethodUnknown.IsCOD())
}
