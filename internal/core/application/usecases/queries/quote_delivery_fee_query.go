package queries

import (
	"errors"
	"strings"

	"banda/internal/core/domain/services"
	"banda/internal/pkg/errs"
	"banda/internal/pkg/guard"
)

var (
	ErrQuoteDeliveryFeeQueryIsNotConstructed = errors.New(
		"QuoteDeliveryFeeQuery must be created via NewQuoteDeliveryFeeQuery constructor",
	)
	ErrProviderIDIsRequired   = errors.New("providerId is required")
	ErrDeliveryAreaIsRequired = errors.New("deliveryArea is required")
)

// QuoteDeliveryFeeQuery requests a delivery fee quote for a matched provider.
// The delivery area resolves to a zone for the free-delivery threshold check.
type QuoteDeliveryFeeQuery struct {
	providerID   string
	distanceKm   float64
	orderValue   float64
	deliveryArea string

	guard guard.ConstructorGuard
}

// NewQuoteDeliveryFeeQuery creates a fee quote query.
// Distance and order value must be non-negative.
func NewQuoteDeliveryFeeQuery(
	providerID string,
	distanceKm float64,
	orderValue float64,
	deliveryArea string,
) (QuoteDeliveryFeeQuery, error) {
	if strings.TrimSpace(providerID) == "" {
		return QuoteDeliveryFeeQuery{}, ErrProviderIDIsRequired
	}
	if strings.TrimSpace(deliveryArea) == "" {
		return QuoteDeliveryFeeQuery{}, ErrDeliveryAreaIsRequired
	}
	if distanceKm < 0 {
		return QuoteDeliveryFeeQuery{}, errs.NewValueIsInvalidError("distanceKm")
	}
	if orderValue < 0 {
		return QuoteDeliveryFeeQuery{}, errs.NewValueIsInvalidError("orderValue")
	}

	return QuoteDeliveryFeeQuery{
		providerID:   providerID,
		distanceKm:   distanceKm,
		orderValue:   orderValue,
		deliveryArea: deliveryArea,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrQuoteDeliveryFeeQueryIsNotConstructed if validation fails.
func (q QuoteDeliveryFeeQuery) Validate() error {
	return q.guard.Validate(ErrQuoteDeliveryFeeQueryIsNotConstructed)
}

// ProviderID returns the matched provider's identifier.
func (q QuoteDeliveryFeeQuery) ProviderID() string {
	return q.providerID
}

// DistanceKm returns the trip distance.
func (q QuoteDeliveryFeeQuery) DistanceKm() float64 {
	return q.distanceKm
}

// OrderValue returns the order value in KSh.
func (q QuoteDeliveryFeeQuery) OrderValue() float64 {
	return q.orderValue
}

// DeliveryArea returns the buyer's free-text delivery area.
func (q QuoteDeliveryFeeQuery) DeliveryArea() string {
	return q.deliveryArea
}

// QuoteDeliveryFeeQueryResponse is the fee quote read model.
type QuoteDeliveryFeeQueryResponse struct {
	Breakdown services.FeeBreakdown `json:"breakdown"`
	ZoneName  string                `json:"zoneName"`
}
