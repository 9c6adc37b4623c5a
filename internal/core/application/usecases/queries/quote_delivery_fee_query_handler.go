package queries

import (
	"context"

	"banda/internal/core/domain/services"
	"banda/internal/core/ports"
	"banda/internal/pkg/errs"
)

// QuoteDeliveryFeeQueryHandler computes the delivery fee breakdown for a
// matched provider, resolving the buyer's area to its pricing zone from the
// in-memory catalogue snapshots.
type QuoteDeliveryFeeQueryHandler struct {
	providers  ports.ProviderCatalog
	zones      ports.ZoneCatalog
	calculator services.FeeCalculator
}

// NewQuoteDeliveryFeeQueryHandler creates a handler for fee quote queries.
func NewQuoteDeliveryFeeQueryHandler(
	providers ports.ProviderCatalog,
	zones ports.ZoneCatalog,
	calculator services.FeeCalculator,
) QuoteDeliveryFeeQueryHandler {
	return QuoteDeliveryFeeQueryHandler{
		providers:  providers,
		zones:      zones,
		calculator: calculator,
	}
}

// Handle executes the fee quote.
// Returns errs.ErrObjectNotFound (wrapped) when the provider or the delivery
// area's zone is not in the catalogue.
func (h QuoteDeliveryFeeQueryHandler) Handle(
	_ context.Context,
	query QuoteDeliveryFeeQuery,
) (QuoteDeliveryFeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteDeliveryFeeQueryResponse{}, err
	}

	matched, ok := h.providers.ProviderByID(query.ProviderID())
	if !ok {
		return QuoteDeliveryFeeQueryResponse{},
			errs.NewObjectNotFoundError("providerId", query.ProviderID())
	}

	deliveryZone, ok := h.zones.ZoneForArea(query.DeliveryArea())
	if !ok {
		return QuoteDeliveryFeeQueryResponse{},
			errs.NewObjectNotFoundError("deliveryArea", query.DeliveryArea())
	}

	breakdown, err := h.calculator.ComputeFee(
		matched, query.DistanceKm(), query.OrderValue(), deliveryZone)
	if err != nil {
		return QuoteDeliveryFeeQueryResponse{}, err
	}

	return QuoteDeliveryFeeQueryResponse{
		Breakdown: breakdown,
		ZoneName:  deliveryZone.Name(),
	}, nil
}
