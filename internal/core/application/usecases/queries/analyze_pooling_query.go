// Package queries contains read operations of the delivery core.
// Implements the Query pattern for read operations in the CQRS architecture.
// Checkout computation queries (pooling, matching, fees, scheduling) run
// entirely in memory over catalogue snapshots; catalogue listing queries read
// the database directly for optimized read models.
package queries

import (
	"errors"

	"banda/internal/core/domain/model/fulfillment"
	"banda/internal/pkg/guard"
)

var ErrAnalyzePoolingQueryIsNotConstructed = errors.New(
	"AnalyzePoolingQuery must be created via NewAnalyzePoolingQuery constructor",
)

// AnalyzePoolingQuery requests the pooled-vs-separate delivery analysis for a
// multi-seller checkout order.
//
// Example:
//
//	query, err := NewAnalyzePoolingQuery(groups, buyer, fulfillment.PaymentMethodMpesa)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout order: %w", err)
//	}
//
//	handler := NewAnalyzePoolingQueryHandler(services.NewPoolingAnalyzer())
//	analysis, err := handler.Handle(ctx, query)
type AnalyzePoolingQuery struct {
	groups        []*fulfillment.SellerFulfillmentGroup
	buyer         fulfillment.BuyerLocation
	paymentMethod fulfillment.PaymentMethod

	guard guard.ConstructorGuard
}

// NewAnalyzePoolingQuery creates a pooling analysis query.
// Validates the buyer location, the payment method, and every seller group.
func NewAnalyzePoolingQuery(
	groups []*fulfillment.SellerFulfillmentGroup,
	buyer fulfillment.BuyerLocation,
	paymentMethod fulfillment.PaymentMethod,
) (AnalyzePoolingQuery, error) {
	if err := buyer.Validate(); err != nil {
		return AnalyzePoolingQuery{}, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return AnalyzePoolingQuery{}, err
	}
	for _, group := range groups {
		if err := group.Validate(); err != nil {
			return AnalyzePoolingQuery{}, err
		}
	}

	return AnalyzePoolingQuery{
		groups:        groups,
		buyer:         buyer,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAnalyzePoolingQueryIsNotConstructed if validation fails.
func (q AnalyzePoolingQuery) Validate() error {
	return q.guard.Validate(ErrAnalyzePoolingQueryIsNotConstructed)
}

// Groups returns the order's seller fulfillment groups in checkout order.
func (q AnalyzePoolingQuery) Groups() []*fulfillment.SellerFulfillmentGroup {
	return q.groups
}

// Buyer returns the delivery destination.
func (q AnalyzePoolingQuery) Buyer() fulfillment.BuyerLocation {
	return q.buyer
}

// PaymentMethod returns the payment method selected at checkout.
func (q AnalyzePoolingQuery) PaymentMethod() fulfillment.PaymentMethod {
	return q.paymentMethod
}
