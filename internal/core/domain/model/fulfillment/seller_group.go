package fulfillment

import (
	"errors"
	"strings"

	"banda/internal/core/domain/model/kernel"
	"banda/internal/pkg/errs"
	"banda/internal/pkg/guard"
)

// Domain errors for seller fulfillment groups.
var (
	// ErrSellerIDIsRequired is returned when creating a group without a seller identifier.
	ErrSellerIDIsRequired = errs.NewValueIsRequiredError("sellerID")
	// ErrSellerLocationIsRequired is returned when creating a group without a pickup location label.
	ErrSellerLocationIsRequired = errs.NewValueIsRequiredError("sellerLocation")
	// ErrSellerGroupIsNotConstructed is returned when using an improperly initialized group.
	ErrSellerGroupIsNotConstructed = errors.New(
		"SellerFulfillmentGroup must be created via NewSellerFulfillmentGroup constructor")
)

// Item is a single order line inside a seller's fulfillment group.
type Item struct {
	ProductID string
	Name      string
	Category  string
	Quantity  int
}

// SellerFulfillmentGroup represents one seller's share of a checkout order:
// the items the seller fulfills, their combined weight and subtotal, and the
// seller's pickup location. Groups are ephemeral - built fresh per checkout
// request and never persisted.
//
// Business rules:
//   - Seller ID and location label are required
//   - Total weight and subtotal must be non-negative
//   - Pickup coordinates are optional (free-text locations may lack geocoding)
//
// Example:
//
//	group, err := fulfillment.NewSellerFulfillmentGroup(
//	    "seller-17", "Wambui Fresh Produce", "Nakuru", nil, 12.5, 1840, items)
//	if err != nil {
//	    // Handle validation error
//	}
type SellerFulfillmentGroup struct {
	sellerID       string
	sellerName     string
	sellerLocation string
	coordinates    *kernel.GeoPoint
	totalWeight    float64
	subtotal       float64
	items          []Item
	guard          guard.ConstructorGuard
}

// NewSellerFulfillmentGroup creates a validated seller fulfillment group.
// coordinates may be nil when the seller's free-text location has no geocoding.
func NewSellerFulfillmentGroup(
	sellerID string,
	sellerName string,
	sellerLocation string,
	coordinates *kernel.GeoPoint,
	totalWeight float64,
	subtotal float64,
	items []Item,
) (*SellerFulfillmentGroup, error) {
	group := &SellerFulfillmentGroup{
		sellerName: sellerName,
		items:      items,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		group.setSellerID(sellerID),
		group.setSellerLocation(sellerLocation),
		group.setCoordinates(coordinates),
		group.setTotalWeight(totalWeight),
		group.setSubtotal(subtotal),
	); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate ensures the group was created via NewSellerFulfillmentGroup.
func (g *SellerFulfillmentGroup) Validate() error {
	if g == nil {
		return ErrSellerGroupIsNotConstructed
	}
	return g.guard.Validate(ErrSellerGroupIsNotConstructed)
}

// SellerID returns the seller's unique identifier.
func (g *SellerFulfillmentGroup) SellerID() string {
	return g.sellerID
}

// SellerName returns the seller's display name.
func (g *SellerFulfillmentGroup) SellerName() string {
	return g.sellerName
}

// SellerLocation returns the seller's free-text pickup location label.
func (g *SellerFulfillmentGroup) SellerLocation() string {
	return g.sellerLocation
}

// NormalizedLocation returns the location label lower-cased and trimmed.
// Two sellers are poolable only when their normalized labels match exactly.
func (g *SellerFulfillmentGroup) NormalizedLocation() string {
	return strings.ToLower(strings.TrimSpace(g.sellerLocation))
}

// Coordinates returns the seller's pickup coordinates, or nil when unknown.
func (g *SellerFulfillmentGroup) Coordinates() *kernel.GeoPoint {
	return g.coordinates
}

// TotalWeight returns the combined weight of the group's items in kilograms.
func (g *SellerFulfillmentGroup) TotalWeight() float64 {
	return g.totalWeight
}

// Subtotal returns the group's order subtotal in KSh.
func (g *SellerFulfillmentGroup) Subtotal() float64 {
	return g.subtotal
}

// Items returns the order lines fulfilled by this seller.
func (g *SellerFulfillmentGroup) Items() []Item {
	return g.items
}

func (g *SellerFulfillmentGroup) setSellerID(sellerID string) error {
	if strings.TrimSpace(sellerID) == "" {
		return ErrSellerIDIsRequired
	}

	g.sellerID = sellerID
	return nil
}

func (g *SellerFulfillmentGroup) setSellerLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return ErrSellerLocationIsRequired
	}

	g.sellerLocation = location
	return nil
}

func (g *SellerFulfillmentGroup) setCoordinates(coordinates *kernel.GeoPoint) error {
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return err
		}
	}

	g.coordinates = coordinates
	return nil
}

func (g *SellerFulfillmentGroup) setTotalWeight(totalWeight float64) error {
	if totalWeight < 0 {
		return errs.NewValueIsInvalidError("totalWeight")
	}

	g.totalWeight = totalWeight
	return nil
}

func (g *SellerFulfillmentGroup) setSubtotal(subtotal float64) error {
	if subtotal < 0 {
		return errs.NewValueIsInvalidError("subtotal")
	}

	g.subtotal = subtotal
	return nil
}
