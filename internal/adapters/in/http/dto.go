package http

import (
	"banda/internal/core/domain/model/fulfillment"
	"banda/internal/core/domain/model/kernel"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GeoPointDTO carries optional coordinates on the wire.
type GeoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (d *GeoPointDTO) toDomain() (*kernel.GeoPoint, error) {
	if d == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(d.Lat, d.Lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// OrderItemDTO is one order line inside a seller group.
type OrderItemDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
}

// SellerGroupDTO is one seller's share of the checkout order.
type SellerGroupDTO struct {
	SellerID       string         `json:"sellerId"`
	SellerName     string         `json:"sellerName"`
	SellerLocation string         `json:"sellerLocation"`
	Coordinates    *GeoPointDTO   `json:"coordinates,omitempty"`
	TotalWeightKg  float64        `json:"totalWeightKg"`
	Subtotal       float64        `json:"subtotal"`
	Items          []OrderItemDTO `json:"items,omitempty"`
}

func (d SellerGroupDTO) toDomain() (*fulfillment.SellerFulfillmentGroup, error) {
	coordinates, err := d.Coordinates.toDomain()
	if err != nil {
		return nil, err
	}

	items := make([]fulfillment.Item, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, fulfillment.Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Category:  item.Category,
			Quantity:  item.Quantity,
		})
	}

	return fulfillment.NewSellerFulfillmentGroup(
		d.SellerID, d.SellerName, d.SellerLocation,
		coordinates, d.TotalWeightKg, d.Subtotal, items,
	)
}

// BuyerDTO is the delivery destination of the checkout order.
type BuyerDTO struct {
	City        string       `json:"city"`
	Coordinates *GeoPointDTO `json:"coordinates,omitempty"`
}

func (d BuyerDTO) toDomain() (fulfillment.BuyerLocation, error) {
	coordinates, err := d.Coordinates.toDomain()
	if err != nil {
		return fulfillment.BuyerLocation{}, err
	}

	return fulfillment.NewBuyerLocation(d.City, coordinates)
}

// AnalyzePoolingRequest is the body of POST /api/v1/checkout/pooling.
type AnalyzePoolingRequest struct {
	SellerGroups  []SellerGroupDTO `json:"sellerGroups"`
	Buyer         BuyerDTO         `json:"buyer"`
	PaymentMethod string           `json:"paymentMethod"`
}

// RecommendProviderRequest is the body of POST /api/v1/delivery/provider.
type RecommendProviderRequest struct {
	OrderWeightKg     float64  `json:"orderWeightKg"`
	DistanceKm        float64  `json:"distanceKm"`
	ProductCategories []string `json:"productCategories,omitempty"`
	Urgency           string   `json:"urgency"`
}

// QuoteDeliveryFeeRequest is the body of POST /api/v1/delivery/fee.
type QuoteDeliveryFeeRequest struct {
	ProviderID   string  `json:"providerId"`
	DistanceKm   float64 `json:"distanceKm"`
	OrderValue   float64 `json:"orderValue"`
	DeliveryArea string  `json:"deliveryArea"`
}

// ValidateSlotRequest is the body of POST /api/v1/delivery/slots/validate.
type ValidateSlotRequest struct {
	Start string `json:"start"`
}

// CreateProviderRequest is the body of POST /api/v1/providers.
type CreateProviderRequest struct {
	Name             string   `json:"name"`
	VehicleType      string   `json:"vehicleType"`
	BaseCost         float64  `json:"baseCost"`
	CostPerKm        float64  `json:"costPerKm"`
	Rating           float64  `json:"rating"`
	MaxWeightKg      float64  `json:"maxWeightKg"`
	MaxDistanceKm    float64  `json:"maxDistanceKm"`
	Specialties      []string `json:"specialties,omitempty"`
	BandaRecommended bool     `json:"bandaRecommended"`
	ServiceAreas     []string `json:"serviceAreas,omitempty"`
	OperatingHours   string   `json:"operatingHours"`
}

// CreateProviderResponse returns the generated provider identifier.
type CreateProviderResponse struct {
	ID string `json:"id"`
}

// SetAvailabilityRequest is the body of PATCH /api/v1/providers/:id/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// CreateZoneRequest is the body of POST /api/v1/zones.
type CreateZoneRequest struct {
	Name                  string   `json:"name"`
	Areas                 []string `json:"areas,omitempty"`
	BaseDeliveryFee       float64  `json:"baseDeliveryFee"`
	FreeDeliveryThreshold float64  `json:"freeDeliveryThreshold"`
}
