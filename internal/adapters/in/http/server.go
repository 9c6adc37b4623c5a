// Package http provides the echo-based HTTP API of the delivery service.
// Handlers translate wire DTOs into commands and queries and map domain
// outcomes back to HTTP status codes. Computation failures that the domain
// models as data (no pooling opportunity, no matching provider, an invalid
// slot verdict) are returned as 200 responses carrying that data.
package http

import (
	"errors"
	"net/http"
	"time"

	"banda/internal/core/application/usecases/commands"
	"banda/internal/core/application/usecases/queries"
	"banda/internal/core/domain/model/fulfillment"
	"banda/internal/core/domain/model/kernel"
	"banda/internal/core/domain/model/provider"
	"banda/internal/core/domain/model/schedule"
	"banda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP API to the application use cases.
type Server struct {
	// Command handlers
	createProviderHandler  commands.CreateProviderCommandHandler
	setAvailabilityHandler commands.SetProviderAvailabilityCommandHandler
	createZoneHandler      commands.CreateZoneCommandHandler

	// Query handlers
	analyzePoolingHandler    queries.AnalyzePoolingQueryHandler
	recommendProviderHandler queries.RecommendProviderQueryHandler
	quoteFeeHandler          queries.QuoteDeliveryFeeQueryHandler
	getTimeSlotsHandler      queries.GetTimeSlotsQueryHandler
	getDeliverySlotsHandler  queries.GetDeliverySlotsQueryHandler
	validateSlotHandler      queries.ValidateDeliverySlotQueryHandler
	getEstimateHandler       queries.GetDeliveryTimeEstimateQueryHandler
	getAllProvidersHandler   queries.GetAllProvidersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProviderHandler commands.CreateProviderCommandHandler,
	setAvailabilityHandler commands.SetProviderAvailabilityCommandHandler,
	createZoneHandler commands.CreateZoneCommandHandler,
	analyzePoolingHandler queries.AnalyzePoolingQueryHandler,
	recommendProviderHandler queries.RecommendProviderQueryHandler,
	quoteFeeHandler queries.QuoteDeliveryFeeQueryHandler,
	getTimeSlotsHandler queries.GetTimeSlotsQueryHandler,
	getDeliverySlotsHandler queries.GetDeliverySlotsQueryHandler,
	validateSlotHandler queries.ValidateDeliverySlotQueryHandler,
	getEstimateHandler queries.GetDeliveryTimeEstimateQueryHandler,
	getAllProvidersHandler queries.GetAllProvidersQueryHandler,
) *Server {
	return &Server{
		createProviderHandler:    createProviderHandler,
		setAvailabilityHandler:   setAvailabilityHandler,
		createZoneHandler:        createZoneHandler,
		analyzePoolingHandler:    analyzePoolingHandler,
		recommendProviderHandler: recommendProviderHandler,
		quoteFeeHandler:          quoteFeeHandler,
		getTimeSlotsHandler:      getTimeSlotsHandler,
		getDeliverySlotsHandler:  getDeliverySlotsHandler,
		validateSlotHandler:      validateSlotHandler,
		getEstimateHandler:       getEstimateHandler,
		getAllProvidersHandler:   getAllProvidersHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/checkout/pooling", s.AnalyzePooling)
	api.POST("/delivery/provider", s.RecommendProvider)
	api.POST("/delivery/fee", s.QuoteDeliveryFee)
	api.GET("/delivery/slots", s.GetDeliverySlots)
	api.GET("/delivery/slots/next", s.GetNextDeliverySlot)
	api.POST("/delivery/slots/validate", s.ValidateDeliverySlot)
	api.GET("/delivery/estimate", s.GetDeliveryTimeEstimate)
	api.GET("/providers", s.GetProviders)
	api.POST("/providers", s.CreateProvider)
	api.PATCH("/providers/:id/availability", s.SetProviderAvailability)
	api.POST("/zones", s.CreateZone)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AnalyzePooling handles POST /api/v1/checkout/pooling - computes the
// pooled-vs-separate delivery analysis for a multi-seller checkout order.
func (s *Server) AnalyzePooling(ctx echo.Context) error {
	var request AnalyzePoolingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	groups := make([]*fulfillment.SellerFulfillmentGroup, 0, len(request.SellerGroups))
	for _, dto := range request.SellerGroups {
		group, err := dto.toDomain()
		if err != nil {
			return badRequest(ctx, "Invalid seller group: "+err.Error())
		}
		groups = append(groups, group)
	}

	buyer, err := request.Buyer.toDomain()
	if err != nil {
		return badRequest(ctx, "Invalid buyer location: "+err.Error())
	}

	paymentMethod, err := fulfillment.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	query, err := queries.NewAnalyzePoolingQuery(groups, buyer, paymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid pooling request: "+err.Error())
	}

	analysis, err := s.analyzePoolingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to analyze pooling")
	}

	return ctx.JSON(http.StatusOK, analysis)
}

// RecommendProvider handles POST /api/v1/delivery/provider - picks the best
// transport provider for an order. A null provider in the response means no
// catalogued provider qualifies.
func (s *Server) RecommendProvider(ctx echo.Context) error {
	var request RecommendProviderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	urgency, err := fulfillment.UrgencyFromString(request.Urgency)
	if err != nil {
		return badRequest(ctx, "Invalid urgency: "+err.Error())
	}

	query, err := queries.NewRecommendProviderQuery(
		request.OrderWeightKg, request.DistanceKm, request.ProductCategories, urgency)
	if err != nil {
		return badRequest(ctx, "Invalid recommendation request: "+err.Error())
	}

	recommendation, err := s.recommendProviderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to recommend provider")
	}

	return ctx.JSON(http.StatusOK, recommendation)
}

// QuoteDeliveryFee handles POST /api/v1/delivery/fee - computes the delivery
// fee breakdown for a matched provider.
func (s *Server) QuoteDeliveryFee(ctx echo.Context) error {
	var request QuoteDeliveryFeeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewQuoteDeliveryFeeQuery(
		request.ProviderID, request.DistanceKm, request.OrderValue, request.DeliveryArea)
	if err != nil {
		return badRequest(ctx, "Invalid fee request: "+err.Error())
	}

	quote, err := s.quoteFeeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, err.Error())
		}
		return internalError(ctx, "Failed to quote delivery fee")
	}

	return ctx.JSON(http.StatusOK, quote)
}

// GetDeliverySlots handles GET /api/v1/delivery/slots.
// Without parameters it returns the bookable slots of the rolling scheduling
// window; with ?day=YYYY-MM-DD it returns the legacy day grid for that day.
func (s *Server) GetDeliverySlots(ctx echo.Context) error {
	if dayParam := ctx.QueryParam("day"); dayParam != "" {
		day, err := time.ParseInLocation("2006-01-02", dayParam, time.Local)
		if err != nil {
			return badRequest(ctx, "Invalid day, expected YYYY-MM-DD")
		}

		grid, err := s.getTimeSlotsHandler.Handle(
			ctx.Request().Context(), queries.NewGetTimeSlotsQuery(day))
		if err != nil {
			return internalError(ctx, "Failed to generate time slots")
		}
		return ctx.JSON(http.StatusOK, grid)
	}

	window, err := s.getDeliverySlotsHandler.Handle(
		ctx.Request().Context(), queries.NewGetDeliverySlotsQuery())
	if err != nil {
		return internalError(ctx, "Failed to generate delivery slots")
	}

	return ctx.JSON(http.StatusOK, window)
}

// GetNextDeliverySlot handles GET /api/v1/delivery/slots/next - returns the
// earliest bookable slot, or a null slot when the window has none.
func (s *Server) GetNextDeliverySlot(ctx echo.Context) error {
	window, err := s.getDeliverySlotsHandler.Handle(
		ctx.Request().Context(), queries.NewGetDeliverySlotsQuery())
	if err != nil {
		return internalError(ctx, "Failed to generate delivery slots")
	}

	return ctx.JSON(http.StatusOK, map[string]*schedule.DeliverySlot{
		"nextAvailable": window.NextAvailable,
	})
}

// ValidateDeliverySlot handles POST /api/v1/delivery/slots/validate.
// Every policy failure is a 200 verdict with a buyer-facing reason.
func (s *Server) ValidateDeliverySlot(ctx echo.Context) error {
	var request ValidateSlotRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	verdict, err := s.validateSlotHandler.Handle(
		ctx.Request().Context(), queries.NewValidateDeliverySlotQuery(request.Start))
	if err != nil {
		return internalError(ctx, "Failed to validate delivery slot")
	}

	return ctx.JSON(http.StatusOK, verdict)
}

// GetDeliveryTimeEstimate handles GET /api/v1/delivery/estimate - computes the
// expected delivery window for ?distanceKm and ?vehicleType.
func (s *Server) GetDeliveryTimeEstimate(ctx echo.Context) error {
	var params struct {
		DistanceKm  float64 `query:"distanceKm"`
		VehicleType string  `query:"vehicleType"`
	}
	if err := ctx.Bind(&params); err != nil {
		return badRequest(ctx, "Invalid query parameters")
	}

	vehicleType, err := provider.VehicleTypeFromString(params.VehicleType)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle type: "+err.Error())
	}

	query, err := queries.NewGetDeliveryTimeEstimateQuery(params.DistanceKm, vehicleType)
	if err != nil {
		return badRequest(ctx, "Invalid estimate request: "+err.Error())
	}

	estimate, err := s.getEstimateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to estimate delivery time")
	}

	return ctx.JSON(http.StatusOK, estimate)
}

// GetProviders handles GET /api/v1/providers - retrieves the full catalogue.
func (s *Server) GetProviders(ctx echo.Context) error {
	providers, err := s.getAllProvidersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllProvidersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve providers")
	}

	return ctx.JSON(http.StatusOK, providers)
}

// CreateProvider handles POST /api/v1/providers - adds a provider to the catalogue.
func (s *Server) CreateProvider(ctx echo.Context) error {
	var request CreateProviderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleType, err := provider.VehicleTypeFromString(request.VehicleType)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle type: "+err.Error())
	}

	cmd, err := commands.NewCreateProviderCommand(request.Name, vehicleType, commands.ProviderAttributes{
		BaseCost:         request.BaseCost,
		CostPerKm:        request.CostPerKm,
		Rating:           request.Rating,
		MaxWeightKg:      request.MaxWeightKg,
		MaxDistanceKm:    request.MaxDistanceKm,
		Specialties:      request.Specialties,
		BandaRecommended: request.BandaRecommended,
		ServiceAreas:     request.ServiceAreas,
		OperatingHours:   request.OperatingHours,
	})
	if err != nil {
		return badRequest(ctx, "Invalid provider data: "+err.Error())
	}

	if handleErr := s.createProviderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create provider",
		})
	}

	return ctx.JSON(http.StatusCreated, CreateProviderResponse{ID: cmd.ProviderID().String()})
}

// SetProviderAvailability handles PATCH /api/v1/providers/:id/availability.
func (s *Server) SetProviderAvailability(ctx echo.Context) error {
	providerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid provider id")
	}

	var request SetAvailabilityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetProviderAvailabilityCommand(providerID, request.Available)
	if err != nil {
		return badRequest(ctx, "Invalid availability data: "+err.Error())
	}

	if handleErr := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Provider not found")
		}
		return internalError(ctx, "Failed to update provider availability")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateZone handles POST /api/v1/zones - adds a delivery zone.
func (s *Server) CreateZone(ctx echo.Context) error {
	var request CreateZoneRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateZoneCommand(
		request.Name, request.Areas, request.BaseDeliveryFee, request.FreeDeliveryThreshold)
	if err != nil {
		return badRequest(ctx, "Invalid zone data: "+err.Error())
	}

	if handleErr := s.createZoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create zone",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
