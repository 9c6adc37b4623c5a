package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAllProvidersQueryHandler retrieves the provider catalogue from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern, bypassing the aggregate restore path.
type GetAllProvidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProvidersQueryHandler creates a handler for provider catalogue queries.
// Requires a GORM database connection for query execution.
func NewGetAllProvidersQueryHandler(db *gorm.DB) GetAllProvidersQueryHandler {
	return GetAllProvidersQueryHandler{db: db}
}

// Handle executes the query to retrieve all providers.
// Returns a slice of provider read models sorted by name.
func (h GetAllProvidersQueryHandler) Handle(
	ctx context.Context,
	query GetAllProvidersQuery,
) ([]GetAllProvidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	providers := make([]GetAllProvidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle_type,
			base_cost,
			cost_per_km,
			rating,
			max_weight_kg,
			max_distance_km,
			specialties,
			available,
			banda_recommended,
			service_areas,
			operating_hours
		FROM providers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllProvidersQueryResponse
		var id uuid.UUID
		var specialties, serviceAreas pq.StringArray

		err = rows.Scan(
			&id,
			&response.Name,
			&response.VehicleType,
			&response.BaseCost,
			&response.CostPerKm,
			&response.Rating,
			&response.MaxWeightKg,
			&response.MaxDistanceKm,
			&specialties,
			&response.Available,
			&response.BandaRecommended,
			&serviceAreas,
			&response.OperatingHours,
		)
		if err != nil {
			return nil, err
		}

		response.ID = id.String()
		response.Specialties = specialties
		response.ServiceAreas = serviceAreas
		providers = append(providers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return providers, nil
}
