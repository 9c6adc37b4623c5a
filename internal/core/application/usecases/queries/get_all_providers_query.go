package queries

import (
	"errors"

	"banda/internal/pkg/guard"
)

var ErrGetAllProvidersQueryIsNotConstructed = errors.New(
	"GetAllProvidersQuery must be created via NewGetAllProvidersQuery constructor",
)

// GetAllProvidersQuery retrieves the full provider catalogue, available or
// not, for catalogue management and monitoring.
//
// Example:
//
//	query := NewGetAllProvidersQuery()
//	handler := NewGetAllProvidersQueryHandler(db)
//
//	providers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve providers: %w", err)
//	}
//
//	for _, p := range providers {
//	    fmt.Printf("%s (%s) rated %.1f\n", p.Name, p.VehicleType, p.Rating)
//	}
type GetAllProvidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProvidersQuery creates a query to retrieve all providers.
// This is a parameterless query that fetches the complete catalogue.
func NewGetAllProvidersQuery() GetAllProvidersQuery {
	return GetAllProvidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllProvidersQueryIsNotConstructed if validation fails.
func (q GetAllProvidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProvidersQueryIsNotConstructed)
}

// GetAllProvidersQueryResponse represents one catalogued provider in the read
// model, including its availability.
type GetAllProvidersQueryResponse struct {
	ProviderReadModel
	Available bool `json:"available"`
}
