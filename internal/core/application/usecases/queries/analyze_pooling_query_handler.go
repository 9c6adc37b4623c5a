package queries

import (
	"context"

	"banda/internal/core/domain/services"
)

// AnalyzePoolingQueryHandler derives the pooling analysis for one checkout
// order. The computation is pure and in-memory; the context is accepted for
// interface symmetry with the database-backed handlers.
type AnalyzePoolingQueryHandler struct {
	analyzer services.PoolingAnalyzer
}

// NewAnalyzePoolingQueryHandler creates a handler for pooling analysis queries.
func NewAnalyzePoolingQueryHandler(analyzer services.PoolingAnalyzer) AnalyzePoolingQueryHandler {
	return AnalyzePoolingQueryHandler{analyzer: analyzer}
}

// Handle executes the pooling analysis.
// Empty or disjoint orders degrade to a split recommendation, never an error.
func (h AnalyzePoolingQueryHandler) Handle(
	_ context.Context,
	query AnalyzePoolingQuery,
) (services.PoolingAnalysis, error) {
	if err := query.Validate(); err != nil {
		return services.PoolingAnalysis{}, err
	}

	return h.analyzer.Analyze(query.Groups(), query.Buyer(), query.PaymentMethod())
}
