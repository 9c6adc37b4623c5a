package jobs

import (
	"context"
	"log/slog"

	"banda/internal/core/domain/model/provider"
	"banda/internal/core/domain/model/zone"
	"banda/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// catalogWriter is the snapshot swap surface of the catalog cache.
type catalogWriter interface {
	ReplaceProviders(providers []*provider.DeliveryProvider)
	ReplaceZones(zones []zone.DeliveryZone)
}

// CatalogRefreshJob periodically reloads the in-memory catalog snapshot from
// the database so checkout computation picks up catalogue changes without a
// restart. Runs every minute.
type CatalogRefreshJob struct {
	uowFactory ports.UnitOfWorkFactory
	cache      catalogWriter
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewCatalogRefreshJob creates a new job for refreshing the catalog cache.
func NewCatalogRefreshJob(
	uowFactory ports.UnitOfWorkFactory,
	cache catalogWriter,
	logger *slog.Logger,
) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		uowFactory: uowFactory,
		cache:      cache,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "catalog_refresh_job"),
	}
}

// Start refreshes the snapshot once immediately, then begins the scheduled
// refresh at the top of every minute.
func (j *CatalogRefreshJob) Start() error {
	ctx := context.Background()
	if err := j.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Initial catalog refresh failed", "error", err)
	}

	_, err := j.cron.AddFunc("0 * * * * *", func() {
		refreshCtx := context.Background()
		if refreshErr := j.Refresh(refreshCtx); refreshErr != nil {
			j.logger.ErrorContext(refreshCtx, "Catalog refresh failed", "error", refreshErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Catalog refresh job started (running every minute)")
	return nil
}

// Stop stops the catalog refresh job.
func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}

// Refresh loads the provider and zone tables and swaps them into the cache.
// An empty database leaves the current snapshot in place so the service keeps
// computing from the seed catalogue until real data arrives.
func (j *CatalogRefreshJob) Refresh(ctx context.Context) error {
	uow := j.uowFactory.Create()

	providers, err := uow.ProviderRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	zones, err := uow.ZoneRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	if len(providers) > 0 {
		j.cache.ReplaceProviders(providers)
	}
	if len(zones) > 0 {
		j.cache.ReplaceZones(zones)
	}

	j.logger.DebugContext(ctx, "Catalog snapshot refreshed",
		"providers", len(providers), "zones", len(zones))
	return nil
}
