package cmd

import (
	"log/slog"
	"time"

	"banda/internal/adapters/out/catalogcache"
	"banda/internal/adapters/out/postgres"
	"banda/internal/core/application/usecases/commands"
	"banda/internal/core/application/usecases/queries"
	"banda/internal/core/domain/services"
	"banda/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	catalogCache *catalogcache.Cache
	logger       *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalogCache: catalogcache.NewSeededCache(),
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateCreateProviderCommandHandler() commands.CreateProviderCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProviderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetProviderAvailabilityCommandHandler() commands.SetProviderAvailabilityCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetProviderAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneCommandHandler(f)
}

func (c *CompositionRoot) CreateAnalyzePoolingQueryHandler() queries.AnalyzePoolingQueryHandler {
	return queries.NewAnalyzePoolingQueryHandler(services.NewPoolingAnalyzer())
}

func (c *CompositionRoot) CreateRecommendProviderQueryHandler() queries.RecommendProviderQueryHandler {
	return queries.NewRecommendProviderQueryHandler(c.catalogCache, services.NewProviderMatcher())
}

func (c *CompositionRoot) CreateQuoteDeliveryFeeQueryHandler() queries.QuoteDeliveryFeeQueryHandler {
	return queries.NewQuoteDeliveryFeeQueryHandler(c.catalogCache, c.catalogCache, services.NewFeeCalculator())
}

func (c *CompositionRoot) CreateGetTimeSlotsQueryHandler() queries.GetTimeSlotsQueryHandler {
	return queries.NewGetTimeSlotsQueryHandler(services.NewLabelSlotPolicy(), time.Now)
}

func (c *CompositionRoot) CreateGetDeliverySlotsQueryHandler() queries.GetDeliverySlotsQueryHandler {
	return queries.NewGetDeliverySlotsQueryHandler(services.NewIsoSlotPolicy(), time.Now)
}

func (c *CompositionRoot) CreateValidateDeliverySlotQueryHandler() queries.ValidateDeliverySlotQueryHandler {
	return queries.NewValidateDeliverySlotQueryHandler(services.NewIsoSlotPolicy(), time.Now)
}

func (c *CompositionRoot) CreateGetDeliveryTimeEstimateQueryHandler() queries.GetDeliveryTimeEstimateQueryHandler {
	return queries.NewGetDeliveryTimeEstimateQueryHandler()
}

func (c *CompositionRoot) CreateGetAllProvidersQueryHandler() queries.GetAllProvidersQueryHandler {
	return queries.NewGetAllProvidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, c.catalogCache, c.logger)
}

type FuncProviderUoWFactory func() commands.ProviderUoW

func (f FuncProviderUoWFactory) Create() commands.ProviderUoW {
	return f()
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}
