package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "banda/internal/adapters/out/postgres"
	"banda/internal/adapters/out/postgres/providerrepo"
	"banda/internal/adapters/out/postgres/zonerepo"
	"banda/internal/core/domain/model/kernel"
	"banda/internal/core/domain/model/provider"
	"banda/internal/core/domain/model/zone"
	"banda/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection for
// all tests and migrates the catalogue schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&providerrepo.ProviderDTO{}, &zonerepo.ZoneDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE providers, delivery_zones").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated instances
// that both expose the catalogue repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ProviderRepository())
	suite.NotNil(uow1.ZoneRepository())
	suite.NotNil(uow2.ProviderRepository())
	suite.NotNil(uow2.ZoneRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_MultiRepositoryTransaction verifies provider and zone
// operations within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProvider := createTestProvider()
	testZone := createTestZone()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProviderRepository().Add(ctx, testProvider)
	suite.Require().NoError(err)

	err = uow.ZoneRepository().Add(ctx, testZone)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both persisted using a new unit of work
	newUow := suite.factory.Create()

	retrievedProvider, err := newUow.ProviderRepository().Get(ctx, testProvider.ID())
	suite.Require().NoError(err)
	suite.Equal(testProvider.ID(), retrievedProvider.ID())
	suite.Equal(testProvider.Name(), retrievedProvider.Name())

	retrievedZone, err := newUow.ZoneRepository().Get(ctx, testZone.Name())
	suite.Require().NoError(err)
	suite.Equal(testZone.Name(), retrievedZone.Name())
	suite.InDelta(testZone.FreeDeliveryThreshold(), retrievedZone.FreeDeliveryThreshold(), 0.001)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProvider := createTestProvider()
	testZone := createTestZone()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProviderRepository().Add(ctx, testProvider)
	suite.Require().NoError(err)

	err = uow.ZoneRepository().Add(ctx, testZone)
	suite.Require().NoError(err)

	// Both visible within the transaction
	_, err = uow.ProviderRepository().Get(ctx, testProvider.ID())
	suite.Require().NoError(err)

	_, err = uow.ZoneRepository().Get(ctx, testZone.Name())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Neither persisted
	newUow := suite.factory.Create()

	_, err = newUow.ProviderRepository().Get(ctx, testProvider.ID())
	suite.Require().Error(err, "Provider should not exist after rollback")

	_, err = newUow.ZoneRepository().Get(ctx, testZone.Name())
	suite.Require().Error(err, "Zone should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained from
// different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	provider1 := createTestProvider()
	provider2 := createTestProvider()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ProviderRepository().Add(ctx, provider1)
	suite.Require().NoError(err)

	err = uow2.ProviderRepository().Add(ctx, provider2)
	suite.Require().NoError(err)

	// Each transaction sees only its own changes
	_, err = uow1.ProviderRepository().Get(ctx, provider1.ID())
	suite.Require().NoError(err, "UOW1 should see provider1")

	_, err = uow1.ProviderRepository().Get(ctx, provider2.ID())
	suite.Require().Error(err, "UOW1 should not see provider2")

	_, err = uow2.ProviderRepository().Get(ctx, provider2.ID())
	suite.Require().NoError(err, "UOW2 should see provider2")

	_, err = uow2.ProviderRepository().Get(ctx, provider1.ID())
	suite.Require().Error(err, "UOW2 should not see provider1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Only provider1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.ProviderRepository().Get(ctx, provider1.ID())
	suite.Require().NoError(err, "Provider1 should persist after commit")

	_, err = newUow.ProviderRepository().Get(ctx, provider2.ID())
	suite.Require().Error(err, "Provider2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProvider := createTestProvider()

	err := uow.ProviderRepository().Add(ctx, testProvider)
	suite.Require().NoError(err)

	retrievedProvider, err := uow.ProviderRepository().Get(ctx, testProvider.ID())
	suite.Require().NoError(err)
	suite.Equal(testProvider.ID(), retrievedProvider.ID())

	newUow := suite.factory.Create()
	retrievedProvider, err = newUow.ProviderRepository().Get(ctx, testProvider.ID())
	suite.Require().NoError(err)
	suite.Equal(testProvider.ID(), retrievedProvider.ID())
}

// TestUnitOfWork_AvailabilityUpdateWorkflow tests the catalogue availability
// workflow: load, flip, persist, reload.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AvailabilityUpdateWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProvider := createTestProvider()
	err := uow.ProviderRepository().Add(ctx, testProvider)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	loaded, err := uow.ProviderRepository().Get(ctx, testProvider.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsAvailable())

	err = loaded.SetAvailable(false)
	suite.Require().NoError(err)
	err = uow.ProviderRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	reloaded, err := newUow.ProviderRepository().Get(ctx, testProvider.ID())
	suite.Require().NoError(err)
	suite.False(reloaded.IsAvailable(), "Availability change should survive the round trip")
}

// createTestProvider creates a valid provider for testing purposes.
func createTestProvider() *provider.DeliveryProvider {
	p, _ := provider.NewDeliveryProvider(
		kernel.NewUUID(), "Kamau Boda Services", provider.VehicleTypeBoda,
		100, 20, 4.8,
		20, 15,
		[]string{"vegetables", "fruits"}, true, []string{"Westlands", "Parklands"}, "06:00-20:00",
	)
	return p
}

// createTestZone creates a valid zone for testing purposes.
func createTestZone() zone.DeliveryZone {
	z, _ := zone.NewDeliveryZone(
		"Nairobi Metro", []string{"Westlands", "Kilimani"}, 120, 2000)
	return z
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
