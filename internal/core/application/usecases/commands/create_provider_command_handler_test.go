package commands_test

import (
	"context"
	"errors"
	"testing"

	"banda/internal/core/application/usecases/commands"
	"banda/internal/core/domain/model/kernel"
	"banda/internal/core/domain/model/provider"
	"banda/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) Add(ctx context.Context, provider *provider.DeliveryProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) Update(ctx context.Context, provider *provider.DeliveryProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) Get(ctx context.Context, id kernel.UUID) (*provider.DeliveryProvider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.DeliveryProvider), args.Error(1)
}

func (m *MockProviderRepository) GetAll(ctx context.Context) ([]*provider.DeliveryProvider, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*provider.DeliveryProvider), args.Error(1)
}

type MockProviderUoW struct {
	mock.Mock
}

func (m *MockProviderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProviderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProviderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProviderUoW) ProviderRepository() ports.ProviderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProviderRepository)
}

type MockProviderUoWFactory struct {
	mock.Mock
}

func (m *MockProviderUoWFactory) Create() commands.ProviderUoW {
	args := m.Called()
	return args.Get(0).(commands.ProviderUoW)
}

func TestNewCreateProviderCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockProviderUoWFactory)

	// Act
	handler := commands.NewCreateProviderCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestCreateProviderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateProviderCommand(
		"Kamau Boda Services", provider.VehicleTypeBoda, validProviderAttributes())
	require.NoError(t, err)

	mockRepo := new(MockProviderRepository)
	mockUoW := new(MockProviderUoW)
	mockFactory := new(MockProviderUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProviderRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*provider.DeliveryProvider")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateProviderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateProviderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateProviderCommand // zero value command

	mockFactory := new(MockProviderUoWFactory)
	handler := commands.NewCreateProviderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateProviderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestCreateProviderCommandHandler_Handle_InvalidAttributes(t *testing.T) {
	// Arrange - attributes the aggregate constructor rejects
	ctx := t.Context()
	attrs := validProviderAttributes()
	attrs.Rating = 5.5

	cmd, err := commands.NewCreateProviderCommand("Overrated Movers", provider.VehicleTypeVan, attrs)
	require.NoError(t, err)

	mockUoW := new(MockProviderUoW)
	mockFactory := new(MockProviderUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateProviderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateProviderCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateProviderCommand(
		"Kamau Boda Services", provider.VehicleTypeBoda, validProviderAttributes())
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockProviderUoW)
	mockFactory := new(MockProviderUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateProviderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateProviderCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateProviderCommand(
		"Kamau Boda Services", provider.VehicleTypeBoda, validProviderAttributes())
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockProviderRepository)
	mockUoW := new(MockProviderUoW)
	mockFactory := new(MockProviderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProviderRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*provider.DeliveryProvider")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateProviderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateProviderCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateProviderCommand(
		"Kamau Boda Services", provider.VehicleTypeBoda, validProviderAttributes())
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	mockRepo := new(MockProviderRepository)
	mockUoW := new(MockProviderUoW)
	mockFactory := new(MockProviderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProviderRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*provider.DeliveryProvider")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateProviderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateProviderCommandHandler_Handle_VerifiesProviderDataCorrectness(t *testing.T) {
	// Arrange
	ctx := t.Context()
	name := "Rift Valley Haulage"
	attrs := validProviderAttributes()
	attrs.BandaRecommended = false

	cmd, err := commands.NewCreateProviderCommand(name, provider.VehicleTypeTruck, attrs)
	require.NoError(t, err)

	var capturedProvider *provider.DeliveryProvider
	mockRepo := new(MockProviderRepository)
	mockUoW := new(MockProviderUoW)
	mockFactory := new(MockProviderUoWFactory)

	// Set up expectations in order with custom matcher to capture the provider
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProviderRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(p *provider.DeliveryProvider) bool {
			capturedProvider = p
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateProviderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedProvider)

	// Verify the provider was created with correct data
	assert.Equal(t, cmd.ProviderID(), capturedProvider.ID())
	assert.Equal(t, name, capturedProvider.Name())
	assert.Equal(t, provider.VehicleTypeTruck, capturedProvider.VehicleType())
	assert.InDelta(t, attrs.BaseCost, capturedProvider.BaseCost(), 0.001)
	assert.InDelta(t, attrs.CostPerKm, capturedProvider.CostPerKm(), 0.001)
	assert.False(t, capturedProvider.IsBandaRecommended())
	assert.True(t, capturedProvider.IsAvailable(), "New providers start available")

	// Verify provider is valid
	require.NoError(t, capturedProvider.Validate())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
