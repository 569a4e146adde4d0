package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
	"github.com/buffetjuniors/buffet_management_app/internal/core/services"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientRepository (based on ClientService usage) ---
type MockClientRepository struct {
	mock.Mock
	FindClientByIDFn    func(ctx context.Context, clientID string) (*domain.Client, error)
	FindClientByEmailFn func(ctx context.Context, email string) (*domain.Client, error)
	ListClientsFn       func(ctx context.Context, filter portsrepo.ClientListFilter) ([]domain.Client, int64, error)
	SaveClientFn        func(ctx context.Context, client domain.Client) error
	UpdateClientFn      func(ctx context.Context, client domain.Client) error
	MarkClientDeletedFn func(ctx context.Context, clientID string, deletedAt time.Time, deletedBy string) error
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.FindClientByIDFn != nil {
		return m.FindClientByIDFn(ctx, clientID)
	}
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	if m.FindClientByEmailFn != nil {
		return m.FindClientByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, filter portsrepo.ClientListFilter) ([]domain.Client, int64, error) {
	if m.ListClientsFn != nil {
		return m.ListClientsFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Get(1).(int64), args.Error(2)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	if m.SaveClientFn != nil {
		return m.SaveClientFn(ctx, client)
	}
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	if m.UpdateClientFn != nil {
		return m.UpdateClientFn(ctx, client)
	}
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) MarkClientDeleted(ctx context.Context, clientID string, deletedAt time.Time, deletedBy string) error {
	if m.MarkClientDeletedFn != nil {
		return m.MarkClientDeletedFn(ctx, clientID, deletedAt, deletedBy)
	}
	args := m.Called(ctx, clientID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	mockEventRepo  *MockEventRepository
	service        portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockEventRepo = new(MockEventRepository)
	suite.service = services.NewClientService(suite.mockClientRepo, suite.mockEventRepo)
}

// --- CreateClient Tests ---

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateClientRequest{
		Name:  "Ana Souza",
		Email: "ana.souza@example.com",
		Phone: "+55 11 98888-7777",
	}

	suite.mockClientRepo.On("FindClientByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(client domain.Client) bool {
		return client.Name == req.Name && client.Email == req.Email && client.CreatedBy == creatorUserID
	})).Return(nil).Once()

	created, err := suite.service.CreateClient(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ClientID)
	suite.Equal(req.Name, created.Name)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateClientRequest{Name: "Ana Souza", Email: "ana.souza@example.com"}
	existing := &domain.Client{ClientID: uuid.NewString(), Email: req.Email}

	suite.mockClientRepo.On("FindClientByEmail", ctx, req.Email).Return(existing, nil).Once()

	created, err := suite.service.CreateClient(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_EmptyEmailSkipsCheck() {
	ctx := context.Background()
	// Walk-in clients without an email never collide.
	req := dto.CreateClientRequest{Name: "Walk-in Client"}

	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	created, err := suite.service.CreateClient(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByEmail", mock.Anything, mock.Anything)
}

// --- GetClientByID Tests ---

func (suite *ClientServiceTestSuite) TestGetClientByID_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	expectedClient := &domain.Client{ClientID: clientID, Name: "Found Client"}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(expectedClient, nil).Once()

	client, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().NoError(err)
	suite.Equal(expectedClient, client)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

// --- ListClients Tests ---

func (suite *ClientServiceTestSuite) TestListClients_Success() {
	ctx := context.Background()
	params := dto.ListClientsParams{Search: "ana"}
	expectedClients := []domain.Client{{ClientID: uuid.NewString()}, {ClientID: uuid.NewString()}}

	suite.mockClientRepo.On("ListClients", ctx, mock.MatchedBy(func(filter portsrepo.ClientListFilter) bool {
		return filter.Search == "ana" && filter.Limit == 20 && filter.Offset == 0
	})).Return(expectedClients, int64(2), nil).Once()

	clients, total, err := suite.service.ListClients(ctx, params)

	suite.Require().NoError(err)
	suite.Len(clients, 2)
	suite.Equal(int64(2), total)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestListClients_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockClientRepo.On("ListClients", ctx, mock.AnythingOfType("repositories.ClientListFilter")).Return(nil, int64(0), expectedErr).Once()

	clients, total, err := suite.service.ListClients(ctx, dto.ListClientsParams{})

	suite.Require().Error(err)
	suite.Nil(clients)
	suite.Equal(int64(0), total)
	suite.ErrorIs(err, expectedErr)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

// --- UpdateClient Tests ---

func (suite *ClientServiceTestSuite) TestUpdateClient_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	updaterUserID := uuid.NewString()
	existing := &domain.Client{ClientID: clientID, Name: "Ana Souza", Email: "ana.souza@example.com"}
	newPhone := "+55 11 97777-6666"
	req := dto.UpdateClientRequest{Phone: &newPhone}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("UpdateClient", ctx, mock.MatchedBy(func(client domain.Client) bool {
		return client.ClientID == clientID && client.Phone == newPhone && client.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(newPhone, updated.Phone)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_EmailTaken() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{ClientID: clientID, Name: "Ana Souza", Email: "ana.souza@example.com"}
	holder := &domain.Client{ClientID: uuid.NewString(), Email: "carla.dias@example.com"}
	newEmail := "carla.dias@example.com"
	req := dto.UpdateClientRequest{Email: &newEmail}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("FindClientByEmail", ctx, newEmail).Return(holder, nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NewEmailFree() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{ClientID: clientID, Name: "Ana Souza", Email: "ana.souza@example.com"}
	newEmail := "ana.nova@example.com"
	req := dto.UpdateClientRequest{Email: &newEmail}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("FindClientByEmail", ctx, newEmail).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("UpdateClient", ctx, mock.MatchedBy(func(client domain.Client) bool {
		return client.Email == newEmail
	})).Return(nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newEmail, updated.Email)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

// --- DeleteClient Tests ---

func (suite *ClientServiceTestSuite) TestDeleteClient_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	deleterUserID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockEventRepo.On("CountEventsByClient", ctx, clientID).Return(int64(0), nil).Once()
	suite.mockClientRepo.On("MarkClientDeleted", ctx, clientID, mock.AnythingOfType("time.Time"), deleterUserID).Return(nil).Once()

	err := suite.service.DeleteClient(ctx, clientID, deleterUserID)

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestDeleteClient_HasEvents() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockEventRepo.On("CountEventsByClient", ctx, clientID).Return(int64(3), nil).Once()

	err := suite.service.DeleteClient(ctx, clientID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "3 events")
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertNotCalled(suite.T(), "MarkClientDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteClient(ctx, clientID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "CountEventsByClient", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
