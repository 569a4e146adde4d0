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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CashFlowRepository (based on CashFlowService usage) ---
type MockCashFlowRepository struct {
	mock.Mock
	FindEntryByIDFn    func(ctx context.Context, entryID string) (*domain.CashFlowEntry, error)
	ListEntriesFn      func(ctx context.Context, filter portsrepo.CashFlowListFilter) ([]domain.CashFlowEntry, int64, error)
	SummarizeEntriesFn func(ctx context.Context, from, to *time.Time) (*domain.CashFlowSummary, error)
	SaveEntryFn        func(ctx context.Context, entry domain.CashFlowEntry) error
	DeleteEntryFn      func(ctx context.Context, entryID string) error
}

func (m *MockCashFlowRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.CashFlowEntry, error) {
	if m.FindEntryByIDFn != nil {
		return m.FindEntryByIDFn(ctx, entryID)
	}
	args := m.Called(ctx, entryID)
	var entry *domain.CashFlowEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.CashFlowEntry)
	}
	return entry, args.Error(1)
}

func (m *MockCashFlowRepository) ListEntries(ctx context.Context, filter portsrepo.CashFlowListFilter) ([]domain.CashFlowEntry, int64, error) {
	if m.ListEntriesFn != nil {
		return m.ListEntriesFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var entries []domain.CashFlowEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.CashFlowEntry)
	}
	return entries, args.Get(1).(int64), args.Error(2)
}

func (m *MockCashFlowRepository) SummarizeEntries(ctx context.Context, from, to *time.Time) (*domain.CashFlowSummary, error) {
	if m.SummarizeEntriesFn != nil {
		return m.SummarizeEntriesFn(ctx, from, to)
	}
	args := m.Called(ctx, from, to)
	var summary *domain.CashFlowSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.CashFlowSummary)
	}
	return summary, args.Error(1)
}

func (m *MockCashFlowRepository) SaveEntry(ctx context.Context, entry domain.CashFlowEntry) error {
	if m.SaveEntryFn != nil {
		return m.SaveEntryFn(ctx, entry)
	}
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCashFlowRepository) DeleteEntry(ctx context.Context, entryID string) error {
	if m.DeleteEntryFn != nil {
		return m.DeleteEntryFn(ctx, entryID)
	}
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Test Suite ---
type CashFlowServiceTestSuite struct {
	suite.Suite
	mockCashFlowRepo *MockCashFlowRepository
	service          portssvc.CashFlowSvcFacade
}

func (suite *CashFlowServiceTestSuite) SetupTest() {
	suite.mockCashFlowRepo = new(MockCashFlowRepository)
	suite.service = services.NewCashFlowService(suite.mockCashFlowRepo)
}

// --- ListEntries Tests ---

func (suite *CashFlowServiceTestSuite) TestListEntries_Success() {
	ctx := context.Background()
	params := dto.ListCashFlowParams{EntryType: "income"}
	expectedEntries := []domain.CashFlowEntry{{EntryID: uuid.NewString()}, {EntryID: uuid.NewString()}}

	suite.mockCashFlowRepo.On("ListEntries", ctx, mock.MatchedBy(func(filter portsrepo.CashFlowListFilter) bool {
		return filter.EntryType != nil && *filter.EntryType == domain.EntryIncome &&
			filter.Limit == 20 && filter.Offset == 0
	})).Return(expectedEntries, int64(2), nil).Once()

	entries, total, err := suite.service.ListEntries(ctx, params)

	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.Equal(int64(2), total)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

// --- Summarize Tests ---

func (suite *CashFlowServiceTestSuite) TestSummarize_OpenRange() {
	ctx := context.Background()
	expected := &domain.CashFlowSummary{
		TotalIncome:  decimal.NewFromInt(5000),
		TotalExpense: decimal.NewFromInt(1800),
		Net:          decimal.NewFromInt(3200),
	}

	suite.mockCashFlowRepo.On("SummarizeEntries", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(expected, nil).Once()

	summary, err := suite.service.Summarize(ctx, dto.CashFlowSummaryParams{})

	suite.Require().NoError(err)
	suite.Equal(expected, summary)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestSummarize_BoundedRange() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	expected := &domain.CashFlowSummary{Net: decimal.NewFromInt(1200)}

	suite.mockCashFlowRepo.On("SummarizeEntries", ctx, mock.MatchedBy(func(got *time.Time) bool {
		return got != nil && got.Equal(from)
	}), mock.MatchedBy(func(got *time.Time) bool {
		return got != nil && got.Equal(to)
	})).Return(expected, nil).Once()

	summary, err := suite.service.Summarize(ctx, dto.CashFlowSummaryParams{From: "2025-01-01", To: "2025-01-31"})

	suite.Require().NoError(err)
	suite.Equal(expected, summary)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestSummarize_InvalidFrom() {
	ctx := context.Background()

	summary, err := suite.service.Summarize(ctx, dto.CashFlowSummaryParams{From: "01/01/2025"})

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCashFlowRepo.AssertNotCalled(suite.T(), "SummarizeEntries", mock.Anything, mock.Anything, mock.Anything)
}

// --- CreateManualEntry Tests ---

func (suite *CashFlowServiceTestSuite) TestCreateManualEntry_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	transactionDate := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	req := dto.CreateCashFlowEntryRequest{
		EntryType:       domain.EntryIncome,
		Amount:          decimal.NewFromInt(150),
		Description:     "Venue photo session fee",
		TransactionDate: "2025-02-14",
	}

	suite.mockCashFlowRepo.On("SaveEntry", ctx, mock.MatchedBy(func(entry domain.CashFlowEntry) bool {
		return entry.EntryType == domain.EntryIncome &&
			entry.Amount.Equal(decimal.NewFromInt(150)) &&
			entry.TransactionDate.Equal(transactionDate) &&
			entry.IsManual()
	})).Return(nil).Once()

	created, err := suite.service.CreateManualEntry(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.EntryID)
	suite.Nil(created.PaymentID)
	suite.Nil(created.ExpenseID)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCreateManualEntry_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateCashFlowEntryRequest{
		EntryType:       domain.EntryExpense,
		Amount:          decimal.NewFromInt(-10),
		Description:     "Negative entry",
		TransactionDate: "2025-02-14",
	}

	created, err := suite.service.CreateManualEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCashFlowRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

// --- DeleteManualEntry Tests ---

func (suite *CashFlowServiceTestSuite) TestDeleteManualEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	manual := &domain.CashFlowEntry{EntryID: entryID, EntryType: domain.EntryIncome}

	suite.mockCashFlowRepo.On("FindEntryByID", ctx, entryID).Return(manual, nil).Once()
	suite.mockCashFlowRepo.On("DeleteEntry", ctx, entryID).Return(nil).Once()

	err := suite.service.DeleteManualEntry(ctx, entryID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestDeleteManualEntry_DerivedEntryRefused() {
	ctx := context.Background()
	entryID := uuid.NewString()
	paymentID := uuid.NewString()
	derived := &domain.CashFlowEntry{EntryID: entryID, EntryType: domain.EntryIncome, PaymentID: &paymentID}

	suite.mockCashFlowRepo.On("FindEntryByID", ctx, entryID).Return(derived, nil).Once()

	err := suite.service.DeleteManualEntry(ctx, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
	suite.mockCashFlowRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

func (suite *CashFlowServiceTestSuite) TestDeleteManualEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockCashFlowRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteManualEntry(ctx, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCashFlowService(t *testing.T) {
	suite.Run(t, new(CashFlowServiceTestSuite))
}
