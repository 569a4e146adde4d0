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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EventRepository (based on EventService usage) ---
type MockEventRepository struct {
	mock.Mock
	FindEventByIDFn        func(ctx context.Context, eventID string) (*domain.Event, error)
	ListEventsFn           func(ctx context.Context, filter portsrepo.EventListFilter) ([]domain.Event, int64, error)
	ListEventsInRangeFn    func(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	FindFirstOverlappingFn func(ctx context.Context, date time.Time, startMinute, endMinute int, excludeEventID *string) (*domain.Event, error)
	CountEventsByClientFn  func(ctx context.Context, clientID string) (int64, error)
	SaveEventFn            func(ctx context.Context, event domain.Event) error
	UpdateEventFn          func(ctx context.Context, event domain.Event) error
	DeleteEventCascadeFn   func(ctx context.Context, eventID string) error
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	if m.FindEventByIDFn != nil {
		return m.FindEventByIDFn(ctx, eventID)
	}
	args := m.Called(ctx, eventID)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context, filter portsrepo.EventListFilter) ([]domain.Event, int64, error) {
	if m.ListEventsFn != nil {
		return m.ListEventsFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) ListEventsInRange(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	if m.ListEventsInRangeFn != nil {
		return m.ListEventsInRangeFn(ctx, from, to)
	}
	args := m.Called(ctx, from, to)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) FindFirstOverlapping(ctx context.Context, date time.Time, startMinute, endMinute int, excludeEventID *string) (*domain.Event, error) {
	if m.FindFirstOverlappingFn != nil {
		return m.FindFirstOverlappingFn(ctx, date, startMinute, endMinute, excludeEventID)
	}
	args := m.Called(ctx, date, startMinute, endMinute, excludeEventID)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventRepository) CountEventsByClient(ctx context.Context, clientID string) (int64, error) {
	if m.CountEventsByClientFn != nil {
		return m.CountEventsByClientFn(ctx, clientID)
	}
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	if m.SaveEventFn != nil {
		return m.SaveEventFn(ctx, event)
	}
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	if m.UpdateEventFn != nil {
		return m.UpdateEventFn(ctx, event)
	}
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEventCascade(ctx context.Context, eventID string) error {
	if m.DeleteEventCascadeFn != nil {
		return m.DeleteEventCascadeFn(ctx, eventID)
	}
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// --- Test Suite ---
type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo  *MockEventRepository
	mockClientRepo *MockClientRepository
	service        portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewEventService(suite.mockEventRepo, suite.mockClientRepo)
}

// --- CreateEvent Tests ---

func (suite *EventServiceTestSuite) TestCreateEvent_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	creatorUserID := uuid.NewString()
	eventDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	req := dto.CreateEventRequest{
		ClientID:    clientID,
		Title:       "Lucas 7th Birthday",
		EventDate:   "2025-03-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(3500),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID, Name: "Ana Souza"}, nil).Once()
	suite.mockEventRepo.On("FindFirstOverlapping", ctx, eventDate, 600, 720, (*string)(nil)).Return(nil, nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(event domain.Event) bool {
		return event.ClientID == clientID &&
			event.Title == "Lucas 7th Birthday" &&
			event.EventDate.Equal(eventDate) &&
			event.StartMinute == 600 &&
			event.EndMinute == 720 &&
			event.Status == domain.EventPending &&
			event.CreatedBy == creatorUserID
	})).Return(nil).Once()

	created, err := suite.service.CreateEvent(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.EventID)
	suite.Equal(600, created.StartMinute)
	suite.Equal(720, created.EndMinute)
	suite.Equal(domain.EventPending, created.Status)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_WindowTaken() {
	ctx := context.Background()
	clientID := uuid.NewString()
	eventDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	// Existing 11:00-13:00 booking blocks a 10:00-12:00 candidate.
	conflicting := domain.Event{
		EventID:     uuid.NewString(),
		ClientID:    uuid.NewString(),
		Title:       "Marina 5th Birthday",
		EventDate:   eventDate,
		StartMinute: 660,
		EndMinute:   780,
		Status:      domain.EventConfirmed,
	}

	req := dto.CreateEventRequest{
		ClientID:    clientID,
		Title:       "Lucas 7th Birthday",
		EventDate:   "2025-03-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(3500),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockEventRepo.On("FindFirstOverlapping", ctx, eventDate, 600, 720, (*string)(nil)).Return(&conflicting, nil).Once()

	created, err := suite.service.CreateEvent(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrConflict)
	var conflictErr *domain.EventConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Equal(conflicting.EventID, conflictErr.Conflicting.EventID)
	suite.Equal(conflicting.Title, conflictErr.Conflicting.Title)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_AdjacentWindowIsFree() {
	ctx := context.Background()
	clientID := uuid.NewString()
	eventDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	// A booking ending exactly at 12:00 does not block one starting at 12:00,
	// so the repository reports the slot as free.
	req := dto.CreateEventRequest{
		ClientID:    clientID,
		Title:       "Afternoon Party",
		EventDate:   "2025-03-15",
		StartTime:   "12:00",
		EndTime:     "14:00",
		GuestCount:  20,
		PackageType: domain.PackageBasic,
		TotalValue:  decimal.NewFromInt(1800),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockEventRepo.On("FindFirstOverlapping", ctx, eventDate, 720, 840, (*string)(nil)).Return(nil, nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()

	created, err := suite.service.CreateEvent(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_CancelledSkipsOverlapCheck() {
	ctx := context.Background()
	clientID := uuid.NewString()

	req := dto.CreateEventRequest{
		ClientID:    clientID,
		Title:       "Cancelled Before Booking",
		EventDate:   "2025-03-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(3500),
		Status:      domain.EventCancelled,
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(event domain.Event) bool {
		return event.Status == domain.EventCancelled
	})).Return(nil).Once()

	created, err := suite.service.CreateEvent(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindFirstOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_UnknownClient() {
	ctx := context.Background()
	clientID := uuid.NewString()

	req := dto.CreateEventRequest{
		ClientID:    clientID,
		Title:       "Orphan Party",
		EventDate:   "2025-03-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(3500),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateEvent(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), clientID)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_EndBeforeStart() {
	ctx := context.Background()

	req := dto.CreateEventRequest{
		ClientID:    uuid.NewString(),
		Title:       "Backwards Window",
		EventDate:   "2025-03-15",
		StartTime:   "12:00",
		EndTime:     "10:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(3500),
	}

	created, err := suite.service.CreateEvent(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "end time must be after start time")
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_InvalidDate() {
	ctx := context.Background()

	req := dto.CreateEventRequest{
		ClientID:    uuid.NewString(),
		Title:       "Bad Date",
		EventDate:   "15/03/2025",
		StartTime:   "10:00",
		EndTime:     "12:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(3500),
	}

	created, err := suite.service.CreateEvent(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetEventByID Tests ---

func (suite *EventServiceTestSuite) TestGetEventByID_Success() {
	ctx := context.Background()
	eventID := uuid.NewString()
	expectedEvent := &domain.Event{EventID: eventID, Title: "Found Party"}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(expectedEvent, nil).Once()

	event, err := suite.service.GetEventByID(ctx, eventID)

	suite.Require().NoError(err)
	suite.Equal(expectedEvent, event)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestGetEventByID_NotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(nil, apperrors.ErrNotFound).Once()

	event, err := suite.service.GetEventByID(ctx, eventID)

	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- ListEvents Tests ---

func (suite *EventServiceTestSuite) TestListEvents_Success() {
	ctx := context.Background()
	params := dto.ListEventsParams{Status: "confirmed"}
	expectedEvents := []domain.Event{{EventID: uuid.NewString()}, {EventID: uuid.NewString()}}

	suite.mockEventRepo.On("ListEvents", ctx, mock.MatchedBy(func(filter portsrepo.EventListFilter) bool {
		return filter.Status != nil && *filter.Status == domain.EventConfirmed &&
			filter.ClientID == nil &&
			filter.Limit == 20 && filter.Offset == 0
	})).Return(expectedEvents, int64(2), nil).Once()

	events, total, err := suite.service.ListEvents(ctx, params)

	suite.Require().NoError(err)
	suite.Len(events, 2)
	suite.Equal(int64(2), total)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEvents_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockEventRepo.On("ListEvents", ctx, mock.AnythingOfType("repositories.EventListFilter")).Return(nil, int64(0), expectedErr).Once()

	events, total, err := suite.service.ListEvents(ctx, dto.ListEventsParams{})

	suite.Require().Error(err)
	suite.Nil(events)
	suite.Equal(int64(0), total)
	suite.ErrorIs(err, expectedErr)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- GetAgenda Tests ---

func (suite *EventServiceTestSuite) TestGetAgenda_Success() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	expectedEvents := []domain.Event{
		{EventID: uuid.NewString(), StartMinute: 600},
		{EventID: uuid.NewString(), StartMinute: 840},
	}

	suite.mockEventRepo.On("ListEventsInRange", ctx, from, to).Return(expectedEvents, nil).Once()

	events, err := suite.service.GetAgenda(ctx, dto.AgendaParams{From: "2025-03-01", To: "2025-03-31"})

	suite.Require().NoError(err)
	suite.Len(events, 2)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestGetAgenda_ReversedRange() {
	ctx := context.Background()

	events, err := suite.service.GetAgenda(ctx, dto.AgendaParams{From: "2025-04-01", To: "2025-03-01"})

	suite.Require().Error(err)
	suite.Nil(events)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "ListEventsInRange", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateEvent Tests ---

func (suite *EventServiceTestSuite) TestUpdateEvent_WindowChangeRechecksOverlap() {
	ctx := context.Background()
	eventID := uuid.NewString()
	clientID := uuid.NewString()
	eventDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	existing := &domain.Event{
		EventID:     eventID,
		ClientID:    clientID,
		Title:       "Lucas 7th Birthday",
		EventDate:   eventDate,
		StartMinute: 600,
		EndMinute:   720,
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(3500),
		Status:      domain.EventConfirmed,
	}

	newStart := "09:00"
	req := dto.UpdateEventRequest{StartTime: &newStart}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(existing, nil).Once()
	// The event being moved must not collide with itself.
	suite.mockEventRepo.On("FindFirstOverlapping", ctx, eventDate, 540, 720, mock.MatchedBy(func(excludeEventID *string) bool {
		return excludeEventID != nil && *excludeEventID == eventID
	})).Return(nil, nil).Once()
	suite.mockEventRepo.On("UpdateEvent", ctx, mock.MatchedBy(func(event domain.Event) bool {
		return event.EventID == eventID && event.StartMinute == 540 && event.EndMinute == 720
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(540, updated.StartMinute)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestUpdateEvent_WindowTaken() {
	ctx := context.Background()
	eventID := uuid.NewString()
	eventDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	existing := &domain.Event{
		EventID:     eventID,
		ClientID:    uuid.NewString(),
		Title:       "Lucas 7th Birthday",
		EventDate:   eventDate,
		StartMinute: 600,
		EndMinute:   720,
		Status:      domain.EventConfirmed,
	}
	conflicting := domain.Event{
		EventID:     uuid.NewString(),
		Title:       "Marina 5th Birthday",
		EventDate:   eventDate,
		StartMinute: 540,
		EndMinute:   660,
		Status:      domain.EventConfirmed,
	}

	newStart := "09:00"
	req := dto.UpdateEventRequest{StartTime: &newStart}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(existing, nil).Once()
	suite.mockEventRepo.On("FindFirstOverlapping", ctx, eventDate, 540, 720, mock.AnythingOfType("*string")).Return(&conflicting, nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	var conflictErr *domain.EventConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Equal(conflicting.EventID, conflictErr.Conflicting.EventID)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "UpdateEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateEvent_SameWindowSkipsCheck() {
	ctx := context.Background()
	eventID := uuid.NewString()
	existing := &domain.Event{
		EventID:     eventID,
		ClientID:    uuid.NewString(),
		Title:       "Lucas 7th Birthday",
		EventDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		StartMinute: 600,
		EndMinute:   720,
		Status:      domain.EventConfirmed,
	}

	// Resubmitting the same window with a new title must not re-run the
	// collision check.
	sameStart := "10:00"
	sameEnd := "12:00"
	newTitle := "Lucas Turns Seven"
	req := dto.UpdateEventRequest{Title: &newTitle, StartTime: &sameStart, EndTime: &sameEnd}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(existing, nil).Once()
	suite.mockEventRepo.On("UpdateEvent", ctx, mock.MatchedBy(func(event domain.Event) bool {
		return event.Title == newTitle && event.StartMinute == 600 && event.EndMinute == 720
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newTitle, updated.Title)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindFirstOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateEvent_ReviveFromCancelledRechecksOverlap() {
	ctx := context.Background()
	eventID := uuid.NewString()
	eventDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	existing := &domain.Event{
		EventID:     eventID,
		ClientID:    uuid.NewString(),
		Title:       "Revived Party",
		EventDate:   eventDate,
		StartMinute: 600,
		EndMinute:   720,
		Status:      domain.EventCancelled,
	}
	conflicting := domain.Event{
		EventID:     uuid.NewString(),
		Title:       "Booked Meanwhile",
		EventDate:   eventDate,
		StartMinute: 630,
		EndMinute:   750,
		Status:      domain.EventConfirmed,
	}

	// The slot was taken while the event sat cancelled, so reviving it with
	// the old window must fail.
	confirmed := domain.EventConfirmed
	req := dto.UpdateEventRequest{Status: &confirmed}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(existing, nil).Once()
	suite.mockEventRepo.On("FindFirstOverlapping", ctx, eventDate, 600, 720, mock.AnythingOfType("*string")).Return(&conflicting, nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "UpdateEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateEvent_CancelSkipsCheck() {
	ctx := context.Background()
	eventID := uuid.NewString()
	existing := &domain.Event{
		EventID:     eventID,
		ClientID:    uuid.NewString(),
		Title:       "Cancelled Party",
		EventDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		StartMinute: 600,
		EndMinute:   720,
		Status:      domain.EventConfirmed,
	}

	cancelled := domain.EventCancelled
	req := dto.UpdateEventRequest{Status: &cancelled}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(existing, nil).Once()
	suite.mockEventRepo.On("UpdateEvent", ctx, mock.MatchedBy(func(event domain.Event) bool {
		return event.Status == domain.EventCancelled
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.EventCancelled, updated.Status)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindFirstOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateEvent_NotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()
	newTitle := "No Such Party"
	req := dto.UpdateEventRequest{Title: &newTitle}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "UpdateEvent", mock.Anything, mock.Anything)
}

// --- DeleteEvent Tests ---

func (suite *EventServiceTestSuite) TestDeleteEvent_Success() {
	ctx := context.Background()
	eventID := uuid.NewString()

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(&domain.Event{EventID: eventID}, nil).Once()
	suite.mockEventRepo.On("DeleteEventCascade", ctx, eventID).Return(nil).Once()

	err := suite.service.DeleteEvent(ctx, eventID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestDeleteEvent_NotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEvent(ctx, eventID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertNotCalled(suite.T(), "DeleteEventCascade", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestDeleteEvent_RepoError() {
	ctx := context.Background()
	eventID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(&domain.Event{EventID: eventID}, nil).Once()
	suite.mockEventRepo.On("DeleteEventCascade", ctx, eventID).Return(expectedErr).Once()

	err := suite.service.DeleteEvent(ctx, eventID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestEventService(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
