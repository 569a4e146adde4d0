package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
	"github.com/buffetjuniors/buffet_management_app/internal/handlers"
	"github.com/buffetjuniors/buffet_management_app/internal/middleware"
	"github.com/buffetjuniors/buffet_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) ListEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Event), args.Get(1).(int64), args.Error(2)
}
func (m *MockEventService) GetAgenda(ctx context.Context, params dto.AgendaParams) ([]domain.Event, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) DeleteEvent(ctx context.Context, eventID string, deleterUserID string) error {
	args := m.Called(ctx, eventID, deleterUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.EventSvcFacade = (*MockEventService)(nil)

// --- Test Suite ---
type EventHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockEventService *MockEventService
	jwtSecret        string
}

// generateTestToken creates a signed JWT carrying the user ID and role, the
// same claims the login handler issues.
func (suite *EventHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	claims := middleware.AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "buffet-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	// The hhmm rule is normally registered at startup; tests need it too so
	// the time window fields bind.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		suite.Require().NoError(dto.RegisterValidations(v))
	}

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "buffet-test",
		LoginRateLimit:    "5-M",
	}

	suite.mockEventService = new(MockEventService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Event: suite.mockEventService,
	})
}

// doRequest serves the request against the suite router and returns the recorder.
func (suite *EventHandlerTestSuite) doRequest(method, url string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reqBody)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EventHandlerTestSuite) TestCreateEvent_Success() {
	userID := uuid.NewString()
	clientID := uuid.NewString()
	eventID := uuid.NewString()
	eventDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	reqBody := dto.CreateEventRequest{
		ClientID:    clientID,
		Title:       "Lucas 7th Birthday",
		EventDate:   "2025-03-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(1800),
	}

	created := &domain.Event{
		EventID:     eventID,
		ClientID:    clientID,
		Title:       "Lucas 7th Birthday",
		EventDate:   eventDate,
		StartMinute: 600,
		EndMinute:   720,
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(1800),
		Status:      domain.EventPending,
		AuditFields: domain.AuditFields{CreatedAt: time.Now(), CreatedBy: userID},
	}

	suite.mockEventService.On("CreateEvent",
		mock.AnythingOfType("*context.valueCtx"), // Context carries identity set by the middleware
		mock.MatchedBy(func(req dto.CreateEventRequest) bool {
			return req.ClientID == clientID && req.StartTime == "10:00" && req.EndTime == "12:00"
		}),
		userID, // Expect the user ID from the token subject
	).Return(created, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleStaff)
	w := suite.doRequest(http.MethodPost, "/api/events", reqBody, token)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(eventID, resp.EventID)
	suite.Equal("2025-03-15", resp.EventDate)
	suite.Equal("10:00", resp.StartTime)
	suite.Equal("12:00", resp.EndTime)
	suite.Equal(domain.EventPending, resp.Status)

	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestCreateEvent_WindowTaken() {
	userID := uuid.NewString()
	clientID := uuid.NewString()
	eventDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	conflicting := domain.Event{
		EventID:     uuid.NewString(),
		ClientID:    uuid.NewString(),
		Title:       "Marina 5th Birthday",
		EventDate:   eventDate,
		StartMinute: 660,
		EndMinute:   780,
		GuestCount:  25,
		PackageType: domain.PackagePremium,
		TotalValue:  decimal.NewFromInt(2500),
		Status:      domain.EventConfirmed,
	}

	reqBody := dto.CreateEventRequest{
		ClientID:    clientID,
		Title:       "Lucas 7th Birthday",
		EventDate:   "2025-03-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(1800),
	}

	suite.mockEventService.On("CreateEvent", mock.Anything, mock.AnythingOfType("dto.CreateEventRequest"), userID).
		Return(nil, &domain.EventConflictError{Conflicting: conflicting}).Once()

	token := suite.generateTestToken(userID, domain.RoleStaff)
	w := suite.doRequest(http.MethodPost, "/api/events", reqBody, token)

	suite.Equal(http.StatusConflict, w.Code)

	var resp dto.EventConflictResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "overlaps event")
	suite.Equal(conflicting.EventID, resp.ConflictingEvent.EventID)
	suite.Equal("Marina 5th Birthday", resp.ConflictingEvent.Title)
	suite.Equal("11:00", resp.ConflictingEvent.StartTime)
	suite.Equal("13:00", resp.ConflictingEvent.EndTime)

	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestCreateEvent_InvalidTimeFormat() {
	reqBody := dto.CreateEventRequest{
		ClientID:    uuid.NewString(),
		Title:       "Lucas 7th Birthday",
		EventDate:   "2025-03-15",
		StartTime:   "25:70",
		EndTime:     "12:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(1800),
	}

	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)
	w := suite.doRequest(http.MethodPost, "/api/events", reqBody, token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request format")
	suite.mockEventService.AssertNotCalled(suite.T(), "CreateEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventHandlerTestSuite) TestCreateEvent_MissingToken() {
	reqBody := dto.CreateEventRequest{
		ClientID:    uuid.NewString(),
		Title:       "Lucas 7th Birthday",
		EventDate:   "2025-03-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		GuestCount:  30,
		PackageType: domain.PackageStandard,
		TotalValue:  decimal.NewFromInt(1800),
	}

	w := suite.doRequest(http.MethodPost, "/api/events", reqBody, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Authorization header required")
	suite.mockEventService.AssertNotCalled(suite.T(), "CreateEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventHandlerTestSuite) TestCreateEvent_BadToken() {
	req, err := http.NewRequest(http.MethodGet, "/api/events", nil)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid token")
	suite.mockEventService.AssertNotCalled(suite.T(), "ListEvents", mock.Anything, mock.Anything)
}

func (suite *EventHandlerTestSuite) TestGetEvent_NotFound() {
	eventID := uuid.NewString()

	suite.mockEventService.On("GetEventByID", mock.Anything, eventID).
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)
	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/events/%s", eventID), nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Event not found")
	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestListEvents_ForwardsFiltersAndPagination() {
	userID := uuid.NewString()
	eventDate := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)

	events := []domain.Event{{
		EventID:     uuid.NewString(),
		ClientID:    uuid.NewString(),
		Title:       "Sofia 4th Birthday",
		EventDate:   eventDate,
		StartMinute: 840,
		EndMinute:   960,
		GuestCount:  20,
		PackageType: domain.PackageBasic,
		TotalValue:  decimal.NewFromInt(1200),
		Status:      domain.EventConfirmed,
	}}

	suite.mockEventService.On("ListEvents",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListEventsParams) bool {
			return p.Status == "confirmed" && p.Page == 2 && p.Limit == 10
		}),
	).Return(events, int64(23), nil).Once()

	token := suite.generateTestToken(userID, domain.RoleStaff)
	w := suite.doRequest(http.MethodGet, "/api/events?status=confirmed&page=2&limit=10", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListEventsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Data, 1)
	suite.Equal("Sofia 4th Birthday", resp.Data[0].Title)
	suite.Equal(int64(23), resp.Total)
	suite.Equal(2, resp.Page)
	suite.Equal(3, resp.TotalPages)
	suite.True(resp.HasNext)
	suite.True(resp.HasPrev)

	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestGetAgenda_Success() {
	userID := uuid.NewString()

	events := []domain.Event{
		{
			EventID:     uuid.NewString(),
			Title:       "Morning Party",
			EventDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			StartMinute: 540,
			EndMinute:   660,
			Status:      domain.EventConfirmed,
		},
		{
			EventID:     uuid.NewString(),
			Title:       "Afternoon Party",
			EventDate:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			StartMinute: 900,
			EndMinute:   1020,
			Status:      domain.EventPending,
		},
	}

	suite.mockEventService.On("GetAgenda",
		mock.Anything,
		mock.MatchedBy(func(p dto.AgendaParams) bool {
			return p.From == "2025-06-01" && p.To == "2025-06-07"
		}),
	).Return(events, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleStaff)
	w := suite.doRequest(http.MethodGet, "/api/events/agenda?from=2025-06-01&to=2025-06-07", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.EventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("Morning Party", resp[0].Title)
	suite.Equal("09:00", resp[0].StartTime)
	suite.Equal("Afternoon Party", resp[1].Title)

	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestGetAgenda_MissingRange() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)
	w := suite.doRequest(http.MethodGet, "/api/events/agenda", nil, token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEventService.AssertNotCalled(suite.T(), "GetAgenda", mock.Anything, mock.Anything)
}

func (suite *EventHandlerTestSuite) TestUpdateEvent_WindowTaken() {
	userID := uuid.NewString()
	eventID := uuid.NewString()

	conflicting := domain.Event{
		EventID:     uuid.NewString(),
		Title:       "Booked Meanwhile",
		EventDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		StartMinute: 600,
		EndMinute:   720,
		Status:      domain.EventConfirmed,
	}

	newStart := "10:00"
	reqBody := dto.UpdateEventRequest{StartTime: &newStart}

	suite.mockEventService.On("UpdateEvent", mock.Anything, eventID, mock.AnythingOfType("dto.UpdateEventRequest"), userID).
		Return(nil, &domain.EventConflictError{Conflicting: conflicting}).Once()

	token := suite.generateTestToken(userID, domain.RoleStaff)
	w := suite.doRequest(http.MethodPut, fmt.Sprintf("/api/events/%s", eventID), reqBody, token)

	suite.Equal(http.StatusConflict, w.Code)

	var resp dto.EventConflictResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(conflicting.EventID, resp.ConflictingEvent.EventID)

	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestDeleteEvent_Success() {
	userID := uuid.NewString()
	eventID := uuid.NewString()

	suite.mockEventService.On("DeleteEvent", mock.Anything, eventID, userID).
		Return(nil).Once()

	token := suite.generateTestToken(userID, domain.RoleStaff)
	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/events/%s", eventID), nil, token)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestDeleteEvent_NotFound() {
	userID := uuid.NewString()
	eventID := uuid.NewString()

	suite.mockEventService.On("DeleteEvent", mock.Anything, eventID, userID).
		Return(apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(userID, domain.RoleStaff)
	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/events/%s", eventID), nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockEventService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestEventHandler(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
