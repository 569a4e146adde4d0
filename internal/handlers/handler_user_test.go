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
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	jwtSecret       string
}

func (suite *UserHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
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

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "buffet-test",
		LoginRateLimit:    "5-M",
	}

	suite.mockUserService = new(MockUserService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		User: suite.mockUserService,
	})
}

func (suite *UserHandlerTestSuite) doRequest(method, url string, body interface{}, token string) *httptest.ResponseRecorder {
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

// --- Auth Tests ---

func (suite *UserHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{
		UserID:   uuid.NewString(),
		Username: "ana.lima",
		Email:    "ana.lima@buffetjuniors.com",
		Name:     "Ana Lima",
		Role:     domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().Add(-24 * time.Hour),
		},
	}

	suite.mockUserService.On("AuthenticateUser", mock.Anything, "ana.lima", "sup3r-secret").
		Return(user, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Username: "ana.lima",
		Password: "sup3r-secret",
	}, "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.Equal(user.UserID, resp.User.UserID)
	suite.Equal(domain.RoleAdmin, resp.User.Role)

	// The minted token must carry the claims the auth middleware relies on.
	parsed, err := jwt.ParseWithClaims(resp.Token, &middleware.AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.jwtSecret), nil
	})
	suite.Require().NoError(err)
	claims, ok := parsed.Claims.(*middleware.AuthClaims)
	suite.Require().True(ok)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(string(domain.RoleAdmin), claims.Role)
	suite.Equal("buffet-test", claims.Issuer)

	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "ana.lima", "wrong").
		Return(nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)).Once()

	w := suite.doRequest(http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Username: "ana.lima",
		Password: "wrong",
	}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid username or password")
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestLogin_MissingPassword() {
	w := suite.doRequest(http.MethodPost, "/api/auth/login", gin.H{"username": "ana.lima"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "AuthenticateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestMe_Success() {
	userID := uuid.NewString()

	user := &domain.User{
		UserID:   userID,
		Username: "ana.lima",
		Email:    "ana.lima@buffetjuniors.com",
		Name:     "Ana Lima",
		Role:     domain.RoleAdmin,
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).
		Return(user, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodGet, "/api/auth/me", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.UserID)
	suite.Equal("ana.lima", resp.Username)

	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestMe_MissingToken() {
	w := suite.doRequest(http.MethodGet, "/api/auth/me", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestRegister_Success() {
	newUser := &domain.User{
		UserID:   uuid.NewString(),
		Username: "carla.souza",
		Email:    "carla.souza@example.com",
		Name:     "Carla Souza",
		Role:     domain.RoleStaff,
	}

	suite.mockUserService.On("Register", mock.Anything, mock.MatchedBy(func(req dto.RegisterRequest) bool {
		return req.Username == "carla.souza" && req.Email == "carla.souza@example.com"
	})).Return(newUser, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Username: "carla.souza",
		Email:    "carla.souza@example.com",
		Name:     "Carla Souza",
		Password: "long-enough-password",
	}, "")

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(newUser.UserID, resp.UserID)
	suite.Equal(domain.RoleStaff, resp.Role)

	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestRegister_DuplicateUsername() {
	suite.mockUserService.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, fmt.Errorf("%w: username carla.souza is already taken", apperrors.ErrDuplicate)).Once()

	w := suite.doRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Username: "carla.souza",
		Email:    "carla.souza@example.com",
		Name:     "Carla Souza",
		Password: "long-enough-password",
	}, "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "already taken")
	suite.mockUserService.AssertExpectations(suite.T())
}

// --- User Route Tests ---

func (suite *UserHandlerTestSuite) TestCreateUser_AdminCreates() {
	adminID := uuid.NewString()

	created := &domain.User{
		UserID:   uuid.NewString(),
		Username: "parttimer",
		Email:    "parttimer@buffetjuniors.com",
		Name:     "Part Timer",
		Role:     domain.RoleStaff,
	}

	suite.mockUserService.On("CreateUser",
		mock.AnythingOfType("*context.valueCtx"), // Context carries identity set by the middleware
		mock.MatchedBy(func(req dto.CreateUserRequest) bool {
			return req.Username == "parttimer" && req.Role == domain.RoleStaff
		}),
		adminID,
	).Return(created, nil).Once()

	token := suite.generateTestToken(adminID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodPost, "/api/users", dto.CreateUserRequest{
		Username: "parttimer",
		Email:    "parttimer@buffetjuniors.com",
		Name:     "Part Timer",
		Password: "long-enough-password",
		Role:     domain.RoleStaff,
	}, token)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.UserID, resp.UserID)

	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestCreateUser_StaffForbidden() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)
	w := suite.doRequest(http.MethodPost, "/api/users", dto.CreateUserRequest{
		Username: "parttimer",
		Email:    "parttimer@buffetjuniors.com",
		Name:     "Part Timer",
		Password: "long-enough-password",
		Role:     domain.RoleStaff,
	}, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "Admin access required")
	suite.mockUserService.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestListUsers_StaffForbidden() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)
	w := suite.doRequest(http.MethodGet, "/api/users", nil, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "ListUsers", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestGetUser_OwnProfile() {
	userID := uuid.NewString()

	user := &domain.User{
		UserID:   userID,
		Username: "carla.souza",
		Email:    "carla.souza@example.com",
		Name:     "Carla Souza",
		Role:     domain.RoleStaff,
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).
		Return(user, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleStaff)
	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/users/%s", userID), nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.UserID)

	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetUser_OtherProfileForbidden() {
	// Staff may only read their own profile; admins may read anyone's.
	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)
	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/users/%s", uuid.NewString()), nil, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_AdminDeletesOther() {
	adminID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mockUserService.On("DeleteUser", mock.Anything, targetID, adminID).
		Return(nil).Once()

	token := suite.generateTestToken(adminID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/users/%s", targetID), nil, token)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestDeleteUser_SelfDeletionForbidden() {
	adminID := uuid.NewString()

	suite.mockUserService.On("DeleteUser", mock.Anything, adminID, adminID).
		Return(fmt.Errorf("%w: users cannot delete their own account", apperrors.ErrForbidden)).Once()

	token := suite.generateTestToken(adminID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/users/%s", adminID), nil, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "cannot delete their own account")
	suite.mockUserService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
