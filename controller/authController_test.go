package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/duacyd/analitica/config"
	"github.com/duacyd/analitica/controller"
	customerrors "github.com/duacyd/analitica/customErrors"
	"github.com/duacyd/analitica/models"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func setupAuthController() (*MockAuthService, *controller.AuthController, config.Token) {
	mockService := new(MockAuthService)
	tokens := config.NewJWT("test-secret")
	return mockService, controller.NewAuthController(mockService, tokens), tokens
}

func loginRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(t *testing.T, tokens config.Token) *http.Cookie {
	t.Helper()

	token, err := tokens.GenerateSession(&models.User{
		ID:          1,
		Username:    "admin",
		DisplayName: "Administración DUACyD",
		Role:        "admin",
	})
	require.NoError(t, err)

	return &http.Cookie{Name: config.SessionCookieName, Value: token}
}

func TestLoginBlankFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		form url.Values
	}{
		{name: "Both blank", form: url.Values{"username": {""}, "password": {""}}},
		{name: "Blank username", form: url.Values{"username": {""}, "password": {"x"}}},
		{name: "Blank password", form: url.Values{"username": {"admin"}, "password": {""}}},
		{name: "Whitespace only", form: url.Values{"username": {"  "}, "password": {"  "}}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockService, authController, _ := setupAuthController()
			rr := httptest.NewRecorder()

			err := authController.Login(rr, loginRequest(tc.form))

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), "Completa usuario y contraseña.")
			assert.Empty(t, rr.Header().Get("Location"))
			mockService.AssertNotCalled(t, "Login")
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	mockService, authController, _ := setupAuthController()
	mockService.On("Login", mock.Anything, "admin", "mala").
		Return(nil, customerrors.ErrInvalidCredentials)

	rr := httptest.NewRecorder()
	err := authController.Login(rr, loginRequest(url.Values{
		"username": {"admin"},
		"password": {"mala"},
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Usuario o contraseña inválidos.")
	assert.Empty(t, rr.Result().Cookies())
	mockService.AssertExpectations(t)
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	mockService, authController, tokens := setupAuthController()
	mockService.On("Login", mock.Anything, "admin", "admin_duacyd").
		Return(&models.User{
			ID:          1,
			Username:    "admin",
			DisplayName: "Administración DUACyD",
			Role:        "admin",
		}, nil)

	rr := httptest.NewRecorder()
	err := authController.Login(rr, loginRequest(url.Values{
		"username": {"admin"},
		"password": {"admin_duacyd"},
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, config.SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	claims, err := tokens.ValidateSession(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	mockService.AssertExpectations(t)
}

func TestRootRedirects(t *testing.T) {
	t.Parallel()

	t.Run("Anonymous goes to login", func(t *testing.T) {
		t.Parallel()

		_, authController, _ := setupAuthController()
		rr := httptest.NewRecorder()

		err := authController.Root(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("Authenticated goes to dashboard", func(t *testing.T) {
		t.Parallel()

		_, authController, tokens := setupAuthController()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(sessionCookie(t, tokens))
		rr := httptest.NewRecorder()

		err := authController.Root(rr, req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
	})
}

func TestLoginFormAlreadyAuthenticated(t *testing.T) {
	t.Parallel()

	_, authController, tokens := setupAuthController()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(sessionCookie(t, tokens))
	rr := httptest.NewRecorder()

	err := authController.LoginForm(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
}

func TestLoginFormShowsLogoutNotice(t *testing.T) {
	t.Parallel()

	_, authController, _ := setupAuthController()
	rr := httptest.NewRecorder()

	err := authController.LoginForm(rr, httptest.NewRequest(http.MethodGet, "/login?aviso=sesion-cerrada", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sesión cerrada correctamente.")
}

func TestLogoutIsIdempotent(t *testing.T) {
	t.Parallel()

	_, authController, _ := setupAuthController()

	// No session cookie at all: still a clean redirect.
	rr := httptest.NewRecorder()
	err := authController.Logout(rr, httptest.NewRequest(http.MethodGet, "/logout", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login?aviso=sesion-cerrada", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, config.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
