package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"snsbridge/internal/delivery/http/validator"
	"snsbridge/internal/domain/entity"
	domainerrors "snsbridge/internal/domain/errors"
	mockUsecase "snsbridge/internal/mocks/usecase"
	"snsbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistrationTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/amazon-sns/subscribe", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRegistrationHandler_Subscribe(t *testing.T) {
	registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: registrationUC, logger: slog.Default()}

	userID := uuid.New()
	body := `{"token":"123123123123","application_name":"discourse","platform":"ios"}`
	c, rec := newRegistrationTestContext(t, body)
	c.Set("userID", userID)

	registrationUC.EXPECT().
		Register(c.Request().Context(), userID, &usecase.RegistrationInfo{
			Token:           "123123123123",
			ApplicationName: "discourse",
			Platform:        "ios",
		}).
		Return(&entity.Registration{
			ID:          uuid.New(),
			UserID:      userID,
			DeviceToken: "123123123123",
			Platform:    entity.PlatformIOS,
			EndpointARN: "sample:arn",
			Status:      entity.StatusEnabled,
		}, nil)

	err := h.Subscribe(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "sample:arn")
	assert.Contains(t, responseBody, `"status":"enabled"`)
}

func TestRegistrationHandler_Subscribe_MissingUserID(t *testing.T) {
	registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: registrationUC, logger: slog.Default()}

	body := `{"token":"123123123123","application_name":"discourse","platform":"ios"}`
	c, rec := newRegistrationTestContext(t, body)

	err := h.Subscribe(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_access")
}

func TestRegistrationHandler_Subscribe_MissingFields(t *testing.T) {
	registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: registrationUC, logger: slog.Default()}

	c, rec := newRegistrationTestContext(t, `{"token":"123123123123"}`)
	c.Set("userID", uuid.New())

	err := h.Subscribe(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_parameters")
}

func TestRegistrationHandler_Subscribe_InvalidPlatform(t *testing.T) {
	registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: registrationUC, logger: slog.Default()}

	userID := uuid.New()
	body := `{"token":"123123123123","application_name":"discourse","platform":"windows"}`
	c, rec := newRegistrationTestContext(t, body)
	c.Set("userID", userID)

	registrationUC.EXPECT().
		Register(c.Request().Context(), userID, &usecase.RegistrationInfo{
			Token:           "123123123123",
			ApplicationName: "discourse",
			Platform:        "windows",
		}).
		Return(nil, domainerrors.ErrInvalidPlatform)

	err := h.Subscribe(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "invalid_parameters")
	assert.Contains(t, responseBody, "Platform parameter should be ios or android.")
}

func TestRegistrationHandler_Subscribe_EndpointCreationFailed(t *testing.T) {
	registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: registrationUC, logger: slog.Default()}

	userID := uuid.New()
	body := `{"token":"123123123123","application_name":"discourse","platform":"ios"}`
	c, rec := newRegistrationTestContext(t, body)
	c.Set("userID", userID)

	registrationUC.EXPECT().
		Register(c.Request().Context(), userID, &usecase.RegistrationInfo{
			Token:           "123123123123",
			ApplicationName: "discourse",
			Platform:        "ios",
		}).
		Return(nil, domainerrors.ErrEndpointCreationFailed)

	err := h.Subscribe(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing endpoint_arn.")
}

func TestRegistrationHandler_Disable(t *testing.T) {
	registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: registrationUC, logger: slog.Default()}

	userID := uuid.New()
	c, rec := newRegistrationTestContext(t, `{"token":"123123123123"}`)
	c.Set("userID", userID)

	registrationUC.EXPECT().
		Disable(c.Request().Context(), "123123123123").
		Return(&entity.Registration{
			ID:          uuid.New(),
			UserID:      userID,
			DeviceToken: "123123123123",
			Platform:    entity.PlatformIOS,
			EndpointARN: "sample:arn",
			Status:      entity.StatusDisabled,
		}, nil)

	err := h.Disable(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"disabled"`)
}

func TestRegistrationHandler_Disable_NotFound(t *testing.T) {
	registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: registrationUC, logger: slog.Default()}

	c, rec := newRegistrationTestContext(t, `{"token":"unknown-token"}`)
	c.Set("userID", uuid.New())

	registrationUC.EXPECT().
		Disable(c.Request().Context(), "unknown-token").
		Return(nil, domainerrors.ErrRegistrationNotFound)

	err := h.Disable(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
