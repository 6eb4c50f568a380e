package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverymiddleware "melospizza/internal/delivery/http/middleware"
	"melospizza/internal/delivery/http/validator"
	domainerrors "melospizza/internal/domain/errors"
	mockUC "melospizza/internal/mocks/usecase"
	"melospizza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an echo instance with the same validator and error
// handling the real server uses, so tests observe the wire-level bodies.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := &mockUC.MockAuthUsecase{}
	userID := uuid.New()

	uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret1",
	}).Return(&usecase.RegisterOutput{UserID: userID}, nil)

	h := NewAuthHandler(uc, slog.Default())
	e.POST("/api/register", h.Register)

	rec := postJSON(e, "/api/register", `{"username":"ana","email":"ana@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Usuario registrado exitosamente", body["message"])
	assert.Equal(t, userID.String(), body["userId"])
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e := newTestEcho(t)
	uc := &mockUC.MockAuthUsecase{}

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUsernameTaken.WrapMessage("username already registered"))

	h := NewAuthHandler(uc, slog.Default())
	e.POST("/api/register", h.Register)

	rec := postJSON(e, "/api/register", `{"username":"ana","email":"ana@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "USERNAME_TAKEN", body["code"])
	assert.Equal(t, "El nombre de usuario ya está registrado", body["message"])
}

func TestAuthHandler_Register_ValidationErrorBody(t *testing.T) {
	e := newTestEcho(t)
	uc := &mockUC.MockAuthUsecase{}

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError("La contraseña debe tener al menos 6 caracteres"))

	h := NewAuthHandler(uc, slog.Default())
	e.POST("/api/register", h.Register)

	rec := postJSON(e, "/api/register", `{"username":"ana","email":"ana@example.com","password":"123"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Message string   `json:"message"`
		Code    string   `json:"code"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.Equal(t, []string{"La contraseña debe tener al menos 6 caracteres"}, body.Errors)
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&mockUC.MockAuthUsecase{}, slog.Default())
	e.POST("/api/register", h.Register)

	rec := postJSON(e, "/api/register", `{"username":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := &mockUC.MockAuthUsecase{}
	userID := uuid.New()

	uc.On("Login", mock.Anything, &usecase.LoginInput{
		UsernameOrEmail: "ana",
		Password:        "secret1",
	}).Return(&usecase.LoginOutput{Token: "signed-token", UserID: userID, Username: "ana"}, nil)

	h := NewAuthHandler(uc, slog.Default())
	e.POST("/api/login", h.Login)

	rec := postJSON(e, "/api/login", `{"usernameOrEmail":"ana","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Inicio de sesión exitoso", body["message"])
	assert.Equal(t, "signed-token", body["token"])
	assert.Equal(t, userID.String(), body["userId"])
	assert.Equal(t, "ana", body["username"])
}

// The storefront sends the identifier as "usernameOrEmail"; that wire name
// is part of the contract and must reach the workflow intact.
func TestAuthHandler_Login_BindsIdentifierFromWireField(t *testing.T) {
	e := newTestEcho(t)
	uc := &mockUC.MockAuthUsecase{}

	uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{Token: "signed-token", UserID: uuid.New(), Username: "ana"}, nil)

	h := NewAuthHandler(uc, slog.Default())
	e.POST("/api/login", h.Login)

	rec := postJSON(e, "/api/login", `{"usernameOrEmail":"ana@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	input := uc.Calls[0].Arguments.Get(1).(*usecase.LoginInput)
	assert.Equal(t, "ana@example.com", input.UsernameOrEmail)
	assert.Equal(t, "secret1", input.Password)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho(t)
	uc := &mockUC.MockAuthUsecase{}

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	h := NewAuthHandler(uc, slog.Default())
	e.POST("/api/login", h.Login)

	rec := postJSON(e, "/api/login", `{"usernameOrEmail":"ana","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
	assert.Equal(t, "Credenciales inválidas", body["message"])
	// The body never says whether the account exists.
	assert.NotContains(t, rec.Body.String(), "mismatch")
}
