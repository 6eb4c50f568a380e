package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverymiddleware "melospizza/internal/delivery/http/middleware"
	"melospizza/internal/domain/entity"
	domainerrors "melospizza/internal/domain/errors"
	"melospizza/internal/domain/service"
	mockSvc "melospizza/internal/mocks/service"
	mockUC "melospizza/internal/mocks/usecase"
	"melospizza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validOrderBody = `{
	"items": [
		{"name": "Pizza Hawaiana", "size": "familiar", "price": 35000, "quantity": 1},
		{"name": "Gaseosa", "price": 5000, "quantity": 2}
	],
	"customerInfo": {
		"paymentMethod": "efectivo",
		"shippingAddress": "Calle 10 #5-32",
		"shippingNeighborhood": "Centro",
		"contactPhone": "3001234567"
	},
	"totalAmount": 45000
}`

// orderTestServer wires the order routes exactly like the real router,
// with a stubbed token service behind the auth middleware.
func orderTestServer(t *testing.T, uc usecase.OrderUsecase, authUserID uuid.UUID) *echo.Echo {
	t.Helper()

	tokenSvc := &mockSvc.MockTokenService{}
	tokenSvc.On("Verify", "good-token").Return(&service.Claims{UserID: authUserID}, nil)
	tokenSvc.On("Verify", mock.Anything).Return(nil, domainerrors.ErrTokenInvalid)
	authMw := deliverymiddleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho(t)
	h := NewOrderHandler(uc, slog.Default())
	e.POST("/api/orders", h.CreateOrder, authMw.Authenticate)
	e.GET("/api/users/:userId/orders", h.GetUserOrders, authMw.Authenticate)

	return e
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestOrderHandler_CreateOrder_Success(t *testing.T) {
	authUserID := uuid.New()
	orderID := uuid.New()
	uc := &mockUC.MockOrderUsecase{}

	uc.On("CreateOrder", mock.Anything, authUserID, mock.AnythingOfType("*usecase.CreateOrderInput")).
		Return(&usecase.CreateOrderOutput{OrderID: orderID}, nil)

	e := orderTestServer(t, uc, authUserID)
	rec := doRequest(e, http.MethodPost, "/api/orders", "good-token", validOrderBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Pedido guardado exitosamente", body["message"])
	assert.Equal(t, orderID.String(), body["orderId"])

	// The owner comes from the token, regardless of the payload.
	input := uc.Calls[0].Arguments.Get(2).(*usecase.CreateOrderInput)
	assert.Len(t, input.Items, 2)
	assert.Equal(t, "efectivo", input.CustomerInfo.PaymentMethod)
	assert.InDelta(t, 45000, input.TotalAmount, 0.001)
}

func TestOrderHandler_CreateOrder_RequiresToken(t *testing.T) {
	uc := &mockUC.MockOrderUsecase{}
	e := orderTestServer(t, uc, uuid.New())

	rec := doRequest(e, http.MethodPost, "/api/orders", "", validOrderBody)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_CreateOrder_RejectsBadToken(t *testing.T) {
	uc := &mockUC.MockOrderUsecase{}
	e := orderTestServer(t, uc, uuid.New())

	rec := doRequest(e, http.MethodPost, "/api/orders", "expired-token", validOrderBody)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TOKEN_INVALID", body["code"])
}

func TestOrderHandler_CreateOrder_TagValidation(t *testing.T) {
	uc := &mockUC.MockOrderUsecase{}
	e := orderTestServer(t, uc, uuid.New())

	// Empty items array fails the structural tags before the workflow runs.
	rec := doRequest(e, http.MethodPost, "/api/orders", "good-token", `{
		"items": [],
		"customerInfo": {"paymentMethod": "efectivo", "shippingAddress": "Calle 10", "contactPhone": "300"},
		"totalAmount": 10000
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code   string   `json:"code"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.NotEmpty(t, body.Errors)
	uc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_GetUserOrders_Success(t *testing.T) {
	authUserID := uuid.New()
	uc := &mockUC.MockOrderUsecase{}

	now := time.Now()
	uc.On("ListOrdersByUser", mock.Anything, authUserID, authUserID).Return([]*entity.Order{
		{
			ID:     uuid.New(),
			UserID: authUserID,
			Items: []entity.OrderItem{
				{Name: "Pizza Hawaiana", Size: "familiar", Price: 35000, Quantity: 1},
			},
			CustomerInfo: entity.CustomerInfo{
				PaymentMethod:   "efectivo",
				ShippingAddress: "Calle 10 #5-32",
				ContactPhone:    "3001234567",
			},
			TotalAmount: 35000,
			Status:      entity.StatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}, nil)

	e := orderTestServer(t, uc, authUserID)
	rec := doRequest(e, http.MethodGet, "/api/users/"+authUserID.String()+"/orders", "good-token", "")

	require.Equal(t, http.StatusOK, rec.Code)

	// The history body is a bare array.
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "pending", body[0]["status"])
	assert.InDelta(t, 35000, body[0]["totalAmount"].(float64), 0.001)
}

func TestOrderHandler_GetUserOrders_EmptyHistoryIsEmptyArray(t *testing.T) {
	authUserID := uuid.New()
	uc := &mockUC.MockOrderUsecase{}
	uc.On("ListOrdersByUser", mock.Anything, authUserID, authUserID).Return([]*entity.Order{}, nil)

	e := orderTestServer(t, uc, authUserID)
	rec := doRequest(e, http.MethodGet, "/api/users/"+authUserID.String()+"/orders", "good-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestOrderHandler_GetUserOrders_ForbiddenForOtherUser(t *testing.T) {
	authUserID := uuid.New()
	otherUserID := uuid.New()
	uc := &mockUC.MockOrderUsecase{}

	uc.On("ListOrdersByUser", mock.Anything, authUserID, otherUserID).
		Return(nil, domainerrors.ErrForbidden.WrapMessage("history owner mismatch"))

	e := orderTestServer(t, uc, authUserID)
	rec := doRequest(e, http.MethodGet, "/api/users/"+otherUserID.String()+"/orders", "good-token", "")

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FORBIDDEN", body["code"])
	assert.Equal(t, "Prohibido. No puedes acceder al historial de otros usuarios", body["message"])
}

func TestOrderHandler_GetUserOrders_MalformedUserID(t *testing.T) {
	uc := &mockUC.MockOrderUsecase{}
	e := orderTestServer(t, uc, uuid.New())

	rec := doRequest(e, http.MethodGet, "/api/users/not-a-uuid/orders", "good-token", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "ListOrdersByUser", mock.Anything, mock.Anything, mock.Anything)
}
