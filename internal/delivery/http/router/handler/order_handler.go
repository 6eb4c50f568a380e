package handler

import (
	"log/slog"
	"net/http"
	"time"

	"melospizza/internal/delivery/http/middleware"
	"melospizza/internal/delivery/http/response"
	"melospizza/internal/domain/entity"
	domainerrors "melospizza/internal/domain/errors"
	"melospizza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Size     string  `json:"size"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
}

type customerInfoRequest struct {
	PaymentMethod        string `json:"paymentMethod" validate:"required"`
	ShippingAddress      string `json:"shippingAddress" validate:"required"`
	ShippingNeighborhood string `json:"shippingNeighborhood"`
	ContactPhone         string `json:"contactPhone" validate:"required"`
}

type createOrderRequest struct {
	Items        []orderItemRequest  `json:"items" validate:"required,min=1,dive"`
	CustomerInfo customerInfoRequest `json:"customerInfo"`
	TotalAmount  float64             `json:"totalAmount" validate:"gte=0"`
}

type orderItemResponse struct {
	Name     string  `json:"name"`
	Size     string  `json:"size,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type customerInfoResponse struct {
	PaymentMethod        string `json:"paymentMethod"`
	ShippingAddress      string `json:"shippingAddress"`
	ShippingNeighborhood string `json:"shippingNeighborhood,omitempty"`
	ContactPhone         string `json:"contactPhone"`
}

type orderResponse struct {
	ID           string               `json:"id"`
	Items        []orderItemResponse  `json:"items"`
	CustomerInfo customerInfoResponse `json:"customerInfo"`
	TotalAmount  float64              `json:"totalAmount"`
	Status       string               `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// CreateOrder handles the authenticated order submission request.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	authUserID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed order body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.OrderItem{
			Name:     item.Name,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	output, err := h.uc.CreateOrder(c.Request().Context(), authUserID, &usecase.CreateOrderInput{
		Items: items,
		CustomerInfo: entity.CustomerInfo{
			PaymentMethod:        req.CustomerInfo.PaymentMethod,
			ShippingAddress:      req.CustomerInfo.ShippingAddress,
			ShippingNeighborhood: req.CustomerInfo.ShippingNeighborhood,
			ContactPhone:         req.CustomerInfo.ContactPhone,
		},
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.OrderCreated{
		Message: "Pedido guardado exitosamente",
		OrderID: output.OrderID.String(),
	})
}

// GetUserOrders handles the order history request for a given user.
// The body is a bare array, newest order first.
func (h *OrderHandler) GetUserOrders(c echo.Context) error {
	authUserID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	requestedUserID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return domainerrors.NewValidationError("El identificador de usuario no es válido")
	}

	orders, err := h.uc.ListOrdersByUser(c.Request().Context(), authUserID, requestedUserID)
	if err != nil {
		return errors.WithStack(err)
	}

	// An empty history serializes as [], not null.
	body := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		body = append(body, toOrderResponse(order))
	}

	return c.JSON(http.StatusOK, body)
}

// authenticatedUserID reads the verified user ID stored by the auth middleware.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenMissing.WrapMessage("user identity missing from context")
	}

	return userID, nil
}

func toOrderResponse(order *entity.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			Name:     item.Name,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return orderResponse{
		ID:    order.ID.String(),
		Items: items,
		CustomerInfo: customerInfoResponse{
			PaymentMethod:        order.CustomerInfo.PaymentMethod,
			ShippingAddress:      order.CustomerInfo.ShippingAddress,
			ShippingNeighborhood: order.CustomerInfo.ShippingNeighborhood,
			ContactPhone:         order.CustomerInfo.ContactPhone,
		},
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
