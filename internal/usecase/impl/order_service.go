package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "melospizza/internal/delivery/context"
	"melospizza/internal/domain/entity"
	domainerrors "melospizza/internal/domain/errors"
	"melospizza/internal/domain/repository"
	"melospizza/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder validates and persists an order. The owner is always the
// authenticated user; nothing in the payload can redirect it.
func (srv *orderService) CreateOrder(ctx context.Context, authUserID uuid.UUID, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	if err := validateOrder(input); err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:       authUserID,
		Items:        input.Items,
		CustomerInfo: input.CustomerInfo,
		TotalAmount:  input.TotalAmount,
		Status:       entity.StatusPending,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("userID", authUserID.String()),
		slog.Int("items", len(order.Items)),
		slog.Float64("totalAmount", order.TotalAmount),
	)

	return &usecase.CreateOrderOutput{OrderID: order.ID}, nil
}

// ListOrdersByUser returns the requested user's history, newest first.
// Authenticated callers may still only read their own.
func (srv *orderService) ListOrdersByUser(ctx context.Context, authUserID, requestedUserID uuid.UUID) ([]*entity.Order, error) {
	if authUserID != requestedUserID {
		srv.log(ctx).Warn("History access denied",
			slog.String("authUserID", authUserID.String()),
			slog.String("requestedUserID", requestedUserID.String()),
		)

		return nil, domainerrors.ErrForbidden.WrapMessage("history owner mismatch")
	}

	orders, err := srv.orderRepo.ListByUser(ctx, authUserID)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func validateOrder(input *usecase.CreateOrderInput) error {
	var fields []string

	if len(input.Items) == 0 {
		fields = append(fields, "El pedido debe incluir al menos un artículo")
	}
	for i, item := range input.Items {
		if strings.TrimSpace(item.Name) == "" {
			fields = append(fields, fmt.Sprintf("El artículo %d debe tener un nombre", i+1))
		}
		if item.Price < 0 {
			fields = append(fields, fmt.Sprintf("El precio del artículo %d no puede ser negativo", i+1))
		}
		if item.Quantity < 1 {
			fields = append(fields, fmt.Sprintf("La cantidad del artículo %d debe ser al menos 1", i+1))
		}
	}

	if strings.TrimSpace(input.CustomerInfo.PaymentMethod) == "" {
		fields = append(fields, "El método de pago es obligatorio")
	}
	if strings.TrimSpace(input.CustomerInfo.ShippingAddress) == "" {
		fields = append(fields, "La dirección de envío es obligatoria")
	}
	if strings.TrimSpace(input.CustomerInfo.ContactPhone) == "" {
		fields = append(fields, "El teléfono de contacto es obligatorio")
	}

	if input.TotalAmount < 0 {
		fields = append(fields, "El total no puede ser negativo")
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
