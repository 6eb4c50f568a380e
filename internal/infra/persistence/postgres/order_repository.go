package postgres

import (
	"context"

	"melospizza/internal/domain/entity"
	domainerrors "melospizza/internal/domain/errors"
	"melospizza/internal/domain/repository"
	"melospizza/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its line items. GORM's Create
// with associations writes orders and order_items atomically.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("order owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates a database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Propagate the generated ID, status default and timestamps back.
	order.ID = orderM.ID
	order.Status = entity.OrderStatus(orderM.Status)
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// ListByUser returns all orders owned by the given user, newest first.
// Line items are preloaded in submission order.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			Name:     item.Name,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return &entity.Order{
		ID:     data.ID,
		UserID: data.UserID,
		Items:  items,
		CustomerInfo: entity.CustomerInfo{
			PaymentMethod:        data.Customer.PaymentMethod,
			ShippingAddress:      data.Customer.ShippingAddress,
			ShippingNeighborhood: data.Customer.ShippingNeighborhood,
			ContactPhone:         data.Customer.ContactPhone,
		},
		TotalAmount: data.TotalAmount,
		Status:      entity.OrderStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			Position: i,
			Name:     item.Name,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	// Anything outside the known states, the empty string included, is
	// stored as pending; the check constraint would reject it anyway.
	status := data.Status
	if !status.Valid() {
		status = entity.StatusPending
	}

	return &model.OrderModel{
		ID:     data.ID,
		UserID: data.UserID,
		Items:  items,
		Customer: model.CustomerInfoModel{
			PaymentMethod:        data.CustomerInfo.PaymentMethod,
			ShippingAddress:      data.CustomerInfo.ShippingAddress,
			ShippingNeighborhood: data.CustomerInfo.ShippingNeighborhood,
			ContactPhone:         data.CustomerInfo.ContactPhone,
		},
		TotalAmount: data.TotalAmount,
		Status:      string(status),
	}
}
