package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Customer info is embedded as
// customer_* columns; line items live in 'order_items' and are written
// together with the order.
type OrderModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	Items       []OrderItemModel  `gorm:"foreignKey:OrderID"`
	Customer    CustomerInfoModel `gorm:"embedded;embeddedPrefix:customer_"`
	TotalAmount float64           `gorm:"type:numeric(12,2);not null"`
	Status      string            `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time         `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// CustomerInfoModel holds the embedded customer_* columns of an order.
type CustomerInfoModel struct {
	PaymentMethod        string `gorm:"type:varchar(50);not null"`
	ShippingAddress      string `gorm:"type:varchar(255);not null"`
	ShippingNeighborhood string `gorm:"type:varchar(100)"`
	ContactPhone         string `gorm:"type:varchar(30);not null"`
}

// OrderItemModel mirrors the 'order_items' table. Position preserves the
// order of the lines as submitted.
type OrderItemModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"not null"`
	Name     string    `gorm:"type:varchar(100);not null"`
	Size     string    `gorm:"type:varchar(50)"`
	Price    float64   `gorm:"type:numeric(12,2);not null"`
	Quantity int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
