package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderFailed    OrderStatus = "failed"
	OrderCancelled OrderStatus = "cancelled"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36;not null"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	Email        string `gorm:"size:128;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`
	Role         Role   `gorm:"size:16;not null"`

	Favorites []Product `gorm:"many2many:user_favorites"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:64;uniqueIndex;not null"`
	Description string `gorm:"size:512"`
	CreatedAt   time.Time
}

type Product struct {
	ID          string          `gorm:"primaryKey;size:36;not null"`
	Name        string          `gorm:"size:128;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoryID  *uint           `gorm:"index"`
	Category    *Category
	Description string `gorm:"size:1024"`
	ImageURL    string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Cart holds a user's pending purchase intents. One cart per user, deleted
// (not archived) when checkout converts it into an Order.
type Cart struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:36;uniqueIndex;not null"`
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID        uint   `gorm:"primaryKey"`
	CartID    uint   `gorm:"index;not null"`
	ProductID string `gorm:"size:36;not null"`
	Product   Product
	Quantity  int `gorm:"not null"`
}

// Order is the frozen result of a checkout. Only Status and the gateway
// correlation fields change after creation.
type Order struct {
	ID          string `gorm:"primaryKey;size:36;not null"`
	UserID      string `gorm:"size:36;index;not null"`
	Items       []OrderItem
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status      OrderStatus     `gorm:"size:16;index;not null"`

	// PaymentAuthority correlates this order with a gateway payment attempt.
	PaymentAuthority string `gorm:"size:64;index"`
	PaymentRefID     string `gorm:"size:64"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   string `gorm:"size:36;index;not null"`
	ProductID string `gorm:"size:36;not null"`
	Product   Product
	Quantity  int `gorm:"not null"`
	// UnitPrice is the product price at checkout time, so the order total
	// stays reproducible after later price changes.
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
}

type Review struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:36;index;not null"`
	ProductID string `gorm:"size:36;index;not null"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"size:1024;not null"`
	CreatedAt time.Time
}

type DiscountCode struct {
	ID                 uint   `gorm:"primaryKey"`
	Code               string `gorm:"size:64;uniqueIndex;not null"`
	DiscountPercentage int    `gorm:"not null"`
	ExpiresAt          time.Time
	CreatedAt          time.Time
}
