package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront-api/internal/model"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  *uint   `json:"categoryId" validate:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateReviewRequest struct {
	Comment string `json:"comment" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

type CreateDiscountRequest struct {
	DiscountPercentage int       `json:"discountPercentage" validate:"required,min=1,max=100"`
	ExpiresAt          time.Time `json:"expiresAt" validate:"required"`
}

type PayRequest struct {
	OrderID     string `json:"orderId" validate:"required"`
	Description string `json:"description"`
}

type PayResponse struct {
	PaymentURL string `json:"payment_url"`
}

type VerifyResponse struct {
	Message string `json:"message"`
	RefID   string `json:"ref_id"`
}

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type CartResponse struct {
	UserID string             `json:"user"`
	Items  []CartItemResponse `json:"items"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uint           `json:"categoryId,omitempty"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
}

type OrderItemResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Status      model.OrderStatus   `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Image:       p.ImageURL,
	}
}

func NewCartResponse(cart *model.Cart) *CartResponse {
	resp := &CartResponse{UserID: cart.UserID, Items: make([]CartItemResponse, len(cart.Items))}
	for i, item := range cart.Items {
		resp.Items[i] = CartItemResponse{
			Product:  NewProductResponse(&item.Product),
			Quantity: item.Quantity,
		}
	}
	return resp
}

func NewOrderResponse(order *model.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Items:       make([]OrderItemResponse, len(order.Items)),
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}
	for i, item := range order.Items {
		resp.Items[i] = OrderItemResponse{
			Product:   NewProductResponse(&item.Product),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return resp
}
