package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type CheckoutService interface {
	Checkout(ctx context.Context, userID string) (*model.Order, error)
	LatestOrder(ctx context.Context, userID string) (*model.Order, error)
}

type checkoutServiceImpl struct {
	db        *gorm.DB
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:        db,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
	}
}

// Checkout converts the user's cart into a pending order. The whole
// conversion runs in one transaction: the cart row is deleted before the
// order is created, so a concurrent checkout for the same user observes an
// already-cleared cart and fails with ErrEmptyCart instead of producing a
// second order, and an order persistence failure rolls the deletion back.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, userID string) (*model.Order, error) {
	var order *model.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.cartRepo.FindByUser(ctx, tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmptyCart
		}
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		items := make([]model.OrderItem, len(cart.Items))
		for i, line := range cart.Items {
			total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items[i] = model.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.Product.Price,
			}
		}

		deleted, err := s.cartRepo.DeleteByUser(ctx, tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmptyCart
		}
		if err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		if deleted == 0 {
			// a concurrent checkout consumed the cart first
			return ErrEmptyCart
		}

		order = &model.Order{
			ID:          uuid.NewString(),
			UserID:      userID,
			Items:       items,
			TotalAmount: total,
			Status:      model.OrderPending,
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *checkoutServiceImpl) LatestOrder(ctx context.Context, userID string) (*model.Order, error) {
	order, err := s.orderRepo.FindLatestByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	return order, nil
}
