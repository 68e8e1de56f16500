package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type CartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) error
	Get(ctx context.Context, userID string) (*model.Cart, error)
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts quantity units of a product into the user's cart, creating the
// cart on first use. Adding a product already in the cart increments its line
// instead of appending a duplicate.
func (s *cartServiceImpl) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}

	cart, err := s.cartRepo.FindByUser(ctx, nil, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.cartRepo.Create(ctx, &model.Cart{
			UserID: userID,
			Items:  []model.CartItem{{ProductID: product.ID, Quantity: quantity}},
		})
	}
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	for _, line := range cart.Items {
		if line.ProductID == product.ID {
			return s.cartRepo.SetItemQuantity(ctx, line.ID, line.Quantity+quantity)
		}
	}

	return s.cartRepo.AddItem(ctx, &model.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  quantity,
	})
}

func (s *cartServiceImpl) Get(ctx context.Context, userID string) (*model.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, nil, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	return cart, nil
}
