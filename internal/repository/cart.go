package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront-api/internal/model"
)

type CartRepository interface {
	FindByUser(ctx context.Context, db *gorm.DB, userID string) (*model.Cart, error)
	Create(ctx context.Context, cart *model.Cart) error
	AddItem(ctx context.Context, item *model.CartItem) error
	SetItemQuantity(ctx context.Context, itemID uint, quantity int) error
	// DeleteByUser removes the cart row and its items, reporting how many cart
	// rows were actually deleted so callers can detect a cart that is already
	// gone.
	DeleteByUser(ctx context.Context, db *gorm.DB, userID string) (int64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{db: db}
}

// FindByUser accepts the handle to run on so checkout can read the cart
// inside its transaction; pass nil for a plain read.
func (r *cartRepoImpl) FindByUser(ctx context.Context, db *gorm.DB, userID string) (*model.Cart, error) {
	if db == nil {
		db = r.db
	}

	var cart model.Cart
	err := db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepoImpl) Create(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Omit("Items.Product").Create(cart).Error
}

func (r *cartRepoImpl) AddItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Omit("Product").Create(item).Error
}

func (r *cartRepoImpl) SetItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *cartRepoImpl) DeleteByUser(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	if db == nil {
		db = r.db
	}

	var cart model.Cart
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return 0, err
	}

	// The cart row is the guard: whichever transaction deletes it owns the
	// cart's contents, a concurrent competitor sees zero rows.
	res := db.WithContext(ctx).Where("id = ?", cart.ID).Delete(&model.Cart{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, nil
	}

	err = db.WithContext(ctx).Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error
	if err != nil {
		return 0, err
	}

	return res.RowsAffected, nil
}
