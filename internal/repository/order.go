package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"storefront-api/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, db *gorm.DB, order *model.Order) error
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	FindLatestByUser(ctx context.Context, userID string) (*model.Order, error)
	FindByAuthority(ctx context.Context, authority string) (*model.Order, error)
	SetAuthority(ctx context.Context, orderID, authority string) error
	// MarkPaid transitions a pending order to paid, keyed by the gateway
	// authority. Returns gorm.ErrRecordNotFound when no pending order matches.
	MarkPaid(ctx context.Context, authority, refID string) (*model.Order, error)
	MarkFailed(ctx context.Context, authority string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

// Create accepts the handle to run on so checkout can persist the order
// inside its transaction; pass nil outside one.
func (r *orderRepoImpl) Create(ctx context.Context, db *gorm.DB, order *model.Order) error {
	if db == nil {
		db = r.db
	}
	return db.WithContext(ctx).Omit("Items.Product").Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindLatestByUser(ctx context.Context, userID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByAuthority(ctx context.Context, authority string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("payment_authority = ?", authority).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) SetAuthority(ctx context.Context, orderID, authority string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_authority": authority,
			"updated_at":        time.Now(),
		}).Error
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, authority, refID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Order{}).
			Where("payment_authority = ? AND status = ?", authority, model.OrderPending).
			Updates(map[string]interface{}{
				"status":         model.OrderPaid,
				"payment_ref_id": refID,
				"updated_at":     time.Now(),
			})

		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("payment_authority = ?", authority).First(&order).Error
	})

	return &order, err
}

func (r *orderRepoImpl) MarkFailed(ctx context.Context, authority string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("payment_authority = ? AND status = ?", authority, model.OrderPending).
		Updates(map[string]interface{}{
			"status":     model.OrderFailed,
			"updated_at": time.Now(),
		}).Error
}
