package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront-api/internal/model"
)

type DiscountRepository interface {
	Create(ctx context.Context, code *model.DiscountCode) error
	List(ctx context.Context) ([]*model.DiscountCode, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type discountRepoImpl struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepoImpl{db: db}
}

func (r *discountRepoImpl) Create(ctx context.Context, code *model.DiscountCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *discountRepoImpl) List(ctx context.Context) ([]*model.DiscountCode, error) {
	var codes []*model.DiscountCode
	err := r.db.WithContext(ctx).Find(&codes).Error
	if err != nil {
		return nil, err
	}

	return codes, nil
}

func (r *discountRepoImpl) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DiscountCode{})
	return res.RowsAffected, res.Error
}
