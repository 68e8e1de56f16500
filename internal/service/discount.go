package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type DiscountService interface {
	Create(ctx context.Context, percentage int, expiresAt time.Time) (*model.DiscountCode, error)
	Discounts(ctx context.Context) ([]*model.DiscountCode, error)
	Delete(ctx context.Context, id uint) error
}

type discountServiceImpl struct {
	discountRepo repository.DiscountRepository
}

func NewDiscountService(discountRepo repository.DiscountRepository) DiscountService {
	return &discountServiceImpl{discountRepo: discountRepo}
}

func (s *discountServiceImpl) Create(ctx context.Context, percentage int, expiresAt time.Time) (*model.DiscountCode, error) {
	code := &model.DiscountCode{
		Code:               uuid.NewString(),
		DiscountPercentage: percentage,
		ExpiresAt:          expiresAt,
	}
	if err := s.discountRepo.Create(ctx, code); err != nil {
		return nil, fmt.Errorf("store discount code: %w", err)
	}

	return code, nil
}

func (s *discountServiceImpl) Discounts(ctx context.Context) ([]*model.DiscountCode, error) {
	return s.discountRepo.List(ctx)
}

func (s *discountServiceImpl) Delete(ctx context.Context, id uint) error {
	deleted, err := s.discountRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete discount code: %w", err)
	}
	if deleted == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
