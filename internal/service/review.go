package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type ReviewService interface {
	Create(ctx context.Context, userID, productID, comment string, rating int) (*model.Review, error)
	Reviews(ctx context.Context) ([]*model.Review, error)
	Delete(ctx context.Context, id uint) error
}

type reviewServiceImpl struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
) ReviewService {
	return &reviewServiceImpl{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func (s *reviewServiceImpl) Create(ctx context.Context, userID, productID, comment string, rating int) (*model.Review, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("load product: %w", err)
	}

	review := &model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("store review: %w", err)
	}

	return review, nil
}

func (s *reviewServiceImpl) Reviews(ctx context.Context) ([]*model.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *reviewServiceImpl) Delete(ctx context.Context, id uint) error {
	deleted, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if deleted == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
