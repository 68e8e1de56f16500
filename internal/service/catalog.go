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

type CatalogService interface {
	CreateProduct(ctx context.Context, name string, price float64, categoryID *uint, description, image string) (*model.Product, error)
	Products(ctx context.Context, categoryID *uint) ([]*model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	Categories(ctx context.Context) ([]*model.Category, error)
}

type catalogServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) CatalogService {
	return &catalogServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, name string, price float64, categoryID *uint, description, image string) (*model.Product, error) {
	product := &model.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       decimal.NewFromFloat(price),
		CategoryID:  categoryID,
		Description: description,
		ImageURL:    image,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("store product: %w", err)
	}

	return product, nil
}

func (s *catalogServiceImpl) Products(ctx context.Context, categoryID *uint) ([]*model.Product, error) {
	return s.productRepo.List(ctx, categoryID)
}

func (s *catalogServiceImpl) Product(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}

	return product, nil
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if deleted == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	category := &model.Category{Name: name, Description: description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("store category: %w", err)
	}

	return category, nil
}

func (s *catalogServiceImpl) Categories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.List(ctx)
}
