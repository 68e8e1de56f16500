package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"
	"storefront-api/internal/token"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string, role model.Role) error
	Login(ctx context.Context, email, password string) (string, error)

	Favorites(ctx context.Context, userID string) ([]*model.Product, error)
	AddFavorite(ctx context.Context, userID, productID string) ([]*model.Product, error)
	RemoveFavorite(ctx context.Context, userID, productID string) ([]*model.Product, error)

	Users(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userServiceImpl struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	issuer      *token.Issuer
}

func NewUserService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	issuer *token.Issuer,
) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		productRepo: productRepo,
		issuer:      issuer,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, username, email, password string, role model.Role) error {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.userRepo.Create(ctx, &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
}

func (s *userServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return signed, nil
}

func (s *userServiceImpl) Favorites(ctx context.Context, userID string) ([]*model.Product, error) {
	return s.userRepo.Favorites(ctx, userID)
}

func (s *userServiceImpl) AddFavorite(ctx context.Context, userID, productID string) ([]*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}

	already, err := s.userRepo.IsFavorite(ctx, userID, product.ID)
	if err != nil {
		return nil, fmt.Errorf("check favorite: %w", err)
	}
	if already {
		return nil, ErrAlreadyFavorite
	}

	if err := s.userRepo.AddFavorite(ctx, userID, product); err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	return s.userRepo.Favorites(ctx, userID)
}

func (s *userServiceImpl) RemoveFavorite(ctx context.Context, userID, productID string) ([]*model.Product, error) {
	if err := s.userRepo.RemoveFavorite(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("remove favorite: %w", err)
	}

	return s.userRepo.Favorites(ctx, userID)
}

func (s *userServiceImpl) Users(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if deleted == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
