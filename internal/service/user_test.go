package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront-api/internal/model"
	"storefront-api/internal/repository"
	"storefront-api/internal/token"
)

func newUsers(db *gorm.DB) UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewProductRepository(db),
		token.NewIssuer("test-secret", time.Hour),
	)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newUsers(db)

	err := svc.Register(testCtx(), "john", "john@example.com", "secret123", model.RoleCustomer)
	require.NoError(t, err)

	raw, err := svc.Login(testCtx(), "john@example.com", "secret123")
	require.NoError(t, err)

	id, err := token.NewVerifier("test-secret").Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, id.Role)
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newUsers(db)

	require.NoError(t, svc.Register(testCtx(), "john", "john@example.com", "secret123", model.RoleCustomer))

	err := svc.Register(testCtx(), "john", "other@example.com", "secret123", model.RoleCustomer)
	assert.ErrorIs(t, err, ErrUserExists)

	err = svc.Register(testCtx(), "other", "john@example.com", "secret123", model.RoleCustomer)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUsers(db)

	require.NoError(t, svc.Register(testCtx(), "john", "john@example.com", "secret123", model.RoleCustomer))

	_, err := svc.Login(testCtx(), "john@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(testCtx(), "unknown@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFavorites(t *testing.T) {
	db := newTestDB(t)
	svc := newUsers(db)

	require.NoError(t, svc.Register(testCtx(), "john", "john@example.com", "secret123", model.RoleCustomer))
	user, err := repository.NewUserRepository(db).FindByEmail(testCtx(), "john@example.com")
	require.NoError(t, err)

	p := seedProduct(t, db, "P", 100)

	favorites, err := svc.AddFavorite(testCtx(), user.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	_, err = svc.AddFavorite(testCtx(), user.ID, p.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorite)

	_, err = svc.AddFavorite(testCtx(), user.ID, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	favorites, err = svc.RemoveFavorite(testCtx(), user.ID, p.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
