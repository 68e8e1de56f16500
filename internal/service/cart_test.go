package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront-api/internal/repository"
)

func newCart(db *gorm.DB) CartService {
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
}

func TestAddItemCreatesCart(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "P", 100)
	svc := newCart(db)

	require.NoError(t, svc.AddItem(testCtx(), "user-1", p.ID, 2))

	cart, err := svc.Get(testCtx(), "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "P", cart.Items[0].Product.Name)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "P", 100)
	svc := newCart(db)

	require.NoError(t, svc.AddItem(testCtx(), "user-1", p.ID, 2))
	require.NoError(t, svc.AddItem(testCtx(), "user-1", p.ID, 3))

	cart, err := svc.Get(testCtx(), "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "duplicate add must not create a second line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemAppendsNewLine(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "P", 100)
	q := seedProduct(t, db, "Q", 50)
	svc := newCart(db)

	require.NoError(t, svc.AddItem(testCtx(), "user-1", p.ID, 1))
	require.NoError(t, svc.AddItem(testCtx(), "user-1", q.ID, 1))

	cart, err := svc.Get(testCtx(), "user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCart(db)

	err := svc.AddItem(testCtx(), "user-1", "missing", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetAbsentCart(t *testing.T) {
	db := newTestDB(t)

	_, err := newCart(db).Get(testCtx(), "nobody")
	assert.ErrorIs(t, err, ErrCartNotFound)
}
