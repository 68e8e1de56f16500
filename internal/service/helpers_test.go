package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront-api/internal/client"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, client.Migrate(db))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *model.Product {
	t.Helper()

	product := &model.Product{
		ID:    uuid.NewString(),
		Name:  name,
		Price: decimal.NewFromFloat(price),
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedCart(t *testing.T, db *gorm.DB, userID string, lines map[*model.Product]int) {
	t.Helper()

	cart := &model.Cart{UserID: userID}
	for product, qty := range lines {
		cart.Items = append(cart.Items, model.CartItem{ProductID: product.ID, Quantity: qty})
	}
	require.NoError(t, db.Omit("Items.Product").Create(cart).Error)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func testCtx() context.Context {
	return context.Background()
}

func newCheckout(db *gorm.DB) CheckoutService {
	return NewCheckoutService(db, repository.NewCartRepository(db), repository.NewOrderRepository(db))
}
