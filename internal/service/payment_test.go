package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront-api/internal/client"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

// stubGateway implements client.PaymentGateway in memory.
type stubGateway struct {
	authority    string
	refID        string
	rejectVerify bool

	requestedAmount int64
	verifiedAmount  int64
}

func (g *stubGateway) RequestPayment(ctx context.Context, amount int64, description string) (*client.PaymentRequestResult, error) {
	g.requestedAmount = amount
	return &client.PaymentRequestResult{
		Authority:  g.authority,
		PaymentURL: "https://gateway.test/pg/StartPay/" + g.authority,
	}, nil
}

func (g *stubGateway) VerifyPayment(ctx context.Context, amount int64, authority string) (string, error) {
	g.verifiedAmount = amount
	if g.rejectVerify {
		return "", client.ErrGatewayRejected
	}
	return g.refID, nil
}

func placeOrder(t *testing.T, db *gorm.DB, userID string, price float64, qty int) *model.Order {
	t.Helper()

	p := seedProduct(t, db, "P", price)
	seedCart(t, db, userID, map[*model.Product]int{p: qty})

	order, err := newCheckout(db).Checkout(testCtx(), userID)
	require.NoError(t, err)
	return order
}

func orderStatus(t *testing.T, db *gorm.DB, orderID string) model.OrderStatus {
	t.Helper()

	order, err := repository.NewOrderRepository(db).FindByID(testCtx(), orderID)
	require.NoError(t, err)
	return order.Status
}

func TestPayStoresAuthority(t *testing.T) {
	db := newTestDB(t)
	order := placeOrder(t, db, "user-1", 100, 2)

	gateway := &stubGateway{authority: "A-1"}
	svc := NewPaymentService(gateway, repository.NewOrderRepository(db))

	url, err := svc.Pay(testCtx(), "user-1", order.ID, "order")
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.test/pg/StartPay/A-1", url)
	assert.EqualValues(t, 200, gateway.requestedAmount, "amount must come from the stored order")

	stored, err := repository.NewOrderRepository(db).FindByAuthority(testCtx(), "A-1")
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
}

func TestPayRejectsForeignOrder(t *testing.T) {
	db := newTestDB(t)
	order := placeOrder(t, db, "user-1", 100, 1)

	svc := NewPaymentService(&stubGateway{authority: "A-1"}, repository.NewOrderRepository(db))

	_, err := svc.Pay(testCtx(), "someone-else", order.ID, "order")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestVerifySuccessMarksOrderPaid(t *testing.T) {
	db := newTestDB(t)
	order := placeOrder(t, db, "user-1", 100, 2)

	gateway := &stubGateway{authority: "A-1", refID: "987654"}
	svc := NewPaymentService(gateway, repository.NewOrderRepository(db))

	_, err := svc.Pay(testCtx(), "user-1", order.ID, "order")
	require.NoError(t, err)

	refID, err := svc.Verify(testCtx(), "A-1", "OK")
	require.NoError(t, err)
	assert.Equal(t, "987654", refID)
	assert.Equal(t, model.OrderPaid, orderStatus(t, db, order.ID))
}

func TestVerifyCancelledMarksOrderFailed(t *testing.T) {
	db := newTestDB(t)
	order := placeOrder(t, db, "user-1", 100, 2)

	svc := NewPaymentService(&stubGateway{authority: "A-1"}, repository.NewOrderRepository(db))

	_, err := svc.Pay(testCtx(), "user-1", order.ID, "order")
	require.NoError(t, err)

	_, err = svc.Verify(testCtx(), "A-1", "NOK")
	assert.ErrorIs(t, err, ErrPaymentFailed)
	assert.Equal(t, model.OrderFailed, orderStatus(t, db, order.ID))
}

func TestVerifyGatewayRejectionNeverMarksPaid(t *testing.T) {
	db := newTestDB(t)
	order := placeOrder(t, db, "user-1", 100, 2)

	gateway := &stubGateway{authority: "A-1", rejectVerify: true}
	svc := NewPaymentService(gateway, repository.NewOrderRepository(db))

	_, err := svc.Pay(testCtx(), "user-1", order.ID, "order")
	require.NoError(t, err)

	_, err = svc.Verify(testCtx(), "A-1", "OK")
	assert.ErrorIs(t, err, client.ErrGatewayRejected)
	assert.Equal(t, model.OrderFailed, orderStatus(t, db, order.ID))
}

func TestVerifyRedeliveryIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	order := placeOrder(t, db, "user-1", 100, 2)

	gateway := &stubGateway{authority: "A-1", refID: "987654"}
	svc := NewPaymentService(gateway, repository.NewOrderRepository(db))

	_, err := svc.Pay(testCtx(), "user-1", order.ID, "order")
	require.NoError(t, err)

	_, err = svc.Verify(testCtx(), "A-1", "OK")
	require.NoError(t, err)

	refID, err := svc.Verify(testCtx(), "A-1", "OK")
	require.NoError(t, err)
	assert.Equal(t, "987654", refID)
	assert.Equal(t, model.OrderPaid, orderStatus(t, db, order.ID))
}

func TestPayRequiresPendingOrder(t *testing.T) {
	db := newTestDB(t)
	order := placeOrder(t, db, "user-1", 100, 2)

	gateway := &stubGateway{authority: "A-1", refID: "987654"}
	orderRepo := repository.NewOrderRepository(db)
	svc := NewPaymentService(gateway, orderRepo)

	_, err := svc.Pay(testCtx(), "user-1", order.ID, "order")
	require.NoError(t, err)
	_, err = svc.Verify(testCtx(), "A-1", "OK")
	require.NoError(t, err)

	_, err = svc.Pay(testCtx(), "user-1", order.ID, "order")
	assert.ErrorIs(t, err, ErrOrderNotPending)
}
