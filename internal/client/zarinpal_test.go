package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/config"
)

func newFakeGateway(t *testing.T, requestCode, verifyCode int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/pg/v4/payment/request.json", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "merchant-1", payload["merchant_id"])
		assert.NotEmpty(t, payload["callback_url"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"code":      requestCode,
				"authority": "A0000012345",
			},
		})
	})
	mux.HandleFunc("/pg/v4/payment/verify.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"code":   verifyCode,
				"ref_id": 987654,
			},
		})
	})
	return httptest.NewServer(mux)
}

func newTestClient(baseURL string) PaymentGateway {
	return NewZarinpalClient(&config.Zarinpal{
		BaseApiURL:  baseURL,
		MerchantID:  "merchant-1",
		CallbackURL: "http://localhost:8080/api/payment/verify",
	})
}

func TestRequestPayment(t *testing.T) {
	srv := newFakeGateway(t, 100, 100)
	defer srv.Close()

	result, err := newTestClient(srv.URL).RequestPayment(context.Background(), 25000, "order #1")
	require.NoError(t, err)
	assert.Equal(t, "A0000012345", result.Authority)
	assert.Equal(t, srv.URL+"/pg/StartPay/A0000012345", result.PaymentURL)
}

func TestRequestPaymentRejected(t *testing.T) {
	srv := newFakeGateway(t, -9, 100)
	defer srv.Close()

	_, err := newTestClient(srv.URL).RequestPayment(context.Background(), 25000, "order #1")
	assert.ErrorIs(t, err, ErrGatewayRejected)
}

func TestVerifyPayment(t *testing.T) {
	srv := newFakeGateway(t, 100, 100)
	defer srv.Close()

	refID, err := newTestClient(srv.URL).VerifyPayment(context.Background(), 25000, "A0000012345")
	require.NoError(t, err)
	assert.Equal(t, "987654", refID)
}

func TestVerifyPaymentRejected(t *testing.T) {
	srv := newFakeGateway(t, 100, -51)
	defer srv.Close()

	_, err := newTestClient(srv.URL).VerifyPayment(context.Background(), 25000, "A0000012345")
	assert.ErrorIs(t, err, ErrGatewayRejected)
}
