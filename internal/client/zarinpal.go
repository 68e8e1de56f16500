package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"storefront-api/internal/config"
)

// ErrGatewayRejected marks a payment the gateway refused, as opposed to a
// transport failure. The wrapped message carries the upstream payload.
var ErrGatewayRejected = errors.New("payment gateway rejected request")

type PaymentGateway interface {
	RequestPayment(ctx context.Context, amount int64, description string) (*PaymentRequestResult, error)
	VerifyPayment(ctx context.Context, amount int64, authority string) (string, error)
}

type PaymentRequestResult struct {
	Authority  string
	PaymentURL string
}

type zarinpalClientImpl struct {
	httpClient  *http.Client
	baseApiURL  string
	merchantID  string
	callbackURL string
}

func NewZarinpalClient(cfg *config.Zarinpal) PaymentGateway {
	return &zarinpalClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:  cfg.BaseApiURL,
		merchantID:  cfg.MerchantID,
		callbackURL: cfg.CallbackURL,
	}
}

type zarinpalData struct {
	Code      int         `json:"code"`
	Authority string      `json:"authority"`
	RefID     json.Number `json:"ref_id"`
}

type zarinpalResult struct {
	Data   zarinpalData    `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

func (c *zarinpalClientImpl) RequestPayment(ctx context.Context, amount int64, description string) (*PaymentRequestResult, error) {
	payload := map[string]interface{}{
		"merchant_id":  c.merchantID,
		"amount":       amount,
		"description":  description,
		"callback_url": c.callbackURL,
	}

	result, err := c.post(ctx, "/pg/v4/payment/request.json", payload)
	if err != nil {
		return nil, err
	}

	if result.Data.Code != 100 {
		return nil, fmt.Errorf("%w: code=%d errors=%s", ErrGatewayRejected, result.Data.Code, result.Errors)
	}

	return &PaymentRequestResult{
		Authority:  result.Data.Authority,
		PaymentURL: fmt.Sprintf("%s/pg/StartPay/%s", c.baseApiURL, result.Data.Authority),
	}, nil
}

func (c *zarinpalClientImpl) VerifyPayment(ctx context.Context, amount int64, authority string) (string, error) {
	payload := map[string]interface{}{
		"merchant_id": c.merchantID,
		"amount":      amount,
		"authority":   authority,
	}

	result, err := c.post(ctx, "/pg/v4/payment/verify.json", payload)
	if err != nil {
		return "", err
	}

	// 100 = verified now, 101 = already verified for this authority.
	if result.Data.Code != 100 && result.Data.Code != 101 {
		return "", fmt.Errorf("%w: code=%d errors=%s", ErrGatewayRejected, result.Data.Code, result.Errors)
	}

	return result.Data.RefID.String(), nil
}

func (c *zarinpalClientImpl) post(ctx context.Context, path string, payload map[string]interface{}) (*zarinpalResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status=%s body=%s", ErrGatewayRejected, strconv.Itoa(resp.StatusCode), string(b))
	}

	var result zarinpalResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}

	return &result, nil
}
