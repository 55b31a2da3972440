package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"futurefunded/internal/config"
	"futurefunded/internal/model"

	"github.com/shopspring/decimal"
)

type PayPalClient interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal) (string, error)
	CaptureOrder(ctx context.Context, orderID string) (*CaptureResponse, error)
}

// CaptureResponse is the normalized capture outcome. Amount is nil when the
// provider response omitted the nested capture amount.
type CaptureResponse struct {
	Status string
	Amount *decimal.Decimal
}

type paypalClientImpl struct {
	httpClient   *http.Client
	baseApiURL   string
	clientID     string
	clientSecret string
}

func NewPayPalClient(paypalCfg *config.PayPal) PayPalClient {
	timeout := paypalCfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &paypalClientImpl{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseApiURL:   paypalCfg.BaseApiURL,
		clientID:     paypalCfg.ClientID,
		clientSecret: paypalCfg.ClientSecret,
	}
}

func (c *paypalClientImpl) CreateOrder(ctx context.Context, amount decimal.Decimal) (string, error) {
	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": "USD",
					"value":         amount.StringFixed(2),
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v2/checkout/orders",
		bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", wrapTransportError("paypal", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", newProviderError("paypal", resp.StatusCode, string(b))
	}

	var result model.PayPalOrder
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode order response: %w", err)
	}

	// a missing id decodes to "": the caller decides whether that is fatal
	return result.ID, nil
}

func (c *paypalClientImpl) CaptureOrder(ctx context.Context, orderID string) (*CaptureResponse, error) {
	url := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.baseApiURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create capture request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError("paypal", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, newProviderError("paypal", resp.StatusCode, string(b))
	}

	var result model.PayPalOrder
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode capture response: %w", err)
	}

	return &CaptureResponse{
		Status: result.Status,
		Amount: capturedAmount(&result),
	}, nil
}

// capturedAmount digs out purchase_units[0].payments.captures[0].amount.value.
// Any absent level yields nil: capture confirmation matters more than the
// amount echo-back.
func capturedAmount(order *model.PayPalOrder) *decimal.Decimal {
	if len(order.PurchaseUnits) == 0 {
		return nil
	}
	captures := order.PurchaseUnits[0].Payments.Captures
	if len(captures) == 0 {
		return nil
	}
	value := captures[0].Amount.Value
	if value == "" {
		return nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return nil
	}
	return &amount
}
