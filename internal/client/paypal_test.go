package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"futurefunded/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayPalClient(baseURL string, timeout time.Duration) PayPalClient {
	return NewPayPalClient(&config.PayPal{
		BaseApiURL:   baseURL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Timeout:      timeout,
	})
}

func TestCreateOrder_SendsBasicAuthAndCaptureIntent(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)
		assert.Equal(t, "/v2/checkout/orders", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"ORDER123","status":"CREATED"}`))
	}))
	defer srv.Close()

	c := newTestPayPalClient(srv.URL, 15*time.Second)
	orderID, err := c.CreateOrder(context.Background(), decimal.RequireFromString("25"))
	require.NoError(t, err)
	assert.Equal(t, "ORDER123", orderID)

	assert.Equal(t, "CAPTURE", gotBody["intent"])
	units := gotBody["purchase_units"].([]interface{})
	require.Len(t, units, 1)
	amount := units[0].(map[string]interface{})["amount"].(map[string]interface{})
	assert.Equal(t, "USD", amount["currency_code"])
	assert.Equal(t, "25.00", amount["value"])
}

func TestCreateOrder_MissingID_ReturnsEmptyString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"CREATED"}`))
	}))
	defer srv.Close()

	c := newTestPayPalClient(srv.URL, 15*time.Second)
	orderID, err := c.CreateOrder(context.Background(), decimal.RequireFromString("5.00"))
	require.NoError(t, err)
	assert.Equal(t, "", orderID)
}

func TestCreateOrder_NonSuccess_ProviderErrorWithStatus(t *testing.T) {
	longBody := strings.Repeat("x", 5000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(longBody))
	}))
	defer srv.Close()

	c := newTestPayPalClient(srv.URL, 15*time.Second)
	_, err := c.CreateOrder(context.Background(), decimal.RequireFromString("5.00"))

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusUnprocessableEntity, providerErr.StatusCode)
	assert.Equal(t, "paypal", providerErr.Provider)
	assert.LessOrEqual(t, len(providerErr.Message), maxProviderMessageLen)
}

func TestCreateOrder_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestPayPalClient(srv.URL, 20*time.Millisecond)
	_, err := c.CreateOrder(context.Background(), decimal.RequireFromString("5.00"))
	require.ErrorIs(t, err, ErrProviderTimeout)
}

func TestCaptureOrder_ParsesNestedAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/checkout/orders/ORDER123/capture", r.URL.Path)
		w.Write([]byte(`{
			"id": "ORDER123",
			"status": "COMPLETED",
			"purchase_units": [{
				"payments": {
					"captures": [{
						"id": "CAP1",
						"status": "COMPLETED",
						"amount": {"currency_code": "USD", "value": "25.00"}
					}]
				}
			}]
		}`))
	}))
	defer srv.Close()

	c := newTestPayPalClient(srv.URL, 15*time.Second)
	resp, err := c.CaptureOrder(context.Background(), "ORDER123")
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", resp.Status)
	require.NotNil(t, resp.Amount)
	assert.True(t, resp.Amount.Equal(decimal.RequireFromString("25.00")))
}

func TestCaptureOrder_MissingNestedLevels_NilAmount(t *testing.T) {
	bodies := []string{
		`{"id":"ORDER123","status":"COMPLETED"}`,
		`{"id":"ORDER123","status":"COMPLETED","purchase_units":[]}`,
		`{"id":"ORDER123","status":"COMPLETED","purchase_units":[{"payments":{}}]}`,
		`{"id":"ORDER123","status":"COMPLETED","purchase_units":[{"payments":{"captures":[{"status":"COMPLETED"}]}}]}`,
	}

	for _, body := range bodies {
		body := body
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		c := newTestPayPalClient(srv.URL, 15*time.Second)
		resp, err := c.CaptureOrder(context.Background(), "ORDER123")
		srv.Close()

		require.NoError(t, err, "body %s", body)
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Nil(t, resp.Amount, "body %s", body)
	}
}

func TestCaptureOrder_NonSuccess_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"name":"RESOURCE_NOT_FOUND"}`))
	}))
	defer srv.Close()

	c := newTestPayPalClient(srv.URL, 15*time.Second)
	_, err := c.CaptureOrder(context.Background(), "NOPE")

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusNotFound, providerErr.StatusCode)
}
