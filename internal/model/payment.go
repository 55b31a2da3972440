package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentIntentResult is the one shape both rails are normalized into so the
// checkout UI can treat them uniformly. ClientSecret is only set for the
// card rail.
type PaymentIntentResult struct {
	ID           string          `json:"id"`
	ClientSecret string          `json:"clientSecret,omitempty"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Demo         bool            `json:"demo"`
}

// CaptureResult is produced when an order-style (capture-after-approval)
// flow is finalized. Amount is nil when the provider response omitted the
// echoed capture amount; capture confirmation matters more than echo-back.
type CaptureResult struct {
	Status     string           `json:"status"`
	Amount     *decimal.Decimal `json:"amount"`
	CapturedAt time.Time        `json:"captured_at"`
	Demo       bool             `json:"demo"`
}
