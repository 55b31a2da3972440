package dto

import "github.com/shopspring/decimal"

// DonationRequest is the body for both intent creation endpoints. The $1.00
// minimum is business logic and lives in the payment service, not here.
type DonationRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Name   string          `json:"name" validate:"omitempty,max=128"`
	Email  string          `json:"email" validate:"omitempty,email,max=128"`
}

// Metadata is what gets passed through to the provider alongside the intent.
func (r *DonationRequest) Metadata() map[string]string {
	metadata := map[string]string{}
	if r.Name != "" {
		metadata["name"] = r.Name
	}
	if r.Email != "" {
		metadata["email"] = r.Email
	}
	return metadata
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Demo   bool   `json:"demo"`
}
