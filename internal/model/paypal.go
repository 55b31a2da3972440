package model

type PayPalAmount struct {
	Currency string `json:"currency_code"`
	Value    string `json:"value"`
}

type PayPalCapture struct {
	ID         string       `json:"id"`
	Status     string       `json:"status"`
	CreateTime string       `json:"create_time"`
	Final      bool         `json:"final_capture"`
	Amount     PayPalAmount `json:"amount"`
}

type PayPalPayments struct {
	Captures []PayPalCapture `json:"captures"`
}

type PayPalPurchaseUnit struct {
	ReferenceID string         `json:"reference_id"`
	Amount      PayPalAmount   `json:"amount"`
	Payments    PayPalPayments `json:"payments"`
}

type PayPalOrder struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	PurchaseUnits []PayPalPurchaseUnit `json:"purchase_units"`
}
