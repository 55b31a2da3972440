package model

import "time"

type Donation struct {
	ID uint `gorm:"primaryKey"`
	// stripe payment-intent id or paypal order id
	ProviderRef string `gorm:"size:64;uniqueIndex;not null"`
	Provider    string `gorm:"size:16;index;not null"` // STRIPE, PAYPAL
	Status      string `gorm:"size:32;index;not null"` // CREATED, COMPLETED, FAILED
	AmountCents int64  `gorm:"not null"`
	Currency    string `gorm:"size:8;not null"`
	// amount echoed back by the capture response; nil when the provider
	// omitted it
	CapturedCents  *int64
	SupporterName  string `gorm:"size:128"`
	SupporterEmail string `gorm:"size:128;index"`
	Demo           bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
