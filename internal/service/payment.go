package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"futurefunded/internal/client"
	"futurefunded/internal/dto"
	"futurefunded/internal/model"
	"futurefunded/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ProviderStripe = "STRIPE"
	ProviderPayPal = "PAYPAL"
)

var minDonation = decimal.NewFromInt(1)

// demoCaptureAmount is what a demo capture reports regardless of the original
// order amount. See DESIGN.md before changing this.
var demoCaptureAmount = decimal.NewFromFloat(25.00)

type PaymentService interface {
	CreateCardIntent(ctx context.Context, req *dto.DonationRequest) (*model.PaymentIntentResult, error)
	CreateOrder(ctx context.Context, req *dto.DonationRequest) (*model.PaymentIntentResult, error)
	CaptureOrder(ctx context.Context, orderID string) (*model.CaptureResult, error)
}

type paymentServiceImpl struct {
	stripeClient client.StripeClient
	paypalClient client.PayPalClient
	donationRepo repository.DonationRepository
	demoMode     bool

	// substitutable in tests so demo results are deterministic
	now   func() time.Time
	nonce func() string
}

func NewPaymentService(
	demoMode bool,
	stripeClient client.StripeClient,
	paypalClient client.PayPalClient,
	donationRepo repository.DonationRepository,
) PaymentService {
	return &paymentServiceImpl{
		stripeClient: stripeClient,
		paypalClient: paypalClient,
		donationRepo: donationRepo,
		demoMode:     demoMode,
		now:          time.Now,
		nonce: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
	}
}

func (s *paymentServiceImpl) CreateCardIntent(ctx context.Context, req *dto.DonationRequest) (*model.PaymentIntentResult, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	if s.demoMode {
		result := &model.PaymentIntentResult{
			ID:           fmt.Sprintf("pi_demo_%d", s.now().Unix()),
			ClientSecret: "demo_secret_" + s.nonce(),
			Status:       "requires_payment_method",
			Amount:       req.Amount,
			Currency:     "usd",
			Demo:         true,
		}
		s.recordDonation(ctx, ProviderStripe, result, req)
		return result, nil
	}

	// no automatic retry here: a retry could create a duplicate live
	// authorization, so retry policy belongs to the caller
	resp, err := s.stripeClient.CreateIntent(ctx, toCents(req.Amount), "usd", req.Metadata())
	if err != nil {
		return nil, fmt.Errorf("stripe create intent: %w", err)
	}

	result := &model.PaymentIntentResult{
		ID:           resp.ID,
		ClientSecret: resp.ClientSecret,
		Status:       resp.Status,
		Amount:       req.Amount,
		Currency:     "usd",
	}
	s.recordDonation(ctx, ProviderStripe, result, req)
	return result, nil
}

func (s *paymentServiceImpl) CreateOrder(ctx context.Context, req *dto.DonationRequest) (*model.PaymentIntentResult, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	if s.demoMode {
		result := &model.PaymentIntentResult{
			ID:       fmt.Sprintf("ORDER_DEMO_%d", s.now().Unix()),
			Status:   "CREATED",
			Amount:   req.Amount,
			Currency: "usd",
			Demo:     true,
		}
		s.recordDonation(ctx, ProviderPayPal, result, req)
		return result, nil
	}

	orderID, err := s.paypalClient.CreateOrder(ctx, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("paypal create order: %w", err)
	}

	// orderID may be empty; the caller validates before capture
	result := &model.PaymentIntentResult{
		ID:       orderID,
		Status:   "CREATED",
		Amount:   req.Amount,
		Currency: "usd",
	}
	if orderID != "" {
		s.recordDonation(ctx, ProviderPayPal, result, req)
	}
	return result, nil
}

func (s *paymentServiceImpl) CaptureOrder(ctx context.Context, orderID string) (*model.CaptureResult, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}

	if s.demoMode {
		amount := demoCaptureAmount
		result := &model.CaptureResult{
			Status:     "COMPLETED",
			Amount:     &amount,
			CapturedAt: s.now(),
			Demo:       true,
		}
		s.markCaptured(ctx, orderID, result)
		return result, nil
	}

	resp, err := s.paypalClient.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("paypal capture order: %w", err)
	}

	result := &model.CaptureResult{
		Status:     resp.Status,
		Amount:     resp.Amount,
		CapturedAt: s.now(),
	}
	s.markCaptured(ctx, orderID, result)
	return result, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThan(minDonation) {
		return ErrInvalidAmount
	}
	return nil
}

func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// recordDonation writes the ledger row. The provider, not the ledger, is the
// source of truth: a write failure is logged and the payment response still
// goes out.
func (s *paymentServiceImpl) recordDonation(ctx context.Context, provider string, result *model.PaymentIntentResult, req *dto.DonationRequest) {
	donation := &model.Donation{
		ProviderRef:    result.ID,
		Provider:       provider,
		Status:         "CREATED",
		AmountCents:    toCents(result.Amount),
		Currency:       result.Currency,
		SupporterName:  req.Name,
		SupporterEmail: req.Email,
		Demo:           result.Demo,
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		log.Printf("record donation %s: %v", result.ID, err)
	}
}

func (s *paymentServiceImpl) markCaptured(ctx context.Context, orderID string, result *model.CaptureResult) {
	var capturedCents *int64
	if result.Amount != nil {
		cents := toCents(*result.Amount)
		capturedCents = &cents
	}
	if err := s.donationRepo.MarkCaptured(ctx, orderID, result.Status, capturedCents); err != nil {
		log.Printf("mark donation %s captured: %v", orderID, err)
	}
}
