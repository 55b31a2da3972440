package overlay

import (
	"context"
	"errors"

	"futurefunded/internal/dto"
	"futurefunded/internal/model"
	"futurefunded/internal/service"
)

// user-facing copy; raw provider error text never reaches the overlay
const (
	msgInvalidAmount  = "Minimum donation is $1.00."
	msgMissingOrder   = "Something went wrong with this order. Please start over."
	msgProviderFailed = "Your payment could not be completed. Please try again."
)

// Flow wires the overlay controller to the payment service. The service
// fails loud with typed errors; the flow fails soft, converting every error
// into visible state inside the still-open overlay so nothing ever throws
// out of a UI event handler.
type Flow struct {
	payments   service.PaymentService
	controller *Controller
}

func NewFlow(payments service.PaymentService, controller *Controller) *Flow {
	return &Flow{
		payments:   payments,
		controller: controller,
	}
}

// SubmitCardPayment creates the card intent for the amount in the form.
// Returns nil after showing the error state when the service fails.
func (f *Flow) SubmitCardPayment(ctx context.Context, req *dto.DonationRequest) *model.PaymentIntentResult {
	result, err := f.payments.CreateCardIntent(ctx, req)
	if err != nil {
		f.showPaymentError(err)
		return nil
	}
	return result
}

// ConfirmCardPayment reports the confirmed intent status back into the UI.
// Only succeeded swaps in the receipt; a failed attempt keeps the overlay
// open for retry.
func (f *Flow) ConfirmCardPayment(status string) {
	if status == "succeeded" {
		f.controller.ShowReceipt()
		return
	}
	f.controller.ShowError(msgProviderFailed)
}

func (f *Flow) StartOrder(ctx context.Context, req *dto.DonationRequest) *model.PaymentIntentResult {
	result, err := f.payments.CreateOrder(ctx, req)
	if err != nil {
		f.showPaymentError(err)
		return nil
	}
	return result
}

// CompleteOrder captures the approved order and shows the receipt. The
// overlay stays open either way.
func (f *Flow) CompleteOrder(ctx context.Context, orderID string) *model.CaptureResult {
	result, err := f.payments.CaptureOrder(ctx, orderID)
	if err != nil {
		f.showPaymentError(err)
		return nil
	}
	f.controller.ShowReceipt()
	return result
}

func (f *Flow) showPaymentError(err error) {
	var providerErr *service.ProviderError
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		f.controller.ShowFieldError(msgInvalidAmount)
	case errors.Is(err, service.ErrMissingOrderID):
		f.controller.ShowFieldError(msgMissingOrder)
	case errors.Is(err, service.ErrProviderTimeout):
		f.controller.ShowError(msgProviderFailed)
	case errors.As(err, &providerErr):
		f.controller.ShowError(msgProviderFailed)
	default:
		f.controller.ShowError(msgProviderFailed)
	}
}
