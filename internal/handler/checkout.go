package handler

import (
	"errors"
	"net/http"

	"futurefunded/internal/dto"
	"futurefunded/internal/service"

	"github.com/labstack/echo/v4"
)

// shown for any provider-side failure; the provider's own error text stays
// out of responses
const msgPaymentFailed = "payment could not be completed, please try again"

type CheckoutHandler struct {
	paymentService service.PaymentService
}

func NewCheckoutHandler(paymentService service.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{
		paymentService: paymentService,
	}
}

func (h *CheckoutHandler) CreateCardIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.DonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.paymentService.CreateCardIntent(ctx, &req)
	if err != nil {
		return paymentError(err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.DonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.paymentService.CreateOrder(ctx, &req)
	if err != nil {
		return paymentError(err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *CheckoutHandler) CaptureOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.Param("orderID")
	result, err := h.paymentService.CaptureOrder(ctx, orderID)
	if err != nil {
		return paymentError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// paymentError maps the service taxonomy onto HTTP: validation failures are
// the caller's fault, provider failures and timeouts get a generic message
// with a status that distinguishes "retry later" from "upstream rejected".
func paymentError(err error) error {
	var providerErr *service.ProviderError
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		return echo.NewHTTPError(http.StatusBadRequest, service.ErrInvalidAmount.Error())
	case errors.Is(err, service.ErrMissingOrderID):
		return echo.NewHTTPError(http.StatusBadRequest, service.ErrMissingOrderID.Error())
	case errors.Is(err, service.ErrProviderTimeout):
		return echo.NewHTTPError(http.StatusGatewayTimeout, msgPaymentFailed)
	case errors.As(err, &providerErr):
		return echo.NewHTTPError(http.StatusBadGateway, msgPaymentFailed)
	}
	return err
}
