package server

import (
	"net/http"

	"futurefunded/internal/handler"
	"futurefunded/internal/service"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	healthHandler   *handler.HealthHandler
}

type requestValidator struct {
	validate *validatorv10.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return nil
}

func NewServer(paymentService service.PaymentService, demoMode bool) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validatorv10.New()}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		checkoutHandler: handler.NewCheckoutHandler(paymentService),
		healthHandler:   handler.NewHealthHandler(demoMode),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", s.healthHandler.Check)

	checkout := api.Group("/checkout")
	checkout.POST("/intent", s.checkoutHandler.CreateCardIntent)
	checkout.POST("/order", s.checkoutHandler.CreateOrder)
	checkout.POST("/order/:orderID/capture", s.checkoutHandler.CaptureOrder)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
