package handler

import (
	"net/http"

	"futurefunded/internal/dto"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	demoMode bool
}

func NewHealthHandler(demoMode bool) *HealthHandler {
	return &HealthHandler{demoMode: demoMode}
}

func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, &dto.HealthResponse{
		Status: "ok",
		Demo:   h.demoMode,
	})
}
