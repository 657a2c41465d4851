package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/browserd/browserd/internal/services/capture"
	"github.com/browserd/browserd/pkg/dto"
)

type HealthController struct {
	svc capture.CaptureService
}

func NewHealthController(svc capture.CaptureService) *HealthController {
	return &HealthController{svc: svc}
}

func (h *HealthController) Health(c echo.Context) error {
	browser := dto.BrowserUnavailable
	if h.svc.Ready() {
		browser = dto.BrowserAvailable
	}
	return c.JSON(http.StatusOK, &dto.Health{
		Status:  "ok",
		Browser: browser,
	})
}
