package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/browserd/browserd/internal/browser"
	"github.com/browserd/browserd/pkg/browsers"
	"github.com/browserd/browserd/pkg/dto"
)

type EnginesController struct {
	cat    browsers.EnginesCatalog
	driver browser.Driver
}

func NewEnginesController(cat browsers.EnginesCatalog, driver browser.Driver) *EnginesController {
	return &EnginesController{cat: cat, driver: driver}
}

func (ec *EnginesController) Engines(c echo.Context) error {
	engines := ec.cat.Engines()
	result := make([]dto.EngineStatus, 0, len(engines))
	for _, e := range engines {
		cfg, _ := ec.cat.Lookup(e)
		result = append(result, dto.EngineStatus{
			Name:    string(e),
			Channel: cfg.Channel,
			Ready:   ec.driver.EngineReady(e),
		})
	}
	return c.JSON(http.StatusOK, result)
}
