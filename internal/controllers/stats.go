package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/browserd/browserd/internal/services/stats"
)

type StatsController struct {
	svc stats.StatsService
}

func NewStatsController(svc stats.StatsService) *StatsController {
	return &StatsController{svc: svc}
}

func (sc *StatsController) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, sc.svc.GetStats())
}
