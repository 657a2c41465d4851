package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"

	"github.com/browserd/browserd/mocks"
	"github.com/browserd/browserd/pkg/dto"
)

func TestStatsController_Stats(t *testing.T) {
	g := NewWithT(t)

	svc := new(mocks.StatsService)
	svc.EXPECT().GetStats().Return(&dto.Stats{
		Requested: 3,
		Completed: 2,
		Failed:    1,
		Operations: map[string]dto.CaptureCounts{
			"screenshot": {Requested: 3, Completed: 2, Failed: 1},
		},
	}).Once()

	sc := NewStatsController(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/stats", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	g.Expect(sc.Stats(c)).To(Succeed())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{
              "requested": 3,
              "completed": 2,
              "failed": 1,
              "operations": {
                "screenshot": {"requested": 3, "completed": 2, "failed": 1}
              }
            }`))

	svc.AssertExpectations(t)
}
