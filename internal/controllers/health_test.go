package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"

	"github.com/browserd/browserd/mocks"
)

func TestHealthController_Health(t *testing.T) {
	tests := []struct {
		name    string
		ready   bool
		expBody string
	}{
		{
			name:    "browser available",
			ready:   true,
			expBody: `{"status": "ok", "browser": "available"}`,
		},
		{
			name:    "browser unavailable",
			ready:   false,
			expBody: `{"status": "ok", "browser": "unavailable"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			svc := new(mocks.CaptureService)
			svc.EXPECT().Ready().Return(tt.ready).Once()
			h := NewHealthController(svc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			g.Expect(h.Health(c)).To(Succeed())
			g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
			g.Expect(rec.Body.String()).To(MatchJSON(tt.expBody))

			svc.AssertExpectations(t)
		})
	}
}
