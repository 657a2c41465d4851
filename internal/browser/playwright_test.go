package browser_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap/zaptest"

	"github.com/browserd/browserd/internal/browser"
	"github.com/browserd/browserd/pkg/browsers"
	"github.com/browserd/browserd/pkg/models"
)

func newTestDriver(t *testing.T) *browser.PlaywrightDriver {
	cat, err := browsers.NewYamlEnginesCatalog([]byte(`
chromium:
  enabled: true
`))
	NewWithT(t).Expect(err).ToNot(HaveOccurred())
	return browser.NewPlaywrightDriver(cat, true, 30*time.Second, nil, false, zaptest.NewLogger(t))
}

func TestPlaywrightDriver_NotStarted(t *testing.T) {
	g := NewWithT(t)

	d := newTestDriver(t)
	g.Expect(d.Ready()).To(BeFalse())
	g.Expect(d.EngineReady(models.EngineChromium)).To(BeFalse())
}

func TestPlaywrightDriver_NewPage_DisabledEngine(t *testing.T) {
	g := NewWithT(t)

	d := newTestDriver(t)
	_, err := d.NewPage(context.Background(), models.PageOptions{Engine: models.EngineWebkit})
	g.Expect(err).To(HaveOccurred())

	var apiErr *models.APIError
	g.Expect(errors.As(err, &apiErr)).To(BeTrue())
	g.Expect(apiErr.Code()).To(Equal(http.StatusBadRequest))
}

func TestPlaywrightDriver_NewPage_EngineNotLaunched(t *testing.T) {
	g := NewWithT(t)

	d := newTestDriver(t)
	_, err := d.NewPage(context.Background(), models.PageOptions{Engine: models.EngineChromium})
	g.Expect(err).To(HaveOccurred())

	var apiErr *models.APIError
	g.Expect(errors.As(err, &apiErr)).To(BeTrue())
	g.Expect(apiErr.Code()).To(Equal(http.StatusServiceUnavailable))
	g.Expect(apiErr.Type).To(Equal(models.ErrTypeBrowserUnavailable))
}

func TestPlaywrightDriver_Stop_NotStarted(t *testing.T) {
	g := NewWithT(t)

	d := newTestDriver(t)
	g.Expect(d.Stop(context.Background())).To(Succeed())
}

func TestWrapBrowserErr(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		expCode int
		expType string
	}{
		{
			name:    "coded error passthrough",
			err:     models.NewURLNotAllowedError(errors.New("nope")),
			expCode: http.StatusForbidden,
			expType: models.ErrTypeURLNotAllowed,
		},
		{
			name:    "playwright timeout",
			err:     playwright.ErrTimeout,
			expCode: http.StatusGatewayTimeout,
			expType: models.ErrTypeTimeout,
		},
		{
			name:    "context deadline",
			err:     context.DeadlineExceeded,
			expCode: http.StatusGatewayTimeout,
			expType: models.ErrTypeTimeout,
		},
		{
			name:    "generic playwright failure",
			err:     errors.New("page crashed"),
			expCode: http.StatusBadGateway,
			expType: models.ErrTypeBrowser,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			err := browser.WrapBrowserErr(tt.err, "test op")
			var apiErr *models.APIError
			g.Expect(errors.As(err, &apiErr)).To(BeTrue())
			g.Expect(apiErr.Code()).To(Equal(tt.expCode))
			g.Expect(apiErr.Type).To(Equal(tt.expType))
		})
	}
}
