package capture_test

import (
	"context"
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/browserd/browserd/internal/browser"
	"github.com/browserd/browserd/internal/services/capture"
	"github.com/browserd/browserd/mocks"
	"github.com/browserd/browserd/pkg/models"
)

func TestCaptureServiceImpl_Screenshot(t *testing.T) {
	g := NewWithT(t)

	drv := new(mocks.Driver)
	qa := new(mocks.QuotaAuthorizer)
	svc := capture.NewCaptureService(drv, browser.NewHostAllowlist(nil), qa, zaptest.NewLogger(t))

	opts := models.ScreenshotOptions{
		URL: "https://example.com/page",
		PageOptions: models.PageOptions{
			Engine: models.EngineChromium,
			Width:  1280,
			Height: 800,
		},
		FullPage: true,
	}

	page := new(mocks.PageSession)
	drv.EXPECT().Ready().Return(true).Once()
	qa.EXPECT().Enabled().Return(false).Twice()
	drv.EXPECT().NewPage(mock.Anything, opts.PageOptions).Return(page, nil).Once()
	page.EXPECT().Goto(opts.URL, models.WaitUntilLoad).Return(nil).Once()
	page.EXPECT().Screenshot(true).Return([]byte("png-data"), nil).Once()
	page.EXPECT().Close().Return(nil).Once()

	png, err := svc.Screenshot(context.Background(), opts)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(png).To(Equal([]byte("png-data")))

	drv.AssertExpectations(t)
	qa.AssertExpectations(t)
	page.AssertExpectations(t)
}

func TestCaptureServiceImpl_Navigate(t *testing.T) {
	g := NewWithT(t)

	drv := new(mocks.Driver)
	qa := new(mocks.QuotaAuthorizer)
	svc := capture.NewCaptureService(drv, browser.NewHostAllowlist(nil), qa, zaptest.NewLogger(t))

	opts := models.NavigateOptions{
		URL: "https://example.com/",
		PageOptions: models.PageOptions{
			Engine: models.EngineFirefox,
			Width:  800,
			Height: 600,
		},
		WaitUntil: models.WaitUntilNetworkIdle,
	}

	page := new(mocks.PageSession)
	drv.EXPECT().Ready().Return(true).Once()
	qa.EXPECT().Enabled().Return(false).Twice()
	drv.EXPECT().NewPage(mock.Anything, opts.PageOptions).Return(page, nil).Once()
	page.EXPECT().Goto(opts.URL, models.WaitUntilNetworkIdle).Return(nil).Once()
	page.EXPECT().Title().Return("Example Domain", nil).Once()
	page.EXPECT().Content().Return("<html></html>", nil).Once()
	page.EXPECT().URL().Return("https://example.com/landed").Once()
	page.EXPECT().Close().Return(nil).Once()

	got, err := svc.Navigate(context.Background(), opts)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(&models.NavigateResult{
		Title: "Example Domain",
		URL:   "https://example.com/landed",
		HTML:  "<html></html>",
	}))

	drv.AssertExpectations(t)
	page.AssertExpectations(t)
}

func TestCaptureServiceImpl_Navigate_DefaultWaitUntil(t *testing.T) {
	g := NewWithT(t)

	drv := new(mocks.Driver)
	qa := new(mocks.QuotaAuthorizer)
	svc := capture.NewCaptureService(drv, browser.NewHostAllowlist(nil), qa, zaptest.NewLogger(t))

	opts := models.NavigateOptions{
		URL:         "https://example.com/",
		PageOptions: models.PageOptions{Engine: models.EngineChromium},
	}

	page := new(mocks.PageSession)
	drv.EXPECT().Ready().Return(true).Once()
	qa.EXPECT().Enabled().Return(false).Twice()
	drv.EXPECT().NewPage(mock.Anything, opts.PageOptions).Return(page, nil).Once()
	page.EXPECT().Goto(opts.URL, models.WaitUntilLoad).Return(nil).Once()
	page.EXPECT().Title().Return("t", nil).Once()
	page.EXPECT().Content().Return("c", nil).Once()
	page.EXPECT().URL().Return(opts.URL).Once()
	page.EXPECT().Close().Return(nil).Once()

	_, err := svc.Navigate(context.Background(), opts)
	g.Expect(err).ToNot(HaveOccurred())

	page.AssertExpectations(t)
}

func TestCaptureServiceImpl_Execute(t *testing.T) {
	g := NewWithT(t)

	drv := new(mocks.Driver)
	qa := new(mocks.QuotaAuthorizer)
	svc := capture.NewCaptureService(drv, browser.NewHostAllowlist(nil), qa, zaptest.NewLogger(t))

	opts := models.ExecuteOptions{
		URL:         "https://example.com/",
		PageOptions: models.PageOptions{Engine: models.EngineChromium},
		Script:      "document.title",
	}

	page := new(mocks.PageSession)
	drv.EXPECT().Ready().Return(true).Once()
	qa.EXPECT().Enabled().Return(false).Twice()
	drv.EXPECT().NewPage(mock.Anything, opts.PageOptions).Return(page, nil).Once()
	page.EXPECT().Goto(opts.URL, models.WaitUntilDOMContentLoaded).Return(nil).Once()
	page.EXPECT().Evaluate(opts.Script).Return("Example Domain", nil).Once()
	page.EXPECT().Close().Return(nil).Once()

	got, err := svc.Execute(context.Background(), opts)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal("Example Domain"))

	drv.AssertExpectations(t)
	page.AssertExpectations(t)
}

func TestCaptureServiceImpl_NotReady(t *testing.T) {
	g := NewWithT(t)

	drv := new(mocks.Driver)
	qa := new(mocks.QuotaAuthorizer)
	svc := capture.NewCaptureService(drv, browser.NewHostAllowlist(nil), qa, zaptest.NewLogger(t))

	drv.EXPECT().Ready().Return(false).Once()

	_, err := svc.Screenshot(context.Background(), models.ScreenshotOptions{URL: "https://example.com/"})
	g.Expect(err).To(HaveOccurred())

	var apiErr *models.APIError
	g.Expect(errors.As(err, &apiErr)).To(BeTrue())
	g.Expect(apiErr.Code()).To(Equal(http.StatusServiceUnavailable))
	g.Expect(apiErr.Type).To(Equal(models.ErrTypeBrowserUnavailable))

	drv.AssertExpectations(t)
}

func TestCaptureServiceImpl_URLNotAllowed(t *testing.T) {
	g := NewWithT(t)

	drv := new(mocks.Driver)
	qa := new(mocks.QuotaAuthorizer)
	allowlist := browser.NewHostAllowlist([]string{"example.com"})
	svc := capture.NewCaptureService(drv, allowlist, qa, zaptest.NewLogger(t))

	drv.EXPECT().Ready().Return(true).Once()

	_, err := svc.Navigate(context.Background(), models.NavigateOptions{URL: "https://evil.org/"})
	g.Expect(err).To(HaveOccurred())

	var apiErr *models.APIError
	g.Expect(errors.As(err, &apiErr)).To(BeTrue())
	g.Expect(apiErr.Code()).To(Equal(http.StatusForbidden))
	g.Expect(apiErr.Type).To(Equal(models.ErrTypeURLNotAllowed))

	drv.AssertExpectations(t)
}

func TestCaptureServiceImpl_QuotaExceeded(t *testing.T) {
	g := NewWithT(t)

	drv := new(mocks.Driver)
	qa := new(mocks.QuotaAuthorizer)
	svc := capture.NewCaptureService(drv, browser.NewHostAllowlist(nil), qa, zaptest.NewLogger(t))

	drv.EXPECT().Ready().Return(true).Once()
	qa.EXPECT().Enabled().Return(true).Once()
	qa.EXPECT().Reserve().Return(models.NewQuotaExceededError(errors.New("limit reached"))).Once()

	_, err := svc.Screenshot(context.Background(), models.ScreenshotOptions{URL: "https://example.com/"})
	g.Expect(err).To(HaveOccurred())

	var apiErr *models.APIError
	g.Expect(errors.As(err, &apiErr)).To(BeTrue())
	g.Expect(apiErr.Code()).To(Equal(http.StatusTooManyRequests))

	drv.AssertExpectations(t)
	qa.AssertExpectations(t)
}

func TestCaptureServiceImpl_NewPageError_ReleasesQuota(t *testing.T) {
	g := NewWithT(t)

	drv := new(mocks.Driver)
	qa := new(mocks.QuotaAuthorizer)
	svc := capture.NewCaptureService(drv, browser.NewHostAllowlist(nil), qa, zaptest.NewLogger(t))

	drv.EXPECT().Ready().Return(true).Once()
	qa.EXPECT().Enabled().Return(true).Twice()
	qa.EXPECT().Reserve().Return(nil).Once()
	drv.EXPECT().
		NewPage(mock.Anything, mock.Anything).
		Return(nil, models.NewBrowserError(errors.New("launch failed"))).
		Once()
	qa.EXPECT().Release().Return(0).Once()

	_, err := svc.Execute(context.Background(), models.ExecuteOptions{URL: "https://example.com/", Script: "1"})
	g.Expect(err).To(HaveOccurred())

	var apiErr *models.APIError
	g.Expect(errors.As(err, &apiErr)).To(BeTrue())
	g.Expect(apiErr.Code()).To(Equal(http.StatusBadGateway))

	drv.AssertExpectations(t)
	qa.AssertExpectations(t)
}

func TestCaptureServiceImpl_GotoTimeout(t *testing.T) {
	g := NewWithT(t)

	drv := new(mocks.Driver)
	qa := new(mocks.QuotaAuthorizer)
	svc := capture.NewCaptureService(drv, browser.NewHostAllowlist(nil), qa, zaptest.NewLogger(t))

	opts := models.ScreenshotOptions{URL: "https://slow.example.com/"}

	page := new(mocks.PageSession)
	drv.EXPECT().Ready().Return(true).Once()
	qa.EXPECT().Enabled().Return(false).Twice()
	drv.EXPECT().NewPage(mock.Anything, opts.PageOptions).Return(page, nil).Once()
	page.EXPECT().Goto(opts.URL, models.WaitUntilLoad).Return(context.DeadlineExceeded).Once()
	page.EXPECT().Close().Return(nil).Once()

	_, err := svc.Screenshot(context.Background(), opts)
	g.Expect(err).To(HaveOccurred())

	var apiErr *models.APIError
	g.Expect(errors.As(err, &apiErr)).To(BeTrue())
	g.Expect(apiErr.Code()).To(Equal(http.StatusGatewayTimeout))
	g.Expect(apiErr.Type).To(Equal(models.ErrTypeTimeout))

	drv.AssertExpectations(t)
	page.AssertExpectations(t)
}
