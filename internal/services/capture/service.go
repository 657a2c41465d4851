package capture

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/browserd/browserd/internal/browser"
	"github.com/browserd/browserd/pkg/models"
	"github.com/browserd/browserd/pkg/quota"
)

type CaptureService interface {
	Ready() bool
	Screenshot(ctx context.Context, opts models.ScreenshotOptions) ([]byte, error)
	Navigate(ctx context.Context, opts models.NavigateOptions) (*models.NavigateResult, error)
	Execute(ctx context.Context, opts models.ExecuteOptions) (interface{}, error)
}

type CaptureServiceImpl struct {
	driver    browser.Driver
	allowlist *browser.HostAllowlist
	qa        quota.QuotaAuthorizer
	l         *zap.SugaredLogger
}

func NewCaptureService(
	driver browser.Driver,
	allowlist *browser.HostAllowlist,
	qa quota.QuotaAuthorizer,
	l *zap.Logger,
) *CaptureServiceImpl {
	return &CaptureServiceImpl{
		driver:    driver,
		allowlist: allowlist,
		qa:        qa,
		l:         l.Sugar(),
	}
}

func (s *CaptureServiceImpl) Ready() bool {
	return s.driver.Ready()
}

func (s *CaptureServiceImpl) Screenshot(ctx context.Context, opts models.ScreenshotOptions) ([]byte, error) {
	page, release, err := s.acquirePage(ctx, opts.URL, opts.PageOptions)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := page.Goto(opts.URL, models.WaitUntilLoad); err != nil {
		return nil, browser.WrapBrowserErr(err, "navigation failed")
	}

	png, err := page.Screenshot(opts.FullPage)
	if err != nil {
		return nil, browser.WrapBrowserErr(err, "screenshot failed")
	}
	return png, nil
}

func (s *CaptureServiceImpl) Navigate(ctx context.Context, opts models.NavigateOptions) (*models.NavigateResult, error) {
	page, release, err := s.acquirePage(ctx, opts.URL, opts.PageOptions)
	if err != nil {
		return nil, err
	}
	defer release()

	waitUntil := opts.WaitUntil
	if waitUntil == "" {
		waitUntil = models.WaitUntilLoad
	}
	if err := page.Goto(opts.URL, waitUntil); err != nil {
		return nil, browser.WrapBrowserErr(err, "navigation failed")
	}

	title, err := page.Title()
	if err != nil {
		return nil, browser.WrapBrowserErr(err, "failed to read page title")
	}
	html, err := page.Content()
	if err != nil {
		return nil, browser.WrapBrowserErr(err, "failed to read page content")
	}

	return &models.NavigateResult{
		Title: title,
		URL:   page.URL(),
		HTML:  html,
	}, nil
}

func (s *CaptureServiceImpl) Execute(ctx context.Context, opts models.ExecuteOptions) (interface{}, error) {
	page, release, err := s.acquirePage(ctx, opts.URL, opts.PageOptions)
	if err != nil {
		return nil, err
	}
	defer release()

	// domcontentloaded for faster script start
	if err := page.Goto(opts.URL, models.WaitUntilDOMContentLoaded); err != nil {
		return nil, browser.WrapBrowserErr(err, "navigation failed")
	}

	result, err := page.Evaluate(opts.Script)
	if err != nil {
		return nil, browser.WrapBrowserErr(err, "script evaluation failed")
	}
	return result, nil
}

func (s *CaptureServiceImpl) acquirePage(
	ctx context.Context,
	url string,
	opts models.PageOptions,
) (browser.PageSession, func(), error) {
	if !s.driver.Ready() {
		return nil, nil, models.NewBrowserUnavailableError(errors.New("browser is not ready"))
	}

	if !s.allowlist.Allowed(url) {
		return nil, nil, models.NewURLNotAllowedError(errors.New("URL host is not allowed"))
	}

	if s.qa.Enabled() {
		if err := s.qa.Reserve(); err != nil {
			return nil, nil, err
		}
	}

	page, err := s.driver.NewPage(ctx, opts)
	if err != nil {
		s.releaseQuota()
		return nil, nil, err
	}

	release := func() {
		if err := page.Close(); err != nil {
			s.l.Warnw("failed to close page context", zap.Error(err))
		}
		s.releaseQuota()
	}
	return page, release, nil
}

func (s *CaptureServiceImpl) releaseQuota() {
	if s.qa.Enabled() {
		s.qa.Release()
	}
}
