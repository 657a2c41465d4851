package browser

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/browserd/browserd/pkg/browsers"
	"github.com/browserd/browserd/pkg/models"
)

// PlaywrightDriver runs a single long-lived playwright runtime and one
// launched browser per enabled catalog engine. Pages are served from fresh
// short-lived contexts.
type PlaywrightDriver struct {
	catalog  browsers.EnginesCatalog
	headless bool
	timeout  time.Duration
	blocked  map[string]struct{}
	install  bool

	mu      sync.RWMutex
	pw      *playwright.Playwright
	engines map[models.Engine]playwright.Browser

	l *zap.SugaredLogger
}

func NewPlaywrightDriver(
	catalog browsers.EnginesCatalog,
	headless bool,
	timeout time.Duration,
	blockedResourceTypes []string,
	install bool,
	l *zap.Logger,
) *PlaywrightDriver {
	blocked := make(map[string]struct{}, len(blockedResourceTypes))
	for _, t := range blockedResourceTypes {
		blocked[t] = struct{}{}
	}
	return &PlaywrightDriver{
		catalog:  catalog,
		headless: headless,
		timeout:  timeout,
		blocked:  blocked,
		install:  install,
		engines:  make(map[models.Engine]playwright.Browser),
		l:        l.Sugar(),
	}
}

func (d *PlaywrightDriver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pw != nil {
		return nil
	}

	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if d.install {
		names := make([]string, 0, len(d.catalog.Engines()))
		for _, e := range d.catalog.Engines() {
			names = append(names, string(e))
		}
		runOpts.Browsers = names
		d.l.Infow("installing playwright driver and browsers", zap.Strings("browsers", names))
		if err := playwright.Install(runOpts); err != nil {
			return errors.Wrap(err, "failed to install playwright")
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return errors.Wrap(err, "failed to start playwright")
	}
	d.pw = pw

	for _, e := range d.catalog.Engines() {
		cfg, _ := d.catalog.Lookup(e)
		br, err := d.launch(e, cfg)
		if err != nil {
			d.l.Errorw("failed to launch engine", zap.String("engine", string(e)), zap.Error(err))
			continue
		}
		d.engines[e] = br
		d.l.Infow("engine launched", zap.String("engine", string(e)))
	}

	if len(d.engines) == 0 {
		return errors.New("no engines could be launched")
	}
	return nil
}

func (d *PlaywrightDriver) launch(engine models.Engine, cfg models.EngineConfig) (playwright.Browser, error) {
	bt, err := d.browserType(engine)
	if err != nil {
		return nil, err
	}
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(d.headless),
		Args:     cfg.Args,
	}
	if cfg.Channel != "" {
		opts.Channel = playwright.String(cfg.Channel)
	}
	return bt.Launch(opts)
}

func (d *PlaywrightDriver) browserType(engine models.Engine) (playwright.BrowserType, error) {
	switch engine {
	case models.EngineChromium:
		return d.pw.Chromium, nil
	case models.EngineFirefox:
		return d.pw.Firefox, nil
	case models.EngineWebkit:
		return d.pw.WebKit, nil
	default:
		return nil, errors.Errorf("unsupported engine: %s", engine)
	}
}

func (d *PlaywrightDriver) Stop(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for e, br := range d.engines {
		if err := br.Close(); err != nil {
			d.l.Warnw("failed to close engine", zap.String("engine", string(e)), zap.Error(err))
		}
		delete(d.engines, e)
	}

	if d.pw != nil {
		if err := d.pw.Stop(); err != nil {
			return errors.Wrap(err, "failed to stop playwright")
		}
		d.pw = nil
	}
	return nil
}

func (d *PlaywrightDriver) Ready() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, br := range d.engines {
		if br.IsConnected() {
			return true
		}
	}
	return false
}

func (d *PlaywrightDriver) EngineReady(engine models.Engine) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	br, ok := d.engines[engine]
	return ok && br.IsConnected()
}

func (d *PlaywrightDriver) NewPage(ctx context.Context, opts models.PageOptions) (PageSession, error) {
	if _, ok := d.catalog.Lookup(opts.Engine); !ok {
		return nil, models.NewBadRequestError(errors.Errorf("engine is not enabled: %s", opts.Engine))
	}

	d.mu.RLock()
	br, ok := d.engines[opts.Engine]
	d.mu.RUnlock()
	if !ok || !br.IsConnected() {
		return nil, models.NewBrowserUnavailableError(errors.Errorf("engine is not ready: %s", opts.Engine))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bCtx, err := br.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: opts.Width, Height: opts.Height},
	})
	if err != nil {
		return nil, WrapBrowserErr(err, "failed to create browser context")
	}

	if len(d.blocked) > 0 {
		err = bCtx.Route("**/*", func(route playwright.Route) {
			if _, blocked := d.blocked[route.Request().ResourceType()]; blocked {
				_ = route.Abort()
				return
			}
			_ = route.Continue()
		})
		if err != nil {
			_ = bCtx.Close()
			return nil, WrapBrowserErr(err, "failed to setup resource blocking")
		}
	}

	page, err := bCtx.NewPage()
	if err != nil {
		_ = bCtx.Close()
		return nil, WrapBrowserErr(err, "failed to create page")
	}
	page.SetDefaultTimeout(float64(d.timeout.Milliseconds()))

	return &playwrightPage{page: page, bCtx: bCtx}, nil
}

type playwrightPage struct {
	page playwright.Page
	bCtx playwright.BrowserContext
}

func (p *playwrightPage) Goto(url string, waitUntil models.WaitUntil) error {
	wu := playwright.WaitUntilState(waitUntil)
	_, err := p.page.Goto(url, playwright.PageGotoOptions{WaitUntil: &wu})
	return err
}

func (p *playwrightPage) Title() (string, error) {
	return p.page.Title()
}

func (p *playwrightPage) Content() (string, error) {
	return p.page.Content()
}

func (p *playwrightPage) URL() string {
	return p.page.URL()
}

func (p *playwrightPage) Screenshot(fullPage bool) ([]byte, error) {
	st := playwright.ScreenshotType("png")
	return p.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(fullPage),
		Type:     &st,
	})
}

func (p *playwrightPage) Evaluate(script string) (interface{}, error) {
	return p.page.Evaluate(script)
}

func (p *playwrightPage) Close() error {
	return p.bCtx.Close()
}

// WrapBrowserErr converts playwright failures to coded API errors, timeouts
// map to 504, anything else the browser reports maps to 502.
func WrapBrowserErr(err error, msg string) error {
	var e models.ErrorWithCode
	if errors.As(err, &e) {
		return errors.Wrap(err, msg)
	}
	if errors.Is(err, playwright.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(models.NewTimeoutError(err), msg)
	}
	return errors.Wrap(models.NewBrowserError(err), msg)
}
