package controllers

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/browserd/browserd/internal/common/clock"
	"github.com/browserd/browserd/internal/services/capture"
	"github.com/browserd/browserd/pkg/dto"
	"github.com/browserd/browserd/pkg/event"
	evmodels "github.com/browserd/browserd/pkg/event/models"
	"github.com/browserd/browserd/pkg/models"
)

type CaptureController struct {
	svc capture.CaptureService
	eb  event.EventBroker
	now clock.NowFunc
	l   *zap.SugaredLogger
}

func NewCaptureController(
	svc capture.CaptureService,
	eb event.EventBroker,
	now clock.NowFunc,
	l *zap.Logger,
) *CaptureController {
	return &CaptureController{
		svc: svc,
		eb:  eb,
		now: now,
		l:   l.Sugar(),
	}
}

func (cc *CaptureController) Screenshot(c echo.Context) error {
	var req dto.ScreenshotRequest
	opts, err := cc.screenshotOptions(c, &req)
	ev := evmodels.CaptureRequested{
		Operation: models.OpScreenshot,
		Engine:    opts.Engine,
		URL:       req.URL,
	}
	if err != nil {
		ev.Error = err
		cc.eb.Publish(evmodels.NewCaptureRequestedEvent(ev))
		return err
	}
	cc.eb.Publish(evmodels.NewCaptureRequestedEvent(ev))

	start := cc.now()
	png, err := cc.svc.Screenshot(c.Request().Context(), opts)
	cc.publishFinished(models.OpScreenshot, opts.Engine, opts.URL, start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.ScreenshotResponse{
		Screenshot: base64.StdEncoding.EncodeToString(png),
	})
}

func (cc *CaptureController) Navigate(c echo.Context) error {
	var req dto.NavigateRequest
	opts, err := cc.navigateOptions(c, &req)
	ev := evmodels.CaptureRequested{
		Operation: models.OpNavigate,
		Engine:    opts.Engine,
		URL:       req.URL,
	}
	if err != nil {
		ev.Error = err
		cc.eb.Publish(evmodels.NewCaptureRequestedEvent(ev))
		return err
	}
	cc.eb.Publish(evmodels.NewCaptureRequestedEvent(ev))

	start := cc.now()
	res, err := cc.svc.Navigate(c.Request().Context(), opts)
	cc.publishFinished(models.OpNavigate, opts.Engine, opts.URL, start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.NavigateResponse{
		Title: res.Title,
		URL:   res.URL,
		HTML:  res.HTML,
	})
}

func (cc *CaptureController) Execute(c echo.Context) error {
	var req dto.ExecuteRequest
	opts, err := cc.executeOptions(c, &req)
	ev := evmodels.CaptureRequested{
		Operation: models.OpExecute,
		Engine:    opts.Engine,
		URL:       req.URL,
	}
	if err != nil {
		ev.Error = err
		cc.eb.Publish(evmodels.NewCaptureRequestedEvent(ev))
		return err
	}
	cc.eb.Publish(evmodels.NewCaptureRequestedEvent(ev))

	start := cc.now()
	res, err := cc.svc.Execute(c.Request().Context(), opts)
	cc.publishFinished(models.OpExecute, opts.Engine, opts.URL, start, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.ExecuteResponse{Result: res})
}

func (cc *CaptureController) publishFinished(
	op models.Operation,
	engine models.Engine,
	reqURL string,
	start time.Time,
	err error,
) {
	cc.eb.Publish(evmodels.NewCaptureFinishedEvent(evmodels.CaptureFinished{
		Operation: op,
		Engine:    engine,
		URL:       reqURL,
		Duration:  cc.now().Sub(start),
		Error:     err,
	}))
}

func (cc *CaptureController) screenshotOptions(c echo.Context, req *dto.ScreenshotRequest) (models.ScreenshotOptions, error) {
	if err := c.Bind(req); err != nil {
		return models.ScreenshotOptions{}, models.NewBadRequestError(err)
	}

	page, err := pageOptions(req.Engine, req.Width, req.Height)
	if err != nil {
		return models.ScreenshotOptions{}, err
	}
	if err := validateTargetURL(req.URL); err != nil {
		return models.ScreenshotOptions{PageOptions: page}, err
	}

	return models.ScreenshotOptions{
		PageOptions: page,
		URL:         req.URL,
		FullPage:    req.FullPage,
	}, nil
}

func (cc *CaptureController) navigateOptions(c echo.Context, req *dto.NavigateRequest) (models.NavigateOptions, error) {
	if err := c.Bind(req); err != nil {
		return models.NavigateOptions{}, models.NewBadRequestError(err)
	}

	page, err := pageOptions(req.Engine, 0, 0)
	if err != nil {
		return models.NavigateOptions{}, err
	}
	waitUntil, err := models.ParseWaitUntil(req.WaitUntil)
	if err != nil {
		return models.NavigateOptions{PageOptions: page}, models.NewBadRequestError(err)
	}
	if err := validateTargetURL(req.URL); err != nil {
		return models.NavigateOptions{PageOptions: page}, err
	}

	return models.NavigateOptions{
		PageOptions: page,
		URL:         req.URL,
		WaitUntil:   waitUntil,
	}, nil
}

func (cc *CaptureController) executeOptions(c echo.Context, req *dto.ExecuteRequest) (models.ExecuteOptions, error) {
	if err := c.Bind(req); err != nil {
		return models.ExecuteOptions{}, models.NewBadRequestError(err)
	}

	page, err := pageOptions(req.Engine, 0, 0)
	if err != nil {
		return models.ExecuteOptions{}, err
	}
	if req.Script == "" {
		return models.ExecuteOptions{PageOptions: page}, models.NewBadRequestError(errors.New("script must not be empty"))
	}
	if len(req.Script) > models.MaxScriptLength {
		return models.ExecuteOptions{PageOptions: page},
			models.NewBadRequestError(errors.Errorf("script exceeds %d characters", models.MaxScriptLength))
	}
	if err := validateTargetURL(req.URL); err != nil {
		return models.ExecuteOptions{PageOptions: page}, err
	}

	return models.ExecuteOptions{
		PageOptions: page,
		URL:         req.URL,
		Script:      req.Script,
	}, nil
}

func pageOptions(engine string, width, height int) (models.PageOptions, error) {
	e, err := models.ParseEngine(engine)
	if err != nil {
		return models.PageOptions{}, models.NewBadRequestError(err)
	}

	if width == 0 {
		width = models.DefaultViewportWidth
	}
	if height == 0 {
		height = models.DefaultViewportHeight
	}
	if width < models.MinViewportWidth || width > models.MaxViewportWidth {
		return models.PageOptions{Engine: e}, models.NewBadRequestError(
			errors.Errorf("width must be between %d and %d", models.MinViewportWidth, models.MaxViewportWidth))
	}
	if height < models.MinViewportHeight || height > models.MaxViewportHeight {
		return models.PageOptions{Engine: e}, models.NewBadRequestError(
			errors.Errorf("height must be between %d and %d", models.MinViewportHeight, models.MaxViewportHeight))
	}

	return models.PageOptions{Engine: e, Width: width, Height: height}, nil
}

func validateTargetURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return models.NewBadRequestError(errors.Wrap(err, "invalid url"))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return models.NewBadRequestError(errors.Errorf("url must be absolute http(s): %s", rawURL))
	}
	return nil
}
