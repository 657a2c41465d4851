package app

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/browserd/browserd/internal/browser"
	"github.com/browserd/browserd/internal/controllers"
	"github.com/browserd/browserd/internal/router"
	"github.com/browserd/browserd/internal/services/capture"
	"github.com/browserd/browserd/internal/services/stats"
	"github.com/browserd/browserd/pkg/browsers"
	"github.com/browserd/browserd/pkg/config"
	"github.com/browserd/browserd/pkg/event"
	"github.com/browserd/browserd/pkg/models"
)

type (
	HealthController interface {
		Health(c echo.Context) error
	}

	CaptureController interface {
		Screenshot(c echo.Context) error
		Navigate(c echo.Context) error
		Execute(c echo.Context) error
	}

	InfoController interface {
		Info(c echo.Context) error
	}

	EnginesController interface {
		Engines(c echo.Context) error
	}

	ConfigController interface {
		List(c echo.Context) error
		GetConfig(c echo.Context) error
	}

	StatsController interface {
		Stats(c echo.Context) error
	}

	EventsController interface {
		Events(c echo.Context) error
	}
)

func initEcho(cfg config.Config, l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controllers.ErrorHandler

	// Middleware
	InitMiddleware(cfg, e, l)
	return e
}

func InitMiddlewareFunc(_ config.Config, e *echo.Echo, srvLogger *zap.Logger) {
	if srvLogger.Core().Enabled(zap.DebugLevel) {
		accLogger := srvLogger.Named("access").Sugar()
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				l := accLogger.With(zap.Time("start_time", v.StartTime),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("remote_ip", v.RemoteIP),
					zap.Duration("latency", v.Latency),
					zap.Int("status", v.Status))
				if v.Error != nil {
					l = l.With(zap.Error(v.Error))
				}
				l.Debug()
				return nil
			},
			LogLatency:   true,
			LogRemoteIP:  true,
			LogMethod:    true,
			LogURI:       true,
			LogRequestID: true,
			LogUserAgent: true,
			LogStatus:    true,
			LogError:     true,
			HandleError:  true,
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true, // this will be handled by zap logger
		LogErrorFunc: func(c echo.Context, err error, _ []byte) error {
			srvLogger.With(zap.Error(err), zap.String("uri", c.Request().RequestURI)).Error("panic recovered")
			return err
		},
	}))
}

func InitAPIFunc(
	cfg config.Config,
	e *echo.Echo,
	healthController HealthController,
	captureController CaptureController,
	infoController InfoController,
	enginesController EnginesController,
	configController ConfigController,
	statsController StatsController,
	eventsController EventsController,
) {
	auth := tokenAuth(cfg)

	e.GET(router.HealthPath, healthController.Health)

	e.POST(router.ScreenshotPath, captureController.Screenshot, auth)
	e.POST(router.NavigatePath, captureController.Navigate, auth)
	e.POST(router.ExecutePath, captureController.Execute, auth)

	e.GET(router.InfoPath, infoController.Info)
	e.GET(router.EnginesPath, enginesController.Engines)
	e.GET(router.ConfigPath, configController.List)
	e.GET(router.NameRoute(router.ConfigPath+"/:%s"), configController.GetConfig)
	e.GET(router.StatsPath, statsController.Stats)
	e.GET(router.EventsPath, eventsController.Events, auth)
}

// tokenAuth guards mutating endpoints with a static bearer token. With no
// token configured the check is disabled entirely.
func tokenAuth(cfg config.ServerConfig) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(_ echo.Context) bool {
			return cfg.APIToken() == ""
		},
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(key string, _ echo.Context) (bool, error) {
			if key != cfg.APIToken() {
				return false, models.NewForbiddenError(errors.New("Invalid API token"))
			}
			return true, nil
		},
		ErrorHandler: func(err error, _ echo.Context) error {
			apiErr := &models.APIError{}
			if stderrors.As(err, &apiErr) {
				return apiErr
			}
			return models.NewUnauthorizedError(errors.New("Missing or invalid Authorization header"))
		},
	})
}

func listen(cfg config.Config) string {
	if val := cfg.Listen(); val != "" {
		return val
	}
	return fmt.Sprintf("0.0.0.0:%d", cfg.Port())
}

func initHealthController(svc capture.CaptureService) *controllers.HealthController {
	return controllers.NewHealthController(svc)
}

func initCaptureController(svc capture.CaptureService, eb event.EventBroker, cLog *zap.Logger) *controllers.CaptureController {
	return controllers.NewCaptureController(svc, eb, time.Now, cLog.Named("capture"))
}

func initInfoController(appName, gitRef, gitSha string) *controllers.InfoController {
	return controllers.NewInfoController(appName, gitRef, gitSha)
}

func initEnginesController(catalog browsers.EnginesCatalog, drv browser.Driver) *controllers.EnginesController {
	return controllers.NewEnginesController(catalog, drv)
}

func initConfigController(enginesConfig []byte) *controllers.ConfigController {
	return controllers.NewConfigController(map[string]string{enginesFile: string(enginesConfig)})
}

func initStatsController(svc stats.StatsService) *controllers.StatsController {
	return controllers.NewStatsController(svc)
}

func initEventsController(eb event.EventBroker, cLog *zap.Logger) *controllers.EventsController {
	return controllers.NewEventsController(eb, cLog.Named("events"))
}
