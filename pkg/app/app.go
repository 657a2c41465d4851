package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/browserd/browserd/internal/browser"
	hc "github.com/browserd/browserd/internal/common/client"
	"github.com/browserd/browserd/pkg/browsers"
	"github.com/browserd/browserd/pkg/config"
	"github.com/browserd/browserd/pkg/event"
	"github.com/browserd/browserd/pkg/quota"
	"github.com/browserd/browserd/pkg/signal"
)

var (
	InitLogger          func() *zap.Logger                                                           = InitLoggerFunc
	InitConfig          func() config.Config                                                         = InitConfigFunc
	InitSignalHandler   func(config.Config) *signal.Handler                                          = InitSignalHandlerFunc
	InitEnginesCatalog  func(config.Config, []byte) browsers.EnginesCatalog                          = InitEnginesCatalogFunc
	InitDriver          func(config.Config, browsers.EnginesCatalog, *signal.Handler) browser.Driver = InitDriverFunc
	InitQuotaAuthorizer func(config.Config) quota.QuotaAuthorizer                                    = InitQuotaAuthorizerFunc
	InitEventBroker     func(config.Config, *signal.Handler) event.EventBroker                       = InitEventBrokerFunc
	InitMiddleware      func(config.Config, *echo.Echo, *zap.Logger)                                 = InitMiddlewareFunc
	InitAPI             func(
		config.Config,
		*echo.Echo,
		HealthController,
		CaptureController,
		InfoController,
		EnginesController,
		ConfigController,
		StatsController,
		EventsController,
	) = InitAPIFunc
)

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	sig := InitSignalHandler(cfg)

	enginesConfig := loadEnginesConfig(cfg, hc.NewDefaultHTTPClient())
	catalog := InitEnginesCatalog(cfg, enginesConfig)

	drv := InitDriver(cfg, catalog, sig)
	startDriver(cfg, drv)

	qa := InitQuotaAuthorizer(cfg)
	eb := InitEventBroker(cfg, sig)

	allowlist := browser.NewHostAllowlist(cfg.AllowedHosts())
	captureSvc := initCaptureService(drv, allowlist, qa)
	statsSvc := initStatsService(eb)

	cLog := l.Named("controller")
	healthController := initHealthController(captureSvc)
	captureController := initCaptureController(captureSvc, eb, cLog)
	infoController := initInfoController(appName, gitRef, gitSha)
	enginesController := initEnginesController(catalog, drv)
	configController := initConfigController(enginesConfig)
	statsController := initStatsController(statsSvc)
	eventsController := initEventsController(eb, cLog)

	srvLog := l.Named("server")
	e := initEcho(cfg, srvLog)
	InitAPI(
		cfg,
		e,
		healthController,
		captureController,
		infoController,
		enginesController,
		configController,
		statsController,
		eventsController,
	)

	// Start server
	go func() {
		lstn := listen(cfg)
		sl := srvLog.Sugar()
		sl.Infof("listening on %s", lstn)
		if err := e.Start(lstn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sl.Fatalw("failed to start the server", zap.Error(err))
		}
	}()

	sig.RegisterShutdownHook(nil, e.Shutdown)
	os.Exit(sig.Start())
}
