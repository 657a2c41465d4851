package app

import (
	"context"
	"io"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/browserd/browserd/internal/browser"
	hc "github.com/browserd/browserd/internal/common/client"
	"github.com/browserd/browserd/internal/services/capture"
	"github.com/browserd/browserd/internal/services/stats"
	"github.com/browserd/browserd/pkg/browsers"
	"github.com/browserd/browserd/pkg/config"
	"github.com/browserd/browserd/pkg/event"
	"github.com/browserd/browserd/pkg/log"
	"github.com/browserd/browserd/pkg/quota"
	"github.com/browserd/browserd/pkg/quota/limit"
	"github.com/browserd/browserd/pkg/signal"
)

const (
	enginesFile = "engines.yaml"

	// browser installation on first start can take a while
	driverStartTimeout = 5 * time.Minute
)

var InitLog *zap.SugaredLogger

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() config.Config {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	return cfg
}

func InitSignalHandlerFunc(_ config.Config) *signal.Handler {
	l := log.GetLogger().Named("signal")
	return signal.NewHandler(5*time.Second, l)
}

func loadEnginesConfig(cfg config.Config, httpClient hc.HTTPClient) []byte {
	uri := cfg.EnginesURI()
	if uri == "" {
		return browsers.DefaultCatalog()
	}

	var (
		data []byte
		err  error
	)
	httpPattern := regexp.MustCompile(`(?i)^https?://.+`)
	if httpPattern.MatchString(uri) {
		data, err = downloadEnginesConfig(httpClient, uri)
	} else {
		data, err = os.ReadFile(uri)
	}
	if err != nil {
		InitLog.Fatalw("failed to load engines config", zap.Error(err), zap.String("uri", uri))
	}
	return data
}

func downloadEnginesConfig(httpClient hc.HTTPClient, uri string) ([]byte, error) {
	InitLog.Infow("downloading engines config from remote URL", zap.String("url", uri))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("request %s failed with code %d", uri, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func InitEnginesCatalogFunc(_ config.Config, enginesConfig []byte) browsers.EnginesCatalog {
	cat, err := browsers.NewYamlEnginesCatalog(enginesConfig)
	if err != nil {
		InitLog.Fatalw("failed to initialize engines catalog", zap.Error(err))
	}

	return cat
}

func InitDriverFunc(cfg config.Config, catalog browsers.EnginesCatalog, sig *signal.Handler) browser.Driver {
	l := log.GetLogger().Named("driver")
	drv := browser.NewPlaywrightDriver(
		catalog,
		cfg.Headless(),
		cfg.RequestTimeout(),
		cfg.BlockedResourceTypes(),
		cfg.InstallBrowsers(),
		l,
	)
	sig.RegisterShutdownHook(nil, drv.Stop)
	return drv
}

func startDriver(cfg config.Config, drv browser.Driver) {
	ctx, cancel := context.WithTimeout(context.Background(), driverStartTimeout)
	defer cancel()

	InitLog.With(zap.String("lineage", cfg.Lineage())).Info("starting browser runtime")
	if err := drv.Start(ctx); err != nil {
		InitLog.Fatalw("failed to start browser runtime", zap.Error(err))
	}
}

func InitQuotaAuthorizerFunc(cfg config.Config) quota.QuotaAuthorizer {
	lim := cfg.MaxPages()
	if lim <= 0 {
		var qa *limit.LimitQuotaAuthorizer
		return qa
	}

	l := log.GetLogger().Named("quota")
	return limit.NewLimitQuotaAuthorizer(lim, l)
}

func InitEventBrokerFunc(_ config.Config, sig *signal.Handler) event.EventBroker {
	const defaultEventBufferSize = 100
	l := log.GetLogger().Named("event")
	eb := event.NewEventBrokerImpl(defaultEventBufferSize, l)
	sig.RegisterShutdownHook(eb, eb.ShutDown)
	return eb
}

func initCaptureService(
	drv browser.Driver,
	allowlist *browser.HostAllowlist,
	qa quota.QuotaAuthorizer,
) *capture.CaptureServiceImpl {
	l := log.GetLogger().Named("capture")
	return capture.NewCaptureService(drv, allowlist, qa, l)
}

func initStatsService(eb event.EventBroker) *stats.StatsServiceImpl {
	l := log.GetLogger().Named("stats")
	return stats.NewStatsService(eb, l)
}
