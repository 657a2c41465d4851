package config

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ConfigPrefix = "BD"

const (
	DefaultPort = 8000

	listen             = "listen"
	port               = "port"
	apiToken           = "api-token"
	enginesURI         = "engines-uri"
	installBrowsers    = "install-browsers"
	headless           = "headless"
	requestTimeout     = "request-timeout"
	requestTimeoutMS   = "request-timeout-ms"
	blockResources     = "block-resources"
	blockResourceTypes = "block-resource-types"
	allowedHosts       = "allowed-hosts"
	maxPages           = "max-pages"
)

var (
	envReplacer = strings.NewReplacer("-", "_")

	// resource types blocked when --block-resources is set without an explicit list
	defaultBlockedTypes = []string{"image", "media", "font"}

	genLineage = uuid.NewString
)

type (
	ServerConfig interface {
		Listen() string
		Port() int
		APIToken() string
	}

	BrowserConfig interface {
		Headless() bool
		RequestTimeout() time.Duration
		EnginesURI() string
		InstallBrowsers() bool
	}

	CaptureConfig interface {
		BlockedResourceTypes() []string
		AllowedHosts() []string
		MaxPages() int
	}

	Config interface {
		ServerConfig
		BrowserConfig
		CaptureConfig
		Lineage() string
	}

	ConfigViper struct {
		v       *viper.Viper
		lineage string
	}
)

func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	return &ConfigViper{
		v:       v,
		lineage: genLineage(),
	}, nil
}

func (c *ConfigViper) Listen() string {
	return c.v.GetString(listen)
}

func (c *ConfigViper) Port() int {
	if p := c.v.GetInt(port); p > 0 {
		return p
	}
	return DefaultPort
}

func (c *ConfigViper) APIToken() string {
	return c.v.GetString(apiToken)
}

func (c *ConfigViper) Lineage() string {
	return c.lineage
}

func (c *ConfigViper) Headless() bool {
	return c.v.GetBool(headless)
}

// RequestTimeout prefers REQUEST_TIMEOUT_MS (integer milliseconds) over the
// --request-timeout duration flag
func (c *ConfigViper) RequestTimeout() time.Duration {
	if ms := c.v.GetInt(requestTimeoutMS); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return c.v.GetDuration(requestTimeout)
}

func (c *ConfigViper) EnginesURI() string {
	return c.v.GetString(enginesURI)
}

func (c *ConfigViper) InstallBrowsers() bool {
	return c.v.GetBool(installBrowsers)
}

func (c *ConfigViper) BlockedResourceTypes() []string {
	types := splitCSV(c.v.GetStringSlice(blockResourceTypes))
	if len(types) > 0 {
		return types
	}
	if c.v.GetBool(blockResources) {
		return defaultBlockedTypes
	}
	return nil
}

func (c *ConfigViper) AllowedHosts() []string {
	return splitCSV(c.v.GetStringSlice(allowedHosts))
}

func (c *ConfigViper) MaxPages() int {
	return c.v.GetInt(maxPages)
}

func bindEnvVars(v *viper.Viper) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)

	// unprefixed names used by the container entrypoint keep working along with BD_* variants
	for key, alias := range map[string]string{
		port:               "PORT",
		apiToken:           "API_TOKEN",
		headless:           "BROWSER_HEADLESS",
		requestTimeoutMS:   "REQUEST_TIMEOUT_MS",
		blockResources:     "BLOCK_RESOURCES",
		blockResourceTypes: "BLOCK_RESOURCE_TYPES",
		allowedHosts:       "ALLOWED_HOSTS",
	} {
		if err := v.BindEnv(key, alias); err != nil {
			return err
		}
	}
	return nil
}

// splitCSV flattens comma separated values coming from env vars along with
// repeated flag values, lowercasing and trimming each entry
func splitCSV(vals []string) []string {
	var res []string
	for _, val := range vals {
		for _, p := range strings.Split(val, ",") {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
				res = append(res, p)
			}
		}
	}
	return res
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
