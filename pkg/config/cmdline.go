package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")
	f.String(listen, "", "Listening address and/or port, default is "+
		fmt.Sprintf(":$PORT (or :%d when PORT is not set)", DefaultPort))
	f.Int(port, 0, fmt.Sprintf("Listening port used when --%s is not set, default is %d", listen, DefaultPort))
	f.String(apiToken, "", "Bearer token required on capture endpoints (auth is disabled when empty)")

	f.String(enginesURI, "", "Path or URL to engines YAML config file (built-in catalog is used when empty)")
	f.Bool(installBrowsers, false, "Install playwright driver and browser binaries on startup")
	f.Bool(headless, true, "Run browsers in headless mode")
	f.Duration(requestTimeout, 30*time.Second, "Navigation and page action timeout")

	f.Bool(blockResources, false, "Block page resource loading by type (defaults to image, media and font)")
	f.StringSlice(blockResourceTypes, nil, "Resource types to block, implies --"+blockResources)
	f.StringSlice(allowedHosts, nil, "Allowed target hosts, exact or *.domain entries (all hosts allowed when empty)")

	f.Int(maxPages, 0, "Limit for simultaneously open pages, 0 (default) to disable the limit")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}
