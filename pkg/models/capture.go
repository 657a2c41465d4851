package models

import (
	"strings"

	"github.com/pkg/errors"
)

type Engine string

const (
	EngineChromium Engine = "chromium"
	EngineFirefox  Engine = "firefox"
	EngineWebkit   Engine = "webkit"

	DefaultEngine = EngineChromium
)

type Operation string

const (
	OpScreenshot Operation = "screenshot"
	OpNavigate   Operation = "navigate"
	OpExecute    Operation = "execute"
)

type WaitUntil string

const (
	WaitUntilLoad             WaitUntil = "load"
	WaitUntilDOMContentLoaded WaitUntil = "domcontentloaded"
	WaitUntilNetworkIdle      WaitUntil = "networkidle"
)

const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800

	MinViewportWidth  = 200
	MaxViewportWidth  = 3840
	MinViewportHeight = 200
	MaxViewportHeight = 2160

	MaxScriptLength = 10000
)

// PageOptions describe the browser context requested for a single capture.
type PageOptions struct {
	Engine Engine
	Width  int
	Height int
}

type ScreenshotOptions struct {
	PageOptions
	URL      string
	FullPage bool
}

type NavigateOptions struct {
	PageOptions
	URL       string
	WaitUntil WaitUntil
}

type ExecuteOptions struct {
	PageOptions
	URL    string
	Script string
}

type NavigateResult struct {
	Title string
	URL   string
	HTML  string
}

func ParseEngine(s string) (Engine, error) {
	if s == "" {
		return DefaultEngine, nil
	}
	switch e := Engine(strings.ToLower(s)); e {
	case EngineChromium, EngineFirefox, EngineWebkit:
		return e, nil
	default:
		return "", errors.Errorf("unsupported engine: %s", s)
	}
}

func ParseWaitUntil(s string) (WaitUntil, error) {
	if s == "" {
		return WaitUntilLoad, nil
	}
	switch w := WaitUntil(strings.ToLower(s)); w {
	case WaitUntilLoad, WaitUntilDOMContentLoaded, WaitUntilNetworkIdle:
		return w, nil
	default:
		return "", errors.Errorf("unsupported wait_until: %s", s)
	}
}
