package router

import "fmt"

const (
	HealthPath = "/health"

	ScreenshotPath = "/screenshot"
	NavigatePath   = "/navigate"
	ExecutePath    = "/execute"

	InfoPath    = "/info"
	EnginesPath = "/engines"
	ConfigPath  = "/config"
	StatsPath   = "/stats"
	EventsPath  = "/events"

	NameParam = "name"
)

func NameRoute(s string) string {
	return fmt.Sprintf(s, NameParam)
}
