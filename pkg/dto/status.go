package dto

const (
	BrowserAvailable   = "available"
	BrowserUnavailable = "unavailable"
)

type Health struct {
	Status  string `json:"status"`
	Browser string `json:"browser"`
}

type AppInfo struct {
	Name      string `json:"name"`
	GitRef    string `json:"gitref"`
	GitSha    string `json:"gitsha"`
	GoVersion string `json:"goversion"`
}

type EngineStatus struct {
	Name    string `json:"name"`
	Channel string `json:"channel,omitempty"`
	Ready   bool   `json:"ready"`
}

type Stats struct {
	Requested  int64                    `json:"requested"`
	Completed  int64                    `json:"completed"`
	Failed     int64                    `json:"failed"`
	Operations map[string]CaptureCounts `json:"operations"`
}

type CaptureCounts struct {
	Requested int64 `json:"requested"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}
