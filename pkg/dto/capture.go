package dto

type ScreenshotRequest struct {
	URL      string `json:"url"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	FullPage bool   `json:"full_page,omitempty"`
	Engine   string `json:"engine,omitempty"`
}

type ScreenshotResponse struct {
	Screenshot string `json:"screenshot"`
}

type NavigateRequest struct {
	URL       string `json:"url"`
	WaitUntil string `json:"wait_until,omitempty"`
	Engine    string `json:"engine,omitempty"`
}

type NavigateResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	HTML  string `json:"html"`
}

type ExecuteRequest struct {
	URL    string `json:"url"`
	Script string `json:"script"`
	Engine string `json:"engine,omitempty"`
}

type ExecuteResponse struct {
	Result interface{} `json:"result"`
}
