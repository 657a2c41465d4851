package controllers

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/browserd/browserd/pkg/dto"
)

// InfoController serves build information baked in at compile time.
type InfoController struct {
	info dto.AppInfo
}

func NewInfoController(appName string, gitRef string, gitSha string) *InfoController {
	return &InfoController{
		info: dto.AppInfo{
			Name:      appName,
			GitRef:    gitRef,
			GitSha:    gitSha,
			GoVersion: runtime.Version(),
		},
	}
}

func (i *InfoController) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, &i.info)
}
