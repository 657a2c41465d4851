package main

import (
	"github.com/browserd/browserd/pkg/app"
)

const appName = "browserd"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}
