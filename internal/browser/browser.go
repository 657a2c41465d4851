package browser

import (
	"context"

	"github.com/browserd/browserd/pkg/models"
)

// PageSession is a single page in a dedicated browser context. Closing the
// session destroys the whole context along with any state it accumulated.
type PageSession interface {
	Goto(url string, waitUntil models.WaitUntil) error
	Title() (string, error)
	Content() (string, error)
	URL() string
	Screenshot(fullPage bool) ([]byte, error)
	Evaluate(script string) (interface{}, error)
	Close() error
}

// Driver owns the browser runtime and the engines launched from the catalog.
type Driver interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Ready() bool
	EngineReady(engine models.Engine) bool
	NewPage(ctx context.Context, opts models.PageOptions) (PageSession, error)
}
