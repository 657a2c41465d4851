package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
	"github.com/posener/wstest"
	"go.uber.org/zap/zaptest"

	"github.com/browserd/browserd/internal/router"
	"github.com/browserd/browserd/mocks"
	"github.com/browserd/browserd/pkg/event"
	evmodels "github.com/browserd/browserd/pkg/event/models"
	"github.com/browserd/browserd/pkg/models"
)

func TestEventsController_Events(t *testing.T) {
	g := NewWithT(t)

	eb := event.NewEventBrokerImpl(10, zaptest.NewLogger(t))
	ev := NewEventsController(eb, zaptest.NewLogger(t))

	e := echo.New()
	e.GET(router.EventsPath, ev.Events)

	wc := dialEvents(g, e)
	defer wc.Close()

	// the subscription is registered asynchronously once the handler runs,
	// keep publishing until the first message makes it through
	done := make(chan struct{})
	defer close(done)
	go func() {
		tick := time.NewTicker(10 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				eb.Publish(evmodels.NewCaptureRequestedEvent(evmodels.CaptureRequested{
					Operation: models.OpScreenshot,
					Engine:    models.EngineChromium,
					URL:       "https://example.com/",
				}))
			}
		}
	}()

	var msg struct {
		Type       string `json:"type"`
		Attributes struct {
			Operation string `json:"operation"`
			Engine    string `json:"engine"`
			URL       string `json:"url"`
		} `json:"attributes"`
	}
	g.Expect(wc.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
	g.Expect(wc.ReadJSON(&msg)).To(Succeed())

	g.Expect(msg.Type).To(Equal(evmodels.CaptureRequestedEventType))
	g.Expect(msg.Attributes.Operation).To(Equal("screenshot"))
	g.Expect(msg.Attributes.Engine).To(Equal("chromium"))
	g.Expect(msg.Attributes.URL).To(Equal("https://example.com/"))
}

func TestEventsController_Events_UnsubscribesOnDisconnect(t *testing.T) {
	g := NewWithT(t)

	ch := make(chan evmodels.IEvent, 1)
	unsubscribed := make(chan struct{})

	eb := new(mocks.EventBroker)
	eb.EXPECT().
		Subscribe(evmodels.CaptureRequestedEventType, evmodels.CaptureFinishedEventType).
		Return((<-chan evmodels.IEvent)(ch)).
		Once()
	eb.EXPECT().
		Unsubscribe((<-chan evmodels.IEvent)(ch)).
		Run(func(_ <-chan evmodels.IEvent) {
			close(unsubscribed)
		}).
		Return().
		Once()

	ev := NewEventsController(eb, zaptest.NewLogger(t))

	e := echo.New()
	e.GET(router.EventsPath, ev.Events)

	wc := dialEvents(g, e)

	// keep feeding events so the closed connection surfaces as a send error
	done := make(chan struct{})
	defer close(done)
	go func() {
		tick := time.NewTicker(10 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				select {
				case ch <- evmodels.NewCaptureRequestedEvent(evmodels.CaptureRequested{URL: "https://example.com/"}):
				default:
				}
			}
		}
	}()

	g.Expect(wc.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
	var msg map[string]interface{}
	g.Expect(wc.ReadJSON(&msg)).To(Succeed())
	g.Expect(wc.Close()).To(Succeed())

	g.Eventually(unsubscribed).WithTimeout(5 * time.Second).Should(BeClosed())
	eb.AssertExpectations(t)
}

func TestEventsController_Events_BrokerShutdown(t *testing.T) {
	g := NewWithT(t)

	eb := event.NewEventBrokerImpl(10, zaptest.NewLogger(t))
	ev := NewEventsController(eb, zaptest.NewLogger(t))

	e := echo.New()
	e.GET(router.EventsPath, ev.Events)

	wc := dialEvents(g, e)
	defer wc.Close()

	g.Expect(eb.ShutDown(context.Background())).To(Succeed())

	g.Expect(wc.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
	var msg map[string]interface{}
	g.Expect(wc.ReadJSON(&msg)).To(HaveOccurred())
}

// dialEvents connects without an Origin header, like a non-browser API client.
func dialEvents(g *WithT, h http.Handler) *websocket.Conn {
	d := wstest.NewDialer(h)
	wc, _, err := d.Dial("ws://ignored/events", nil)
	g.Expect(err).ToNot(HaveOccurred())
	return wc
}
