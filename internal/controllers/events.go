package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"github.com/browserd/browserd/pkg/event"
	evmodels "github.com/browserd/browserd/pkg/event/models"
)

// EventsController streams capture lifecycle events to websocket clients.
type EventsController struct {
	eb event.EventBroker
	l  *zap.SugaredLogger
}

func NewEventsController(eb event.EventBroker, l *zap.Logger) *EventsController {
	return &EventsController{
		eb: eb,
		l:  l.Sugar(),
	}
}

type eventMessage struct {
	Type       string       `json:"type"`
	Time       time.Time    `json:"time"`
	Attributes captureAttrs `json:"attributes"`
}

type captureAttrs struct {
	Operation  string `json:"operation"`
	Engine     string `json:"engine"`
	URL        string `json:"url"`
	DurationMS int64  `json:"duration_ms,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (ec *EventsController) Events(c echo.Context) error {
	srv := websocket.Server{
		// non-browser clients send no Origin header, accept them as well
		Handshake: func(_ *websocket.Config, _ *http.Request) error {
			return nil
		},
		Handler: func(wsconn *websocket.Conn) {
			defer wsconn.Close()

			ch := ec.eb.Subscribe(evmodels.CaptureRequestedEventType, evmodels.CaptureFinishedEventType)
			defer ec.eb.Unsubscribe(ch)

			ctx := c.Request().Context()
			for {
				select {
				case e, ok := <-ch:
					if !ok {
						return
					}
					msg, ok := toEventMessage(e)
					if !ok {
						ec.l.Warnf("skipping unexpected event type: %s", e.EventType())
						continue
					}
					if err := websocket.JSON.Send(wsconn, msg); err != nil {
						ec.l.Debugw("event subscriber disconnected", zap.Error(err))
						return
					}
				case <-ctx.Done():
					return
				}
			}
		},
	}
	srv.ServeHTTP(c.Response(), c.Request())
	return nil
}

func toEventMessage(e evmodels.IEvent) (*eventMessage, bool) {
	switch ev := e.(type) {
	case *evmodels.Event[evmodels.CaptureRequested]:
		return &eventMessage{
			Type: ev.EventType(),
			Time: ev.EventTime(),
			Attributes: captureAttrs{
				Operation: string(ev.Attributes.Operation),
				Engine:    string(ev.Attributes.Engine),
				URL:       ev.Attributes.URL,
				Error:     errMessage(ev.Attributes.Error),
			},
		}, true
	case *evmodels.Event[evmodels.CaptureFinished]:
		return &eventMessage{
			Type: ev.EventType(),
			Time: ev.EventTime(),
			Attributes: captureAttrs{
				Operation:  string(ev.Attributes.Operation),
				Engine:     string(ev.Attributes.Engine),
				URL:        ev.Attributes.URL,
				DurationMS: ev.Attributes.Duration.Milliseconds(),
				Error:      errMessage(ev.Attributes.Error),
			},
		}, true
	default:
		return nil, false
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
