package event

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/browserd/browserd/pkg/event/models"
)

type EventBroker interface {
	Subscribe(eventTypes ...string) <-chan models.IEvent
	Unsubscribe(ch <-chan models.IEvent)
	Publish(event models.IEvent)
}

type EventBrokerImpl struct {
	mtx   sync.RWMutex
	subs  map[string][]chan models.IEvent
	bSize int
	l     *zap.SugaredLogger
}

func NewEventBrokerImpl(bufferSize int, l *zap.Logger) *EventBrokerImpl {
	return &EventBrokerImpl{
		subs:  make(map[string][]chan models.IEvent),
		bSize: bufferSize,
		l:     l.Sugar(),
	}
}

func (b *EventBrokerImpl) Subscribe(eventTypes ...string) <-chan models.IEvent {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	ch := make(chan models.IEvent, b.bSize)
	for _, et := range eventTypes {
		b.subs[et] = append(b.subs[et], ch)
	}
	return ch
}

// Unsubscribe removes the channel from every event type it was registered
// for and closes it. Unknown or already removed channels are ignored.
func (b *EventBrokerImpl) Unsubscribe(ch <-chan models.IEvent) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	var removed chan models.IEvent
	for et, chs := range b.subs {
		for i, sub := range chs {
			if sub == ch {
				b.subs[et] = append(chs[:i], chs[i+1:]...)
				removed = sub
				break
			}
		}
		if len(b.subs[et]) == 0 {
			delete(b.subs, et)
		}
	}
	if removed != nil {
		close(removed)
	}
}

func (b *EventBrokerImpl) Publish(event models.IEvent) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	for _, ch := range b.subs[event.EventType()] {
		select {
		case ch <- event:
		default:
			b.l.With(zap.String("type", event.EventType())).
				Warnf("dropping published event, channel is full: length=%d", len(ch))
		}
	}
}

func (b *EventBrokerImpl) ShutDown(_ context.Context) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	closed := make(map[chan models.IEvent]bool)
	for et, chs := range b.subs {
		for _, ch := range chs {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
		delete(b.subs, et)
	}
	b.l.Info("event broker shutdown completed")
	return nil
}
