package event

import (
	"context"
	"testing"
	"time"

	"github.com/browserd/browserd/pkg/event/models"

	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestEventBrokerImpl_Subscribe(t *testing.T) {
	g := NewWithT(t)
	b := NewEventBrokerImpl(1, zaptest.NewLogger(t))

	ch := b.Subscribe("test")

	ev1 := models.NewEvent("test", time.UnixMilli(111), "event1")
	b.Publish(ev1)
	ev2 := models.NewEvent("test", time.UnixMilli(122), "event2")
	b.Publish(ev2) // should be dropped

	var got models.IEvent
	g.Expect(ch).To(Receive(&got))
	g.Expect(got.(*models.Event[string])).To(Equal(ev1))
	g.Expect(ch).ToNot(Receive())

	err := b.ShutDown(context.TODO())

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(ch).To(BeClosed())
}

func TestEventBrokerImpl_Unsubscribe(t *testing.T) {
	g := NewWithT(t)
	observedCore, logs := observer.New(zap.WarnLevel)
	b := NewEventBrokerImpl(1, zap.New(observedCore))

	gone := b.Subscribe("test")
	b.Unsubscribe(gone)
	g.Expect(gone).To(BeClosed())

	// the removed channel must not accumulate drop warnings
	for i := 0; i < 5; i++ {
		b.Publish(models.NewEvent("test", time.UnixMilli(int64(i)), "event"))
	}
	g.Expect(logs.Len()).To(BeZero())

	kept := b.Subscribe("test")
	b.Publish(models.NewEvent("test", time.UnixMilli(999), "event"))
	g.Expect(kept).To(Receive())

	g.Expect(b.ShutDown(context.TODO())).To(Succeed())
	g.Expect(kept).To(BeClosed())
}

func TestEventBrokerImpl_Unsubscribe_MultipleTypes(t *testing.T) {
	g := NewWithT(t)
	b := NewEventBrokerImpl(1, zaptest.NewLogger(t))

	ch := b.Subscribe(models.CaptureRequestedEventType, models.CaptureFinishedEventType)
	b.Unsubscribe(ch)
	g.Expect(ch).To(BeClosed())

	// removing an unknown channel is a no-op
	b.Unsubscribe(ch)
	b.Unsubscribe(make(chan models.IEvent))

	g.Expect(b.ShutDown(context.TODO())).To(Succeed())
}

func TestEventBrokerImpl_MultipleTypes(t *testing.T) {
	g := NewWithT(t)
	b := NewEventBrokerImpl(2, zaptest.NewLogger(t))

	ch := b.Subscribe(models.CaptureRequestedEventType, models.CaptureFinishedEventType)

	req := models.NewCaptureRequestedEvent(models.CaptureRequested{URL: "http://test"})
	fin := models.NewCaptureFinishedEvent(models.CaptureFinished{URL: "http://test"})
	b.Publish(req)
	b.Publish(fin)

	var got models.IEvent
	g.Expect(ch).To(Receive(&got))
	g.Expect(got.EventType()).To(Equal(models.CaptureRequestedEventType))
	g.Expect(ch).To(Receive(&got))
	g.Expect(got.EventType()).To(Equal(models.CaptureFinishedEventType))

	g.Expect(b.ShutDown(context.TODO())).To(Succeed())
	g.Expect(ch).To(BeClosed())
}
