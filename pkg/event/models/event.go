package models

import "time"

var now = time.Now

// IEvent is the envelope the broker routes on.
type IEvent interface {
	EventTime() time.Time
	EventType() string
}

// Event pairs the routing envelope with typed attributes.
type Event[T any] struct {
	typ string
	ts  time.Time

	Attributes T
}

func NewEvent[T any](eventType string, ts time.Time, attributes T) *Event[T] {
	return &Event[T]{
		typ:        eventType,
		ts:         ts,
		Attributes: attributes,
	}
}

func (e *Event[T]) EventType() string {
	return e.typ
}

func (e *Event[T]) EventTime() time.Time {
	return e.ts
}
