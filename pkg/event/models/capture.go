package models

import (
	"time"

	"github.com/browserd/browserd/pkg/models"
)

const (
	CaptureRequestedEventType = "CaptureRequested"
	CaptureFinishedEventType  = "CaptureFinished"
)

type CaptureRequested struct {
	Operation models.Operation
	Engine    models.Engine
	URL       string
	Error     error
}

type CaptureFinished struct {
	Operation models.Operation
	Engine    models.Engine
	URL       string
	Duration  time.Duration
	Error     error
}

func NewCaptureRequestedEvent(c CaptureRequested) *Event[CaptureRequested] {
	return NewEvent(CaptureRequestedEventType, now(), c)
}

func NewCaptureFinishedEvent(c CaptureFinished) *Event[CaptureFinished] {
	return NewEvent(CaptureFinishedEventType, now(), c)
}
