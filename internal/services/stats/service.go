package stats

import (
	"sync"

	"go.uber.org/zap"

	"github.com/browserd/browserd/pkg/dto"
	"github.com/browserd/browserd/pkg/event"
	evmodels "github.com/browserd/browserd/pkg/event/models"
)

type StatsService interface {
	GetStats() *dto.Stats
}

// StatsServiceImpl aggregates capture events into per operation counters.
// Counters are process local and reset on restart.
type StatsServiceImpl struct {
	mtx  sync.RWMutex
	ops  map[string]*dto.CaptureCounts
	l    *zap.SugaredLogger
	done chan struct{}
}

func NewStatsService(eb event.EventBroker, l *zap.Logger) *StatsServiceImpl {
	s := &StatsServiceImpl{
		ops:  make(map[string]*dto.CaptureCounts),
		l:    l.Sugar(),
		done: make(chan struct{}),
	}
	ch := eb.Subscribe(evmodels.CaptureRequestedEventType, evmodels.CaptureFinishedEventType)
	go s.consume(ch)
	return s
}

func (s *StatsServiceImpl) GetStats() *dto.Stats {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	st := &dto.Stats{
		Operations: make(map[string]dto.CaptureCounts, len(s.ops)),
	}
	for op, c := range s.ops {
		st.Requested += c.Requested
		st.Completed += c.Completed
		st.Failed += c.Failed
		st.Operations[op] = *c
	}
	return st
}

// Done is closed once the event channel has been drained, tests use it to
// synchronize with the consumer goroutine.
func (s *StatsServiceImpl) Done() <-chan struct{} {
	return s.done
}

func (s *StatsServiceImpl) consume(ch <-chan evmodels.IEvent) {
	defer close(s.done)
	for e := range ch {
		switch ev := e.(type) {
		case *evmodels.Event[evmodels.CaptureRequested]:
			s.captureRequested(ev.Attributes)
		case *evmodels.Event[evmodels.CaptureFinished]:
			s.captureFinished(ev.Attributes)
		default:
			s.l.Warnf("skipping unexpected event type: %s", e.EventType())
		}
	}
}

func (s *StatsServiceImpl) captureRequested(ev evmodels.CaptureRequested) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.counts(string(ev.Operation)).Requested++
}

func (s *StatsServiceImpl) captureFinished(ev evmodels.CaptureFinished) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	c := s.counts(string(ev.Operation))
	if ev.Error != nil {
		c.Failed++
	} else {
		c.Completed++
	}
}

func (s *StatsServiceImpl) counts(op string) *dto.CaptureCounts {
	c, ok := s.ops[op]
	if !ok {
		c = &dto.CaptureCounts{}
		s.ops[op] = c
	}
	return c
}
