package limit

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/browserd/browserd/pkg/models"
)

// LimitQuotaAuthorizer caps the number of simultaneously open pages. Requests
// over the limit fail fast, there is no waiting queue.
type LimitQuotaAuthorizer struct {
	limit     int
	allocated int
	m         sync.RWMutex
	l         *zap.SugaredLogger
}

func NewLimitQuotaAuthorizer(limit int, l *zap.Logger) *LimitQuotaAuthorizer {
	logger := l.Sugar()
	logger.Infow("initializing page quota", zap.Int("limit", limit))
	return &LimitQuotaAuthorizer{
		limit: limit,
		l:     logger,
	}
}

func (q *LimitQuotaAuthorizer) Enabled() bool {
	return q != nil
}

func (q *LimitQuotaAuthorizer) Reserve() error {
	q.m.Lock()
	defer q.m.Unlock()
	if q.allocated >= q.limit {
		return models.NewQuotaExceededError(errors.New(q.formatError("page quota exceeded")))
	}
	q.allocated++
	q.l.Debugf("quota reserved: allocated=%d", q.allocated)
	return nil
}

func (q *LimitQuotaAuthorizer) Release() int {
	q.m.Lock()
	defer q.m.Unlock()

	if q.allocated < 1 {
		q.l.Warnf("quota underrun detected, resetting to 0: allocated=%d", q.allocated)
		q.allocated = 0
	} else {
		q.allocated--
		q.l.Debugf("quota released: allocated=%d", q.allocated)
	}
	return q.allocated
}

func (q *LimitQuotaAuthorizer) Limit() int {
	return q.limit
}

func (q *LimitQuotaAuthorizer) Allocated() int {
	q.m.RLock()
	defer q.m.RUnlock()
	return q.allocated
}

func (q *LimitQuotaAuthorizer) formatError(msg string) string {
	return fmt.Sprintf("%s: allocated=%d, limit=%d", msg, q.allocated, q.limit)
}
