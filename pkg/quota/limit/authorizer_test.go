package limit

import (
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"

	"github.com/browserd/browserd/pkg/models"
)

func TestLimitQuotaAuthorizer(t *testing.T) {
	g := NewWithT(t)
	q := NewLimitQuotaAuthorizer(2, zaptest.NewLogger(t))

	g.Expect(q.Enabled()).To(BeTrue())
	g.Expect(q.Limit()).To(Equal(2))

	err := q.Reserve()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(q.Allocated()).To(Equal(1))

	err = q.Reserve()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(q.Allocated()).To(Equal(2))

	err = q.Reserve()
	g.Expect(err).To(HaveOccurred())
	var e models.ErrorWithCode
	g.Expect(errors.As(err, &e)).To(BeTrue())
	g.Expect(e.Code()).To(Equal(http.StatusTooManyRequests))
	g.Expect(q.Allocated()).To(Equal(2))

	got := q.Release()
	g.Expect(got).To(Equal(1))

	got = q.Release()
	g.Expect(got).To(Equal(0))

	got = q.Release()
	g.Expect(got).To(Equal(0))
	g.Expect(q.Allocated()).To(Equal(0))
}

func TestLimitQuotaAuthorizer_Disabled(t *testing.T) {
	g := NewWithT(t)
	var q *LimitQuotaAuthorizer

	g.Expect(q.Enabled()).To(BeFalse())
}
