// Package metrics exposes Prometheus counters for ledger activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "splitneat"

// Form names used as the "form" label on rejected submissions.
const (
	FormAddFriend = "add_friend"
	FormSplitBill = "split_bill"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	friendsAdded prometheus.Counter
	billsSplit   *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	requests     *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		friendsAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "friends_added_total",
			Help:      "Friends added to the ledger.",
		}),
		billsSplit: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_split_total",
			Help:      "Bills split, by who paid.",
		}, []string{"payer"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_rejections_total",
			Help:      "Form submissions rejected without changing state.",
		}, []string{"form"}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"code", "method"}),
	}
}

// FriendAdded counts one new friend.
func (m *Metrics) FriendAdded() {
	if m == nil {
		return
	}
	m.friendsAdded.Inc()
}

// BillSplit counts one split bill.
func (m *Metrics) BillSplit(payer string) {
	if m == nil {
		return
	}
	m.billsSplit.WithLabelValues(payer).Inc()
}

// Rejected counts one silently rejected form submission.
func (m *Metrics) Rejected(form string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(form).Inc()
}

// InstrumentHandler counts requests served by next.
func (m *Metrics) InstrumentHandler(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return promhttp.InstrumentHandlerCounter(m.requests, next)
}

// Handler serves the collectors registered with gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
