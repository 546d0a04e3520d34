package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records committed sales.
type CheckoutMetrics struct {
	checkouts *prometheus.CounterVec
	revenue   prometheus.Counter
	items     prometheus.Counter
	failures  *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_checkouts_total",
		Help: "Committed transactions by payment method.",
	}, []string{"payment_method"})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_revenue_total",
		Help: "Revenue in the smallest currency unit.",
	})
	items := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_items_sold_total",
		Help: "Units sold across all transactions.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_checkout_failures_total",
		Help: "Rejected checkouts by error code.",
	}, []string{"code"})
	reg.MustRegister(checkouts, revenue, items, failures)
	return &CheckoutMetrics{
		checkouts: checkouts,
		revenue:   revenue,
		items:     items,
		failures:  failures,
	}
}

// ObserveSale records a committed transaction.
func (c *CheckoutMetrics) ObserveSale(paymentMethod string, total int, quantity int) {
	if c == nil || c.checkouts == nil {
		return
	}
	c.checkouts.WithLabelValues(normalizeLabel(paymentMethod)).Inc()
	c.revenue.Add(float64(total))
	c.items.Add(float64(quantity))
}

// IncFailure increments the failure counter for the given error code.
func (c *CheckoutMetrics) IncFailure(code string) {
	if c == nil || c.failures == nil {
		return
	}
	c.failures.WithLabelValues(normalizeLabel(code)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
