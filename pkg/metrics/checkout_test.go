package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestCheckoutMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewCheckoutMetrics(reg)

	metrics.ObserveSale("cash", 45000, 3)
	metrics.ObserveSale("cash", 5000, 1)
	metrics.IncFailure("EMPTY_CART")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "pos_checkouts_total", "payment_method", "cash"); err != nil {
		t.Fatalf("fetch checkouts: %v", err)
	} else if got != 2 {
		t.Fatalf("expected checkouts=2, got %f", got)
	}

	if got, err := fetchPlainCounterValue(mfs, "pos_revenue_total"); err != nil {
		t.Fatalf("fetch revenue: %v", err)
	} else if got != 50000 {
		t.Fatalf("expected revenue=50000, got %f", got)
	}

	if got, err := fetchPlainCounterValue(mfs, "pos_items_sold_total"); err != nil {
		t.Fatalf("fetch items: %v", err)
	} else if got != 4 {
		t.Fatalf("expected items=4, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "pos_checkout_failures_total", "code", "EMPTY_CART"); err != nil {
		t.Fatalf("fetch failures: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failures=1, got %f", got)
	}
}

func TestCheckoutMetricsNilSafe(t *testing.T) {
	var metrics *CheckoutMetrics
	metrics.ObserveSale("cash", 1000, 1)
	metrics.IncFailure("NOT_FOUND")

	empty := NewCheckoutMetrics(nil)
	empty.ObserveSale("qris", 1000, 1)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchPlainCounterValue(mfs []*dto.MetricFamily, name string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		return metric.GetCounter().GetValue(), nil
	}
	return 0, fmt.Errorf("metric %q has no samples", name)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
