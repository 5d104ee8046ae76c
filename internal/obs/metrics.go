package obs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics groups Prometheus collectors for cart pricing.
type PricingMetrics struct {
	QuotesTotal     prometheus.Counter
	CampaignsTotal  *prometheus.CounterVec
	CouponsTotal    *prometheus.CounterVec
	DiscountedTotal *prometheus.CounterVec
	FinalPrice      prometheus.Histogram
}

// NewPricingMetrics registers and returns pricing collectors.
// A nil registerer uses the default Prometheus registry.
func NewPricingMetrics(namespace string, reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &PricingMetrics{
		QuotesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_quotes_total",
			Help:      "Total number of cart price quotes computed.",
		}),
		CampaignsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_campaign_evaluations_total",
			Help:      "Campaign evaluations by category and outcome.",
		}, []string{"category", "result"}),
		CouponsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_coupon_evaluations_total",
			Help:      "Coupon evaluations by outcome.",
		}, []string{"result"}),
		DiscountedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_discount_amount_total",
			Help:      "Sum of granted discounts by source.",
		}, []string{"source"}),
		FinalPrice: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pricing_final_price",
			Help:      "Distribution of final payable cart prices.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
	}
	mustRegisterCollector(reg, m.QuotesTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.QuotesTotal = v
		}
	})
	mustRegisterCollector(reg, m.CampaignsTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.CampaignsTotal = v
		}
	})
	mustRegisterCollector(reg, m.CouponsTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.CouponsTotal = v
		}
	})
	mustRegisterCollector(reg, m.DiscountedTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.DiscountedTotal = v
		}
	})
	mustRegisterCollector(reg, m.FinalPrice, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Histogram); ok {
			m.FinalPrice = v
		}
	})
	return m
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register pricing metric: %w", err))
	}
}
