package pricing

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/noah-isme/cartprice/internal/cart"
	"github.com/noah-isme/cartprice/internal/obs"
)

// Summary aggregates computed pricing components.
type Summary struct {
	Subtotal         decimal.Decimal
	CampaignDiscount decimal.Decimal
	CouponDiscount   decimal.Decimal
	Shipping         decimal.Decimal
	Total            decimal.Decimal

	Campaigns     []cart.CampaignResult
	CouponApplied bool
}

// Discounted is the subtotal after campaign and coupon discounts, before shipping.
func (s Summary) Discounted() decimal.Decimal {
	return s.Subtotal.Sub(s.CampaignDiscount).Sub(s.CouponDiscount)
}

// Compute calculates the payable total from its components.
func Compute(subtotal, campaignDiscount, couponDiscount, shipping decimal.Decimal) Summary {
	total := subtotal.Sub(campaignDiscount).Sub(couponDiscount).Add(shipping)
	return Summary{
		Subtotal:         subtotal,
		CampaignDiscount: campaignDiscount,
		CouponDiscount:   couponDiscount,
		Shipping:         shipping,
		Total:            total,
	}
}

// Engine produces instrumented price quotes for carts. The zero value is usable.
type Engine struct {
	Logger  zerolog.Logger
	Metrics *obs.PricingMetrics
	Tracer  trace.Tracer
}

func (e *Engine) tracer() trace.Tracer {
	if e.Tracer != nil {
		return e.Tracer
	}
	return noop.NewTracerProvider().Tracer(obs.InstrumentationName)
}

// Quote evaluates every derived total of c from its current state.
func (e *Engine) Quote(ctx context.Context, c *cart.Cart) Summary {
	_, span := e.tracer().Start(ctx, "pricing.Quote", trace.WithAttributes(
		attribute.String("cart.id", c.ID.String()),
		attribute.Int("cart.products", c.ProductCount()),
		attribute.Int("cart.deliveries", c.DeliveryCount()),
	))
	defer span.End()

	breakdown := c.CampaignBreakdown()
	campaignDiscount := decimal.Zero
	for _, res := range breakdown {
		campaignDiscount = campaignDiscount.Add(res.Amount)
	}
	couponDiscount := c.CouponDiscount()
	_, hasCoupon := c.Coupon()

	summary := Compute(c.TotalPrice(), campaignDiscount, couponDiscount, c.DeliveryCost())
	summary.Campaigns = breakdown
	summary.CouponApplied = hasCoupon && couponDiscount.IsPositive()

	span.SetAttributes(
		attribute.String("pricing.subtotal", summary.Subtotal.String()),
		attribute.String("pricing.total", summary.Total.String()),
		attribute.Int("pricing.campaigns", len(breakdown)),
		attribute.Bool("pricing.coupon_applied", summary.CouponApplied),
	)
	e.record(breakdown, hasCoupon, summary)

	e.Logger.Debug().
		Str("cart_id", c.ID.String()).
		Int("products", c.ProductCount()).
		Int("deliveries", c.DeliveryCount()).
		Str("subtotal", summary.Subtotal.String()).
		Str("campaign_discount", summary.CampaignDiscount.String()).
		Str("coupon_discount", summary.CouponDiscount.String()).
		Str("shipping", summary.Shipping.String()).
		Str("total", summary.Total.String()).
		Msg("pricing_quote")
	return summary
}

func (e *Engine) record(breakdown []cart.CampaignResult, hasCoupon bool, s Summary) {
	m := e.Metrics
	if m == nil {
		return
	}
	m.QuotesTotal.Inc()
	for _, res := range breakdown {
		result := "ineligible"
		if res.Eligible {
			result = "applied"
		}
		m.CampaignsTotal.WithLabelValues(res.Campaign.Category, result).Inc()
	}
	switch {
	case !hasCoupon:
		m.CouponsTotal.WithLabelValues("none").Inc()
	case s.CouponApplied:
		m.CouponsTotal.WithLabelValues("applied").Inc()
	default:
		m.CouponsTotal.WithLabelValues("ineligible").Inc()
	}
	if s.CampaignDiscount.IsPositive() {
		m.DiscountedTotal.WithLabelValues("campaign").Add(s.CampaignDiscount.InexactFloat64())
	}
	if s.CouponDiscount.IsPositive() {
		m.DiscountedTotal.WithLabelValues("coupon").Add(s.CouponDiscount.InexactFloat64())
	}
	m.FinalPrice.Observe(s.Total.InexactFloat64())
}
