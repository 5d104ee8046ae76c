package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/noah-isme/cartprice/internal/config"
	"github.com/noah-isme/cartprice/internal/delivery"
	"github.com/noah-isme/cartprice/internal/obs"
	"github.com/noah-isme/cartprice/internal/pricing"
	"github.com/noah-isme/cartprice/internal/receipt"
	"github.com/noah-isme/cartprice/internal/scenario"
)

func main() {
	cfg := config.MustLoad()

	logger := obs.NewLoggerTo(os.Stderr, cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()
	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("cartdemo")
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	if cfg.TracingEnabled {
		shutdown, err := obs.InitTracer(ctx, cfg)
		if err != nil {
			logger.Error().Err(err).Msg("initialise tracing")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("shutdown tracer")
				}
			}()
		}
	}

	calc, err := delivery.NewCostCalculator(cfg.Delivery.CostPerDelivery, cfg.Delivery.CostPerProduct, cfg.Delivery.FixedCost)
	if err != nil {
		return err
	}

	sc := scenario.Sample()
	if cfg.ScenarioFile != "" {
		if sc, err = scenario.Load(cfg.ScenarioFile); err != nil {
			return err
		}
		logger.Info().Str("file", cfg.ScenarioFile).Msg("scenario loaded")
	}
	c, err := sc.Build(calc)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	engine := pricing.Engine{
		Logger:  logger,
		Metrics: obs.NewPricingMetrics(cfg.MetricsNamespace, registry),
		Tracer:  obs.Tracer(),
	}
	summary := engine.Quote(ctx, c)

	renderer, err := receipt.New(cfg.Currency, language.English)
	if err != nil {
		return err
	}
	if err := renderer.Render(os.Stdout, c, summary); err != nil {
		return err
	}

	if families, err := registry.Gather(); err == nil {
		logger.Debug().Int("metric_families", len(families)).Msg("pricing metrics gathered")
	}
	logger.Info().
		Str("cart_id", c.ID.String()).
		Str("total", summary.Total.StringFixed(2)).
		Bool("coupon_applied", summary.CouponApplied).
		Msg("cart priced")
	return nil
}
