package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// ErrNegativeDeliveryCost is returned when a delivery factor is below zero.
var ErrNegativeDeliveryCost = errors.New("delivery cost factors must not be negative")

// Delivery holds the delivery cost policy factors.
type Delivery struct {
	CostPerDelivery decimal.Decimal
	CostPerProduct  decimal.Decimal
	FixedCost       decimal.Decimal
}

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv           string   `validate:"required"`
	LogFormat        string   `validate:"oneof=json console text"`
	LogLevel         string   `validate:"oneof=trace debug info warn error fatal panic disabled"`
	MetricsNamespace string   `validate:"required"`
	TracingEnabled   bool     `validate:"-"`
	OTLPEndpoint     string   `validate:"omitempty,url"`
	SamplingRatio    float64  `validate:"gte=0,lte=1"`
	Currency         string   `validate:"len=3,alpha"`
	ScenarioFile     string   `validate:"-"`
	Delivery         Delivery `validate:"-"`
}

var validate = validator.New()

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:           valueOrDefault(k.String("APP_ENV"), "development"),
		LogFormat:        strings.ToLower(valueOrDefault(k.String("OBS_LOG_FORMAT"), "json")),
		LogLevel:         strings.ToLower(valueOrDefault(k.String("OBS_LOG_LEVEL"), "info")),
		MetricsNamespace: valueOrDefault(k.String("OBS_METRICS_NAMESPACE"), "cartprice"),
		TracingEnabled:   parseBool(k.String("OBS_ENABLE_TRACING")),
		OTLPEndpoint:     strings.TrimSpace(k.String("OBS_OTLP_ENDPOINT")),
		SamplingRatio:    parseFloat(k.String("OBS_TRACING_SAMPLING_RATIO"), 1.0),
		Currency:         strings.ToUpper(valueOrDefault(k.String("CART_CURRENCY"), "USD")),
		ScenarioFile:     strings.TrimSpace(k.String("CART_SCENARIO_FILE")),
	}

	var err error
	if cfg.Delivery.CostPerDelivery, err = parseDecimal("DELIVERY_COST_PER_DELIVERY", k.String("DELIVERY_COST_PER_DELIVERY"), "1.0"); err != nil {
		return nil, err
	}
	if cfg.Delivery.CostPerProduct, err = parseDecimal("DELIVERY_COST_PER_PRODUCT", k.String("DELIVERY_COST_PER_PRODUCT"), "0.5"); err != nil {
		return nil, err
	}
	if cfg.Delivery.FixedCost, err = parseDecimal("DELIVERY_FIXED_COST", k.String("DELIVERY_FIXED_COST"), "2.99"); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseFloat(value string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseDecimal(key, value, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(valueOrDefault(value, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s: %w", key, ErrNegativeDeliveryCost)
	}
	return d, nil
}

// MustLoad behaves like Load but panics on error. Used by command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
