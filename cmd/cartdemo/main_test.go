package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cartprice/internal/config"
)

func TestRunSample(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{"CART_SCENARIO_FILE": "", "OBS_ENABLE_TRACING": ""})
	require.NoError(t, err)
	require.NoError(t, run(context.Background(), cfg, zerolog.Nop()))
}

func TestRunMissingScenario(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{"OBS_ENABLE_TRACING": ""})
	require.NoError(t, err)
	cfg.ScenarioFile = filepath.Join(t.TempDir(), "missing.yaml")
	require.Error(t, run(context.Background(), cfg, zerolog.Nop()))
}

func TestRunScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.yaml")
	body := `
categories:
  - name: Books
products:
  - title: Book A
    price: "12.50"
    category: Books
items:
  - product: Book A
    quantity: 2
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.LoadForTests(map[string]string{"OBS_ENABLE_TRACING": ""})
	require.NoError(t, err)
	cfg.ScenarioFile = path
	require.NoError(t, run(context.Background(), cfg, zerolog.Nop()))
}
