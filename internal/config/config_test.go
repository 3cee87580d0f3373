package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-inventory-dash/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_NAME", "Test Dashboard")
	t.Setenv("PORT", "4000")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Test Dashboard", cfg.App.Name)
	assert.Equal(t, 4000, cfg.App.Port)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
}
