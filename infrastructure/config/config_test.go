package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "personality-questions", cfg.QuestionsTable)
	assert.Equal(t, "user-profiles", cfg.ProfilesTable)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("QUESTIONS_TABLE", "questions-test")
	t.Setenv("ENABLE_TRACING", "true")
	t.Setenv("SERVER_ADDRESS", ":9090")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "questions-test", cfg.QuestionsTable)
	assert.True(t, cfg.EnableTracing)
	assert.Equal(t, ":9090", cfg.ServerAddress)
}

func TestValidate_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
