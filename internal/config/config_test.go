package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Store.Backend = BackendMemory
	cfg.JWT.Secret = "secret"
	cfg.Firebase.ProjectID = "proj"
	cfg.Firebase.PrivateKey = "a2V5"
	cfg.Firebase.ClientEmail = "svc@proj.iam.gserviceaccount.com"
	return cfg
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Store.Backend = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.JWT.Secret = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Firebase.ProjectID = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.S3.Enabled = true
	assert.Error(t, cfg.Validate())
	cfg.S3.Endpoint = "http://localhost:8333"
	assert.NoError(t, cfg.Validate())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendMemory)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("FIREBASE_PROJECT_ID", "proj")
	t.Setenv("FIREBASE_PRIVATE_KEY", "a2V5")
	t.Setenv("FIREBASE_CLIENT_EMAIL", "svc@proj.iam.gserviceaccount.com")
	t.Setenv("PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}
