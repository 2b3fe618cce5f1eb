package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, 7*24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.RememberMeTTL)
	assert.Equal(t, 10*time.Minute, cfg.Challenge.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Challenge.SweepInterval)
	assert.Equal(t, 5, cfg.Lockout.Threshold)
	assert.Equal(t, 30*time.Minute, cfg.Lockout.Window)
	assert.Equal(t, 30*time.Minute, cfg.Lockout.Duration)
	assert.Equal(t, BackendMemory, cfg.Challenge.Backend)
	assert.Equal(t, BackendMemory, cfg.Lockout.Backend)
	assert.Equal(t, "app", cfg.Mobile.Scheme)
	assert.Equal(t, "/auth/oauth/callback", cfg.OAuth.CallbackPath)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Lockout.Threshold = 3
	cfg.Challenge.TTL = time.Minute
	cfg.ApplyDefaults()

	assert.Equal(t, 3, cfg.Lockout.Threshold)
	assert.Equal(t, time.Minute, cfg.Challenge.TTL)
}

func TestValidate(t *testing.T) {
	t.Run("missing session secret", func(t *testing.T) {
		cfg := &Config{}
		cfg.ApplyDefaults()
		require.Error(t, cfg.Validate())
	})

	t.Run("redis backend without address", func(t *testing.T) {
		cfg := &Config{}
		cfg.SecretKey.Session = "secret"
		cfg.Challenge.Backend = BackendRedis
		cfg.ApplyDefaults()
		assert.ErrorContains(t, cfg.Validate(), "redis.addr")
	})

	t.Run("unknown lockout backend", func(t *testing.T) {
		cfg := &Config{}
		cfg.SecretKey.Session = "secret"
		cfg.Lockout.Backend = "etcd"
		cfg.ApplyDefaults()
		assert.ErrorContains(t, cfg.Validate(), "unknown lockout backend")
	})

	t.Run("valid", func(t *testing.T) {
		cfg := &Config{}
		cfg.SecretKey.Session = "secret"
		cfg.ApplyDefaults()
		assert.NoError(t, cfg.Validate())
	})
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.IsProduction())

	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())
}
