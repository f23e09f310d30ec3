package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(env map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func validEnv() map[string]string {
	return map[string]string{
		"SWIFTWALLET_API_URL":    "https://swiftwallet.stkpush.co.ke/payments/api/stk-push/",
		"SWIFTWALLET_VERIFY_URL": "https://swiftwallet.stkpush.co.ke/payments/api/verify-payment/",
		"SWIFTWALLET_PLATFORM":   "platform-123",
		"SWIFTWALLET_ACCOUNT_ID": "000358",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(envLookup(validEnv()))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.addr)
	assert.Equal(t, "development", cfg.env)
	assert.Equal(t, "platform-123", cfg.gateway.platform)
	assert.Equal(t, "000358", cfg.gateway.accountID)
	assert.Equal(t, 30*time.Second, cfg.gateway.timeout)
	assert.Equal(t, int32(10), cfg.db.maxConns)
	assert.Equal(t, "15m", cfg.db.maxIdleTime)
	assert.Empty(t, cfg.db.addr)
	assert.False(t, cfg.rateLimiter.Enabled)
	assert.Equal(t, 200, cfg.rateLimiter.RequestsPerTimeFrame)
	assert.False(t, cfg.auth.basic.enabled())
	assert.Equal(t, []string{"https://*", "http://*"}, cfg.corsOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	env := validEnv()
	env["ADDR"] = ":9090"
	env["SWIFTWALLET_TIMEOUT"] = "5s"
	env["RATE_LIMITER_ENABLED"] = "true"
	env["RATELIMITER_REQUESTS_COUNT"] = "20"
	env["AUTH_BASIC_USER"] = "ops"
	env["AUTH_BASIC_PASS"] = "secret"
	env["CORS_ALLOWED_ORIGINS"] = "https://app.example.com, https://admin.example.com"

	cfg, err := loadConfig(envLookup(env))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.addr)
	assert.Equal(t, 5*time.Second, cfg.gateway.timeout)
	assert.True(t, cfg.rateLimiter.Enabled)
	assert.Equal(t, 20, cfg.rateLimiter.RequestsPerTimeFrame)
	assert.True(t, cfg.auth.basic.enabled())
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.corsOrigins)
}

func TestLoadConfig_ReportsEveryMissingGatewayKey(t *testing.T) {
	_, err := loadConfig(envLookup(map[string]string{}))
	require.Error(t, err)

	for _, key := range []string{"SWIFTWALLET_API_URL", "SWIFTWALLET_VERIFY_URL", "SWIFTWALLET_PLATFORM", "SWIFTWALLET_ACCOUNT_ID"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"SWIFTWALLET_API_URL":        "not a url",
		"SWIFTWALLET_VERIFY_URL":     "ftp://swiftwallet/verify/",
		"SWIFTWALLET_TIMEOUT":        "-1s",
		"DB_MAX_CONNS":               "zero",
		"RATELIMITER_REQUESTS_COUNT": "0",
		"RATE_LIMITER_ENABLED":       "maybe",
	}

	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			env := validEnv()
			env[key] = val

			_, err := loadConfig(envLookup(env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
