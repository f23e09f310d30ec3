package main

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tynpay/internal/ratelimiter"
)

type config struct {
	addr        string
	env         string
	apiURL      string
	gateway     gatewayConfig
	db          dbConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
	corsOrigins []string
}

type gatewayConfig struct {
	apiURL    string
	verifyURL string
	platform  string
	accountID string
	timeout   time.Duration
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

func (c basicConfig) enabled() bool {
	return c.user != "" && c.pass != ""
}

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// loadConfig builds the process configuration from the environment. Every
// missing or malformed required key is reported in the returned error.
func loadConfig(lookup lookupFunc) (config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	var errs []error

	cfg := config{
		addr:   get("ADDR", ":8080"),
		env:    get("ENV", "development"),
		apiURL: get("EXTERNAL_URL", "localhost:8080"),
		gateway: gatewayConfig{
			apiURL:    get("SWIFTWALLET_API_URL", ""),
			verifyURL: get("SWIFTWALLET_VERIFY_URL", ""),
			platform:  get("SWIFTWALLET_PLATFORM", ""),
			accountID: get("SWIFTWALLET_ACCOUNT_ID", ""),
		},
		db: dbConfig{
			addr:        get("DB_ADDR", ""),
			maxIdleTime: get("DB_MAX_IDLE_TIME", "15m"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: get("AUTH_BASIC_USER", ""),
				pass: get("AUTH_BASIC_PASS", ""),
			},
		},
		corsOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "https://*,http://*")),
	}

	required := map[string]string{
		"SWIFTWALLET_API_URL":    cfg.gateway.apiURL,
		"SWIFTWALLET_VERIFY_URL": cfg.gateway.verifyURL,
		"SWIFTWALLET_PLATFORM":   cfg.gateway.platform,
		"SWIFTWALLET_ACCOUNT_ID": cfg.gateway.accountID,
	}
	for _, key := range []string{"SWIFTWALLET_API_URL", "SWIFTWALLET_VERIFY_URL", "SWIFTWALLET_PLATFORM", "SWIFTWALLET_ACCOUNT_ID"} {
		if required[key] == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}
	for _, key := range []string{"SWIFTWALLET_API_URL", "SWIFTWALLET_VERIFY_URL"} {
		if v := required[key]; v != "" {
			if err := validateHTTPURL(v); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
		}
	}

	timeout, err := time.ParseDuration(get("SWIFTWALLET_TIMEOUT", "30s"))
	if err != nil || timeout <= 0 {
		errs = append(errs, fmt.Errorf("SWIFTWALLET_TIMEOUT must be a positive duration"))
	}
	cfg.gateway.timeout = timeout

	maxConns, err := strconv.ParseInt(get("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil || maxConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be a positive integer"))
	}
	cfg.db.maxConns = int32(maxConns)

	cfg.rateLimiter, err = loadRateLimiterConfig(get)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return config{}, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func loadRateLimiterConfig(get func(key, def string) string) (ratelimiter.Config, error) {
	requests, err := strconv.Atoi(get("RATELIMITER_REQUESTS_COUNT", "200"))
	if err != nil || requests <= 0 {
		return ratelimiter.Config{}, fmt.Errorf("RATELIMITER_REQUESTS_COUNT must be a positive integer")
	}
	enabled, err := strconv.ParseBool(get("RATE_LIMITER_ENABLED", "false"))
	if err != nil {
		return ratelimiter.Config{}, fmt.Errorf("RATE_LIMITER_ENABLED must be a boolean")
	}
	return ratelimiter.Config{
		RequestsPerTimeFrame: requests,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}, nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) url")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
