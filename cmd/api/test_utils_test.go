package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"tynpay/internal/payments"
	"tynpay/internal/ratelimiter"
	"tynpay/internal/store"

	"go.uber.org/zap"
)

type auditEntry struct {
	reference string
	logType   string
	payload   any
}

type recordingLogs struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (l *recordingLogs) InsertPaymentLog(ctx context.Context, reference, logType string, payload any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, auditEntry{reference, logType, payload})
	return nil
}

func (l *recordingLogs) types() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		out = append(out, e.logType)
	}
	return out
}

func testConfig() config {
	return config{
		addr: ":0",
		env:  "test",
		gateway: gatewayConfig{
			platform:  "platform-123",
			accountID: "000358",
			timeout:   5 * time.Second,
		},
		auth: authConfig{
			basic: basicConfig{user: "ops", pass: "secret"},
		},
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: 200,
			TimeFrame:            5 * time.Second,
			Enabled:              false,
		},
		corsOrigins: []string{"https://*", "http://*"},
	}
}

// newTestApplication wires an application against a fake SwiftWallet server
// backed by gatewayHandler.
func newTestApplication(t *testing.T, cfg config, gatewayHandler http.HandlerFunc) (*application, *recordingLogs) {
	t.Helper()

	srv := httptest.NewServer(gatewayHandler)
	t.Cleanup(srv.Close)

	cfg.gateway.apiURL = srv.URL + "/payments/api/stk-push/"
	cfg.gateway.verifyURL = srv.URL + "/payments/api/verify-payment/"

	logger := zap.NewNop().Sugar()
	logs := &recordingLogs{}

	app := &application{
		config: cfg,
		logger: logger,
		store:  store.Storage{PayLogs: logs},
		gateway: payments.NewSwiftWalletAdapter(payments.SwiftWalletConfig{
			APIURL:    cfg.gateway.apiURL,
			VerifyURL: cfg.gateway.verifyURL,
			Platform:  cfg.gateway.platform,
			AccountID: cfg.gateway.accountID,
		}, srv.Client(), logger),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(
			cfg.rateLimiter.RequestsPerTimeFrame,
			cfg.rateLimiter.TimeFrame,
		),
	}
	return app, logs
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}
