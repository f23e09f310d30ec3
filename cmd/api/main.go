package main

import (
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"

	"tynpay/internal/db"
	"tynpay/internal/metrics"
	"tynpay/internal/payments"
	"tynpay/internal/ratelimiter"
	"tynpay/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a console zap logger with coloured levels.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

var version = "0.1.0"

//	@title			TYN Payments API
//	@description	STK push initiation and verification over SwiftWallet.

//	@contact.name	API Support

//	@BasePath					/
//	@securityDefinitions.basic	BasicAuth

func main() {
	// .env is optional; deployments inject the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg, err := loadConfig(os.LookupEnv)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Optional payment_logs audit pool. Payment routes never read from it.
	st := store.NewNoopStorage()
	if cfg.db.addr != "" {
		pool, err := db.New(cfg.db.addr, cfg.db.maxConns, cfg.db.maxIdleTime)
		if err != nil {
			logger.Fatal(err)
		}
		defer pool.Close()
		logger.Info("audit database connection pool established")

		st = store.NewStorage(pool)
		expvar.Publish("database", expvar.Func(func() any {
			s := pool.Stat()
			return map[string]any{
				"total_conns":    s.TotalConns(),
				"idle_conns":     s.IdleConns(),
				"acquired_conns": s.AcquiredConns(),
			}
		}))
	}

	gateway := payments.NewSwiftWalletAdapter(
		payments.SwiftWalletConfig{
			APIURL:    cfg.gateway.apiURL,
			VerifyURL: cfg.gateway.verifyURL,
			Platform:  cfg.gateway.platform,
			AccountID: cfg.gateway.accountID,
		},
		&http.Client{Timeout: cfg.gateway.timeout},
		logger,
	)

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	metrics.MustRegister()

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       st,
		gateway:     gateway,
		rateLimiter: rateLimiter,
	}

	// http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
