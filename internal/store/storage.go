package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var QueryTimeoutDuration = time.Second * 5

// Log types written to payment_logs.
const (
	LogRequest  = "request"
	LogResponse = "response"
	LogError    = "error"
)

// Querier is the subset of pgxpool.Pool the stores need.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Storage struct {
	PayLogs interface {
		InsertPaymentLog(ctx context.Context, reference, logType string, payload any) error
	}
}

func NewStorage(q Querier) Storage {
	return Storage{
		PayLogs: &PaymentLogsStore{q: q},
	}
}

// NewNoopStorage is used when no audit database is configured.
func NewNoopStorage() Storage {
	return Storage{
		PayLogs: noopLogs{},
	}
}

type noopLogs struct{}

func (noopLogs) InsertPaymentLog(context.Context, string, string, any) error { return nil }
