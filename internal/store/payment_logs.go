package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// PaymentLogsStore appends raw gateway exchanges for support and debugging.
// Rows are never read back by the API.
type PaymentLogsStore struct {
	q Querier
}

func (s *PaymentLogsStore) InsertPaymentLog(ctx context.Context, reference, logType string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var jb []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payment_log payload: %w", err)
		}
		jb = b
	}

	_, err := s.q.Exec(ctx, `
		INSERT INTO payment_logs (reference, log_type, payload)
		VALUES ($1, $2, $3)
	`, reference, logType, jb)
	if err != nil {
		return fmt.Errorf("insert payment_log: %w", err)
	}
	return nil
}
