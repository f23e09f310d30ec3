package payments

import (
	"context"
	"errors"
	"fmt"
)

// Gateway is the STK push provider the API talks to.
type Gateway interface {
	InitiatePayment(ctx context.Context, req PaymentRequest) (InitiateResult, error)
	VerifyPayment(ctx context.Context, reference string) VerifyResult
}

var ErrNoReference = errors.New("No payment reference received from SwiftWallet")

// GatewayHTTPError is returned when the gateway answers with a non-2xx status.
type GatewayHTTPError struct {
	StatusCode int
	Body       string
}

func (e *GatewayHTTPError) Error() string {
	return fmt.Sprintf("Payment initiation failed: %d - %s", e.StatusCode, e.Body)
}
