package payments

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Status is the normalized payment status reported to clients.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Amount accepts a JSON number or numeric string and keeps its integer part.
// A string without a leading integer decodes to zero, which validation treats
// as missing.
type Amount int64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = 0
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		n, err := leadingInt(unq)
		if err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		*a = Amount(n)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	f = math.Trunc(f)
	// 2^63 is exactly representable; anything at or past it does not fit int64.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return fmt.Errorf("amount: %s out of range", s)
	}
	*a = Amount(f)
	return nil
}

// leadingInt parses the optional sign and digits at the start of s, the way
// parseInt does on client-supplied amounts ("12.7" -> 12, "99abc" -> 99).
// Digits that overflow int64 are an error.
func leadingInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, nil
	}
	return strconv.ParseInt(s[:end], 10, 64)
}

// PaymentRequest is the body accepted by the initiate endpoint.
type PaymentRequest struct {
	PhoneNumber string          `json:"phone_number" validate:"required"`
	Amount      Amount          `json:"amount" validate:"required"`
	LoanAmount  json.RawMessage `json:"loan_amount,omitempty"` // accepted, not forwarded
}

// stkPushPayload is the body posted to the gateway push endpoint.
type stkPushPayload struct {
	Amount      int64  `json:"amount"`
	PhoneNumber string `json:"phone_number"`
	Reference   string `json:"reference"`
	Platform    string `json:"platform"`
	AccountID   string `json:"account_id"`
}

// InitiateResult is what a successful STK push yields.
type InitiateResult struct {
	Reference         string // gateway reference, used for polling
	ExternalReference string // our TYN-... reference
	ResponseData      any    // full gateway body
}

// VerifyResult is always usable, even when the gateway could not be reached.
// Err holds the cause when the status was degraded to PENDING.
type VerifyResult struct {
	Status     Status
	Message    string
	Data       any
	HTTPStatus int
	Err        error
}
