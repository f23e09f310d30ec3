package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tynpay/internal/metrics"

	"go.uber.org/zap"
)

type SwiftWalletConfig struct {
	APIURL    string // STK push endpoint
	VerifyURL string // verification endpoint, reference is appended
	Platform  string
	AccountID string
}

type SwiftWalletAdapter struct {
	cfg        SwiftWalletConfig
	httpClient *http.Client
	logger     *zap.SugaredLogger
	now        func() time.Time
}

func NewSwiftWalletAdapter(cfg SwiftWalletConfig, client *http.Client, logger *zap.SugaredLogger) *SwiftWalletAdapter {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SwiftWalletAdapter{
		cfg:        cfg,
		httpClient: client,
		logger:     logger,
		now:        time.Now,
	}
}

// InitiatePayment sends the STK push. ExternalReference is set on the result
// even when an error is returned, so callers can correlate failures.
func (s *SwiftWalletAdapter) InitiatePayment(ctx context.Context, req PaymentRequest) (InitiateResult, error) {
	payload := stkPushPayload{
		Amount:      int64(req.Amount),
		PhoneNumber: req.PhoneNumber,
		Reference:   NewReference(s.now()),
		Platform:    s.cfg.Platform,
		AccountID:   s.cfg.AccountID,
	}
	out := InitiateResult{ExternalReference: payload.Reference}

	s.logger.Infow("swiftwallet stk request",
		"reference", payload.Reference,
		"amount", payload.Amount,
		"phone", maskPhone(payload.PhoneNumber),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("swiftwallet encode payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return out, fmt.Errorf("swiftwallet build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(httpReq)
	metrics.GatewayDuration.WithLabelValues("initiate").Observe(time.Since(start).Seconds())
	if err != nil {
		return out, fmt.Errorf("swiftwallet initiate request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("swiftwallet read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Errorw("swiftwallet api error", "http", resp.StatusCode, "body", string(raw))
		return out, &GatewayHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	result, err := decodeBody(raw)
	if err != nil {
		return out, fmt.Errorf("swiftwallet initiate decode: %w", err)
	}
	out.ResponseData = result

	s.logger.Infow("swiftwallet stk response", "reference", payload.Reference, "body", string(raw))

	ref, ok := ExtractReference(result)
	if !ok {
		s.logger.Errorw("no payment reference in response", "body", string(raw))
		return out, ErrNoReference
	}
	out.Reference = ref
	return out, nil
}

// VerifyPayment polls the verification endpoint. It never fails: any gateway
// or transport problem degrades to PENDING so polling clients keep polling.
func (s *SwiftWalletAdapter) VerifyPayment(ctx context.Context, reference string) VerifyResult {
	s.logger.Infow("verifying swiftwallet payment", "reference", reference)

	target := strings.TrimRight(s.cfg.VerifyURL, "/") + "/" + encodeURIComponent(reference) + "/"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return verificationError(fmt.Errorf("swiftwallet build request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(httpReq)
	metrics.GatewayDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Errorw("swiftwallet verification error", "reference", reference, "err", err.Error())
		return verificationError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return verificationError(fmt.Errorf("swiftwallet read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Errorw("swiftwallet verification api error", "http", resp.StatusCode, "body", string(raw))
		msg := "Payment verification in progress"
		if resp.StatusCode == http.StatusNotFound {
			msg = "Payment still processing"
		}
		return VerifyResult{Status: StatusPending, Message: msg, HTTPStatus: resp.StatusCode}
	}

	result, err := decodeBody(raw)
	if err != nil {
		s.logger.Errorw("swiftwallet verification error", "reference", reference, "err", err.Error())
		return verificationError(err)
	}

	token := ExtractStatus(result)
	status := NormalizeStatus(token)
	s.logger.Infow("swiftwallet verification response",
		"reference", reference,
		"raw_status", token,
		"status", status,
	)

	out := VerifyResult{Status: status, Data: result, HTTPStatus: resp.StatusCode}
	switch status {
	case StatusCompleted:
		out.Message = "Payment successful"
	case StatusFailed:
		out.Message = "Payment failed"
	default:
		out.Message = "Payment still processing"
	}
	return out
}

func verificationError(err error) VerifyResult {
	return VerifyResult{
		Status:  StatusPending,
		Message: "Verification in progress",
		Err:     err,
	}
}

// decodeBody keeps numbers as json.Number so references keep their exact text.
// The body must hold exactly one JSON value.
func decodeBody(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON body")
	}
	return v, nil
}

// encodeURIComponent escapes everything outside A-Z a-z 0-9 and -_.!~*'()
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, c := range []string{"!", "*", "'", "(", ")"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(c), c)
	}
	return escaped
}

func maskPhone(p string) string {
	if len(p) <= 4 {
		return "***"
	}
	return strings.Repeat("*", len(p)-4) + p[len(p)-4:]
}
