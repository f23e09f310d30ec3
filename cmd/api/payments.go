package main

import (
	"context"
	"errors"
	"net/http"

	"tynpay/internal/metrics"
	"tynpay/internal/payments"
	"tynpay/internal/store"
)

var (
	errInvalidBody       = errors.New("Invalid request body")
	errMissingFields     = errors.New("Missing required fields")
	errReferenceRequired = errors.New("Reference is required")
)

type initiatePaymentResponse struct {
	Success           bool   `json:"success"`
	Reference         string `json:"reference"`
	ExternalReference string `json:"external_reference"`
	ResponseData      any    `json:"response_data"`
}

type verifyPaymentResponse struct {
	Success bool            `json:"success"`
	Status  payments.Status `json:"status"`
	Data    any             `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error,omitempty"`
}

// initiatePaymentHandler godoc
//
//	@Summary		Initiate an STK push
//	@Description	Sends an STK push to the payer's phone through SwiftWallet and returns the gateway reference used for polling.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		payments.PaymentRequest	true	"Payment request"
//	@Success		200		{object}	initiatePaymentResponse
//	@Failure		400		{object}	errorEnvelope
//	@Failure		405		{object}	errorEnvelope
//	@Failure		500		{object}	failureEnvelope
//	@Router			/api/initiate-payment [post]
func (app *application) initiatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		metrics.PaymentInitiateRequests.WithLabelValues("fail", "method_not_allowed").Inc()
		app.methodNotAllowedResponse(w, r)
		return
	}

	var payload payments.PaymentRequest
	if err := readJSON(w, r, &payload); err != nil {
		metrics.PaymentInitiateRequests.WithLabelValues("fail", "bad_json").Inc()
		app.badRequestResponse(w, r, errInvalidBody)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		metrics.PaymentInitiateRequests.WithLabelValues("fail", "missing_fields").Inc()
		app.badRequestResponse(w, r, errMissingFields)
		return
	}

	ctx := r.Context()

	res, err := app.gateway.InitiatePayment(ctx, payload)

	app.audit(ctx, res.ExternalReference, store.LogRequest, map[string]any{
		"stage":  "initiate",
		"amount": int64(payload.Amount),
	})

	if err != nil {
		metrics.PaymentInitiateRequests.WithLabelValues("fail", initiateFailureReason(err)).Inc()
		app.audit(ctx, res.ExternalReference, store.LogError, map[string]any{
			"stage": "initiate",
			"error": err.Error(),
		})
		app.internalServerError(w, r, err)
		return
	}

	app.audit(ctx, res.ExternalReference, store.LogResponse, map[string]any{
		"stage":     "initiate",
		"reference": res.Reference,
		"body":      res.ResponseData,
	})

	metrics.PaymentInitiateRequests.WithLabelValues("ok", "").Inc()

	if err := writeJSON(w, http.StatusOK, &initiatePaymentResponse{
		Success:           true,
		Reference:         res.Reference,
		ExternalReference: res.ExternalReference,
		ResponseData:      res.ResponseData,
	}); err != nil {
		app.logger.Errorw("write initiate response", "error", err.Error())
	}
}

func initiateFailureReason(err error) string {
	var httpErr *payments.GatewayHTTPError
	switch {
	case errors.As(err, &httpErr):
		return "gateway_http"
	case errors.Is(err, payments.ErrNoReference):
		return "no_reference"
	default:
		return "transport"
	}
}

// verifyPaymentHandler godoc
//
//	@Summary		Verify a payment
//	@Description	Polls SwiftWallet for the payment status. Gateway or network failures are reported as PENDING with HTTP 200 so polling clients keep polling.
//	@Tags			payments
//	@Produce		json
//	@Param			reference	query		string	true	"Gateway reference returned by initiate"
//	@Success		200			{object}	verifyPaymentResponse
//	@Failure		400			{object}	errorEnvelope
//	@Failure		405			{object}	errorEnvelope
//	@Router			/api/verify-payment [get]
func (app *application) verifyPaymentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		metrics.PaymentVerifyRequests.WithLabelValues("rejected", "method_not_allowed").Inc()
		app.methodNotAllowedResponse(w, r)
		return
	}

	reference := r.URL.Query().Get("reference")
	if reference == "" {
		metrics.PaymentVerifyRequests.WithLabelValues("rejected", "missing_reference").Inc()
		app.badRequestResponse(w, r, errReferenceRequired)
		return
	}

	ctx := r.Context()
	res := app.gateway.VerifyPayment(ctx, reference)

	out := &verifyPaymentResponse{
		Success: true,
		Status:  res.Status,
		Data:    res.Data,
		Message: res.Message,
	}

	reason := "ok"
	switch {
	case res.Err != nil:
		reason = "transport"
		out.Error = res.Err.Error()
		app.audit(ctx, reference, store.LogError, map[string]any{
			"stage": "verify",
			"error": res.Err.Error(),
		})
	case res.HTTPStatus < 200 || res.HTTPStatus > 299:
		reason = "gateway_http"
		app.audit(ctx, reference, store.LogError, map[string]any{
			"stage":       "verify",
			"http_status": res.HTTPStatus,
		})
	default:
		app.audit(ctx, reference, store.LogResponse, map[string]any{
			"stage":  "verify",
			"status": res.Status,
			"body":   res.Data,
		})
	}
	metrics.PaymentVerifyRequests.WithLabelValues(string(res.Status), reason).Inc()

	if err := writeJSON(w, http.StatusOK, out); err != nil {
		app.logger.Errorw("write verify response", "error", err.Error())
	}
}

// audit records a gateway exchange. Failures are logged and otherwise ignored.
func (app *application) audit(ctx context.Context, reference, logType string, payload any) {
	if reference == "" {
		return
	}
	if err := app.store.PayLogs.InsertPaymentLog(ctx, reference, logType, payload); err != nil {
		app.logger.Warnw("payment audit log failed", "reference", reference, "log_type", logType, "error", err.Error())
	}
}
