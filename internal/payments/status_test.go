package payments

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"COMPLETED", StatusCompleted},
		{"Confirmed", StatusCompleted},
		{"success", StatusCompleted},
		{"Successful", StatusCompleted},
		{"paid", StatusCompleted},
		{"FAILED", StatusFailed},
		{"cancelled", StatusFailed},
		{"Rejected", StatusFailed},
		{"declined", StatusFailed},
		{"error", StatusFailed},
		{"pending", StatusPending},
		{"processing", StatusPending},
		{"", StatusPending},
		{"canceled", StatusPending}, // only the double-l spelling is a failure alias
		{" paid ", StatusPending},
		{"FAILED\n", StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatus(tt.raw))
		})
	}
}

func decode(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestExtractStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"top level status", `{"status":"CONFIRMED"}`, "CONFIRMED"},
		{"nested data status", `{"data":{"status":"failed"}}`, "failed"},
		{"top level wins over nested", `{"status":"paid","data":{"status":"failed"}}`, "paid"},
		{"empty status falls through", `{"status":"","data":{"status":"success"}}`, "success"},
		{"result code zero string", `{"ResultCode":"0"}`, "COMPLETED"},
		{"result code other string", `{"ResultCode":"1032"}`, "FAILED"},
		{"result code non-zero number", `{"ResultCode":1}`, "FAILED"},
		{"result code zero number is ignored", `{"ResultCode":0}`, ""},
		{"numeric status", `{"status":1}`, "1"},
		{"nothing recognisable", `{"foo":"bar"}`, ""},
		{"not an object", `["completed"]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractStatus(decode(t, tt.body)))
		})
	}
}

func TestExtractReference(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{"checkout request id first", `{"checkout_request_id":"ws_CO_1","reference":"R","merchant_request_id":"M"}`, "ws_CO_1", true},
		{"falls back to reference", `{"checkout_request_id":"","reference":"R","merchant_request_id":"M"}`, "R", true},
		{"falls back to merchant request id", `{"merchant_request_id":"M"}`, "M", true},
		{"numeric reference keeps its text", `{"reference":12345678901234567890}`, "12345678901234567890", true},
		{"none present", `{"success":true}`, "", false},
		{"null body", `null`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractReference(decode(t, tt.body))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
