package payments

import (
	"encoding/json"
	"fmt"
	"strings"
)

var (
	successAliases = []string{"completed", "confirmed", "success", "successful", "paid"}
	failureAliases = []string{"failed", "cancelled", "rejected", "declined", "error"}
)

// NormalizeStatus maps a raw gateway status token onto the three-valued status.
// Matching is case-insensitive but exact: padded tokens are unknown. Unknown
// and empty tokens are PENDING.
func NormalizeStatus(raw string) Status {
	s := strings.ToLower(raw)
	for _, a := range successAliases {
		if s == a {
			return StatusCompleted
		}
	}
	for _, a := range failureAliases {
		if s == a {
			return StatusFailed
		}
	}
	return StatusPending
}

// ExtractStatus pulls the raw status token out of a decoded verify response.
// Order: status, data.status, then the ResultCode convention where the
// string "0" is success and any other truthy code is failure.
func ExtractStatus(body any) string {
	m, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	if v := m["status"]; truthy(v) {
		return stringify(v)
	}
	if data, ok := m["data"].(map[string]any); ok {
		if v := data["status"]; truthy(v) {
			return stringify(v)
		}
	}
	code := m["ResultCode"]
	if s, ok := code.(string); ok && s == "0" {
		return string(StatusCompleted)
	}
	if truthy(code) {
		return string(StatusFailed)
	}
	return ""
}

// ExtractReference returns the first truthy gateway reference field.
func ExtractReference(body any) (string, bool) {
	m, ok := body.(map[string]any)
	if !ok {
		return "", false
	}
	for _, k := range []string{"checkout_request_id", "reference", "merchant_request_id"} {
		if v := m[k]; truthy(v) {
			return stringify(v), true
		}
	}
	return "", false
}

// truthy follows JSON value truthiness: null, false, "", and 0 are falsy.
// Objects and arrays are truthy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
