package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// readJSON decodes the body into data. An empty body leaves data untouched so
// validation reports the missing fields. Unknown fields are ignored: clients
// send extras such as loan_amount.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	err := json.NewDecoder(r.Body).Decode(data)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type errorEnvelope struct {
	Error string `json:"error"`
}

type failureEnvelope struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	if status >= http.StatusInternalServerError {
		return writeJSON(w, status, &failureEnvelope{Error: message, Success: false})
	}
	return writeJSON(w, status, &errorEnvelope{Error: message})
}
