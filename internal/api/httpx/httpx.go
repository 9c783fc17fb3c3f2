// Package httpx writes the uniform JSON envelope used by every endpoint:
//
//	{success, data?, message, error?, errors?}
package httpx

import (
	"encoding/json"
	"net/http"
)

type Envelope struct {
	Success bool                `json:"success"`
	Data    interface{}         `json:"data,omitempty"`
	Message string              `json:"message"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a success envelope.
func OK(w http.ResponseWriter, status int, data interface{}, msg string) {
	WriteJSON(w, status, Envelope{Success: true, Data: data, Message: msg})
}

// Fail writes a failure envelope with an optional error detail string.
func Fail(w http.ResponseWriter, status int, msg, detail string) {
	WriteJSON(w, status, Envelope{Success: false, Message: msg, Error: detail})
}

// FailValidation writes a 422 envelope with field-level error collections.
func FailValidation(w http.ResponseWriter, errs map[string][]string) {
	WriteJSON(w, http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}
