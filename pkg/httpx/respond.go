// Package httpx holds the JSON response helpers and HTTP middleware shared
// by both services.
package httpx

import (
	"encoding/json"
	"net/http"
)

type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON writes v as a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error payload. details is optional diagnostic
// context and must never carry credentials.
func WriteError(w http.ResponseWriter, status int, message, details string) {
	WriteJSON(w, status, jsonError{Error: message, Details: details})
}
