package models

import (
	"encoding/json"
	"net/http"
)

// APIError is the uniform failure body: every failed request answers
// {"error": "..."} and nothing else.
type APIError struct {
	Error string `json:"error"`
}

// APIMessage is the body for delete acknowledgements.
type APIMessage struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, APIError{Error: msg})
}
