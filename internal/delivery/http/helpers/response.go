package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body for all endpoints: {"error": "..."}.
// Create-style endpoints additionally list the required fields.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error    string   `json:"error"`
	Required []string `json:"required,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes an ErrorResponse with the given message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteMissingFields writes the 400 body listing the fields a request must
// carry.
func WriteMissingFields(w http.ResponseWriter, required []string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:    "Missing required fields",
		Required: required,
	})
}
