package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bobmcallan/cleartext/internal/common"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidInput     = "invalid_input"
	CodeUpstream         = "upstream_error"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeInternal         = "internal_error"
)

// ErrorResponse is the standard error format for REST API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteErrorWithCode writes a JSON error response with an error code.
func WriteErrorWithCode(w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

// WriteServiceError maps a service error to a response. Invalid input is a
// 400 carrying the service's message; anything else is a 500 whose message is
// prefix followed by the error text.
func WriteServiceError(w http.ResponseWriter, err error, prefix string) {
	var ce *common.Error
	if errors.Is(err, common.ErrInvalidInput) && errors.As(err, &ce) {
		WriteErrorWithCode(w, http.StatusBadRequest, ce.Msg, CodeInvalidInput)
		return
	}
	code := CodeInternal
	if errors.Is(err, common.ErrUpstream) {
		code = CodeUpstream
	}
	WriteErrorWithCode(w, http.StatusInternalServerError, prefix+": "+err.Error(), code)
}

// RequireMethod validates the HTTP method and returns true if it matches.
// If it doesn't match, it writes a 405 response and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	WriteErrorWithCode(w, http.StatusMethodNotAllowed, "Method not allowed", CodeMethodNotAllowed)
	return false
}

// DecodeJSON reads and decodes JSON from the request body into v.
// Returns false and writes a 400 error if decoding fails.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil || r.Body == http.NoBody {
		WriteErrorWithCode(w, http.StatusBadRequest, "Request body is required", CodeInvalidInput)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, "Invalid JSON: "+err.Error(), CodeInvalidInput)
		return false
	}
	return true
}
