package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bobmcallan/cleartext/internal/common"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{
			name:        "invalid input keeps message",
			err:         common.NewInputError("Please provide text to simplify."),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Please provide text to simplify.",
			wantCode:    CodeInvalidInput,
		},
		{
			name:        "upstream gets prefix",
			err:         common.NewUpstreamError("language model call failed", errors.New("timeout")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error processing simplification: language model call failed: timeout",
			wantCode:    CodeUpstream,
		},
		{
			name:        "unclassified is internal",
			err:         errors.New("unexpected"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error processing simplification: unexpected",
			wantCode:    CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteServiceError(rr, tt.err, "Error processing simplification")

			if rr.Code != tt.wantStatus {
				t.Errorf("Expected %d, got %d", tt.wantStatus, rr.Code)
			}
			var resp ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, resp.Error)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("Expected code %q, got %q", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestRequireMethod(t *testing.T) {
	rr := httptest.NewRecorder()
	if RequireMethod(rr, httptest.NewRequest(http.MethodDelete, "/glossary", nil), http.MethodGet, http.MethodHead) {
		t.Fatal("Expected DELETE to be rejected")
	}
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rr.Code)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Errorf("Expected Allow: GET, HEAD, got %q", got)
	}

	rr = httptest.NewRecorder()
	if !RequireMethod(rr, httptest.NewRequest(http.MethodHead, "/", nil), http.MethodGet, http.MethodHead) {
		t.Error("Expected HEAD to be accepted")
	}
}

func TestWriteJSON_ContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusCreated, map[string]string{"a": "b"})

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}
}
