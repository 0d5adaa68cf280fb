package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bobmcallan/cleartext/internal/common"
)

// logCapture collects raw JSON log lines. Level filtering is used to infer
// which level an event was written at.
type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) output() string {
	return c.buf.String()
}

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func TestLoggingMiddleware_4xxUsesInfoLevel(t *testing.T) {
	// At WARN level, Info() events are filtered out.
	capture := &logCapture{}
	logger := common.NewLoggerWithOutput("warn", capture)

	handler := loggingMiddleware(logger, nil)(statusHandler(http.StatusBadRequest))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/simplify", nil))

	if strings.Contains(capture.output(), "HTTP request") {
		t.Errorf("Expected 400 log to be filtered at WARN level (should use INFO), but it passed through: %s", capture.output())
	}
}

func TestLoggingMiddleware_5xxUsesErrorLevel(t *testing.T) {
	capture := &logCapture{}
	logger := common.NewLoggerWithOutput("warn", capture)

	handler := loggingMiddleware(logger, nil)(statusHandler(http.StatusInternalServerError))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/glossary", nil))

	output := capture.output()
	if !strings.Contains(output, "HTTP request") {
		t.Errorf("Expected 500 log to pass WARN filter (should use ERROR), got: %q", output)
	}
	if !strings.Contains(output, `"status":500`) {
		t.Errorf("Expected status field in log, got: %q", output)
	}
}

func TestLoggingMiddleware_2xxUsesTraceLevel(t *testing.T) {
	capture := &logCapture{}
	logger := common.NewLoggerWithOutput("info", capture)

	handler := loggingMiddleware(logger, nil)(statusHandler(http.StatusOK))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if strings.Contains(capture.output(), "HTTP request") {
		t.Errorf("Expected 200 log to be filtered at INFO level (should use TRACE), but it passed through: %s", capture.output())
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the handler")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/simplify", nil))

	if rr.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", rr.Code)
	}
	for _, h := range []string{"Access-Control-Allow-Origin", "Access-Control-Allow-Methods", "Access-Control-Allow-Headers"} {
		if got := rr.Header().Get(h); got != "*" {
			t.Errorf("Expected %s: *, got %q", h, got)
		}
	}
}

func TestCorrelationIDMiddleware(t *testing.T) {
	handler := correlationIDMiddleware(statusHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Correlation-ID"); got != "req-123" {
		t.Errorf("Expected propagated correlation ID, got %q", got)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rr.Header().Get("X-Correlation-ID"); len(got) != 8 {
		t.Errorf("Expected generated 8-char correlation ID, got %q", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := recoveryMiddleware(common.NewSilentLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/glossary", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after panic, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), CodeInternal) {
		t.Errorf("Expected internal error code, got %s", rr.Body.String())
	}
}

func TestRouteLabel(t *testing.T) {
	if got := routeLabel("/glossary"); got != "/glossary" {
		t.Errorf("Expected /glossary, got %s", got)
	}
	if got := routeLabel("/wp-admin/setup.php"); got != "other" {
		t.Errorf("Expected other, got %s", got)
	}
}
