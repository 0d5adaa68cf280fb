package cleartext

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/cleartext/internal/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL + "/")
}

func TestSimplify_OK(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/simplify", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in models.TextInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "hard text", in.Text)

		w.Write([]byte(`{"simplified":"easy text"}`))
	})

	res := c.Simplify(context.Background(), "hard text")

	assert.True(t, res.OK())
	assert.Equal(t, "easy text", res.Value)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NoError(t, res.Err)
}

func TestAskTutor_MissingFieldIsNotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ask-tutor", r.URL.Path)
		w.Write([]byte(`{}`))
	})

	res := c.AskTutor(context.Background(), "what is GDP?")

	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.False(t, res.OK())
	assert.False(t, res.Retryable())
}

func TestGlossary_OK(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/glossary", r.URL.Path)
		w.Write([]byte(`{"glossary":{"NATO":"A military alliance."}}`))
	})

	res := c.Glossary(context.Background(), "NATO met.")

	require.True(t, res.OK())
	assert.Equal(t, map[string]string{"NATO": "A military alliance."}, res.Value)
}

func TestGlossary_EmptyIsOK(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"glossary":{}}`))
	})

	res := c.Glossary(context.Background(), "")

	assert.True(t, res.OK())
	assert.Empty(t, res.Value)
}

func TestOutcomes_ByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		want      Outcome
		retryable bool
		message   string
	}{
		{"bad request", http.StatusBadRequest, `{"error":"Please provide text to simplify.","code":"invalid_input"}`, OutcomeInvalid, false, "Please provide text to simplify."},
		{"not found", http.StatusNotFound, `{"error":"Not found"}`, OutcomeNotFound, false, "Not found"},
		{"too many requests", http.StatusTooManyRequests, ``, OutcomeFailed, true, "server returned 429"},
		{"server error", http.StatusInternalServerError, `{"error":"Error processing simplification: quota","code":"upstream_error"}`, OutcomeFailed, true, "Error processing simplification: quota"},
		{"bad gateway html", http.StatusBadGateway, `<html>oops</html>`, OutcomeFailed, true, "server returned 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			res := c.Simplify(context.Background(), "text")

			assert.Equal(t, tt.want, res.Outcome)
			assert.Equal(t, tt.retryable, res.Retryable())
			assert.Equal(t, tt.status, res.StatusCode)
			require.Error(t, res.Err)
			assert.Equal(t, tt.message, res.Err.Error())

			var se *ServerError
			require.True(t, errors.As(res.Err, &se))
			assert.Equal(t, tt.status, se.StatusCode)
		})
	}
}

func TestUndecodableSuccessIsFailed(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	res := c.Simplify(context.Background(), "text")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.True(t, res.Retryable())
	assert.Error(t, res.Err)
}

func TestTransportErrorIsFailed(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	res := NewClient(url).Glossary(context.Background(), "text")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, 0, res.StatusCode)
	assert.True(t, res.Retryable())
}

func TestTimeoutIsFailed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(ts.Close)

	res := NewClient(ts.URL, WithTimeout(20*time.Millisecond)).AskTutor(context.Background(), "text")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.True(t, res.Retryable())
}

func TestHealthAndVersion(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/api/health":
			w.Write([]byte(`{"status":"ok"}`))
		case "/api/version":
			w.Write([]byte(`{"version":"1.2.3","build":"b","commit":"c"}`))
		default:
			http.NotFound(w, r)
		}
	})

	health := c.Health(context.Background())
	assert.True(t, health.OK())
	assert.Equal(t, "ok", health.Value)

	version := c.Version(context.Background())
	assert.True(t, version.OK())
	assert.Equal(t, "1.2.3", version.Value["version"])
}
