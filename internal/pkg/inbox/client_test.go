package inbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_PostsJSON(t *testing.T) {
	var got Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":"true","message":"The form was submitted successfully."}`))
	}))
	defer srv.Close()

	client := NewClient(Options{Endpoint: srv.URL})
	resp, err := client.Send(context.Background(), Submission{Name: "Ada", Email: "a@example.com", Message: "Hi"})
	require.NoError(t, err)

	assert.Equal(t, Submission{Name: "Ada", Email: "a@example.com", Message: "Hi"}, got)
	assert.JSONEq(t, `{"success":"true","message":"The form was submitted successfully."}`, string(resp))
}

func TestSend_AcceptsAnyJSONValue(t *testing.T) {
	for _, body := range []string{`["ok"]`, `"ok"`, `true`, `{}`} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			resp, err := NewClient(Options{Endpoint: srv.URL}).Send(context.Background(), Submission{})
			require.NoError(t, err)
			assert.JSONEq(t, body, string(resp))
		})
	}
}

func TestSend_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>ok</html>"))
		}},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}},
		{"rejected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":"false"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(Options{Endpoint: srv.URL}).Send(context.Background(), Submission{})
			assert.ErrorIs(t, err, ErrDelivery)
		})
	}
}

func TestSend_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(Options{Endpoint: url}).Send(context.Background(), Submission{})
	assert.ErrorIs(t, err, ErrDelivery)
}

func TestSend_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Options{Endpoint: srv.URL, BreakerFailures: 2, BreakerOpenDelay: time.Minute})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := client.Send(ctx, Submission{})
		assert.ErrorIs(t, err, ErrDelivery)
	}
	assert.Equal(t, "open", client.State())

	_, err := client.Send(ctx, Submission{})
	assert.ErrorIs(t, err, ErrDelivery)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSend_CancelledCallerDoesNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":"true"}`))
	}))
	defer srv.Close()

	client := NewClient(Options{Endpoint: srv.URL, BreakerFailures: 2, BreakerOpenDelay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 5; i++ {
		_, err := client.Send(ctx, Submission{})
		assert.ErrorIs(t, err, ErrDelivery)
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, "closed", client.State())

	_, err := client.Send(context.Background(), Submission{})
	require.NoError(t, err)
	assert.Equal(t, "closed", client.State())
}
