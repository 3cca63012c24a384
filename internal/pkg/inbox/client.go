// internal/pkg/inbox/client.go
package inbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrDelivery is returned for every failed submission: transport errors,
// non-2xx replies, unparseable replies and an open breaker
var ErrDelivery = errors.New("inbox delivery failed")

// Submission is the JSON body posted to the inbox endpoint
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Response is the endpoint's raw JSON reply. FormSubmit answers with
// {"success": "true", "message": "..."} but any JSON value is accepted.
type Response = json.RawMessage

// Options configures a Client
type Options struct {
	Endpoint         string
	Timeout          time.Duration // zero means no client timeout
	BreakerFailures  uint32
	BreakerOpenDelay time.Duration
}

// Client posts submissions to a FormSubmit-style AJAX endpoint
type Client struct {
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker[Response]
}

// NewClient creates a new inbox client
func NewClient(opts Options) *Client {
	failures := opts.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	return &Client{
		endpoint: opts.Endpoint,
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		breaker: gobreaker.NewCircuitBreaker[Response](gobreaker.Settings{
			Name:        "inbox",
			MaxRequests: 1,
			Timeout:     opts.BreakerOpenDelay,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			// a caller that gave up says nothing about the endpoint
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
		}),
	}
}

// Send posts one submission. There is no retry.
func (c *Client) Send(ctx context.Context, sub Submission) (Response, error) {
	resp, err := c.breaker.Execute(func() (Response, error) {
		return c.post(ctx, sub)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
		}
		return nil, err
	}
	return resp, nil
}

// State reports the breaker state: closed, half-open or open
func (c *Client) State() string {
	return c.breaker.State().String()
}

func (c *Client) post(ctx context.Context, sub Submission) (Response, error) {
	jsonData, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inbox request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create inbox request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: endpoint returned status %d", ErrDelivery, resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: unreadable response: %v", ErrDelivery, err)
	}
	return out, nil
}
