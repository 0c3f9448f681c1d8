package gameapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/tkarpov/warroom/internal/wctx"
)

// Client is the read-only game API boundary. Calls retry transient failures and
// degrade to the NoData sentinel instead of returning errors; a missing result is a
// recoverable, user-visible fetch failure, never a crash.
type Client interface {
	// Call fetches an endpoint and returns the unwrapped payload. The second return
	// is false when all attempts were exhausted, in which case the payload is NoData.
	Call(ctx context.Context, endpoint string, params map[string]interface{}) (interface{}, bool)

	// Reset tears down the shared HTTP session; the next call recreates it.
	Reset()
}

// Options are the transport knobs, sourced from configuration by the caller.
type Options struct {
	BaseUrl string

	// Timeout applies per attempt, not per call.
	Timeout time.Duration

	// RetryAttempts is the total attempt budget including the first try.
	RetryAttempts int

	// RetryBackoffBase is the delay before the first retry; each subsequent retry
	// doubles it. No jitter.
	RetryBackoffBase time.Duration
}

type client struct {
	opts   Options
	logger *slog.Logger

	mu   sync.Mutex
	http *resty.Client
}

func NewClient(opts Options, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &client{
		opts:   opts,
		logger: logger,
	}
}

// session returns the shared HTTP client, creating it lazily and recreating it if
// a previous one was torn down.
func (c *client) session() *resty.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.http == nil {
		c.http = resty.New().
			SetBaseURL(strings.TrimRight(c.opts.BaseUrl, "/")).
			SetTimeout(c.opts.Timeout)
	}

	return c.http
}

func (c *client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.http = nil
}

func (c *client) Call(ctx context.Context, endpoint string, params map[string]interface{}) (interface{}, bool) {
	req := Request{Endpoint: endpoint, Params: params}

	input, err := req.Input()
	if err != nil {
		c.logger.Error("failed to encode request parameters",
			"endpoint", endpoint,
			"error", err)
		return NoData, false
	}

	attempts := c.opts.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	clk := wctx.GetClock(ctx)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			clk.Sleep(c.opts.RetryBackoffBase * (1 << (attempt - 1)))
		}

		payload, err := c.attempt(ctx, endpoint, input)
		if err == nil {
			return Unwrap(payload), true
		}

		lastErr = err
		c.logger.Debug("fetch attempt failed",
			"endpoint", endpoint,
			"attempt", attempt+1,
			"error", err)
	}

	c.logger.Error("fetch failed after exhausting retries",
		"endpoint", endpoint,
		"params", input,
		"attempts", attempts,
		"error", lastErr)

	return NoData, false
}

// attempt performs one request. Non-2xx statuses, transport failures, and body
// decode failures are all retryable.
func (c *client) attempt(ctx context.Context, endpoint, input string) (interface{}, error) {
	resp, err := c.session().R().
		SetContext(ctx).
		SetQueryParam("input", input).
		Get(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}

	if resp.IsError() {
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode())
	}

	var payload interface{}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode response body")
	}

	return payload, nil
}
