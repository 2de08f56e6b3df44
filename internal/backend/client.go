package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ranchers-app/storefront/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

// DataAPI is the hosted auth + data collaborator. Everything durable lives
// behind it; this service only issues requests and maps failures.
type DataAPI interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
	CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error)
	UpdatePassword(ctx context.Context, token, newPassword string) error

	GetProfile(ctx context.Context, token, identityID string) (*domain.Profile, error)
	InsertOrder(ctx context.Context, token string, order *domain.Order) error
	ListOrdersByUser(ctx context.Context, token, userID string) ([]domain.Order, error)
	InsertFeedback(ctx context.Context, token string, fb *domain.Feedback) error
	InsertQuery(ctx context.Context, token string, q *domain.ContactQuery) error
}

var _ DataAPI = (*Client)(nil)

// Client talks to the hosted API over HTTP/JSON. Remote calls go through a
// circuit breaker so a dead backend fails fast instead of queueing; nothing
// is ever retried here.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	log     *logrus.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log *logrus.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "data-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[*http.Response](settings),
		log:     log,
	}
}

// do issues one request and decodes the response into out (when non-nil).
// Transport failures and 5xx map to ErrUnavailable, auth failures to
// ErrNoSession, missing rows to ErrNotFound, other 4xx to ErrRejected.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	// Propagate the inbound request ID so backend logs correlate.
	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.httpc.Do(req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.WithField("path", path).Warn("circuit breaker open, failing fast")
			return fmt.Errorf("%w: circuit open", ErrUnavailable)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		// Drain a little of the body for the log, never for the caller.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
			"body":   string(msg),
		}).Warn("data API request failed")
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrNoSession
	case code == http.StatusNotFound || code == http.StatusNotAcceptable:
		return ErrNotFound
	case code >= 400 && code < 500:
		return ErrRejected
	default:
		return ErrUnavailable
	}
}
