package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultMaxRetries     = 3
)

// StatusError is returned for a non-2xx answer of the path finder.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("path finder responded %d: %s", e.Code, e.Body)
}

// HTTPPathFinder calls GET {baseURL}/shortest-path. Transport errors, 429 and 5xx
// answers are retried with exponential backoff; any other failure is returned at once.
type HTTPPathFinder struct {
	baseURL    string
	client     *http.Client
	newBackOff func() backoff.BackOff
	logger     *slog.Logger
}

type HTTPPathFinderOption func(*HTTPPathFinder)

func WithHTTPClient(client *http.Client) HTTPPathFinderOption {
	return func(f *HTTPPathFinder) {
		f.client = client
	}
}

// WithBackOff replaces the retry policy. newBackOff is called once per request.
func WithBackOff(newBackOff func() backoff.BackOff) HTTPPathFinderOption {
	return func(f *HTTPPathFinder) {
		f.newBackOff = newBackOff
	}
}

func NewHTTPPathFinder(baseURL string, logger *slog.Logger, opts ...HTTPPathFinderOption) (*HTTPPathFinder, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("path finder base url is empty")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("path finder base url: %w", err)
	}

	f := &HTTPPathFinder{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultRequestTimeout},
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxElapsedTime = 5 * time.Second
			return backoff.WithMaxRetries(b, defaultMaxRetries)
		},
		logger: logger.With("component", "path-finder"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *HTTPPathFinder) FindShortestPath(
	ctx context.Context,
	origin, destination string,
	deadline time.Time,
) ([]TransitPath, error) {
	query := url.Values{}
	query.Set("origin", origin)
	query.Set("destination", destination)
	if !deadline.IsZero() {
		query.Set("deadline", deadline.UTC().Format(time.RFC3339))
	}
	endpoint := f.baseURL + "/shortest-path?" + query.Encode()

	var paths []TransitPath
	operation := func() error {
		result, err := f.get(ctx, endpoint)
		if err != nil {
			return err
		}
		paths = result
		return nil
	}

	notify := func(err error, wait time.Duration) {
		f.logger.WarnContext(ctx, "path finder call failed, retrying",
			"route.origin", origin,
			"route.destination", destination,
			"retry_in", wait,
			"error", err,
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(f.newBackOff(), ctx), notify); err != nil {
		return nil, fmt.Errorf("find shortest path %s -> %s: %w", origin, destination, err)
	}
	return paths, nil
}

func (f *HTTPPathFinder) get(ctx context.Context, endpoint string) ([]TransitPath, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		statusErr := &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		if isRetryable(resp.StatusCode) {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	var paths []TransitPath
	if err := json.NewDecoder(resp.Body).Decode(&paths); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode transit paths: %w", err))
	}
	return paths, nil
}

func isRetryable(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
