package classifiers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/httptrace/otelhttptrace"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nearbyfyi/ner/config"
	"github.com/nearbyfyi/ner/internal"
	"github.com/nearbyfyi/ner/pkg/models"
)

const (
	RequestIDHeader      = "X-Request-ID"
	MaxTaggedSize        = 16 << 20 // 16MB
	DefaultRetryWaitMin  = 100 * time.Millisecond
	DefaultRetryWaitMax  = 2 * time.Second
	DefaultRemoteTimeout = 10 * time.Second
)

var _ models.Classifier = &Remote{}

// Remote is a classifier served by a tagging sidecar. The sidecar receives
// the raw text as a text/plain POST body and answers 200 with the
// inline-XML tagged text.
type Remote struct {
	name    string
	url     string
	client  *retryablehttp.Client
	maxSize int64
}

// NewRemote creates a Remote classifier for the configured URL.
func NewRemote(name string, cfg config.ClassifierConfig) (*Remote, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid url for classifier %q: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid url for classifier %q: %q", name, cfg.URL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}

	return &Remote{
		name:    name,
		url:     u.String(),
		client:  NewRetryableHTTPClient(cfg.RetryMax, timeout),
		maxSize: MaxTaggedSize,
	}, nil
}

// NewRetryableHTTPClient returns a new retryable HTTP client with the given retryMax and timeout.
// The underlying transport is wrapped in an OpenTelemetry transport.
func NewRetryableHTTPClient(retryMax int, timeout time.Duration) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = DefaultRetryWaitMin
	client.RetryWaitMax = DefaultRetryWaitMax
	client.Logger = internal.NewLeveledLogrus(internal.GetLogger())
	client.Backoff = retryablehttp.DefaultBackoff
	client.CheckRetry = retryablehttp.DefaultRetryPolicy
	client.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: otelhttp.NewTransport(
			http.DefaultTransport,
			otelhttp.WithClientTrace(func(ctx context.Context) *httptrace.ClientTrace {
				return otelhttptrace.NewClientTrace(ctx)
			}),
		),
	}

	return client
}

func (r *Remote) Tag(ctx context.Context, text string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, r.url, []byte(text))
	if err != nil {
		return "", fmt.Errorf("failed to create tagging request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", config.UserAgent)
	req.Header.Set(RequestIDHeader, requestID(ctx))

	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %s: %w", models.ErrClassifierUnavailable, r.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %s: reading response: %w", models.ErrClassifierUnavailable, r.name, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"%w: %s answered %s: %s",
			models.ErrClassifierUnavailable,
			r.name,
			resp.Status,
			bytes.TrimSpace(body),
		)
	}

	if int64(len(body)) > r.maxSize {
		return "", fmt.Errorf(
			"%w: %s: tagged text exceeds %d bytes",
			models.ErrClassifierUnavailable,
			r.name,
			r.maxSize,
		)
	}

	return string(body), nil
}

// requestID forwards the id assigned by the request-id middleware so a
// tagging call can be matched to the request that caused it.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
