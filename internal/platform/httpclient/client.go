// Package httpclient is the outbound HTTP client for the task API. Each call
// passes through a circuit breaker and an optional client-side rate limit,
// carries the caller's request and correlation ids plus W3C trace context,
// and is recorded as a client span and metrics. Requests are sent once and
// never retried.
//
//	client := httpclient.New(&cfg.Client, "task-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/taskboard/internal/platform/httpclient"

// StatusError is returned alongside the response for 5xx and 429 answers so
// the breaker counts them.
type StatusError struct {
	StatusCode int
	Service    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Service)
}

// Client sends requests to one downstream service.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client for serviceName from cfg. A zero requests-per-second
// disables rate limiting; nil metrics disables recording.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:        &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     newBreaker(cfg.CircuitBreaker, serviceName, logger),
		metrics:     metrics,
		logger:      logger,
	}
	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), cfg.RateLimit.Burst)
	}
	return c
}

// BaseURL is the configured root of the downstream API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req once. On any HTTP answer resp is non-nil and the caller
// closes its body; a 5xx or 429 answer also returns a *StatusError. Breaker
// rejections, rate-limit waits cut short by ctx and transport failures
// return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		out := req.WithContext(spanCtx)
		stampHeaders(ctx, out.Header)
		otel.GetTextMapPropagator().Inject(spanCtx, propagation.HeaderCarrier(out.Header))

		var sendErr error
		resp, sendErr = c.roundTrip(spanCtx, out)
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if sendErr != nil {
			span.RecordError(sendErr)
			span.SetStatus(codes.Error, sendErr.Error())
		}
		return struct{}{}, sendErr
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

func (c *Client) roundTrip(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		logging.FromContextOr(ctx, c.logger).DebugContext(ctx, "outbound request failed",
			slog.String("operation", "httpclient.Do"),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("peer_service", c.serviceName),
			slog.Any("error", err),
		)
		return nil, err
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return resp, &StatusError{StatusCode: resp.StatusCode, Service: c.serviceName}
	}
	return resp, nil
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// DrainAndClose empties and closes resp's body so the connection is reused.
func DrainAndClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
