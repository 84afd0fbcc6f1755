package httpclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
)

func clientConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

// taskAPI is a stub downstream that answers with the current status and
// counts hits.
type taskAPI struct {
	*httptest.Server
	status atomic.Int32
	hits   atomic.Int32
	last   atomic.Pointer[http.Request]
	body   atomic.Pointer[string]
}

func newTaskAPI(t *testing.T, status int) *taskAPI {
	t.Helper()
	api := &taskAPI{}
	api.status.Store(int32(status))
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		b, _ := io.ReadAll(r.Body)
		s := string(b)
		api.body.Store(&s)
		api.last.Store(r)
		w.WriteHeader(int(api.status.Load()))
		_, _ = io.WriteString(w, "[]")
	}))
	t.Cleanup(api.Close)
	return api
}

// send issues one request and closes whatever response comes back.
func send(t *testing.T, c *httpclient.Client, ctx context.Context, method, url, body string) (int, error) {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := c.Do(ctx, req)
	if resp == nil {
		return 0, err
	}
	defer httpclient.DrainAndClose(resp)
	return resp.StatusCode, err
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	api := newTaskAPI(t, http.StatusCreated)
	c := httpclient.New(clientConfig(api.URL), "task-api", nil, nil)

	code, err := send(t, c, context.Background(), http.MethodPost, api.URL+"/tasks", `{"title":"Write report"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, `{"title":"Write report"}`, *api.body.Load())
	assert.Equal(t, api.URL, c.BaseURL())
}

func TestDo_ServerFailuresSentOnce(t *testing.T) {
	t.Parallel()

	for _, status := range []int{
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusTooManyRequests,
	} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			api := newTaskAPI(t, status)
			c := httpclient.New(clientConfig(api.URL), "task-api", nil, nil)

			code, err := send(t, c, context.Background(), http.MethodGet, api.URL+"/tasks", "")

			var statusErr *httpclient.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, status, statusErr.StatusCode)
			assert.Equal(t, "task-api", statusErr.Service)
			assert.Equal(t, status, code, "response is still returned")
			assert.EqualValues(t, 1, api.hits.Load(), "never retried")
		})
	}
}

func TestDo_ClientErrorsKeepBreakerClosed(t *testing.T) {
	t.Parallel()

	api := newTaskAPI(t, http.StatusNotFound)
	cfg := clientConfig(api.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	c := httpclient.New(cfg, "task-api", nil, nil)

	for range 3 {
		code, err := send(t, c, context.Background(), http.MethodDelete, api.URL+"/tasks/gone", "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, code)
	}

	assert.EqualValues(t, 3, api.hits.Load())
	assert.NoError(t, c.HealthCheck(context.Background()))
}

func TestDo_PropagatesRequestMetadata(t *testing.T) {
	t.Parallel()

	api := newTaskAPI(t, http.StatusOK)
	c := httpclient.New(clientConfig(api.URL), "task-api", nil, nil)

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
	_, err := send(t, c, ctx, http.MethodGet, api.URL+"/tasks", "")
	require.NoError(t, err)

	got := api.last.Load().Header
	assert.Equal(t, "req-123", got.Get(httpclient.HeaderRequestID))
	assert.Equal(t, "corr-456", got.Get(httpclient.HeaderCorrelationID))

	_, err = send(t, c, context.Background(), http.MethodGet, api.URL+"/tasks", "")
	require.NoError(t, err)
	assert.Empty(t, api.last.Load().Header.Get(httpclient.HeaderRequestID))
	assert.Empty(t, api.last.Load().Header.Get(httpclient.HeaderCorrelationID))
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, httpclient.RequestIDFromContext(ctx))
	assert.Empty(t, httpclient.CorrelationIDFromContext(ctx))

	ctx = httpclient.WithCorrelationID(httpclient.WithRequestID(ctx, "r"), "c")
	assert.Equal(t, "r", httpclient.RequestIDFromContext(ctx))
	assert.Equal(t, "c", httpclient.CorrelationIDFromContext(ctx))
}

func TestDo_RateLimit(t *testing.T) {
	t.Parallel()

	api := newTaskAPI(t, http.StatusOK)
	cfg := clientConfig(api.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 20, Burst: 1}
	c := httpclient.New(cfg, "task-api", nil, nil)

	start := time.Now()
	for range 3 {
		_, err := send(t, c, context.Background(), http.MethodGet, api.URL+"/tasks", "")
		require.NoError(t, err)
	}
	// Burst 1 at 20 rps: the second and third calls each wait ~50ms.
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)

	slow := clientConfig(api.URL)
	slow.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.1, Burst: 1}
	c = httpclient.New(slow, "task-api", nil, nil)
	_, err := send(t, c, context.Background(), http.MethodGet, api.URL+"/tasks", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	code, err := send(t, c, ctx, http.MethodGet, api.URL+"/tasks", "")
	assert.Error(t, err, "wait is cut short by the context")
	assert.Zero(t, code)
}

func TestDo_BreakerLifecycle(t *testing.T) {
	t.Parallel()

	api := newTaskAPI(t, http.StatusInternalServerError)
	cfg := clientConfig(api.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	c := httpclient.New(cfg, "task-api", nil, nil)

	require.NoError(t, c.HealthCheck(context.Background()))

	// Trip.
	_, err := send(t, c, context.Background(), http.MethodGet, api.URL+"/tasks", "")
	require.Error(t, err)
	assert.ErrorContains(t, c.HealthCheck(context.Background()), "failing")

	// Open: rejected without reaching the server.
	hits := api.hits.Load()
	_, err = send(t, c, context.Background(), http.MethodGet, api.URL+"/tasks", "")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, hits, api.hits.Load())

	// Half-open after the timeout.
	time.Sleep(150 * time.Millisecond)
	assert.ErrorContains(t, c.HealthCheck(context.Background()), "degraded")

	// A successful probe closes it again.
	api.status.Store(http.StatusOK)
	code, err := send(t, c, context.Background(), http.MethodGet, api.URL+"/tasks", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.NoError(t, c.HealthCheck(context.Background()))
}

func TestDo_CancelledContext(t *testing.T) {
	t.Parallel()

	api := newTaskAPI(t, http.StatusOK)
	c := httpclient.New(clientConfig(api.URL), "task-api", nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := send(t, c, ctx, http.MethodGet, api.URL+"/tasks", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Zero(t, code)
}

func TestDo_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewMetrics(mp, "taskboard")
	require.NoError(t, err)

	api := newTaskAPI(t, http.StatusOK)
	c := httpclient.New(clientConfig(api.URL), "task-api", metrics, nil)
	_, err = send(t, c, context.Background(), http.MethodGet, api.URL+"/tasks", "")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.client.request.total" {
				continue
			}
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				total += dp.Value
			}
		}
	}
	assert.EqualValues(t, 1, total)
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	c := httpclient.New(clientConfig("http://localhost"), "task-api", nil, nil)
	assert.Equal(t, "task-api", c.Name())
}

func TestDrainAndClose_Nil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { httpclient.DrainAndClose(nil) })
}
