package trade360_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, level+":"+msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.log("debug", msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.log("info", msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.log("warn", msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.log("error", msg) }

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := trade360.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *trade360.Request) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *trade360.Request) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &trade360.Request{Method: http.MethodPost, Endpoint: "Sports/Get"})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_RequestInterceptorError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	chain := trade360.NewInterceptorChain()
	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *trade360.Request) error {
		return boom
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *trade360.Request) error {
		called = true
		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &trade360.Request{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)
}

func TestInterceptorChain_NilChainIsNoop(t *testing.T) {
	t.Parallel()

	var chain *trade360.InterceptorChain

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &trade360.Request{}))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &trade360.Request{}, &trade360.Response{}))
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	req := &trade360.Request{}
	err := trade360.HeaderInterceptor(map[string]string{"X-Client": "cli"})(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "cli", req.Headers.Get("X-Client"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	chain := trade360.NewInterceptorChain().
		AddRequestInterceptor(trade360.LoggingInterceptor(logger)).
		AddResponseInterceptor(trade360.LoggingResponseInterceptor(logger))

	req := &trade360.Request{Method: http.MethodPost, Endpoint: "Sports/Get"}
	ctx := context.Background()

	require.NoError(t, chain.ExecuteRequestInterceptors(ctx, req))
	require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, &trade360.Response{StatusCode: 200}))
	require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, &trade360.Response{Error: errors.New("refused")}))

	assert.Equal(t, []string{
		"debug:Trade360 request",
		"debug:Trade360 response",
		"error:Trade360 response error",
	}, logger.entries)
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := trade360.NewMetricsCollector()
	chain := trade360.NewInterceptorChain().WithMetrics(collector)

	var (
		changes      int
		lastSnapshot trade360.Metrics
	)

	collector.SetOnChange(func(endpoint string, metrics trade360.Metrics) {
		changes++
		lastSnapshot = metrics
	})

	ctx := context.Background()

	for _, status := range []int{200, 400, 200} {
		req := &trade360.Request{Method: http.MethodPost, Endpoint: "Sports/Get"}
		require.NoError(t, chain.ExecuteRequestInterceptors(ctx, req))
		time.Sleep(time.Millisecond)
		require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, &trade360.Response{StatusCode: status}))
	}

	metrics, ok := collector.GetMetrics("POST Sports/Get")
	require.True(t, ok)
	assert.Equal(t, int64(3), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Positive(t, metrics.AverageLatency)
	assert.Equal(t, 3, changes)
	assert.Equal(t, metrics.TotalRequests, lastSnapshot.TotalRequests)

	_, ok = collector.GetMetrics("GET Distribution/Get")
	assert.False(t, ok)
	assert.Equal(t, []string{"POST Sports/Get"}, collector.Endpoints())
}
