package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake provider saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// fakeProvider answers every call with one canned envelope.
type fakeProvider struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	response string
}

func (p *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	var body map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	p.mu.Lock()
	p.requests = append(p.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   body,
	})
	status := p.status
	response := p.response
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(response))
}

func (p *fakeProvider) last(t *testing.T) recordedRequest {
	t.Helper()

	p.mu.Lock()
	defer p.mu.Unlock()

	require.NotEmpty(t, p.requests, "no request reached the provider")

	return p.requests[len(p.requests)-1]
}

func (p *fakeProvider) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.requests)
}

// okEnvelope wraps body in a successful envelope.
func okEnvelope(body string) string {
	return `{"Header":{"HttpStatusCode":200},"Body":` + body + `}`
}

func testConfig(baseURL string) *trade360.Config {
	return &trade360.Config{
		BaseURL:   baseURL,
		PackageID: 1234,
		Username:  "user",
		Password:  "secret",
	}
}

// NewTestClient starts a fake provider answering with status and response
// and returns a client pointed at it.
func NewTestClient(t *testing.T, status int, response string) (*Client, *fakeProvider) {
	t.Helper()

	provider := &fakeProvider{status: status, response: response}
	server := httptest.NewServer(provider)
	t.Cleanup(server.Close)

	client, err := New(testConfig(server.URL + "/api/"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	return client, provider
}

// requireCredentials asserts the credential fields were merged into body.
func requireCredentials(t *testing.T, body map[string]any) {
	t.Helper()

	require.InDelta(t, 1234, body["PackageId"], 0)
	require.Equal(t, "user", body["UserName"])
	require.Equal(t, "secret", body["Password"])
	require.Equal(t, "json", body["MessageFormat"])
}
