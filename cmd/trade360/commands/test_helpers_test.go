package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/99designs/keyring"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// recordedCall is one request seen by the fake provider.
type recordedCall struct {
	Path string
	Body map[string]any
}

// fakeAPI serves canned envelopes by path and records every call.
type fakeAPI struct {
	mu        sync.Mutex
	calls     []recordedCall
	responses map[string]string
	status    int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)

	body := map[string]any{}
	_ = json.Unmarshal(data, &body)

	path := strings.TrimPrefix(r.URL.Path, "/")

	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{Path: path, Body: body})
	response, ok := f.responses[path]
	status := f.status
	f.mu.Unlock()

	if !ok {
		response = `{"Header":{"HttpStatusCode":404,"Errors":[{"Message":"no such endpoint"}]}}`
		status = http.StatusNotFound
	}

	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, response)
}

func (f *fakeAPI) last() recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.calls) == 0 {
		return recordedCall{}
	}

	return f.calls[len(f.calls)-1]
}

func (f *fakeAPI) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	paths := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		paths = append(paths, call.Path)
	}

	return paths
}

func envelopeBody(body string) string {
	return `{"Header":{"HttpStatusCode":200},"Body":` + body + `}`
}

// setupCLI resets viper, points the CLI at a fake provider and swaps the
// keyring for an in-memory one. Tests using it must not run in parallel.
func setupCLI(t *testing.T, responses map[string]string) (*fakeAPI, keyring.Keyring) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	api := &fakeAPI{responses: responses}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	viper.SetConfigFile(filepath.Join(t.TempDir(), "config.yml"))
	viper.Set("base_url", server.URL+"/")
	viper.Set("package_id", 1234)
	viper.Set("username", "user")
	viper.Set("password", "secret")
	viper.Set("output", "json")

	ring := keyring.NewArrayKeyring(nil)
	original := openKeyring
	openKeyring = func(keyring.Config) (keyring.Keyring, error) { return ring, nil }

	t.Cleanup(func() { openKeyring = original })

	return api, ring
}

func execute(cmd *cobra.Command, stdin string, args ...string) (string, error) {
	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func decodeOutput(t *testing.T, out string) map[string]any {
	t.Helper()

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not a JSON object: %v\n%s", err, out)
	}

	return decoded
}
