//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BaseURL    string
	PackageID  string
	Username   string
	Password   string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:    os.Getenv("TRADE360_BASE_URL"),
		PackageID:  os.Getenv("TRADE360_PACKAGE_ID"),
		Username:   os.Getenv("TRADE360_USERNAME"),
		Password:   os.Getenv("TRADE360_PASSWORD"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("TRADE360_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the trade360 binary
func getBinaryPath() string {
	if path := os.Getenv("TRADE360_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../trade360", "./trade360", "../trade360"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "trade360"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.BaseURL == "" || config.PackageID == "" || config.Username == "" || config.Password == "" {
		t.Skip("TRADE360_BASE_URL, TRADE360_PACKAGE_ID, TRADE360_USERNAME and TRADE360_PASSWORD must be set")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("trade360 binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the trade360 binary against a live package.
type CommandRunner struct {
	config *TestConfig
	home   string
	t      *testing.T
}

// NewCommandRunner creates a new command runner with an isolated HOME.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		home:   t.TempDir(),
		t:      t,
	}
}

// Run executes a trade360 command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+runner.home,
		"TRADE360_BASE_URL="+runner.config.BaseURL,
		"TRADE360_PACKAGE_ID="+runner.config.PackageID,
		"TRADE360_USERNAME="+runner.config.Username,
		"TRADE360_PASSWORD="+runner.config.Password,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// DecodeJSON parses command output as a JSON object.
func DecodeJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var decoded map[string]any
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("Output is not a JSON object: %v\n%s", err, output)
	}

	return decoded
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Errorf("Output does not appear to be YAML: %v\n%s", err, output)
	}
}
