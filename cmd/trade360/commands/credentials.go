package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/99designs/keyring"
	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/spf13/viper"
)

const (
	envKeyringBackend  = "TRADE360_KEYRING_BACKEND"
	envKeyringPassword = "TRADE360_KEYRING_PASSWORD"
)

// openKeyring opens the password store. Tests replace it with an in-memory
// keyring.
var openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
	return keyring.Open(cfg)
}

func keyringConfig() keyring.Config {
	cfg := keyring.Config{
		ServiceName: constants.KeyringService,
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv(envKeyringBackend)))
	if backend == "system" {
		return cfg
	}

	cfg.FileDir = keyringFileDir()
	cfg.FilePasswordFunc = keyringFilePassword

	// Headless Linux has no secret service; go straight to the file backend.
	if backend == "file" || (runtime.GOOS == "linux" && os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "") {
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	}

	return cfg
}

func keyringFileDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), constants.KeyringService, "keyring")
	}

	return filepath.Join(home, ".trade360", "keyring")
}

func keyringFilePassword(prompt string) (string, error) {
	if password := os.Getenv(envKeyringPassword); password != "" {
		return password, nil
	}

	if !stdinIsTerminal() {
		return "", fmt.Errorf("set %s when using the file keyring without a terminal", envKeyringPassword)
	}

	return keyring.TerminalPrompt(prompt)
}

// keyringKey identifies the stored password of one package user.
func keyringKey(config *Config) string {
	return fmt.Sprintf("%d:%s", config.PackageID, config.Username)
}

// resolvePassword returns the password from TRADE360_PASSWORD (or a
// "password" viper value) and falls back to the keyring.
func resolvePassword(config *Config) (string, error) {
	if password := viper.GetString("password"); password != "" {
		return password, nil
	}

	if config.PackageID == 0 || config.Username == "" {
		return "", constants.ErrNoPassword
	}

	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return "", fmt.Errorf("failed to open keyring: %w", err)
	}

	item, err := ring.Get(keyringKey(config))
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", constants.ErrNoPassword
		}

		return "", fmt.Errorf("failed to read password from keyring: %w", err)
	}

	if len(item.Data) == 0 {
		return "", constants.ErrNoPassword
	}

	return string(item.Data), nil
}

func storePassword(config *Config, password string) error {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}

	err = ring.Set(keyring.Item{
		Key:         keyringKey(config),
		Data:        []byte(password),
		Label:       "Trade360 package " + itoa(config.PackageID),
		Description: "Trade360 customer API password",
	})
	if err != nil {
		return fmt.Errorf("failed to store password in keyring: %w", err)
	}

	return nil
}

// removePassword deletes the stored password. A missing entry is not an
// error.
func removePassword(config *Config) error {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}

	if err := ring.Remove(keyringKey(config)); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("failed to remove password from keyring: %w", err)
	}

	return nil
}
