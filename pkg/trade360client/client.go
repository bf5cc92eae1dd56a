// Package trade360client provides the main entry point for creating Trade360 clients.
package trade360client

import (
	"fmt"

	"github.com/lsportsltd/trade360-go-sdk/internal/client"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// New creates a Trade360 client. The config is validated before anything
// else happens; an invalid config returns an error wrapping
// trade360.ErrInvalidConfig.
func New(config *trade360.Config) (trade360.Client, error) {
	if config == nil {
		return nil, trade360.ErrConfigRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithCredentials creates a client for baseURL using package credentials
// and default settings.
func NewWithCredentials(baseURL string, packageID int, username, password string) (trade360.Client, error) {
	return New(&trade360.Config{
		BaseURL:   baseURL,
		PackageID: packageID,
		Username:  username,
		Password:  password,
	})
}
