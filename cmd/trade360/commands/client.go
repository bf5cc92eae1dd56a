package commands

import (
	"context"
	"errors"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cliClient closes the command logger together with the SDK client.
type cliClient struct {
	trade360.Client

	logger *cliLogger
}

func (c *cliClient) Close() error {
	return errors.Join(c.Client.Close(), c.logger.Close())
}

// CreateClient builds an SDK client from the effective configuration and
// the resolved password.
func CreateClient() (trade360.Client, error) {
	config := loadConfig()

	switch {
	case config.BaseURL == "":
		return nil, constants.ErrNoBaseURL
	case config.PackageID == 0:
		return nil, constants.ErrNoPackageID
	case config.Username == "":
		return nil, constants.ErrNoUsername
	}

	password, err := resolvePassword(config)
	if err != nil {
		return nil, err
	}

	return newClientWithPassword(config, password)
}

func newClientWithPassword(config *Config, password string) (trade360.Client, error) {
	verbose := viper.GetBool("verbose")
	logger := stderrLogger(verbose, config.LogFile)

	client, err := trade360client.New(&trade360.Config{
		BaseURL:       config.BaseURL,
		PackageID:     config.PackageID,
		Username:      config.Username,
		Password:      password,
		MessageFormat: config.MessageFormat,
		HTTPTimeout:   config.Timeout,
		UserAgent:     "trade360-cli/" + cliVersion,
		Debug:         verbose || config.LogFile != "",
		Logger:        logger,
	})
	if err != nil {
		_ = logger.Close()

		return nil, err
	}

	return &cliClient{Client: client, logger: logger}, nil
}

// runWithClient creates a client, hands it to fn and closes it afterwards.
func runWithClient(cmd *cobra.Command, fn func(ctx context.Context, client trade360.Client) error) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	defer func() { _ = client.Close() }()

	return fn(commandContext(cmd), client)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
