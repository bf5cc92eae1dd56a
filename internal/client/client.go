package client

import (
	"fmt"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/internal/dispatcher"
	"github.com/lsportsltd/trade360-go-sdk/internal/http"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// Client implements the trade360.Client interface.
type Client struct {
	dispatcher *dispatcher.Dispatcher

	metadata     *MetadataClient
	distribution *DistributionClient
	subscription *SubscriptionClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *trade360.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	} else {
		timeout := constants.DefaultHTTPTimeout
		if config.HTTPTimeout > 0 {
			timeout = config.HTTPTimeout
		}

		httpOpts = append(httpOpts, http.WithTimeout(timeout))
	}

	return httpOpts
}

// New creates a Trade360 client from config. The config is validated first,
// so a missing base URL or credential fails here rather than on first use.
func New(config *trade360.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	transport := http.NewClient(createHTTPClientOptions(config)...)

	var dispatcherOpts []dispatcher.Option

	if config.Logger != nil {
		dispatcherOpts = append(dispatcherOpts, dispatcher.WithLogger(config.Logger))
	}

	if config.Interceptors != nil {
		dispatcherOpts = append(dispatcherOpts, dispatcher.WithInterceptors(config.Interceptors))
	}

	d, err := dispatcher.New(transport, config.BaseURL, config.Credentials(), dispatcherOpts...)
	if err != nil {
		_ = transport.Close()

		return nil, fmt.Errorf("creating dispatcher: %w", err)
	}

	return NewWithDispatcher(d), nil
}

// NewWithDispatcher wires the facades over an existing dispatcher.
func NewWithDispatcher(d *dispatcher.Dispatcher) *Client {
	return &Client{
		dispatcher:   d,
		metadata:     NewMetadataClient(d),
		distribution: NewDistributionClient(d),
		subscription: NewSubscriptionClient(d),
	}
}

// Metadata implements trade360.Client.Metadata.
func (c *Client) Metadata() trade360.MetadataClient {
	return c.metadata
}

// Distribution implements trade360.Client.Distribution.
func (c *Client) Distribution() trade360.DistributionClient {
	return c.distribution
}

// Subscription implements trade360.Client.Subscription.
func (c *Client) Subscription() trade360.SubscriptionClient {
	return c.subscription
}

// Close implements trade360.Client.Close.
func (c *Client) Close() error {
	if err := c.dispatcher.Close(); err != nil {
		return fmt.Errorf("closing client: %w", err)
	}

	return nil
}

var _ trade360.Client = (*Client)(nil)
