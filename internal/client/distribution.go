package client

import (
	"context"
	"net/http"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/internal/dispatcher"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// DistributionClient implements trade360.DistributionClient.
type DistributionClient struct {
	dispatcher *dispatcher.Dispatcher
}

// NewDistributionClient creates a new distribution client.
func NewDistributionClient(d *dispatcher.Dispatcher) *DistributionClient {
	return &DistributionClient{dispatcher: d}
}

// Start implements trade360.DistributionClient.Start.
func (c *DistributionClient) Start(ctx context.Context) (*trade360.DistributionActionResponse, error) {
	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointDistributionStart, nil,
		toDistributionAction, "starting distribution")
}

// Stop implements trade360.DistributionClient.Stop.
func (c *DistributionClient) Stop(ctx context.Context) (*trade360.DistributionActionResponse, error) {
	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointDistributionStop, nil,
		toDistributionAction, "stopping distribution")
}

// GetStatus implements trade360.DistributionClient.GetStatus.
func (c *DistributionClient) GetStatus(ctx context.Context) (*trade360.DistributionStatus, error) {
	return invoke(ctx, c.dispatcher, http.MethodGet, constants.EndpointDistributionStatus, nil,
		func(body wireDistributionStatusBody) *trade360.DistributionStatus {
			consumers := body.Consumers
			if consumers == nil {
				consumers = []string{}
			}

			return &trade360.DistributionStatus{
				IsDistributionOn:      body.IsDistributionOn,
				Consumers:             consumers,
				NumberMessagesInQueue: body.NumberMessagesInQueue,
				MessagesPerSecond:     body.MessagesPerSecond,
			}
		}, "getting distribution status")
}

func toDistributionAction(body wireMessageBody) *trade360.DistributionActionResponse {
	return &trade360.DistributionActionResponse{Message: body.Message}
}
