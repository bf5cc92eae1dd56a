package client

import (
	"context"
	"net/http"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/internal/dispatcher"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// SubscriptionClient implements trade360.SubscriptionClient.
type SubscriptionClient struct {
	dispatcher *dispatcher.Dispatcher
}

// NewSubscriptionClient creates a new subscription client.
func NewSubscriptionClient(d *dispatcher.Dispatcher) *SubscriptionClient {
	return &SubscriptionClient{dispatcher: d}
}

// GetPackageQuota implements trade360.SubscriptionClient.GetPackageQuota.
func (c *SubscriptionClient) GetPackageQuota(ctx context.Context) (*trade360.PackageQuota, error) {
	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointPackageQuota, nil,
		func(body wirePackageQuotaBody) *trade360.PackageQuota {
			return &trade360.PackageQuota{
				CreditRemaining:        body.CreditRemaining,
				CreditLimit:            body.CreditLimit,
				UsedCredit:             body.UsedCredit,
				UsedPercentage:         body.UsedPercentage,
				CurrentPeriodStartDate: body.CurrentPeriodStartDate.Time,
				CurrentPeriodEndDate:   body.CurrentPeriodEndDate.Time,
			}
		}, "getting package quota")
}

// GetInplayFixtureSchedule implements
// trade360.SubscriptionClient.GetInplayFixtureSchedule.
func (c *SubscriptionClient) GetInplayFixtureSchedule(ctx context.Context, request *trade360.GetFixtureScheduleRequest) (*trade360.GetFixtureScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	wire := wireFixtureFilter{
		SportIDs:    request.SportIDs,
		LocationIDs: request.LocationIDs,
		LeagueIDs:   request.LeagueIDs,
	}

	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointInplaySchedule, wire,
		func(body wireFixturesBody) *trade360.GetFixtureScheduleResponse {
			return &trade360.GetFixtureScheduleResponse{Fixtures: mapSlice(body.Fixtures, toScheduledFixture)}
		}, "getting in-play fixture schedule")
}

// SubscribeByFixtures implements trade360.SubscriptionClient.SubscribeByFixtures.
func (c *SubscriptionClient) SubscribeByFixtures(ctx context.Context, request *trade360.FixtureSubscriptionRequest) (*trade360.FixtureSubscriptionResponse, error) {
	return c.changeFixtures(ctx, constants.EndpointFixturesSubscribe, request, "subscribing to fixtures")
}

// UnsubscribeByFixtures implements trade360.SubscriptionClient.UnsubscribeByFixtures.
func (c *SubscriptionClient) UnsubscribeByFixtures(ctx context.Context, request *trade360.FixtureSubscriptionRequest) (*trade360.FixtureSubscriptionResponse, error) {
	return c.changeFixtures(ctx, constants.EndpointFixturesUnsubscribe, request, "unsubscribing from fixtures")
}

func (c *SubscriptionClient) changeFixtures(
	ctx context.Context,
	endpoint string,
	request *trade360.FixtureSubscriptionRequest,
	action string,
) (*trade360.FixtureSubscriptionResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	wire := wireFixtureSubscriptionRequest{Fixtures: request.Fixtures}

	return invoke(ctx, c.dispatcher, http.MethodPost, endpoint, wire,
		func(body wireFixtureSubscriptionBody) *trade360.FixtureSubscriptionResponse {
			return &trade360.FixtureSubscriptionResponse{Fixtures: mapSlice(body.Fixtures, toFixtureSubscription)}
		}, action)
}

// SubscribeByLeagues implements trade360.SubscriptionClient.SubscribeByLeagues.
func (c *SubscriptionClient) SubscribeByLeagues(ctx context.Context, request *trade360.LeagueSubscriptionRequest) (*trade360.LeagueSubscriptionResponse, error) {
	return c.changeLeagues(ctx, constants.EndpointLeaguesSubscribe, request, "subscribing to leagues")
}

// UnsubscribeByLeagues implements trade360.SubscriptionClient.UnsubscribeByLeagues.
func (c *SubscriptionClient) UnsubscribeByLeagues(ctx context.Context, request *trade360.LeagueSubscriptionRequest) (*trade360.LeagueSubscriptionResponse, error) {
	return c.changeLeagues(ctx, constants.EndpointLeaguesUnsubscribe, request, "unsubscribing from leagues")
}

func (c *SubscriptionClient) changeLeagues(
	ctx context.Context,
	endpoint string,
	request *trade360.LeagueSubscriptionRequest,
	action string,
) (*trade360.LeagueSubscriptionResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	wire := wireLeagueSubscriptionRequest{
		Subscriptions: mapSlice(request.Subscriptions, func(item trade360.LeagueSubscriptionItem) wireLeagueSubscriptionItem {
			return wireLeagueSubscriptionItem{LeagueID: item.LeagueID, SportID: item.SportID, LocationID: item.LocationID}
		}),
	}

	return invoke(ctx, c.dispatcher, http.MethodPost, endpoint, wire,
		func(body wireLeagueSubscriptionBody) *trade360.LeagueSubscriptionResponse {
			return &trade360.LeagueSubscriptionResponse{Subscriptions: mapSlice(body.Subscription, toLeagueSubscription)}
		}, action)
}

// GetSubscriptions implements trade360.SubscriptionClient.GetSubscriptions.
// A nil request lists every subscribed fixture.
func (c *SubscriptionClient) GetSubscriptions(ctx context.Context, request *trade360.GetSubscriptionsRequest) (*trade360.GetSubscriptionsResponse, error) {
	req := valueOrZero(request)

	wire := wireFixtureFilter{
		FixtureIDs:  req.FixtureIDs,
		SportIDs:    req.SportIDs,
		LocationIDs: req.LocationIDs,
		LeagueIDs:   req.LeagueIDs,
	}

	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointSubscribedFixtures, wire,
		func(body wireFixturesBody) *trade360.GetSubscriptionsResponse {
			return &trade360.GetSubscriptionsResponse{Fixtures: mapSlice(body.Fixtures, toSubscribedFixture)}
		}, "getting subscriptions")
}

// SubscribeByCompetitions implements trade360.SubscriptionClient.SubscribeByCompetitions.
func (c *SubscriptionClient) SubscribeByCompetitions(ctx context.Context, request *trade360.CompetitionSubscriptionRequest) (*trade360.CompetitionSubscriptionResponse, error) {
	return c.changeCompetitions(ctx, constants.EndpointOutrightSubscribe, request, "subscribing to competitions")
}

// UnsubscribeByCompetitions implements trade360.SubscriptionClient.UnsubscribeByCompetitions.
func (c *SubscriptionClient) UnsubscribeByCompetitions(ctx context.Context, request *trade360.CompetitionSubscriptionRequest) (*trade360.CompetitionSubscriptionResponse, error) {
	return c.changeCompetitions(ctx, constants.EndpointOutrightUnsubscribe, request, "unsubscribing from competitions")
}

func (c *SubscriptionClient) changeCompetitions(
	ctx context.Context,
	endpoint string,
	request *trade360.CompetitionSubscriptionRequest,
	action string,
) (*trade360.CompetitionSubscriptionResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	wire := wireCompetitionSubscriptionRequest{
		Subscriptions: mapSlice(request.Subscriptions, func(item trade360.CompetitionSubscriptionItem) wireCompetitionSubscriptionItem {
			return wireCompetitionSubscriptionItem{
				CompetitionID: item.CompetitionID,
				SportID:       item.SportID,
				LocationID:    item.LocationID,
			}
		}),
	}

	return invoke(ctx, c.dispatcher, http.MethodPost, endpoint, wire,
		func(body wireCompetitionSubscriptionBody) *trade360.CompetitionSubscriptionResponse {
			return &trade360.CompetitionSubscriptionResponse{
				Subscriptions: mapSlice(body.Subscription, toCompetitionSubscription),
			}
		}, action)
}

// GetAllManualSuspensions implements trade360.SubscriptionClient.GetAllManualSuspensions.
func (c *SubscriptionClient) GetAllManualSuspensions(ctx context.Context) (*trade360.ManualSuspensionsResponse, error) {
	return invoke(ctx, c.dispatcher, http.MethodGet, constants.EndpointSuspensions, nil,
		func(body wireSuspensionsBody) *trade360.ManualSuspensionsResponse {
			response := toSuspensionsResponse(body)
			response.Succeeded = true

			return response
		}, "getting manual suspensions")
}

// AddManualSuspension implements trade360.SubscriptionClient.AddManualSuspension.
func (c *SubscriptionClient) AddManualSuspension(ctx context.Context, request *trade360.ChangeManualSuspensionRequest) (*trade360.ManualSuspensionsResponse, error) {
	return c.changeSuspensions(ctx, constants.EndpointSuspensionsActivate, request, "adding manual suspension")
}

// RemoveManualSuspension implements trade360.SubscriptionClient.RemoveManualSuspension.
func (c *SubscriptionClient) RemoveManualSuspension(ctx context.Context, request *trade360.ChangeManualSuspensionRequest) (*trade360.ManualSuspensionsResponse, error) {
	return c.changeSuspensions(ctx, constants.EndpointSuspensionsDeactivate, request, "removing manual suspension")
}

func (c *SubscriptionClient) changeSuspensions(
	ctx context.Context,
	endpoint string,
	request *trade360.ChangeManualSuspensionRequest,
	action string,
) (*trade360.ManualSuspensionsResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	wire := wireSuspensionRequest{Suspensions: mapSlice(request.Suspensions, fromSuspension)}

	return invoke(ctx, c.dispatcher, http.MethodPost, endpoint, wire, toSuspensionsResponse, action)
}
