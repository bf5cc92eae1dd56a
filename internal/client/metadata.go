package client

import (
	"context"
	"net/http"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/internal/dispatcher"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// MetadataClient implements trade360.MetadataClient.
type MetadataClient struct {
	dispatcher *dispatcher.Dispatcher
}

// NewMetadataClient creates a new metadata client.
func NewMetadataClient(d *dispatcher.Dispatcher) *MetadataClient {
	return &MetadataClient{dispatcher: d}
}

// GetSports implements trade360.MetadataClient.GetSports.
func (c *MetadataClient) GetSports(ctx context.Context) (*trade360.GetSportsResponse, error) {
	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointSports, nil,
		func(body wireSportsBody) *trade360.GetSportsResponse {
			return &trade360.GetSportsResponse{Sports: mapSlice(body.Sports, toNamedSport)}
		}, "getting sports")
}

// GetLocations implements trade360.MetadataClient.GetLocations.
func (c *MetadataClient) GetLocations(ctx context.Context) (*trade360.GetLocationsResponse, error) {
	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointLocations, nil,
		func(body wireLocationsBody) *trade360.GetLocationsResponse {
			return &trade360.GetLocationsResponse{Locations: mapSlice(body.Locations, toNamedLocation)}
		}, "getting locations")
}

// GetLeagues implements trade360.MetadataClient.GetLeagues. A nil request
// lists every league.
func (c *MetadataClient) GetLeagues(ctx context.Context, request *trade360.GetLeaguesRequest) (*trade360.GetLeaguesResponse, error) {
	req := valueOrZero(request)

	wire := wireLeaguesRequest{
		SportIDs:           req.SportIDs,
		LocationIDs:        req.LocationIDs,
		SubscriptionStatus: int(req.SubscriptionStatus),
		LanguageID:         req.LanguageID,
	}

	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointLeagues, wire,
		func(body wireLeaguesBody) *trade360.GetLeaguesResponse {
			return &trade360.GetLeaguesResponse{Leagues: mapSlice(body.Leagues, toLeague)}
		}, "getting leagues")
}

// GetMarkets implements trade360.MetadataClient.GetMarkets.
func (c *MetadataClient) GetMarkets(ctx context.Context, request *trade360.GetMarketsRequest) (*trade360.GetMarketsResponse, error) {
	req := valueOrZero(request)

	wire := wireMarketsRequest{
		MarketIDs:    req.MarketIDs,
		SportIDs:     req.SportIDs,
		IsSettleable: req.IsSettleable,
		LanguageID:   req.LanguageID,
	}

	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointMarkets, wire,
		func(body wireMarketsBody) *trade360.GetMarketsResponse {
			return &trade360.GetMarketsResponse{Markets: mapSlice(body.Markets, toMarket)}
		}, "getting markets")
}

// GetTranslations implements trade360.MetadataClient.GetTranslations.
// The request is validated before anything is sent.
func (c *MetadataClient) GetTranslations(ctx context.Context, request *trade360.GetTranslationsRequest) (*trade360.GetTranslationsResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	wire := wireTranslationsRequest{
		Languages:      request.Languages,
		SportIDs:       request.SportIDs,
		LocationIDs:    request.LocationIDs,
		LeagueIDs:      request.LeagueIDs,
		MarketIDs:      request.MarketIDs,
		ParticipantIDs: request.ParticipantIDs,
	}

	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointTranslations, wire,
		func(body wireTranslationsBody) *trade360.GetTranslationsResponse {
			return &trade360.GetTranslationsResponse{
				Sports:       mapSlice(body.Sports, toTranslation),
				Locations:    mapSlice(body.Locations, toTranslation),
				Leagues:      mapSlice(body.Leagues, toTranslation),
				Markets:      mapSlice(body.Markets, toTranslation),
				Participants: mapSlice(body.Participants, toTranslation),
			}
		}, "getting translations")
}

// GetCompetitions implements trade360.MetadataClient.GetCompetitions.
func (c *MetadataClient) GetCompetitions(ctx context.Context, request *trade360.GetCompetitionsRequest) (*trade360.GetCompetitionsResponse, error) {
	req := valueOrZero(request)

	wire := wireCompetitionsRequest{
		IDs:                req.IDs,
		SportIDs:           req.SportIDs,
		LocationIDs:        req.LocationIDs,
		SubscriptionStatus: int(req.SubscriptionStatus),
	}

	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointCompetitions, wire,
		func(body wireCompetitionsBody) *trade360.GetCompetitionsResponse {
			return &trade360.GetCompetitionsResponse{Competitions: mapSlice(body.Competitions, toCompetition)}
		}, "getting competitions")
}

// GetFixtureMetadata implements trade360.MetadataClient.GetFixtureMetadata.
// The date window travels as query parameters; zero dates are omitted.
func (c *MetadataClient) GetFixtureMetadata(ctx context.Context, request *trade360.GetFixtureMetadataRequest) (*trade360.GetFixtureMetadataResponse, error) {
	req := valueOrZero(request)

	query := wireFixtureMetadataQuery{
		FromDate: optionalTime(req.FromDate),
		ToDate:   optionalTime(req.ToDate),
	}

	return invoke(ctx, c.dispatcher, http.MethodGet, constants.EndpointFixtureMetadata, query,
		func(body wireFixtureMetadataBody) *trade360.GetFixtureMetadataResponse {
			return &trade360.GetFixtureMetadataResponse{
				SubscribedFixtures: mapSlice(body.SubscribedFixtures, toFixtureMetadata),
			}
		}, "getting fixture metadata")
}

// GetParticipants implements trade360.MetadataClient.GetParticipants.
func (c *MetadataClient) GetParticipants(ctx context.Context, request *trade360.GetParticipantsRequest) (*trade360.GetParticipantsResponse, error) {
	req := valueOrZero(request)

	wire := wireParticipantsRequest{
		IDs:         req.IDs,
		SportIDs:    req.SportIDs,
		LocationIDs: req.LocationIDs,
		Name:        req.Name,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}

	return invoke(ctx, c.dispatcher, http.MethodPost, constants.EndpointParticipants, wire,
		func(body wireParticipantsBody) *trade360.GetParticipantsResponse {
			return &trade360.GetParticipantsResponse{
				Participants: mapSlice(body.Data, toParticipant),
				TotalItems:   body.TotalItems,
			}
		}, "getting participants")
}
