package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataClient_GetSports(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{"Sports":[{"Id":6046,"Name":"Football"},{"Id":48242,"Name":"Basketball"}]}`))

	resp, err := client.Metadata().GetSports(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []trade360.Sport{
		{ID: 6046, Name: "Football"},
		{ID: 48242, Name: "Basketball"},
	}, resp.Sports)

	req := provider.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/Sports/Get", req.Path)
	requireCredentials(t, req.Body)
	assert.Len(t, req.Body, 4)
}

func TestMetadataClient_GetSports_ProtocolError(t *testing.T) {
	t.Parallel()

	client, _ := NewTestClient(t, http.StatusBadRequest,
		`{"Header":{"HttpStatusCode":400,"RequestId":"r1","Errors":[{"Message":"bad request"}]}}`)

	resp, err := client.Metadata().GetSports(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *trade360.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"bad request"}, apiErr.Messages)
	assert.Equal(t, http.StatusBadRequest, trade360.StatusCode(err))
	assert.Contains(t, err.Error(), "getting sports: ")
}

func TestMetadataClient_GetSports_EmptyBody(t *testing.T) {
	t.Parallel()

	client, _ := NewTestClient(t, http.StatusOK, `{"Header":{"HttpStatusCode":200}}`)

	resp, err := client.Metadata().GetSports(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Sports)
	assert.Empty(t, resp.Sports)
}

func TestMetadataClient_GetLocations(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{"Locations":[{"Id":243,"Name":"England"}]}`))

	resp, err := client.Metadata().GetLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []trade360.Location{{ID: 243, Name: "England"}}, resp.Locations)
	assert.Equal(t, "/api/Locations/Get", provider.last(t).Path)
}

func TestMetadataClient_GetLeagues(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK,
		okEnvelope(`{"Leagues":[{"Id":67,"Name":"Premier League","Season":"2024/2025","SportId":6046,"LocationId":243}]}`))

	language := 2

	resp, err := client.Metadata().GetLeagues(context.Background(), &trade360.GetLeaguesRequest{
		SportIDs:           []int{6046},
		SubscriptionStatus: trade360.SubscriptionStateSubscribed,
		LanguageID:         &language,
	})
	require.NoError(t, err)

	assert.Equal(t, []trade360.League{{
		ID: 67, Name: "Premier League", Season: "2024/2025", SportID: 6046, LocationID: 243,
	}}, resp.Leagues)

	req := provider.last(t)
	assert.Equal(t, "/api/Leagues/Get", req.Path)
	assert.Equal(t, []any{float64(6046)}, req.Body["SportIds"])
	assert.InDelta(t, 1, req.Body["SubscriptionStatus"], 0)
	assert.InDelta(t, 2, req.Body["LanguageId"], 0)
	assert.NotContains(t, req.Body, "LocationIds")
	requireCredentials(t, req.Body)
}

func TestMetadataClient_GetLeagues_NilRequest(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{"Leagues":[]}`))

	resp, err := client.Metadata().GetLeagues(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Leagues)

	assert.InDelta(t, 0, provider.last(t).Body["SubscriptionStatus"], 0)
}

func TestMetadataClient_GetMarkets(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK,
		okEnvelope(`{"Markets":[{"Id":1,"Name":"1X2","IsSettleable":true,"NumberOfOutcomes":3}]}`))

	settleable := true

	resp, err := client.Metadata().GetMarkets(context.Background(), &trade360.GetMarketsRequest{
		MarketIDs:    []int{1},
		IsSettleable: &settleable,
	})
	require.NoError(t, err)

	assert.Equal(t, []trade360.Market{{ID: 1, Name: "1X2", IsSettleable: true, OutcomeCount: 3}}, resp.Markets)

	req := provider.last(t)
	assert.Equal(t, "/api/Markets/Get", req.Path)
	assert.Equal(t, true, req.Body["IsSettleable"])
	assert.NotContains(t, req.Body, "LanguageId")
}

func TestMetadataClient_GetTranslations(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{
		"Sports":[{"Id":6046,"Name":"Football","Translations":[{"LanguageId":4,"Value":"Fußball"}]}]
	}`))

	resp, err := client.Metadata().GetTranslations(context.Background(), &trade360.GetTranslationsRequest{
		Languages: []string{"de"},
		SportIDs:  []int{6046},
	})
	require.NoError(t, err)

	require.Len(t, resp.Sports, 1)
	assert.Equal(t, []trade360.LocalizedValue{{LanguageID: 4, Value: "Fußball"}}, resp.Sports[0].Translations)
	assert.Empty(t, resp.Leagues)

	req := provider.last(t)
	assert.Equal(t, "/api/Translation/Get", req.Path)
	assert.Equal(t, []any{"de"}, req.Body["Languages"])
	assert.Equal(t, []any{float64(6046)}, req.Body["SportIds"])
}

func TestMetadataClient_GetTranslations_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		request *trade360.GetTranslationsRequest
		want    string
	}{
		{
			name:    "missing languages",
			request: &trade360.GetTranslationsRequest{SportIDs: []int{1}},
			want:    "Languages must be filled.",
		},
		{
			name:    "blank language",
			request: &trade360.GetTranslationsRequest{Languages: []string{"en", " "}, SportIDs: []int{1}},
			want:    "Languages cannot contain null, empty, or whitespace values.",
		},
		{
			name:    "no filter",
			request: &trade360.GetTranslationsRequest{Languages: []string{"en"}},
			want:    "At least one of SportIds, LocationIds, LeagueIds, MarketIds, ParticipantIds must be filled.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{}`))

			resp, err := client.Metadata().GetTranslations(context.Background(), tt.request)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, tt.want, err.Error())
			assert.True(t, trade360.IsValidationError(err))
			assert.Zero(t, provider.count())
		})
	}
}

func TestMetadataClient_GetCompetitions(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK,
		okEnvelope(`{"Competitions":[{"Id":9,"Name":"Ballon d'Or","Type":3,"SportId":6046,"LocationId":1}]}`))

	resp, err := client.Metadata().GetCompetitions(context.Background(), &trade360.GetCompetitionsRequest{
		IDs:                []int{9},
		SubscriptionStatus: trade360.SubscriptionStateNotSubscribed,
	})
	require.NoError(t, err)

	assert.Equal(t, []trade360.Competition{{
		ID: 9, Name: "Ballon d'Or", Type: 3, SportID: 6046, LocationID: 1,
	}}, resp.Competitions)

	req := provider.last(t)
	assert.Equal(t, "/api/Outright/GetCompetitions", req.Path)
	assert.Equal(t, []any{float64(9)}, req.Body["Ids"])
	assert.InDelta(t, 2, req.Body["SubscriptionStatus"], 0)
}

func TestMetadataClient_GetFixtureMetadata(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{"SubscribedFixtures":[{
		"FixtureId":101,"SportId":6046,"LocationId":243,"LeagueId":67,
		"StartDate":"2024-03-01T15:00:00","LastUpdate":"2024-02-28T10:30:00Z","StatusId":1,
		"Participants":[{"Id":52,"Name":"Arsenal","Position":"1","SportId":6046}]
	}]}`))

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	resp, err := client.Metadata().GetFixtureMetadata(context.Background(), &trade360.GetFixtureMetadataRequest{
		FromDate: from,
		ToDate:   to,
	})
	require.NoError(t, err)

	require.Len(t, resp.SubscribedFixtures, 1)
	fixture := resp.SubscribedFixtures[0]
	assert.Equal(t, 101, fixture.FixtureID)
	assert.Equal(t, trade360.FixtureStatusNotStarted, fixture.Status)
	assert.Equal(t, time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC), fixture.StartDate)
	assert.Equal(t, time.Date(2024, 2, 28, 10, 30, 0, 0, time.UTC), fixture.LastUpdate)
	assert.Equal(t, []trade360.Participant{{ID: 52, Name: "Arsenal", Position: "1", SportID: 6046}}, fixture.Participants)

	req := provider.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/Fixtures/GetSubscribedMetaData", req.Path)
	assert.Equal(t,
		"PackageId=1234&UserName=user&Password=secret&MessageFormat=json"+
			"&FromDate=2024-03-01T00%3A00%3A00Z&ToDate=2024-03-02T00%3A00%3A00Z",
		req.Query)
	assert.Nil(t, req.Body)
}

func TestMetadataClient_GetFixtureMetadata_ZeroDatesOmitted(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{"SubscribedFixtures":[]}`))

	_, err := client.Metadata().GetFixtureMetadata(context.Background(), &trade360.GetFixtureMetadataRequest{})
	require.NoError(t, err)

	assert.Equal(t, "PackageId=1234&UserName=user&Password=secret&MessageFormat=json", provider.last(t).Query)
}

func TestMetadataClient_GetParticipants(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK,
		okEnvelope(`{"Data":[{"Id":52,"Name":"Arsenal","SportId":6046}],"TotalItems":1}`))

	resp, err := client.Metadata().GetParticipants(context.Background(), &trade360.GetParticipantsRequest{
		Name:     "Arsenal",
		Page:     1,
		PageSize: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalItems)
	assert.Equal(t, []trade360.Participant{{ID: 52, Name: "Arsenal", SportID: 6046}}, resp.Participants)

	req := provider.last(t)
	assert.Equal(t, "/api/Participants/Get", req.Path)
	assert.Equal(t, "Arsenal", req.Body["Name"])
	assert.InDelta(t, 50, req.Body["PageSize"], 0)
}
