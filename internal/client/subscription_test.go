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

func TestSubscriptionClient_GetPackageQuota(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{
		"CreditRemaining":900,"CreditLimit":1000,"UsedCredit":100,"UsedPercentage":10,
		"CurrentPeriodStartDate":"2024-03-01T00:00:00","CurrentPeriodEndDate":"2024-04-01T00:00:00Z"
	}`))

	quota, err := client.Subscription().GetPackageQuota(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 900, quota.CreditRemaining)
	assert.Equal(t, 1000, quota.CreditLimit)
	assert.Equal(t, 100, quota.UsedCredit)
	assert.InDelta(t, 10, quota.UsedPercentage, 0.0001)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), quota.CurrentPeriodStartDate)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), quota.CurrentPeriodEndDate)

	assert.Equal(t, "/api/Package/GetPackageQuota", provider.last(t).Path)
}

func TestSubscriptionClient_GetInplayFixtureSchedule(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{"Fixtures":[{
		"FixtureId":101,"SportId":6046,"LocationId":243,"LeagueId":67,
		"StartDate":"2024-03-01T15:00:00Z","StatusId":9,"Participants":[{"Id":52,"Name":"Arsenal"}]
	}]}`))

	resp, err := client.Subscription().GetInplayFixtureSchedule(context.Background(),
		&trade360.GetFixtureScheduleRequest{SportIDs: []int{6046}})
	require.NoError(t, err)

	require.Len(t, resp.Fixtures, 1)
	assert.Equal(t, trade360.FixtureStatusAboutToStart, resp.Fixtures[0].Status)
	assert.Equal(t, "Arsenal", resp.Fixtures[0].Participants[0].Name)

	req := provider.last(t)
	assert.Equal(t, "/api/Fixtures/InPlaySchedule", req.Path)
	assert.Equal(t, []any{float64(6046)}, req.Body["SportIds"])
	assert.NotContains(t, req.Body, "FixtureIds")
}

func TestSubscriptionClient_GetInplayFixtureSchedule_Validation(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{}`))

	_, err := client.Subscription().GetInplayFixtureSchedule(context.Background(), &trade360.GetFixtureScheduleRequest{})
	require.Error(t, err)
	assert.Equal(t, "At least one of SportIds, LocationIds, LeagueIds must be filled.", err.Error())
	assert.Zero(t, provider.count())
}

func TestSubscriptionClient_FixtureSubscriptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(c trade360.SubscriptionClient, ctx context.Context, r *trade360.FixtureSubscriptionRequest) (*trade360.FixtureSubscriptionResponse, error)
		path string
	}{
		{name: "subscribe", call: trade360.SubscriptionClient.SubscribeByFixtures, path: "/api/Fixtures/Subscribe"},
		{name: "unsubscribe", call: trade360.SubscriptionClient.UnsubscribeByFixtures, path: "/api/Fixtures/UnSubscribe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, provider := NewTestClient(t, http.StatusOK, okEnvelope(
				`{"Fixtures":[{"FixtureId":101,"Success":true},{"FixtureId":102,"Success":false,"Message":"Fixture not found"}]}`))

			resp, err := tt.call(client.Subscription(), context.Background(),
				&trade360.FixtureSubscriptionRequest{Fixtures: []int{101, 102}})
			require.NoError(t, err)

			assert.Equal(t, []trade360.FixtureSubscription{
				{FixtureID: 101, Success: true},
				{FixtureID: 102, Success: false, Message: "Fixture not found"},
			}, resp.Fixtures)

			req := provider.last(t)
			assert.Equal(t, tt.path, req.Path)
			assert.Equal(t, []any{float64(101), float64(102)}, req.Body["Fixtures"])
			requireCredentials(t, req.Body)
		})
	}
}

func TestSubscriptionClient_FixtureSubscriptions_Validation(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{}`))

	_, err := client.Subscription().SubscribeByFixtures(context.Background(), &trade360.FixtureSubscriptionRequest{})
	require.Error(t, err)
	assert.Equal(t, "Fixtures must be filled.", err.Error())

	_, err = client.Subscription().UnsubscribeByFixtures(context.Background(), &trade360.FixtureSubscriptionRequest{})
	require.Error(t, err)

	assert.Zero(t, provider.count())
}

func TestSubscriptionClient_LeagueSubscriptions(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(
		`{"Subscription":[{"LeagueId":67,"SportId":6046,"LocationId":243,"Success":true}]}`))

	request := &trade360.LeagueSubscriptionRequest{
		Subscriptions: []trade360.LeagueSubscriptionItem{{LeagueID: 67, SportID: 6046, LocationID: 243}},
	}

	resp, err := client.Subscription().SubscribeByLeagues(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, []trade360.LeagueSubscription{
		{LeagueID: 67, SportID: 6046, LocationID: 243, Success: true},
	}, resp.Subscriptions)

	req := provider.last(t)
	assert.Equal(t, "/api/Leagues/Subscribe", req.Path)
	assert.Equal(t, []any{map[string]any{
		"LeagueId": float64(67), "SportId": float64(6046), "LocationId": float64(243),
	}}, req.Body["Subscriptions"])

	_, err = client.Subscription().UnsubscribeByLeagues(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "/api/Leagues/UnSubscribe", provider.last(t).Path)

	_, err = client.Subscription().SubscribeByLeagues(context.Background(), &trade360.LeagueSubscriptionRequest{})
	require.Error(t, err)
	assert.Equal(t, "Subscriptions must be filled.", err.Error())
	assert.Equal(t, 2, provider.count())
}

func TestSubscriptionClient_CompetitionSubscriptions(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(
		`{"Subscription":[{"CompetitionId":9,"SportId":6046,"LocationId":1,"Success":true}]}`))

	request := &trade360.CompetitionSubscriptionRequest{
		Subscriptions: []trade360.CompetitionSubscriptionItem{{CompetitionID: 9, SportID: 6046, LocationID: 1}},
	}

	resp, err := client.Subscription().SubscribeByCompetitions(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, []trade360.CompetitionSubscription{
		{CompetitionID: 9, SportID: 6046, LocationID: 1, Success: true},
	}, resp.Subscriptions)
	assert.Equal(t, "/api/Outright/Subscribe", provider.last(t).Path)

	_, err = client.Subscription().UnsubscribeByCompetitions(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "/api/Outright/UnSubscribe", provider.last(t).Path)

	_, err = client.Subscription().UnsubscribeByCompetitions(context.Background(), &trade360.CompetitionSubscriptionRequest{})
	require.Error(t, err)
	assert.True(t, trade360.IsValidationError(err))
}

func TestSubscriptionClient_GetSubscriptions(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{"Fixtures":[
		{"FixtureId":101,"SportId":6046,"LocationId":243,"LeagueId":67,"StartDate":"2024-03-01T15:00:00Z","StatusId":2}
	]}`))

	resp, err := client.Subscription().GetSubscriptions(context.Background(), &trade360.GetSubscriptionsRequest{
		FixtureIDs: []int{101},
	})
	require.NoError(t, err)

	assert.Equal(t, []trade360.SubscribedFixture{{
		FixtureID:  101,
		SportID:    6046,
		LocationID: 243,
		LeagueID:   67,
		StartDate:  time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC),
		Status:     trade360.FixtureStatusInProgress,
	}}, resp.Fixtures)

	req := provider.last(t)
	assert.Equal(t, "/api/Fixtures/GetSubscribed", req.Path)
	assert.Equal(t, []any{float64(101)}, req.Body["FixtureIds"])

	_, err = client.Subscription().GetSubscriptions(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, provider.last(t).Body, 4)
}

func TestSubscriptionClient_GetAllManualSuspensions(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(`{"Suspensions":[
		{"FixtureId":101,"Markets":[{"MarketId":1,"Line":"2.5"}],"CreationDate":"2024-03-01T12:00:00"}
	]}`))

	resp, err := client.Subscription().GetAllManualSuspensions(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.Succeeded)
	require.Len(t, resp.Suspensions, 1)

	suspension := resp.Suspensions[0]
	assert.Equal(t, 101, suspension.FixtureID)
	assert.Equal(t, []trade360.SuspendedMarket{{MarketID: 1, Line: "2.5"}}, suspension.Markets)
	require.NotNil(t, suspension.CreationDate)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), *suspension.CreationDate)

	req := provider.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/Markets/ManualSuspension/Get", req.Path)
}

func TestSubscriptionClient_ChangeManualSuspension(t *testing.T) {
	t.Parallel()

	client, provider := NewTestClient(t, http.StatusOK, okEnvelope(
		`{"Succeeded":true,"Suspensions":[{"FixtureId":101}]}`))

	request := &trade360.ChangeManualSuspensionRequest{
		Suspensions: []trade360.Suspension{
			{FixtureID: 101, Markets: []trade360.SuspendedMarket{{MarketID: 1}}},
			{SportID: 6046},
		},
	}

	resp, err := client.Subscription().AddManualSuspension(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, resp.Succeeded)
	assert.Nil(t, resp.Suspensions[0].CreationDate)

	req := provider.last(t)
	assert.Equal(t, "/api/Markets/ManualSuspension/Activate", req.Path)
	assert.Equal(t, []any{
		map[string]any{"FixtureId": float64(101), "Markets": []any{map[string]any{"MarketId": float64(1)}}},
		map[string]any{"SportId": float64(6046)},
	}, req.Body["Suspensions"])

	_, err = client.Subscription().RemoveManualSuspension(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "/api/Markets/ManualSuspension/Deactivate", provider.last(t).Path)

	_, err = client.Subscription().RemoveManualSuspension(context.Background(), &trade360.ChangeManualSuspensionRequest{})
	require.Error(t, err)
	assert.Equal(t, "Suspensions must be filled.", err.Error())
}
