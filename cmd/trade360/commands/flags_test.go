package commands

import (
	"testing"
	"time"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: ""},
		{input: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{input: "2024-03-01T10:30:00Z", want: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{input: "2024-03-01T10:30:00+02:00", want: time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)},
		{input: "01/03/2024", wantErr: true},
		{input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseDate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidDate)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseSubscriptionState(t *testing.T) {
	t.Parallel()

	state, err := parseSubscriptionState("Subscribed")
	require.NoError(t, err)
	assert.Equal(t, trade360.SubscriptionStateSubscribed, state)

	state, err = parseSubscriptionState("")
	require.NoError(t, err)
	assert.Equal(t, trade360.SubscriptionStateAll, state)

	_, err = parseSubscriptionState("maybe")
	require.ErrorIs(t, err, constants.ErrInvalidSubscriptionState)
}

func TestParseIDs(t *testing.T) {
	t.Parallel()

	ids, err := parseIDs([]string{"1", " 22 ", "333"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 22, 333}, ids)

	_, err = parseIDs([]string{"1", "abc"})
	require.Error(t, err)

	_, err = parseIDs([]string{"-4"})
	require.Error(t, err)
}

func TestParseLeagueSpecs(t *testing.T) {
	t.Parallel()

	items, err := parseLeagueSpecs([]string{"100:6046:243", "200:154914:142"})
	require.NoError(t, err)
	assert.Equal(t, []trade360.LeagueSubscriptionItem{
		{LeagueID: 100, SportID: 6046, LocationID: 243},
		{LeagueID: 200, SportID: 154914, LocationID: 142},
	}, items)

	for _, spec := range []string{"100", "100:6046", "a:b:c", "1:2:3:4"} {
		_, err := parseLeagueSpecs([]string{spec})
		require.ErrorIs(t, err, constants.ErrInvalidLeagueSpec, spec)
	}
}

func TestParseCompetitionSpecs(t *testing.T) {
	t.Parallel()

	items, err := parseCompetitionSpecs([]string{"7:6046:243"})
	require.NoError(t, err)
	assert.Equal(t, []trade360.CompetitionSubscriptionItem{{CompetitionID: 7, SportID: 6046, LocationID: 243}}, items)

	_, err = parseCompetitionSpecs([]string{"7:6046"})
	require.ErrorIs(t, err, constants.ErrInvalidCompetitionSpec)
}

func TestParseSuspensionSpecs(t *testing.T) {
	t.Parallel()

	suspensions, err := parseSuspensionSpecs([]string{"11", "12:1", "12:2:-1.5", "13:3"})
	require.NoError(t, err)
	assert.Equal(t, []trade360.Suspension{
		{FixtureID: 11},
		{FixtureID: 12, Markets: []trade360.SuspendedMarket{{MarketID: 1}, {MarketID: 2, Line: "-1.5"}}},
		{FixtureID: 13, Markets: []trade360.SuspendedMarket{{MarketID: 3}}},
	}, suspensions)

	for _, spec := range []string{"", "x", "11:y", "0", "11:0"} {
		_, err := parseSuspensionSpecs([]string{spec})
		require.ErrorIs(t, err, constants.ErrInvalidSuspensionSpec, spec)
	}
}
