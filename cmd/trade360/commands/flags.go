package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/spf13/cast"
)

const dateOnlyLayout = "2006-01-02"

// parseDate accepts RFC 3339 or YYYY-MM-DD. Empty input is the zero time.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", constants.ErrInvalidDate, value)
}

func parseSubscriptionState(value string) (trade360.SubscriptionState, error) {
	state, ok := trade360.ParseSubscriptionState(strings.ToLower(strings.TrimSpace(value)))
	if !ok {
		return trade360.SubscriptionStateAll, fmt.Errorf("%w: %q", constants.ErrInvalidSubscriptionState, value)
	}

	return state, nil
}

// parseIDs converts positional arguments to ids.
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))

	for _, arg := range args {
		id, err := cast.ToIntE(strings.TrimSpace(arg))
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q: must be a positive integer", arg)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// parseTriple splits "a:b:c" into three positive ids.
func parseTriple(spec string, errInvalid error) (int, int, int, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", errInvalid, spec)
	}

	ids, err := parseIDs(parts)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", errInvalid, spec)
	}

	return ids[0], ids[1], ids[2], nil
}

func parseLeagueSpecs(specs []string) ([]trade360.LeagueSubscriptionItem, error) {
	items := make([]trade360.LeagueSubscriptionItem, 0, len(specs))

	for _, spec := range specs {
		leagueID, sportID, locationID, err := parseTriple(spec, constants.ErrInvalidLeagueSpec)
		if err != nil {
			return nil, err
		}

		items = append(items, trade360.LeagueSubscriptionItem{
			LeagueID:   leagueID,
			SportID:    sportID,
			LocationID: locationID,
		})
	}

	return items, nil
}

func parseCompetitionSpecs(specs []string) ([]trade360.CompetitionSubscriptionItem, error) {
	items := make([]trade360.CompetitionSubscriptionItem, 0, len(specs))

	for _, spec := range specs {
		competitionID, sportID, locationID, err := parseTriple(spec, constants.ErrInvalidCompetitionSpec)
		if err != nil {
			return nil, err
		}

		items = append(items, trade360.CompetitionSubscriptionItem{
			CompetitionID: competitionID,
			SportID:       sportID,
			LocationID:    locationID,
		})
	}

	return items, nil
}

// parseSuspensionSpecs reads "fixtureID" or "fixtureID:marketID[:line]".
// Specs naming the same fixture are merged into one suspension, in the
// order the fixture first appears.
func parseSuspensionSpecs(specs []string) ([]trade360.Suspension, error) {
	suspensions := make([]trade360.Suspension, 0, len(specs))
	index := make(map[int]int)

	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)

		fixtureID, err := cast.ToIntE(parts[0])
		if err != nil || fixtureID <= 0 {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidSuspensionSpec, spec)
		}

		i, seen := index[fixtureID]
		if !seen {
			i = len(suspensions)
			index[fixtureID] = i

			suspensions = append(suspensions, trade360.Suspension{FixtureID: fixtureID})
		}

		if len(parts) == 1 {
			continue
		}

		marketID, err := cast.ToIntE(parts[1])
		if err != nil || marketID <= 0 {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidSuspensionSpec, spec)
		}

		market := trade360.SuspendedMarket{MarketID: marketID}
		if len(parts) == 3 {
			market.Line = parts[2]
		}

		suspensions[i].Markets = append(suspensions[i].Markets, market)
	}

	return suspensions, nil
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return constants.NotAvailable
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = itoa(v)
	}

	return strings.Join(parts, ",")
}
