package client

import (
	"time"

	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// mapSlice converts each element with fn. A nil input maps to an empty,
// non-nil slice so JSON and YAML output show [] rather than null.
func mapSlice[In, Out any](in []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(in))

	for _, item := range in {
		out = append(out, fn(item))
	}

	return out
}

func toNamedSport(w wireNamed) trade360.Sport {
	return trade360.Sport{ID: w.ID, Name: w.Name}
}

func toNamedLocation(w wireNamed) trade360.Location {
	return trade360.Location{ID: w.ID, Name: w.Name}
}

func toLeague(w wireLeague) trade360.League {
	return trade360.League{
		ID:         w.ID,
		Name:       w.Name,
		Season:     w.Season,
		SportID:    w.SportID,
		LocationID: w.LocationID,
	}
}

func toMarket(w wireMarket) trade360.Market {
	return trade360.Market{
		ID:           w.ID,
		Name:         w.Name,
		IsSettleable: w.IsSettleable,
		OutcomeCount: w.NumberOfOutcomes,
	}
}

func toTranslation(w wireTranslation) trade360.Translation {
	return trade360.Translation{
		ID:   w.ID,
		Name: w.Name,
		Translations: mapSlice(w.Translations, func(v wireLocalizedValue) trade360.LocalizedValue {
			return trade360.LocalizedValue{LanguageID: v.LanguageID, Value: v.Value}
		}),
	}
}

func toCompetition(w wireCompetition) trade360.Competition {
	return trade360.Competition{
		ID:         w.ID,
		Name:       w.Name,
		Type:       w.Type,
		SportID:    w.SportID,
		LocationID: w.LocationID,
	}
}

func toParticipant(w wireParticipant) trade360.Participant {
	return trade360.Participant{
		ID:       w.ID,
		Name:     w.Name,
		Position: w.Position,
		SportID:  w.SportID,
	}
}

func toFixtureMetadata(w wireFixtureMetadata) trade360.FixtureMetadata {
	return trade360.FixtureMetadata{
		FixtureID:    w.FixtureID,
		SportID:      w.SportID,
		LocationID:   w.LocationID,
		LeagueID:     w.LeagueID,
		StartDate:    w.StartDate.Time,
		LastUpdate:   w.LastUpdate.Time,
		Status:       trade360.FixtureStatus(w.StatusID),
		Participants: mapSlice(w.Participants, toParticipant),
	}
}

func toScheduledFixture(w wireFixture) trade360.ScheduledFixture {
	return trade360.ScheduledFixture{
		FixtureID:    w.FixtureID,
		SportID:      w.SportID,
		LocationID:   w.LocationID,
		LeagueID:     w.LeagueID,
		StartDate:    w.StartDate.Time,
		Status:       trade360.FixtureStatus(w.StatusID),
		Participants: mapSlice(w.Participants, toParticipant),
	}
}

func toSubscribedFixture(w wireFixture) trade360.SubscribedFixture {
	return trade360.SubscribedFixture{
		FixtureID:  w.FixtureID,
		SportID:    w.SportID,
		LocationID: w.LocationID,
		LeagueID:   w.LeagueID,
		StartDate:  w.StartDate.Time,
		Status:     trade360.FixtureStatus(w.StatusID),
	}
}

func toFixtureSubscription(w wireFixtureSubscription) trade360.FixtureSubscription {
	return trade360.FixtureSubscription{FixtureID: w.FixtureID, Success: w.Success, Message: w.Message}
}

func toLeagueSubscription(w wireLeagueSubscription) trade360.LeagueSubscription {
	return trade360.LeagueSubscription{
		LeagueID:   w.LeagueID,
		SportID:    w.SportID,
		LocationID: w.LocationID,
		Success:    w.Success,
		Message:    w.Message,
	}
}

func toCompetitionSubscription(w wireCompetitionSubscription) trade360.CompetitionSubscription {
	return trade360.CompetitionSubscription{
		CompetitionID: w.CompetitionID,
		SportID:       w.SportID,
		LocationID:    w.LocationID,
		Success:       w.Success,
		Message:       w.Message,
	}
}

func toSuspension(w wireSuspension) trade360.Suspension {
	suspension := trade360.Suspension{
		FixtureID:     w.FixtureID,
		SportID:       w.SportID,
		LocationID:    w.LocationID,
		CompetitionID: w.CompetitionID,
		Markets: mapSlice(w.Markets, func(m wireSuspendedMarket) trade360.SuspendedMarket {
			return trade360.SuspendedMarket{MarketID: m.MarketID, Line: m.Line}
		}),
	}

	if w.CreationDate != nil && !w.CreationDate.IsZero() {
		created := w.CreationDate.Time
		suspension.CreationDate = &created
	}

	return suspension
}

func fromSuspension(s trade360.Suspension) wireSuspension {
	wire := wireSuspension{
		FixtureID:     s.FixtureID,
		SportID:       s.SportID,
		LocationID:    s.LocationID,
		CompetitionID: s.CompetitionID,
	}

	if len(s.Markets) > 0 {
		wire.Markets = mapSlice(s.Markets, func(m trade360.SuspendedMarket) wireSuspendedMarket {
			return wireSuspendedMarket{MarketID: m.MarketID, Line: m.Line}
		})
	}

	return wire
}

func toSuspensionsResponse(w wireSuspensionsBody) *trade360.ManualSuspensionsResponse {
	return &trade360.ManualSuspensionsResponse{
		Succeeded:   w.Succeeded,
		Suspensions: mapSlice(w.Suspensions, toSuspension),
	}
}

// optionalTime returns nil for the zero time so it is left out of queries.
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
