package trade360

import (
	"time"
)

// GetFixtureScheduleRequest filters the in-play fixture schedule. At least
// one filter must be set.
type GetFixtureScheduleRequest struct {
	SportIDs    []int `json:"sport_ids,omitempty"    yaml:"sport_ids,omitempty"`
	LocationIDs []int `json:"location_ids,omitempty" yaml:"location_ids,omitempty"`
	LeagueIDs   []int `json:"league_ids,omitempty"   yaml:"league_ids,omitempty"`
}

// GetFixtureScheduleResponse lists the scheduled in-play fixtures.
type GetFixtureScheduleResponse struct {
	Fixtures []ScheduledFixture `json:"fixtures" yaml:"fixtures"`
}

// FixtureSubscriptionRequest names the fixtures to subscribe or unsubscribe.
type FixtureSubscriptionRequest struct {
	Fixtures []int `json:"fixtures" yaml:"fixtures"`
}

// FixtureSubscription is the per-fixture outcome of a subscription change.
type FixtureSubscription struct {
	FixtureID int    `json:"fixture_id"        yaml:"fixture_id"`
	Success   bool   `json:"success"           yaml:"success"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

// FixtureSubscriptionResponse reports each fixture's outcome.
type FixtureSubscriptionResponse struct {
	Fixtures []FixtureSubscription `json:"fixtures" yaml:"fixtures"`
}

// LeagueSubscriptionItem identifies a league to subscribe or unsubscribe.
type LeagueSubscriptionItem struct {
	LeagueID   int `json:"league_id"   yaml:"league_id"`
	SportID    int `json:"sport_id"    yaml:"sport_id"`
	LocationID int `json:"location_id" yaml:"location_id"`
}

// LeagueSubscriptionRequest lists the leagues to subscribe or unsubscribe.
type LeagueSubscriptionRequest struct {
	Subscriptions []LeagueSubscriptionItem `json:"subscriptions" yaml:"subscriptions"`
}

// LeagueSubscription is the per-league outcome of a subscription change.
type LeagueSubscription struct {
	LeagueID   int    `json:"league_id"         yaml:"league_id"`
	SportID    int    `json:"sport_id"          yaml:"sport_id"`
	LocationID int    `json:"location_id"       yaml:"location_id"`
	Success    bool   `json:"success"           yaml:"success"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
}

// LeagueSubscriptionResponse reports each league's outcome.
type LeagueSubscriptionResponse struct {
	Subscriptions []LeagueSubscription `json:"subscriptions" yaml:"subscriptions"`
}

// CompetitionSubscriptionItem identifies an outright competition.
type CompetitionSubscriptionItem struct {
	CompetitionID int `json:"competition_id" yaml:"competition_id"`
	SportID       int `json:"sport_id"       yaml:"sport_id"`
	LocationID    int `json:"location_id"    yaml:"location_id"`
}

// CompetitionSubscriptionRequest lists the competitions to subscribe or
// unsubscribe.
type CompetitionSubscriptionRequest struct {
	Subscriptions []CompetitionSubscriptionItem `json:"subscriptions" yaml:"subscriptions"`
}

// CompetitionSubscription is the per-competition outcome of a subscription
// change.
type CompetitionSubscription struct {
	CompetitionID int    `json:"competition_id"    yaml:"competition_id"`
	SportID       int    `json:"sport_id"          yaml:"sport_id"`
	LocationID    int    `json:"location_id"       yaml:"location_id"`
	Success       bool   `json:"success"           yaml:"success"`
	Message       string `json:"message,omitempty" yaml:"message,omitempty"`
}

// CompetitionSubscriptionResponse reports each competition's outcome.
type CompetitionSubscriptionResponse struct {
	Subscriptions []CompetitionSubscription `json:"subscriptions" yaml:"subscriptions"`
}

// GetSubscriptionsRequest filters the package's subscribed fixtures.
type GetSubscriptionsRequest struct {
	FixtureIDs  []int `json:"fixture_ids,omitempty"  yaml:"fixture_ids,omitempty"`
	SportIDs    []int `json:"sport_ids,omitempty"    yaml:"sport_ids,omitempty"`
	LocationIDs []int `json:"location_ids,omitempty" yaml:"location_ids,omitempty"`
	LeagueIDs   []int `json:"league_ids,omitempty"   yaml:"league_ids,omitempty"`
}

// SubscribedFixture is a fixture the package is subscribed to.
type SubscribedFixture struct {
	FixtureID  int           `json:"fixture_id"  yaml:"fixture_id"`
	SportID    int           `json:"sport_id"    yaml:"sport_id"`
	LocationID int           `json:"location_id" yaml:"location_id"`
	LeagueID   int           `json:"league_id"   yaml:"league_id"`
	StartDate  time.Time     `json:"start_date"  yaml:"start_date"`
	Status     FixtureStatus `json:"status"      yaml:"status"`
}

// GetSubscriptionsResponse lists subscribed fixtures.
type GetSubscriptionsResponse struct {
	Fixtures []SubscribedFixture `json:"fixtures" yaml:"fixtures"`
}

// ChangeManualSuspensionRequest activates or deactivates manual suspensions.
type ChangeManualSuspensionRequest struct {
	Suspensions []Suspension `json:"suspensions" yaml:"suspensions"`
}

// ManualSuspensionsResponse lists suspensions and whether the change took
// effect. Succeeded is always true for plain listings.
type ManualSuspensionsResponse struct {
	Succeeded   bool         `json:"succeeded"   yaml:"succeeded"`
	Suspensions []Suspension `json:"suspensions" yaml:"suspensions"`
}
