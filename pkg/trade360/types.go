package trade360

import (
	"time"
)

// SubscriptionState filters metadata by the package's subscription to it.
type SubscriptionState int

const (
	SubscriptionStateAll           SubscriptionState = 0
	SubscriptionStateSubscribed    SubscriptionState = 1
	SubscriptionStateNotSubscribed SubscriptionState = 2
)

// String returns the state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateAll:
		return "all"
	case SubscriptionStateSubscribed:
		return "subscribed"
	case SubscriptionStateNotSubscribed:
		return "not_subscribed"
	default:
		return "unknown"
	}
}

// ParseSubscriptionState converts a state name back to its value.
func ParseSubscriptionState(name string) (SubscriptionState, bool) {
	switch name {
	case "", "all":
		return SubscriptionStateAll, true
	case "subscribed":
		return SubscriptionStateSubscribed, true
	case "not_subscribed":
		return SubscriptionStateNotSubscribed, true
	default:
		return SubscriptionStateAll, false
	}
}

// FixtureStatus is the provider's fixture lifecycle status.
type FixtureStatus int

const (
	FixtureStatusNotSet       FixtureStatus = 0
	FixtureStatusNotStarted   FixtureStatus = 1
	FixtureStatusInProgress   FixtureStatus = 2
	FixtureStatusFinished     FixtureStatus = 3
	FixtureStatusCancelled    FixtureStatus = 4
	FixtureStatusPostponed    FixtureStatus = 5
	FixtureStatusInterrupted  FixtureStatus = 6
	FixtureStatusAbandoned    FixtureStatus = 7
	FixtureStatusLostCoverage FixtureStatus = 8
	FixtureStatusAboutToStart FixtureStatus = 9
)

// String returns the status name.
func (s FixtureStatus) String() string {
	switch s {
	case FixtureStatusNotStarted:
		return "not_started"
	case FixtureStatusInProgress:
		return "in_progress"
	case FixtureStatusFinished:
		return "finished"
	case FixtureStatusCancelled:
		return "cancelled"
	case FixtureStatusPostponed:
		return "postponed"
	case FixtureStatusInterrupted:
		return "interrupted"
	case FixtureStatusAbandoned:
		return "abandoned"
	case FixtureStatusLostCoverage:
		return "lost_coverage"
	case FixtureStatusAboutToStart:
		return "about_to_start"
	default:
		return "not_set"
	}
}

// Sport represents a sport.
type Sport struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Location represents a country or region.
type Location struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// League represents a league within a sport and location.
type League struct {
	ID         int    `json:"id"          yaml:"id"`
	Name       string `json:"name"        yaml:"name"`
	Season     string `json:"season"      yaml:"season"`
	SportID    int    `json:"sport_id"    yaml:"sport_id"`
	LocationID int    `json:"location_id" yaml:"location_id"`
}

// Market represents a betting market.
type Market struct {
	ID           int    `json:"id"            yaml:"id"`
	Name         string `json:"name"          yaml:"name"`
	IsSettleable bool   `json:"is_settleable" yaml:"is_settleable"`
	OutcomeCount int    `json:"outcome_count" yaml:"outcome_count"`
}

// LocalizedValue is a name in one language.
type LocalizedValue struct {
	LanguageID int    `json:"language_id" yaml:"language_id"`
	Value      string `json:"value"       yaml:"value"`
}

// Translation holds the localized names of one entity.
type Translation struct {
	ID           int              `json:"id"           yaml:"id"`
	Name         string           `json:"name"         yaml:"name"`
	Translations []LocalizedValue `json:"translations" yaml:"translations"`
}

// Competition represents an outright competition.
type Competition struct {
	ID         int    `json:"id"          yaml:"id"`
	Name       string `json:"name"        yaml:"name"`
	Type       int    `json:"type"        yaml:"type"`
	SportID    int    `json:"sport_id"    yaml:"sport_id"`
	LocationID int    `json:"location_id" yaml:"location_id"`
}

// Participant represents a team or player.
type Participant struct {
	ID       int    `json:"id"                 yaml:"id"`
	Name     string `json:"name"               yaml:"name"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
	SportID  int    `json:"sport_id,omitempty" yaml:"sport_id,omitempty"`
}

// FixtureMetadata describes a subscribed fixture.
type FixtureMetadata struct {
	FixtureID    int           `json:"fixture_id"   yaml:"fixture_id"`
	SportID      int           `json:"sport_id"     yaml:"sport_id"`
	LocationID   int           `json:"location_id"  yaml:"location_id"`
	LeagueID     int           `json:"league_id"    yaml:"league_id"`
	StartDate    time.Time     `json:"start_date"   yaml:"start_date"`
	LastUpdate   time.Time     `json:"last_update"  yaml:"last_update"`
	Status       FixtureStatus `json:"status"       yaml:"status"`
	Participants []Participant `json:"participants" yaml:"participants"`
}

// ScheduledFixture is an in-play fixture offered to the package.
type ScheduledFixture struct {
	FixtureID    int           `json:"fixture_id"   yaml:"fixture_id"`
	SportID      int           `json:"sport_id"     yaml:"sport_id"`
	LocationID   int           `json:"location_id"  yaml:"location_id"`
	LeagueID     int           `json:"league_id"    yaml:"league_id"`
	StartDate    time.Time     `json:"start_date"   yaml:"start_date"`
	Status       FixtureStatus `json:"status"       yaml:"status"`
	Participants []Participant `json:"participants" yaml:"participants"`
}

// PackageQuota reports credit usage for the current billing period.
type PackageQuota struct {
	CreditRemaining        int       `json:"credit_remaining"          yaml:"credit_remaining"`
	CreditLimit            int       `json:"credit_limit"              yaml:"credit_limit"`
	UsedCredit             int       `json:"used_credit"               yaml:"used_credit"`
	UsedPercentage         float64   `json:"used_percentage"           yaml:"used_percentage"`
	CurrentPeriodStartDate time.Time `json:"current_period_start_date" yaml:"current_period_start_date"`
	CurrentPeriodEndDate   time.Time `json:"current_period_end_date"   yaml:"current_period_end_date"`
}

// DistributionStatus reports whether messages are being distributed.
type DistributionStatus struct {
	IsDistributionOn      bool     `json:"is_distribution_on"       yaml:"is_distribution_on"`
	Consumers             []string `json:"consumers"                yaml:"consumers"`
	NumberMessagesInQueue int      `json:"number_messages_in_queue" yaml:"number_messages_in_queue"`
	MessagesPerSecond     float64  `json:"messages_per_second"      yaml:"messages_per_second"`
}

// SuspendedMarket identifies a market, optionally a single line, to suspend.
type SuspendedMarket struct {
	MarketID int    `json:"market_id"      yaml:"market_id"`
	Line     string `json:"line,omitempty" yaml:"line,omitempty"`
}

// Suspension is a manual market suspension.
type Suspension struct {
	FixtureID     int               `json:"fixture_id,omitempty"     yaml:"fixture_id,omitempty"`
	SportID       int               `json:"sport_id,omitempty"       yaml:"sport_id,omitempty"`
	LocationID    int               `json:"location_id,omitempty"    yaml:"location_id,omitempty"`
	CompetitionID int               `json:"competition_id,omitempty" yaml:"competition_id,omitempty"`
	Markets       []SuspendedMarket `json:"markets,omitempty"        yaml:"markets,omitempty"`
	CreationDate  *time.Time        `json:"creation_date,omitempty"  yaml:"creation_date,omitempty"`
}
