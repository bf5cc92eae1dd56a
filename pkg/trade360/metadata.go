package trade360

import (
	"time"
)

// GetSportsResponse lists all sports.
type GetSportsResponse struct {
	Sports []Sport `json:"sports" yaml:"sports"`
}

// GetLocationsResponse lists all locations.
type GetLocationsResponse struct {
	Locations []Location `json:"locations" yaml:"locations"`
}

// GetLeaguesRequest filters leagues. Empty filters match everything.
type GetLeaguesRequest struct {
	SportIDs           []int             `json:"sport_ids,omitempty"           yaml:"sport_ids,omitempty"`
	LocationIDs        []int             `json:"location_ids,omitempty"        yaml:"location_ids,omitempty"`
	SubscriptionStatus SubscriptionState `json:"subscription_status,omitempty" yaml:"subscription_status,omitempty"`
	LanguageID         *int              `json:"language_id,omitempty"         yaml:"language_id,omitempty"`
}

// GetLeaguesResponse lists the matching leagues.
type GetLeaguesResponse struct {
	Leagues []League `json:"leagues" yaml:"leagues"`
}

// GetMarketsRequest filters markets.
type GetMarketsRequest struct {
	MarketIDs    []int `json:"market_ids,omitempty"    yaml:"market_ids,omitempty"`
	SportIDs     []int `json:"sport_ids,omitempty"     yaml:"sport_ids,omitempty"`
	IsSettleable *bool `json:"is_settleable,omitempty" yaml:"is_settleable,omitempty"`
	LanguageID   *int  `json:"language_id,omitempty"   yaml:"language_id,omitempty"`
}

// GetMarketsResponse lists the matching markets.
type GetMarketsResponse struct {
	Markets []Market `json:"markets" yaml:"markets"`
}

// GetTranslationsRequest asks for entity names in the given languages.
// Languages is required, and at least one id filter must be set.
type GetTranslationsRequest struct {
	Languages      []string `json:"languages"                 yaml:"languages"`
	SportIDs       []int    `json:"sport_ids,omitempty"       yaml:"sport_ids,omitempty"`
	LocationIDs    []int    `json:"location_ids,omitempty"    yaml:"location_ids,omitempty"`
	LeagueIDs      []int    `json:"league_ids,omitempty"      yaml:"league_ids,omitempty"`
	MarketIDs      []int    `json:"market_ids,omitempty"      yaml:"market_ids,omitempty"`
	ParticipantIDs []int    `json:"participant_ids,omitempty" yaml:"participant_ids,omitempty"`
}

// GetTranslationsResponse holds translations per entity kind.
type GetTranslationsResponse struct {
	Sports       []Translation `json:"sports,omitempty"       yaml:"sports,omitempty"`
	Locations    []Translation `json:"locations,omitempty"    yaml:"locations,omitempty"`
	Leagues      []Translation `json:"leagues,omitempty"      yaml:"leagues,omitempty"`
	Markets      []Translation `json:"markets,omitempty"      yaml:"markets,omitempty"`
	Participants []Translation `json:"participants,omitempty" yaml:"participants,omitempty"`
}

// GetCompetitionsRequest filters outright competitions.
type GetCompetitionsRequest struct {
	IDs                []int             `json:"ids,omitempty"                 yaml:"ids,omitempty"`
	SportIDs           []int             `json:"sport_ids,omitempty"           yaml:"sport_ids,omitempty"`
	LocationIDs        []int             `json:"location_ids,omitempty"        yaml:"location_ids,omitempty"`
	SubscriptionStatus SubscriptionState `json:"subscription_status,omitempty" yaml:"subscription_status,omitempty"`
}

// GetCompetitionsResponse lists the matching competitions.
type GetCompetitionsResponse struct {
	Competitions []Competition `json:"competitions" yaml:"competitions"`
}

// GetFixtureMetadataRequest selects subscribed fixtures starting in a window.
type GetFixtureMetadataRequest struct {
	FromDate time.Time `json:"from_date" yaml:"from_date"`
	ToDate   time.Time `json:"to_date"   yaml:"to_date"`
}

// GetFixtureMetadataResponse lists subscribed fixtures.
type GetFixtureMetadataResponse struct {
	SubscribedFixtures []FixtureMetadata `json:"subscribed_fixtures" yaml:"subscribed_fixtures"`
}

// GetParticipantsRequest filters participants. Page is 1-based; zero
// lets the provider choose.
type GetParticipantsRequest struct {
	IDs         []int  `json:"ids,omitempty"          yaml:"ids,omitempty"`
	SportIDs    []int  `json:"sport_ids,omitempty"    yaml:"sport_ids,omitempty"`
	LocationIDs []int  `json:"location_ids,omitempty" yaml:"location_ids,omitempty"`
	Name        string `json:"name,omitempty"         yaml:"name,omitempty"`
	Page        int    `json:"page,omitempty"         yaml:"page,omitempty"`
	PageSize    int    `json:"page_size,omitempty"    yaml:"page_size,omitempty"`
}

// GetParticipantsResponse lists the matching participants.
type GetParticipantsResponse struct {
	Participants []Participant `json:"participants" yaml:"participants"`
	TotalItems   int           `json:"total_items"  yaml:"total_items"`
}
