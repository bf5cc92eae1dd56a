package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Wire types mirror the provider's JSON field names. They never leave this
// package; mapping.go converts them to and from the trade360 types.

// timestamp accepts RFC 3339 and the provider's zone-less layout, which is
// read as UTC.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}

	if raw == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed

			return nil
		}
	}

	return fmt.Errorf("timestamp: unrecognized format %q", raw)
}

func (t timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Format(time.RFC3339))
}

type wireNamed struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

type wireSportsBody struct {
	Sports []wireNamed `json:"Sports"`
}

type wireLocationsBody struct {
	Locations []wireNamed `json:"Locations"`
}

type wireLeaguesRequest struct {
	SportIDs           []int `json:"SportIds,omitempty"`
	LocationIDs        []int `json:"LocationIds,omitempty"`
	SubscriptionStatus int   `json:"SubscriptionStatus"`
	LanguageID         *int  `json:"LanguageId,omitempty"`
}

type wireLeague struct {
	ID         int    `json:"Id"`
	Name       string `json:"Name"`
	Season     string `json:"Season"`
	SportID    int    `json:"SportId"`
	LocationID int    `json:"LocationId"`
}

type wireLeaguesBody struct {
	Leagues []wireLeague `json:"Leagues"`
}

type wireMarketsRequest struct {
	MarketIDs    []int `json:"MarketIds,omitempty"`
	SportIDs     []int `json:"SportIds,omitempty"`
	IsSettleable *bool `json:"IsSettleable,omitempty"`
	LanguageID   *int  `json:"LanguageId,omitempty"`
}

type wireMarket struct {
	ID               int    `json:"Id"`
	Name             string `json:"Name"`
	IsSettleable     bool   `json:"IsSettleable"`
	NumberOfOutcomes int    `json:"NumberOfOutcomes"`
}

type wireMarketsBody struct {
	Markets []wireMarket `json:"Markets"`
}

type wireTranslationsRequest struct {
	Languages      []string `json:"Languages"`
	SportIDs       []int    `json:"SportIds,omitempty"`
	LocationIDs    []int    `json:"LocationIds,omitempty"`
	LeagueIDs      []int    `json:"LeagueIds,omitempty"`
	MarketIDs      []int    `json:"MarketIds,omitempty"`
	ParticipantIDs []int    `json:"ParticipantIds,omitempty"`
}

type wireLocalizedValue struct {
	LanguageID int    `json:"LanguageId"`
	Value      string `json:"Value"`
}

type wireTranslation struct {
	ID           int                  `json:"Id"`
	Name         string               `json:"Name"`
	Translations []wireLocalizedValue `json:"Translations"`
}

type wireTranslationsBody struct {
	Sports       []wireTranslation `json:"Sports"`
	Locations    []wireTranslation `json:"Locations"`
	Leagues      []wireTranslation `json:"Leagues"`
	Markets      []wireTranslation `json:"Markets"`
	Participants []wireTranslation `json:"Participants"`
}

type wireCompetitionsRequest struct {
	IDs                []int `json:"Ids,omitempty"`
	SportIDs           []int `json:"SportIds,omitempty"`
	LocationIDs        []int `json:"LocationIds,omitempty"`
	SubscriptionStatus int   `json:"SubscriptionStatus"`
}

type wireCompetition struct {
	ID         int    `json:"Id"`
	Name       string `json:"Name"`
	Type       int    `json:"Type"`
	SportID    int    `json:"SportId"`
	LocationID int    `json:"LocationId"`
}

type wireCompetitionsBody struct {
	Competitions []wireCompetition `json:"Competitions"`
}

// wireFixtureMetadataQuery is sent as query parameters.
type wireFixtureMetadataQuery struct {
	FromDate *time.Time `query:"FromDate"`
	ToDate   *time.Time `query:"ToDate"`
}

type wireParticipant struct {
	ID       int    `json:"Id"`
	Name     string `json:"Name"`
	Position string `json:"Position"`
	SportID  int    `json:"SportId"`
}

type wireFixtureMetadata struct {
	FixtureID    int               `json:"FixtureId"`
	SportID      int               `json:"SportId"`
	LocationID   int               `json:"LocationId"`
	LeagueID     int               `json:"LeagueId"`
	StartDate    timestamp         `json:"StartDate"`
	LastUpdate   timestamp         `json:"LastUpdate"`
	StatusID     int               `json:"StatusId"`
	Participants []wireParticipant `json:"Participants"`
}

type wireFixtureMetadataBody struct {
	SubscribedFixtures []wireFixtureMetadata `json:"SubscribedFixtures"`
}

type wireParticipantsRequest struct {
	IDs         []int  `json:"Ids,omitempty"`
	SportIDs    []int  `json:"SportIds,omitempty"`
	LocationIDs []int  `json:"LocationIds,omitempty"`
	Name        string `json:"Name,omitempty"`
	Page        int    `json:"Page,omitempty"`
	PageSize    int    `json:"PageSize,omitempty"`
}

type wireParticipantsBody struct {
	Data       []wireParticipant `json:"Data"`
	TotalItems int               `json:"TotalItems"`
}

type wireMessageBody struct {
	Message string `json:"Message"`
}

type wireDistributionStatusBody struct {
	IsDistributionOn      bool     `json:"IsDistributionOn"`
	Consumers             []string `json:"Consumers"`
	NumberMessagesInQueue int      `json:"NumberMessagesInQueue"`
	MessagesPerSecond     float64  `json:"MessagesPerSecond"`
}

type wirePackageQuotaBody struct {
	CreditRemaining        int       `json:"CreditRemaining"`
	CreditLimit            int       `json:"CreditLimit"`
	UsedCredit             int       `json:"UsedCredit"`
	UsedPercentage         float64   `json:"UsedPercentage"`
	CurrentPeriodStartDate timestamp `json:"CurrentPeriodStartDate"`
	CurrentPeriodEndDate   timestamp `json:"CurrentPeriodEndDate"`
}

type wireFixtureFilter struct {
	FixtureIDs  []int `json:"FixtureIds,omitempty"`
	SportIDs    []int `json:"SportIds,omitempty"`
	LocationIDs []int `json:"LocationIds,omitempty"`
	LeagueIDs   []int `json:"LeagueIds,omitempty"`
}

type wireFixture struct {
	FixtureID    int               `json:"FixtureId"`
	SportID      int               `json:"SportId"`
	LocationID   int               `json:"LocationId"`
	LeagueID     int               `json:"LeagueId"`
	StartDate    timestamp         `json:"StartDate"`
	StatusID     int               `json:"StatusId"`
	Participants []wireParticipant `json:"Participants"`
}

type wireFixturesBody struct {
	Fixtures []wireFixture `json:"Fixtures"`
}

type wireFixtureSubscriptionRequest struct {
	Fixtures []int `json:"Fixtures"`
}

type wireFixtureSubscription struct {
	FixtureID int    `json:"FixtureId"`
	Success   bool   `json:"Success"`
	Message   string `json:"Message"`
}

type wireFixtureSubscriptionBody struct {
	Fixtures []wireFixtureSubscription `json:"Fixtures"`
}

type wireLeagueSubscriptionItem struct {
	LeagueID   int `json:"LeagueId"`
	SportID    int `json:"SportId"`
	LocationID int `json:"LocationId"`
}

type wireLeagueSubscriptionRequest struct {
	Subscriptions []wireLeagueSubscriptionItem `json:"Subscriptions"`
}

type wireLeagueSubscription struct {
	LeagueID   int    `json:"LeagueId"`
	SportID    int    `json:"SportId"`
	LocationID int    `json:"LocationId"`
	Success    bool   `json:"Success"`
	Message    string `json:"Message"`
}

type wireLeagueSubscriptionBody struct {
	Subscription []wireLeagueSubscription `json:"Subscription"`
}

type wireCompetitionSubscriptionItem struct {
	CompetitionID int `json:"CompetitionId"`
	SportID       int `json:"SportId"`
	LocationID    int `json:"LocationId"`
}

type wireCompetitionSubscriptionRequest struct {
	Subscriptions []wireCompetitionSubscriptionItem `json:"Subscriptions"`
}

type wireCompetitionSubscription struct {
	CompetitionID int    `json:"CompetitionId"`
	SportID       int    `json:"SportId"`
	LocationID    int    `json:"LocationId"`
	Success       bool   `json:"Success"`
	Message       string `json:"Message"`
}

type wireCompetitionSubscriptionBody struct {
	Subscription []wireCompetitionSubscription `json:"Subscription"`
}

type wireSuspendedMarket struct {
	MarketID int    `json:"MarketId"`
	Line     string `json:"Line,omitempty"`
}

type wireSuspension struct {
	FixtureID     int                   `json:"FixtureId,omitempty"`
	SportID       int                   `json:"SportId,omitempty"`
	LocationID    int                   `json:"LocationId,omitempty"`
	CompetitionID int                   `json:"CompetitionId,omitempty"`
	Markets       []wireSuspendedMarket `json:"Markets,omitempty"`
	CreationDate  *timestamp            `json:"CreationDate,omitempty"`
}

type wireSuspensionRequest struct {
	Suspensions []wireSuspension `json:"Suspensions"`
}

type wireSuspensionsBody struct {
	Succeeded   bool             `json:"Succeeded"`
	Suspensions []wireSuspension `json:"Suspensions"`
}
