package trade360

import (
	"context"
	"net/http"
	"time"
)

// MetadataClient provides access to the metadata sub-API.
type MetadataClient interface {
	GetSports(ctx context.Context) (*GetSportsResponse, error)
	GetLocations(ctx context.Context) (*GetLocationsResponse, error)
	GetLeagues(ctx context.Context, request *GetLeaguesRequest) (*GetLeaguesResponse, error)
	GetMarkets(ctx context.Context, request *GetMarketsRequest) (*GetMarketsResponse, error)
	GetTranslations(ctx context.Context, request *GetTranslationsRequest) (*GetTranslationsResponse, error)
	GetCompetitions(ctx context.Context, request *GetCompetitionsRequest) (*GetCompetitionsResponse, error)
	GetFixtureMetadata(ctx context.Context, request *GetFixtureMetadataRequest) (*GetFixtureMetadataResponse, error)
	GetParticipants(ctx context.Context, request *GetParticipantsRequest) (*GetParticipantsResponse, error)
}

// DistributionClient controls message distribution for the package.
type DistributionClient interface {
	Start(ctx context.Context) (*DistributionActionResponse, error)
	Stop(ctx context.Context) (*DistributionActionResponse, error)
	GetStatus(ctx context.Context) (*DistributionStatus, error)
}

// SubscriptionClient manages package quota, subscriptions and manual suspensions.
type SubscriptionClient interface {
	GetPackageQuota(ctx context.Context) (*PackageQuota, error)
	GetInplayFixtureSchedule(ctx context.Context, request *GetFixtureScheduleRequest) (*GetFixtureScheduleResponse, error)
	SubscribeByFixtures(ctx context.Context, request *FixtureSubscriptionRequest) (*FixtureSubscriptionResponse, error)
	UnsubscribeByFixtures(ctx context.Context, request *FixtureSubscriptionRequest) (*FixtureSubscriptionResponse, error)
	SubscribeByLeagues(ctx context.Context, request *LeagueSubscriptionRequest) (*LeagueSubscriptionResponse, error)
	UnsubscribeByLeagues(ctx context.Context, request *LeagueSubscriptionRequest) (*LeagueSubscriptionResponse, error)
	GetSubscriptions(ctx context.Context, request *GetSubscriptionsRequest) (*GetSubscriptionsResponse, error)
	SubscribeByCompetitions(ctx context.Context, request *CompetitionSubscriptionRequest) (*CompetitionSubscriptionResponse, error)
	UnsubscribeByCompetitions(ctx context.Context, request *CompetitionSubscriptionRequest) (*CompetitionSubscriptionResponse, error)
	GetAllManualSuspensions(ctx context.Context) (*ManualSuspensionsResponse, error)
	AddManualSuspension(ctx context.Context, request *ChangeManualSuspensionRequest) (*ManualSuspensionsResponse, error)
	RemoveManualSuspension(ctx context.Context, request *ChangeManualSuspensionRequest) (*ManualSuspensionsResponse, error)
}

// Client groups the Trade360 sub-API clients. All sub-clients share one
// transport and one set of credentials.
type Client interface {
	Metadata() MetadataClient
	Distribution() DistributionClient
	Subscription() SubscriptionClient

	// Close releases the transport. Calls made after Close fail with
	// ErrClientClosed.
	Close() error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// BaseURL and the credential fields are required; trade360client.New
// rejects a Config that misses any of them before any request is made.
//
// Per-request timeouts should be controlled via the context passed to client
// methods. The SDK never retries: every call is a single attempt.
type Config struct {
	// BaseURL: provider base URL (e.g., "https://stm-api.lsports.eu/").
	BaseURL string `validate:"required,url"`

	// PackageID, Username and Password identify the package. They are sent
	// with every request.
	PackageID int    `validate:"required"`
	Username  string `validate:"required"`
	Password  string `validate:"required"`

	// MessageFormat: defaults to DefaultMessageFormat.
	MessageFormat string `validate:"omitempty,oneof=json xml"`

	// Optional configurations
	// HTTPTimeout: overall timeout of the underlying http.Client. Zero uses
	// the SDK default. Ignored when HTTPClient is set.
	HTTPTimeout time.Duration
	// HTTPClient: optional shared http.Client used as the transport.
	HTTPClient *http.Client `validate:"-"`
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the transport and dispatcher.
	Logger Logger `validate:"-"`
	// Interceptors: optional request/response hooks run around every call.
	Interceptors *InterceptorChain `validate:"-"`
}

// Credentials returns the credentials described by the config.
func (c *Config) Credentials() *Credentials {
	return &Credentials{
		PackageID:     c.PackageID,
		Username:      c.Username,
		Password:      c.Password,
		MessageFormat: c.MessageFormat,
	}
}
