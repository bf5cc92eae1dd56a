package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout bounds the credential check run by login.
	ShortHTTPTimeout = 10 * time.Second
)

// HTTP headers.
const (
	// DefaultUserAgent is sent when the caller does not set one.
	DefaultUserAgent = "trade360-go-sdk/1.0.0"

	// HeaderCorrelationID carries a client-generated id for each call.
	HeaderCorrelationID = "X-Correlation-Id"

	// ContentTypeJSON is the content type of every request body.
	ContentTypeJSON = "application/json"
)

// Customer API endpoints, relative to the base URL.
const (
	EndpointSports                = "Sports/Get"
	EndpointLocations             = "Locations/Get"
	EndpointLeagues               = "Leagues/Get"
	EndpointMarkets               = "Markets/Get"
	EndpointTranslations          = "Translation/Get"
	EndpointCompetitions          = "Outright/GetCompetitions"
	EndpointFixtureMetadata       = "Fixtures/GetSubscribedMetaData"
	EndpointParticipants          = "Participants/Get"
	EndpointDistributionStart     = "Distribution/Start"
	EndpointDistributionStop      = "Distribution/Stop"
	EndpointDistributionStatus    = "Distribution/Get"
	EndpointPackageQuota          = "Package/GetPackageQuota"
	EndpointInplaySchedule        = "Fixtures/InPlaySchedule"
	EndpointFixturesSubscribe     = "Fixtures/Subscribe"
	EndpointFixturesUnsubscribe   = "Fixtures/UnSubscribe"
	EndpointLeaguesSubscribe      = "Leagues/Subscribe"
	EndpointLeaguesUnsubscribe    = "Leagues/UnSubscribe"
	EndpointSubscribedFixtures    = "Fixtures/GetSubscribed"
	EndpointOutrightSubscribe     = "Outright/Subscribe"
	EndpointOutrightUnsubscribe   = "Outright/UnSubscribe"
	EndpointSuspensions           = "Markets/ManualSuspension/Get"
	EndpointSuspensionsActivate   = "Markets/ManualSuspension/Activate"
	EndpointSuspensionsDeactivate = "Markets/ManualSuspension/Deactivate"
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent calls made by the CLI.
	DefaultConcurrencyLimit = 3
)

// Display constants.
const (
	// NotAvailable is shown for empty table cells.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in output.
	MaskedSecret = "***"

	// DateTimeFormat is used for dates in tables.
	DateTimeFormat = "2006-01-02 15:04"

	// FuzzyResultLimit caps fuzzy search results.
	FuzzyResultLimit = 20
)

// Format constants.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Keyring.
const (
	// KeyringService is the service name used for stored passwords.
	KeyringService = "trade360"
)
