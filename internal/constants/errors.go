package constants

import "errors"

// Configuration errors.
var (
	ErrNoBaseURL         = errors.New("no base URL configured, use 'trade360 config set base_url <url>'")
	ErrNoPackageID       = errors.New("no package id configured, use 'trade360 config set package_id <id>'")
	ErrNoUsername        = errors.New("no username configured, use 'trade360 config set username <name>'")
	ErrNoPassword        = errors.New("no password available, run 'trade360 login' or set TRADE360_PASSWORD")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrNotATerminal      = errors.New("stdin is not a terminal, pass --password-stdin")
	ErrUnsupportedOutput = errors.New("unsupported output format")
)

// Flag errors.
var (
	ErrInvalidSubscriptionState = errors.New("invalid value for --subscription-status, use all, subscribed or not_subscribed")
	ErrInvalidDate              = errors.New("invalid date, use RFC 3339 or YYYY-MM-DD")
	ErrInvalidLeagueSpec        = errors.New("invalid league, use leagueID:sportID:locationID")
	ErrInvalidCompetitionSpec   = errors.New("invalid competition, use competitionID:sportID:locationID")
	ErrInvalidSuspensionSpec    = errors.New("invalid suspension, use fixtureID or fixtureID:marketID[:line]")
	ErrQueryRequiresJSON        = errors.New("--query can only be used with json output")
)
