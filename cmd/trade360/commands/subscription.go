package commands

import (
	"context"
	"fmt"

	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/spf13/cobra"
)

// NewSubscriptionCommand creates the subscription command group
func NewSubscriptionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"sub"},
		Short:   "Manage package quota, subscriptions and suspensions",
		Long:    "Manage the package quota, fixture, league and competition subscriptions, and manual suspensions",
	}

	cmd.AddCommand(newQuotaCommand())
	cmd.AddCommand(newScheduleCommand())
	cmd.AddCommand(newSubscribedCommand())
	cmd.AddCommand(newFixtureSubscriptionCommand("subscribe-fixtures", "Subscribe to fixtures",
		trade360.SubscriptionClient.SubscribeByFixtures))
	cmd.AddCommand(newFixtureSubscriptionCommand("unsubscribe-fixtures", "Unsubscribe from fixtures",
		trade360.SubscriptionClient.UnsubscribeByFixtures))
	cmd.AddCommand(newLeagueSubscriptionCommand("subscribe-leagues", "Subscribe to leagues",
		trade360.SubscriptionClient.SubscribeByLeagues))
	cmd.AddCommand(newLeagueSubscriptionCommand("unsubscribe-leagues", "Unsubscribe from leagues",
		trade360.SubscriptionClient.UnsubscribeByLeagues))
	cmd.AddCommand(newCompetitionSubscriptionCommand("subscribe-competitions", "Subscribe to outright competitions",
		trade360.SubscriptionClient.SubscribeByCompetitions))
	cmd.AddCommand(newCompetitionSubscriptionCommand("unsubscribe-competitions", "Unsubscribe from outright competitions",
		trade360.SubscriptionClient.UnsubscribeByCompetitions))
	cmd.AddCommand(newSuspensionsCommand())

	return cmd
}

func newQuotaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show package credit usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				quota, err := client.Subscription().GetPackageQuota(ctx)
				if err != nil {
					return err
				}

				view := newTableView("Property", "Value")
				view.add("Credit Limit", itoa(quota.CreditLimit))
				view.add("Used Credit", itoa(quota.UsedCredit))
				view.add("Credit Remaining", itoa(quota.CreditRemaining))
				view.add("Used", fmt.Sprintf("%.2f%%", quota.UsedPercentage))
				view.add("Period Start", formatTime(quota.CurrentPeriodStartDate))
				view.add("Period End", formatTime(quota.CurrentPeriodEndDate))

				return renderOutput(cmd.OutOrStdout(), quota, view)
			})
		},
	}
}

func newScheduleCommand() *cobra.Command {
	request := &trade360.GetFixtureScheduleRequest{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List the in-play fixture schedule",
		Long:  "List in-play fixtures offered to the package. At least one of --sport-ids, --location-ids or --league-ids is required.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Subscription().GetInplayFixtureSchedule(ctx, request)
				if err != nil {
					return err
				}

				view := newTableView("Fixture", "Sport", "Location", "League", "Start", "Status", "Participants")
				for _, fixture := range resp.Fixtures {
					view.add(itoa(fixture.FixtureID), itoa(fixture.SportID), itoa(fixture.LocationID),
						itoa(fixture.LeagueID), formatTime(fixture.StartDate), fixture.Status.String(),
						participantNames(fixture.Participants))
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().IntSliceVar(&request.SportIDs, "sport-ids", nil, "filter by sport ids")
	cmd.Flags().IntSliceVar(&request.LocationIDs, "location-ids", nil, "filter by location ids")
	cmd.Flags().IntSliceVar(&request.LeagueIDs, "league-ids", nil, "filter by league ids")

	return cmd
}

func newSubscribedCommand() *cobra.Command {
	request := &trade360.GetSubscriptionsRequest{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscribed fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Subscription().GetSubscriptions(ctx, request)
				if err != nil {
					return err
				}

				view := newTableView("Fixture", "Sport", "Location", "League", "Start", "Status")
				for _, fixture := range resp.Fixtures {
					view.add(itoa(fixture.FixtureID), itoa(fixture.SportID), itoa(fixture.LocationID),
						itoa(fixture.LeagueID), formatTime(fixture.StartDate), fixture.Status.String())
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().IntSliceVar(&request.FixtureIDs, "fixture-ids", nil, "filter by fixture ids")
	cmd.Flags().IntSliceVar(&request.SportIDs, "sport-ids", nil, "filter by sport ids")
	cmd.Flags().IntSliceVar(&request.LocationIDs, "location-ids", nil, "filter by location ids")
	cmd.Flags().IntSliceVar(&request.LeagueIDs, "league-ids", nil, "filter by league ids")

	return cmd
}

func newFixtureSubscriptionCommand(
	use, short string,
	change func(trade360.SubscriptionClient, context.Context, *trade360.FixtureSubscriptionRequest) (*trade360.FixtureSubscriptionResponse, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FIXTURE_ID...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures, err := parseIDs(args)
			if err != nil {
				return err
			}

			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := change(client.Subscription(), ctx, &trade360.FixtureSubscriptionRequest{Fixtures: fixtures})
				if err != nil {
					return err
				}

				view := newTableView("Fixture", "Success", "Message")
				for _, fixture := range resp.Fixtures {
					view.add(itoa(fixture.FixtureID), formatBool(fixture.Success), orNA(fixture.Message))
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}
}

func newLeagueSubscriptionCommand(
	use, short string,
	change func(trade360.SubscriptionClient, context.Context, *trade360.LeagueSubscriptionRequest) (*trade360.LeagueSubscriptionResponse, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " LEAGUE_ID:SPORT_ID:LOCATION_ID...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseLeagueSpecs(args)
			if err != nil {
				return err
			}

			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := change(client.Subscription(), ctx, &trade360.LeagueSubscriptionRequest{Subscriptions: items})
				if err != nil {
					return err
				}

				view := newTableView("League", "Sport", "Location", "Success", "Message")
				for _, league := range resp.Subscriptions {
					view.add(itoa(league.LeagueID), itoa(league.SportID), itoa(league.LocationID),
						formatBool(league.Success), orNA(league.Message))
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}
}

func newCompetitionSubscriptionCommand(
	use, short string,
	change func(trade360.SubscriptionClient, context.Context, *trade360.CompetitionSubscriptionRequest) (*trade360.CompetitionSubscriptionResponse, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " COMPETITION_ID:SPORT_ID:LOCATION_ID...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseCompetitionSpecs(args)
			if err != nil {
				return err
			}

			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := change(client.Subscription(), ctx, &trade360.CompetitionSubscriptionRequest{Subscriptions: items})
				if err != nil {
					return err
				}

				view := newTableView("Competition", "Sport", "Location", "Success", "Message")
				for _, competition := range resp.Subscriptions {
					view.add(itoa(competition.CompetitionID), itoa(competition.SportID), itoa(competition.LocationID),
						formatBool(competition.Success), orNA(competition.Message))
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}
}

func newSuspensionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suspensions",
		Short: "Manage manual market suspensions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List manual suspensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Subscription().GetAllManualSuspensions(ctx)
				if err != nil {
					return err
				}

				return renderOutput(cmd.OutOrStdout(), resp, suspensionsView(resp))
			})
		},
	})

	cmd.AddCommand(newChangeSuspensionCommand("add", "Suspend fixtures or markets",
		trade360.SubscriptionClient.AddManualSuspension))
	cmd.AddCommand(newChangeSuspensionCommand("remove", "Lift manual suspensions",
		trade360.SubscriptionClient.RemoveManualSuspension))

	return cmd
}

func newChangeSuspensionCommand(
	use, short string,
	change func(trade360.SubscriptionClient, context.Context, *trade360.ChangeManualSuspensionRequest) (*trade360.ManualSuspensionsResponse, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FIXTURE_ID[:MARKET_ID[:LINE]]...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suspensions, err := parseSuspensionSpecs(args)
			if err != nil {
				return err
			}

			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := change(client.Subscription(), ctx, &trade360.ChangeManualSuspensionRequest{Suspensions: suspensions})
				if err != nil {
					return err
				}

				if isTable() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Succeeded: %s\n", formatBool(resp.Succeeded))
				}

				return renderOutput(cmd.OutOrStdout(), resp, suspensionsView(resp))
			})
		},
	}
}

func suspensionsView(resp *trade360.ManualSuspensionsResponse) *tableView {
	view := newTableView("Fixture", "Sport", "Location", "Competition", "Market", "Line", "Created")

	for _, suspension := range resp.Suspensions {
		created := ""
		if suspension.CreationDate != nil {
			created = formatTime(*suspension.CreationDate)
		}

		row := []string{
			itoa(suspension.FixtureID), itoa(suspension.SportID), itoa(suspension.LocationID),
			itoa(suspension.CompetitionID),
		}

		if len(suspension.Markets) == 0 {
			view.add(append(row, "all", "", orNA(created))...)

			continue
		}

		for _, market := range suspension.Markets {
			view.add(append(append([]string(nil), row...), itoa(market.MarketID), orNA(market.Line), orNA(created))...)
		}
	}

	return view
}
