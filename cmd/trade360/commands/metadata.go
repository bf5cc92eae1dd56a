package commands

import (
	"context"
	"fmt"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewMetadataCommand creates the metadata command group
func NewMetadataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "metadata",
		Aliases: []string{"meta"},
		Short:   "Query sports, leagues, markets and other metadata",
		Long:    "Query the Trade360 metadata API",
	}

	cmd.AddCommand(newSportsCommand())
	cmd.AddCommand(newLocationsCommand())
	cmd.AddCommand(newLeaguesCommand())
	cmd.AddCommand(newMarketsCommand())
	cmd.AddCommand(newTranslationsCommand())
	cmd.AddCommand(newCompetitionsCommand())
	cmd.AddCommand(newFixturesCommand())
	cmd.AddCommand(newParticipantsCommand())
	cmd.AddCommand(newSnapshotCommand())

	return cmd
}

func newSportsCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "sports",
		Short: "List sports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Metadata().GetSports(ctx)
				if err != nil {
					return err
				}

				resp.Sports = searchByName(search, resp.Sports, func(s trade360.Sport) string { return s.Name })

				view := newTableView("ID", "Name")
				for _, sport := range resp.Sports {
					view.add(itoa(sport.ID), sport.Name)
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "fuzzy filter by name")

	return cmd
}

func newLocationsCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Metadata().GetLocations(ctx)
				if err != nil {
					return err
				}

				resp.Locations = searchByName(search, resp.Locations, func(l trade360.Location) string { return l.Name })

				view := newTableView("ID", "Name")
				for _, location := range resp.Locations {
					view.add(itoa(location.ID), location.Name)
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "fuzzy filter by name")

	return cmd
}

func newLeaguesCommand() *cobra.Command {
	var (
		sportIDs           []int
		locationIDs        []int
		subscriptionStatus string
		languageID         int
		search             string
	)

	cmd := &cobra.Command{
		Use:   "leagues",
		Short: "List leagues",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := parseSubscriptionState(subscriptionStatus)
			if err != nil {
				return err
			}

			request := &trade360.GetLeaguesRequest{
				SportIDs:           sportIDs,
				LocationIDs:        locationIDs,
				SubscriptionStatus: state,
			}

			if cmd.Flags().Changed("language-id") {
				request.LanguageID = &languageID
			}

			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Metadata().GetLeagues(ctx, request)
				if err != nil {
					return err
				}

				resp.Leagues = searchByName(search, resp.Leagues, func(l trade360.League) string { return l.Name })

				view := newTableView("ID", "Name", "Season", "Sport", "Location")
				for _, league := range resp.Leagues {
					view.add(itoa(league.ID), league.Name, orNA(league.Season), itoa(league.SportID), itoa(league.LocationID))
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().IntSliceVar(&sportIDs, "sport-ids", nil, "filter by sport ids")
	cmd.Flags().IntSliceVar(&locationIDs, "location-ids", nil, "filter by location ids")
	cmd.Flags().StringVar(&subscriptionStatus, "subscription-status", "all", "all, subscribed or not_subscribed")
	cmd.Flags().IntVar(&languageID, "language-id", 0, "language of the returned names")
	cmd.Flags().StringVar(&search, "search", "", "fuzzy filter by name")

	return cmd
}

func newMarketsCommand() *cobra.Command {
	var (
		marketIDs  []int
		sportIDs   []int
		settleable string
		languageID int
	)

	cmd := &cobra.Command{
		Use:   "markets",
		Short: "List markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &trade360.GetMarketsRequest{
				MarketIDs: marketIDs,
				SportIDs:  sportIDs,
			}

			if settleable != "" {
				value, err := cast.ToBoolE(settleable)
				if err != nil {
					return fmt.Errorf("invalid value for --settleable %q: use true or false", settleable)
				}

				request.IsSettleable = &value
			}

			if cmd.Flags().Changed("language-id") {
				request.LanguageID = &languageID
			}

			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Metadata().GetMarkets(ctx, request)
				if err != nil {
					return err
				}

				view := newTableView("ID", "Name", "Settleable", "Outcomes")
				for _, market := range resp.Markets {
					view.add(itoa(market.ID), market.Name, formatBool(market.IsSettleable), itoa(market.OutcomeCount))
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().IntSliceVar(&marketIDs, "market-ids", nil, "filter by market ids")
	cmd.Flags().IntSliceVar(&sportIDs, "sport-ids", nil, "filter by sport ids")
	cmd.Flags().StringVar(&settleable, "settleable", "", "filter by settleability (true or false)")
	cmd.Flags().IntVar(&languageID, "language-id", 0, "language of the returned names")

	return cmd
}

func newTranslationsCommand() *cobra.Command {
	request := &trade360.GetTranslationsRequest{}

	cmd := &cobra.Command{
		Use:   "translations",
		Short: "Show translated names",
		Long:  "Show entity names in the requested languages. --languages and at least one id filter are required.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Metadata().GetTranslations(ctx, request)
				if err != nil {
					return err
				}

				view := newTableView("Kind", "ID", "Name", "Language", "Value")
				addTranslations(view, "sport", resp.Sports)
				addTranslations(view, "location", resp.Locations)
				addTranslations(view, "league", resp.Leagues)
				addTranslations(view, "market", resp.Markets)
				addTranslations(view, "participant", resp.Participants)

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().StringSliceVar(&request.Languages, "languages", nil, "language codes, e.g. en,es")
	cmd.Flags().IntSliceVar(&request.SportIDs, "sport-ids", nil, "sport ids")
	cmd.Flags().IntSliceVar(&request.LocationIDs, "location-ids", nil, "location ids")
	cmd.Flags().IntSliceVar(&request.LeagueIDs, "league-ids", nil, "league ids")
	cmd.Flags().IntSliceVar(&request.MarketIDs, "market-ids", nil, "market ids")
	cmd.Flags().IntSliceVar(&request.ParticipantIDs, "participant-ids", nil, "participant ids")

	return cmd
}

func addTranslations(view *tableView, kind string, translations []trade360.Translation) {
	for _, translation := range translations {
		if len(translation.Translations) == 0 {
			view.add(kind, itoa(translation.ID), translation.Name, constants.NotAvailable, constants.NotAvailable)

			continue
		}

		for _, value := range translation.Translations {
			view.add(kind, itoa(translation.ID), translation.Name, itoa(value.LanguageID), value.Value)
		}
	}
}

func newCompetitionsCommand() *cobra.Command {
	var (
		ids                []int
		sportIDs           []int
		locationIDs        []int
		subscriptionStatus string
	)

	cmd := &cobra.Command{
		Use:   "competitions",
		Short: "List outright competitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := parseSubscriptionState(subscriptionStatus)
			if err != nil {
				return err
			}

			request := &trade360.GetCompetitionsRequest{
				IDs:                ids,
				SportIDs:           sportIDs,
				LocationIDs:        locationIDs,
				SubscriptionStatus: state,
			}

			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Metadata().GetCompetitions(ctx, request)
				if err != nil {
					return err
				}

				view := newTableView("ID", "Name", "Type", "Sport", "Location")
				for _, competition := range resp.Competitions {
					view.add(itoa(competition.ID), competition.Name, itoa(competition.Type),
						itoa(competition.SportID), itoa(competition.LocationID))
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().IntSliceVar(&ids, "ids", nil, "competition ids")
	cmd.Flags().IntSliceVar(&sportIDs, "sport-ids", nil, "filter by sport ids")
	cmd.Flags().IntSliceVar(&locationIDs, "location-ids", nil, "filter by location ids")
	cmd.Flags().StringVar(&subscriptionStatus, "subscription-status", "all", "all, subscribed or not_subscribed")

	return cmd
}

func newFixturesCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "List subscribed fixture metadata",
		Long:  "List metadata of subscribed fixtures starting between --from and --to (RFC 3339 or YYYY-MM-DD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := parseDate(from)
			if err != nil {
				return err
			}

			toDate, err := parseDate(to)
			if err != nil {
				return err
			}

			request := &trade360.GetFixtureMetadataRequest{FromDate: fromDate, ToDate: toDate}

			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Metadata().GetFixtureMetadata(ctx, request)
				if err != nil {
					return err
				}

				view := newTableView("Fixture", "Sport", "Location", "League", "Start", "Status", "Participants")
				for _, fixture := range resp.SubscribedFixtures {
					view.add(itoa(fixture.FixtureID), itoa(fixture.SportID), itoa(fixture.LocationID),
						itoa(fixture.LeagueID), formatTime(fixture.StartDate), fixture.Status.String(),
						participantNames(fixture.Participants))
				}

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start of the window")
	cmd.Flags().StringVar(&to, "to", "", "end of the window")

	return cmd
}

func newParticipantsCommand() *cobra.Command {
	request := &trade360.GetParticipantsRequest{}

	cmd := &cobra.Command{
		Use:   "participants",
		Short: "List teams and players",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := client.Metadata().GetParticipants(ctx, request)
				if err != nil {
					return err
				}

				view := newTableView("ID", "Name", "Position", "Sport")
				for _, participant := range resp.Participants {
					view.add(itoa(participant.ID), participant.Name, orNA(participant.Position), itoa(participant.SportID))
				}

				view.add("", "Total: "+itoa(resp.TotalItems), "", "")

				return renderOutput(cmd.OutOrStdout(), resp, view)
			})
		},
	}

	cmd.Flags().IntSliceVar(&request.IDs, "ids", nil, "participant ids")
	cmd.Flags().IntSliceVar(&request.SportIDs, "sport-ids", nil, "filter by sport ids")
	cmd.Flags().IntSliceVar(&request.LocationIDs, "location-ids", nil, "filter by location ids")
	cmd.Flags().StringVar(&request.Name, "name", "", "filter by name")
	cmd.Flags().IntVar(&request.Page, "page", 0, "page number, starting at 1")
	cmd.Flags().IntVar(&request.PageSize, "page-size", 0, "page size")

	return cmd
}

// Snapshot is the combined result of the snapshot command.
type Snapshot struct {
	Sports    []trade360.Sport    `json:"sports"    yaml:"sports"`
	Locations []trade360.Location `json:"locations" yaml:"locations"`
	Leagues   []trade360.League   `json:"leagues"   yaml:"leagues"`
	Markets   []trade360.Market   `json:"markets"   yaml:"markets"`
}

func newSnapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch sports, locations, leagues and markets at once",
		Long:  "Fetch sports, locations, leagues and markets concurrently and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				snapshot, err := fetchSnapshot(ctx, client.Metadata())
				if err != nil {
					return err
				}

				view := newTableView("Kind", "Count")
				view.add("sports", itoa(len(snapshot.Sports)))
				view.add("locations", itoa(len(snapshot.Locations)))
				view.add("leagues", itoa(len(snapshot.Leagues)))
				view.add("markets", itoa(len(snapshot.Markets)))

				return renderOutput(cmd.OutOrStdout(), snapshot, view)
			})
		},
	}
}

// fetchSnapshot runs the four lookups concurrently. The first failure
// cancels the rest.
func fetchSnapshot(ctx context.Context, metadata trade360.MetadataClient) (*Snapshot, error) {
	snapshot := &Snapshot{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.DefaultConcurrencyLimit)

	g.Go(func() error {
		resp, err := metadata.GetSports(ctx)
		if err != nil {
			return err
		}

		snapshot.Sports = resp.Sports

		return nil
	})

	g.Go(func() error {
		resp, err := metadata.GetLocations(ctx)
		if err != nil {
			return err
		}

		snapshot.Locations = resp.Locations

		return nil
	})

	g.Go(func() error {
		resp, err := metadata.GetLeagues(ctx, nil)
		if err != nil {
			return err
		}

		snapshot.Leagues = resp.Leagues

		return nil
	})

	g.Go(func() error {
		resp, err := metadata.GetMarkets(ctx, nil)
		if err != nil {
			return err
		}

		snapshot.Markets = resp.Markets

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func participantNames(participants []trade360.Participant) string {
	if len(participants) == 0 {
		return constants.NotAvailable
	}

	names := participants[0].Name
	for _, participant := range participants[1:] {
		names += " vs " + participant.Name
	}

	return names
}
