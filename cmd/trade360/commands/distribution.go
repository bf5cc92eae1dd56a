package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/spf13/cobra"
)

// NewDistributionCommand creates the distribution command group
func NewDistributionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "distribution",
		Aliases: []string{"dist"},
		Short:   "Control message distribution",
		Long:    "Start, stop and inspect message distribution for the package",
	}

	cmd.AddCommand(newDistributionActionCommand("start", "Start message distribution",
		func(ctx context.Context, client trade360.DistributionClient) (*trade360.DistributionActionResponse, error) {
			return client.Start(ctx)
		}))
	cmd.AddCommand(newDistributionActionCommand("stop", "Stop message distribution",
		func(ctx context.Context, client trade360.DistributionClient) (*trade360.DistributionActionResponse, error) {
			return client.Stop(ctx)
		}))
	cmd.AddCommand(newDistributionStatusCommand())

	return cmd
}

func newDistributionActionCommand(
	use, short string,
	action func(context.Context, trade360.DistributionClient) (*trade360.DistributionActionResponse, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				resp, err := action(ctx, client.Distribution())
				if err != nil {
					return err
				}

				if isTable() {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), orNA(resp.Message))

					return nil
				}

				return renderOutput(cmd.OutOrStdout(), resp, nil)
			})
		},
	}
}

func newDistributionStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show distribution status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(ctx context.Context, client trade360.Client) error {
				status, err := client.Distribution().GetStatus(ctx)
				if err != nil {
					return err
				}

				consumers := constants.NotAvailable
				if len(status.Consumers) > 0 {
					consumers = strings.Join(status.Consumers, ", ")
				}

				view := newTableView("Property", "Value")
				view.add("Distribution On", formatBool(status.IsDistributionOn))
				view.add("Consumers", consumers)
				view.add("Messages In Queue", itoa(status.NumberMessagesInQueue))
				view.add("Messages Per Second", fmt.Sprintf("%.2f", status.MessagesPerSecond))

				return renderOutput(cmd.OutOrStdout(), status, view)
			})
		},
	}
}
