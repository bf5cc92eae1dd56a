package commands

import (
	"github.com/spf13/cobra"
)

// cliVersion is reported in the User-Agent header.
var cliVersion = "dev"

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	cliVersion = version

	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the Trade360 CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit"  yaml:"commit"`
				Built   string `json:"built"   yaml:"built"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			view := newTableView("Property", "Value")
			view.add("Version", version)
			view.add("Commit", commit)
			view.add("Built", date)

			return renderOutput(cmd.OutOrStdout(), versionInfo, view)
		},
	}
}
