package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Terminal access, replaced in tests.
var (
	stdinIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
	readTerminalPassword = func() ([]byte, error) {
		return term.ReadPassword(int(os.Stdin.Fd()))
	}
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		passwordStdin bool
		skipVerify    bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the package password",
		Long: `Store the package password in the system keyring.

The password is checked against the package quota endpoint before it is
stored, unless --skip-verify is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch {
			case config.BaseURL == "" && !skipVerify:
				return constants.ErrNoBaseURL
			case config.PackageID == 0:
				return constants.ErrNoPackageID
			case config.Username == "":
				return constants.ErrNoUsername
			}

			password, err := readPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			if !skipVerify {
				client, err := newClientWithPassword(config, password)
				if err != nil {
					return err
				}

				ctx, cancel := context.WithTimeout(commandContext(cmd), constants.ShortHTTPTimeout)
				_, err = client.Subscription().GetPackageQuota(ctx)

				cancel()
				_ = client.Close()

				if err != nil {
					return fmt.Errorf("failed to verify credentials: %w", err)
				}
			}

			if err := storePassword(config, password); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (package %d)\n", config.Username, config.PackageID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "store the password without calling the API")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored package password",
		Long:  "Remove the package password from the system keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch {
			case config.PackageID == 0:
				return constants.ErrNoPackageID
			case config.Username == "":
				return constants.ErrNoUsername
			}

			if err := removePassword(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged out %s (package %d)\n", config.Username, config.PackageID)

			return nil
		},
	}
}

func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	var password string

	if fromStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		password = strings.TrimRight(line, "\r\n")
	} else {
		if !stdinIsTerminal() {
			return "", constants.ErrNotATerminal
		}

		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

		bytePassword, err := readTerminalPassword()

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		password = string(bytePassword)
	}

	if strings.TrimSpace(password) == "" {
		return "", constants.ErrEmptyPassword
	}

	return password, nil
}
