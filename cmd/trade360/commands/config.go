package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration. The password is never stored
// here; see login.
type Config struct {
	BaseURL       string        `json:"base_url,omitempty"       yaml:"base_url,omitempty"`
	PackageID     int           `json:"package_id,omitempty"     yaml:"package_id,omitempty"`
	Username      string        `json:"username,omitempty"       yaml:"username,omitempty"`
	MessageFormat string        `json:"message_format,omitempty" yaml:"message_format,omitempty"`
	Timeout       time.Duration `json:"timeout,omitempty"        yaml:"timeout,omitempty"`
	Output        string        `json:"output,omitempty"         yaml:"output,omitempty"`
	LogFile       string        `json:"log_file,omitempty"       yaml:"log_file,omitempty"`
}

// configSetters maps each settable key to its parser.
var configSetters = map[string]func(c *Config, value string) error{
	"base_url": func(c *Config, value string) error {
		if err := trade360.ValidateBaseURL(value); err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}

		c.BaseURL = value

		return nil
	},
	"package_id": func(c *Config, value string) error {
		id, err := cast.ToIntE(value)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid package_id %q: must be a positive integer", value)
		}

		c.PackageID = id

		return nil
	},
	"username": func(c *Config, value string) error {
		c.Username = value

		return nil
	},
	"message_format": func(c *Config, value string) error {
		c.MessageFormat = value

		return nil
	},
	"timeout": func(c *Config, value string) error {
		timeout, err := cast.ToDurationE(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}

		c.Timeout = timeout

		return nil
	},
	"output": func(c *Config, value string) error {
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			c.Output = value

			return nil
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, value)
		}
	},
	"log_file": func(c *Config, value string) error {
		c.LogFile = value

		return nil
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the Trade360 CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration, including flag and environment overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			view := newTableView("Property", "Value")
			view.add("Base URL", orNA(config.BaseURL))
			view.add("Package ID", packageIDString(config.PackageID))
			view.add("Username", orNA(config.Username))
			view.add("Password", passwordState(config))
			view.add("Message Format", orNA(config.MessageFormat))
			view.add("Timeout", timeoutString(config.Timeout))
			view.add("Output", orNA(config.Output))
			view.add("Log File", orNA(config.LogFile))

			return renderOutput(cmd.OutOrStdout(), config, view)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	keys := make([]string, 0, len(configSetters))
	for key := range configSetters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return &cobra.Command{
		Use:       "set KEY VALUE",
		Short:     "Set a configuration value",
		Long:      "Set a configuration value. Keys: " + strings.Join(keys, ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			setter, ok := configSetters[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config := loadStoredConfig()
			if err := setter(config, value); err != nil {
				return err
			}

			if err := saveConfigStruct(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}
}

// loadConfig returns the effective configuration: file values overridden
// by environment variables and flags.
func loadConfig() *Config {
	return &Config{
		BaseURL:       viper.GetString("base_url"),
		PackageID:     viper.GetInt("package_id"),
		Username:      viper.GetString("username"),
		MessageFormat: viper.GetString("message_format"),
		Timeout:       viper.GetDuration("timeout"),
		Output:        viper.GetString("output"),
		LogFile:       viper.GetString("log_file"),
	}
}

// loadStoredConfig reads only what is in the config file, so flag and
// environment overrides are not written back.
func loadStoredConfig() *Config {
	config := &Config{}

	data, err := os.ReadFile(configFilePath())
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

func saveConfigStruct(config *Config) error {
	configFile := configFilePath()

	if err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func configFilePath() string {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, ".trade360", "config.yml")
}

func packageIDString(id int) string {
	if id == 0 {
		return constants.NotAvailable
	}

	return itoa(id)
}

func timeoutString(timeout time.Duration) string {
	if timeout == 0 {
		return constants.DefaultHTTPTimeout.String() + " (default)"
	}

	return timeout.String()
}

func passwordState(config *Config) string {
	if _, err := resolvePassword(config); err != nil {
		return "not set"
	}

	return constants.MaskedSecret
}
