package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/nimbusvec/vapi/internal/constants"
)

const maskedValue = "***"

// CLIConfig is the persisted CLI configuration.
type CLIConfig struct {
	APIKey   string `yaml:"api-key,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and change the persisted vapi CLI configuration",
	}

	cmd.AddCommand(newConfigViewCommand())
	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigSetEndpointCommand())
	cmd.AddCommand(newConfigUnsetKeyCommand())

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the current configuration",
		Long:  "Show the resolved configuration; the API key is masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := CLIConfig{
				APIKey:   viper.GetString("api-key"),
				Endpoint: viper.GetString("endpoint"),
				Output:   viper.GetString("output"),
			}

			if config.APIKey != "" {
				config.APIKey = maskedValue
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(config)
			case OutputFormatYAML:
				return StandardYAMLRenderer(config)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Setting", "Value")
				_ = table.Append("api-key", orDash(config.APIKey))
				_ = table.Append("endpoint", orDash(config.Endpoint))
				_ = table.Append("output", orDash(config.Output))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [API_KEY]",
		Short: "Store the API key",
		Long:  "Store the API key in the config file; prompts without echo when no argument is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var apiKey string

			if len(args) == 1 {
				apiKey = args[0]
			} else {
				fmt.Fprint(os.Stderr, "API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Fprintln(os.Stderr)

				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(keyBytes))
			}

			return updateConfigFile(func(config *CLIConfig) {
				config.APIKey = apiKey
			})
		},
	}
}

func newConfigSetEndpointCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-endpoint ENDPOINT",
		Short: "Store the control-plane endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigFile(func(config *CLIConfig) {
				config.Endpoint = args[0]
			})
		},
	}
}

func newConfigUnsetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset-key",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigFile(func(config *CLIConfig) {
				config.APIKey = ""
			})
		},
	}
}

// configFilePath returns the config file in use, defaulting to
// ~/.vapi/config.yml.
func configFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".vapi", "config.yml"), nil
}

func updateConfigFile(mutate func(*CLIConfig)) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	var config CLIConfig

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	}

	mutate(&config)

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(os.Stdout, "Configuration saved to", path)

	return nil
}
