package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk CLI configuration.
type Config struct {
	Token     string              `json:"token,omitempty"      yaml:"token,omitempty"`
	BaseURL   string              `json:"base_url,omitempty"   yaml:"base_url,omitempty"`
	AccountID string              `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	Output    string              `json:"output,omitempty"     yaml:"output,omitempty"`
	Profiles  map[string]*Profile `json:"profiles,omitempty"   yaml:"profiles,omitempty"`
}

// Profile is one named credential set in the config file.
type Profile struct {
	Token     string `json:"token"                yaml:"token"`
	BaseURL   string `json:"base_url,omitempty"   yaml:"base_url,omitempty"`
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`
}

const maskedValue = "***"

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the cfapi configuration file",
	}

	cmd.AddCommand(newConfigViewCommand())
	cmd.AddCommand(newConfigSetTokenCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		Long:  "Display the current configuration with credentials masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, _, err := loadConfigFile()
			if err != nil {
				return err
			}

			masked := *config
			if masked.Token != "" {
				masked.Token = maskedValue
			}

			masked.Profiles = make(map[string]*Profile, len(config.Profiles))
			for name, profile := range config.Profiles {
				clone := *profile
				if clone.Token != "" {
					clone.Token = maskedValue
				}

				masked.Profiles[name] = &clone
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(masked)
			case OutputFormatYAML:
				return renderYAML(masked)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Setting", "Value")
				_ = table.Append("Token", masked.Token)
				_ = table.Append("Base URL", masked.BaseURL)
				_ = table.Append("Account ID", masked.AccountID)
				_ = table.Append("Output", masked.Output)
				_ = table.Append("Profiles", strings.Join(profileNames(masked.Profiles), ", "))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "set-token",
		Short: "Store an API token",
		Long:  "Prompt for an API token and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("API Token: ")

			tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read token: %w", err)
			}

			fmt.Println()

			token := strings.TrimSpace(string(tokenBytes))
			if token == "" {
				return ErrTokenRequired
			}

			config, path, err := loadConfigFile()
			if err != nil {
				return err
			}

			if profile != "" {
				if config.Profiles == nil {
					config.Profiles = make(map[string]*Profile)
				}

				existing, ok := config.Profiles[profile]
				if !ok {
					existing = &Profile{}
					config.Profiles[profile] = existing
				}

				existing.Token = token
			} else {
				config.Token = token
			}

			if err := saveConfigFile(config, path); err != nil {
				return err
			}

			fmt.Println("Token saved to", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "store the token under a named profile")

	return cmd
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set base_url, account_id, or output in the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config, path, err := loadConfigFile()
			if err != nil {
				return err
			}

			switch key {
			case "base_url":
				config.BaseURL = value
			case "account_id":
				config.AccountID = value
			case "output":
				config.Output = value
			default:
				return fmt.Errorf("unknown config key %q (expected base_url, account_id, or output)", key)
			}

			if err := saveConfigFile(config, path); err != nil {
				return err
			}

			fmt.Printf("%s saved to %s\n", key, path)

			return nil
		},
	}
}

// loadConfigFile reads the config file, returning an empty config when the
// file does not exist yet.
func loadConfigFile() (*Config, string, error) {
	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, "", fmt.Errorf("finding home directory: %w", err)
		}

		path = filepath.Join(home, ".cfapi", "config.yml")
	}

	config := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, path, nil
		}

		return nil, "", fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, "", fmt.Errorf("parsing config file: %w", err)
	}

	return config, path, nil
}

func saveConfigFile(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// The file holds credentials, keep it private.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func profileNames(profiles map[string]*Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
