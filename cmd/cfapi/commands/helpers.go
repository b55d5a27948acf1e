package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/alos-no/cloudflare-client/pkg/cfclient"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	timeFormat = "2006-01-02 15:04:05"
)

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired   = errors.New("API token is required (use --token, CFAPI_TOKEN, or the config file)")
	ErrProfileNotFound = errors.New("profile not found in config file")
	ErrAccountRequired = errors.New("account ID is required (use --account or the config file)")
)

// CreateClient builds a client from the effective configuration. Named
// profiles are registered once per process and reused afterwards, so every
// command invoked against the same profile shares one transport and one
// rate-limit state.
func CreateClient() (cloudflare.Client, error) {
	profile := viper.GetString("profile")
	if profile == "" {
		return createDynamicClient()
	}

	named, err := cfclient.Named(profile)
	if err == nil {
		return named, nil
	}

	if !errors.Is(err, cloudflare.ErrClientNotRegistered) {
		return nil, err
	}

	config, err := profileConfig(profile)
	if err != nil {
		return nil, err
	}

	return cfclient.Register(profile, config)
}

func createDynamicClient() (cloudflare.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	return cfclient.New(&cloudflare.Config{
		APIToken: token,
		BaseURL:  viper.GetString("base_url"),
		Debug:    viper.GetBool("verbose"),
	})
}

func profileConfig(profile string) (*cloudflare.Config, error) {
	key := "profiles." + profile
	if !viper.IsSet(key) {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, profile)
	}

	token := viper.GetString(key + ".token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	return &cloudflare.Config{
		APIToken: token,
		BaseURL:  viper.GetString(key + ".base_url"),
		Debug:    viper.GetBool("verbose"),
	}, nil
}

// accountID resolves the target account from the flag, the profile, or the
// top-level config.
func accountID(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if profile := viper.GetString("profile"); profile != "" {
		if id := viper.GetString("profiles." + profile + ".account_id"); id != "" {
			return id, nil
		}
	}

	if id := viper.GetString("account_id"); id != "" {
		return id, nil
	}

	return "", ErrAccountRequired
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return encoder.Close()
}

// formatTime renders a timestamp for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.Format(timeFormat)
}

// formatBool renders a boolean for table output.
func formatBool(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
