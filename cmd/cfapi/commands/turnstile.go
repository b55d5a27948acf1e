package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alos-no/cloudflare-client/internal/constants"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// NewTurnstileCommand creates the turnstile command group.
func NewTurnstileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "turnstile",
		Short: "Manage Turnstile widgets",
		Long:  "List, create, update, and delete Turnstile widgets within an account",
	}

	cmd.AddCommand(newTurnstileListCommand())
	cmd.AddCommand(newTurnstileGetCommand())
	cmd.AddCommand(newTurnstileCreateCommand())
	cmd.AddCommand(newTurnstileUpdateCommand())
	cmd.AddCommand(newTurnstileDeleteCommand())
	cmd.AddCommand(newTurnstileRotateSecretCommand())

	return cmd
}

func newTurnstileListCommand() *cobra.Command {
	var (
		account  string
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Turnstile widgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, err := accountID(account)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := cloudflare.NewListOptions().WithPerPage(perPage)

			widgets, err := listWidgets(ctx, client, accID, opts, allPages)
			if err != nil {
				return err
			}

			return renderWidgets(widgets)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account ID")
	cmd.Flags().BoolVar(&allPages, "all-pages", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "number of results per page")

	return cmd
}

func listWidgets(ctx context.Context, client cloudflare.Client, accID string, opts *cloudflare.ListOptions, allPages bool) ([]cloudflare.Widget, error) {
	if allPages {
		widgets, err := client.Turnstile().ListAll(ctx, accID, opts).All()
		if err != nil {
			return nil, fmt.Errorf("failed to list widgets: %w", err)
		}

		return widgets, nil
	}

	page, err := client.Turnstile().List(ctx, accID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}

	return page.Items, nil
}

func renderWidgets(widgets []cloudflare.Widget) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(widgets)
	case OutputFormatYAML:
		return renderYAML(widgets)
	default:
		return renderWidgetsTable(widgets)
	}
}

func renderWidgetsTable(widgets []cloudflare.Widget) error {
	if len(widgets) == 0 {
		_, _ = os.Stdout.WriteString("No widgets found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Sitekey", "Name", "Mode", "Domains", "Bot Fight Mode", "Modified")

	for _, widget := range widgets {
		_ = table.Append([]string{
			widget.Sitekey,
			widget.Name,
			string(widget.Mode),
			strings.Join(widget.Domains, ", "),
			formatBool(widget.BotFightMode),
			formatTime(widget.ModifiedOn),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newTurnstileGetCommand() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "get SITEKEY",
		Short: "Get widget details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, err := accountID(account)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			widget, err := client.Turnstile().Get(context.Background(), accID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get widget: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(widget)
			case OutputFormatYAML:
				return renderYAML(widget)
			default:
				return renderWidgetsTable([]cloudflare.Widget{*widget})
			}
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account ID")

	return cmd
}

//nolint:funlen // Command constructors enumerate their flags inline
func newTurnstileCreateCommand() *cobra.Command {
	var (
		account      string
		name         string
		domains      []string
		mode         string
		botFightMode bool
		offlabel     bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a Turnstile widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, err := accountID(account)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &cloudflare.WidgetCreateRequest{
				Name:    name,
				Domains: domains,
				Mode:    cloudflare.WidgetMode(mode),
			}

			if cmd.Flags().Changed("bot-fight-mode") {
				request.BotFightMode = cloudflare.Set(botFightMode)
			}

			if cmd.Flags().Changed("offlabel") {
				request.Offlabel = cloudflare.Set(offlabel)
			}

			widget, err := client.Turnstile().Create(context.Background(), accID, request)
			if err != nil {
				return fmt.Errorf("failed to create widget: %w", err)
			}

			fmt.Printf("Created widget %s\n", widget.Sitekey)
			fmt.Printf("Secret: %s\n", widget.Secret)

			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account ID")
	cmd.Flags().StringVar(&name, "name", "", "widget name")
	cmd.Flags().StringSliceVar(&domains, "domain", nil, "allowed domain (repeatable)")
	cmd.Flags().StringVar(&mode, "mode", "managed", "widget mode (managed, non-interactive, invisible)")
	cmd.Flags().BoolVar(&botFightMode, "bot-fight-mode", false, "enable bot fight mode")
	cmd.Flags().BoolVar(&offlabel, "offlabel", false, "hide Cloudflare branding")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}

//nolint:funlen // Command constructors enumerate their flags inline
func newTurnstileUpdateCommand() *cobra.Command {
	var (
		account      string
		name         string
		domains      []string
		mode         string
		botFightMode bool
		offlabel     bool
	)

	cmd := &cobra.Command{
		Use:   "update SITEKEY",
		Short: "Update a Turnstile widget",
		Long:  "Update a widget; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, err := accountID(account)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &cloudflare.WidgetUpdateRequest{}

			if cmd.Flags().Changed("name") {
				request.Name = cloudflare.Set(name)
			}

			if cmd.Flags().Changed("domain") {
				request.Domains = cloudflare.Set(domains)
			}

			if cmd.Flags().Changed("mode") {
				request.Mode = cloudflare.Set(cloudflare.WidgetMode(mode))
			}

			if cmd.Flags().Changed("bot-fight-mode") {
				request.BotFightMode = cloudflare.Set(botFightMode)
			}

			if cmd.Flags().Changed("offlabel") {
				request.Offlabel = cloudflare.Set(offlabel)
			}

			widget, err := client.Turnstile().Update(context.Background(), accID, args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update widget: %w", err)
			}

			fmt.Printf("Updated widget %s\n", widget.Sitekey)

			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account ID")
	cmd.Flags().StringVar(&name, "name", "", "widget name")
	cmd.Flags().StringSliceVar(&domains, "domain", nil, "allowed domain (repeatable)")
	cmd.Flags().StringVar(&mode, "mode", "", "widget mode")
	cmd.Flags().BoolVar(&botFightMode, "bot-fight-mode", false, "enable bot fight mode")
	cmd.Flags().BoolVar(&offlabel, "offlabel", false, "hide Cloudflare branding")

	return cmd
}

func newTurnstileDeleteCommand() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "delete SITEKEY",
		Short: "Delete a Turnstile widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, err := accountID(account)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Turnstile().Delete(context.Background(), accID, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete widget: %w", err)
			}

			fmt.Printf("Deleted widget %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account ID")

	return cmd
}

func newTurnstileRotateSecretCommand() *cobra.Command {
	var (
		account               string
		invalidateImmediately bool
	)

	cmd := &cobra.Command{
		Use:   "rotate-secret SITEKEY",
		Short: "Rotate a widget secret",
		Long:  "Generate a new widget secret; the old one stays valid for a grace period unless invalidated immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, err := accountID(account)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			widget, err := client.Turnstile().RotateSecret(context.Background(), accID, args[0], invalidateImmediately)
			if err != nil {
				return fmt.Errorf("failed to rotate widget secret: %w", err)
			}

			fmt.Printf("New secret: %s\n", widget.Secret)

			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account ID")
	cmd.Flags().BoolVar(&invalidateImmediately, "invalidate-immediately", false, "invalidate the previous secret immediately")

	return cmd
}
