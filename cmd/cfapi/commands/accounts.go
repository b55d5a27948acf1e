package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alos-no/cloudflare-client/internal/constants"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Manage accounts",
		Long:    "List and manage the accounts the token has access to",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsUpdateCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
		name     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := cloudflare.NewListOptions().WithPerPage(perPage)

			if name != "" {
				opts = opts.WithName(name)
			}

			accounts, err := listAccounts(ctx, client, opts, allPages)
			if err != nil {
				return err
			}

			return renderAccounts(accounts)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all-pages", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "number of results per page")
	cmd.Flags().StringVar(&name, "name", "", "filter by account name")

	return cmd
}

func listAccounts(ctx context.Context, client cloudflare.Client, opts *cloudflare.ListOptions, allPages bool) ([]cloudflare.Account, error) {
	if allPages {
		accounts, err := client.Accounts().ListAll(ctx, opts).All()
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}

		return accounts, nil
	}

	page, err := client.Accounts().List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return page.Items, nil
}

func renderAccounts(accounts []cloudflare.Account) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(accounts)
	case OutputFormatYAML:
		return renderYAML(accounts)
	default:
		return renderAccountsTable(accounts)
	}
}

func renderAccountsTable(accounts []cloudflare.Account) error {
	if len(accounts) == 0 {
		_, _ = os.Stdout.WriteString("No accounts found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "2FA Enforced", "Created")

	for _, account := range accounts {
		enforce2FA := NotAvailable
		if account.Settings != nil {
			enforce2FA = formatBool(account.Settings.EnforceTwoFactor)
		}

		_ = table.Append([]string{
			account.ID,
			account.Name,
			account.Type,
			enforce2FA,
			formatTime(account.CreatedOn),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Get account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.Accounts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(account)
			case OutputFormatYAML:
				return renderYAML(account)
			default:
				return renderAccountsTable([]cloudflare.Account{*account})
			}
		},
	}
}

func newAccountsUpdateCommand() *cobra.Command {
	var (
		name       string
		enforce2FA bool
	)

	cmd := &cobra.Command{
		Use:   "update ACCOUNT_ID",
		Short: "Update an account",
		Long:  "Update account settings; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &cloudflare.AccountUpdateRequest{}

			if cmd.Flags().Changed("name") {
				request.Name = cloudflare.Set(name)
			}

			if cmd.Flags().Changed("enforce-2fa") {
				request.Settings = cloudflare.Set(cloudflare.AccountSettings{EnforceTwoFactor: enforce2FA})
			}

			account, err := client.Accounts().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			fmt.Printf("Updated account %s\n", account.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new account name")
	cmd.Flags().BoolVar(&enforce2FA, "enforce-2fa", false, "require two-factor authentication")

	return cmd
}
