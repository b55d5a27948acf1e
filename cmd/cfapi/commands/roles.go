package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alos-no/cloudflare-client/internal/constants"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// NewRolesCommand creates the roles command group.
func NewRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "Manage account roles",
		Long:    "List the predefined roles available within an account",
	}

	cmd.AddCommand(newRolesListCommand())
	cmd.AddCommand(newRolesGetCommand())

	return cmd
}

func newRolesListCommand() *cobra.Command {
	var (
		account  string
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List account roles",
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

			roles, err := listRoles(ctx, client, accID, opts, allPages)
			if err != nil {
				return err
			}

			return renderRoles(roles)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account ID")
	cmd.Flags().BoolVar(&allPages, "all-pages", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "number of results per page")

	return cmd
}

func listRoles(ctx context.Context, client cloudflare.Client, accID string, opts *cloudflare.ListOptions, allPages bool) ([]cloudflare.Role, error) {
	if allPages {
		roles, err := client.Roles().ListAll(ctx, accID, opts).All()
		if err != nil {
			return nil, fmt.Errorf("failed to list roles: %w", err)
		}

		return roles, nil
	}

	page, err := client.Roles().List(ctx, accID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return page.Items, nil
}

func renderRoles(roles []cloudflare.Role) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(roles)
	case OutputFormatYAML:
		return renderYAML(roles)
	default:
		return renderRolesTable(roles)
	}
}

func renderRolesTable(roles []cloudflare.Role) error {
	if len(roles) == 0 {
		_, _ = os.Stdout.WriteString("No roles found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Description", "Permissions")

	for _, role := range roles {
		_ = table.Append([]string{
			role.ID,
			role.Name,
			role.Description,
			summarizePermissions(role.Permissions),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// summarizePermissions renders a compact grant summary, e.g. "dns:rw,
// billing:r".
func summarizePermissions(permissions map[string]cloudflare.RolePermission) string {
	if len(permissions) == 0 {
		return NotAvailable
	}

	groups := make([]string, 0, len(permissions))
	for group := range permissions {
		groups = append(groups, group)
	}

	sort.Strings(groups)

	parts := make([]string, 0, len(groups))

	for _, group := range groups {
		grant := permissions[group]

		access := ""
		if grant.Read {
			access += "r"
		}

		if grant.Edit {
			access += "w"
		}

		if access == "" {
			access = "-"
		}

		parts = append(parts, group+":"+access)
	}

	return strings.Join(parts, ", ")
}

func newRolesGetCommand() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "get ROLE_ID",
		Short: "Get role details",
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

			role, err := client.Roles().Get(context.Background(), accID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get role: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(role)
			case OutputFormatYAML:
				return renderYAML(role)
			default:
				return renderRolesTable([]cloudflare.Role{*role})
			}
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account ID")

	return cmd
}
