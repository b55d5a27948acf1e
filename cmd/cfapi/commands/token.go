package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTokenCommand creates the token command group.
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect the configured API token",
	}

	cmd.AddCommand(newTokenVerifyCommand())

	return cmd
}

func newTokenVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify the API token",
		Long:  "Check the configured token against the API and report its status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			verification, err := client.VerifyToken(context.Background())
			if err != nil {
				return fmt.Errorf("failed to verify token: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(verification)
			case OutputFormatYAML:
				return renderYAML(verification)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", verification.ID)
				_ = table.Append("Status", verification.Status)
				_ = table.Append("Not Before", formatTime(verification.NotBefore))
				_ = table.Append("Expires On", formatTime(verification.ExpiresOn))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
