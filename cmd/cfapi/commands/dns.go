package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alos-no/cloudflare-client/internal/constants"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// NewDNSCommand creates the dns command group.
func NewDNSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records",
		Long:  "List, create, update, and delete DNS records within a zone",
	}

	cmd.AddCommand(newDNSListCommand())
	cmd.AddCommand(newDNSGetCommand())
	cmd.AddCommand(newDNSCreateCommand())
	cmd.AddCommand(newDNSUpdateCommand())
	cmd.AddCommand(newDNSDeleteCommand())
	cmd.AddCommand(newDNSExportCommand())
	cmd.AddCommand(newDNSImportCommand())

	return cmd
}

//nolint:funlen // Command constructors enumerate their flags inline
func newDNSListCommand() *cobra.Command {
	var (
		allPages   bool
		perPage    int
		recordType string
		name       string
		content    string
		search     string
		match      string
		proxied    bool
	)

	cmd := &cobra.Command{
		Use:   "list ZONE_ID",
		Short: "List DNS records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			opts := cloudflare.NewListOptions().WithPerPage(perPage)
			if recordType != "" {
				opts = opts.WithType(recordType)
			}

			if name != "" {
				opts = opts.WithName(name)
			}

			if content != "" {
				opts = opts.WithContent(content)
			}

			if search != "" {
				opts = opts.WithSearch(search)
			}

			if match != "" {
				opts = opts.WithMatch(match)
			}

			if cmd.Flags().Changed("proxied") {
				opts = opts.WithProxied(proxied)
			}

			records, err := listDNSRecords(ctx, client, args[0], opts, allPages)
			if err != nil {
				return err
			}

			return renderDNSRecords(records)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all-pages", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "number of results per page")
	cmd.Flags().StringVar(&recordType, "type", "", "filter by record type")
	cmd.Flags().StringVar(&name, "name", "", "filter by record name")
	cmd.Flags().StringVar(&content, "content", "", "filter by record content")
	cmd.Flags().StringVar(&search, "search", "", "free-text search")
	cmd.Flags().StringVar(&match, "match", "", "whether all or any filters must match")
	cmd.Flags().BoolVar(&proxied, "proxied", false, "filter by proxy status")

	return cmd
}

func listDNSRecords(ctx context.Context, client cloudflare.Client, zoneID string, opts *cloudflare.ListOptions, allPages bool) ([]cloudflare.DNSRecord, error) {
	if allPages {
		records, err := client.DNS().ListAll(ctx, zoneID, opts).All()
		if err != nil {
			return nil, fmt.Errorf("failed to list DNS records: %w", err)
		}

		return records, nil
	}

	page, err := client.DNS().List(ctx, zoneID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list DNS records: %w", err)
	}

	return page.Items, nil
}

func renderDNSRecords(records []cloudflare.DNSRecord) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(records)
	case OutputFormatYAML:
		return renderYAML(records)
	default:
		return renderDNSRecordsTable(records)
	}
}

func renderDNSRecordsTable(records []cloudflare.DNSRecord) error {
	if len(records) == 0 {
		_, _ = os.Stdout.WriteString("No DNS records found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Type", "Name", "Content", "TTL", "Proxied", "Modified")

	for _, record := range records {
		ttl := strconv.Itoa(record.TTL)
		if record.TTL == 1 {
			ttl = "auto"
		}

		_ = table.Append([]string{
			record.ID,
			string(record.Type),
			record.Name,
			record.Content,
			ttl,
			formatBool(record.Proxied),
			formatTime(record.ModifiedOn),
		})
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newDNSGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ZONE_ID RECORD_ID",
		Short: "Get DNS record details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := client.DNS().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get DNS record: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(record)
			case OutputFormatYAML:
				return renderYAML(record)
			default:
				return renderDNSRecordsTable([]cloudflare.DNSRecord{*record})
			}
		},
	}
}

//nolint:funlen // Command constructors enumerate their flags inline
func newDNSCreateCommand() *cobra.Command {
	var (
		recordType string
		name       string
		content    string
		ttl        int
		priority   int
		proxied    bool
		comment    string
		tags       []string
	)

	cmd := &cobra.Command{
		Use:   "create ZONE_ID",
		Short: "Create a DNS record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &cloudflare.DNSRecordCreateRequest{
				Type:    cloudflare.RecordType(strings.ToUpper(recordType)),
				Name:    name,
				Content: content,
				TTL:     ttl,
				Tags:    tags,
			}

			if cmd.Flags().Changed("priority") {
				request.Priority = cloudflare.Set(priority)
			}

			if cmd.Flags().Changed("proxied") {
				request.Proxied = cloudflare.Set(proxied)
			}

			if cmd.Flags().Changed("comment") {
				request.Comment = cloudflare.Set(comment)
			}

			record, err := client.DNS().Create(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to create DNS record: %w", err)
			}

			fmt.Printf("Created %s record %s (%s)\n", record.Type, record.Name, record.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&recordType, "type", "", "record type (A, AAAA, CNAME, MX, TXT, ...)")
	cmd.Flags().StringVar(&name, "name", "", "record name")
	cmd.Flags().StringVar(&content, "content", "", "record content")
	cmd.Flags().IntVar(&ttl, "ttl", 1, "time to live in seconds (1 for automatic)")
	cmd.Flags().IntVar(&priority, "priority", 0, "record priority (MX and SRV)")
	cmd.Flags().BoolVar(&proxied, "proxied", false, "proxy through the edge")
	cmd.Flags().StringVar(&comment, "comment", "", "record comment")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "record tag (repeatable)")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

//nolint:funlen // Command constructors enumerate their flags inline
func newDNSUpdateCommand() *cobra.Command {
	var (
		recordType string
		name       string
		content    string
		ttl        int
		priority   int
		proxied    bool
		comment    string
	)

	cmd := &cobra.Command{
		Use:   "update ZONE_ID RECORD_ID",
		Short: "Update a DNS record",
		Long:  "Update a DNS record; only the flags given are changed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &cloudflare.DNSRecordUpdateRequest{}

			if cmd.Flags().Changed("type") {
				request.Type = cloudflare.Set(cloudflare.RecordType(strings.ToUpper(recordType)))
			}

			if cmd.Flags().Changed("name") {
				request.Name = cloudflare.Set(name)
			}

			if cmd.Flags().Changed("content") {
				request.Content = cloudflare.Set(content)
			}

			if cmd.Flags().Changed("ttl") {
				request.TTL = cloudflare.Set(ttl)
			}

			if cmd.Flags().Changed("priority") {
				request.Priority = cloudflare.Set(priority)
			}

			if cmd.Flags().Changed("proxied") {
				request.Proxied = cloudflare.Set(proxied)
			}

			if cmd.Flags().Changed("comment") {
				request.Comment = cloudflare.Set(comment)
			}

			record, err := client.DNS().Update(context.Background(), args[0], args[1], request)
			if err != nil {
				return fmt.Errorf("failed to update DNS record: %w", err)
			}

			fmt.Printf("Updated record %s\n", record.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&recordType, "type", "", "record type")
	cmd.Flags().StringVar(&name, "name", "", "record name")
	cmd.Flags().StringVar(&content, "content", "", "record content")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "time to live in seconds")
	cmd.Flags().IntVar(&priority, "priority", 0, "record priority")
	cmd.Flags().BoolVar(&proxied, "proxied", false, "proxy through the edge")
	cmd.Flags().StringVar(&comment, "comment", "", "record comment")

	return cmd
}

func newDNSDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ZONE_ID RECORD_ID",
		Short: "Delete a DNS record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.DNS().Delete(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete DNS record: %w", err)
			}

			fmt.Printf("Deleted record %s\n", args[1])

			return nil
		},
	}
}

func newDNSExportCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export ZONE_ID",
		Short: "Export the zone as a BIND zone file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			zoneFile, err := client.DNS().Export(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to export zone: %w", err)
			}

			if outputFile == "" {
				_, _ = os.Stdout.WriteString(zoneFile)

				return nil
			}

			if err := os.WriteFile(outputFile, []byte(zoneFile), 0o644); err != nil {
				return fmt.Errorf("failed to write zone file: %w", err)
			}

			fmt.Printf("Exported zone to %s\n", outputFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "write the zone file to a path instead of stdout")

	return cmd
}

func newDNSImportCommand() *cobra.Command {
	var (
		inputFile string
		proxied   bool
	)

	cmd := &cobra.Command{
		Use:   "import ZONE_ID",
		Short: "Import records from a BIND zone file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read zone file: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.DNS().Import(context.Background(), args[0], string(data), proxied)
			if err != nil {
				return fmt.Errorf("failed to import zone: %w", err)
			}

			fmt.Printf("Parsed %d records, added %d\n", result.TotalRecordsParsed, result.RecsAdded)

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "zone file to import")
	cmd.Flags().BoolVar(&proxied, "proxied", false, "proxy imported records through the edge")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}
