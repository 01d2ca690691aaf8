package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nimbusvec/vapi/internal/constants"
	"github.com/nimbusvec/vapi/pkg/vapi"
)

// NewBackupsCommand creates the backups command group.
func NewBackupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "backups",
		Aliases: []string{"backup"},
		Short:   "Manage index backups",
		Long:    "Create, list, describe, and delete point-in-time index backups",
	}

	cmd.AddCommand(newBackupsCreateCommand())
	cmd.AddCommand(newBackupsListCommand())
	cmd.AddCommand(newBackupsGetCommand())
	cmd.AddCommand(newBackupsDeleteCommand())

	return cmd
}

func newBackupsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create INDEX_NAME",
		Short: "Snapshot an index into a new backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &vapi.BackupCreateRequest{
				Name:        name,
				Description: description,
			}

			backup, err := client.Backups().Create(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to create backup: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Backup %s created (status: %s)\n", backup.BackupID, backup.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "backup name")
	cmd.Flags().StringVar(&description, "description", "", "backup description")

	return cmd
}

func newBackupsListCommand() *cobra.Command {
	var (
		indexName string
		limit     int
		token     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backups",
		Long:  "List backups in the project, or of one index with --index",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParamsFromFlags(limit, token, "", "")

			var list *vapi.BackupList

			if indexName != "" {
				list, err = client.Backups().ListForIndex(context.Background(), indexName, params)
			} else {
				list, err = client.Backups().List(context.Background(), params)
			}

			if err != nil {
				return fmt.Errorf("failed to list backups: %w", err)
			}

			return outputBackups(list)
		},
	}

	cmd.Flags().StringVar(&indexName, "index", "", "list backups of this index only")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "page size")
	cmd.Flags().StringVar(&token, "token", "", "continuation token from a previous page")

	return cmd
}

func outputBackups(list *vapi.BackupList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(list.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(list.Data)
	default:
		if len(list.Data) == 0 {
			_, _ = os.Stdout.WriteString("No backups found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Backup ID", "Source Index", "Status", "Records", "Created")

		for _, backup := range list.Data {
			_ = table.Append(backup.BackupID,
				backup.SourceIndexName,
				backup.Status,
				strconv.FormatInt(backup.RecordCount, 10),
				orDash(backup.CreatedAt))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		printNextToken(list.Pagination)

		return nil
	}
}

func newBackupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BACKUP_ID",
		Short: "Describe a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			backup, err := client.Backups().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to describe backup: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(backup)
			case OutputFormatYAML:
				return StandardYAMLRenderer(backup)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Backup ID", backup.BackupID)
				_ = table.Append("Source Index", backup.SourceIndexName)
				_ = table.Append("Name", orDash(backup.Name))
				_ = table.Append("Status", backup.Status)
				_ = table.Append("Records", strconv.FormatInt(backup.RecordCount, 10))
				_ = table.Append("Namespaces", strconv.FormatInt(backup.NamespaceCount, 10))
				_ = table.Append("Size (bytes)", strconv.FormatInt(backup.SizeBytes, 10))
				_ = table.Append("Created", orDash(backup.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newBackupsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BACKUP_ID",
		Short: "Delete a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprintf(os.Stdout, "Really delete backup %s? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)

				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Backups().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete backup: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Backup %s deleted\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
