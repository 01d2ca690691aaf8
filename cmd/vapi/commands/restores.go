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

// NewRestoresCommand creates the restores command group.
func NewRestoresCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restores",
		Aliases: []string{"restore", "restore-jobs"},
		Short:   "Restore indexes from backups",
		Long:    "Start restore jobs from backups and track their progress",
	}

	cmd.AddCommand(newRestoresCreateCommand())
	cmd.AddCommand(newRestoresListCommand())
	cmd.AddCommand(newRestoresGetCommand())

	return cmd
}

func newRestoresCreateCommand() *cobra.Command {
	var indexName string

	cmd := &cobra.Command{
		Use:   "create BACKUP_ID",
		Short: "Restore a backup into a new index",
		Long:  "Start an asynchronous restore job building a new index from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &vapi.CreateIndexFromBackupRequest{Name: indexName}

			result, err := client.Restores().CreateIndexFromBackup(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to create index from backup: %w", err)
			}

			if result.RestoreJobID != "" {
				fmt.Fprintf(os.Stdout, "Restore job %s started for index %s\n",
					result.RestoreJobID, result.IndexName)
			} else {
				_, _ = os.Stdout.WriteString("Restore accepted\n")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&indexName, "name", "", "name of the index to create")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRestoresListCommand() *cobra.Command {
	var (
		limit int
		token string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List restore jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParamsFromFlags(limit, token, "", "")

			list, err := client.Restores().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list restore jobs: %w", err)
			}

			return outputRestoreJobs(list)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "page size")
	cmd.Flags().StringVar(&token, "token", "", "continuation token from a previous page")

	return cmd
}

func outputRestoreJobs(list *vapi.RestoreJobList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(list.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(list.Data)
	default:
		if len(list.Data) == 0 {
			_, _ = os.Stdout.WriteString("No restore jobs found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Job ID", "Backup ID", "Target Index", "Status", "Progress")

		for _, job := range list.Data {
			_ = table.Append(job.RestoreJobID,
				job.BackupID,
				job.TargetIndexName,
				job.Status,
				strconv.FormatFloat(float64(job.PercentComplete), 'f', 1, 32)+"%")
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		printNextToken(list.Pagination)

		return nil
	}
}

func newRestoresGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get RESTORE_JOB_ID",
		Short: "Describe a restore job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			job, err := client.Restores().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to describe restore job: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(job)
			case OutputFormatYAML:
				return StandardYAMLRenderer(job)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Job ID", job.RestoreJobID)
				_ = table.Append("Backup ID", job.BackupID)
				_ = table.Append("Target Index", job.TargetIndexName)
				_ = table.Append("Status", job.Status)
				_ = table.Append("Progress", strconv.FormatFloat(float64(job.PercentComplete), 'f', 1, 32)+"%")
				_ = table.Append("Created", orDash(job.CreatedAt))
				_ = table.Append("Completed", orDash(job.CompletedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
