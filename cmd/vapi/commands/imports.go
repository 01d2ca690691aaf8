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

// NewImportsCommand creates the imports command group.
func NewImportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "imports",
		Aliases: []string{"import"},
		Short:   "Manage bulk imports",
		Long:    "Start, list, describe, and cancel bulk imports from object storage",
	}

	cmd.AddCommand(newImportsStartCommand())
	cmd.AddCommand(newImportsListCommand())
	cmd.AddCommand(newImportsGetCommand())
	cmd.AddCommand(newImportsCancelCommand())

	return cmd
}

func newImportsStartCommand() *cobra.Command {
	var (
		uri     string
		onError string
	)

	cmd := &cobra.Command{
		Use:   "start INDEX_NAME",
		Short: "Start a bulk import",
		Long:  "Start an asynchronous import of vectors from an object-storage URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &vapi.StartImportRequest{URI: uri}
			if onError != "" {
				request.ErrorMode = &vapi.ImportErrorMode{OnError: onError}
			}

			result, err := client.Imports().Start(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to start import: %w", err)
			}

			if result.ID != "" {
				fmt.Fprintf(os.Stdout, "Import %s started\n", result.ID)
			} else {
				_, _ = os.Stdout.WriteString("Import accepted\n")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", "object-storage URI with the records to import")
	cmd.Flags().StringVar(&onError, "on-error", "", "bad-record handling (abort, continue)")
	_ = cmd.MarkFlagRequired("uri")

	return cmd
}

func newImportsListCommand() *cobra.Command {
	var (
		limit int
		token string
	)

	cmd := &cobra.Command{
		Use:   "list INDEX_NAME",
		Short: "List imports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParamsFromFlags(limit, token, "", "")

			list, err := client.Imports().List(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list imports: %w", err)
			}

			return outputImports(list)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "page size")
	cmd.Flags().StringVar(&token, "token", "", "continuation token from a previous page")

	return cmd
}

func outputImports(list *vapi.ImportList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(list.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(list.Data)
	default:
		if len(list.Data) == 0 {
			_, _ = os.Stdout.WriteString("No imports found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Import ID", "Status", "Progress", "Records", "URI")

		for _, imp := range list.Data {
			_ = table.Append(imp.ID,
				string(imp.Status),
				strconv.FormatFloat(float64(imp.PercentComplete), 'f', 1, 32)+"%",
				strconv.FormatInt(imp.RecordsImported, 10),
				orDash(imp.URI))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		printNextToken(list.Pagination)

		return nil
	}
}

func newImportsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INDEX_NAME IMPORT_ID",
		Short: "Describe an import",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			imp, err := client.Imports().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to describe import: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(imp)
			case OutputFormatYAML:
				return StandardYAMLRenderer(imp)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Import ID", imp.ID)
				_ = table.Append("URI", orDash(imp.URI))
				_ = table.Append("Status", string(imp.Status))
				_ = table.Append("Progress", strconv.FormatFloat(float64(imp.PercentComplete), 'f', 1, 32)+"%")
				_ = table.Append("Records", strconv.FormatInt(imp.RecordsImported, 10))
				_ = table.Append("Error", orDash(imp.Error))
				_ = table.Append("Created", orDash(imp.CreatedAt))
				_ = table.Append("Finished", orDash(imp.FinishedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newImportsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel INDEX_NAME IMPORT_ID",
		Short: "Cancel an import that has not finished",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Imports().Cancel(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to cancel import: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Import %s cancelled\n", args[1])

			return nil
		},
	}
}
