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

// NewNamespacesCommand creates the namespaces command group.
func NewNamespacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "namespaces",
		Aliases: []string{"namespace", "ns"},
		Short:   "Manage namespaces",
		Long:    "List, describe, and delete namespaces within an index",
	}

	cmd.AddCommand(newNamespacesListCommand())
	cmd.AddCommand(newNamespacesGetCommand())
	cmd.AddCommand(newNamespacesDeleteCommand())

	return cmd
}

func newNamespacesListCommand() *cobra.Command {
	var (
		limit int
		token string
	)

	cmd := &cobra.Command{
		Use:   "list INDEX_NAME",
		Short: "List namespaces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParamsFromFlags(limit, token, "", "")

			list, err := client.Namespaces().List(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list namespaces: %w", err)
			}

			return outputNamespaces(list)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "page size")
	cmd.Flags().StringVar(&token, "token", "", "continuation token from a previous page")

	return cmd
}

func outputNamespaces(list *vapi.NamespaceList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(list.Namespaces)
	case OutputFormatYAML:
		return StandardYAMLRenderer(list.Namespaces)
	default:
		if len(list.Namespaces) == 0 {
			_, _ = os.Stdout.WriteString("No namespaces found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Record Count")

		for _, namespace := range list.Namespaces {
			_ = table.Append(namespace.Name, strconv.FormatInt(namespace.RecordCount, 10))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		printNextToken(list.Pagination)

		return nil
	}
}

func newNamespacesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INDEX_NAME NAMESPACE",
		Short: "Describe a namespace",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			desc, err := client.Namespaces().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to describe namespace: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(desc)
			case OutputFormatYAML:
				return StandardYAMLRenderer(desc)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Name", desc.Name)
				_ = table.Append("Record Count", strconv.FormatInt(desc.RecordCount, 10))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newNamespacesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete INDEX_NAME NAMESPACE",
		Short: "Delete a namespace and every vector in it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprintf(os.Stdout, "Really delete namespace %s in index %s? (y/N): ", args[1], args[0])

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

			err = client.Namespaces().Delete(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete namespace: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Namespace %s deleted\n", args[1])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
