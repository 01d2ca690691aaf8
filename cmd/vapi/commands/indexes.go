package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nimbusvec/vapi/pkg/vapi"
)

// NewIndexesCommand creates the indexes command group.
func NewIndexesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "indexes",
		Aliases: []string{"index", "idx"},
		Short:   "Manage indexes",
		Long:    "List, describe, create, configure, and delete vector indexes",
	}

	cmd.AddCommand(newIndexesListCommand())
	cmd.AddCommand(newIndexesGetCommand())
	cmd.AddCommand(newIndexesCreateCommand())
	cmd.AddCommand(newIndexesCreateForModelCommand())
	cmd.AddCommand(newIndexesConfigureCommand())
	cmd.AddCommand(newIndexesDeleteCommand())

	return cmd
}

func newIndexesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List indexes",
		Long:  "List all indexes in the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			list, err := client.Indexes().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list indexes: %w", err)
			}

			return outputIndexes(list.Indexes)
		},
	}
}

func outputIndexes(indexes []vapi.Index) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(indexes)
	case OutputFormatYAML:
		return StandardYAMLRenderer(indexes)
	default:
		return renderIndexTable(indexes)
	}
}

func renderIndexTable(indexes []vapi.Index) error {
	if len(indexes) == 0 {
		_, _ = os.Stdout.WriteString("No indexes found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Dimension", "Metric", "State", "Host")

	for _, index := range indexes {
		_ = table.Append(index.Name,
			strconv.Itoa(int(index.Dimension)),
			string(index.Metric),
			orDash(index.Status.State),
			orDash(index.Host))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newIndexesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INDEX_NAME",
		Short: "Describe an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			index, err := client.Indexes().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to describe index: %w", err)
			}

			return outputIndexDetail(index)
		},
	}
}

func outputIndexDetail(index *vapi.Index) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(index)
	case OutputFormatYAML:
		return StandardYAMLRenderer(index)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Name", index.Name)
		_ = table.Append("Dimension", strconv.Itoa(int(index.Dimension)))
		_ = table.Append("Metric", string(index.Metric))
		_ = table.Append("State", orDash(index.Status.State))
		_ = table.Append("Ready", strconv.FormatBool(index.Status.Ready))
		_ = table.Append("Host", orDash(index.Host))
		_ = table.Append("Deletion Protection", orDash(index.DeletionProtection))

		if index.Spec.Serverless != nil {
			_ = table.Append("Cloud", index.Spec.Serverless.Cloud)
			_ = table.Append("Region", index.Spec.Serverless.Region)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

//nolint:funlen // Command setup is verbose but straightforward
func newIndexesCreateCommand() *cobra.Command {
	var (
		dimension          int32
		metric             string
		cloud              string
		region             string
		deletionProtection bool
	)

	cmd := &cobra.Command{
		Use:   "create INDEX_NAME",
		Short: "Create a serverless index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &vapi.IndexCreateRequest{
				Name:      args[0],
				Dimension: dimension,
				Metric:    vapi.Metric(metric),
				Spec: vapi.IndexSpec{
					Serverless: &vapi.ServerlessSpec{
						Cloud:  cloud,
						Region: region,
					},
				},
			}

			if deletionProtection {
				request.DeletionProtection = "enabled"
			}

			index, err := client.Indexes().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Index %s created (state: %s)\n", index.Name, index.Status.State)

			return nil
		},
	}

	cmd.Flags().Int32Var(&dimension, "dimension", 0, "vector dimension")
	cmd.Flags().StringVar(&metric, "metric", string(vapi.MetricCosine), "similarity metric (cosine, euclidean, dotproduct)")
	cmd.Flags().StringVar(&cloud, "cloud", "aws", "cloud provider")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "cloud region")
	cmd.Flags().BoolVar(&deletionProtection, "deletion-protection", false, "protect the index from deletion")
	_ = cmd.MarkFlagRequired("dimension")

	return cmd
}

func newIndexesCreateForModelCommand() *cobra.Command {
	var (
		model     string
		cloud     string
		region    string
		textField string
	)

	cmd := &cobra.Command{
		Use:   "create-for-model INDEX_NAME",
		Short: "Create an index sized for a hosted embedding model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &vapi.IndexCreateForModelRequest{
				Name:   args[0],
				Cloud:  cloud,
				Region: region,
				Embed: vapi.IndexEmbedConfig{
					Model:    model,
					FieldMap: map[string]string{"text": textField},
				},
			}

			index, err := client.Indexes().CreateForModel(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create index for model: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Index %s created for model %s (dimension: %d)\n",
				index.Name, model, index.Dimension)

			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "hosted embedding model")
	cmd.Flags().StringVar(&cloud, "cloud", "aws", "cloud provider")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "cloud region")
	cmd.Flags().StringVar(&textField, "text-field", "text", "record field holding the text to embed")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func newIndexesConfigureCommand() *cobra.Command {
	var (
		deletionProtection string
		replicas           int
		podType            string
	)

	cmd := &cobra.Command{
		Use:   "configure INDEX_NAME",
		Short: "Change mutable index settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &vapi.IndexConfigureRequest{
				DeletionProtection: deletionProtection,
			}

			if replicas > 0 || podType != "" {
				request.Spec = &vapi.IndexConfigureSpec{
					Pod: &vapi.PodConfigureSpec{
						Replicas: replicas,
						PodType:  podType,
					},
				}
			}

			index, err := client.Indexes().Configure(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to configure index: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Index %s configured\n", index.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&deletionProtection, "deletion-protection", "", "deletion protection (enabled, disabled)")
	cmd.Flags().IntVar(&replicas, "replicas", 0, "pod replicas (pod-based indexes)")
	cmd.Flags().StringVar(&podType, "pod-type", "", "pod type (pod-based indexes)")

	return cmd
}

func newIndexesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete INDEX_NAME",
		Short: "Delete an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprintf(os.Stdout, "Really delete index %s? (y/N): ", args[0])

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

			err = client.Indexes().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete index: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Index %s deleted\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
