package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nimbusvec/vapi/pkg/vapi"
)

// NewInferenceCommand creates the inference command group.
func NewInferenceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inference",
		Aliases: []string{"infer"},
		Short:   "Use hosted inference models",
		Long:    "Embed texts, rerank documents, and inspect the hosted model catalog",
	}

	cmd.AddCommand(newInferenceEmbedCommand())
	cmd.AddCommand(newInferenceRerankCommand())
	cmd.AddCommand(newInferenceModelsCommand())

	return cmd
}

func newInferenceEmbedCommand() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "embed TEXT [TEXT...]",
		Short: "Embed texts with a hosted model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			inputs := make([]vapi.EmbedInput, 0, len(args))
			for _, text := range args {
				inputs = append(inputs, vapi.EmbedInput{Text: text})
			}

			result, err := client.Inference().Embed(context.Background(), &vapi.EmbedRequest{
				Model:  model,
				Inputs: inputs,
			})
			if err != nil {
				return fmt.Errorf("failed to embed inputs: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return StandardYAMLRenderer(result)
			default:
				return StandardJSONRenderer(result)
			}
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "hosted embedding model")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

//nolint:funlen // Command setup is verbose but straightforward
func newInferenceRerankCommand() *cobra.Command {
	var (
		model string
		query string
		topN  int
	)

	cmd := &cobra.Command{
		Use:   "rerank DOCUMENT [DOCUMENT...]",
		Short: "Rerank documents against a query",
		Long:  "Rank plain-text documents by relevance to the query, most relevant first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			documents := make([]vapi.Document, 0, len(args))
			for _, text := range args {
				documents = append(documents, vapi.Document{"text": text})
			}

			request := &vapi.RerankRequest{
				Model:     model,
				Query:     query,
				Documents: documents,
			}

			if topN > 0 {
				request.TopN = &topN
			}

			result, err := client.Inference().Rerank(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to rerank documents: %w", err)
			}

			return outputRankedDocuments(result)
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "hosted rerank model")
	cmd.Flags().StringVar(&query, "query", "", "query to rank against")
	cmd.Flags().IntVar(&topN, "top-n", 0, "return only the n best documents")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

func outputRankedDocuments(result *vapi.RerankResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(result)
	case OutputFormatYAML:
		return StandardYAMLRenderer(result)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Rank", "Input Index", "Score", "Document")

		for rank, doc := range result.Data {
			text := NotAvailable

			if doc.Document != nil {
				if data, err := json.Marshal(doc.Document); err == nil {
					text = string(data)
				}
			}

			_ = table.Append(strconv.Itoa(rank+1),
				strconv.Itoa(doc.Index),
				strconv.FormatFloat(float64(doc.Score), 'f', 4, 32),
				text)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newInferenceModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models [MODEL]",
		Short: "List or describe hosted models",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				info, err := client.Inference().GetModel(context.Background(), args[0])
				if err != nil {
					return fmt.Errorf("failed to describe model: %w", err)
				}

				return outputModelDetail(info)
			}

			list, err := client.Inference().ListModels(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list models: %w", err)
			}

			return outputModels(list.Models)
		},
	}

	return cmd
}

func outputModels(models []vapi.ModelInfo) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(models)
	case OutputFormatYAML:
		return StandardYAMLRenderer(models)
	default:
		if len(models) == 0 {
			_, _ = os.Stdout.WriteString("No models found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Model", "Type", "Vector Type", "Dimension", "Max Batch")

		for _, model := range models {
			dimension := NotAvailable
			if model.DefaultDimension > 0 {
				dimension = strconv.Itoa(int(model.DefaultDimension))
			}

			_ = table.Append(model.Model,
				model.Type,
				orDash(model.VectorType),
				dimension,
				strconv.Itoa(model.MaxBatchSize))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func outputModelDetail(info *vapi.ModelInfo) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(info)
	case OutputFormatYAML:
		return StandardYAMLRenderer(info)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Model", info.Model)
		_ = table.Append("Type", info.Type)
		_ = table.Append("Vector Type", orDash(info.VectorType))
		_ = table.Append("Modality", orDash(info.Modality))
		_ = table.Append("Default Dimension", strconv.Itoa(int(info.DefaultDimension)))
		_ = table.Append("Max Batch Size", strconv.Itoa(info.MaxBatchSize))
		_ = table.Append("Max Sequence Length", strconv.Itoa(info.MaxSequenceLength))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
