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

	"github.com/nimbusvec/vapi/internal/constants"
	"github.com/nimbusvec/vapi/pkg/vapi"
)

// NewVectorsCommand creates the vectors command group.
func NewVectorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vectors",
		Aliases: []string{"vector", "vec"},
		Short:   "Work with vectors",
		Long:    "Upsert, query, fetch, update, delete, and list vectors in an index",
	}

	cmd.AddCommand(newVectorsUpsertCommand())
	cmd.AddCommand(newVectorsQueryCommand())
	cmd.AddCommand(newVectorsFetchCommand())
	cmd.AddCommand(newVectorsUpdateCommand())
	cmd.AddCommand(newVectorsDeleteCommand())
	cmd.AddCommand(newVectorsListCommand())
	cmd.AddCommand(newVectorsStatsCommand())

	return cmd
}

//nolint:funlen // Command setup is verbose but straightforward
func newVectorsUpsertCommand() *cobra.Command {
	var (
		namespace string
		id        string
		values    string
		metadata  string
		fromFile  string
	)

	cmd := &cobra.Command{
		Use:   "upsert INDEX_NAME",
		Short: "Upsert vectors",
		Long:  "Write vectors into a namespace, from flags or a JSON file of records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &vapi.UpsertRequest{Namespace: namespace}

			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("reading vectors file: %w", err)
				}

				if err := json.Unmarshal(data, &request.Vectors); err != nil {
					return fmt.Errorf("parsing vectors file: %w", err)
				}
			} else {
				vector, err := vectorFromFlags(id, values, metadata)
				if err != nil {
					return err
				}

				request.Vectors = []vapi.Vector{*vector}
			}

			result, err := client.Vectors().Upsert(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to upsert vectors: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Upserted %d vectors\n", result.UpsertedCount)

			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "target namespace")
	cmd.Flags().StringVar(&id, "id", "", "vector id")
	cmd.Flags().StringVar(&values, "values", "", "comma-separated vector values")
	cmd.Flags().StringVar(&metadata, "metadata", "", "vector metadata as a JSON object")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "JSON file with an array of vectors")

	return cmd
}

func vectorFromFlags(id, values, metadata string) (*vapi.Vector, error) {
	if values == "" {
		return nil, ErrValuesRequired
	}

	parsed, err := parseValues(values)
	if err != nil {
		return nil, err
	}

	meta, err := parseMetadata(metadata)
	if err != nil {
		return nil, err
	}

	return &vapi.Vector{ID: id, Values: parsed, Metadata: meta}, nil
}

//nolint:funlen // Command setup is verbose but straightforward
func newVectorsQueryCommand() *cobra.Command {
	var (
		namespace       string
		values          string
		vectorID        string
		topK            int
		filter          string
		includeValues   bool
		includeMetadata bool
	)

	cmd := &cobra.Command{
		Use:   "query INDEX_NAME",
		Short: "Query vectors by similarity",
		Long:  "Rank stored vectors against a query vector or an existing vector id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			vector, err := parseValues(values)
			if err != nil {
				return err
			}

			parsedFilter, err := parseFilter(filter)
			if err != nil {
				return err
			}

			request := &vapi.QueryRequest{
				Namespace:       namespace,
				TopK:            topK,
				Vector:          vector,
				ID:              vectorID,
				Filter:          parsedFilter,
				IncludeValues:   includeValues,
				IncludeMetadata: includeMetadata,
			}

			result, err := client.Vectors().Query(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to query vectors: %w", err)
			}

			return outputMatches(result)
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace to query")
	cmd.Flags().StringVar(&values, "values", "", "comma-separated query vector")
	cmd.Flags().StringVar(&vectorID, "id", "", "query by an existing vector id instead of values")
	cmd.Flags().IntVar(&topK, "top-k", constants.DefaultTopK, "number of matches to return")
	cmd.Flags().StringVar(&filter, "filter", "", "metadata filter as a JSON object")
	cmd.Flags().BoolVar(&includeValues, "include-values", false, "include vector values in matches")
	cmd.Flags().BoolVar(&includeMetadata, "include-metadata", false, "include metadata in matches")

	return cmd
}

func outputMatches(result *vapi.QueryResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(result)
	case OutputFormatYAML:
		return StandardYAMLRenderer(result)
	default:
		if len(result.Matches) == 0 {
			_, _ = os.Stdout.WriteString("No matches found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Score", "Metadata")

		for _, match := range result.Matches {
			metadata := NotAvailable
			if len(match.Metadata) > 0 {
				data, err := json.Marshal(match.Metadata)
				if err == nil {
					metadata = string(data)
				}
			}

			_ = table.Append(match.ID, strconv.FormatFloat(float64(match.Score), 'f', 4, 32), metadata)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newVectorsFetchCommand() *cobra.Command {
	var (
		namespace string
		ids       []string
	)

	cmd := &cobra.Command{
		Use:   "fetch INDEX_NAME",
		Short: "Fetch vectors by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(ids) == 0 {
				return ErrVectorIDsRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Vectors().Fetch(context.Background(), args[0], ids, namespace)
			if err != nil {
				return fmt.Errorf("failed to fetch vectors: %w", err)
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

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace to fetch from")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "vector id (repeatable)")

	return cmd
}

func newVectorsUpdateCommand() *cobra.Command {
	var (
		namespace string
		id        string
		values    string
		metadata  string
	)

	cmd := &cobra.Command{
		Use:   "update INDEX_NAME",
		Short: "Update one vector in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			parsed, err := parseValues(values)
			if err != nil {
				return err
			}

			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			request := &vapi.UpdateRequest{
				ID:          id,
				Values:      parsed,
				SetMetadata: meta,
				Namespace:   namespace,
			}

			err = client.Vectors().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update vector: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Vector %s updated\n", id)

			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace of the vector")
	cmd.Flags().StringVar(&id, "id", "", "vector id")
	cmd.Flags().StringVar(&values, "values", "", "replacement values, comma-separated")
	cmd.Flags().StringVar(&metadata, "metadata", "", "metadata patch as a JSON object")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newVectorsDeleteCommand() *cobra.Command {
	var (
		namespace string
		ids       []string
		filter    string
		deleteAll bool
	)

	cmd := &cobra.Command{
		Use:   "delete INDEX_NAME",
		Short: "Delete vectors",
		Long:  "Delete vectors by id, by metadata filter, or wholesale within a namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			parsedFilter, err := parseFilter(filter)
			if err != nil {
				return err
			}

			request := &vapi.DeleteRequest{
				IDs:       ids,
				DeleteAll: deleteAll,
				Namespace: namespace,
				Filter:    parsedFilter,
			}

			err = client.Vectors().Delete(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to delete vectors: %w", err)
			}

			_, _ = os.Stdout.WriteString("Vectors deleted\n")

			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace to delete from")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "vector id (repeatable)")
	cmd.Flags().StringVar(&filter, "filter", "", "metadata filter as a JSON object")
	cmd.Flags().BoolVar(&deleteAll, "all", false, "delete every vector in the namespace")

	return cmd
}

func newVectorsListCommand() *cobra.Command {
	var (
		namespace string
		prefix    string
		limit     int
		token     string
	)

	cmd := &cobra.Command{
		Use:   "list INDEX_NAME",
		Short: "List vector ids",
		Long:  "Page through the vector ids of a namespace, optionally by id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := listParamsFromFlags(limit, token, prefix, namespace)

			result, err := client.Vectors().ListIDs(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list vector ids: %w", err)
			}

			return outputVectorIDs(result)
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace to list")
	cmd.Flags().StringVar(&prefix, "prefix", "", "id prefix filter")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "page size")
	cmd.Flags().StringVar(&token, "token", "", "continuation token from a previous page")

	return cmd
}

func outputVectorIDs(result *vapi.ListVectorsResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(result)
	case OutputFormatYAML:
		return StandardYAMLRenderer(result)
	default:
		if len(result.Vectors) == 0 {
			_, _ = os.Stdout.WriteString("No vectors found\n")

			return nil
		}

		for _, vector := range result.Vectors {
			fmt.Fprintln(os.Stdout, vector.ID)
		}

		printNextToken(result.Pagination)

		return nil
	}
}

func newVectorsStatsCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "stats INDEX_NAME",
		Short: "Show index statistics",
		Long:  "Aggregate vector counts per namespace, optionally narrowed by a metadata filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			parsedFilter, err := parseFilter(filter)
			if err != nil {
				return err
			}

			stats, err := client.Vectors().DescribeStats(context.Background(), args[0], parsedFilter)
			if err != nil {
				return fmt.Errorf("failed to describe index stats: %w", err)
			}

			return outputStats(stats)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "metadata filter as a JSON object")

	return cmd
}

func outputStats(stats *vapi.IndexStats) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(stats)
	case OutputFormatYAML:
		return StandardYAMLRenderer(stats)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Namespace", "Vector Count")

		for name, summary := range stats.Namespaces {
			_ = table.Append(name, strconv.FormatInt(summary.VectorCount, 10))
		}

		_ = table.Append("(total)", strconv.FormatInt(stats.TotalVectorCount, 10))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
