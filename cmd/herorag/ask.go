package herorag

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soundprediction/herorag"
	"github.com/soundprediction/herorag/pkg/answer"
	"github.com/soundprediction/herorag/pkg/config"
	"github.com/soundprediction/herorag/pkg/types"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question and print the answer",
	Long: `Ask a question against the superhero dataset.

The --mode flag selects the retrieval strategy: "traditional" scores
documents by keyword overlap, "graph" queries the knowledge graph for
entities and relationships. Use --mock to answer from a canned
responder instead of a live LLM backend.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

var (
	askMode string
	askTopK int
	askMock bool
)

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askMode, "mode", "traditional", "retrieval mode (traditional, graph)")
	askCmd.Flags().IntVar(&askTopK, "top-k", 0, "number of documents to retrieve (traditional mode)")
	askCmd.Flags().BoolVar(&askMock, "mock", false, "use the mock responder instead of a live backend")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := &herorag.Options{}
	if askMock {
		opts.Backend = answer.NewMockClient()
	}

	client, err := herorag.New(cfg, opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer client.Close(ctx)

	query := args[0]
	var got types.Answer

	switch types.Mode(askMode) {
	case types.ModeGraph:
		if err := client.Seed(ctx); err != nil {
			return err
		}
		got, err = client.AnswerGraph(ctx, query)
		if err != nil {
			return err
		}
	case types.ModeTraditional:
		got = client.AnswerTraditional(ctx, query, askTopK)
	default:
		return fmt.Errorf("unknown mode %q: expected traditional or graph", askMode)
	}

	printAnswer(got)
	return nil
}

func printAnswer(got types.Answer) {
	fmt.Printf("Answer (%s):\n%s\n", got.Method, got.Text)
	if len(got.Retrieved) > 0 {
		fmt.Println("\nRetrieved context:")
		for _, item := range got.Retrieved {
			fmt.Println("  " + item.ContextLine())
		}
	}
}
