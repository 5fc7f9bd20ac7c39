package herorag

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soundprediction/herorag"
	"github.com/soundprediction/herorag/pkg/config"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Clear the knowledge graph and recreate the superhero dataset",
	Long: `Seed clears the configured graph store and recreates the fixed
superhero dataset: the heroes, the Justice League team node, and the
TEAMMATE, ALLY, and MEMBER_OF relationships between them. Run it once
before serving or asking in graph mode against a live Neo4j instance.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := herorag.New(cfg, nil)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer client.Close(ctx)

	if err := client.Seed(ctx); err != nil {
		return err
	}

	export, err := client.ExportGraph(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Graph seeded: %d nodes, %d relationships\n", len(export.Nodes), len(export.Relationships))
	return nil
}
