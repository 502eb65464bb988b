// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bioatlas/internal/graph"
	"github.com/pdiddy/bioatlas/pkg/types"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build and query the paper similarity graph",
	Long: `Graph builds the weighted title-similarity graph from the corpus store,
detects topical communities, and persists the artifact as JSON. The
filter and neighbors subcommands answer structural queries against a
previously built artifact.`,
}

// --- build subcommand ---

var graphBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the similarity graph artifact from the corpus",
	Long: `Build vectorizes every paper title with TF-IDF, links pairs whose
cosine similarity exceeds the threshold, assigns communities by greedy
modularity maximization, and writes the artifact. The write is atomic: a
failed build leaves any previously built artifact untouched.`,
	RunE: runGraphBuild,
}

func runGraphBuild(cmd *cobra.Command, args []string) error {
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	maxFeatures, _ := cmd.Flags().GetInt("max-features")
	out, _ := cmd.Flags().GetString("out")
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold %v out of range [0,1]", threshold)
	}

	store, err := openCorpusStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.Load(context.Background())
	if err != nil {
		return err
	}

	g, err := graph.Build(papers, threshold, maxFeatures)
	if err != nil {
		return err
	}

	assignment, err := graph.DetectCommunities(g)
	if err != nil {
		return err
	}
	communities := make(map[int]bool, len(assignment))
	for _, c := range assignment {
		communities[c] = true
	}

	if err := graph.Save(g, out); err != nil {
		return err
	}

	fmt.Printf("nodes: %d\nedges: %d\ncommunities: %d\nwrote %s\n",
		len(g.Nodes), len(g.Links), len(communities), out)
	return nil
}

// --- filter subcommand ---

var graphFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the induced subgraph for a topic",
	Long: `Filter loads the graph artifact and prints the induced subgraph over
papers labeled with the given topic: only edges whose both endpoints
carry the topic survive.`,
	RunE: runGraphFilter,
}

func runGraphFilter(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" {
		return fmt.Errorf("topic required: use --topic")
	}

	g, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	sub := graph.SubgraphForTopic(g, topic)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sub)
}

// --- neighbors subcommand ---

var graphNeighborsCmd = &cobra.Command{
	Use:   "neighbors",
	Short: "List the papers most similar to a given paper",
	RunE:  runGraphNeighbors,
}

func runGraphNeighbors(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("id")
	limit, _ := cmd.Flags().GetInt("limit")

	g, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	nodes, err := graph.Neighbors(g, id, limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	}

	if center, ok := g.Node(id); ok {
		fmt.Printf("Neighbors of %d: %s\n", center.ID, center.Title)
	}
	if len(nodes) == 0 {
		fmt.Println("No neighbors.")
		return nil
	}
	for _, n := range nodes {
		title := n.Title
		if len(title) > 70 {
			title = title[:67] + "..."
		}
		fmt.Printf("%-6d  c%-3d  %s\n", n.ID, n.Community, title)
	}
	return nil
}

// --- shared helpers ---

func loadArtifact(cmd *cobra.Command) (*types.Graph, error) {
	path, _ := cmd.Flags().GetString("artifact")
	return graph.LoadGraph(path)
}

func init() {
	graphBuildCmd.Flags().Float64("threshold", 0.3, "minimum cosine similarity for an edge (exclusive)")
	graphBuildCmd.Flags().Int("max-features", 100, "TF-IDF vocabulary size")
	graphBuildCmd.Flags().String("out", "graph_data.json", "output path for the graph artifact")

	graphFilterCmd.Flags().String("artifact", "graph_data.json", "path to the graph artifact")
	graphFilterCmd.Flags().String("topic", "", "topic label to filter by")

	graphNeighborsCmd.Flags().String("artifact", "graph_data.json", "path to the graph artifact")
	graphNeighborsCmd.Flags().Int("id", 0, "paper id")
	graphNeighborsCmd.Flags().Int("limit", 5, "maximum neighbors to list (0 = all)")
	graphNeighborsCmd.Flags().Bool("json", false, "output neighbors as JSON")

	graphCmd.AddCommand(graphBuildCmd)
	graphCmd.AddCommand(graphFilterCmd)
	graphCmd.AddCommand(graphNeighborsCmd)

	rootCmd.AddCommand(graphCmd)
}
