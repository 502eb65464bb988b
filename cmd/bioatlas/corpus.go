// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bioatlas/internal/corpus"
	"github.com/pdiddy/bioatlas/pkg/types"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the paper corpus (ingest, export, stats)",
	Long: `Corpus maintains the SQLite store of classified papers. Use subcommands
to ingest a classified-papers JSON file, export the store, or summarize
topic and organism distributions.`,
}

// --- ingest subcommand ---

var corpusIngestCmd = &cobra.Command{
	Use:   "ingest <papers.json>",
	Short: "Load a classified-papers JSON file into the corpus store",
	Long: `Ingest reads a classified-papers JSON file and upserts every record
into the corpus database. Re-ingesting an updated file overwrites
existing records in place; a file containing the same id twice is
rejected as corrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusIngest,
}

func runCorpusIngest(cmd *cobra.Command, args []string) error {
	store, err := openCorpusStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), args[0], os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("%d paper(s) in corpus update\n", summary.Total())
	return nil
}

// --- export subcommand ---

var corpusExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the corpus store to YAML or JSON",
	RunE:  runCorpusExport,
}

func runCorpusExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openCorpusStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background()); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.yaml")
	case "json":
		if err := store.ExportJSON(context.Background()); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return nil
}

// --- stats subcommand ---

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize topic and organism distributions across the corpus",
	RunE:  runCorpusStats,
}

func runCorpusStats(cmd *cobra.Command, args []string) error {
	store, err := openCorpusStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.Load(context.Background())
	if err != nil {
		return err
	}
	stats := corpus.CollectStats(papers)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("Papers: %d\n\nTopics:\n", stats.TotalPapers)
	printDistribution(stats.Topics)
	fmt.Println("\nOrganisms:")
	printDistribution(stats.Organisms)
	return nil
}

// printDistribution prints label counts, most frequent first, labels
// alphabetical among equal counts.
func printDistribution(dist map[string]int) {
	labels := make([]string, 0, len(dist))
	for l := range dist {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if dist[labels[i]] != dist[labels[j]] {
			return dist[labels[i]] > dist[labels[j]]
		}
		return labels[i] < labels[j]
	})
	for _, l := range labels {
		fmt.Printf("  %-40s %d\n", l, dist[l])
	}
}

// --- shared helpers ---

func openCorpusStore(cmd *cobra.Command) (*corpus.Store, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = "data"
	}
	return corpus.NewStore(types.CorpusConfig{DataDir: dataDir})
}

func init() {
	corpusExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	corpusStatsCmd.Flags().Bool("json", false, "output stats as JSON")

	corpusCmd.AddCommand(corpusIngestCmd)
	corpusCmd.AddCommand(corpusExportCmd)
	corpusCmd.AddCommand(corpusStatsCmd)

	rootCmd.AddCommand(corpusCmd)
}
