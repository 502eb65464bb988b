// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bioatlas/internal/rank"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the corpus by relevance",
	Long: `Search scores every paper against the query: verbatim title matches,
per-word title matches, and optional topic/organism filter bonuses.
Papers that score zero are omitted; the rest are ranked by descending
score with corpus order among ties.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	topics, _ := cmd.Flags().GetStringSlice("topic")
	organisms, _ := cmd.Flags().GetStringSlice("organism")
	topN, _ := cmd.Flags().GetInt("top")

	store, err := openCorpusStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.Load(context.Background())
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results := rank.Search(papers, query, topics, organisms, topN)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatResults(results, jsonOutput)
}

func formatResults(results []rank.Result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-6s  %-70s  %s\n", "Score", "ID", "Title", "Topics")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, r := range results {
		title := r.Title
		if len(title) > 70 {
			title = title[:67] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-6d  %-70s  %s\n",
			r.Score, r.ID, title, strings.Join(r.Topics, ", "))
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func init() {
	searchCmd.Flags().StringSlice("topic", nil, "filter bonus for papers with any of these topics")
	searchCmd.Flags().StringSlice("organism", nil, "filter bonus for papers with any of these organisms")
	searchCmd.Flags().Int("top", 10, "maximum number of results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
