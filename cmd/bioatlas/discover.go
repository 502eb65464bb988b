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

var discoverCmd = &cobra.Command{
	Use:   "discover <topic>",
	Short: "Discover papers around a topic",
	Long: `Discover ranks papers for topic exploration rather than literal
search: topic-word and topic-label matches weigh more, and the output
includes a summary of the themes and organisms covered by the selected
papers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, args []string) error {
	maxResults, _ := cmd.Flags().GetInt("max")

	store, err := openCorpusStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.Load(context.Background())
	if err != nil {
		return err
	}

	topic := strings.Join(args, " ")
	results, summary := rank.Discover(papers, topic, maxResults)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Results []rank.Result `json:"results"`
			Summary rank.Summary  `json:"summary"`
		}{results, summary})
	}

	if err := formatResults(results, false); err != nil {
		return err
	}
	fmt.Printf("\nFound %d paper(s), selected %d\n", summary.TotalFound, summary.Selected)
	if len(summary.KeyThemes) > 0 {
		fmt.Printf("Key themes: %s\n", strings.Join(summary.KeyThemes, ", "))
	}
	if len(summary.Organisms) > 0 {
		fmt.Printf("Organisms studied: %s\n", strings.Join(summary.Organisms, ", "))
	}
	return nil
}

func init() {
	discoverCmd.Flags().Int("max", 10, "maximum number of results")
	discoverCmd.Flags().Bool("json", false, "output results and summary as JSON")

	rootCmd.AddCommand(discoverCmd)
}
