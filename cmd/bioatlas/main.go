// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bioatlas CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bioatlas CLI.
var rootCmd = &cobra.Command{
	Use:   "bioatlas",
	Short: "Knowledge graph and retrieval engine for classified space-biology papers",
	Long: `bioatlas builds a navigable knowledge structure over a corpus of
classified scientific papers: a weighted title-similarity graph with
detected topical communities, plus relevance-ranked search, topic
discovery, and related-paper queries served from the built artifact.

The graph is built in full batch passes by the graph subcommand; search,
discover, and graph queries are read-only consumers of the corpus store
and the persisted artifact.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bioatlas.yaml or ~/.config/bioatlas/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "base directory for corpus data (contains index/)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bioatlas")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bioatlas"))
		}
	}

	viper.SetEnvPrefix("BIOATLAS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
