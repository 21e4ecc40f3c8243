package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Default paths; the pipeline takes no flags and no environment variables.
const (
	defaultInputPath = "output.json"
	defaultCSVPath   = "talks.csv"
	defaultTextPath  = "talks.txt"
)

func Execute() {
	var rootCmd = &cobra.Command{
		Use:   "talk-extract",
		Short: "Extract talk titles and abstracts from an IBM events JSON export",
		Long:  `talk-extract reads the event agenda from output.json, strips HTML from the abstracts and writes talks.csv and talks.txt alongside a short console preview.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(defaultInputPath, defaultCSVPath, defaultTextPath)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
