// Package cmd provides CLI commands for the weft engine.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Weft - a conversation context correlation engine",
	Long:  `Weft tracks multi-modal conversation history per session and assembles relevance-ranked context for response generation.`,
}

func Execute() error {
	return rootCmd.Execute()
}
