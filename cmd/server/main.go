// Package main is the entry point for the fabula-api server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fabula-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "fabula-api",
	Short: "Fabula Ultima character sheet server",
	Long:  `fabula-api serves Fabula Ultima player sheets and their edit sessions over gRPC, with HTTP downloads and live updates.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
