package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "booking-app",
	Short: "Venue, artist and show booking directory",
	Long: `booking-app serves the booking directory over HTTP.

Commands:
  serve   start the HTTP server
  seed    load the sample venues, artists and shows
  token   mint an editor token for the write routes`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
