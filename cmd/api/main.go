// @title View Analytics Service API
// @version 1.0
// @description Blog view ingestion and analytics: grouped views, top-N rankings and period series.
// @BasePath /
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const serviceName = "view-analytics"

var rootCmd = &cobra.Command{
	Use:           serviceName,
	Short:         "Blog view ingestion and analytics service",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
