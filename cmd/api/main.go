package main

import (
	"fmt"
	"os"

	_ "socialdots/docs"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           Social Dots API
// @version         1.0
// @description     Agency site: public JSON API, checkout, payment and AI agent webhooks, admin API.

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
// @description Static admin key configured with ADMIN_API_KEY.

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "socialdots",
		Short:         "Social Dots agency site",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(workersCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(syncCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
