// Package cmd contains all CLI commands for drivnctl.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/prefstore"
)

var (
	baseURL  string
	stateDir string

	store  *prefstore.Store
	client *api.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "drivnctl",
	Short: "Driv'n Cook back-office CLI",
	Long: `drivnctl talks to the Driv'n Cook franchise API from the terminal.

It shares its token slot with the web back office, so a login here is picked
up by a running server on the same machine.

Example usage:
  drivnctl login --email ops@drivncook.fr   # Sign in and store the token
  drivnctl franchisees                      # List the network's franchisees
  drivnctl report --type REVENUE --from 2026-01-01 --to 2026-06-30
  drivnctl logout                           # Drop the stored token`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initServices()
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %s\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "api", "", "franchise API base URL (default $API_BASE_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "token and preference directory (default $STATE_DIR or data/state)")
}

// initServices builds the preference store and API client shared by all
// subcommands. The store doubles as the client's token source.
func initServices() error {
	_ = godotenv.Load()

	if baseURL == "" {
		baseURL = getEnv("API_BASE_URL", "http://localhost:8080")
	}
	if stateDir == "" {
		stateDir = getEnv("STATE_DIR", "data/state")
	}

	store = prefstore.New(afero.NewOsFs(), stateDir)
	client = api.NewClient(baseURL, store)
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
