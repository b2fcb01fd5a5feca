package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored bearer token",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := store.SetToken(""); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	fmt.Println("Signed out.")
	return nil
}
