package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/drivncook/backoffice/internal/api"
)

var franchiseesCmd = &cobra.Command{
	Use:     "franchisees",
	Aliases: []string{"fr"},
	Short:   "List the network's franchisees",
	Long: `List all franchisees registered on the platform.

Examples:
  drivnctl franchisees           # Table output
  drivnctl franchisees --json    # Output as JSON`,
	RunE: runFranchisees,
}

func init() {
	rootCmd.AddCommand(franchiseesCmd)

	franchiseesCmd.Flags().Bool("json", false, "output as JSON")
}

func runFranchisees(cmd *cobra.Command, args []string) error {
	list, err := client.Franchisees.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "unable to list franchisees"))
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	color.New(color.Bold).Printf("Franchisees (%d)\n\n", len(list))

	rows := make([][]string, 0, len(list))
	for _, f := range list {
		rows = append(rows, []string{
			strconv.FormatInt(f.ID, 10),
			f.FirstName + " " + f.LastName,
			f.CompanyName,
			f.Email,
			f.CreatedAt,
		})
	}

	table := newTable(os.Stdout, []string{"ID", "NAME", "COMPANY", "EMAIL", "JOINED"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
