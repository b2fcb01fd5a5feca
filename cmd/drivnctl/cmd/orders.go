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

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List the signed-in franchisee's customer orders",
	Long: `List point-of-sale orders taken on the signed-in franchisee's truck.

Examples:
  drivnctl orders
  drivnctl orders --json`,
	RunE: runOrders,
}

func init() {
	rootCmd.AddCommand(ordersCmd)

	ordersCmd.Flags().Bool("json", false, "output as JSON")
}

func runOrders(cmd *cobra.Command, args []string) error {
	list, err := client.CustomerOrders.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "unable to list customer orders"))
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	color.New(color.Bold).Printf("Customer orders (%d)\n\n", len(list))

	rows := make([][]string, 0, len(list))
	for _, o := range list {
		paid := "no"
		if o.Paid {
			paid = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			string(o.Type),
			string(o.Status),
			paid,
			fmt.Sprintf("%.2f", o.TotalCash),
			strconv.FormatInt(o.TotalPoints, 10),
			o.CreatedAt,
		})
	}

	table := newTable(os.Stdout, []string{"ID", "TYPE", "STATUS", "PAID", "CASH", "POINTS", "CREATED"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
