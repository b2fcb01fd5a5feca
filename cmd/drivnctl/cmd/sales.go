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

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "List the signed-in franchisee's sales",
	Long: `List sales recorded for the signed-in franchisee.

Examples:
  drivnctl sales
  drivnctl sales --from 2026-08-01 --to 2026-08-31
  drivnctl sales --json`,
	RunE: runSales,
}

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Show the signed-in franchisee's revenue series",
	Long: `Show aggregated revenue buckets for the signed-in franchisee.

Examples:
  drivnctl revenue --granularity month
  drivnctl revenue --from 2026-01-01 --granularity week`,
	RunE: runRevenue,
}

func init() {
	rootCmd.AddCommand(salesCmd)
	rootCmd.AddCommand(revenueCmd)

	salesCmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	salesCmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	salesCmd.Flags().Int64("menu-item", 0, "filter by menu item id")
	salesCmd.Flags().Bool("json", false, "output as JSON")

	revenueCmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	revenueCmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	revenueCmd.Flags().String("granularity", "day", "bucket size: day, week or month")
	revenueCmd.Flags().Bool("json", false, "output as JSON")
}

func runSales(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	menuItem, _ := cmd.Flags().GetInt64("menu-item")

	list, err := client.Sales.List(cmd.Context(), api.SaleListOptions{
		From: from, To: to, MenuItemID: menuItem,
	})
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "unable to list sales"))
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	var total float64
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		total += s.TotalAmount
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Date,
			strconv.FormatInt(s.Quantity, 10),
			fmt.Sprintf("%.2f", s.TotalAmount),
			string(s.Channel),
		})
	}

	color.New(color.Bold).Printf("Sales (%d, %.2f total)\n\n", len(list), total)

	table := newTable(os.Stdout, []string{"ID", "DATE", "QTY", "AMOUNT", "CHANNEL"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func runRevenue(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	granularity, _ := cmd.Flags().GetString("granularity")

	series, err := client.Revenues.List(cmd.Context(), api.RevenueListOptions{
		From: from, To: to, Granularity: granularity,
	})
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "unable to load revenue"))
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(series)
	}

	rows := make([][]string, 0, len(series))
	for _, p := range series {
		rows = append(rows, []string{p.PeriodStart, p.PeriodEnd, fmt.Sprintf("%.2f", p.Amount)})
	}

	color.New(color.Bold).Printf("Revenue by %s (%d buckets)\n\n", granularity, len(series))

	table := newTable(os.Stdout, []string{"FROM", "TO", "AMOUNT"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
