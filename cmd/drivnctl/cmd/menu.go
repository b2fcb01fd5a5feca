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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the signed-in franchisee's menu",
	Long: `Show the signed-in franchisee's menu and its items.

Examples:
  drivnctl menu
  drivnctl menu --json`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.Flags().Bool("json", false, "output as JSON")
}

func runMenu(cmd *cobra.Command, args []string) error {
	menu, err := client.Menus.Mine(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "unable to load menu"))
	}
	items, err := client.Menus.Items(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "unable to load menu items"))
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Menu  *api.Menu      `json:"menu"`
			Items []api.MenuItem `json:"items"`
		}{menu, items})
	}

	color.New(color.Bold).Printf("Menu #%d (%s, %d items)\n\n", menu.ID, menu.Status, len(items))

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		available := "no"
		if it.Available {
			available = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.Name,
			fmt.Sprintf("%.2f", it.PriceCash),
			strconv.FormatInt(it.PointsPrice, 10),
			available,
		})
	}

	table := newTable(os.Stdout, []string{"ID", "NAME", "PRICE", "POINTS", "AVAILABLE"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
