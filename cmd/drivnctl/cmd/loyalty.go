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

var loyaltyCmd = &cobra.Command{
	Use:   "loyalty",
	Short: "List loyalty cards or look one up by code",
	Long: `List customer loyalty cards, or look a single card up by its printed code.

Examples:
  drivnctl loyalty
  drivnctl loyalty --code DRVN-4821
  drivnctl loyalty --json`,
	RunE: runLoyalty,
}

func init() {
	rootCmd.AddCommand(loyaltyCmd)

	loyaltyCmd.Flags().String("code", "", "look up a single card by code")
	loyaltyCmd.Flags().Bool("json", false, "output as JSON")
}

func runLoyalty(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	var cards []api.LoyaltyCard
	if code, _ := cmd.Flags().GetString("code"); code != "" {
		card, err := client.LoyaltyCards.SearchByCode(cmd.Context(), code)
		if err != nil {
			return fmt.Errorf("%s", api.ErrorMessage(err, "unable to find card "+code))
		}
		cards = []api.LoyaltyCard{*card}
	} else {
		list, err := client.LoyaltyCards.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", api.ErrorMessage(err, "unable to list loyalty cards"))
		}
		cards = list
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	}

	color.New(color.Bold).Printf("Loyalty cards (%d)\n\n", len(cards))

	rows := make([][]string, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, []string{
			strconv.FormatInt(card.ID, 10),
			card.Code,
			card.CustomerRef,
			strconv.FormatInt(card.PointsBalance, 10),
			card.CreatedAt,
		})
	}

	table := newTable(os.Stdout, []string{"ID", "CODE", "CUSTOMER", "POINTS", "ISSUED"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
