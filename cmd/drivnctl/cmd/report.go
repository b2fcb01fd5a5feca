package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/drivncook/backoffice/internal/api"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Download a PDF report",
	Long: `Request a PDF report from the franchise API and write it to disk.

Examples:
  drivnctl report --type SALES_STATS --from 2026-01-01 --to 2026-06-30
  drivnctl report --type REVENUE --from 2026-01-01 --to 2026-06-30 --franchisee 12 --out revenue.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("type", "", "report type: SALES_STATS, TOP_ITEMS or REVENUE")
	reportCmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	reportCmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	reportCmd.Flags().Int64("franchisee", 0, "restrict to one franchisee")
	reportCmd.Flags().String("out", "", "output file (default: the server's filename hint)")
	_ = reportCmd.MarkFlagRequired("type")
	_ = reportCmd.MarkFlagRequired("from")
	_ = reportCmd.MarkFlagRequired("to")
}

func runReport(cmd *cobra.Command, args []string) error {
	reportType, _ := cmd.Flags().GetString("type")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	franchiseeID, _ := cmd.Flags().GetInt64("franchisee")
	out, _ := cmd.Flags().GetString("out")

	payload := api.ReportRequest{
		Type:         api.ReportType(reportType),
		From:         from,
		To:           to,
		FranchiseeID: franchiseeID,
	}
	download, err := client.Reports.Request(cmd.Context(), payload)
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "unable to generate the report"))
	}

	if out == "" {
		out = download.FileName
	}
	if out == "" {
		out = fmt.Sprintf("report-%s-%s.pdf", from, to)
	}

	if err := os.WriteFile(out, download.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	color.New(color.FgGreen).Printf("Wrote %s (%d bytes)\n", out, len(download.Data))
	return nil
}
