package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/finboard-dev/finboard/internal/model"
	"github.com/finboard-dev/finboard/internal/report"
	"github.com/finboard-dev/finboard/internal/statement"
)

func newReportCommand() *cobra.Command {
	var dataDir string

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate views over a statement",
	}
	reportCmd.PersistentFlags().StringVar(&dataDir, "data", ".", "finboard data directory")

	reportCmd.AddCommand(newReportCategoriesCommand(&dataDir))
	reportCmd.AddCommand(newReportVendorsCommand(&dataDir))
	reportCmd.AddCommand(newReportTimelineCommand(&dataDir))

	return reportCmd
}

func newReportCategoriesCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories <statement.csv>",
		Short: "Expense breakdown by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportCategories(*dataDir, args[0])
		},
	}
}

func runReportCategories(dataDir, path string) error {
	txns, store, closeStore, err := loadStatement(dataDir, path)
	if err != nil {
		return err
	}
	defer closeStore()

	breakdown := report.Breakdown(txns, store)
	if len(breakdown) == 0 {
		fmt.Println("No expense data available")
		return nil
	}

	color.New(color.Bold).Println("Expense breakdown by category")
	for _, b := range breakdown {
		fmt.Printf("  %-24s %12s  %5.1f%%\n", b.Category, "$"+b.Amount.StringFixed(2), b.Percentage)
	}
	return nil
}

func newReportVendorsCommand(dataDir *string) *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "vendors <statement.csv>",
		Short: "Top vendors by spending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportVendors(*dataDir, args[0], topN)
		},
	}
	cmd.Flags().IntVar(&topN, "top", 0, "number of vendors to show (default from config)")

	return cmd
}

func runReportVendors(dataDir, path string, topN int) error {
	cfg := loadConfig(dataDir)
	if topN <= 0 {
		topN = cfg.Report.TopVendors
	}

	txns, _, closeStore, err := loadStatement(dataDir, path)
	if err != nil {
		return err
	}
	defer closeStore()

	vendors := report.TopVendors(txns, topN)
	if len(vendors) == 0 {
		fmt.Println("No vendor data available")
		return nil
	}

	color.New(color.Bold).Println("Top vendors by spending")
	for _, v := range vendors {
		noun := "transactions"
		if v.Transactions == 1 {
			noun = "transaction"
		}
		fmt.Printf("  %-32s %12s  (%d %s)\n", v.Vendor, "$"+v.Amount.StringFixed(2), v.Transactions, noun)
	}
	return nil
}

func newReportTimelineCommand(dataDir *string) *cobra.Command {
	var interval string
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "timeline <statement.csv>",
		Short: "Spending over time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportTimeline(*dataDir, args[0], interval, fromStr, toStr)
		},
	}
	cmd.Flags().StringVar(&interval, "interval", "", "bucket grain: daily, monthly, or yearly")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date (YYYY-MM-DD, inclusive)")

	return cmd
}

func runReportTimeline(dataDir, path, interval, fromStr, toStr string) error {
	cfg := loadConfig(dataDir)
	if interval == "" {
		interval = cfg.Report.Granularity
	}
	grain, err := parseGranularity(interval)
	if err != nil {
		return err
	}

	from, err := parseDateFlag(fromStr)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := parseDateFlag(toStr)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	txns, _, closeStore, err := loadStatement(dataDir, path)
	if err != nil {
		return err
	}
	defer closeStore()

	series := report.Series(txns, grain, from, to)
	if len(series) == 0 {
		fmt.Println("No spending in the selected range")
		return nil
	}

	color.New(color.Bold).Printf("Spending over time (%s)\n", grain)
	for _, p := range series {
		fmt.Printf("  %-10s %12s\n", p.Label, "$"+p.Amount.StringFixed(2))
	}
	return nil
}

// loadStatement parses a statement and opens the category store so reports
// can resolve persisted vendor associations.
func loadStatement(dataDir, path string) ([]model.Transaction, report.CategoryLookup, func() error, error) {
	cfg := loadConfig(dataDir)
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	txns, _, err := statement.ParseFile(path)
	if err != nil {
		closeStore()
		return nil, nil, nil, err
	}
	return txns, store, closeStore, nil
}

func parseGranularity(s string) (model.Granularity, error) {
	switch model.Granularity(s) {
	case model.GranularityDaily, model.GranularityMonthly, model.GranularityYearly:
		return model.Granularity(s), nil
	default:
		return "", fmt.Errorf("unknown interval %q (want daily, monthly, or yearly)", s)
	}
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return &d, nil
}
