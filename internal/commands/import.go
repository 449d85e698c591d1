package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/finboard-dev/finboard/internal/importlog"
	"github.com/finboard-dev/finboard/internal/model"
	"github.com/finboard-dev/finboard/internal/report"
	"github.com/finboard-dev/finboard/internal/statement"
)

func newImportCommand() *cobra.Command {
	var dataDir string
	var scanDir string
	var outPath string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Parse bank statement CSVs into normalized transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if scanDir != "" {
				files, err := statement.Scan(scanDir)
				if err != nil {
					return err
				}
				for _, f := range files {
					paths = append(paths, f.Path)
				}
			}
			if len(paths) == 0 {
				return fmt.Errorf("no statement files given (pass files or --dir)")
			}
			return runImport(dataDir, paths, outPath)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "finboard data directory")
	cmd.Flags().StringVar(&scanDir, "dir", "", "import every CSV in a directory")
	cmd.Flags().StringVar(&outPath, "out", "", "write normalized transactions to a CSV file")

	return cmd
}

func runImport(dataDir string, paths []string, outPath string) error {
	cfg := loadConfig(dataDir)
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	bold := color.New(color.Bold)

	var all []model.Transaction
	for _, path := range paths {
		txns, skipped, err := statement.ParseFile(path)
		if err != nil {
			return err
		}

		// Enrich with persisted category associations.
		for i := range txns {
			if c, ok := store.Lookup(txns[i].Description); ok {
				txns[i].Category = c
			}
		}

		bold.Printf("%s: %d transactions", filepath.Base(path), len(txns))
		if skipped > 0 {
			fmt.Printf(" (%d rows skipped)", skipped)
		}
		fmt.Println()

		logEntry := importlog.Entry{
			Timestamp:    time.Now().UTC(),
			Source:       filepath.Base(path),
			Format:       "standard",
			Transactions: len(txns),
			Skipped:      skipped,
		}
		if err := importlog.Append(dataDir, []importlog.Entry{logEntry}); err != nil {
			return fmt.Errorf("recording import: %w", err)
		}

		all = append(all, txns...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})

	period := report.StatementPeriod(all)
	totals := report.Totals(all)
	fmt.Printf("  period:   %s to %s\n", period.Start, period.End)
	fmt.Printf("  income:   %s\n", color.GreenString("$%s", totals.Income.StringFixed(2)))
	fmt.Printf("  expenses: %s\n", color.RedString("$%s", totals.Expenses.StringFixed(2)))
	if totals.NetFlow.IsNegative() {
		fmt.Printf("  net flow: %s\n", color.RedString("-$%s", totals.NetFlow.Abs().StringFixed(2)))
	} else {
		fmt.Printf("  net flow: %s\n", color.GreenString("+$%s", totals.NetFlow.StringFixed(2)))
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		if err := statement.WriteTransactions(f, all); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Printf("  exported: %s\n", outPath)
	}

	return nil
}
