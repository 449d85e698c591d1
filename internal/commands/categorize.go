package commands

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCategorizeCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "categorize <vendor> <category>",
		Short: "Associate a vendor with a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategorize(dataDir, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", ".", "finboard data directory")

	return cmd
}

func runCategorize(dataDir, vendor, category string) error {
	cfg := loadConfig(dataDir)
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	store.Update(vendor, category)
	fmt.Printf("%s → %s\n", vendor, color.CyanString(category))
	return nil
}

func newCategoriesCommand() *cobra.Command {
	var dataDir string
	var showVendors bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List known categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(dataDir, showVendors)
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", ".", "finboard data directory")
	cmd.Flags().BoolVar(&showVendors, "vendors", false, "also list vendor associations")

	return cmd
}

func runCategories(dataDir string, showVendors bool) error {
	cfg := loadConfig(dataDir)
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	for _, c := range store.AllCategories() {
		fmt.Println(c)
	}

	if showVendors {
		mapping := store.Mapping()
		vendors := make([]string, 0, len(mapping))
		for v := range mapping {
			vendors = append(vendors, v)
		}
		sort.Strings(vendors)

		fmt.Println()
		color.New(color.Bold).Println("Vendor associations")
		for _, v := range vendors {
			fmt.Printf("  %-32s %s\n", v, mapping[v])
		}
	}
	return nil
}
