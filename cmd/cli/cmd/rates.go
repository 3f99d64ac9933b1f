// Package cmd - rates command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"eventquote/core/rates"
	core "eventquote/core/types"
)

// ratesCmd prints the published rate tables
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the published seating and accessory rate tables",
	RunE:  runRates,
}

func runRates(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "SEATING STYLE\tGUEST TIER\tRATE")
	for _, eventType := range core.KnownEventTypes {
		table, ok := rates.SeatingTable(eventType)
		if !ok {
			continue
		}
		for _, tier := range table.Tiers() {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", table.Style, tier.Guests, tier.Rate.StringFixed(2))
		}
	}

	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintln(tw, "ACCESSORY\tUNIT PRICE\t")
	for _, name := range rates.AccessoryNames() {
		price, _ := rates.Accessory(name)
		fmt.Fprintf(tw, "%s\t%s\t\n", name, price.StringFixed(2))
	}

	return tw.Flush()
}
