// Package cmd - structures command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"eventquote/core/capacity"
)

var (
	structEvent  string
	structGuests int
)

// structuresCmd prints the capacity ladder, or a recommendation when an
// event style and guest count are supplied
var structuresCmd = &cobra.Command{
	Use:   "structures",
	Short: "Print the structure capacity ladder or recommend a size",
	Long: `Print the fixed ladder of structure sizes the capacity model selects from.

With --event and --guests, recommend a structure for that event instead.

Examples:
  eventquote structures
  eventquote structures --event Banquet --guests 100`,
	RunE: runStructures,
}

func init() {
	structuresCmd.Flags().StringVarP(&structEvent, "event", "e", "", "event style to size for")
	structuresCmd.Flags().IntVarP(&structGuests, "guests", "g", 0, "guest count to size for")
}

func runStructures(cmd *cobra.Command, args []string) error {
	if structEvent != "" && structGuests > 0 {
		spec, err := capacity.Recommend(structEvent, structGuests)
		if err != nil {
			return err
		}
		fmt.Println(capacity.Summary(spec))
		fmt.Println(spec.Reasoning)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tAREA (SQM)\tRIDGE (M)\tSIDE (M)")
	for _, rung := range capacity.Ladder() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			rung.SizeLabel, rung.AreaSqm.String(), rung.RidgeHeightM.String(), rung.SideHeightM.String())
	}
	return tw.Flush()
}
