package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var tableMode string

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table <from> <to>",
	Short: "Print a table of triangular numbers over a range",
	Args:  cobra.ExactArgs(2),
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringVar(&tableMode, "mode", "", "arithmetic mode: wrap, wide, or checked (default from config)")
}

func runTable(cmd *cobra.Command, args []string) error {
	from, err := parseInt32(args[0])
	if err != nil {
		return err
	}
	to, err := parseInt32(args[1])
	if err != nil {
		return err
	}
	if from > to {
		return fmt.Errorf("invalid range: from %d > to %d", from, to)
	}

	mode := tableMode
	if mode == "" {
		mode = cfg.Sum.Mode
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "n\ttriangular(n)\t")
	for n := from; ; n++ {
		result, err := compute(mode, n)
		if err != nil {
			// In checked mode an out-of-range row is reported inline rather
			// than aborting the rest of the table.
			fmt.Fprintf(w, "%d\t%v\t\n", n, err)
		} else {
			fmt.Fprintf(w, "%d\t%d\t\n", n, result)
		}
		if n == to {
			break
		}
	}

	return w.Flush()
}
