package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fulgidus/gauss/internal/config"
	"github.com/fulgidus/gauss/pkg/gauss"
)

var (
	sumMode      string
	sumReference bool
)

// sumCmd represents the sum command
var sumCmd = &cobra.Command{
	Use:   "sum <n>",
	Short: "Compute the triangular number of n",
	Long: `Compute 1 + 2 + ... + n via the closed-form formula n*(n+1)/2.

The --mode flag overrides sum.mode from the config file. With --reference the
historical recursive routine is run as well; note that it returns n itself
for every input (its recursive step adds a constant 1), so for n > 1 the two
results disagree.`,
	Args: cobra.ExactArgs(1),
	RunE: runSum,
}

func init() {
	rootCmd.AddCommand(sumCmd)

	sumCmd.Flags().StringVar(&sumMode, "mode", "", "arithmetic mode: wrap, wide, or checked (default from config)")
	sumCmd.Flags().BoolVar(&sumReference, "reference", false, "also run the recursive reference routine")
}

func runSum(cmd *cobra.Command, args []string) error {
	n, err := parseInt32(args[0])
	if err != nil {
		return err
	}

	mode := sumMode
	if mode == "" {
		mode = cfg.Sum.Mode
	}

	result, err := compute(mode, n)
	if err != nil {
		return err
	}

	logger.Debug("computed triangular number",
		zap.Int32("n", n),
		zap.String("mode", mode),
		zap.Int64("result", result))

	fmt.Printf("triangular(%d) = %d [%s]\n", n, result, mode)

	if sumReference {
		ref, err := reference(n, cfg.Sum.RecursionLimit)
		if err != nil {
			return err
		}
		fmt.Printf("reference(%d)  = %d\n", n, ref)
		if int64(ref) != result {
			logger.Warn("reference routine disagrees with closed form",
				zap.Int32("n", n),
				zap.Int32("reference", ref),
				zap.Int64("closed_form", result))
			fmt.Printf("note: the reference routine returns n itself; this is the documented historical behavior\n")
		}
	}

	return nil
}

// parseInt32 parses a command-line argument as a 32-bit signed integer.
func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid n %q: must be a 32-bit integer", s)
	}
	return int32(n), nil
}

// compute dispatches to the closed-form variant selected by mode. The result
// is widened to int64 so all modes share a return type; wrap mode's value is
// the sign-extended 32-bit result.
func compute(mode string, n int32) (int64, error) {
	switch mode {
	case config.ModeWrap:
		return int64(gauss.ClosedForm(n)), nil
	case config.ModeWide:
		return gauss.ClosedForm64(int64(n)), nil
	case config.ModeChecked:
		v, err := gauss.ClosedFormChecked(n)
		if err != nil {
			return 0, err
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("unknown mode %q: must be wrap, wide, or checked", mode)
	}
}

// reference runs the recursive routine under the configured recursion limit.
func reference(n, limit int32) (int32, error) {
	if n > limit {
		return 0, fmt.Errorf("n %d exceeds configured recursion limit %d", n, limit)
	}
	return gauss.Recursive(n)
}
