package sortcmd

import (
	"fmt"
	"strconv"
	"strings"

	"huffcode/pkg/pqueue"

	"github.com/spf13/cobra"
)

var desc bool

var SortCmd = &cobra.Command{
	Use:          "sort [numbers...]",
	Short:        "Heap sort a list of integers",
	Long:         "Sort integers with the heap behind the Huffman builder, ascending unless --desc is given.",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		nums := make([]int, len(args))
		for i, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			nums[i] = n
		}

		order := pqueue.Min[int]
		if desc {
			order = pqueue.Max[int]
		}
		pqueue.HeapSort(nums, order)

		out := make([]string, len(nums))
		for i, n := range nums {
			out[i] = strconv.Itoa(n)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
		return nil
	},
}

func init() {
	SortCmd.Flags().BoolVarP(&desc, "desc", "d", false, "Sort in descending order")
}
