package codes

import (
	"fmt"

	"huffcode/cmd/input"
	"huffcode/pkg/huffman"

	"github.com/spf13/cobra"
)

var (
	file   string
	counts bool
)

var CodesCmd = &cobra.Command{
	Use:          "codes [text...]",
	Short:        "Print the Huffman code table for a text",
	Long:         "Count the letters and spaces of a text, build its Huffman tree and print the code of every symbol.",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := input.Text(args, file)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		c, err := huffman.New(text)
		if err != nil {
			return fmt.Errorf("building code: %w", err)
		}

		out := cmd.OutOrStdout()
		if !counts {
			fmt.Fprint(out, c.Codes())
			return nil
		}
		freq := c.Frequencies()
		for _, r := range c.Codes().Symbols() {
			code, _ := c.Codes().Code(r)
			fmt.Fprintf(out, "%q\t%d\t%s\n", r, freq.Of(r), code)
		}
		return nil
	},
}

func init() {
	CodesCmd.Flags().StringVarP(&file, "file", "f", "", "Read the text from a file")
	CodesCmd.Flags().BoolVarP(&counts, "counts", "c", false, "Also print the frequency of every symbol")
}
