package tree

import (
	"fmt"

	"huffcode/cmd/input"
	"huffcode/pkg/huffman"

	"github.com/spf13/cobra"
)

var file string

var TreeCmd = &cobra.Command{
	Use:          "tree [text...]",
	Short:        "Print the Huffman tree for a text",
	Long:         "Build the Huffman tree of a text and print it sideways, right subtrees on top.",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := input.Text(args, file)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		freq, err := huffman.AnalyzeFrequencies(text)
		if err != nil {
			return err
		}
		root, err := huffman.Build(freq)
		if err != nil {
			return fmt.Errorf("building tree: %w", err)
		}
		return huffman.Print(cmd.OutOrStdout(), root)
	},
}

func init() {
	TreeCmd.Flags().StringVarP(&file, "file", "f", "", "Read the text from a file")
}
