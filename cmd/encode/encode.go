package encode

import (
	"encoding/hex"
	"fmt"

	"huffcode/cmd/input"
	"huffcode/pkg/huffman"

	"github.com/spf13/cobra"
)

var (
	file   string
	source string
	packed bool
)

var EncodeCmd = &cobra.Command{
	Use:          "encode [text...]",
	Short:        "Encode a text with its Huffman code",
	Long:         "Encode a text as a string of 0s and 1s, or as packed hex bytes. The code is built from --source, or from the text itself when no source is given.",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := input.Text(args, file)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		src := text
		if cmd.Flags().Changed("source") {
			src = source
		}
		c, err := huffman.New(src)
		if err != nil {
			return fmt.Errorf("building code: %w", err)
		}

		out := cmd.OutOrStdout()
		if packed {
			data, nbits, err := c.Pack(text)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d %s\n", nbits, hex.EncodeToString(data))
			return nil
		}
		bits, err := c.Encode(text)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, bits)
		return nil
	},
}

func init() {
	EncodeCmd.Flags().StringVarP(&file, "file", "f", "", "Read the text from a file")
	EncodeCmd.Flags().StringVarP(&source, "source", "s", "", "Text whose frequencies define the code")
	EncodeCmd.Flags().BoolVarP(&packed, "packed", "p", false, "Print the bit count and the packed bytes in hex")
}
