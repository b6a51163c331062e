package decode

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"huffcode/pkg/huffman"

	"github.com/spf13/cobra"
)

var (
	source string
	packed bool
)

var DecodeCmd = &cobra.Command{
	Use:   "decode [bits] | decode --packed [nbits] [hex]",
	Short: "Decode a Huffman encoded text",
	Long:  "Decode a string of 0s and 1s, or packed hex bytes, with the Huffman code built from --source.",
	Args: func(cmd *cobra.Command, args []string) error {
		if packed {
			return cobra.ExactArgs(2)(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := huffman.New(source)
		if err != nil {
			return fmt.Errorf("building code: %w", err)
		}

		var text string
		if packed {
			nbits, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bit count %q: %w", args[0], err)
			}
			data, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("packed data: %w", err)
			}
			text, err = c.Unpack(data, nbits)
			if err != nil {
				return err
			}
		} else {
			text, err = c.Decode(args[0])
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	DecodeCmd.Flags().StringVarP(&source, "source", "s", "", "Text whose frequencies define the code")
	DecodeCmd.Flags().BoolVarP(&packed, "packed", "p", false, "Read a bit count and hex bytes as printed by encode --packed")
	DecodeCmd.MarkFlagRequired("source")
}
