package main

import (
	"os"

	codes "huffcode/cmd/codes"
	decode "huffcode/cmd/decode"
	encode "huffcode/cmd/encode"
	sortcmd "huffcode/cmd/sort"
	tree "huffcode/cmd/tree"
	version "huffcode/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huffcode",
	Short: "Huffman code utility",
	Long:  "huffcode builds Huffman codes for text made of letters and spaces, and encodes or decodes text with them.",
}

func main() {
	rootCmd.AddCommand(codes.CodesCmd)
	rootCmd.AddCommand(tree.TreeCmd)
	rootCmd.AddCommand(encode.EncodeCmd)
	rootCmd.AddCommand(decode.DecodeCmd)
	rootCmd.AddCommand(sortcmd.SortCmd)
	rootCmd.AddCommand(version.VersionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
