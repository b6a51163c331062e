package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "View huffcode's version",
	Long:  "Display the version of huffcode installed on your system.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var version string = "huffcode version 0.1.0"
		fmt.Fprintln(cmd.OutOrStdout(), version)

		return nil
	},
}
