// Version command for the labsite CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nepalailab/labsite/pkg/labsite"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the labsite version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "labsite", labsite.Version)
	},
}
