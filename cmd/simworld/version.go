package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aravasio/simworld/internal/version"
)

var flagVersionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVersionJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(version.Info())
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return err
	},
}

func init() {
	versionCmd.Flags().BoolVar(&flagVersionJSON, "json", false, "Print as JSON")
}
