// Health command probes the API server.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check API server availability",
	Long: `Health sends a request to the API health endpoint and reports
the server status.

Example:
  labsite health
  labsite health --api-url http://localhost:8000/api/`,
	Args: cobra.NoArgs,
	RunE: runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	client := newClient()

	status, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	return printResult(cmd, map[string]string{"status": status}, func() {
		fmt.Fprintln(cmd.OutOrStdout(), "server status:", status)
	})
}
