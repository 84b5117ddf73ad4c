// ABOUTME: Dashboard command for the rentadesk CLI
// ABOUTME: Launches the interactive terminal dashboard

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rentadesk/internal/config"
	"rentadesk/internal/logger"
	"rentadesk/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The persisted session is restored first: a logged-out terminal starts
at the sign-in form, agency accounts land on their fleet and bookings,
and platform admins land on the agency overview.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		closeLog, err := logger.Init(cfg.StateDir, cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
		}
		defer closeLog()

		gw, store, api := newGateway()
		if err := tui.Run(api, gw, store); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
