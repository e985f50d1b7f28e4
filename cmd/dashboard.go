// ABOUTME: Dashboard command for the smartsales CLI
// ABOUTME: Launches the interactive terminal dashboard

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartsales365/console/internal/tui"
	"github.com/smartsales365/console/internal/tui/debuglog"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Launch the full-screen terminal dashboard. Starts at the login screen
when no session is stored; otherwise lands on the role-gated menu.`,
	Run: func(cmd *cobra.Command, args []string) {
		e := newEnv()

		if e.cfg.Debug {
			if err := debuglog.Init(e.cfg.ConfigDir); err == nil {
				defer debuglog.Close()
			}
		}

		if err := tui.Run(e.session, e.client); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
