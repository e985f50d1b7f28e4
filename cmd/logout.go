// ABOUTME: Logout command for the smartsales CLI
// ABOUTME: Clears the stored token pair

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored tokens",
	Long: `Remove the locally stored token pair. Safe to run when not logged in;
logging out twice is a no-op.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the session and returns an exit code
func runLogout(w io.Writer) int {
	e := newEnv()
	if err := e.session.Logout(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, map[string]bool{"logged_out": true})
		return 0
	}
	fmt.Fprintln(w, "Logged out.")
	return 0
}
