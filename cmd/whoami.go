// ABOUTME: Whoami command for the smartsales CLI
// ABOUTME: Shows the stored session identity and decoded role

package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long:  `Display the username, role, and token expiry decoded from the stored access token.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints the session identity and returns an exit code
func runWhoami(w io.Writer) int {
	e := newEnv()
	state := e.session.State()

	if !state.Authenticated {
		if IsJSONOutput() {
			printJSON(w, map[string]bool{"authenticated": false})
		} else {
			fmt.Fprintln(w, "Not logged in.")
		}
		return 1
	}

	if IsJSONOutput() {
		out := map[string]interface{}{
			"authenticated": true,
			"username":      state.Username,
			"role":          state.Role.String(),
			"role_claim":    state.RoleLabel,
		}
		if !state.ExpiresAt.IsZero() {
			out["token_expires"] = state.ExpiresAt.Format(time.RFC3339)
		}
		printJSON(w, out)
		return 0
	}

	fmt.Fprintf(w, "Username:   %s\n", orUnknown(state.Username))
	fmt.Fprintf(w, "Role:       %s\n", state.Role)
	fmt.Fprintf(w, "Role claim: %s\n", state.RoleLabel)
	if !state.ExpiresAt.IsZero() {
		fmt.Fprintf(w, "Expires:    %s\n", state.ExpiresAt.Format(time.RFC3339))
		if time.Now().After(state.ExpiresAt) {
			fmt.Fprintln(w, "Warning: the stored token has expired; the backend will reject requests.")
		}
	}
	return 0
}

func orUnknown(s string) string {
	if s == "" {
		return "(unknown)"
	}
	return s
}
