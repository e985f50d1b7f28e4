// ABOUTME: Login command for the smartsales CLI
// ABOUTME: Exchanges credentials for a token pair and stores it locally

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in against the backend",
	Long: `Authenticate against the backend token endpoint and store the issued
token pair locally. Credentials can be passed as flags or entered
interactively when omitted.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout, loginUsername, loginPassword)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Backend username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Backend password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}

// runLogin executes the login and returns an exit code
func runLogin(ctx context.Context, w io.Writer, username, password string) int {
	if username == "" || password == "" {
		var err error
		username, password, err = promptCredentials(username)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
	}

	e := newEnv()
	if err := e.session.Login(ctx, username, password); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	state := e.session.State()
	if IsJSONOutput() {
		printJSON(w, map[string]string{
			"username": state.Username,
			"role":     state.Role.String(),
		})
		return 0
	}

	fmt.Fprintf(w, "Logged in as %s (%s)\n", state.Username, state.Role)
	return 0
}

// promptCredentials asks for whichever credential was not passed as a flag
func promptCredentials(username string) (string, string, error) {
	var password string

	fields := []huh.Field{}
	if username == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(&username))
	}
	fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password))

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeBase())
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return username, password, nil
}
