// ABOUTME: User management commands for the smartsales CLI
// ABOUTME: Lists, registers, activates, and deactivates backend users

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartsales365/console/internal/api"
)

var userInput api.UserInput

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage backend users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runUsersList(ctx, os.Stdout))
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a user",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runUsersCreate(ctx, os.Stdout, userInput))
	},
}

var usersActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Mark a user active",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runUsersSetActive(ctx, os.Stdout, args[0], true))
	},
}

var usersDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Mark a user inactive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runUsersSetActive(ctx, os.Stdout, args[0], false))
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently remove a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runUsersDelete(ctx, os.Stdout, args[0]))
	},
}

func init() {
	usersCreateCmd.Flags().StringVar(&userInput.Username, "username", "", "Username")
	usersCreateCmd.Flags().StringVar(&userInput.Email, "email", "", "Email address")
	usersCreateCmd.Flags().StringVar(&userInput.FirstName, "first-name", "", "First name")
	usersCreateCmd.Flags().StringVar(&userInput.LastName, "last-name", "", "Last name")
	usersCreateCmd.Flags().StringVar(&userInput.Role, "role", "", "Backend role label")
	usersCreateCmd.Flags().StringVar(&userInput.Phone, "phone", "", "Phone number")
	usersCreateCmd.Flags().StringVar(&userInput.Address, "address", "", "Address")
	usersCreateCmd.Flags().StringVar(&userInput.Password, "password", "", "Initial password")
	usersCreateCmd.MarkFlagRequired("username")
	usersCreateCmd.MarkFlagRequired("email")
	usersCreateCmd.MarkFlagRequired("password")

	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersActivateCmd, usersDeactivateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersList(ctx context.Context, w io.Writer) int {
	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	users, err := e.client.Users(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, users)
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tEMAIL\tROLE\tACTIVE")
	for _, u := range users {
		active := "yes"
		if !u.IsActive {
			active = "no"
		}
		name := strings.TrimSpace(u.FirstName + " " + u.LastName)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, name, u.Email, u.Role, active)
	}
	tw.Flush()
	return 0
}

func runUsersCreate(ctx context.Context, w io.Writer, input api.UserInput) int {
	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	created, err := e.client.CreateUser(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, created)
		return 0
	}
	fmt.Fprintf(w, "Created user %d: %s\n", created.ID, created.Username)
	return 0
}

func runUsersSetActive(ctx context.Context, w io.Writer, rawID string, active bool) int {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid user id %q\n", rawID)
		return 1
	}

	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	if err := e.client.SetUserActive(ctx, id, active); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, map[string]interface{}{"id": id, "is_active": active})
		return 0
	}
	verb := "activated"
	if !active {
		verb = "deactivated"
	}
	fmt.Fprintf(w, "User %d %s\n", id, verb)
	return 0
}

func runUsersDelete(ctx context.Context, w io.Writer, rawID string) int {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid user id %q\n", rawID)
		return 1
	}

	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	if err := e.client.DeleteUser(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, map[string]int{"deleted": id})
		return 0
	}
	fmt.Fprintf(w, "Deleted user %d\n", id)
	return 0
}
