// ABOUTME: Audit log command for the smartsales CLI
// ABOUTME: Lists audit entries with optional user and date-range filters

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartsales365/console/internal/api"
)

var logFilters api.LogFilters

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List backend audit log entries",
	Long: `Display the backend audit trail. Entries can be narrowed by username
and by an inclusive date range (YYYY-MM-DD).`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runLogs(ctx, os.Stdout, logFilters))
	},
}

func init() {
	logsCmd.Flags().StringVar(&logFilters.User, "user", "", "Filter by username")
	logsCmd.Flags().StringVar(&logFilters.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	logsCmd.Flags().StringVar(&logFilters.EndDate, "to", "", "End date (YYYY-MM-DD)")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(ctx context.Context, w io.Writer, filters api.LogFilters) int {
	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	logs, err := e.client.AuditLogs(ctx, filters)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, logs)
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIMESTAMP\tUSER\tIP\tACTION")
	for _, l := range logs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", l.ID, l.Timestamp, l.UserUsername, l.IPAddress, l.Action)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d entries\n", len(logs))
	return 0
}
