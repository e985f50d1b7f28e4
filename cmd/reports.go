// ABOUTME: Report commands for the smartsales CLI
// ABOUTME: Submits natural-language report prompts and downloads rendered files

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartsales365/console/internal/api"
)

var (
	reportFormat string
	reportOut    string
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Generate and download backend reports",
}

var reportsQueryCmd = &cobra.Command{
	Use:   "query <prompt>",
	Short: "Run a natural-language report prompt",
	Long: `Submit a report prompt to the backend, which interprets it and returns
the matching rows plus a query ID for file download.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runReportsQuery(ctx, os.Stdout, strings.Join(args, " ")))
	},
}

var reportsDownloadCmd = &cobra.Command{
	Use:   "download <query-id>",
	Short: "Download a generated report file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		exit(runReportsDownload(ctx, os.Stdout, args[0], reportFormat, reportOut))
	},
}

func init() {
	reportsDownloadCmd.Flags().StringVar(&reportFormat, "format", api.FormatPDF, "File format: "+api.FormatPDF+" or "+api.FormatXLSX)
	reportsDownloadCmd.Flags().StringVar(&reportOut, "out", "", "Output path (default: reporte_<id>.<format>)")
	reportsCmd.AddCommand(reportsQueryCmd, reportsDownloadCmd)
	rootCmd.AddCommand(reportsCmd)
}

func runReportsQuery(ctx context.Context, w io.Writer, prompt string) int {
	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	report, err := e.client.GenerateReportQuery(ctx, prompt)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, report)
		return 0
	}

	if report.Message != "" {
		fmt.Fprintln(w, report.Message)
	}
	if len(report.Results) == 0 {
		fmt.Fprintln(w, "No rows returned.")
		fmt.Fprintf(w, "Query ID: %d\n", report.QueryID)
		return 0
	}

	// Stable column order across free-form rows
	keySet := map[string]bool{}
	for _, row := range report.Results {
		for k := range row {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(keys, "\t")))
	for _, row := range report.Results {
		cells := make([]string, 0, len(keys))
		for _, k := range keys {
			cells = append(cells, fmt.Sprintf("%v", row[k]))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d rows. Query ID: %d (use 'smartsales reports download %d' for a file)\n",
		len(report.Results), report.QueryID, report.QueryID)
	return 0
}

func runReportsDownload(ctx context.Context, w io.Writer, rawID, format, out string) int {
	var queryID int
	if _, err := fmt.Sscanf(rawID, "%d", &queryID); err != nil {
		fmt.Fprintf(w, "Error: invalid query id %q\n", rawID)
		return 1
	}

	e, code := requireAuth(w)
	if code != 0 {
		return code
	}

	data, err := e.client.DownloadReportFile(ctx, queryID, format)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if out == "" {
		out = fmt.Sprintf("reporte_%d.%s", queryID, format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		printJSON(w, map[string]interface{}{"path": out, "bytes": len(data)})
		return 0
	}
	fmt.Fprintf(w, "Saved %s (%d bytes)\n", out, len(data))
	return 0
}
