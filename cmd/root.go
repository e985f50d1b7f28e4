// ABOUTME: Root command for the smartsales CLI
// ABOUTME: Handles global flags and builds the shared client and session

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/smartsales365/console/internal/api"
	"github.com/smartsales365/console/internal/config"
	"github.com/smartsales365/console/internal/session"
	"github.com/smartsales365/console/internal/tokenstore"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "smartsales",
	Short: "Terminal console for the SmartSales365 backend",
	Long: `smartsales is a terminal console for the SmartSales365 commercial backend.

It signs in against the backend's JWT endpoint, stores the issued tokens
locally, and exposes products, inventory, users, audit logs, and reports
from the command line or an interactive dashboard.

Environment Variables:
  SMARTSALES_API_URL       Backend base URL (default: ` + config.DefaultAPIURL + `)
  SMARTSALES_CONFIG_DIR    Directory for stored credentials
  SMARTSALES_HTTP_TIMEOUT  Per-request timeout in seconds (default: 30)
  SMARTSALES_DEBUG         Enable debug logging`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (overrides SMARTSALES_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// env bundles the pieces every command needs: configuration, the token
// store, the API client, and the session computed from the stored token.
type env struct {
	cfg     *config.Config
	store   *tokenstore.Store
	client  *api.Client
	session *session.Controller
}

// newEnv loads configuration and wires the client and session. The --api-url
// flag beats the environment, which beats the default.
func newEnv() *env {
	cfg := config.Load()
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	store := tokenstore.New(cfg.ConfigDir)
	client := api.New(cfg.APIURL, store, time.Duration(cfg.HTTPTimeout)*time.Second)
	sess := session.NewController(store, client)
	sess.Load()

	return &env{cfg: cfg, store: store, client: client, session: sess}
}

// requireAuth builds the environment and rejects unauthenticated runs.
// Returns a nil env and exit code 1 when no session is stored.
func requireAuth(w io.Writer) (*env, int) {
	e := newEnv()
	if !e.session.Authenticated() {
		fmt.Fprintln(w, "Not logged in. Run 'smartsales login' first.")
		return nil, 1
	}
	return e, 0
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(data))
}
