// ABOUTME: Root command for the rentadesk CLI
// ABOUTME: Handles global flags, environment loading, and shared wiring

package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"rentadesk/internal/auth"
	"rentadesk/internal/client"
	"rentadesk/internal/config"
	"rentadesk/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "rentadesk",
	Short: "Terminal client for the car rental platform",
	Long: `rentadesk is a terminal client for a multi-tenant car rental platform.

Agency staff manage their fleet and bookings; platform admins manage
agencies and see platform-wide analytics. Run without a subcommand hints
at the interactive dashboard; scripting-friendly subcommands print text
or JSON and use exit codes for CI.

Environment Variables:
  RENTADESK_API_URL    Backend API URL (default: http://localhost:8001)
  RENTADESK_STATE_DIR  Session state directory (default: OS config dir)
  RENTADESK_DEBUG      Write a debug log into the state dir`,
}

// Execute runs the root command
func Execute() error {
	// A .env next to the binary is a convenience for local development;
	// missing files are fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides RENTADESK_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	return config.Load().APIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSessionStore opens the persisted session, tolerating a missing or
// corrupt state dir: commands then simply run logged out.
func newSessionStore() *session.Store {
	store := session.NewStore(config.Load().StateDir)
	_ = store.Load()
	return store
}

// newClient builds an API client bound to the session's credentials
func newClient(store *session.Store) *client.Client {
	return client.New(GetAPIURL(), store)
}

// newGateway builds the auth gateway over a fresh store and client
func newGateway() (*auth.Gateway, *session.Store, *client.Client) {
	store := newSessionStore()
	api := newClient(store)
	return auth.New(api, store), store, api
}
