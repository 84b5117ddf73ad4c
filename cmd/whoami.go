// ABOUTME: Whoami command for the rentadesk CLI
// ABOUTME: Shows the locally persisted session profile and token expiry

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Display the locally persisted session: who is logged in, their role,
and the advisory token expiry. The token is never validated locally;
the backend remains the authority.

Exit codes:
  0 - A session exists
  1 - Not logged in`,
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

// runWhoami prints the session state and returns exit code
func runWhoami(w io.Writer) int {
	store := newSessionStore()

	user := store.User()
	if user == nil {
		fmt.Fprintln(w, "Not logged in.")
		return 1
	}

	expiry, hasExpiry := store.TokenExpiry()

	if IsJSONOutput() {
		output := map[string]interface{}{
			"user": user,
		}
		if hasExpiry {
			output["token_expires_at"] = expiry.UTC().Format(time.RFC3339)
		}
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Logged in as: %s\n", user.FullName())
	fmt.Fprintf(w, "Email:        %s\n", user.Email)
	fmt.Fprintf(w, "Role:         %s\n", user.Role)
	if user.AgencyID != "" {
		fmt.Fprintf(w, "Agency:       %s\n", user.AgencyID)
	}
	if hasExpiry {
		fmt.Fprintf(w, "Token expiry: %s\n", expiry.UTC().Format(time.RFC3339))
	}
	return 0
}
