// ABOUTME: Logout command for the rentadesk CLI
// ABOUTME: Clears the persisted session state

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the local session",
	Long:  `Remove the locally persisted session token and profile. The backend is not contacted.`,
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

// runLogout clears the session and returns exit code
func runLogout(w io.Writer) int {
	gw, _, _ := newGateway()
	gw.Logout()
	fmt.Fprintln(w, "Logged out.")
	return 0
}
