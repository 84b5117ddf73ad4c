// ABOUTME: Login command for the rentadesk CLI
// ABOUTME: Authenticates against the backend and persists the session

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	Long: `Authenticate against the backend and store the session locally.

Missing credentials are prompted for interactively.

Exit codes:
  0 - Logged in
  1 - Login failed`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

// runLogin executes the login flow and returns exit code
func runLogin(ctx context.Context, w io.Writer) int {
	if loginEmail == "" || loginPassword == "" {
		if err := promptCredentials(); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
	}

	gw, store, _ := newGateway()
	res := gw.Login(ctx, loginEmail, loginPassword)
	if !res.OK {
		fmt.Fprintf(w, "Error: %s\n", res.Message)
		return 1
	}

	user := store.User()
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Logged in as %s (%s)\n", user.FullName(), user.Role)
	return 0
}

// promptCredentials asks for whichever credentials were not given as flags
func promptCredentials() error {
	var fields []huh.Field
	if loginEmail == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&loginEmail))
	}
	if loginPassword == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&loginPassword))
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
