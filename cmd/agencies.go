// ABOUTME: Agencies commands for the rentadesk CLI
// ABOUTME: Platform admin operations: list, create, and analytics

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rentadesk/internal/client"
)

var (
	agencyName    string
	agencyEmail   string
	agencyPhone   string
	agencyAddress string
	agencyDesc    string
)

var agenciesCmd = &cobra.Command{
	Use:   "agencies",
	Short: "List all agencies (platform admin)",
	Long: `List every agency on the platform. Requires a super admin session.

Exit codes:
  0 - Listed
  1 - Not logged in
  2 - Backend error (including insufficient role)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAgencies(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var agenciesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new agency",
	Long:  `Create a new agency tenant. Requires a super admin session.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAgenciesCreate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var agenciesAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show platform analytics",
	Long:  `Show platform-wide counters: agencies, cars, and bookings. Requires a super admin session.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAgenciesAnalytics(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(agenciesCmd)
	agenciesCmd.AddCommand(agenciesCreateCmd)
	agenciesCmd.AddCommand(agenciesAnalyticsCmd)

	agenciesCreateCmd.Flags().StringVar(&agencyName, "name", "", "Agency name")
	agenciesCreateCmd.Flags().StringVar(&agencyEmail, "email", "", "Contact email")
	agenciesCreateCmd.Flags().StringVar(&agencyPhone, "phone", "", "Contact phone")
	agenciesCreateCmd.Flags().StringVar(&agencyAddress, "address", "", "Street address")
	agenciesCreateCmd.Flags().StringVar(&agencyDesc, "description", "", "Short description")
	agenciesCreateCmd.MarkFlagRequired("name")
	agenciesCreateCmd.MarkFlagRequired("email")
}

// runAgencies lists all agencies and returns exit code
func runAgencies(ctx context.Context, w io.Writer) int {
	store := newSessionStore()
	if store.User() == nil {
		fmt.Fprintln(w, "Error: not logged in. Run 'rentadesk login' first.")
		return 1
	}

	c := newClient(store)
	agencies, err := c.Agencies(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(agencies, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatAgenciesHuman(agencies))
	return 0
}

// runAgenciesCreate creates a new agency and returns exit code
func runAgenciesCreate(ctx context.Context, w io.Writer) int {
	store := newSessionStore()
	if store.User() == nil {
		fmt.Fprintln(w, "Error: not logged in. Run 'rentadesk login' first.")
		return 1
	}

	input := client.AgencyInput{
		Name:        agencyName,
		Email:       agencyEmail,
		Phone:       agencyPhone,
		Address:     agencyAddress,
		Description: agencyDesc,
	}

	c := newClient(store)
	agency, err := c.CreateAgency(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(agency, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Agency created: %s (%s)\n", agency.Name, agency.AgencyID)
	return 0
}

// runAgenciesAnalytics prints platform counters and returns exit code
func runAgenciesAnalytics(ctx context.Context, w io.Writer) int {
	store := newSessionStore()
	if store.User() == nil {
		fmt.Fprintln(w, "Error: not logged in. Run 'rentadesk login' first.")
		return 1
	}

	c := newClient(store)
	analytics, err := c.Analytics(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(analytics, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, `Agencies: %d (%d active)
Cars:     %d
Bookings: %d
`, analytics.TotalAgencies, analytics.ActiveAgencies, analytics.TotalCars, analytics.TotalBookings)
	return 0
}

// formatAgenciesHuman formats agencies as an aligned table
func formatAgenciesHuman(agencies []client.Agency) string {
	if len(agencies) == 0 {
		return "No agencies registered yet."
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tPHONE\tSTATUS")
	for _, a := range agencies {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Name, a.Email, a.Phone, a.Status)
	}
	tw.Flush()
	return sb.String()
}
