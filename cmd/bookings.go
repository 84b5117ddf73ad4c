// ABOUTME: Bookings command for the rentadesk CLI
// ABOUTME: Lists the agency's bookings with dates, totals, and status

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

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your agency's bookings",
	Long: `List the bookings of the logged-in account's agency.

Exit codes:
  0 - Listed
  1 - Not logged in or no agency
  2 - Backend error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBookings(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(bookingsCmd)
}

// runBookings lists the agency bookings and returns exit code
func runBookings(ctx context.Context, w io.Writer) int {
	store := newSessionStore()
	user := store.User()
	if user == nil {
		fmt.Fprintln(w, "Error: not logged in. Run 'rentadesk login' first.")
		return 1
	}
	if user.AgencyID == "" {
		fmt.Fprintln(w, "Error: this account is not attached to an agency.")
		return 1
	}

	c := newClient(store)
	bookings, err := c.AgencyBookings(ctx, user.AgencyID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(bookings, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatBookingsHuman(bookings))
	return 0
}

// formatBookingsHuman formats bookings as an aligned table
func formatBookingsHuman(bookings []client.Booking) string {
	if len(bookings) == 0 {
		return "No bookings yet."
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLIENT\tPICKUP\tRETURN\tTOTAL\tSTATUS")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n",
			b.ClientName, calendarDate(b.PickupDate), calendarDate(b.ReturnDate), b.TotalAmount, b.Status)
	}
	tw.Flush()
	return sb.String()
}

// calendarDate trims an ISO-8601 timestamp to its date part
func calendarDate(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return iso
}
