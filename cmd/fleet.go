// ABOUTME: Fleet commands for the rentadesk CLI
// ABOUTME: Lists the agency fleet and registers new cars

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
	carTitle string
	carModel string
	carBrand string
	carYear  int
	carPlate string
	carColor string
	carPrice float64
)

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "List your agency's fleet",
	Long: `List the cars of the logged-in account's agency.

Exit codes:
  0 - Listed
  1 - Not logged in or no agency
  2 - Backend error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runFleet(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var fleetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new car",
	Long:  `Register a new car in the logged-in account's agency fleet.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runFleetAdd(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(fleetCmd)
	fleetCmd.AddCommand(fleetAddCmd)

	fleetAddCmd.Flags().StringVar(&carTitle, "title", "", "Listing title, e.g. \"Toyota Corolla 2023\"")
	fleetAddCmd.Flags().StringVar(&carModel, "model", "", "Car model")
	fleetAddCmd.Flags().StringVar(&carBrand, "brand", "", "Car brand")
	fleetAddCmd.Flags().IntVar(&carYear, "year", 0, "Model year")
	fleetAddCmd.Flags().StringVar(&carPlate, "plate", "", "Plate number")
	fleetAddCmd.Flags().StringVar(&carColor, "color", "", "Color")
	fleetAddCmd.Flags().Float64Var(&carPrice, "price", 0, "Price per day")
	fleetAddCmd.MarkFlagRequired("title")
	fleetAddCmd.MarkFlagRequired("price")
}

// runFleet lists the agency fleet and returns exit code
func runFleet(ctx context.Context, w io.Writer) int {
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
	cars, err := c.AgencyCars(ctx, user.AgencyID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(cars, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatFleetHuman(cars))
	return 0
}

// runFleetAdd registers a new car and returns exit code
func runFleetAdd(ctx context.Context, w io.Writer) int {
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

	input := client.CarInput{
		Title:       carTitle,
		Model:       carModel,
		Brand:       carBrand,
		Year:        carYear,
		PlateNumber: carPlate,
		Color:       carColor,
		PricePerDay: carPrice,
		Features:    []string{},
		AgencyID:    user.AgencyID,
	}

	c := newClient(store)
	car, err := c.CreateCar(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(car, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Car registered: %s (%s) at $%.2f/day\n", car.Title, car.CarID, car.PricePerDay)
	return 0
}

// formatFleetHuman formats the fleet as an aligned table
func formatFleetHuman(cars []client.Car) string {
	if len(cars) == 0 {
		return "No cars in the fleet yet."
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CAR\tPLATE\t$/DAY\tSTATUS")
	for _, c := range cars {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", c.Title, c.PlateNumber, c.PricePerDay, c.Status)
	}
	tw.Flush()
	return sb.String()
}
