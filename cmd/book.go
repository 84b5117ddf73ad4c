// ABOUTME: Book command for the rentadesk CLI
// ABOUTME: Creates a booking non-interactively from flags

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rentadesk/internal/booking"
	"rentadesk/internal/client"
)

var (
	bookAgencyID  string
	bookCarID     string
	bookPickup    string
	bookReturn    string
	bookPickupLoc string
	bookReturnLoc string
	bookName      string
	bookEmail     string
	bookPhone     string
	bookMessage   string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Create a booking",
	Long: `Create a booking through the public booking endpoint.

The car is looked up in the agency's public catalog so the printed
total matches what the storefront shows. Dates use YYYY-MM-DD.

Exit codes:
  0 - Booking created
  1 - Invalid input or booking rejected
  2 - Backend error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBook(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.Flags().StringVar(&bookAgencyID, "agency", "", "Agency id")
	bookCmd.Flags().StringVar(&bookCarID, "car", "", "Car id")
	bookCmd.Flags().StringVar(&bookPickup, "pickup", "", "Pickup date (YYYY-MM-DD)")
	bookCmd.Flags().StringVar(&bookReturn, "return", "", "Return date (YYYY-MM-DD)")
	bookCmd.Flags().StringVar(&bookPickupLoc, "pickup-location", "", "Pickup location")
	bookCmd.Flags().StringVar(&bookReturnLoc, "return-location", "", "Return location")
	bookCmd.Flags().StringVar(&bookName, "name", "", "Client name")
	bookCmd.Flags().StringVar(&bookEmail, "email", "", "Client email")
	bookCmd.Flags().StringVar(&bookPhone, "phone", "", "Client phone")
	bookCmd.Flags().StringVar(&bookMessage, "message", "", "Note for the agency")
	bookCmd.MarkFlagRequired("agency")
	bookCmd.MarkFlagRequired("car")
	bookCmd.MarkFlagRequired("pickup")
	bookCmd.MarkFlagRequired("return")
}

// runBook builds and submits the booking, returning exit code
func runBook(ctx context.Context, w io.Writer) int {
	pickup, err := booking.ParseDate(bookPickup)
	if err != nil {
		fmt.Fprintf(w, "Error: --pickup: %v\n", err)
		return 1
	}
	ret, err := booking.ParseDate(bookReturn)
	if err != nil {
		fmt.Fprintf(w, "Error: --return: %v\n", err)
		return 1
	}

	store := newSessionStore()
	c := newClient(store)

	catalog, err := c.PublicAgencyCars(ctx, bookAgencyID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	car := findCar(catalog.Cars, bookCarID)
	if car == nil {
		fmt.Fprintf(w, "Error: car %q not found in agency %q\n", bookCarID, bookAgencyID)
		return 1
	}

	draft := &booking.Draft{
		Car:            car,
		PickupDate:     pickup,
		ReturnDate:     ret,
		PickupLocation: bookPickupLoc,
		ReturnLocation: bookReturnLoc,
		ClientName:     bookName,
		ClientEmail:    bookEmail,
		ClientPhone:    bookPhone,
		Message:        bookMessage,
	}

	conf, err := draft.Submit(ctx, c)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(conf, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	s := draft.Summary()
	fmt.Fprintf(w, "%s\n", conf.Message)
	fmt.Fprintf(w, "Booking:  %s\n", conf.Booking.BookingID)
	fmt.Fprintf(w, "Car:      %s\n", s.CarTitle)
	fmt.Fprintf(w, "Duration: %d day(s)\n", s.Days)
	fmt.Fprintf(w, "Total:    $%.2f\n", s.Total)
	return 0
}

// findCar locates a car by id in the public catalog
func findCar(cars []client.Car, id string) *client.Car {
	for i := range cars {
		if cars[i].CarID == id {
			return &cars[i]
		}
	}
	return nil
}
