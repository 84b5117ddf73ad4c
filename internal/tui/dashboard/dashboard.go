// ABOUTME: Agency dashboard component showing the fleet and recent bookings
// ABOUTME: Renders two focusable tables and emits car selection for new bookings

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rentadesk/internal/client"
	"rentadesk/internal/tui/icons"
	"rentadesk/internal/tui/styles"
)

// CarSelectedMsg is sent when a car is chosen for a new booking
type CarSelectedMsg struct {
	Car client.Car
}

// Pane identifies which table has focus
type Pane int

const (
	PaneFleet Pane = iota
	PaneBookings
)

// Dashboard displays an agency's fleet and bookings
type Dashboard struct {
	agencyName string
	cars       []client.Car
	bookings   []client.Booking
	fleet      table.Model
	recent     table.Model
	focus      Pane
	width      int
	height     int
}

// New creates a dashboard for the given agency data
func New(agencyName string, cars []client.Car, bookings []client.Booking, width, height int) *Dashboard {
	d := &Dashboard{
		agencyName: agencyName,
		cars:       cars,
		bookings:   bookings,
		width:      width,
		height:     height,
		focus:      PaneFleet,
	}
	d.fleet = d.buildFleetTable()
	d.recent = d.buildBookingsTable()
	d.fleet.Focus()
	d.recent.Blur()
	return d
}

func tableStyles(focused bool) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Accent)
	if focused {
		s.Selected = s.Selected.
			Foreground(styles.Text).
			Background(styles.Primary).
			Bold(true)
	} else {
		s.Selected = s.Selected.
			Foreground(styles.Text).
			Background(styles.Surface)
	}
	return s
}

func (d *Dashboard) buildFleetTable() table.Model {
	columns := []table.Column{
		{Title: "Car", Width: 28},
		{Title: "Plate", Width: 10},
		{Title: "$/day", Width: 8},
		{Title: "Status", Width: 12},
	}

	rows := make([]table.Row, 0, len(d.cars))
	for _, c := range d.cars {
		rows = append(rows, table.Row{
			c.Title,
			c.PlateNumber,
			fmt.Sprintf("%.2f", c.PricePerDay),
			c.Status,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(d.fleetHeight()),
	)
	t.SetStyles(tableStyles(d.focus == PaneFleet))
	return t
}

func (d *Dashboard) buildBookingsTable() table.Model {
	columns := []table.Column{
		{Title: "Client", Width: 20},
		{Title: "Pickup", Width: 12},
		{Title: "Return", Width: 12},
		{Title: "Total", Width: 10},
		{Title: "Status", Width: 11},
	}

	rows := make([]table.Row, 0, len(d.bookings))
	for _, b := range d.bookings {
		rows = append(rows, table.Row{
			b.ClientName,
			shortDate(b.PickupDate),
			shortDate(b.ReturnDate),
			fmt.Sprintf("%.2f", b.TotalAmount),
			b.Status,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(d.bookingsHeight()),
	)
	t.SetStyles(tableStyles(d.focus == PaneBookings))
	return t
}

// shortDate trims an ISO-8601 timestamp to its calendar date
func shortDate(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return iso
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.fleet.SetHeight(d.fleetHeight())
	d.recent.SetHeight(d.bookingsHeight())
}

func (d *Dashboard) fleetHeight() int {
	h := (d.height - 8) / 2
	if h < 3 {
		h = 3
	}
	return h
}

func (d *Dashboard) bookingsHeight() int {
	return d.fleetHeight()
}

// SelectedCar returns the car under the fleet cursor, if any
func (d *Dashboard) SelectedCar() (client.Car, bool) {
	idx := d.fleet.Cursor()
	if idx < 0 || idx >= len(d.cars) {
		return client.Car{}, false
	}
	return d.cars[idx], true
}

// Update routes key events to the focused table
func (d *Dashboard) Update(msg tea.Msg) (*Dashboard, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "tab":
		d.toggleFocus()
		return d, nil

	case "enter":
		if d.focus == PaneFleet {
			if car, ok := d.SelectedCar(); ok {
				return d, func() tea.Msg { return CarSelectedMsg{Car: car} }
			}
		}
		return d, nil
	}

	var cmd tea.Cmd
	if d.focus == PaneFleet {
		d.fleet, cmd = d.fleet.Update(msg)
	} else {
		d.recent, cmd = d.recent.Update(msg)
	}
	return d, cmd
}

func (d *Dashboard) toggleFocus() {
	if d.focus == PaneFleet {
		d.focus = PaneBookings
		d.fleet.Blur()
		d.recent.Focus()
	} else {
		d.focus = PaneFleet
		d.recent.Blur()
		d.fleet.Focus()
	}
	d.fleet.SetStyles(tableStyles(d.focus == PaneFleet))
	d.recent.SetStyles(tableStyles(d.focus == PaneBookings))
}

// View renders the dashboard
func (d *Dashboard) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Agency.String() + " " + d.agencyName))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s Fleet (%d cars)", icons.Car.String(), len(d.cars))))
	sb.WriteString("\n")
	if len(d.cars) == 0 {
		sb.WriteString(styles.Help.Render("No cars in the fleet yet."))
	} else {
		sb.WriteString(d.fleet.View())
	}
	sb.WriteString("\n\n")

	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s Bookings (%d)", icons.Booking.String(), len(d.bookings))))
	sb.WriteString("\n")
	if len(d.bookings) == 0 {
		sb.WriteString(styles.Help.Render("No bookings yet."))
	} else {
		sb.WriteString(d.recent.View())
	}

	return lipgloss.NewStyle().Width(d.width).Render(sb.String())
}
