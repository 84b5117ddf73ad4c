// ABOUTME: Platform admin dashboard showing all agencies and platform analytics
// ABOUTME: Renders an agency table next to aggregate counters

package admin

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

// Dashboard displays the platform-wide admin view
type Dashboard struct {
	agencies  []client.Agency
	analytics *client.Analytics
	tbl       table.Model
	width     int
	height    int
}

// New creates an admin dashboard from platform data
func New(agencies []client.Agency, analytics *client.Analytics, width, height int) *Dashboard {
	d := &Dashboard{
		agencies:  agencies,
		analytics: analytics,
		width:     width,
		height:    height,
	}
	d.tbl = d.buildTable()
	d.tbl.Focus()
	return d
}

func (d *Dashboard) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Agency", Width: 24},
		{Title: "Email", Width: 26},
		{Title: "Phone", Width: 14},
		{Title: "Status", Width: 10},
	}

	rows := make([]table.Row, 0, len(d.agencies))
	for _, a := range d.agencies {
		rows = append(rows, table.Row{
			a.Name,
			a.Email,
			a.Phone,
			a.Status,
		})
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Accent)
	s.Selected = s.Selected.
		Foreground(styles.Text).
		Background(styles.Primary).
		Bold(true)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(d.tableHeight()),
	)
	t.SetStyles(s)
	return t
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.tbl.SetHeight(d.tableHeight())
}

func (d *Dashboard) tableHeight() int {
	h := d.height - 10
	if h < 3 {
		h = 3
	}
	return h
}

// SelectedAgency returns the agency under the cursor, if any
func (d *Dashboard) SelectedAgency() (client.Agency, bool) {
	idx := d.tbl.Cursor()
	if idx < 0 || idx >= len(d.agencies) {
		return client.Agency{}, false
	}
	return d.agencies[idx], true
}

// Update routes key events to the agency table
func (d *Dashboard) Update(msg tea.Msg) (*Dashboard, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return d, nil
	}
	var cmd tea.Cmd
	d.tbl, cmd = d.tbl.Update(msg)
	return d, cmd
}

// View renders the admin dashboard
func (d *Dashboard) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Shield.String() + " Platform Administration"))
	sb.WriteString("\n")

	if d.analytics != nil {
		sb.WriteString(d.renderAnalytics())
		sb.WriteString("\n\n")
	}

	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s Agencies (%d)", icons.Agency.String(), len(d.agencies))))
	sb.WriteString("\n")
	if len(d.agencies) == 0 {
		sb.WriteString(styles.Help.Render("No agencies registered yet."))
	} else {
		sb.WriteString(d.tbl.View())
	}

	return lipgloss.NewStyle().Width(d.width).Render(sb.String())
}

// renderAnalytics shows the aggregate platform counters in one row
func (d *Dashboard) renderAnalytics() string {
	a := d.analytics

	block := func(icon, label string, value int) string {
		content := fmt.Sprintf("%s %s\n%s",
			icon,
			styles.LabelStyle.Render(label),
			styles.ValueStyle.Render(fmt.Sprintf("%d", value)))
		return styles.Panel.Render(content)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		block(icons.Agency.String(), "Agencies", a.TotalAgencies),
		block(icons.CheckOK.String(), "Active", a.ActiveAgencies),
		block(icons.Car.String(), "Cars", a.TotalCars),
		block(icons.Booking.String(), "Bookings", a.TotalBookings),
	)
}
