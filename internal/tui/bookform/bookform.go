// ABOUTME: Booking wizard as a bubbletea model with step-by-step huh forms
// ABOUTME: Collects dates, locations, and contact details with a live price summary

package bookform

import (
	"fmt"
	"net/mail"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"rentadesk/internal/booking"
	"rentadesk/internal/client"
	"rentadesk/internal/tui/icons"
	"rentadesk/internal/tui/styles"
)

// CompleteMsg is sent when the wizard finishes and the booking is confirmed
type CompleteMsg struct {
	Draft *booking.Draft
}

// CancelledMsg is sent when the wizard is cancelled
type CancelledMsg struct{}

// Wizard manages the booking flow as a bubbletea model
type Wizard struct {
	draft *booking.Draft
	form  *huh.Form
	step  int
	width int
	err   string

	// Form field values (strings for huh)
	pickupDate  string
	returnDate  string
	pickupLoc   string
	dropoffLoc  string
	name        string
	email       string
	phone       string
	confirmSend bool
}

// Step names for progress indicator
var stepNames = []string{"Dates", "Locations", "Contact", "Review"}

// Common branch locations offered alongside free-form input
var locationOptions = []huh.Option[string]{
	huh.NewOption("Airport terminal", "Airport terminal"),
	huh.NewOption("Downtown office", "Downtown office"),
	huh.NewOption("Harbor station", "Harbor station"),
	huh.NewOption("Hotel delivery", "Hotel delivery"),
}

// createTheme returns a huh theme matching the shared palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Text)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(styles.Primary).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(styles.Muted).
		Background(styles.Surface).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)

	return t
}

// New creates a booking wizard for the given car
func New(car *client.Car) *Wizard {
	w := &Wizard{
		draft: &booking.Draft{
			Car: car,
		},
		step:       1,
		pickupLoc:  "Airport terminal",
		dropoffLoc: "Airport terminal",
	}
	w.form = w.createDatesForm()
	return w
}

func (w *Wizard) createDatesForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pickup date").
				Description("Format: YYYY-MM-DD").
				Placeholder("2026-09-15").
				CharLimit(10).
				Value(&w.pickupDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Return date").
				Description("Format: YYYY-MM-DD").
				Placeholder("2026-09-18").
				CharLimit(10).
				Value(&w.returnDate).
				Validate(validateDate),
		).Title("Step 1: Rental Dates").
			Description("When does the rental start and end?"),
	).WithTheme(createTheme())
}

func (w *Wizard) createLocationsForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pickup location").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(locationOptions...).
				Value(&w.pickupLoc),
			huh.NewSelect[string]().
				Title("Drop-off location").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(locationOptions...).
				Value(&w.dropoffLoc),
		).Title("Step 2: Locations").
			Description("Where is the car picked up and returned?"),
	).WithTheme(createTheme())
}

func (w *Wizard) createContactForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Customer name").
				Placeholder("Ada Lovelace").
				CharLimit(128).
				Value(&w.name).
				Validate(validateRequired("customer name")),
			huh.NewInput().
				Title("Customer email").
				Placeholder("customer@example.com").
				CharLimit(128).
				Value(&w.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Customer phone").
				Placeholder("+1 555 0100").
				CharLimit(32).
				Value(&w.phone).
				Validate(validateRequired("customer phone")),
		).Title("Step 3: Contact Details").
			Description("Who is renting the car?"),
	).WithTheme(createTheme())
}

func (w *Wizard) createReviewForm() *huh.Form {
	w.confirmSend = true
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Confirm booking").
				Description("Submit this booking to the agency?").
				Affirmative("Book it").
				Negative("Cancel").
				Value(&w.confirmSend),
		).Title("Step 4: Review"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.draft.PickupDate, _ = booking.ParseDate(w.pickupDate)
		w.draft.ReturnDate, _ = booking.ParseDate(w.returnDate)
		w.step = 2
		w.form = w.createLocationsForm()
		return w, w.form.Init()

	case 2:
		w.draft.PickupLocation = w.pickupLoc
		w.draft.ReturnLocation = w.dropoffLoc
		w.step = 3
		w.form = w.createContactForm()
		return w, w.form.Init()

	case 3:
		w.draft.ClientName = strings.TrimSpace(w.name)
		w.draft.ClientEmail = strings.TrimSpace(w.email)
		w.draft.ClientPhone = strings.TrimSpace(w.phone)
		w.step = 4
		w.form = w.createReviewForm()
		return w, w.form.Init()

	case 4:
		if !w.confirmSend {
			return w, func() tea.Msg { return CancelledMsg{} }
		}
		draft := w.draft
		return w, func() tea.Msg {
			return CompleteMsg{Draft: draft}
		}
	}

	return w, nil
}

// SetError reopens the review step with a failure message, keeping
// everything the user already entered.
func (w *Wizard) SetError(message string) {
	w.err = message
	w.step = 4
	w.form = w.createReviewForm()
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// Draft returns the booking under construction
func (w *Wizard) Draft() *booking.Draft {
	return w.draft
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")

	if w.err != "" {
		sb.WriteString(styles.StatusError.Render(icons.Critical.String() + " " + w.err))
		sb.WriteString("\n\n")
	}

	if w.step >= 2 {
		sb.WriteString(w.renderSummary())
		sb.WriteString("\n")
	}

	sb.WriteString(w.form.View())

	return sb.String()
}

// renderSummary shows the running price summary for the draft
func (w *Wizard) renderSummary() string {
	s := w.draft.Summary()

	var lines []string
	if w.draft.Car != nil {
		lines = append(lines, fmt.Sprintf("%s %s  %s/day",
			icons.Car.String(),
			styles.ValueStyle.Render(w.draft.Car.Title),
			styles.PriceStyle.Render(fmt.Sprintf("$%.2f", w.draft.Car.PricePerDay))))
	}
	lines = append(lines, fmt.Sprintf("%s %s → %s  (%d day(s))",
		icons.Calendar.String(),
		w.draft.PickupDate.Format(booking.DateFormat),
		w.draft.ReturnDate.Format(booking.DateFormat),
		s.Days))
	if w.step >= 3 {
		lines = append(lines, fmt.Sprintf("%s %s → %s",
			icons.Location.String(), w.draft.PickupLocation, w.draft.ReturnLocation))
	}
	lines = append(lines, fmt.Sprintf("%s Total: %s",
		icons.Money.String(),
		styles.PriceStyle.Render(fmt.Sprintf("$%.2f", s.Total))))

	return styles.Panel.Render(strings.Join(lines, "\n"))
}

// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		if stepNum < w.step {
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		} else if stepNum == w.step {
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		} else {
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}

	return strings.Join(steps, "    ")
}

func validateDate(s string) error {
	if _, err := booking.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a date like 2026-09-15")
	}
	return nil
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateEmail(s string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}
