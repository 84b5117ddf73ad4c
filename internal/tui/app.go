// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Restores the session, applies route guards, and drives screen transitions

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"rentadesk/internal/auth"
	"rentadesk/internal/booking"
	"rentadesk/internal/client"
	"rentadesk/internal/guard"
	"rentadesk/internal/session"
	"rentadesk/internal/tui/admin"
	"rentadesk/internal/tui/bookform"
	"rentadesk/internal/tui/dashboard"
	"rentadesk/internal/tui/icons"
	"rentadesk/internal/tui/loginform"
	"rentadesk/internal/tui/styles"
	"rentadesk/internal/tui/widgets"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLogin
	ScreenAgency
	ScreenAdmin
	ScreenUnauthorized
	ScreenBooking
	ScreenConfirmation
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping frame rendering
	panelPadding     = 4  // Total horizontal padding from panel borders
)

// sessionRestoredMsg is sent when the persisted session has been read
type sessionRestoredMsg struct {
	user *session.UserProfile
}

// authDoneMsg is sent when a login or registration attempt completes
type authDoneMsg struct {
	result auth.Result
}

// agencyDataMsg is sent when the agency dashboard data has been fetched
type agencyDataMsg struct {
	agencyName string
	cars       []client.Car
	bookings   []client.Booking
	err        error
}

// adminDataMsg is sent when the platform admin data has been fetched
type adminDataMsg struct {
	agencies  []client.Agency
	analytics *client.Analytics
	err       error
}

// bookingDoneMsg is sent when a booking submission completes
type bookingDoneMsg struct {
	confirmation *client.BookingConfirmation
	err          error
}

// App is the root model for the TUI
type App struct {
	api    *client.Client
	gw     *auth.Gateway
	store  *session.Store
	status guard.Status
	screen Screen
	width  int
	height int
	err    string

	spin         spinner.Model
	login        *loginform.Model
	agencyView   *dashboard.Dashboard
	adminView    *admin.Dashboard
	bookWizard   *bookform.Wizard
	confirmation *client.BookingConfirmation
	lastUpdate   time.Time
}

// New creates a new TUI application
func New(api *client.Client, gw *auth.Gateway, store *session.Store) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		api:    api,
		gw:     gw,
		store:  store,
		status: guard.Status{Loading: true},
		screen: ScreenLoading,
		spin:   sp,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.restoreSession())
}

// restoreSession reads the persisted session off the UI loop
func (a *App) restoreSession() tea.Cmd {
	return func() tea.Msg {
		if err := a.store.Load(); err != nil {
			slog.Warn("session restore failed", "error", err)
		}
		return sessionRestoredMsg{user: a.store.User()}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.agencyView != nil {
			a.agencyView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.adminView != nil {
			a.adminView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.login != nil {
			a.login.SetWidth(a.contentWidth())
		}
		if a.bookWizard != nil {
			a.bookWizard.SetWidth(a.contentWidth())
			return a.updateBookWizard(msg)
		}
		return a, nil

	case spinner.TickMsg:
		if a.screen == ScreenLoading {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.screen {
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenAgency:
			return a.updateAgency(msg)
		case ScreenAdmin:
			return a.updateAdmin(msg)
		case ScreenUnauthorized:
			return a.updateUnauthorized(msg)
		case ScreenBooking:
			return a.updateBookWizard(msg)
		case ScreenConfirmation:
			return a.updateConfirmation(msg)
		}
		return a, nil

	case sessionRestoredMsg:
		return a.handleSessionRestored(msg)

	case loginform.LoginSubmittedMsg:
		return a, a.doLogin(msg.Email, msg.Password)

	case loginform.RegisterSubmittedMsg:
		return a, a.doRegister(msg.Input)

	case loginform.CancelledMsg:
		return a, tea.Quit

	case authDoneMsg:
		return a.handleAuthDone(msg)

	case dashboard.CarSelectedMsg:
		return a.startBooking(msg.Car)

	case bookform.CompleteMsg:
		return a, a.submitBooking(msg.Draft)

	case bookform.CancelledMsg:
		a.screen = ScreenAgency
		a.bookWizard = nil
		return a, nil

	case agencyDataMsg:
		return a.handleAgencyData(msg)

	case adminDataMsg:
		return a.handleAdminData(msg)

	case bookingDoneMsg:
		return a.handleBookingDone(msg)

	default:
		// Forward unknown messages to active forms (needed for huh internals)
		if a.screen == ScreenLogin && a.login != nil {
			return a.updateLogin(msg)
		}
		if a.screen == ScreenBooking && a.bookWizard != nil {
			return a.updateBookWizard(msg)
		}
	}

	return a, nil
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.login == nil {
		return a, nil
	}
	model, cmd := a.login.Update(msg)
	a.login = model.(*loginform.Model)
	return a, cmd
}

func (a *App) updateAgency(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.screen = ScreenLoading
		return a, tea.Batch(a.spin.Tick, a.loadAgencyData())
	case "a":
		return a.routeToAdmin()
	case "ctrl+l":
		return a.logout()
	}
	if a.agencyView == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.agencyView, cmd = a.agencyView.Update(msg)
	return a, cmd
}

func (a *App) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.screen = ScreenLoading
		return a, tea.Batch(a.spin.Tick, a.loadAdminData())
	case "ctrl+l":
		return a.logout()
	}
	if a.adminView == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.adminView, cmd = a.adminView.Update(msg)
	return a, cmd
}

func (a *App) updateUnauthorized(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "h":
		return a.routeHome()
	}
	return a, nil
}

func (a *App) updateBookWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.bookWizard == nil {
		return a, nil
	}
	model, cmd := a.bookWizard.Update(msg)
	a.bookWizard = model.(*bookform.Wizard)
	return a, cmd
}

func (a *App) updateConfirmation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "enter", "b":
		a.confirmation = nil
		a.bookWizard = nil
		a.screen = ScreenLoading
		return a, tea.Batch(a.spin.Tick, a.loadAgencyData())
	}
	return a, nil
}

// handleSessionRestored routes to the initial screen once the persisted
// session is known. The login view is public-only: a restored session
// goes straight to its role's home.
func (a *App) handleSessionRestored(msg sessionRestoredMsg) (tea.Model, tea.Cmd) {
	a.status = guard.Status{Loading: false, User: msg.user}

	switch guard.PublicOnly(a.status) {
	case guard.Allow:
		return a.showLogin()
	case guard.RedirectAdminHome:
		a.screen = ScreenLoading
		return a, tea.Batch(a.spin.Tick, a.loadAdminData())
	default:
		a.screen = ScreenLoading
		return a, tea.Batch(a.spin.Tick, a.loadAgencyData())
	}
}

func (a *App) showLogin() (tea.Model, tea.Cmd) {
	a.login = loginform.New(loginform.ModeLogin)
	a.screen = ScreenLogin
	return a, a.login.Init()
}

func (a *App) logout() (tea.Model, tea.Cmd) {
	a.gw.Logout()
	a.status = guard.Status{Loading: false}
	a.agencyView = nil
	a.adminView = nil
	a.err = ""
	return a.showLogin()
}

// routeHome sends the user to the dashboard matching their role
func (a *App) routeHome() (tea.Model, tea.Cmd) {
	if a.status.User == nil {
		return a.showLogin()
	}
	a.screen = ScreenLoading
	if guard.Home(a.status.User.Role) == guard.RedirectAdminHome {
		return a, tea.Batch(a.spin.Tick, a.loadAdminData())
	}
	return a, tea.Batch(a.spin.Tick, a.loadAgencyData())
}

// routeToAdmin guards the platform admin screen
func (a *App) routeToAdmin() (tea.Model, tea.Cmd) {
	switch guard.Protected(a.status, session.RoleSuperAdmin) {
	case guard.Allow:
		a.screen = ScreenLoading
		return a, tea.Batch(a.spin.Tick, a.loadAdminData())
	case guard.RedirectLogin:
		return a.showLogin()
	case guard.ShowLoading:
		return a, nil
	default:
		a.screen = ScreenUnauthorized
		return a, nil
	}
}

func (a *App) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{result: a.gw.Login(context.Background(), email, password)}
	}
}

func (a *App) doRegister(input client.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{result: a.gw.Register(context.Background(), input)}
	}
}

// handleAuthDone adopts the new session on success; on failure the form
// stays up with the message and the typed email intact.
func (a *App) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	if !msg.result.OK {
		if a.login != nil {
			a.login.SetError(msg.result.Message)
			return a, a.login.Init()
		}
		return a, nil
	}
	a.status = guard.Status{Loading: false, User: a.store.User()}
	a.login = nil
	return a.routeHome()
}

func (a *App) startBooking(car client.Car) (tea.Model, tea.Cmd) {
	a.bookWizard = bookform.New(&car)
	a.bookWizard.SetWidth(a.contentWidth())
	a.screen = ScreenBooking
	return a, a.bookWizard.Init()
}

func (a *App) submitBooking(draft *booking.Draft) tea.Cmd {
	return func() tea.Msg {
		conf, err := draft.Submit(context.Background(), a.api)
		return bookingDoneMsg{confirmation: conf, err: err}
	}
}

// handleBookingDone shows the confirmation, or reopens the review step
// with the draft intact so the user can retry without re-entering.
func (a *App) handleBookingDone(msg bookingDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if a.bookWizard != nil {
			a.bookWizard.SetError(msg.err.Error())
			a.screen = ScreenBooking
			return a, a.bookWizard.Init()
		}
		return a, nil
	}
	a.confirmation = msg.confirmation
	a.screen = ScreenConfirmation
	return a, nil
}

// loadAgencyData fetches the storefront, fleet, and bookings together.
// Each failure is logged individually; the first error wins.
func (a *App) loadAgencyData() tea.Cmd {
	user := a.status.User
	if user == nil {
		return func() tea.Msg { return agencyDataMsg{err: fmt.Errorf("not logged in")} }
	}
	agencyID := user.AgencyID

	return func() tea.Msg {
		g, ctx := errgroup.WithContext(context.Background())

		var catalog *client.AgencyCatalog
		var cars []client.Car
		var bookings []client.Booking

		g.Go(func() error {
			var err error
			catalog, err = a.api.PublicAgencyCars(ctx, agencyID)
			if err != nil {
				slog.Error("storefront fetch failed", "agency_id", agencyID, "error", err)
			}
			return err
		})
		g.Go(func() error {
			var err error
			cars, err = a.api.AgencyCars(ctx, agencyID)
			if err != nil {
				slog.Error("fleet fetch failed", "agency_id", agencyID, "error", err)
			}
			return err
		})
		g.Go(func() error {
			var err error
			bookings, err = a.api.AgencyBookings(ctx, agencyID)
			if err != nil {
				slog.Error("bookings fetch failed", "agency_id", agencyID, "error", err)
			}
			return err
		})

		if err := g.Wait(); err != nil {
			return agencyDataMsg{err: err}
		}

		name := "Agency"
		if catalog != nil && catalog.Agency != nil {
			name = catalog.Agency.Name
		}
		return agencyDataMsg{agencyName: name, cars: cars, bookings: bookings}
	}
}

// loadAdminData fetches the agency list and platform analytics together
func (a *App) loadAdminData() tea.Cmd {
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(context.Background())

		var agencies []client.Agency
		var analytics *client.Analytics

		g.Go(func() error {
			var err error
			agencies, err = a.api.Agencies(ctx)
			if err != nil {
				slog.Error("agency list fetch failed", "error", err)
			}
			return err
		})
		g.Go(func() error {
			var err error
			analytics, err = a.api.Analytics(ctx)
			if err != nil {
				slog.Error("analytics fetch failed", "error", err)
			}
			return err
		})

		if err := g.Wait(); err != nil {
			return adminDataMsg{err: err}
		}
		return adminDataMsg{agencies: agencies, analytics: analytics}
	}
}

func (a *App) handleAgencyData(msg agencyDataMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.err = msg.err.Error()
		a.screen = ScreenAgency
		return a, nil
	}
	a.err = ""
	a.agencyView = dashboard.New(msg.agencyName, msg.cars, msg.bookings, a.contentWidth(), a.contentHeight())
	a.lastUpdate = time.Now()
	a.screen = ScreenAgency
	return a, nil
}

func (a *App) handleAdminData(msg adminDataMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.err = msg.err.Error()
		a.screen = ScreenAdmin
		return a, nil
	}
	a.err = ""
	a.adminView = admin.New(msg.agencies, msg.analytics, a.contentWidth(), a.contentHeight())
	a.lastUpdate = time.Now()
	a.screen = ScreenAdmin
	return a, nil
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLoading:
		content = a.viewLoading()
	case ScreenLogin:
		content = a.viewLogin()
	case ScreenAgency:
		content = a.viewAgency()
	case ScreenAdmin:
		content = a.viewAdmin()
	case ScreenUnauthorized:
		content = a.viewUnauthorized()
	case ScreenBooking:
		content = a.viewBooking()
	case ScreenConfirmation:
		content = a.viewConfirmation()
	default:
		content = a.viewLoading()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewLoading() string {
	return a.spin.View() + " Loading..."
}

func (a *App) viewLogin() string {
	if a.login != nil {
		return a.login.View()
	}
	return ""
}

func (a *App) viewAgency() string {
	if a.err != "" {
		return styles.StatusError.Render("Error: "+a.err) + "\n" +
			styles.Help.Render("r retry  ctrl+l log out  q quit")
	}
	if a.agencyView != nil {
		return styles.ActivePanel.Width(a.contentWidth()).Render(a.agencyView.View())
	}
	return styles.Panel.Width(a.contentWidth()).Render("Loading...")
}

func (a *App) viewAdmin() string {
	if a.err != "" {
		return styles.StatusError.Render("Error: "+a.err) + "\n" +
			styles.Help.Render("r retry  ctrl+l log out  q quit")
	}
	if a.adminView != nil {
		return styles.ActivePanel.Width(a.contentWidth()).Render(a.adminView.View())
	}
	return styles.Panel.Width(a.contentWidth()).Render("Loading...")
}

func (a *App) viewUnauthorized() string {
	content := styles.Title.Render(icons.Warning.String()+" Access denied") + "\n" +
		"Your account does not have access to this area.\n\n" +
		styles.Help.Render("h go to your dashboard  q quit")
	return styles.Panel.Width(a.contentWidth()).Render(content)
}

func (a *App) viewBooking() string {
	if a.bookWizard != nil {
		return a.bookWizard.View()
	}
	return ""
}

func (a *App) viewConfirmation() string {
	if a.confirmation == nil {
		return ""
	}
	b := a.confirmation.Booking

	var sb strings.Builder
	sb.WriteString(styles.StatusOK.Render(icons.CheckOK.String() + " " + a.confirmation.Message))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s %s  %s\n", styles.LabelStyle.Render("Booking"), styles.ValueStyle.Render(b.BookingID), widgets.BookingStatusBadge(b.Status)))
	sb.WriteString(fmt.Sprintf("%s %s\n", styles.LabelStyle.Render("Client"), b.ClientName))
	sb.WriteString(fmt.Sprintf("%s %s → %s\n", styles.LabelStyle.Render("Dates"), b.PickupDate, b.ReturnDate))
	sb.WriteString(fmt.Sprintf("%s %s\n", styles.LabelStyle.Render("Total"), styles.PriceStyle.Render(fmt.Sprintf("$%.2f", b.TotalAmount))))
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("enter back to dashboard  q quit"))

	return styles.Panel.Width(a.contentWidth()).Render(sb.String())
}

// contentWidth calculates the width available inside the frame
func (a *App) contentWidth() int {
	if a.width < minTerminalWidth {
		return minTerminalWidth - panelPadding
	}
	return a.width - panelPadding
}

// contentHeight calculates the height available inside the frame
func (a *App) contentHeight() int {
	return a.height - 8
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("RentaDesk"))

	rightText := ""
	if u := a.status.User; u != nil {
		rightText = contextStyle.Render(u.FullName()) + " " + widgets.RoleBadge(u.Role) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Enter Submit", "ctrl+r Switch mode", "Esc Quit"}
	case ScreenAgency:
		shortcuts = []string{"Enter Book car", "Tab Switch pane", "r Refresh", "a Admin", "ctrl+l Log out", "q Quit"}
	case ScreenAdmin:
		shortcuts = []string{"↑↓ Navigate", "r Refresh", "ctrl+l Log out", "q Quit"}
	case ScreenUnauthorized:
		shortcuts = []string{"h Home", "q Quit"}
	case ScreenBooking:
		shortcuts = []string{"Enter Confirm", "Esc Cancel"}
	case ScreenConfirmation:
		shortcuts = []string{"Enter Back", "q Quit"}
	default:
		shortcuts = []string{"ctrl+c Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && (a.screen == ScreenAgency || a.screen == ScreenAdmin) {
		elapsed := formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"
	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(api *client.Client, gw *auth.Gateway, store *session.Store) error {
	app := New(api, gw, store)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
