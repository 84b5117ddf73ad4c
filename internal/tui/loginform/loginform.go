// ABOUTME: Login and registration form as a bubbletea model
// ABOUTME: Uses huh forms with a shared theme and mode switching via ctrl+r

package loginform

import (
	"fmt"
	"net/mail"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"rentadesk/internal/client"
	"rentadesk/internal/tui/icons"
	"rentadesk/internal/tui/styles"
)

// Mode selects which form is shown
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// LoginSubmittedMsg is sent when the login form completes
type LoginSubmittedMsg struct {
	Email    string
	Password string
}

// RegisterSubmittedMsg is sent when the registration form completes
type RegisterSubmittedMsg struct {
	Input client.RegisterRequest
}

// CancelledMsg is sent when the user backs out of the form
type CancelledMsg struct{}

// Model manages the login/register form flow
type Model struct {
	mode  Mode
	form  *huh.Form
	err   string
	width int

	// Form field values survive form rebuilds, so a failed
	// submission keeps whatever the user already typed.
	email     string
	password  string
	firstName string
	lastName  string
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

// New creates a login form in the given mode
func New(mode Mode) *Model {
	m := &Model{mode: mode}
	m.form = m.createForm()
	return m
}

func (m *Model) createForm() *huh.Form {
	if m.mode == ModeRegister {
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("First name").
					Placeholder("Ada").
					CharLimit(64).
					Value(&m.firstName).
					Validate(validateRequired("first name")),
				huh.NewInput().
					Title("Last name").
					Placeholder("Lovelace").
					CharLimit(64).
					Value(&m.lastName).
					Validate(validateRequired("last name")),
				huh.NewInput().
					Title("Email").
					Placeholder("you@example.com").
					CharLimit(128).
					Value(&m.email).
					Validate(validateEmail),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					CharLimit(128).
					Value(&m.password).
					Validate(validatePassword),
			).Title("Create account").
				Description("Register a new staff account"),
		).WithTheme(createTheme())
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				CharLimit(128).
				Value(&m.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				CharLimit(128).
				Value(&m.password).
				Validate(validateRequired("password")),
		).Title("Sign in").
			Description("Enter your credentials to continue"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CancelledMsg{} }
		case "ctrl+r":
			m.toggleMode()
			return m, m.form.Init()
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.submit()
	}

	return m, cmd
}

func (m *Model) toggleMode() {
	if m.mode == ModeLogin {
		m.mode = ModeRegister
	} else {
		m.mode = ModeLogin
	}
	m.err = ""
	m.form = m.createForm()
}

func (m *Model) submit() tea.Cmd {
	if m.mode == ModeRegister {
		input := client.RegisterRequest{
			Email:     strings.TrimSpace(m.email),
			Password:  m.password,
			FirstName: strings.TrimSpace(m.firstName),
			LastName:  strings.TrimSpace(m.lastName),
		}
		return func() tea.Msg {
			return RegisterSubmittedMsg{Input: input}
		}
	}

	email := strings.TrimSpace(m.email)
	password := m.password
	return func() tea.Msg {
		return LoginSubmittedMsg{Email: email, Password: password}
	}
}

// SetError shows a failure message and reopens the form with the
// previously entered values intact.
func (m *Model) SetError(message string) {
	m.err = message
	m.password = ""
	m.form = m.createForm()
}

// Mode returns the current form mode
func (m *Model) Mode() Mode {
	return m.mode
}

// Err returns the current failure message, if any
func (m *Model) Err() string {
	return m.err
}

// SetWidth sets the form width for rendering
func (m *Model) SetWidth(width int) {
	m.width = width
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Key.String() + " RentaDesk"))
	sb.WriteString("\n")

	if m.err != "" {
		sb.WriteString(styles.StatusError.Render(icons.Critical.String() + " " + m.err))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.form.View())

	hint := "ctrl+r switch to create account"
	if m.mode == ModeRegister {
		hint = "ctrl+r switch to sign in"
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render(hint))

	return sb.String()
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

func validatePassword(s string) error {
	if len(s) < 6 {
		return fmt.Errorf("must be at least 6 characters")
	}
	return nil
}
