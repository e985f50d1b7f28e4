// ABOUTME: Login form as a bubbletea model
// ABOUTME: Collects credentials with a huh form and emits a submission message

package loginform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/smartsales365/console/internal/tui/styles"
)

// SubmittedMsg is sent when the user submits credentials
type SubmittedMsg struct {
	Username string
	Password string
}

// CancelledMsg is sent when the user backs out of the form
type CancelledMsg struct{}

// LoginForm is the credential entry component
type LoginForm struct {
	form     *huh.Form
	username string
	password string
	errMsg   string
	width    int
}

// New creates a new login form
func New() *LoginForm {
	f := &LoginForm{}
	f.form = f.buildForm()
	return f
}

func (f *LoginForm) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("admin_test").
				Value(&f.username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(required("password")),
		).Title("SmartSales Login").
			Description("Sign in with your backend account"),
	).WithTheme(huh.ThemeBase())
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return &emptyFieldError{field}
		}
		return nil
	}
}

type emptyFieldError struct{ field string }

func (e *emptyFieldError) Error() string { return e.field + " is required" }

// SetError displays a submission error and resets the form for another try.
// The message is intentionally generic; the cause lives in the debug log.
func (f *LoginForm) SetError(msg string) {
	f.errMsg = msg
	f.password = ""
	f.form = f.buildForm()
}

// Init implements tea.Model
func (f *LoginForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *LoginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return f, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := f.form.Update(msg)
	if m, ok := form.(*huh.Form); ok {
		f.form = m
	}

	if f.form.State == huh.StateCompleted {
		username, password := f.username, f.password
		return f, func() tea.Msg {
			return SubmittedMsg{Username: username, Password: password}
		}
	}

	return f, cmd
}

// View implements tea.Model
func (f *LoginForm) View() string {
	var sb strings.Builder

	if f.errMsg != "" {
		sb.WriteString(styles.StatusCritical.Render(f.errMsg))
		sb.WriteString("\n\n")
	}
	sb.WriteString(f.form.View())

	return sb.String()
}
