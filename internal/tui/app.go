// ABOUTME: Root bubbletea model for the console TUI
// ABOUTME: Guards every screen behind the session and routes input to child components

package tui

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smartsales365/console/internal/api"
	"github.com/smartsales365/console/internal/session"
	"github.com/smartsales365/console/internal/tui/debuglog"
	"github.com/smartsales365/console/internal/tui/icons"
	"github.com/smartsales365/console/internal/tui/loginform"
	"github.com/smartsales365/console/internal/tui/movementform"
	"github.com/smartsales365/console/internal/tui/navigation"
	"github.com/smartsales365/console/internal/tui/styles"
	"github.com/smartsales365/console/internal/tui/widgets"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLogin
	ScreenHome
	ScreenProfile
	ScreenOrders
	ScreenProducts
	ScreenInventory
	ScreenMovement
	ScreenUsers
	ScreenReports
	ScreenAuditLog
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping panel math
	frameOverhead    = 8  // Header, footer, panel borders and padding
)

// sessionLoadedMsg is sent once the persisted session has been read
type sessionLoadedMsg struct {
	state session.State
}

// loginDoneMsg is sent when a login attempt finishes
type loginDoneMsg struct {
	state session.State
	err   error
}

// loggedOutMsg is sent after the session has been cleared
type loggedOutMsg struct{}

// catalogLoadedMsg is sent when products and categories arrive
type catalogLoadedMsg struct {
	products   []api.Product
	categories []api.Category
	err        error
}

// movementsLoadedMsg is sent when inventory history arrives
type movementsLoadedMsg struct {
	movements []api.InventoryMovement
	err       error
}

// movementSavedMsg is sent after recording a stock movement
type movementSavedMsg struct {
	err error
}

// usersLoadedMsg is sent when the user listing arrives
type usersLoadedMsg struct {
	users []api.User
	err   error
}

// userToggledMsg is sent after flipping a user's active flag
type userToggledMsg struct {
	err error
}

// logsLoadedMsg is sent when audit entries arrive
type logsLoadedMsg struct {
	logs []api.AuditLog
	err  error
}

// reportDoneMsg is sent when a report prompt has been answered
type reportDoneMsg struct {
	report *api.ReportQuery
	err    error
}

// reportSavedMsg is sent after downloading a report file to disk
type reportSavedMsg struct {
	path string
	err  error
}

// App is the root model for the TUI
type App struct {
	session *session.Controller
	client  *api.Client

	screen  Screen
	width   int
	height  int
	err     error
	loading bool
	state   session.State

	// Child models
	login    *loginform.LoginForm
	movement *movementform.MovementForm

	// Home menu
	entries []navigation.Entry
	cursor  int

	// Loaded data
	products   []api.Product
	categories []api.Category
	movements  []api.InventoryMovement
	users      []api.User
	logs       []api.AuditLog
	report     *api.ReportQuery
	savedPath  string
	lastUpdate time.Time

	// Tables and inputs
	productsTable  table.Model
	inventoryTable table.Model
	usersTable     table.Model
	logsTable      table.Model
	reportPrompt   textinput.Model
}

// New creates a new TUI application
func New(sess *session.Controller, client *api.Client) *App {
	prompt := textinput.New()
	prompt.Placeholder = "ventas por producto del último mes"
	prompt.CharLimit = 200

	return &App{
		session:      sess,
		client:       client,
		screen:       ScreenLoading,
		reportPrompt: prompt,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.loadSession()
}

// loadSession reads the persisted token pair and reports the startup state
func (a *App) loadSession() tea.Cmd {
	return func() tea.Msg {
		a.session.Load()
		return sessionLoadedMsg{state: a.session.State()}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeTables()
		if a.screen == ScreenLogin && a.login != nil {
			return a.updateLogin(msg)
		}
		if a.screen == ScreenMovement && a.movement != nil {
			return a.updateMovement(msg)
		}
		return a, nil

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenHome:
			return a.updateHome(msg)
		case ScreenMovement:
			return a.updateMovement(msg)
		case ScreenReports:
			return a.updateReports(msg)
		case ScreenLoading:
			return a, nil
		default:
			return a.updateResource(msg)
		}

	case sessionLoadedMsg:
		return a.applySessionState(msg.state)

	case loginform.SubmittedMsg:
		a.loading = true
		return a, a.doLogin(msg.Username, msg.Password)

	case loginform.CancelledMsg:
		return a, tea.Quit

	case loginDoneMsg:
		a.loading = false
		if msg.err != nil {
			if a.login != nil {
				a.login.SetError(msg.err.Error())
				return a, a.login.Init()
			}
			return a, nil
		}
		return a.applySessionState(msg.state)

	case loggedOutMsg:
		return a.applySessionState(session.State{})

	case movementform.CompleteMsg:
		a.movement = nil
		a.screen = ScreenInventory
		a.loading = true
		return a, a.saveMovement(msg.Input)

	case movementform.CancelledMsg:
		a.movement = nil
		a.screen = ScreenInventory
		return a, nil

	case catalogLoadedMsg:
		a.loading = false
		if msg.err != nil {
			debuglog.Error("load catalog", msg.err)
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.products = msg.products
		a.categories = msg.categories
		a.lastUpdate = time.Now()
		a.productsTable = a.buildProductsTable()
		return a, nil

	case movementsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			debuglog.Error("load movements", msg.err)
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.movements = msg.movements
		a.lastUpdate = time.Now()
		a.inventoryTable = a.buildInventoryTable()
		return a, nil

	case movementSavedMsg:
		if msg.err != nil {
			a.loading = false
			a.err = msg.err
			return a, nil
		}
		// Reload both history and catalog: the movement changed stock levels
		return a, tea.Batch(a.loadMovements(), a.loadCatalog())

	case usersLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.users = msg.users
		a.lastUpdate = time.Now()
		a.usersTable = a.buildUsersTable()
		return a, nil

	case userToggledMsg:
		if msg.err != nil {
			a.loading = false
			a.err = msg.err
			return a, nil
		}
		return a, a.loadUsers()

	case logsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.logs = msg.logs
		a.lastUpdate = time.Now()
		a.logsTable = a.buildLogsTable()
		return a, nil

	case reportDoneMsg:
		a.loading = false
		if msg.err != nil {
			debuglog.Error("report query", msg.err)
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.report = msg.report
		a.savedPath = ""
		a.lastUpdate = time.Now()
		return a, nil

	case reportSavedMsg:
		a.loading = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.savedPath = msg.path
		return a, nil

	default:
		// Forward unknown messages to the active form (needed for huh internals)
		if a.screen == ScreenLogin && a.login != nil {
			return a.updateLogin(msg)
		}
		if a.screen == ScreenMovement && a.movement != nil {
			return a.updateMovement(msg)
		}
	}

	return a, nil
}

// applySessionState is the route guard: every transition lands here and the
// destination depends only on whether the session is authenticated.
func (a *App) applySessionState(state session.State) (tea.Model, tea.Cmd) {
	a.state = state

	if !state.Authenticated {
		a.screen = ScreenLogin
		a.entries = nil
		a.cursor = 0
		a.clearData()
		if a.login == nil {
			a.login = loginform.New()
		}
		return a, a.login.Init()
	}

	a.login = nil
	a.entries = navigation.Visible(state.Role)
	a.cursor = 0
	a.screen = ScreenHome
	return a, nil
}

func (a *App) clearData() {
	a.products = nil
	a.categories = nil
	a.movements = nil
	a.users = nil
	a.logs = nil
	a.report = nil
	a.savedPath = ""
	a.err = nil
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.login == nil {
		return a, nil
	}
	model, cmd := a.login.Update(msg)
	a.login = model.(*loginform.LoginForm)
	return a, cmd
}

func (a *App) updateMovement(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.movement == nil {
		return a, nil
	}
	model, cmd := a.movement.Update(msg)
	a.movement = model.(*movementform.MovementForm)
	return a, cmd
}

func (a *App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.entries)-1 {
			a.cursor++
		}
	case "enter":
		if a.cursor < len(a.entries) {
			return a.openEntry(a.entries[a.cursor])
		}
	case "x":
		return a, a.doLogout()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// updateResource handles keys shared by the data screens
func (a *App) updateResource(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc":
		a.screen = ScreenHome
		a.err = nil
		return a, nil
	case "r":
		return a.refreshCurrent()
	case "m":
		if a.screen == ScreenInventory && len(a.products) > 0 {
			a.movement = movementform.New(a.products)
			a.screen = ScreenMovement
			return a, a.movement.Init()
		}
	case "a":
		if a.screen == ScreenUsers {
			return a.toggleSelectedUser()
		}
	}

	// Scroll the active table
	var cmd tea.Cmd
	switch a.screen {
	case ScreenProducts:
		a.productsTable, cmd = a.productsTable.Update(msg)
	case ScreenInventory:
		a.inventoryTable, cmd = a.inventoryTable.Update(msg)
	case ScreenUsers:
		a.usersTable, cmd = a.usersTable.Update(msg)
	case ScreenAuditLog:
		a.logsTable, cmd = a.logsTable.Update(msg)
	}
	return a, cmd
}

func (a *App) updateReports(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		if a.reportPrompt.Focused() {
			a.reportPrompt.Blur()
			return a, nil
		}
		a.screen = ScreenHome
		a.err = nil
		return a, nil
	case "enter":
		if a.reportPrompt.Focused() {
			prompt := strings.TrimSpace(a.reportPrompt.Value())
			if prompt == "" {
				return a, nil
			}
			a.reportPrompt.Blur()
			a.loading = true
			return a, a.runReport(prompt)
		}
	}

	if a.reportPrompt.Focused() {
		var cmd tea.Cmd
		a.reportPrompt, cmd = a.reportPrompt.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b":
		a.screen = ScreenHome
		a.err = nil
		return a, nil
	case "n":
		a.reportPrompt.SetValue("")
		a.reportPrompt.Focus()
		return a, textinput.Blink
	case "d":
		return a.downloadReport(api.FormatPDF)
	case "e":
		return a.downloadReport(api.FormatXLSX)
	}
	return a, nil
}

func (a *App) openEntry(entry navigation.Entry) (tea.Model, tea.Cmd) {
	a.err = nil

	switch entry {
	case navigation.EntryProfile:
		a.screen = ScreenProfile
		return a, nil
	case navigation.EntryOrders:
		a.screen = ScreenOrders
		return a, nil
	case navigation.EntryProducts:
		a.screen = ScreenProducts
		a.loading = true
		return a, a.loadCatalog()
	case navigation.EntryInventory:
		a.screen = ScreenInventory
		a.loading = true
		cmds := []tea.Cmd{a.loadMovements()}
		if a.products == nil {
			cmds = append(cmds, a.loadCatalog())
		}
		return a, tea.Batch(cmds...)
	case navigation.EntryUsers:
		a.screen = ScreenUsers
		a.loading = true
		return a, a.loadUsers()
	case navigation.EntryReports:
		a.screen = ScreenReports
		a.reportPrompt.Focus()
		return a, textinput.Blink
	case navigation.EntryAuditLog:
		a.screen = ScreenAuditLog
		a.loading = true
		return a, a.loadLogs()
	}
	return a, nil
}

func (a *App) refreshCurrent() (tea.Model, tea.Cmd) {
	a.loading = true
	switch a.screen {
	case ScreenProducts:
		return a, a.loadCatalog()
	case ScreenInventory:
		return a, tea.Batch(a.loadMovements(), a.loadCatalog())
	case ScreenUsers:
		return a, a.loadUsers()
	case ScreenAuditLog:
		return a, a.loadLogs()
	}
	a.loading = false
	return a, nil
}

func (a *App) toggleSelectedUser() (tea.Model, tea.Cmd) {
	row := a.usersTable.Cursor()
	if row < 0 || row >= len(a.users) {
		return a, nil
	}
	user := a.users[row]
	a.loading = true
	return a, func() tea.Msg {
		err := a.client.SetUserActive(context.Background(), user.ID, !user.IsActive)
		return userToggledMsg{err: err}
	}
}

// Commands

func (a *App) doLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		err := a.session.Login(context.Background(), username, password)
		return loginDoneMsg{state: a.session.State(), err: err}
	}
}

func (a *App) doLogout() tea.Cmd {
	return func() tea.Msg {
		if err := a.session.Logout(); err != nil {
			return loginDoneMsg{err: err}
		}
		return loggedOutMsg{}
	}
}

func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		products, categories, err := a.client.CatalogData(context.Background())
		return catalogLoadedMsg{products: products, categories: categories, err: err}
	}
}

func (a *App) loadMovements() tea.Cmd {
	return func() tea.Msg {
		movements, err := a.client.InventoryMovements(context.Background())
		return movementsLoadedMsg{movements: movements, err: err}
	}
}

func (a *App) loadUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := a.client.Users(context.Background())
		return usersLoadedMsg{users: users, err: err}
	}
}

func (a *App) loadLogs() tea.Cmd {
	return func() tea.Msg {
		logs, err := a.client.AuditLogs(context.Background(), api.LogFilters{})
		return logsLoadedMsg{logs: logs, err: err}
	}
}

func (a *App) runReport(prompt string) tea.Cmd {
	return func() tea.Msg {
		report, err := a.client.GenerateReportQuery(context.Background(), prompt)
		return reportDoneMsg{report: report, err: err}
	}
}

func (a *App) saveMovement(input api.MovementInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.CreateInventoryMovement(context.Background(), input)
		return movementSavedMsg{err: err}
	}
}

func (a *App) downloadReport(format string) (tea.Model, tea.Cmd) {
	if a.report == nil {
		return a, nil
	}
	queryID := a.report.QueryID
	a.loading = true
	return a, func() tea.Msg {
		data, err := a.client.DownloadReportFile(context.Background(), queryID, format)
		if err != nil {
			return reportSavedMsg{err: err}
		}
		path := fmt.Sprintf("reporte_%d.%s", queryID, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return reportSavedMsg{err: err}
		}
		return reportSavedMsg{path: path}
	}
}

// Tables

func (a *App) tableHeight() int {
	h := a.height - frameOverhead - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (a *App) contentWidth() int {
	w := a.width
	if w < minTerminalWidth {
		w = minTerminalWidth
	}
	return w - 6
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.Text).
		Background(styles.Surface).
		Bold(true)
	return s
}

func (a *App) buildProductsTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 28},
		{Title: "Category", Width: 16},
		{Title: "Price", Width: 10},
		{Title: "Stock", Width: 7},
		{Title: "SKU", Width: 12},
	}
	rows := make([]table.Row, 0, len(a.products))
	for _, p := range a.products {
		stock := fmt.Sprintf("%d", p.Stock)
		if p.MinStock > 0 && p.Stock <= p.MinStock {
			stock += " " + icons.Warning.String()
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", p.ID), p.Name, p.Categoria.Nombre, p.Precio, stock, p.SKU,
		})
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(a.tableHeight()),
		table.WithStyles(tableStyles()),
	)
}

func (a *App) buildInventoryTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Product", Width: 26},
		{Title: "Type", Width: 9},
		{Title: "Qty", Width: 6},
		{Title: "Reason", Width: 22},
		{Title: "Date", Width: 19},
	}
	rows := make([]table.Row, 0, len(a.movements))
	for _, m := range a.movements {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", m.ID), m.Producto.Name, m.TipoMovimiento,
			fmt.Sprintf("%d", m.Cantidad), m.Motivo, m.FechaMovimiento,
		})
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(a.tableHeight()),
		table.WithStyles(tableStyles()),
	)
}

func (a *App) buildUsersTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Username", Width: 16},
		{Title: "Name", Width: 22},
		{Title: "Email", Width: 24},
		{Title: "Role", Width: 14},
		{Title: "Active", Width: 8},
	}
	rows := make([]table.Row, 0, len(a.users))
	for _, u := range a.users {
		active := "yes"
		if !u.IsActive {
			active = "no"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", u.ID), u.Username,
			strings.TrimSpace(u.FirstName + " " + u.LastName),
			u.Email, u.Role, active,
		})
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(a.tableHeight()),
		table.WithStyles(tableStyles()),
	)
}

func (a *App) buildLogsTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Timestamp", Width: 20},
		{Title: "User", Width: 16},
		{Title: "IP", Width: 15},
		{Title: "Action", Width: 30},
	}
	rows := make([]table.Row, 0, len(a.logs))
	for _, l := range a.logs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", l.ID), l.Timestamp, l.UserUsername, l.IPAddress, l.Action,
		})
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(a.tableHeight()),
		table.WithStyles(tableStyles()),
	)
}

func (a *App) resizeTables() {
	h := a.tableHeight()
	a.productsTable.SetHeight(h)
	a.inventoryTable.SetHeight(h)
	a.usersTable.SetHeight(h)
	a.logsTable.SetHeight(h)
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLoading:
		content = styles.Subtitle.Render("Checking session...")
	case ScreenLogin:
		content = a.viewLogin()
	case ScreenHome:
		content = a.viewHome()
	case ScreenProfile:
		content = a.viewProfile()
	case ScreenOrders:
		content = a.viewOrders()
	case ScreenProducts:
		content = a.viewTableScreen(icons.Products, "Products", a.productsTable, a.productsDetail())
	case ScreenInventory:
		content = a.viewTableScreen(icons.Inventory, "Inventory", a.inventoryTable, a.inventoryDetail())
	case ScreenMovement:
		content = a.viewMovement()
	case ScreenUsers:
		content = a.viewTableScreen(icons.Users, "Users", a.usersTable, a.usersDetail())
	case ScreenReports:
		content = a.viewReports()
	case ScreenAuditLog:
		content = a.viewTableScreen(icons.AuditLog, "Audit Log", a.logsTable, "")
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewLogin() string {
	if a.login == nil {
		return ""
	}
	if a.loading {
		return a.login.View() + "\n" + styles.Subtitle.Render("Signing in...")
	}
	return a.login.View()
}

func (a *App) viewHome() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.App.String() + " SmartSales Console"))
	sb.WriteString("\n")
	sb.WriteString(a.identityLine())
	sb.WriteString("\n\n")

	entryIcons := map[navigation.Entry]icons.Icon{
		navigation.EntryProfile:   icons.User,
		navigation.EntryOrders:    icons.Orders,
		navigation.EntryProducts:  icons.Products,
		navigation.EntryInventory: icons.Inventory,
		navigation.EntryUsers:     icons.Users,
		navigation.EntryReports:   icons.Reports,
		navigation.EntryAuditLog:  icons.AuditLog,
	}

	for i, entry := range a.entries {
		line := fmt.Sprintf("%s %s", entryIcons[entry].String(), entry.Title())
		if i == a.cursor {
			sb.WriteString(styles.SelectedEntry.Render("> " + line))
		} else {
			sb.WriteString(styles.NormalEntry.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	return styles.ActivePanel.Width(a.contentWidth()).Render(sb.String())
}

func (a *App) viewProfile() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.User.String() + " Profile"))
	sb.WriteString("\n")
	sb.WriteString("Username:  " + styles.ValueStyle.Render(orDash(a.state.Username)) + "\n")
	sb.WriteString("Role:      " + widgets.RoleBadge(a.state.Role) + "\n")
	sb.WriteString("Claim:     " + orDash(a.state.RoleLabel) + "\n")
	if !a.state.ExpiresAt.IsZero() {
		sb.WriteString("Token exp: " + a.state.ExpiresAt.Format(time.RFC3339) + "\n")
	}

	return styles.ActivePanel.Width(a.contentWidth()).Render(sb.String())
}

func (a *App) viewOrders() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.Orders.String() + " Orders"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Order history is served by the storefront; nothing to show here yet."))
	return styles.Panel.Width(a.contentWidth()).Render(sb.String())
}

func (a *App) viewMovement() string {
	if a.movement == nil {
		return ""
	}
	return a.movement.View()
}

func (a *App) viewTableScreen(icon icons.Icon, title string, tbl table.Model, detail string) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icon.String() + " " + title))
	sb.WriteString("\n")

	switch {
	case a.err != nil:
		sb.WriteString(styles.StatusCritical.Render("Error: " + a.err.Error()))
	case a.loading:
		sb.WriteString(styles.Subtitle.Render("Loading..."))
	default:
		sb.WriteString(tbl.View())
		if detail != "" {
			sb.WriteString("\n")
			sb.WriteString(detail)
		}
	}

	return styles.ActivePanel.Width(a.contentWidth()).Render(sb.String())
}

func (a *App) productsDetail() string {
	low := 0
	for _, p := range a.products {
		if p.MinStock > 0 && p.Stock <= p.MinStock {
			low++
		}
	}

	detail := fmt.Sprintf("%d products, %d categories", len(a.products), len(a.categories))
	if low > 0 {
		detail += styles.StatusWarning.Render(fmt.Sprintf("  %d below minimum stock", low))
	}

	row := a.productsTable.Cursor()
	if row >= 0 && row < len(a.products) {
		p := a.products[row]
		line := fmt.Sprintf("%s | $%s | stock %d (min %d)", p.Name, p.Precio, p.Stock, p.MinStock)
		detail += "\n" + styles.Subtitle.Render(line)
		if badge := widgets.StockText(p.Stock, p.MinStock); badge != "" {
			detail += " " + badge
		}
	}
	return detail
}

func (a *App) inventoryDetail() string {
	in, out := 0, 0
	for _, m := range a.movements {
		switch m.TipoMovimiento {
		case api.MovementIn:
			in++
		case api.MovementOut:
			out++
		}
	}
	return fmt.Sprintf("%s %d   %s %d",
		widgets.MovementBadge(api.MovementIn), in,
		widgets.MovementBadge(api.MovementOut), out)
}

func (a *App) usersDetail() string {
	row := a.usersTable.Cursor()
	if row < 0 || row >= len(a.users) {
		return ""
	}
	u := a.users[row]
	return u.Username + " " + widgets.ActiveBadge(u.IsActive)
}

func (a *App) viewReports() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Reports.String() + " Reports"))
	sb.WriteString("\n")
	sb.WriteString("Describe the report you need:\n")
	sb.WriteString(a.reportPrompt.View())
	sb.WriteString("\n\n")

	switch {
	case a.err != nil:
		sb.WriteString(styles.StatusCritical.Render("Error: " + a.err.Error()))
	case a.loading:
		sb.WriteString(styles.Subtitle.Render("Generating..."))
	case a.report != nil:
		sb.WriteString(a.renderReportResults())
		if a.savedPath != "" {
			sb.WriteString("\n")
			sb.WriteString(styles.StatusOK.Render(icons.CheckOK.String() + " Saved " + a.savedPath))
		}
	}

	return styles.ActivePanel.Width(a.contentWidth()).Render(sb.String())
}

// renderReportResults flattens the backend's free-form rows into aligned text
func (a *App) renderReportResults() string {
	if a.report.Message != "" && len(a.report.Results) == 0 {
		return styles.Subtitle.Render(a.report.Message)
	}
	if len(a.report.Results) == 0 {
		return styles.Subtitle.Render("No rows returned.")
	}

	// Stable column order across rows
	keySet := map[string]bool{}
	for _, row := range a.report.Results {
		for k := range row {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(styles.KeyStyle.Render(strings.Join(keys, "  |  ")))
	sb.WriteString("\n")
	limit := len(a.report.Results)
	if limit > 20 {
		limit = 20
	}
	for _, row := range a.report.Results[:limit] {
		cells := make([]string, 0, len(keys))
		for _, k := range keys {
			cells = append(cells, fmt.Sprintf("%v", row[k]))
		}
		sb.WriteString(strings.Join(cells, "  |  "))
		sb.WriteString("\n")
	}
	if len(a.report.Results) > limit {
		sb.WriteString(styles.Subtitle.Render(
			fmt.Sprintf("...and %d more rows (download the file for the full set)", len(a.report.Results)-limit)))
	}
	return sb.String()
}

func (a *App) identityLine() string {
	if !a.state.Authenticated {
		return ""
	}
	name := orDash(a.state.Username)
	return styles.Subtitle.Render("Signed in as "+name+" ") + widgets.RoleBadge(a.state.Role)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	// Guard against zero width before the first WindowSizeMsg
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("SmartSales Console"))

	rightText := ""
	if a.state.Authenticated && a.state.Username != "" {
		rightText = contextStyle.Render(a.state.Username+" · "+a.state.Role.String()) + " "
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

// renderFooter creates the footer with keyboard shortcuts
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
		shortcuts = []string{"Tab Next field", "Enter Submit", "Esc Quit"}
	case ScreenHome:
		shortcuts = []string{"↑↓ Navigate", "Enter Open", "x Sign out", "q Quit"}
	case ScreenProfile, ScreenOrders:
		shortcuts = []string{"b Back", "q Quit"}
	case ScreenInventory:
		shortcuts = []string{"↑↓ Scroll", "m Movement", "r Refresh", "b Back", "q Quit"}
	case ScreenUsers:
		shortcuts = []string{"↑↓ Scroll", "a Toggle active", "r Refresh", "b Back", "q Quit"}
	case ScreenReports:
		shortcuts = []string{"Enter Run", "n New prompt", "d PDF", "e Excel", "b Back"}
	case ScreenMovement:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	default:
		shortcuts = []string{"↑↓ Scroll", "r Refresh", "b Back", "q Quit"}
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
	if !a.lastUpdate.IsZero() && a.screen != ScreenLogin && a.screen != ScreenHome {
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
func Run(sess *session.Controller, client *api.Client) error {
	app := New(sess, client)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
