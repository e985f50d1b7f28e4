// ABOUTME: Integration tests for the TUI app
// ABOUTME: Tests the session guard, screen transitions, and role-gated menu

package tui

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/smartsales365/console/internal/api"
	"github.com/smartsales365/console/internal/session"
	"github.com/smartsales365/console/internal/tokenstore"
)

func newTestApp(t *testing.T) (*App, *tokenstore.Store) {
	t.Helper()
	store := tokenstore.New(t.TempDir())
	client := api.New("http://localhost:8000/api/v1", store, 5*time.Second)
	sess := session.NewController(store, client)
	return New(sess, client), store
}

func tokenWithRole(t *testing.T, role, username string) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]interface{}{"role": role, "username": username})
	if err != nil {
		t.Fatal(err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestAppInitialScreenIsLoading(t *testing.T) {
	app, _ := newTestApp(t)

	if app.screen != ScreenLoading {
		t.Errorf("expected initial screen to be ScreenLoading, got %d", app.screen)
	}
}

func TestAppGuardRedirectsUnauthenticatedToLogin(t *testing.T) {
	app, _ := newTestApp(t)

	updated, _ := app.Update(sessionLoadedMsg{state: session.State{}})
	result := updated.(*App)

	if result.screen != ScreenLogin {
		t.Errorf("expected ScreenLogin for unauthenticated session, got %d", result.screen)
	}
	if result.login == nil {
		t.Error("expected login form to be created")
	}
}

func TestAppGuardShowsPlaceholderWhileLoading(t *testing.T) {
	app, _ := newTestApp(t)
	app.width = 100
	app.height = 40

	view := app.View()
	if !strings.Contains(view, "Checking session") {
		t.Error("expected loading placeholder before the session state is known")
	}
	if strings.Contains(view, "Username") {
		t.Error("login form must not render before the session state is known")
	}
}

func TestAppAuthenticatedSessionLandsOnHome(t *testing.T) {
	app, store := newTestApp(t)
	if err := store.Write(tokenstore.Pair{Access: tokenWithRole(t, "Admin", "dueño")}); err != nil {
		t.Fatal(err)
	}
	app.session.Load()

	updated, _ := app.Update(sessionLoadedMsg{state: app.session.State()})
	result := updated.(*App)

	if result.screen != ScreenHome {
		t.Errorf("expected ScreenHome for authenticated session, got %d", result.screen)
	}
	if len(result.entries) != 7 {
		t.Errorf("expected 7 menu entries for an administrator, got %d", len(result.entries))
	}
}

func TestAppHomeMenuIsRoleGated(t *testing.T) {
	tests := []struct {
		role        string
		wantEntries int
	}{
		{"Cliente", 2},
		{"Operador", 5},
		{"Admin", 7},
		{"Administrador", 7},
		{"Intruso", 2},
	}

	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			app, store := newTestApp(t)
			if err := store.Write(tokenstore.Pair{Access: tokenWithRole(t, tc.role, "u")}); err != nil {
				t.Fatal(err)
			}
			app.session.Load()

			updated, _ := app.Update(sessionLoadedMsg{state: app.session.State()})
			result := updated.(*App)

			if len(result.entries) != tc.wantEntries {
				t.Errorf("role %q: expected %d entries, got %d", tc.role, tc.wantEntries, len(result.entries))
			}
		})
	}
}

func TestAppLogoutReturnsToLoginAndClearsData(t *testing.T) {
	app, store := newTestApp(t)
	if err := store.Write(tokenstore.Pair{Access: tokenWithRole(t, "Admin", "u")}); err != nil {
		t.Fatal(err)
	}
	app.session.Load()
	app.Update(sessionLoadedMsg{state: app.session.State()})
	app.users = []api.User{{ID: 1, Username: "ghost"}}

	if err := app.session.Logout(); err != nil {
		t.Fatal(err)
	}
	updated, _ := app.Update(loggedOutMsg{})
	result := updated.(*App)

	if result.screen != ScreenLogin {
		t.Errorf("expected ScreenLogin after logout, got %d", result.screen)
	}
	if result.users != nil {
		t.Error("expected loaded data to be cleared on logout")
	}
}

func TestAppCatalogLoadedBuildsTable(t *testing.T) {
	app, _ := newTestApp(t)
	app.width = 100
	app.height = 40
	app.screen = ScreenProducts
	app.loading = true

	products := []api.Product{
		{ID: 1, Name: "Teclado", Precio: "19990", Stock: 3, MinStock: 5},
		{ID: 2, Name: "Mouse", Precio: "9990", Stock: 40, MinStock: 5},
	}
	updated, _ := app.Update(catalogLoadedMsg{products: products, categories: []api.Category{{ID: 1, Nombre: "Periféricos"}}})
	result := updated.(*App)

	if result.loading {
		t.Error("expected loading to clear once the catalog arrives")
	}
	view := result.View()
	if !strings.Contains(view, "Teclado") {
		t.Error("expected products table to list the product name")
	}
	if !strings.Contains(view, "1 below minimum stock") {
		t.Error("expected the low stock summary to count understocked products")
	}
}

func TestAppResourceErrorIsRendered(t *testing.T) {
	app, _ := newTestApp(t)
	app.width = 100
	app.height = 40
	app.screen = ScreenUsers

	updated, _ := app.Update(usersLoadedMsg{err: &api.APIError{StatusCode: 500, Message: "HTTP 500"}})
	view := updated.(*App).View()

	if !strings.Contains(view, "Error:") {
		t.Error("expected the error banner on a failed load")
	}
}

func TestAppReportResultsRendered(t *testing.T) {
	app, _ := newTestApp(t)
	app.width = 100
	app.height = 40
	app.screen = ScreenReports

	report := &api.ReportQuery{
		QueryID: 7,
		Results: []map[string]interface{}{
			{"producto": "Teclado", "total": 12},
			{"producto": "Mouse", "total": 30},
		},
	}
	updated, _ := app.Update(reportDoneMsg{report: report})
	view := updated.(*App).View()

	if !strings.Contains(view, "producto") || !strings.Contains(view, "Teclado") {
		t.Error("expected report rows to render with their column names")
	}
}

func TestAppHeaderShowsIdentity(t *testing.T) {
	app, store := newTestApp(t)
	app.width = 100
	app.height = 40
	if err := store.Write(tokenstore.Pair{Access: tokenWithRole(t, "Operador", "maria")}); err != nil {
		t.Fatal(err)
	}
	app.session.Load()
	app.Update(sessionLoadedMsg{state: app.session.State()})

	view := app.View()
	if !strings.Contains(view, "maria") {
		t.Error("expected the header to show the signed-in username")
	}
	if !strings.Contains(view, "SmartSales Console") {
		t.Error("expected the header to carry the app title")
	}
}
