// ABOUTME: Shared test helpers for the cmd package
// ABOUTME: Spins up fake backends and seeds stored sessions

package cmd

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartsales365/console/internal/tokenstore"
)

// pointEnvAt directs the next newEnv() at the given backend with a fresh
// config dir, and returns that dir for seeding tokens.
func pointEnvAt(t *testing.T, backendURL string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SMARTSALES_API_URL", backendURL)
	t.Setenv("SMARTSALES_CONFIG_DIR", dir)
	return dir
}

// seedSession stores a token pair carrying the given role claim
func seedSession(t *testing.T, dir, role, username string) string {
	t.Helper()
	access := testToken(t, role, username)
	store := tokenstore.New(dir)
	if err := store.Write(tokenstore.Pair{Access: access, Refresh: "refresh"}); err != nil {
		t.Fatal(err)
	}
	return access
}

func testToken(t *testing.T, role, username string) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]interface{}{"role": role, "username": username})
	if err != nil {
		t.Fatal(err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

// envelope wraps results in the backend's pagination shape
func envelope(results interface{}) map[string]interface{} {
	return map[string]interface{}{
		"count":    0,
		"next":     nil,
		"previous": nil,
		"results":  results,
	}
}

func jsonResponse(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

func newBackend(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestIsJSONOutputDefaultsFalse(t *testing.T) {
	if IsJSONOutput() {
		t.Error("expected --json to default to false")
	}
}
