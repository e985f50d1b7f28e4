// ABOUTME: Tests for the access-token claim decoder
// ABOUTME: Verifies role extraction, fallbacks, and malformed-token handling

package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

// makeToken builds an unsigned JWT with the given claims. The decoder never
// checks signatures, so a placeholder signature segment is enough.
func makeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		t.Fatal(err)
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func TestDecodeRoleClaim(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{"admin short label", "Admin"},
		{"admin long label", "Administrador"},
		{"operator", "Operador"},
		{"client", "Cliente"},
		{"arbitrary label preserved", "Supervisor"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := makeToken(t, map[string]interface{}{"role": tc.role})

			claims, err := Decode(raw)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if claims.Role != tc.role {
				t.Errorf("Role = %q, want %q", claims.Role, tc.role)
			}
		})
	}
}

func TestDecodeMissingRoleFallsBack(t *testing.T) {
	raw := makeToken(t, map[string]interface{}{"username": "admin_test"})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if claims.Role != FallbackRole {
		t.Errorf("Role = %q, want %q", claims.Role, FallbackRole)
	}
	if claims.Username != "admin_test" {
		t.Errorf("Username = %q, want admin_test", claims.Username)
	}
}

func TestDecodeNumericUserID(t *testing.T) {
	raw := makeToken(t, map[string]interface{}{"role": "Admin", "user_id": 42})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if claims.UserID != "42" {
		t.Errorf("UserID = %q, want 42", claims.UserID)
	}
}

func TestDecodeExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	raw := makeToken(t, map[string]interface{}{"role": "Admin", "exp": exp})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if claims.ExpiresAt.Unix() != exp {
		t.Errorf("ExpiresAt = %v, want unix %d", claims.ExpiresAt, exp)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"not a token", "garbage"},
		{"two segments", "abc.def"},
		{"bad base64 payload", "eyJhbGciOiJIUzI1NiJ9.!!!.sig"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.raw); err == nil {
				t.Error("expected an error for malformed input")
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"Admin", RoleAdministrator},
		{"Administrador", RoleAdministrator},
		{"Operador", RoleOperator},
		{"Cliente", RoleClient},
		{"", RoleUnknown},
		{"Rol Desconocido", RoleUnknown},
		{"admin", RoleUnknown}, // label matching is exact, lowercase is not accepted
	}

	for _, tc := range tests {
		if got := ParseRole(tc.raw); got != tc.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleAdministrator, "Administrador"},
		{RoleOperator, "Operador"},
		{RoleClient, "Cliente"},
		{RoleUnknown, FallbackRole},
		{Role(99), FallbackRole},
	}

	for _, tc := range tests {
		if got := tc.role.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.role, got, tc.want)
		}
	}
}
