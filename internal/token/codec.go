// ABOUTME: Structure-only decoder for backend-issued JWT access tokens
// ABOUTME: Extracts claims without signature verification; fails closed

package token

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// FallbackRole is substituted when a token decodes cleanly but carries no
// role claim. It matches the label the backend uses for unknown roles.
const FallbackRole = "Rol Desconocido"

// Claims is the subset of access-token claims the console consumes.
// It is recomputed from the stored token on every read, never cached.
type Claims struct {
	Role      string // raw role claim, FallbackRole when absent
	Username  string
	UserID    string
	ExpiresAt time.Time // zero when the token carries no exp claim
}

// Decode parses the token's payload into Claims without verifying the
// signature. Signature verification is the backend's responsibility; the
// console only ever decodes tokens it received from a successful login, and
// the decoded role gates navigation cosmetically, not authorization.
//
// Any structural failure returns an error; callers must treat that the same
// as "no role known" and never surface it as a crash.
func Decode(raw string) (Claims, error) {
	parsed, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("malformed access token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("access token claims are not an object")
	}

	c := Claims{Role: FallbackRole}
	if role, ok := mapClaims["role"].(string); ok && role != "" {
		c.Role = role
	}
	if username, ok := mapClaims["username"].(string); ok {
		c.Username = username
	}
	switch id := mapClaims["user_id"].(type) {
	case string:
		c.UserID = id
	case float64:
		c.UserID = fmt.Sprintf("%.0f", id)
	}
	if exp, ok := mapClaims["exp"].(float64); ok && exp > 0 {
		c.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return c, nil
}
