// ABOUTME: Closed role enumeration decoded from access-token claims
// ABOUTME: Normalizes the backend's role labels; unrecognized labels fail closed

package token

// Role is the authorization tier carried by an access token. The backend is
// the actual enforcement point; the console uses Role only to decide which
// navigation entries to show.
type Role int

const (
	RoleUnknown Role = iota
	RoleClient
	RoleOperator
	RoleAdministrator
)

// ParseRole maps a raw role claim to the closed enumeration. The backend has
// issued both "Admin" and "Administrador" for administrators; both are
// accepted. Anything unrecognized resolves to RoleUnknown, which grants
// baseline visibility only.
func ParseRole(raw string) Role {
	switch raw {
	case "Admin", "Administrador":
		return RoleAdministrator
	case "Operador":
		return RoleOperator
	case "Cliente":
		return RoleClient
	default:
		return RoleUnknown
	}
}

// String returns the display label for the role
func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return "Administrador"
	case RoleOperator:
		return "Operador"
	case RoleClient:
		return "Cliente"
	default:
		return FallbackRole
	}
}
