// ABOUTME: Role-gated navigation for the console
// ABOUTME: Maps a decoded role to the set of visible navigation entries

package navigation

import "github.com/smartsales365/console/internal/token"

// Entry identifies one navigation destination
type Entry int

const (
	EntryProfile Entry = iota
	EntryOrders
	EntryProducts
	EntryInventory
	EntryUsers
	EntryReports
	EntryAuditLog
)

// Title returns the display label for an entry
func (e Entry) Title() string {
	switch e {
	case EntryProfile:
		return "Profile"
	case EntryOrders:
		return "Orders"
	case EntryProducts:
		return "Products"
	case EntryInventory:
		return "Inventory"
	case EntryUsers:
		return "Users"
	case EntryReports:
		return "Reports"
	case EntryAuditLog:
		return "Audit Log"
	default:
		return "unknown"
	}
}

// Visible returns the navigation entries a role may see, in display order.
// Baseline entries are shown to every authenticated role; management entries
// require operator or administrator; reports and the audit log are
// administrator-only. Unrecognized roles fall back to baseline only; the
// mapping fails closed and never over-exposes.
func Visible(role token.Role) []Entry {
	entries := []Entry{EntryProfile, EntryOrders}

	if role == token.RoleOperator || role == token.RoleAdministrator {
		entries = append(entries, EntryProducts, EntryInventory, EntryUsers)
	}
	if role == token.RoleAdministrator {
		entries = append(entries, EntryReports, EntryAuditLog)
	}

	return entries
}
