// ABOUTME: Status badge widgets for quick visual indication in tables
// ABOUTME: Colored inline badges for roles, stock levels, and movement types

package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/smartsales365/console/internal/api"
	"github.com/smartsales365/console/internal/token"
)

var (
	badgeOK      = lipgloss.NewStyle().Background(lipgloss.Color("#10B981")).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1).Bold(true)
	badgeWarn    = lipgloss.NewStyle().Background(lipgloss.Color("#F59E0B")).Foreground(lipgloss.Color("#000000")).Padding(0, 1).Bold(true)
	badgeCrit    = lipgloss.NewStyle().Background(lipgloss.Color("#EF4444")).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1).Bold(true)
	badgeInfo    = lipgloss.NewStyle().Background(lipgloss.Color("#00BCD4")).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1).Bold(true)
	badgeNeutral = lipgloss.NewStyle().Background(lipgloss.Color("#6B7280")).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1).Bold(true)
)

// RoleBadge renders a colored badge for a role label
func RoleBadge(role token.Role) string {
	switch role {
	case token.RoleAdministrator:
		return badgeCrit.Render(role.String())
	case token.RoleOperator:
		return badgeInfo.Render(role.String())
	case token.RoleClient:
		return badgeOK.Render(role.String())
	default:
		return badgeNeutral.Render(role.String())
	}
}

// ActiveBadge renders an active/inactive indicator for user rows
func ActiveBadge(active bool) string {
	if active {
		return badgeOK.Render("active")
	}
	return badgeNeutral.Render("inactive")
}

// MovementBadge renders an inventory movement direction
func MovementBadge(tipo string) string {
	switch tipo {
	case api.MovementIn:
		return badgeOK.Render(api.MovementIn)
	case api.MovementOut:
		return badgeWarn.Render(api.MovementOut)
	default:
		return badgeNeutral.Render(tipo)
	}
}

// StockText renders a stock count, highlighting quantities at or below the
// product's minimum stock threshold.
func StockText(stock, minStock int) string {
	if minStock > 0 && stock <= minStock {
		return badgeWarn.Render("low")
	}
	return ""
}
