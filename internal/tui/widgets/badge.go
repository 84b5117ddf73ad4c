// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges for roles, availability, and booking states

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"rentadesk/internal/session"
	"rentadesk/internal/tui/icons"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
	BadgeAdminBg   = lipgloss.Color("#7C3AED")
	BadgeAdminFg   = lipgloss.Color("#FFFFFF")
)

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	var bg, fg lipgloss.Color

	switch level {
	case StatusOK:
		bg, fg = BadgeOKBg, BadgeOKFg
	case StatusWarning:
		bg, fg = BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		bg, fg = BadgeCritBg, BadgeCritFg
	case StatusInfo:
		bg, fg = BadgeInfoBg, BadgeInfoFg
	default:
		bg, fg = BadgeNeutralBg, BadgeNeutralFg
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	switch level {
	case StatusOK:
		return lipgloss.NewStyle().Foreground(BadgeOKBg).Render(icons.CheckOK.String())
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(BadgeWarnBg).Render(icons.Warning.String())
	case StatusCritical:
		return lipgloss.NewStyle().Foreground(BadgeCritBg).Render(icons.Critical.String())
	case StatusInfo:
		return lipgloss.NewStyle().Foreground(BadgeInfoBg).Render(icons.Info.String())
	default:
		return lipgloss.NewStyle().Foreground(BadgeNeutralBg).Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	icon := StatusIcon(level)

	var color lipgloss.Color
	switch level {
	case StatusOK:
		color = BadgeOKBg
	case StatusWarning:
		color = BadgeWarnBg
	case StatusCritical:
		color = BadgeCritBg
	case StatusInfo:
		color = BadgeInfoBg
	default:
		color = BadgeNeutralBg
	}

	textStyle := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("%s %s", icon, textStyle.Render(text))
}

// RoleBadge renders a badge for a user role
func RoleBadge(role session.Role) string {
	switch role {
	case session.RoleSuperAdmin:
		style := lipgloss.NewStyle().
			Background(BadgeAdminBg).
			Foreground(BadgeAdminFg).
			Padding(0, 1).
			Bold(true)
		return style.Render("SUPER ADMIN")
	case session.RoleAgencyAdmin:
		return Badge("AGENCY ADMIN", StatusInfo)
	case session.RoleStaff:
		return Badge("STAFF", StatusNeutral)
	default:
		return Badge(string(role), StatusNeutral)
	}
}

// AvailabilityBadge renders a car availability badge
func AvailabilityBadge(available bool) string {
	if available {
		return Badge("AVAILABLE", StatusOK)
	}
	return Badge("BOOKED", StatusWarning)
}

// BookingStatusBadge renders a badge for a booking lifecycle state
func BookingStatusBadge(status string) string {
	switch status {
	case "confirmed":
		return Badge("CONFIRMED", StatusOK)
	case "pending":
		return Badge("PENDING", StatusWarning)
	case "cancelled":
		return Badge("CANCELLED", StatusCritical)
	default:
		return Badge(status, StatusNeutral)
	}
}

// Price renders a money amount in the shared price style
func Price(amount float64) string {
	return lipgloss.NewStyle().Foreground(BadgeOKBg).Bold(true).Render(fmt.Sprintf("$%.2f", amount))
}
