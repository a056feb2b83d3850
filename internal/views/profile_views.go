package views

import (
	"laundrypro/internal/services"
	"laundrypro/internal/store"
)

// ProfileViews renders the profile screen: account details, password change,
// the dark-mode preference and logout.
type ProfileViews struct {
	accounts *services.AccountService
	orders   *services.OrderService
	guard    *services.SessionGuard
	store    store.Store
	ui       *UI
}

// NewProfileViews creates the profile screens.
func NewProfileViews(accounts *services.AccountService, orders *services.OrderService, guard *services.SessionGuard, st store.Store, ui *UI) *ProfileViews {
	return &ProfileViews{
		accounts: accounts,
		orders:   orders,
		guard:    guard,
		store:    st,
		ui:       ui,
	}
}

// Profile shows the account summary and profile actions.
func (v *ProfileViews) Profile() string {
	user, err := v.guard.Require()
	if err != nil {
		v.ui.Fail(err)
		return "login"
	}
	orders, _ := v.orders.ListOrders()

	v.ui.Say("")
	v.ui.Say("Profile: %s (%s), %d order(s)", user.Identifier, user.IdentifierKind, len(orders))
	v.ui.Say("  1) Change password")
	v.ui.Say("  2) Toggle dark mode")
	v.ui.Say("  b) Back")
	switch v.ui.Prompt("Choose") {
	case "1":
		return v.changePassword()
	case "2":
		return v.toggleTheme()
	default:
		if v.ui.Closed() {
			return RouteExit
		}
		return "dashboard"
	}
}

func (v *ProfileViews) changePassword() string {
	oldPassword := v.ui.Prompt("Old password")
	newPassword := v.ui.Prompt("New password")
	confirm := v.ui.Prompt("Confirm new password")
	if err := v.accounts.ChangePassword(oldPassword, newPassword, confirm); err != nil {
		v.ui.Fail(err)
		return "profile"
	}
	v.ui.Say("Password updated successfully!")
	return "profile"
}

func (v *ProfileViews) toggleTheme() string {
	theme, err := v.store.Theme()
	if err != nil {
		v.ui.Fail(err)
		return "profile"
	}
	next := "dark"
	if theme == "dark" {
		next = "light"
	}
	if err := v.store.SaveTheme(next); err != nil {
		v.ui.Fail(err)
		return "profile"
	}
	v.ui.Say("Theme set to %s.", next)
	return "profile"
}

// Logout clears the session and returns to the welcome screen.
func (v *ProfileViews) Logout() string {
	if err := v.accounts.Logout(); err != nil {
		v.ui.Fail(err)
		return "dashboard"
	}
	v.ui.Say("Logged out.")
	return "welcome"
}
