package views

// The auth views cover the welcome menu, signup, login and the three-step
// forgot-password flow. Each view collects input, calls the account manager
// and maps the result to a next route; no business rules live here.

import (
	"laundrypro/internal/services"
)

// AuthViews renders the account screens.
type AuthViews struct {
	accounts *services.AccountService
	ui       *UI
}

// NewAuthViews creates the account screens.
func NewAuthViews(accounts *services.AccountService, ui *UI) *AuthViews {
	return &AuthViews{accounts: accounts, ui: ui}
}

// Welcome is the entry menu.
func (v *AuthViews) Welcome() string {
	v.ui.Say("")
	v.ui.Say("LaundryPro - fresh clothes, effortless service")
	v.ui.Say("  1) Sign in")
	v.ui.Say("  2) Create account")
	v.ui.Say("  3) Forgot password")
	v.ui.Say("  0) Exit")
	switch v.ui.Prompt("Choose") {
	case "1":
		return "login"
	case "2":
		return "signup"
	case "3":
		return "forgot-password"
	case "0":
		return RouteExit
	default:
		if v.ui.Closed() {
			return RouteExit
		}
		return "welcome"
	}
}

// Login renders the sign-in form.
func (v *AuthViews) Login() string {
	identifier := v.ui.Prompt("Email or mobile number")
	password := v.ui.Prompt("Password")
	user, err := v.accounts.Login(identifier, password)
	if err != nil {
		v.ui.Fail(err)
		return "welcome"
	}
	v.ui.Say("Welcome back, %s!", user.Identifier)
	return "dashboard"
}

// Signup renders the account-creation form.
func (v *AuthViews) Signup() string {
	identifier := v.ui.Prompt("Email or mobile number")
	password := v.ui.Prompt("Password")
	confirm := v.ui.Prompt("Confirm password")
	if _, err := v.accounts.Signup(identifier, password, confirm); err != nil {
		v.ui.Fail(err)
		return "welcome"
	}
	v.ui.Say("Signup successful! Please log in.")
	return "login"
}

// ForgotPassword walks the reset flow: identifier, OTP, new password. The
// OTP is shown on screen, standing in for email or SMS delivery.
func (v *AuthViews) ForgotPassword() string {
	flow := v.accounts.NewResetFlow()

	identifier := v.ui.Prompt("Email or mobile number")
	otp, err := flow.SubmitIdentifier(identifier)
	if err != nil {
		v.ui.Fail(err)
		return "welcome"
	}
	v.ui.Say("Your OTP is: %s", otp)

	for flow.Step() == services.StepAwaitingOtp && !v.ui.Closed() {
		code := v.ui.Prompt("Enter OTP (or 'resend')")
		if code == "resend" {
			if otp, err = flow.ResendOtp(); err == nil {
				v.ui.Say("Your OTP is: %s", otp)
			}
			continue
		}
		if err := flow.SubmitOtp(code); err != nil {
			v.ui.Fail(err)
		}
	}
	if flow.Step() != services.StepAwaitingNewPassword {
		return "welcome"
	}
	v.ui.Say("OTP verified.")

	password := v.ui.Prompt("New password")
	confirm := v.ui.Prompt("Confirm new password")
	if err := flow.SubmitNewPassword(password, confirm); err != nil {
		v.ui.Fail(err)
		return "welcome"
	}
	v.ui.Say("Password reset successfully! Please log in.")
	return "login"
}
