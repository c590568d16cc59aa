package console

import (
	"context"
	"errors"
	"fmt"

	"restodash/internal/auth"
	"restodash/internal/models"
)

// toastError routes a failure to the toast stack the way every screen in
// the original surfaced its validation problems.
func (c *Console) toastError(err error) {
	var verr *auth.ValidationError
	switch {
	case errors.As(err, &verr):
		c.store.AddToast(verr.Message, models.ToastError, 0)
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.store.AddToast("Invalid email or password", models.ToastError, 0)
	case errors.Is(err, auth.ErrEmailTaken):
		c.store.AddToast("Email already registered. Please login instead", models.ToastError, 0)
	default:
		c.store.AddToast(err.Error(), models.ToastError, 0)
	}
}

func (c *Console) cmdLogin(ctx context.Context, args []string) {
	f := parseForm(args)
	user, err := c.auth.Login(ctx, f.get("email"), f.get("password"))
	if err != nil {
		c.toastError(err)
		return
	}
	c.store.AddToast("Logged in successfully!", models.ToastSuccess, 0)
	fmt.Fprintf(c.out, "Welcome back, %s\n", user.FullName)
}

func (c *Console) cmdSignup(ctx context.Context, args []string) {
	f := parseForm(args)
	_, err := c.auth.Signup(ctx, auth.SignupInput{
		FullName:        f.get("name"),
		Email:           f.get("email"),
		Password:        f.get("password"),
		ConfirmPassword: f.get("confirm"),
		AgreeTerms:      f.boolFlag("agree"),
	})
	if err != nil {
		c.toastError(err)
		return
	}
	c.store.AddToast("Account created successfully! Please login", models.ToastSuccess, 0)
}

// cmdForgot advances the three-step reset wizard one field at a time; the
// bare form resets it, the close-the-dialog rule.
func (c *Console) cmdForgot(ctx context.Context, args []string) {
	f := parseForm(args)
	switch {
	case len(args) == 0:
		c.reset.Reset()
		fmt.Fprintln(c.out, "Password reset cancelled.")
	case f.has("email"):
		if err := c.reset.SubmitEmail(f.get("email")); err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast("Reset code sent to "+f.get("email"), models.ToastSuccess, 0)
	case f.has("code"):
		if err := c.reset.SubmitCode(f.get("code")); err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast("Code verified! Now set your new password", models.ToastSuccess, 0)
	case f.has("password"):
		if err := c.reset.SubmitNewPassword(ctx, f.get("password"), f.get("confirm")); err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast("Password reset successfully! Please login with your new password", models.ToastSuccess, 0)
	default:
		fmt.Fprintln(c.out, "Usage: forgot email=... | forgot code=... | forgot password=... confirm=...")
	}
}

func (c *Console) cmdLogout(ctx context.Context) {
	if err := c.store.Logout(ctx); err != nil {
		c.toastError(err)
		return
	}
	c.store.AddToast("Logged out", models.ToastInfo, 0)
}

func (c *Console) cmdWhoami() {
	loggedIn, user := c.store.Session()
	if !loggedIn || user == nil {
		fmt.Fprintln(c.out, "Not logged in.")
		return
	}
	fmt.Fprintf(c.out, "%s <%s> role=%s\n", user.FullName, user.Email, user.Role)
}

func (c *Console) cmdTheme(ctx context.Context) {
	dark, err := c.store.ToggleTheme(ctx)
	if err != nil {
		c.toastError(err)
		return
	}
	mode := models.ThemeLight
	if dark {
		mode = models.ThemeDark
	}
	fmt.Fprintf(c.out, "Theme set to %s\n", mode)
}

func (c *Console) cmdSidebar(ctx context.Context) {
	open, err := c.store.ToggleSidebar(ctx)
	if err != nil {
		c.toastError(err)
		return
	}
	fmt.Fprintf(c.out, "Sidebar open: %t\n", open)
}
