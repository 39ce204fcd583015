package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dmitrijs2005/countdown/internal/common"
	"github.com/dmitrijs2005/countdown/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email and a password entered twice, shows the
// password strength, and creates the account. A successful signup logs in.
//
// Password byte slices are wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s := services.PasswordStrength(string(password))
	a.println(fmt.Sprintf("Password strength: %s (%d/4)", s.Label, s.Score))

	repeat, err := getPassword("Repeat password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(repeat)

	if len(password) == 0 || len(repeat) == 0 {
		return services.ErrMissingFields
	}
	if !bytes.Equal(password, repeat) {
		return errPasswordMismatch
	}

	if err := a.authService.Signup(ctx, name, email, password); err != nil {
		return err
	}

	a.println(fmt.Sprintf("Welcome, %s!", name))
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		a.logger.Info(ctx, "login unsuccessful", "error", err)
		return err
	}

	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "login successful", "user", a.session.Email())
	if u != nil {
		a.println(fmt.Sprintf("Welcome back, %s!", u.Name))
	}
	return nil
}

// Logout clears the session and stops any live refresh.
func (a *App) Logout(ctx context.Context) error {
	a.view.Stop()
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		a.println("Not logged in.")
		return nil
	}
	a.println(fmt.Sprintf("%s <%s>, %d event(s)", u.Name, u.Email, len(u.Events)))
	return nil
}
