package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errBusy = errors.New("another request is in progress")

var genderPrompt = fmt.Sprintf("Gender (%s/%s)", models.GenderMale, models.GenderFemale)

// Signup prompts for the signup form and hands it to the signup service.
// Validation and backend errors are reported by the service itself.
func (a *App) Signup(ctx context.Context) error {
	if a.signup.InProgress() {
		a.notifier.NotifyError(errBusy.Error())
		return errBusy
	}

	req, err := a.promptSignup()
	if err != nil {
		return err
	}

	if err := a.signup.Signup(ctx, req); err != nil {
		return err
	}

	a.notifier.NotifySuccess(fmt.Sprintf("Welcome, %s!", req.Username))
	return nil
}

func (a *App) promptSignup() (models.SignupRequest, error) {
	var req models.SignupRequest

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Full name", &req.FullName},
		{"Username", &req.Username},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return req, err
		}
		*f.dst = v
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return req, err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return req, err
	}
	defer common.WipeByteArray(confirm)

	req.Password = string(password)
	req.ConfirmPassword = string(confirm)

	gender, err := getSimpleText(a.reader, genderPrompt, a.out)
	if err != nil {
		return req, err
	}
	req.Gender = models.Gender(strings.ToLower(gender))

	req.ContactNumber, err = getSimpleText(a.reader, "Contact number", a.out)
	if err != nil {
		return req, err
	}

	return req, nil
}

// Login prompts for credentials and signs in, replacing any current session.
func (a *App) Login(ctx context.Context) error {
	if a.auth.InProgress() {
		a.notifier.NotifyError(errBusy.Error())
		return errBusy
	}

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, models.LoginRequest{Username: username, Password: string(password)}); err != nil {
		return err
	}

	a.notifier.NotifySuccess(fmt.Sprintf("Logged in as %s", username))
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.notifier.NotifySuccess("Logged out")
	return nil
}

// Forget wipes the local store, including the saved session.
func (a *App) Forget(ctx context.Context) error {
	if a.auth.InProgress() {
		a.notifier.NotifyError(errBusy.Error())
		return errBusy
	}
	if err := a.auth.Forget(ctx); err != nil {
		return err
	}
	a.notifier.NotifySuccess("Local data cleared")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(_ context.Context) error {
	rec, ok := a.sessions.Current()
	if !ok {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn(fmt.Sprintf("id: %s", rec.ID()))
	if name := rec.Username(); name != "" {
		printlnFn(fmt.Sprintf("username: %s", name))
	}
	if exp, ok := rec.ExpiresAt(); ok {
		printlnFn(fmt.Sprintf("session expires: %s", exp.Local().Format("2006-01-02 15:04")))
	}
	return nil
}
