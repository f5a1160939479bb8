package cli

import (
	"context"
	"os"

	"github.com/skillshare/skilladmin/internal/api"
	"github.com/skillshare/skilladmin/internal/nav"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, exchanges them for a session token, and on
// success persists the token, re-derives session state, and navigates to
// the landing screen. A rejected login surfaces the server's message
// verbatim and leaves the session unauthenticated.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		a.printErr(err)
		return err
	}

	if err := a.session.SetToken(ctx, token); err != nil {
		a.printErr(err)
		return err
	}

	if !a.session.IsAuthenticated() {
		// The backend issued a token the client could not decode.
		printlnFn("Login failed: the server issued an unusable token.")
		return nil
	}

	if id, ok := a.session.CurrentIdentity(); ok {
		printlnFn("Welcome,", id.Name)
	}
	return a.Open(ctx, nav.PathRoot)
}

// Signup collects account fields and creates a new account. Validation is
// presence checks plus matching password confirmation, as in the signup
// form this replaces.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	mobile, err := getSimpleText(a.reader, "Enter mobile", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (admin/instructor/student)", os.Stdout)
	if err != nil {
		return err
	}

	if name == "" || email == "" || role == "" {
		printlnFn("Name, email, and role are required.")
		return nil
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match.")
		return nil
	}

	req := api.SignupRequest{Name: name, Email: email, Mobile: mobile, Role: role, Password: string(password)}
	if err := a.api.Signup(ctx, req); err != nil {
		a.printErr(err)
		return err
	}

	printlnFn("Account created. You can log in now.")
	return nil
}

// Logout destroys the stored credential and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		a.printErr(err)
		return err
	}
	a.path = ""
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the identity decoded from the session token.
func (a *App) WhoAmI(ctx context.Context) error {
	id, ok := a.session.CurrentIdentity()
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(id.Name, "("+id.UserID+")")
	return nil
}
