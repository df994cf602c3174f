package cli

import (
	"context"
	"os"
)

// Login collects credentials and exchanges them for an access token held by
// the API client for the rest of the session.
func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	printlnFn("Logged in")
	return nil
}

// Logout forgets the access token. The token itself stays valid until its
// expiry; the server keeps no session state.
func (a *App) Logout(ctx context.Context) error {
	a.client.SetAccessToken("")
	printlnFn("Logged out")
	return nil
}
