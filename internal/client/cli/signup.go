package cli

import (
	"context"
	"fmt"
	"os"
)

// SignUp interactively collects account details and registers a new user.
func (a *App) SignUp(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	profile, err := GetSimpleText(a.reader, "Enter profile text", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.client.SignUp(ctx, name, email, profile, password)
	if err != nil {
		printlnFn("Sign-up failed:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Registered: id=%d name=%s", user.ID, user.Name))
	return nil
}
