package cli

import (
	"context"
	"os"
	"strconv"
)

func (a *App) readUserID(prompt string) (int64, error) {
	text, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		printlnFn("Not a valid user id:", text)
		return 0, err
	}
	return id, nil
}

// Follow adds a user to the logged-in user's followees.
func (a *App) Follow(ctx context.Context) error {

	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	id, err := a.readUserID("Enter user id to follow")
	if err != nil {
		return err
	}

	if err := a.client.Follow(ctx, id); err != nil {
		printlnFn("Follow failed:", err)
		return err
	}

	printlnFn("Following", id)
	return nil
}

// Unfollow removes a user from the logged-in user's followees.
func (a *App) Unfollow(ctx context.Context) error {

	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	id, err := a.readUserID("Enter user id to unfollow")
	if err != nil {
		return err
	}

	if err := a.client.Unfollow(ctx, id); err != nil {
		printlnFn("Unfollow failed:", err)
		return err
	}

	printlnFn("Unfollowed", id)
	return nil
}
