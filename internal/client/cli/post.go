package cli

import (
	"context"
	"os"
)

// Post publishes a post as the logged-in user.
func (a *App) Post(ctx context.Context) error {

	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	text, err := GetSimpleText(a.reader, "Enter post text (max 300 characters)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Tweet(ctx, text); err != nil {
		printlnFn("Post failed:", err)
		return err
	}

	printlnFn("Posted")
	return nil
}
