package cli

import (
	"context"
	"fmt"
)

// Timeline fetches and prints the timeline of a user id entered
// interactively. The read is public; no login is needed.
func (a *App) Timeline(ctx context.Context) error {

	id, err := a.readUserID("Enter user id")
	if err != nil {
		return err
	}

	timeline, err := a.client.Timeline(ctx, id)
	if err != nil {
		printlnFn("Timeline failed:", err)
		return err
	}

	if len(timeline.Timeline) == 0 {
		printlnFn("Timeline is empty")
		return nil
	}

	for _, entry := range timeline.Timeline {
		printlnFn(fmt.Sprintf("[%d] %s", entry.UserID, entry.Tweet))
	}
	return nil
}
