package models

// TimelineEntry is one post as seen in a timeline.
type TimelineEntry struct {
	AuthorID int64
	Text     string
}

// Timeline is the ordered union of a user's own posts and their followees'
// posts. Entries is never nil; an empty timeline is a valid result.
type Timeline struct {
	UserID  int64
	Entries []TimelineEntry
}
