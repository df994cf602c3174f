package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/miniter/internal/server/models"
	"github.com/dmitrijs2005/miniter/internal/server/repositories/repomanager"
)

type TimelineService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTimelineService(db *sql.DB, m repomanager.RepositoryManager) *TimelineService {
	return &TimelineService{db: db, repomanager: m}
}

// FollowUser records the edge actor -> followee. Repeating the call leaves
// the graph unchanged.
func (s *TimelineService) FollowUser(ctx context.Context, actorID, followeeID int64) error {
	repo := s.repomanager.Follows(s.db)
	if err := repo.Follow(ctx, actorID, followeeID); err != nil {
		return fmt.Errorf("error creating follow edge: %w", err)
	}
	return nil
}

// UnfollowUser removes the edge actor -> followee. A missing edge is a
// no-op, not an error.
func (s *TimelineService) UnfollowUser(ctx context.Context, actorID, followeeID int64) error {
	repo := s.repomanager.Follows(s.db)
	if err := repo.Unfollow(ctx, actorID, followeeID); err != nil {
		return fmt.Errorf("error deleting follow edge: %w", err)
	}
	return nil
}

// Get assembles the timeline for userID: the user's own posts plus the
// posts of everyone they follow, in creation order with the post id as a
// stable tiebreak. The follow store guarantees each followee appears once,
// so no post is counted twice. A user with no posts and no followees (or a
// nonexistent user) gets an empty timeline, not an error.
func (s *TimelineService) Get(ctx context.Context, userID int64) (*models.Timeline, error) {

	followees, err := s.repomanager.Follows(s.db).ListFollowees(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing followees: %w", err)
	}

	authorIDs := make([]int64, 0, len(followees)+1)
	authorIDs = append(authorIDs, userID)
	authorIDs = append(authorIDs, followees...)

	posts, err := s.repomanager.Posts(s.db).ByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching posts: %w", err)
	}

	entries := make([]models.TimelineEntry, 0, len(posts))
	for _, post := range posts {
		entries = append(entries, models.TimelineEntry{AuthorID: post.AuthorID, Text: post.Text})
	}

	return &models.Timeline{UserID: userID, Entries: entries}, nil
}
