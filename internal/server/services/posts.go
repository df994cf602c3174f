package services

import (
	"context"
	"database/sql"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/miniter/internal/common"
	"github.com/dmitrijs2005/miniter/internal/server/models"
	"github.com/dmitrijs2005/miniter/internal/server/repositories/repomanager"
)

type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// Publish stores a new post by authorID. Texts longer than
// common.MaxPostLength runes are rejected with common.ErrPostTooLong and
// nothing is written.
func (s *PostService) Publish(ctx context.Context, authorID int64, text string) (*models.Post, error) {

	if utf8.RuneCountInString(text) > common.MaxPostLength {
		return nil, common.ErrPostTooLong
	}

	repo := s.repomanager.Posts(s.db)

	post, err := repo.Create(ctx, authorID, text)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return post, nil
}
