package posts

import (
	"context"

	"github.com/dmitrijs2005/miniter/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, authorID int64, text string) (*models.Post, error)
	ByAuthors(ctx context.Context, authorIDs []int64) ([]models.Post, error)
}
