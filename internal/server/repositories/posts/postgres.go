// Package posts provides a PostgreSQL-backed repository for published posts.
package posts

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/miniter/internal/dbx"
	"github.com/dmitrijs2005/miniter/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a post and returns it with the generated id and creation
// time filled in.
func (r *PostgresRepository) Create(ctx context.Context, authorID int64, text string) (*models.Post, error) {
	query := `
		INSERT INTO posts (author_id, text)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	post := &models.Post{AuthorID: authorID, Text: text}
	err := r.db.QueryRowContext(ctx, query, authorID, text).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

// ByAuthors returns every post whose author id is in authorIDs, ordered by
// creation time with the post id as a stable tiebreak. An empty id set
// yields an empty, non-nil slice without touching the database.
//
// The IN list is expanded into numbered placeholders; values are always
// bound, never concatenated into the query text.
func (r *PostgresRepository) ByAuthors(ctx context.Context, authorIDs []int64) ([]models.Post, error) {
	result := make([]models.Post, 0)
	if len(authorIDs) == 0 {
		return result, nil
	}

	placeholders := make([]string, len(authorIDs))
	args := make([]any, len(authorIDs))
	for i, id := range authorIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, author_id, text, created_at
		FROM posts
		WHERE author_id IN (%s)
		ORDER BY created_at, id
	`, strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Text, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
