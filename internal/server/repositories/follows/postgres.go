// Package follows provides a PostgreSQL-backed repository for the directed
// follow edges of the social graph.
package follows

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/miniter/internal/dbx"
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

// Follow inserts the edge follower -> followee. The table's composite
// primary key plus ON CONFLICT DO NOTHING make the insert idempotent:
// repeating it never creates a second row.
func (r *PostgresRepository) Follow(ctx context.Context, followerID, followeeID int64) error {
	query := `
		INSERT INTO follow_edges (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, followerID, followeeID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Unfollow deletes the exact edge follower -> followee. Deleting an edge
// that does not exist is a no-op, not an error.
func (r *PostgresRepository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	query := `
		DELETE FROM follow_edges
		WHERE follower_id = $1 AND followee_id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, followerID, followeeID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListFollowees returns the ids of everyone userID follows. The primary key
// guarantees each id appears at most once.
func (r *PostgresRepository) ListFollowees(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT followee_id
		FROM follow_edges
		WHERE follower_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
