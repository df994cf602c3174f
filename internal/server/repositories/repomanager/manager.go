package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/miniter/internal/dbx"
	"github.com/dmitrijs2005/miniter/internal/server/repositories/follows"
	"github.com/dmitrijs2005/miniter/internal/server/repositories/posts"
	"github.com/dmitrijs2005/miniter/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX
// (either the shared pool or an open transaction) and exposes a schema
// bootstrap hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Follows(db dbx.DBTX) follows.Repository
}
