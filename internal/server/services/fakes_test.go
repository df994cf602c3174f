package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/miniter/internal/common"
	"github.com/dmitrijs2005/miniter/internal/dbx"
	"github.com/dmitrijs2005/miniter/internal/server/models"
	followsrepo "github.com/dmitrijs2005/miniter/internal/server/repositories/follows"
	postsrepo "github.com/dmitrijs2005/miniter/internal/server/repositories/posts"
	usersrepo "github.com/dmitrijs2005/miniter/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// --- in-memory fakes honoring the repository contracts ---

type fakeUsersRepo struct {
	nextID int64
	users  map[int64]*models.User

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[int64]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakePostsRepo struct {
	nextID int64
	posts  []models.Post

	createErr error
	listErr   error
}

func (f *fakePostsRepo) Create(ctx context.Context, authorID int64, text string) (*models.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	post := models.Post{ID: f.nextID, AuthorID: authorID, Text: text, CreatedAt: time.Now()}
	f.posts = append(f.posts, post)
	return &post, nil
}

func (f *fakePostsRepo) ByAuthors(ctx context.Context, authorIDs []int64) ([]models.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	wanted := map[int64]bool{}
	for _, id := range authorIDs {
		wanted[id] = true
	}
	// Posts are appended in creation order; filtering preserves it.
	result := make([]models.Post, 0)
	for _, p := range f.posts {
		if wanted[p.AuthorID] {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeFollowsRepo struct {
	edges map[[2]int64]bool

	err error
}

func newFakeFollowsRepo() *fakeFollowsRepo {
	return &fakeFollowsRepo{edges: map[[2]int64]bool{}}
}

func (f *fakeFollowsRepo) Follow(ctx context.Context, followerID, followeeID int64) error {
	if f.err != nil {
		return f.err
	}
	f.edges[[2]int64{followerID, followeeID}] = true
	return nil
}

func (f *fakeFollowsRepo) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.edges, [2]int64{followerID, followeeID})
	return nil
}

func (f *fakeFollowsRepo) ListFollowees(ctx context.Context, userID int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]int64, 0)
	for edge := range f.edges {
		if edge[0] == userID {
			result = append(result, edge[1])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result, nil
}

type fakeRepoManager struct {
	users   *fakeUsersRepo
	posts   *fakePostsRepo
	follows *fakeFollowsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:   newFakeUsersRepo(),
		posts:   &fakePostsRepo{},
		follows: newFakeFollowsRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository           { return m.users }
func (m *fakeRepoManager) Posts(db dbx.DBTX) postsrepo.Repository           { return m.posts }
func (m *fakeRepoManager) Follows(db dbx.DBTX) followsrepo.Repository       { return m.follows }
