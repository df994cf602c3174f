package posts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPostgresRepository(db)

	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs(int64(2), "Hello World!").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), created))

	post, err := repo.Create(context.Background(), 2, "Hello World!")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if post.ID != 5 || post.AuthorID != 2 || post.Text != "Hello World!" {
		t.Errorf("got %+v", post)
	}
	if !post.CreatedAt.Equal(created) {
		t.Errorf("created_at: got %v want %v", post.CreatedAt, created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestByAuthors_EmptyIDListSkipsQuery(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPostgresRepository(db)

	posts, err := repo.ByAuthors(context.Background(), nil)
	if err != nil {
		t.Fatalf("ByAuthors error: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("expected empty, non-nil slice, got %#v", posts)
	}

	// No expectations were registered; any query would have failed the mock.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}

func TestByAuthors_ExpandsPlaceholdersAndKeepsOrder(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPostgresRepository(db)

	base := time.Now()
	rows := sqlmock.NewRows([]string{"id", "author_id", "text", "created_at"}).
		AddRow(int64(1), int64(2), "first", base).
		AddRow(int64(2), int64(1), "second", base.Add(time.Second)).
		AddRow(int64(3), int64(2), "third", base.Add(2*time.Second))

	mock.ExpectQuery(regexp.QuoteMeta("IN ($1, $2)")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	posts, err := repo.ByAuthors(context.Background(), []int64{1, 2})
	if err != nil {
		t.Fatalf("ByAuthors error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts", len(posts))
	}
	wantTexts := []string{"first", "second", "third"}
	for i, want := range wantTexts {
		if posts[i].Text != want {
			t.Errorf("post %d: got %q want %q", i, posts[i].Text, want)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestByAuthors_QueryError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts")).
		WillReturnError(errors.New("connection reset"))

	if _, err := repo.ByAuthors(context.Background(), []int64{1}); err == nil {
		t.Fatal("expected error")
	}
}
