package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/roomanalam/My-blog/internal/domain"
	"github.com/roomanalam/My-blog/internal/repository/sqlite"
)

func TestCommentRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com", "Author")
	commenter := createTestUser(t, db, "reader@example.com", "Reader")
	post := createTestPost(t, db, author.ID, "Commented Post")

	comment := &domain.Comment{PostID: post.ID, AuthorID: commenter.ID, Text: "Great read"}
	if err := repo.Create(ctx, comment); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if comment.ID == 0 {
		t.Fatal("expected comment ID to be set after create")
	}
	if comment.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestCommentRepository_Create_MissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCommentRepository(db)
	ctx := context.Background()

	commenter := createTestUser(t, db, "reader@example.com", "Reader")

	// Foreign key enforcement rejects comments on nonexistent posts.
	comment := &domain.Comment{PostID: 99999, AuthorID: commenter.ID, Text: "Orphan"}
	if err := repo.Create(ctx, comment); err == nil {
		t.Fatal("expected error creating comment for missing post")
	}
}

func TestCommentRepository_ListByPost(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com", "Author")
	commenter := createTestUser(t, db, "reader@example.com", "Reader")
	post := createTestPost(t, db, author.ID, "Discussed Post")
	other := createTestPost(t, db, author.ID, "Quiet Post")

	first := &domain.Comment{PostID: post.ID, AuthorID: commenter.ID, Text: "First!"}
	second := &domain.Comment{PostID: post.ID, AuthorID: author.ID, Text: "Thanks for reading."}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	comments, err := repo.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}

	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	// Oldest first, with author names resolved.
	if comments[0].Text != "First!" || comments[0].AuthorName != "Reader" {
		t.Fatalf("unexpected first comment: %+v", comments[0])
	}
	if comments[1].AuthorName != "Author" {
		t.Fatalf("expected second comment author Author, got %q", comments[1].AuthorName)
	}

	// The other post has no comments.
	quiet, err := repo.ListByPost(ctx, other.ID)
	if err != nil {
		t.Fatalf("ListByPost quiet: %v", err)
	}
	if len(quiet) != 0 {
		t.Fatalf("expected no comments on quiet post, got %d", len(quiet))
	}
}

func TestCommentRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCommentRepository(db)

	_, err := repo.GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com", "Author")
	post := createTestPost(t, db, author.ID, "Post")

	comment := &domain.Comment{PostID: post.ID, AuthorID: author.ID, Text: "Delete me"}
	if err := repo.Create(ctx, comment); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, comment.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, comment.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected comment gone, got %v", err)
	}
}

func TestCommentRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCommentRepository(db)

	err := repo.Delete(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
