package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roomanalam/My-blog/internal/domain"
	"github.com/roomanalam/My-blog/internal/repository/sqlite"
	"github.com/roomanalam/My-blog/internal/service"
)

func newTestPostService(t *testing.T) (*service.PostService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewPostService(db.Posts()), db
}

func registerTestUser(t *testing.T, db *sqlite.DB, email, name string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, Name: name, PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestPostService_Create_StampsPublishDate(t *testing.T) {
	posts, db := newTestPostService(t)
	ctx := context.Background()
	author := registerTestUser(t, db, "admin@example.com", "Admin")

	post, err := posts.Create(ctx, author.ID, "Hello World", "A greeting", "Body text.", "https://example.com/img.jpg")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := time.Now().Format("January 2, 2006")
	if post.Date != want {
		t.Fatalf("expected publish date %q, got %q", want, post.Date)
	}
	if post.AuthorID != author.ID {
		t.Fatalf("expected author id %d, got %d", author.ID, post.AuthorID)
	}
}

func TestPostService_Create_MissingFields(t *testing.T) {
	posts, db := newTestPostService(t)
	ctx := context.Background()
	author := registerTestUser(t, db, "admin@example.com", "Admin")

	tests := []struct {
		name     string
		title    string
		subtitle string
		body     string
		imgURL   string
	}{
		{"missing title", "", "s", "b", "u"},
		{"missing subtitle", "t", "", "b", "u"},
		{"missing body", "t", "s", "", "u"},
		{"missing image", "t", "s", "b", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := posts.Create(ctx, author.ID, tc.title, tc.subtitle, tc.body, tc.imgURL)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPostService_Create_DuplicateTitle(t *testing.T) {
	posts, db := newTestPostService(t)
	ctx := context.Background()
	author := registerTestUser(t, db, "admin@example.com", "Admin")

	_, err := posts.Create(ctx, author.ID, "Same Title", "s", "b", "u")
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err = posts.Create(ctx, author.ID, "Same Title", "other", "other", "other")
	if !errors.Is(err, domain.ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestPostService_Update_PreservesDateAndAuthor(t *testing.T) {
	posts, db := newTestPostService(t)
	ctx := context.Background()
	author := registerTestUser(t, db, "admin@example.com", "Admin")

	created, err := posts.Create(ctx, author.ID, "Hello World", "Old subtitle", "b", "u")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := posts.Update(ctx, created.ID, "Hello World", "New subtitle", "b", "u")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Subtitle != "New subtitle" {
		t.Fatalf("expected new subtitle, got %q", updated.Subtitle)
	}
	if updated.Title != "Hello World" {
		t.Fatalf("expected unchanged title, got %q", updated.Title)
	}
	if updated.Date != created.Date {
		t.Fatalf("expected publish date unchanged, got %q", updated.Date)
	}
	if updated.AuthorID != author.ID {
		t.Fatalf("expected author unchanged, got %d", updated.AuthorID)
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	posts, _ := newTestPostService(t)

	_, err := posts.Update(context.Background(), 99999, "t", "s", "b", "u")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostService_Delete(t *testing.T) {
	posts, db := newTestPostService(t)
	ctx := context.Background()
	author := registerTestUser(t, db, "admin@example.com", "Admin")

	created, err := posts.Create(ctx, author.ID, "Short-lived", "s", "b", "u")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := posts.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	listing, err := posts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listing) != 0 {
		t.Fatalf("expected empty listing after delete, got %d posts", len(listing))
	}
}

func TestPostService_Delete_NotFound(t *testing.T) {
	posts, _ := newTestPostService(t)

	err := posts.Delete(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
