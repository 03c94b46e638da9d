package domain

import (
	"context"
	"time"
)

// Post is a published blog post. AuthorName is resolved from the users
// table on reads; only AuthorID is stored.
type Post struct {
	ID         int64
	AuthorID   int64
	AuthorName string
	Title      string
	Subtitle   string
	Body       string
	ImageURL   string
	Date       string // human-readable publish date, stamped at creation
	CreatedAt  time.Time
}

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	GetByTitle(ctx context.Context, title string) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
}
