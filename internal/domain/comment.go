package domain

import (
	"context"
	"time"
)

// Comment belongs to exactly one post and one author. Comments are
// removed together with their post (cascade at the schema level).
type Comment struct {
	ID         int64
	PostID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}
