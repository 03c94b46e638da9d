package service

import (
	"context"
	"fmt"

	"github.com/roomanalam/My-blog/internal/domain"
)

// CommentService handles comment creation and removal.
type CommentService struct {
	comments domain.CommentRepository
	posts    domain.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments domain.CommentRepository, posts domain.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create inserts a comment by the given author on the given post.
// The post must exist.
func (s *CommentService) Create(ctx context.Context, postID, authorID int64, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// ListByPost returns a post's comments, oldest first, with author names.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// CountByPost returns the number of comments on a post.
func (s *CommentService) CountByPost(ctx context.Context, postID int64) (int, error) {
	return s.comments.CountByPost(ctx, postID)
}

// Delete removes a single comment. The comment must belong to the given
// post; a mismatched pair is treated as not found.
func (s *CommentService) Delete(ctx context.Context, postID, id int64) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return domain.ErrNotFound
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
