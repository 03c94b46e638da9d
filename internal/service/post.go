package service

import (
	"context"
	"fmt"
	"time"

	"github.com/roomanalam/My-blog/internal/domain"
)

// publishDateFormat matches the human-readable dates shown on post pages,
// e.g. "August 31, 2026".
const publishDateFormat = "January 2, 2006"

// PostService handles blog post CRUD and validation.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create validates and inserts a new post authored by the given user,
// stamping the publish date with the current date.
func (s *PostService) Create(ctx context.Context, authorID int64, title, subtitle, body, imageURL string) (*domain.Post, error) {
	if err := validatePostFields(title, subtitle, body, imageURL); err != nil {
		return nil, err
	}

	post := &domain.Post{
		AuthorID: authorID,
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		ImageURL: imageURL,
		Date:     time.Now().Format(publishDateFormat),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetByID returns a post by ID with its author name resolved.
func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// List returns all posts, newest first, with author names resolved.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// Update validates and applies changes to the mutable fields of a post.
// The publish date and author are never changed.
func (s *PostService) Update(ctx context.Context, id int64, title, subtitle, body, imageURL string) (*domain.Post, error) {
	if err := validatePostFields(title, subtitle, body, imageURL); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Subtitle = subtitle
	post.Body = body
	post.ImageURL = imageURL

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Its comments are removed by the schema cascade.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func validatePostFields(title, subtitle, body, imageURL string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if subtitle == "" {
		return fmt.Errorf("%w: subtitle is required", domain.ErrInvalidInput)
	}
	if body == "" {
		return fmt.Errorf("%w: body is required", domain.ErrInvalidInput)
	}
	if imageURL == "" {
		return fmt.Errorf("%w: image URL is required", domain.ErrInvalidInput)
	}
	return nil
}
