package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roomanalam/My-blog/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLite-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db.SqlDB}
}

const postColumns = `p.id, p.author_id, u.name, p.title, p.subtitle, p.body, p.img_url, p.date, p.created_at`

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (author_id, title, subtitle, body, img_url, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.AuthorID, post.Title, post.Subtitle, post.Body, post.ImageURL, post.Date, now,
	)
	if err != nil {
		if isUniqueViolation(err, "blog_posts.title") {
			return domain.ErrDuplicateTitle
		}
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+`
		 FROM blog_posts p JOIN users u ON u.id = p.author_id
		 WHERE p.id = ?`, id,
	).Scan(&post.ID, &post.AuthorID, &post.AuthorName, &post.Title, &post.Subtitle,
		&post.Body, &post.ImageURL, &post.Date, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

func (r *PostRepository) GetByTitle(ctx context.Context, title string) (*domain.Post, error) {
	post := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+`
		 FROM blog_posts p JOIN users u ON u.id = p.author_id
		 WHERE p.title = ?`, title,
	).Scan(&post.ID, &post.AuthorID, &post.AuthorName, &post.Title, &post.Subtitle,
		&post.Body, &post.ImageURL, &post.Date, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by title: %w", err)
	}
	return post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+postColumns+`
		 FROM blog_posts p JOIN users u ON u.id = p.author_id
		 ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Title, &p.Subtitle,
			&p.Body, &p.ImageURL, &p.Date, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE blog_posts SET title = ?, subtitle = ?, body = ?, img_url = ?
		 WHERE id = ?`,
		post.Title, post.Subtitle, post.Body, post.ImageURL, post.ID,
	)
	if err != nil {
		if isUniqueViolation(err, "blog_posts.title") {
			return domain.ErrDuplicateTitle
		}
		return fmt.Errorf("update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	// Comments cascade via the post_id foreign key.
	result, err := r.db.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
