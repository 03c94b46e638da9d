package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roomanalam/My-blog/internal/domain"
)

// CommentRepository implements domain.CommentRepository using SQLite.
type CommentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new SQLite-backed CommentRepository.
func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{db: db.SqlDB}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (post_id, author_id, text, created_at)
		 VALUES (?, ?, ?, ?)`,
		comment.PostID, comment.AuthorID, comment.Text, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	comment.ID = id
	comment.CreatedAt = now
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	comment := &domain.Comment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT c.id, c.post_id, c.author_id, u.name, c.text, c.created_at
		 FROM comments c JOIN users u ON u.id = c.author_id
		 WHERE c.id = ?`, id,
	).Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.AuthorName,
		&comment.Text, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query comment by id: %w", err)
	}
	return comment, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.post_id, c.author_id, u.name, c.text, c.created_at
		 FROM comments c JOIN users u ON u.id = c.author_id
		 WHERE c.post_id = ?
		 ORDER BY c.created_at ASC, c.id ASC`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorName,
			&c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM comments WHERE post_id = ?", postID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
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
