package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/roomanalam/My-blog/internal/domain"
	"github.com/roomanalam/My-blog/internal/repository/sqlite/migrations"
)

// DB wraps a SQLite connection and provides repository accessors.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement. Comment cascade on post delete
	// depends on this pragma.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Users returns a SQLite-backed user repository.
func (d *DB) Users() domain.UserRepository {
	return NewUserRepository(d)
}

// Posts returns a SQLite-backed post repository.
func (d *DB) Posts() domain.PostRepository {
	return NewPostRepository(d)
}

// Comments returns a SQLite-backed comment repository.
func (d *DB) Comments() domain.CommentRepository {
	return NewCommentRepository(d)
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// violation on the given column (e.g. "users.email").
func isUniqueViolation(err error, column string) bool {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, column)
}
