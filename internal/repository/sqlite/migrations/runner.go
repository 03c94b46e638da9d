package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
)

// Run brings the schema up to date. Every embedded .sql file is executed
// at most once, in lexical filename order, each inside its own
// transaction. Applied filenames are recorded in schema_migrations so
// reruns are no-ops.
func Run(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	pending, err := pendingFiles(ctx, db)
	if err != nil {
		return err
	}

	for _, name := range pending {
		if err := applyOne(ctx, db, name); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
		slog.Info("applied migration", "file", name)
	}
	return nil
}

// pendingFiles returns the embedded .sql files not yet recorded in
// schema_migrations, sorted lexically.
func pendingFiles(ctx context.Context, db *sql.DB) ([]string, error) {
	names, err := fs.Glob(FS, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("glob migration files: %w", err)
	}
	sort.Strings(names)

	rows, err := db.QueryContext(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	done := make(map[string]bool, len(names))
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			return nil, fmt.Errorf("scan applied migration: %w", err)
		}
		done[filename] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var pending []string
	for _, name := range names {
		if !done[name] {
			pending = append(pending, name)
		}
	}
	return pending, nil
}

func applyOne(ctx context.Context, db *sql.DB, name string) error {
	stmts, err := fs.ReadFile(FS, name)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(stmts)); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (filename) VALUES (?)", name); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return tx.Commit()
}
