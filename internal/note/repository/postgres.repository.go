package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/model"
	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
)

// PostgresNoteRepository stores notes in a relational table:
//
//	CREATE TABLE notes (
//	    id         TEXT PRIMARY KEY,
//	    user_id    TEXT NOT NULL,
//	    title      TEXT NOT NULL,
//	    content    TEXT NOT NULL DEFAULT '',
//	    kind       TEXT NOT NULL DEFAULT 'text',
//	    skin       TEXT NOT NULL DEFAULT 'plain',
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresNoteRepository struct {
	DB *sql.DB
}

func NewPostgresNoteRepository(db *sql.DB) *PostgresNoteRepository {
	return &PostgresNoteRepository{DB: db}
}

func (r *PostgresNoteRepository) ListByUser(ctx context.Context, userID string) ([]model.Note, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, title, content, kind, skin, created_at, updated_at
		 FROM notes WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		logger.Sugar.Errorf("Failed to list notes for user %s: %v", userID, err)
		return nil, err
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Kind, &n.Skin, &n.CreatedAt, &n.UpdatedAt); err != nil {
			logger.Sugar.Errorf("Failed to scan note row: %v", err)
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *PostgresNoteRepository) Get(ctx context.Context, id string) (model.Note, error) {
	var n model.Note
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, title, content, kind, skin, created_at, updated_at
		 FROM notes WHERE id = $1`, id).
		Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Kind, &n.Skin, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Note{}, ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get note %s: %v", id, err)
		return model.Note{}, err
	}
	return n, nil
}

func (r *PostgresNoteRepository) Create(ctx context.Context, note model.Note) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO notes (id, user_id, title, content, kind, skin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
		id, note.UserID, note.Title, note.Content, note.Kind, note.Skin)
	if err != nil {
		logger.Sugar.Errorf("Failed to create note: %v", err)
		return "", err
	}
	return id, nil
}

func (r *PostgresNoteRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	// Deterministic column order keeps the statement stable for a given
	// field set.
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	assignments := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	assignments = append(assignments, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE notes SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(args))
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Sugar.Errorf("Failed to update note %s: %v", id, err)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresNoteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM notes WHERE id = $1", id)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete note %s: %v", id, err)
	}
	return err
}
