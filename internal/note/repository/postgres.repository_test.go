package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/model"
	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

func newMockRepo(t *testing.T) (*PostgresNoteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresNoteRepository(db), mock
}

func noteColumns() []string {
	return []string{"id", "user_id", "title", "content", "kind", "skin", "created_at", "updated_at"}
}

func TestPostgresListByUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, title, content, kind, skin, created_at, updated_at\s+FROM notes WHERE user_id = \$1 ORDER BY updated_at DESC`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(noteColumns()).
			AddRow("n2", "user-1", "Second", "b", "text", "plain", now, now).
			AddRow("n1", "user-1", "First", "a", "text", "dark", now.Add(-time.Minute), now.Add(-time.Minute)))

	notes, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[0].ID)
	assert.Equal(t, "n1", notes[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGet(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, user_id, title, content, kind, skin, created_at, updated_at\s+FROM notes WHERE id = \$1`).
		WithArgs("n1").
		WillReturnRows(sqlmock.NewRows(noteColumns()).
			AddRow("n1", "user-1", "Hi", "body", "text", "plain", now, now))

	note, err := repo.Get(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", note.UserID)
	assert.Equal(t, "Hi", note.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, user_id, title, content, kind, skin, created_at, updated_at\s+FROM notes WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(noteColumns()))

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO notes \(id, user_id, title, content, kind, skin, created_at, updated_at\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, NOW\(\), NOW\(\)\)`).
		WithArgs(sqlmock.AnyArg(), "user-1", "Hi", "body", "text", "plain").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Create(context.Background(), model.Note{
		UserID:  "user-1",
		Title:   "Hi",
		Content: "body",
		Kind:    model.KindText,
		Skin:    model.DefaultSkin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Columns are applied in sorted order.
	mock.ExpectExec(`UPDATE notes SET kind = \$1, title = \$2, updated_at = NOW\(\) WHERE id = \$3`).
		WithArgs("text", "New title", "n1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "n1", map[string]any{
		"title": "New title",
		"kind":  "text",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE notes SET kind = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("text", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "missing", map[string]any{"kind": "text"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM notes WHERE id = \$1`).
		WithArgs("n1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "n1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
