package repositories

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/app/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB, email, name string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Name:         name,
	}
	require.NoError(t, NewSQLiteUserRepository(db).Create(user))
	return user
}

func createTestPost(t *testing.T, db *sql.DB, author *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:    title,
		Subtitle: "A subtitle",
		Body:     "<p>Some body text.</p>",
		ImageURL: "https://example.com/cover.jpg",
		Date:     "August 31, 2026",
		AuthorID: author.ID,
	}
	require.NoError(t, NewSQLitePostRepository(db).Create(post))
	return post
}
