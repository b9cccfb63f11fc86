package repositories

import (
	"database/sql"

	"inkwell/app/models"
)

// SQLiteCommentRepository implements CommentRepository on SQLite
type SQLiteCommentRepository struct {
	db *sql.DB
}

// NewSQLiteCommentRepository creates a new SQLiteCommentRepository
func NewSQLiteCommentRepository(db *sql.DB) *SQLiteCommentRepository {
	return &SQLiteCommentRepository{db: db}
}

// Create inserts a new comment. A missing post or author surfaces as a
// foreign key violation and is reported as ErrNotFound.
func (r *SQLiteCommentRepository) Create(comment *models.Comment) error {
	res, err := r.db.Exec(
		`INSERT INTO comments (post_id, author_id, body) VALUES (?, ?, ?)`,
		comment.PostID, comment.AuthorID, comment.Body,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	comment.ID = int(id)
	return nil
}

// ListByPost retrieves all comments on a post in insertion order
func (r *SQLiteCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	rows, err := r.db.Query(
		`SELECT c.id, c.post_id, c.author_id, u.name, c.body
		 FROM comments c JOIN users u ON u.id = c.author_id
		 WHERE c.post_id = ?
		 ORDER BY c.id`, postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Author, &comment.Body); err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}
