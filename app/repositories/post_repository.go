package repositories

import (
	"database/sql"

	"inkwell/app/models"
)

// SQLitePostRepository implements PostRepository on SQLite
type SQLitePostRepository struct {
	db *sql.DB
}

// NewSQLitePostRepository creates a new SQLitePostRepository
func NewSQLitePostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{db: db}
}

// Create inserts a new post. A title collision with any existing post is
// reported as ErrDuplicateTitle; the UNIQUE constraint is the arbiter, so
// two concurrent creators cannot both get the same title.
func (r *SQLitePostRepository) Create(post *models.Post) error {
	res, err := r.db.Exec(
		`INSERT INTO posts (title, subtitle, body, image_url, date, author_id) VALUES (?, ?, ?, ?, ?, ?)`,
		post.Title, post.Subtitle, post.Body, post.ImageURL, post.Date, post.AuthorID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTitle
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	post.ID = int(id)
	return nil
}

// GetByID retrieves a post by ID, without its comments
func (r *SQLitePostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post
	err := r.db.QueryRow(
		`SELECT p.id, p.title, p.subtitle, p.body, p.image_url, p.date, p.author_id, u.name
		 FROM posts p JOIN users u ON u.id = p.author_id
		 WHERE p.id = ?`, id,
	).Scan(&post.ID, &post.Title, &post.Subtitle, &post.Body, &post.ImageURL, &post.Date, &post.AuthorID, &post.Author)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts in insertion order
func (r *SQLitePostRepository) List() ([]*models.Post, error) {
	rows, err := r.db.Query(
		`SELECT p.id, p.title, p.subtitle, p.body, p.image_url, p.date, p.author_id, u.name
		 FROM posts p JOIN users u ON u.id = p.author_id
		 ORDER BY p.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Body, &post.ImageURL, &post.Date, &post.AuthorID, &post.Author); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// Update replaces the four mutable fields of an existing post. Updating a
// post to its own current title is a no-op for the UNIQUE constraint, so a
// resubmitted title is never falsely rejected; a collision with a different
// post still is.
func (r *SQLitePostRepository) Update(post *models.Post) error {
	res, err := r.db.Exec(
		`UPDATE posts SET title = ?, subtitle = ?, body = ?, image_url = ? WHERE id = ?`,
		post.Title, post.Subtitle, post.Body, post.ImageURL, post.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTitle
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post. Its comments go with it via ON DELETE CASCADE.
func (r *SQLitePostRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
