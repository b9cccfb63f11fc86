package repositories

import (
	"database/sql"

	"inkwell/app/models"
)

// SQLiteUserRepository implements UserRepository on SQLite
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user. The first account ever inserted becomes the
// administrator; the decision happens inside the same transaction as the
// insert, so two concurrent first registrations cannot both win.
func (r *SQLiteUserRepository) Create(user *models.User) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	user.IsAdmin = count == 0

	res, err := tx.Exec(
		`INSERT INTO users (email, password_hash, name, is_admin) VALUES (?, ?, ?, ?)`,
		user.Email, user.PasswordHash, user.Name, user.IsAdmin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = int(id)

	return tx.Commit()
}

// GetByEmail retrieves a user by email
func (r *SQLiteUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.get(`SELECT id, email, password_hash, name, is_admin FROM users WHERE email = ?`, email)
}

// GetByID retrieves a user by ID
func (r *SQLiteUserRepository) GetByID(id int) (*models.User, error) {
	return r.get(`SELECT id, email, password_hash, name, is_admin FROM users WHERE id = ?`, id)
}

func (r *SQLiteUserRepository) get(query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.IsAdmin,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
