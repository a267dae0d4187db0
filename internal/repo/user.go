package repo

import (
	"context"
	"database/sql"

	"github.com/CagilDisbudak/MoviePage/internal/models"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// ==========================
// Create User
// ==========================
// Username uniqueness is enforced by the store constraint; a duplicate
// insert surfaces as a pq unique-violation error, never a partial row.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash, role string) (*models.User, error) {
	query := `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, username, role
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, username, passwordHash, role).
		Scan(&user.ID, &user.Username, &user.Role)

	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// Get By ID
// ==========================
func (r *UserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, role
		FROM users
		WHERE id = $1
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role)

	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// Get By Username
// ==========================
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, role
		FROM users
		WHERE username = $1
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role)

	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// List Users
// ==========================
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := `
		SELECT id, username, role
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// ==========================
// Count Users
// ==========================
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	return total, err
}
