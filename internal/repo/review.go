package repo

import (
	"context"
	"database/sql"

	"github.com/CagilDisbudak/MoviePage/internal/models"
)

// ==========================
// ReviewRepo
// ==========================
type ReviewRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{DB: db}
}

// ==========================
// Create Review
// ==========================
func (r *ReviewRepo) Create(ctx context.Context, text string, rating float64, movieID, userID int) (*models.Review, error) {
	query := `
		INSERT INTO reviews (text, rating, movie_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, text, rating, movie_id, user_id
	`

	review := &models.Review{}

	err := r.DB.QueryRowContext(ctx, query, text, rating, movieID, userID).
		Scan(&review.ID, &review.Text, &review.Rating, &review.MovieID, &review.UserID)

	if err != nil {
		return nil, err
	}

	return review, nil
}

// ==========================
// List Reviews For Movie
// ==========================
func (r *ReviewRepo) ListByMovie(ctx context.Context, movieID int) ([]models.Review, error) {
	query := `
		SELECT id, text, rating, movie_id, user_id
		FROM reviews
		WHERE movie_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.Text, &rv.Rating, &rv.MovieID, &rv.UserID); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}
