package repo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReviewRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO reviews \(text, rating, movie_id, user_id\)`).
		WithArgs("great movie", 9.0, 1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "rating", "movie_id", "user_id"}).
			AddRow(5, "great movie", 9.0, 1, 2))

	repo := NewReviewRepo(db)
	review, err := repo.Create(context.Background(), "great movie", 9.0, 1, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.ID != 5 || review.MovieID != 1 || review.UserID != 2 {
		t.Errorf("unexpected review: %+v", review)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestReviewRepo_ListByMovie(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, text, rating, movie_id, user_id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "rating", "movie_id", "user_id"}).
			AddRow(5, "great movie", 9.0, 1, 2).
			AddRow(6, "meh", 5.5, 1, 3))

	repo := NewReviewRepo(db)
	reviews, err := repo.ListByMovie(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByMovie: %v", err)
	}
	if len(reviews) != 2 || reviews[1].Rating != 5.5 {
		t.Errorf("unexpected reviews: %+v", reviews)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestReviewRepo_ListByMovie_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, text, rating, movie_id, user_id`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "rating", "movie_id", "user_id"}))

	repo := NewReviewRepo(db)
	reviews, err := repo.ListByMovie(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListByMovie: %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("expected no reviews, got %+v", reviews)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
