package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CagilDisbudak/MoviePage/internal/middleware"
	"github.com/CagilDisbudak/MoviePage/internal/models"
	"github.com/CagilDisbudak/MoviePage/internal/repo"
	"github.com/DATA-DOG/go-sqlmock"
)

func TestReviewHandler_CreateReview(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, year, director, rating`).
		WithArgs(1).
		WillReturnRows(movieRows().
			AddRow(1, "Heat", "", 1995, "Michael Mann", 8.3, nil, nil, nil, nil))
	mock.ExpectQuery(`INSERT INTO reviews \(text, rating, movie_id, user_id\)`).
		WithArgs("great movie", 9.0, 1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "rating", "movie_id", "user_id"}).
			AddRow(5, "great movie", 9.0, 1, 2))

	h := &ReviewHandler{Repo: repo.NewReviewRepo(db), Movies: repo.NewMovieRepo(db)}

	body, _ := json.Marshal(map[string]interface{}{
		"movie_id": 1,
		"text":     "great movie",
		"rating":   9.0,
	})
	req := httptest.NewRequest("POST", "/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithUser(req.Context(), &models.User{ID: 2, Username: "bob", Role: "user"}))
	rr := httptest.NewRecorder()
	h.CreateReview(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("CreateReview status: got %d, want 201 (body: %s)", rr.Code, rr.Body.String())
	}
	var review struct {
		ID     int `json:"id"`
		UserID int `json:"user_id"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&review); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if review.ID != 5 || review.UserID != 2 {
		t.Errorf("unexpected review: %+v", review)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestReviewHandler_CreateReview_MovieNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, year, director, rating`).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	h := &ReviewHandler{Repo: repo.NewReviewRepo(db), Movies: repo.NewMovieRepo(db)}

	body, _ := json.Marshal(map[string]interface{}{
		"movie_id": 999,
		"text":     "great movie",
		"rating":   9.0,
	})
	req := httptest.NewRequest("POST", "/reviews", bytes.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), &models.User{ID: 2, Username: "bob", Role: "user"}))
	rr := httptest.NewRecorder()
	h.CreateReview(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("CreateReview status: got %d, want 404", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestReviewHandler_CreateReview_Unauthenticated(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := &ReviewHandler{Repo: repo.NewReviewRepo(db), Movies: repo.NewMovieRepo(db)}

	body, _ := json.Marshal(map[string]interface{}{"movie_id": 1, "text": "x", "rating": 5.0})
	req := httptest.NewRequest("POST", "/reviews", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.CreateReview(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("CreateReview status: got %d, want 401", rr.Code)
	}
}

func TestReviewHandler_ListForMovie(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, text, rating, movie_id, user_id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "rating", "movie_id", "user_id"}).
			AddRow(5, "great movie", 9.0, 1, 2))

	h := &ReviewHandler{Repo: repo.NewReviewRepo(db), Movies: repo.NewMovieRepo(db)}

	req := withURLParam(httptest.NewRequest("GET", "/movies/1/reviews", nil), "id", "1")
	rr := httptest.NewRecorder()
	h.ListForMovie(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("ListForMovie status: got %d, want 200", rr.Code)
	}
	var reviews []struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&reviews); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Text != "great movie" {
		t.Errorf("unexpected reviews: %+v", reviews)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
