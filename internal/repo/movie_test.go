package repo

import (
	"context"
	"database/sql"
	"testing"

	"github.com/CagilDisbudak/MoviePage/internal/models"
	"github.com/DATA-DOG/go-sqlmock"
)

func movieRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "year", "director", "rating",
		"poster_url", "trailer_url", "category", "genres",
	})
}

func TestMovieRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO movies`).
		WithArgs("Heat", "A heist thriller", 1995, "Michael Mann", 8.3,
			nil, nil, sqlmock.AnyArg(), `["Crime","Drama"]`).
		WillReturnRows(movieRows().AddRow(
			1, "Heat", "A heist thriller", 1995, "Michael Mann", 8.3,
			nil, nil, "Crime", `["Crime","Drama"]`))

	repo := NewMovieRepo(db)
	movie, err := repo.Create(context.Background(), &models.Movie{
		Title:       "Heat",
		Description: "A heist thriller",
		Year:        1995,
		Director:    "Michael Mann",
		Rating:      8.3,
		Category:    "Crime",
		Genres:      []string{"Crime", "Drama"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if movie.ID != 1 || movie.Title != "Heat" {
		t.Errorf("unexpected movie: %+v", movie)
	}
	if len(movie.Genres) != 2 || movie.Genres[0] != "Crime" {
		t.Errorf("genres not decoded: %+v", movie.Genres)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestMovieRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, year, director, rating`).
		WithArgs(7).
		WillReturnRows(movieRows().AddRow(
			7, "Alien", "In space no one can hear you scream", 1979, "Ridley Scott", 8.5,
			"http://example.com/alien.jpg", nil, "Horror", nil))

	repo := NewMovieRepo(db)
	movie, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if movie.Title != "Alien" || movie.PosterURL != "http://example.com/alien.jpg" {
		t.Errorf("unexpected movie: %+v", movie)
	}
	if movie.Genres != nil {
		t.Errorf("expected no genres, got %+v", movie.Genres)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestMovieRepo_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, year, director, rating`).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	repo := NewMovieRepo(db)
	if _, err := repo.GetByID(context.Background(), 999); err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestMovieRepo_ListPaginated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, year, director, rating`).
		WithArgs(10, 0).
		WillReturnRows(movieRows().
			AddRow(1, "Heat", "", 1995, "Michael Mann", 8.3, nil, nil, nil, nil).
			AddRow(2, "Alien", "", 1979, "Ridley Scott", 8.5, nil, nil, nil, nil))

	repo := NewMovieRepo(db)
	movies, err := repo.ListPaginated(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("ListPaginated: %v", err)
	}
	if len(movies) != 2 || movies[1].Title != "Alien" {
		t.Errorf("unexpected movies: %+v", movies)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestMovieRepo_SearchByTitle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`WHERE title ILIKE`).
		WithArgs("ali").
		WillReturnRows(movieRows().
			AddRow(2, "Alien", "", 1979, "Ridley Scott", 8.5, nil, nil, nil, nil))

	repo := NewMovieRepo(db)
	movies, err := repo.SearchByTitle(context.Background(), "ali")
	if err != nil {
		t.Fatalf("SearchByTitle: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Alien" {
		t.Errorf("unexpected movies: %+v", movies)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
