package repo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/CagilDisbudak/MoviePage/internal/models"
)

// ==========================
// MovieRepo
// ==========================
type MovieRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{DB: db}
}

const movieColumns = `id, title, description, year, director, rating, poster_url, trailer_url, category, genres`

// ==========================
// Create Movie
// ==========================
func (r *MovieRepo) Create(ctx context.Context, m *models.Movie) (*models.Movie, error) {
	query := `
		INSERT INTO movies (title, description, year, director, rating, poster_url, trailer_url, category, genres)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + movieColumns

	genres, err := encodeGenres(m.Genres)
	if err != nil {
		return nil, err
	}

	row := r.DB.QueryRowContext(ctx, query,
		m.Title, m.Description, m.Year, m.Director, m.Rating,
		nullString(m.PosterURL), nullString(m.TrailerURL), nullString(m.Category), genres,
	)

	return scanMovie(row)
}

// ==========================
// Get By ID
// ==========================
func (r *MovieRepo) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id = $1
	`

	return scanMovie(r.DB.QueryRowContext(ctx, query, id))
}

// ==========================
// List Movies (paginated)
// ==========================
func (r *MovieRepo) ListPaginated(ctx context.Context, limit, offset int) ([]models.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovies(rows)
}

// ==========================
// Search By Title (case-insensitive substring)
// ==========================
func (r *MovieRepo) SearchByTitle(ctx context.Context, q string) ([]models.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovies(rows)
}

// ==========================
// Count Movies
// ==========================
func (r *MovieRepo) Count(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total)
	return total, err
}

// ==========================
// Scan helpers
// ==========================

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovie(row rowScanner) (*models.Movie, error) {
	m := &models.Movie{}
	var poster, trailer, category, genres sql.NullString

	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.Year, &m.Director, &m.Rating,
		&poster, &trailer, &category, &genres,
	)
	if err != nil {
		return nil, err
	}

	m.PosterURL = poster.String
	m.TrailerURL = trailer.String
	m.Category = category.String
	if genres.Valid && genres.String != "" {
		if err := json.Unmarshal([]byte(genres.String), &m.Genres); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func scanMovies(rows *sql.Rows) ([]models.Movie, error) {
	var movies []models.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *m)
	}
	return movies, rows.Err()
}

// encodeGenres serializes the genre list as a JSON string column, the
// format the upstream dataset uses. Empty lists are stored as NULL.
func encodeGenres(genres []string) (sql.NullString, error) {
	if len(genres) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(genres)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
