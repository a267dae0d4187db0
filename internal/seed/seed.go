// Package seed imports the upstream db.json movie dataset into the
// movies table. It is a one-time loader: rows are inserted as-is and
// re-running it duplicates them.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/CagilDisbudak/MoviePage/internal/models"
	"github.com/CagilDisbudak/MoviePage/internal/repo"
)

// datasetMovie mirrors one entry of the upstream db.json "movies" array.
type datasetMovie struct {
	Title     string      `json:"title"`
	Year      json.Number `json:"year"`
	Director  string      `json:"director"`
	Plot      string      `json:"plot"`
	Genres    []string    `json:"genres"`
	PosterURL string      `json:"posterUrl"`
}

type dataset struct {
	Movies []datasetMovie `json:"movies"`
}

// LoadFile reads a db.json file and inserts every movie it contains.
// Returns the number of rows inserted.
func LoadFile(ctx context.Context, path string, movies *repo.MovieRepo) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Load(ctx, f, movies)
}

// Load inserts every movie from the JSON dataset read from r.
func Load(ctx context.Context, r io.Reader, movies *repo.MovieRepo) (int, error) {
	var data dataset
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return 0, fmt.Errorf("decode dataset: %w", err)
	}

	inserted := 0
	for _, m := range data.Movies {
		if _, err := movies.Create(ctx, convert(m)); err != nil {
			return inserted, fmt.Errorf("insert %q: %w", m.Title, err)
		}
		inserted++
	}
	return inserted, nil
}

// convert maps a dataset entry onto the catalog schema. The dataset has
// no numeric rating or trailer; category is the first genre.
func convert(m datasetMovie) *models.Movie {
	year := 0
	if y, err := m.Year.Int64(); err == nil {
		year = int(y)
	}
	category := "Other"
	if len(m.Genres) > 0 {
		category = m.Genres[0]
	}
	return &models.Movie{
		Title:       m.Title,
		Description: m.Plot,
		Year:        year,
		Director:    m.Director,
		Rating:      0,
		PosterURL:   m.PosterURL,
		Category:    category,
		Genres:      m.Genres,
	}
}
