package models

type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	Director    string   `json:"director"`
	Rating      float64  `json:"rating"`
	PosterURL   string   `json:"poster_url,omitempty"`
	TrailerURL  string   `json:"trailer_url,omitempty"`
	Category    string   `json:"category,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

// MovieDetail is the single-movie projection with its reviews embedded.
type MovieDetail struct {
	Movie
	Reviews []Review `json:"reviews"`
}
