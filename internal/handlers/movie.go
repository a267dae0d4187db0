package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/CagilDisbudak/MoviePage/internal/models"
	"github.com/CagilDisbudak/MoviePage/internal/repo"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type MovieHandler struct {
	Repo    *repo.MovieRepo
	Reviews *repo.ReviewRepo
}

//
// ==========================
// List Movies
// ==========================
//

func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	// Default pagination
	limit := 10
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 {
			limit = val
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if val, err := strconv.Atoi(o); err == nil && val >= 0 {
			offset = val
		}
	}

	movies, err := h.Repo.ListPaginated(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list movies", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	total, err := h.Repo.Count(r.Context())
	if err != nil {
		slog.Error("count movies", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items":  movies,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

//
// ==========================
// Get Movie By ID (with reviews)
// ==========================
//

func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		JSONError(w, "invalid movie id", http.StatusBadRequest)
		return
	}

	movie, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		JSONError(w, "movie not found", http.StatusNotFound)
		return
	}

	reviews, err := h.Reviews.ListByMovie(r.Context(), id)
	if err != nil {
		slog.Error("get movie: list reviews", "movie_id", id, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.MovieDetail{Movie: *movie, Reviews: reviews})
}

//
// ==========================
// Search Movies
// ==========================
//

func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		JSONError(w, "query parameter q is required", http.StatusBadRequest)
		return
	}

	movies, err := h.Repo.SearchByTitle(r.Context(), q)
	if err != nil {
		slog.Error("search movies", "q", q, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(movies)
}

//
// ==========================
// Create Movie (admin only, enforced by the router)
// ==========================
//

func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title       string   `json:"title" validate:"required,min=1,max=255"`
		Description string   `json:"description" validate:"max=5000"`
		Year        int      `json:"year" validate:"gte=0,lte=2100"`
		Director    string   `json:"director" validate:"max=255"`
		Rating      float64  `json:"rating" validate:"gte=0,lte=10"`
		PosterURL   string   `json:"poster_url" validate:"omitempty,url"`
		TrailerURL  string   `json:"trailer_url" validate:"omitempty,url"`
		Category    string   `json:"category" validate:"max=100"`
		Genres      []string `json:"genres" validate:"dive,min=1,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	// ===== Validate input =====
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	movie, err := h.Repo.Create(r.Context(), &models.Movie{
		Title:       input.Title,
		Description: input.Description,
		Year:        input.Year,
		Director:    input.Director,
		Rating:      input.Rating,
		PosterURL:   input.PosterURL,
		TrailerURL:  input.TrailerURL,
		Category:    input.Category,
		Genres:      input.Genres,
	})
	if err != nil {
		slog.Error("create movie", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(movie)
}
