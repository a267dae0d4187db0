package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/CagilDisbudak/MoviePage/internal/middleware"
	"github.com/CagilDisbudak/MoviePage/internal/models"
	"github.com/CagilDisbudak/MoviePage/internal/repo"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ReviewHandler struct {
	Repo   *repo.ReviewRepo
	Movies *repo.MovieRepo
}

//
// ==========================
// Create Review
// ==========================
//

// CreateReview stores a review authored by the authenticated user. The
// author always comes from the token subject, never from the body.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, middleware.ErrMessageCredentials, http.StatusUnauthorized)
		return
	}

	var input struct {
		MovieID int     `json:"movie_id" validate:"required,gt=0"`
		Text    string  `json:"text" validate:"required,min=1,max=5000"`
		Rating  float64 `json:"rating" validate:"gte=0,lte=10"`
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

	if _, err := h.Movies.GetByID(r.Context(), input.MovieID); err != nil {
		JSONError(w, "movie not found", http.StatusNotFound)
		return
	}

	review, err := h.Repo.Create(r.Context(), input.Text, input.Rating, input.MovieID, user.ID)
	if err != nil {
		slog.Error("create review", "movie_id", input.MovieID, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

//
// ==========================
// List Reviews For Movie
// ==========================
//

func (h *ReviewHandler) ListForMovie(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		JSONError(w, "invalid movie id", http.StatusBadRequest)
		return
	}

	reviews, err := h.Repo.ListByMovie(r.Context(), id)
	if err != nil {
		slog.Error("list reviews", "movie_id", id, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}
